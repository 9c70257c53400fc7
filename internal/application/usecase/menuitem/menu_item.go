// Package menuitem contains menu item use cases.
package menuitem

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/menu-pricing/backend/internal/application/adapter"
	"github.com/menu-pricing/backend/internal/domain/entity"
	domainerror "github.com/menu-pricing/backend/internal/domain/error"
)

// MaxMenuItemNameLength is the maximum allowed length for menu item names.
const MaxMenuItemNameLength = 100

// CreateInput represents the input for menu item creation.
type CreateInput struct {
	AccountID uuid.UUID
	Name      string
	Category  string
	Price     float64
}

// UpdateInput represents the input for menu item update.
type UpdateInput struct {
	AccountID  uuid.UUID
	MenuItemID uuid.UUID
	Name       *string  // Optional
	Category   *string  // Optional
	Price      *float64 // Optional
	Active     *bool    // Optional
}

// Service handles menu item logic.
type Service struct {
	menuItemRepo adapter.MenuItemRepository
	recipeRepo   adapter.RecipeRepository
}

// NewService creates a new Service instance.
func NewService(menuItemRepo adapter.MenuItemRepository, recipeRepo adapter.RecipeRepository) *Service {
	return &Service{
		menuItemRepo: menuItemRepo,
		recipeRepo:   recipeRepo,
	}
}

// Create validates and stores a new menu item.
func (s *Service) Create(ctx context.Context, input CreateInput) (*entity.MenuItem, error) {
	name := strings.TrimSpace(input.Name)
	if err := validate(name, input.Price); err != nil {
		return nil, err
	}

	item := entity.NewMenuItem(input.AccountID, name, strings.TrimSpace(input.Category), input.Price)
	if err := s.menuItemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}
	return item, nil
}

// List returns the account's menu items.
func (s *Service) List(ctx context.Context, accountID uuid.UUID) ([]*entity.MenuItem, error) {
	items, err := s.menuItemRepo.FindByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	return items, nil
}

// Get returns a single menu item.
func (s *Service) Get(ctx context.Context, accountID, menuItemID uuid.UUID) (*entity.MenuItem, error) {
	item, err := s.menuItemRepo.FindByID(ctx, menuItemID, accountID)
	if err != nil {
		return nil, mapLookupError(err)
	}
	return item, nil
}

// Update applies the provided fields to the menu item.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*entity.MenuItem, error) {
	item, err := s.menuItemRepo.FindByID(ctx, input.MenuItemID, input.AccountID)
	if err != nil {
		return nil, mapLookupError(err)
	}

	if input.Name != nil {
		item.Name = strings.TrimSpace(*input.Name)
	}
	if input.Category != nil {
		item.Category = strings.TrimSpace(*input.Category)
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.Active != nil {
		item.Active = *input.Active
	}

	if err := validate(item.Name, item.Price); err != nil {
		return nil, err
	}

	item.UpdatedAt = time.Now().UTC()
	if err := s.menuItemRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}
	return item, nil
}

// Delete removes the menu item and unlinks its recipes.
func (s *Service) Delete(ctx context.Context, accountID, menuItemID uuid.UUID) error {
	if _, err := s.menuItemRepo.FindByID(ctx, menuItemID, accountID); err != nil {
		return mapLookupError(err)
	}
	if err := s.recipeRepo.ClearMenuItem(ctx, accountID, menuItemID); err != nil {
		return fmt.Errorf("failed to unlink recipes: %w", err)
	}
	if err := s.menuItemRepo.Delete(ctx, menuItemID, accountID); err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	return nil
}

func validate(name string, price float64) error {
	if name == "" || len(name) > MaxMenuItemNameLength {
		return domainerror.NewMenuItemError(
			domainerror.ErrCodeInvalidMenuItemName,
			fmt.Sprintf("menu item name must be between 1 and %d characters", MaxMenuItemNameLength),
			domainerror.ErrInvalidMenuItemName,
		)
	}
	if price < 0 {
		return domainerror.NewMenuItemError(
			domainerror.ErrCodeInvalidMenuItemPrice,
			"menu item price must not be negative",
			domainerror.ErrInvalidMenuItemPrice,
		)
	}
	return nil
}

func mapLookupError(err error) error {
	if errors.Is(err, domainerror.ErrMenuItemNotFound) {
		return domainerror.NewMenuItemError(
			domainerror.ErrCodeMenuItemNotFound,
			"menu item not found",
			domainerror.ErrMenuItemNotFound,
		)
	}
	return fmt.Errorf("failed to find menu item: %w", err)
}
