// Package competitor contains competitor price tracking use cases.
package competitor

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

// MaxCompetitorFieldLength bounds competitor and item names.
const MaxCompetitorFieldLength = 100

// CreateInput represents the input for recording a competitor item.
type CreateInput struct {
	AccountID      uuid.UUID
	CompetitorName string
	ItemName       string
	Category       string
	Price          float64
	ObservedAt     *time.Time // Optional, defaults to now
}

// Service handles competitor item logic.
type Service struct {
	competitorRepo adapter.CompetitorItemRepository
	menuItemRepo   adapter.MenuItemRepository
	clock          adapter.Clock
}

// NewService creates a new Service instance.
func NewService(
	competitorRepo adapter.CompetitorItemRepository,
	menuItemRepo adapter.MenuItemRepository,
	clock adapter.Clock,
) *Service {
	return &Service{
		competitorRepo: competitorRepo,
		menuItemRepo:   menuItemRepo,
		clock:          clock,
	}
}

// Create validates and stores a competitor item.
func (s *Service) Create(ctx context.Context, input CreateInput) (*entity.CompetitorItem, error) {
	competitorName := strings.TrimSpace(input.CompetitorName)
	itemName := strings.TrimSpace(input.ItemName)

	switch {
	case competitorName == "" || len(competitorName) > MaxCompetitorFieldLength:
		return nil, invalid("competitor_name must be between 1 and 100 characters")
	case itemName == "" || len(itemName) > MaxCompetitorFieldLength:
		return nil, invalid("item_name must be between 1 and 100 characters")
	case input.Price < 0:
		return nil, invalid("price must not be negative")
	}

	observedAt := s.clock.Now()
	if input.ObservedAt != nil {
		observedAt = *input.ObservedAt
	}

	item := entity.NewCompetitorItem(input.AccountID, competitorName, itemName, strings.TrimSpace(input.Category), input.Price, observedAt)
	if err := s.competitorRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create competitor item: %w", err)
	}
	return item, nil
}

// List returns the account's competitor items.
func (s *Service) List(ctx context.Context, accountID uuid.UUID) ([]*entity.CompetitorItem, error) {
	items, err := s.competitorRepo.FindByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list competitor items: %w", err)
	}
	return items, nil
}

// Delete removes a competitor item of the account.
func (s *Service) Delete(ctx context.Context, accountID, itemID uuid.UUID) error {
	if err := s.competitorRepo.Delete(ctx, itemID, accountID); err != nil {
		if errors.Is(err, domainerror.ErrCompetitorItemNotFound) {
			return domainerror.NewCompetitorError(
				domainerror.ErrCodeCompetitorItemNotFound,
				"competitor item not found",
				err,
			)
		}
		return fmt.Errorf("failed to delete competitor item: %w", err)
	}
	return nil
}

func invalid(message string) error {
	return domainerror.NewCompetitorError(
		domainerror.ErrCodeInvalidCompetitorItem,
		message,
		domainerror.ErrInvalidCompetitorItem,
	)
}
