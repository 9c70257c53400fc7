// Package costing contains ingredient, recipe and recipe-cost use cases.
package costing

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

// MaxIngredientNameLength is the maximum allowed length for ingredient names.
const MaxIngredientNameLength = 100

// IngredientInput represents the input for ingredient creation.
type IngredientInput struct {
	AccountID uuid.UUID
	Name      string
	Quantity  float64
	Unit      string
	Price     float64
}

// UpdateIngredientInput represents the input for ingredient update.
type UpdateIngredientInput struct {
	AccountID    uuid.UUID
	IngredientID uuid.UUID
	Name         *string  // Optional
	Quantity     *float64 // Optional
	Unit         *string  // Optional
	Price        *float64 // Optional
}

// IngredientOutput represents the output of ingredient operations.
type IngredientOutput struct {
	Ingredient *entity.Ingredient
}

// ListIngredientsOutput represents the output of ingredient listing.
type ListIngredientsOutput struct {
	Ingredients []*entity.Ingredient
}

// CreateIngredientUseCase handles ingredient creation logic.
type CreateIngredientUseCase struct {
	ingredientRepo adapter.IngredientRepository
}

// NewCreateIngredientUseCase creates a new CreateIngredientUseCase instance.
func NewCreateIngredientUseCase(ingredientRepo adapter.IngredientRepository) *CreateIngredientUseCase {
	return &CreateIngredientUseCase{
		ingredientRepo: ingredientRepo,
	}
}

// Execute performs the ingredient creation.
func (uc *CreateIngredientUseCase) Execute(ctx context.Context, input IngredientInput) (*IngredientOutput, error) {
	name := strings.TrimSpace(input.Name)
	unit := strings.TrimSpace(input.Unit)

	if err := validateIngredient(name, input.Quantity, unit, input.Price); err != nil {
		return nil, err
	}

	ingredient := entity.NewIngredient(input.AccountID, name, input.Quantity, unit, input.Price)
	if err := uc.ingredientRepo.Create(ctx, ingredient); err != nil {
		return nil, fmt.Errorf("failed to create ingredient: %w", err)
	}

	return &IngredientOutput{Ingredient: ingredient}, nil
}

// ListIngredientsUseCase handles ingredient listing logic.
type ListIngredientsUseCase struct {
	ingredientRepo adapter.IngredientRepository
}

// NewListIngredientsUseCase creates a new ListIngredientsUseCase instance.
func NewListIngredientsUseCase(ingredientRepo adapter.IngredientRepository) *ListIngredientsUseCase {
	return &ListIngredientsUseCase{
		ingredientRepo: ingredientRepo,
	}
}

// Execute lists the account's ingredients.
func (uc *ListIngredientsUseCase) Execute(ctx context.Context, accountID uuid.UUID) (*ListIngredientsOutput, error) {
	ingredients, err := uc.ingredientRepo.FindByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}
	return &ListIngredientsOutput{Ingredients: ingredients}, nil
}

// UpdateIngredientUseCase handles ingredient update logic.
type UpdateIngredientUseCase struct {
	ingredientRepo adapter.IngredientRepository
}

// NewUpdateIngredientUseCase creates a new UpdateIngredientUseCase instance.
func NewUpdateIngredientUseCase(ingredientRepo adapter.IngredientRepository) *UpdateIngredientUseCase {
	return &UpdateIngredientUseCase{
		ingredientRepo: ingredientRepo,
	}
}

// Execute performs the ingredient update.
func (uc *UpdateIngredientUseCase) Execute(ctx context.Context, input UpdateIngredientInput) (*IngredientOutput, error) {
	ingredient, err := uc.ingredientRepo.FindByID(ctx, input.IngredientID, input.AccountID)
	if err != nil {
		return nil, mapIngredientLookupError(err)
	}

	if input.Name != nil {
		ingredient.Name = strings.TrimSpace(*input.Name)
	}
	if input.Quantity != nil {
		ingredient.Quantity = *input.Quantity
	}
	if input.Unit != nil {
		ingredient.Unit = strings.TrimSpace(*input.Unit)
	}
	if input.Price != nil {
		ingredient.Price = *input.Price
	}

	if err := validateIngredient(ingredient.Name, ingredient.Quantity, ingredient.Unit, ingredient.Price); err != nil {
		return nil, err
	}

	ingredient.UpdatedAt = time.Now().UTC()
	if err := uc.ingredientRepo.Update(ctx, ingredient); err != nil {
		return nil, fmt.Errorf("failed to update ingredient: %w", err)
	}

	return &IngredientOutput{Ingredient: ingredient}, nil
}

// DeleteIngredientUseCase handles ingredient deletion logic.
type DeleteIngredientUseCase struct {
	ingredientRepo adapter.IngredientRepository
	recipeRepo     adapter.RecipeRepository
}

// NewDeleteIngredientUseCase creates a new DeleteIngredientUseCase instance.
func NewDeleteIngredientUseCase(ingredientRepo adapter.IngredientRepository, recipeRepo adapter.RecipeRepository) *DeleteIngredientUseCase {
	return &DeleteIngredientUseCase{
		ingredientRepo: ingredientRepo,
		recipeRepo:     recipeRepo,
	}
}

// Execute deletes the ingredient unless a recipe still references it.
func (uc *DeleteIngredientUseCase) Execute(ctx context.Context, accountID, ingredientID uuid.UUID) error {
	if _, err := uc.ingredientRepo.FindByID(ctx, ingredientID, accountID); err != nil {
		return mapIngredientLookupError(err)
	}

	count, err := uc.recipeRepo.CountByIngredient(ctx, ingredientID)
	if err != nil {
		return fmt.Errorf("failed to count recipes using ingredient: %w", err)
	}
	if count > 0 {
		return domainerror.NewIngredientError(
			domainerror.ErrCodeIngredientInUse,
			fmt.Sprintf("ingredient is used by %d recipe(s)", count),
			domainerror.ErrIngredientInUse,
		)
	}

	if err := uc.ingredientRepo.Delete(ctx, ingredientID, accountID); err != nil {
		return fmt.Errorf("failed to delete ingredient: %w", err)
	}
	return nil
}

// validateIngredient checks the fields an ingredient needs to be costed.
func validateIngredient(name string, quantity float64, unit string, price float64) error {
	if name == "" || len(name) > MaxIngredientNameLength {
		return domainerror.NewIngredientError(
			domainerror.ErrCodeInvalidIngredientName,
			fmt.Sprintf("ingredient name must be between 1 and %d characters", MaxIngredientNameLength),
			domainerror.ErrInvalidIngredientName,
		)
	}
	if quantity <= 0 {
		return domainerror.NewIngredientError(
			domainerror.ErrCodeInvalidIngredientQuantity,
			"ingredient quantity must be greater than zero",
			domainerror.ErrInvalidIngredientQuantity,
		)
	}
	if unit == "" {
		return domainerror.NewIngredientError(
			domainerror.ErrCodeMissingIngredientUnit,
			"ingredient unit is required",
			domainerror.ErrMissingIngredientUnit,
		)
	}
	if price < 0 {
		return domainerror.NewIngredientError(
			domainerror.ErrCodeInvalidIngredientPrice,
			"ingredient price must not be negative",
			domainerror.ErrInvalidIngredientPrice,
		)
	}
	return nil
}

func mapIngredientLookupError(err error) error {
	if errors.Is(err, domainerror.ErrIngredientNotFound) {
		return domainerror.NewIngredientError(
			domainerror.ErrCodeIngredientNotFound,
			"ingredient not found",
			domainerror.ErrIngredientNotFound,
		)
	}
	return fmt.Errorf("failed to find ingredient: %w", err)
}
