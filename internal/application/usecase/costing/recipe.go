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

// MaxRecipeNameLength is the maximum allowed length for recipe names.
const MaxRecipeNameLength = 100

// RecipeInput represents the input for recipe creation and update.
type RecipeInput struct {
	AccountID   uuid.UUID
	RecipeID    uuid.UUID // Ignored on create
	Name        string
	MenuItemID  *uuid.UUID
	Ingredients []entity.RecipeIngredient
}

// RecipeWithCost pairs a recipe with its cost derived from current ingredient prices.
type RecipeWithCost struct {
	Recipe *entity.Recipe
	Cost   RecipeCost
}

// ListRecipesOutput represents the output of recipe listing.
type ListRecipesOutput struct {
	Recipes []*RecipeWithCost
}

// RecipeService groups the recipe use cases that share repositories and the cost calculator.
type RecipeService struct {
	recipeRepo     adapter.RecipeRepository
	ingredientRepo adapter.IngredientRepository
	menuItemRepo   adapter.MenuItemRepository
	calculator     *CostCalculator
}

// NewRecipeService creates a new RecipeService instance.
func NewRecipeService(
	recipeRepo adapter.RecipeRepository,
	ingredientRepo adapter.IngredientRepository,
	menuItemRepo adapter.MenuItemRepository,
	calculator *CostCalculator,
) *RecipeService {
	if calculator == nil {
		calculator = NewCostCalculator(nil)
	}
	return &RecipeService{
		recipeRepo:     recipeRepo,
		ingredientRepo: ingredientRepo,
		menuItemRepo:   menuItemRepo,
		calculator:     calculator,
	}
}

// Create validates and stores a new recipe.
func (s *RecipeService) Create(ctx context.Context, input RecipeInput) (*RecipeWithCost, error) {
	name := strings.TrimSpace(input.Name)
	if err := s.validate(ctx, input.AccountID, name, input.MenuItemID, input.Ingredients); err != nil {
		return nil, err
	}

	recipe := entity.NewRecipe(input.AccountID, name, input.MenuItemID, normalizeLines(input.Ingredients))
	if err := s.recipeRepo.Create(ctx, recipe); err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}

	return s.withCost(ctx, recipe)
}

// Get returns a recipe with its current cost.
func (s *RecipeService) Get(ctx context.Context, accountID, recipeID uuid.UUID) (*RecipeWithCost, error) {
	recipe, err := s.recipeRepo.FindByID(ctx, recipeID, accountID)
	if err != nil {
		return nil, mapRecipeLookupError(err)
	}
	return s.withCost(ctx, recipe)
}

// List returns every recipe of the account with its current cost.
func (s *RecipeService) List(ctx context.Context, accountID uuid.UUID) (*ListRecipesOutput, error) {
	recipes, err := s.recipeRepo.FindByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	// One ingredient lookup serves every recipe.
	ingredients, err := s.ingredientRepo.FindByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}
	byID := indexIngredients(ingredients)

	output := &ListRecipesOutput{
		Recipes: make([]*RecipeWithCost, 0, len(recipes)),
	}
	for _, recipe := range recipes {
		output.Recipes = append(output.Recipes, &RecipeWithCost{
			Recipe: recipe,
			Cost:   s.calculator.Calculate(recipe.Ingredients, byID),
		})
	}
	return output, nil
}

// Update replaces the recipe's name, menu link and ingredient lines.
func (s *RecipeService) Update(ctx context.Context, input RecipeInput) (*RecipeWithCost, error) {
	recipe, err := s.recipeRepo.FindByID(ctx, input.RecipeID, input.AccountID)
	if err != nil {
		return nil, mapRecipeLookupError(err)
	}

	name := strings.TrimSpace(input.Name)
	if err := s.validate(ctx, input.AccountID, name, input.MenuItemID, input.Ingredients); err != nil {
		return nil, err
	}

	recipe.Name = name
	recipe.MenuItemID = input.MenuItemID
	recipe.Ingredients = normalizeLines(input.Ingredients)
	recipe.UpdatedAt = time.Now().UTC()

	if err := s.recipeRepo.Update(ctx, recipe); err != nil {
		return nil, fmt.Errorf("failed to update recipe: %w", err)
	}

	return s.withCost(ctx, recipe)
}

// Delete removes a recipe.
func (s *RecipeService) Delete(ctx context.Context, accountID, recipeID uuid.UUID) error {
	if _, err := s.recipeRepo.FindByID(ctx, recipeID, accountID); err != nil {
		return mapRecipeLookupError(err)
	}
	if err := s.recipeRepo.Delete(ctx, recipeID, accountID); err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	return nil
}

// CostByMenuItem returns the unit cost of the recipe linked to each menu item.
// When several recipes link the same item the most recently listed wins.
func (s *RecipeService) CostByMenuItem(ctx context.Context, accountID uuid.UUID) (map[uuid.UUID]float64, error) {
	list, err := s.List(ctx, accountID)
	if err != nil {
		return nil, err
	}

	costs := make(map[uuid.UUID]float64, len(list.Recipes))
	for _, rc := range list.Recipes {
		if rc.Recipe.MenuItemID == nil {
			continue
		}
		if _, ok := costs[*rc.Recipe.MenuItemID]; ok {
			continue
		}
		costs[*rc.Recipe.MenuItemID] = rc.Cost.Total
	}
	return costs, nil
}

func (s *RecipeService) withCost(ctx context.Context, recipe *entity.Recipe) (*RecipeWithCost, error) {
	ingredients, err := s.ingredientRepo.FindByIDs(ctx, recipe.AccountID, recipe.IngredientIDs())
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe ingredients: %w", err)
	}
	return &RecipeWithCost{
		Recipe: recipe,
		Cost:   s.calculator.Calculate(recipe.Ingredients, indexIngredients(ingredients)),
	}, nil
}

func (s *RecipeService) validate(
	ctx context.Context,
	accountID uuid.UUID,
	name string,
	menuItemID *uuid.UUID,
	lines []entity.RecipeIngredient,
) error {
	if name == "" || len(name) > MaxRecipeNameLength {
		return domainerror.NewRecipeError(
			domainerror.ErrCodeInvalidRecipeName,
			fmt.Sprintf("recipe name must be between 1 and %d characters", MaxRecipeNameLength),
			domainerror.ErrInvalidRecipeName,
		)
	}

	for i, line := range lines {
		if line.Quantity <= 0 {
			return domainerror.NewRecipeError(
				domainerror.ErrCodeInvalidRecipeLine,
				fmt.Sprintf("ingredient line %d: quantity must be greater than zero", i+1),
				domainerror.ErrInvalidRecipeLine,
			)
		}
	}

	recipe := entity.Recipe{Ingredients: lines}
	ids := recipe.IngredientIDs()
	if len(ids) > 0 {
		owned, err := s.ingredientRepo.FindByIDs(ctx, accountID, ids)
		if err != nil {
			return fmt.Errorf("failed to verify recipe ingredients: %w", err)
		}
		if len(owned) != len(ids) {
			return domainerror.NewRecipeError(
				domainerror.ErrCodeUnknownRecipeIngredient,
				"one or more ingredients do not exist",
				domainerror.ErrUnknownRecipeIngredient,
			)
		}
	}

	if menuItemID != nil {
		if _, err := s.menuItemRepo.FindByID(ctx, *menuItemID, accountID); err != nil {
			if errors.Is(err, domainerror.ErrMenuItemNotFound) {
				return domainerror.NewRecipeError(
					domainerror.ErrCodeUnknownRecipeMenuItem,
					"menu item not found",
					domainerror.ErrUnknownRecipeMenuItem,
				)
			}
			return fmt.Errorf("failed to verify menu item: %w", err)
		}
	}

	return nil
}

// normalizeLines trims unit tokens; the original token casing is kept for display.
func normalizeLines(lines []entity.RecipeIngredient) []entity.RecipeIngredient {
	out := make([]entity.RecipeIngredient, len(lines))
	for i, line := range lines {
		line.Unit = strings.TrimSpace(line.Unit)
		out[i] = line
	}
	return out
}

func mapRecipeLookupError(err error) error {
	if errors.Is(err, domainerror.ErrRecipeNotFound) {
		return domainerror.NewRecipeError(
			domainerror.ErrCodeRecipeNotFound,
			"recipe not found",
			domainerror.ErrRecipeNotFound,
		)
	}
	return fmt.Errorf("failed to find recipe: %w", err)
}
