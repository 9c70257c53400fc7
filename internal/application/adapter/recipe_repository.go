// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/menu-pricing/backend/internal/domain/entity"
)

// RecipeRepository defines the interface for recipe persistence operations.
// Ingredient lines are stored and loaded together with their recipe.
type RecipeRepository interface {
	// Create creates a new recipe with its ingredient lines.
	Create(ctx context.Context, recipe *entity.Recipe) error

	// FindByID retrieves a recipe with its lines scoped to the account.
	FindByID(ctx context.Context, id, accountID uuid.UUID) (*entity.Recipe, error)

	// FindByAccount retrieves all recipes of an account, newest first.
	FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Recipe, error)

	// Update updates the recipe and replaces its ingredient lines.
	Update(ctx context.Context, recipe *entity.Recipe) error

	// Delete removes a recipe and its lines.
	Delete(ctx context.Context, id, accountID uuid.UUID) error

	// CountByIngredient counts the recipes referencing an ingredient.
	CountByIngredient(ctx context.Context, ingredientID uuid.UUID) (int64, error)

	// ClearMenuItem unlinks every recipe of the account from the menu item.
	ClearMenuItem(ctx context.Context, accountID, menuItemID uuid.UUID) error
}
