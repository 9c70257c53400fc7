// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/menu-pricing/backend/internal/domain/entity"
)

// IngredientRepository defines the interface for ingredient persistence operations.
type IngredientRepository interface {
	// Create creates a new ingredient in the database.
	Create(ctx context.Context, ingredient *entity.Ingredient) error

	// FindByID retrieves an ingredient by its ID scoped to the account.
	FindByID(ctx context.Context, id, accountID uuid.UUID) (*entity.Ingredient, error)

	// FindByAccount retrieves all ingredients of an account ordered by name.
	FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Ingredient, error)

	// FindByIDs retrieves the account's ingredients among the given IDs.
	// Unknown IDs are silently absent from the result.
	FindByIDs(ctx context.Context, accountID uuid.UUID, ids []uuid.UUID) ([]*entity.Ingredient, error)

	// Update updates an existing ingredient in the database.
	Update(ctx context.Context, ingredient *entity.Ingredient) error

	// Delete removes an ingredient from the database.
	Delete(ctx context.Context, id, accountID uuid.UUID) error
}
