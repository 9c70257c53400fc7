// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/menu-pricing/backend/internal/domain/entity"
)

// MenuItemRepository defines the interface for menu item persistence operations.
type MenuItemRepository interface {
	// Create creates a new menu item in the database.
	Create(ctx context.Context, item *entity.MenuItem) error

	// FindByID retrieves a menu item by its ID scoped to the account.
	FindByID(ctx context.Context, id, accountID uuid.UUID) (*entity.MenuItem, error)

	// FindByAccount retrieves all menu items of an account ordered by name.
	FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.MenuItem, error)

	// Update updates an existing menu item in the database.
	Update(ctx context.Context, item *entity.MenuItem) error

	// Delete removes a menu item from the database.
	Delete(ctx context.Context, id, accountID uuid.UUID) error
}
