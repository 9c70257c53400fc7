// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/menu-pricing/backend/internal/domain/entity"
)

// ActionItemRepository defines the interface for action item persistence operations.
type ActionItemRepository interface {
	// Create creates a new action item in the database.
	Create(ctx context.Context, item *entity.ActionItem) error

	// FindByID retrieves an action item by its ID scoped to the account.
	FindByID(ctx context.Context, id, accountID uuid.UUID) (*entity.ActionItem, error)

	// FindByAccount retrieves the account's items, newest week first.
	FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.ActionItem, error)

	// FindByAccountAndWeek retrieves the item of the given type and week.
	// Returns nil without error when none exists.
	FindByAccountAndWeek(
		ctx context.Context,
		accountID uuid.UUID,
		itemType entity.ActionItemType,
		weekStart time.Time,
	) (*entity.ActionItem, error)

	// FindOpenByType retrieves every non-completed item of the given type across accounts.
	FindOpenByType(ctx context.Context, itemType entity.ActionItemType) ([]*entity.ActionItem, error)

	// Update updates an existing action item in the database.
	Update(ctx context.Context, item *entity.ActionItem) error
}
