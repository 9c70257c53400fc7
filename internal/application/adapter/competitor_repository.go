// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/menu-pricing/backend/internal/domain/entity"
)

// CompetitorItemRepository defines the interface for competitor item persistence operations.
type CompetitorItemRepository interface {
	// Create creates a new competitor item in the database.
	Create(ctx context.Context, item *entity.CompetitorItem) error

	// FindByAccount retrieves all competitor items of an account.
	FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.CompetitorItem, error)

	// Delete removes a competitor item from the database.
	Delete(ctx context.Context, id, accountID uuid.UUID) error
}
