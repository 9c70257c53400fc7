// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/menu-pricing/backend/internal/domain/entity"
)

// SalesRepository defines the interface for imported sales persistence operations.
type SalesRepository interface {
	// UpsertBatch stores records keyed by account and external line ID.
	// Returns the count of stored records.
	UpsertBatch(ctx context.Context, records []*entity.SalesRecord) (int, error)

	// FindByPeriod retrieves the records sold within [start, end), ordered by sale time.
	FindByPeriod(ctx context.Context, accountID uuid.UUID, start, end time.Time) ([]*entity.SalesRecord, error)
}
