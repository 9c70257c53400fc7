// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/menu-pricing/backend/internal/domain/entity"
)

// COGSRepository defines the interface for weekly COGS persistence operations.
type COGSRepository interface {
	// Upsert stores the entry, replacing the amount of an existing entry
	// for the same account and week start.
	Upsert(ctx context.Context, entry *entity.COGSEntry) error

	// FindByRange retrieves the entries whose week overlaps [start, end],
	// ordered by week start ascending.
	FindByRange(ctx context.Context, accountID uuid.UUID, start, end time.Time) ([]*entity.COGSEntry, error)

	// FindByWeekStart retrieves the entry for the given week.
	// Returns nil without error when the week has no entry.
	FindByWeekStart(ctx context.Context, accountID uuid.UUID, weekStart time.Time) (*entity.COGSEntry, error)

	// DeleteByAccount removes every entry of the account.
	// Returns the count of deleted entries.
	DeleteByAccount(ctx context.Context, accountID uuid.UUID) (int64, error)
}
