// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/menu-pricing/backend/internal/domain/entity"
)

// AggregateKey identifies a memoized monthly aggregation.
type AggregateKey struct {
	AccountID uuid.UUID
	Start     time.Time
	End       time.Time
}

// String renders the key as "<account>:<start>:<end>" with ISO dates.
func (k AggregateKey) String() string {
	return fmt.Sprintf("%s:%s:%s", k.AccountID, k.Start.Format(entity.DateLayout), k.End.Format(entity.DateLayout))
}

// AggregateCache memoizes trailing monthly chart aggregations.
type AggregateCache interface {
	// Get returns the cached points and whether they were present and fresh.
	Get(ctx context.Context, key AggregateKey) ([]entity.ChartDataPoint, bool, error)

	// Set stores the points for the key.
	Set(ctx context.Context, key AggregateKey, points []entity.ChartDataPoint) error

	// InvalidateAccount drops every cached aggregation of the account.
	InvalidateAccount(ctx context.Context, accountID uuid.UUID) error
}

// Clock provides the current time. Every "now" boundary goes through it.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock in the restaurant's time zone.
type SystemClock struct {
	Location *time.Location
}

// Now returns the current time in the clock's location, or local time when unset.
func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}
