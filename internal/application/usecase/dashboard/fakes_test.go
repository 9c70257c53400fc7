package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/menu-pricing/backend/internal/application/adapter"
	"github.com/menu-pricing/backend/internal/domain/entity"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type memSalesRepo struct {
	records []*entity.SalesRecord
	calls   int
	mu      sync.Mutex
}

func (r *memSalesRepo) UpsertBatch(_ context.Context, records []*entity.SalesRecord) (int, error) {
	r.records = append(r.records, records...)
	return len(records), nil
}

func (r *memSalesRepo) FindByPeriod(_ context.Context, accountID uuid.UUID, start, end time.Time) ([]*entity.SalesRecord, error) {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()

	out := make([]*entity.SalesRecord, 0)
	for _, rec := range r.records {
		if rec.AccountID == accountID && !rec.SoldAt.Before(start) && rec.SoldAt.Before(end) {
			out = append(out, rec)
		}
	}
	return out, nil
}

type memCOGSRepo struct {
	entries []*entity.COGSEntry
}

func (r *memCOGSRepo) Upsert(_ context.Context, e *entity.COGSEntry) error {
	r.entries = append(r.entries, e)
	return nil
}

func (r *memCOGSRepo) FindByRange(_ context.Context, accountID uuid.UUID, _, _ time.Time) ([]*entity.COGSEntry, error) {
	out := make([]*entity.COGSEntry, 0)
	for _, e := range r.entries {
		if e.AccountID == accountID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memCOGSRepo) FindByWeekStart(context.Context, uuid.UUID, time.Time) (*entity.COGSEntry, error) {
	return nil, nil
}

func (r *memCOGSRepo) DeleteByAccount(context.Context, uuid.UUID) (int64, error) {
	return 0, nil
}

type memCache struct {
	data map[string][]entity.ChartDataPoint
	hits int
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string][]entity.ChartDataPoint)}
}

func (c *memCache) Get(_ context.Context, key adapter.AggregateKey) ([]entity.ChartDataPoint, bool, error) {
	points, ok := c.data[key.String()]
	if ok {
		c.hits++
	}
	return points, ok, nil
}

func (c *memCache) Set(_ context.Context, key adapter.AggregateKey, points []entity.ChartDataPoint) error {
	c.data[key.String()] = points
	return nil
}

func (c *memCache) InvalidateAccount(context.Context, uuid.UUID) error {
	c.data = make(map[string][]entity.ChartDataPoint)
	return nil
}

func sale(accountID uuid.UUID, orderID string, soldAt time.Time, revenue float64) *entity.SalesRecord {
	return &entity.SalesRecord{
		ID:             uuid.New(),
		AccountID:      accountID,
		ExternalLineID: uuid.NewString(),
		OrderID:        orderID,
		ItemName:       "Margherita",
		Category:       "Pizza",
		Quantity:       1,
		Revenue:        revenue,
		SoldAt:         soldAt,
	}
}

type countingMetrics struct {
	adapter.NoopMetrics
	estimatedDays int
}

func (m *countingMetrics) EstimatedCostDay() { m.estimatedDays++ }
