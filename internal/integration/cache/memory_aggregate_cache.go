// Package cache provides aggregate cache and import tracker implementations.
package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/menu-pricing/backend/internal/application/adapter"
	"github.com/menu-pricing/backend/internal/domain/entity"
)

type memoryEntry struct {
	points    []entity.ChartDataPoint
	expiresAt time.Time
}

// MemoryAggregateCache is an in-process adapter.AggregateCache with a TTL.
type MemoryAggregateCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	clock   adapter.Clock
}

// NewMemoryAggregateCache creates a new in-memory aggregate cache.
func NewMemoryAggregateCache(ttl time.Duration, clock adapter.Clock) *MemoryAggregateCache {
	return &MemoryAggregateCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		clock:   clock,
	}
}

// Get returns a copy of the cached points when present and not expired.
func (c *MemoryAggregateCache) Get(_ context.Context, key adapter.AggregateKey) ([]entity.ChartDataPoint, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key.String()]
	if !ok || !c.clock.Now().Before(entry.expiresAt) {
		return nil, false, nil
	}

	points := make([]entity.ChartDataPoint, len(entry.points))
	copy(points, entry.points)
	return points, true, nil
}

// Set stores a copy of the points and evicts expired entries. Keys embed the
// window end, so yesterday's windows are never read again.
func (c *MemoryAggregateCache) Set(_ context.Context, key adapter.AggregateKey, points []entity.ChartDataPoint) error {
	stored := make([]entity.ChartDataPoint, len(points))
	copy(stored, points)

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	for k, entry := range c.entries {
		if !now.Before(entry.expiresAt) {
			delete(c.entries, k)
		}
	}

	c.entries[key.String()] = memoryEntry{
		points:    stored,
		expiresAt: now.Add(c.ttl),
	}
	return nil
}

// InvalidateAccount drops every entry of the account.
func (c *MemoryAggregateCache) InvalidateAccount(_ context.Context, accountID uuid.UUID) error {
	prefix := accountID.String() + ":"

	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
	return nil
}
