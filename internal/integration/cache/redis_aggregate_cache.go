// Package cache provides aggregate cache and import tracker implementations.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/menu-pricing/backend/internal/application/adapter"
	"github.com/menu-pricing/backend/internal/domain/entity"
)

const aggregateKeyPrefix = "menu:agg:"

// RedisAggregateCache is an adapter.AggregateCache shared between instances.
type RedisAggregateCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisAggregateCache creates a new Redis-backed aggregate cache.
func NewRedisAggregateCache(client *redis.Client, ttl time.Duration) *RedisAggregateCache {
	return &RedisAggregateCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached points when present.
func (c *RedisAggregateCache) Get(ctx context.Context, key adapter.AggregateKey) ([]entity.ChartDataPoint, bool, error) {
	raw, err := c.client.Get(ctx, aggregateKeyPrefix+key.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read aggregate cache: %w", err)
	}

	var points []entity.ChartDataPoint
	if err := json.Unmarshal(raw, &points); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached aggregate: %w", err)
	}
	return points, true, nil
}

// Set stores the points with the cache TTL.
func (c *RedisAggregateCache) Set(ctx context.Context, key adapter.AggregateKey, points []entity.ChartDataPoint) error {
	raw, err := json.Marshal(points)
	if err != nil {
		return fmt.Errorf("failed to encode aggregate: %w", err)
	}
	if err := c.client.Set(ctx, aggregateKeyPrefix+key.String(), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write aggregate cache: %w", err)
	}
	return nil
}

// InvalidateAccount drops every cached aggregation of the account.
func (c *RedisAggregateCache) InvalidateAccount(ctx context.Context, accountID uuid.UUID) error {
	pattern := aggregateKeyPrefix + accountID.String() + ":*"

	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan aggregate cache: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate aggregate cache: %w", err)
	}
	return nil
}
