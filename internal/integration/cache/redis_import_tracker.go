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

	"github.com/menu-pricing/backend/internal/domain/entity"
)

const (
	importJobKeyPrefix     = "menu:import:job:"
	importRunningKeyPrefix = "menu:import:running:"

	// DefaultImportJobTTL is how long finished jobs stay queryable.
	DefaultImportJobTTL = 24 * time.Hour
)

// releaseRunning deletes the running slot only when it still belongs to the job.
var releaseRunning = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisImportTracker is an adapter.ImportTracker shared between instances.
type RedisImportTracker struct {
	client     *redis.Client
	jobTTL     time.Duration
	runningTTL time.Duration
}

// NewRedisImportTracker creates a new Redis-backed import tracker.
// runningTTL bounds how long a crashed import can block its account.
func NewRedisImportTracker(client *redis.Client, jobTTL, runningTTL time.Duration) *RedisImportTracker {
	if jobTTL <= 0 {
		jobTTL = DefaultImportJobTTL
	}
	return &RedisImportTracker{
		client:     client,
		jobTTL:     jobTTL,
		runningTTL: runningTTL,
	}
}

// TryStart claims the account's running slot and stores the job. The slot is
// released again when the job cannot be stored.
func (t *RedisImportTracker) TryStart(ctx context.Context, job *entity.ImportJob) (bool, error) {
	slot := importRunningKeyPrefix + job.AccountID.String()
	claimed, err := t.client.SetNX(ctx, slot, job.ID, t.runningTTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to claim import slot: %w", err)
	}
	if !claimed {
		return false, nil
	}
	if err := t.store(ctx, job); err != nil {
		if relErr := releaseRunning.Run(ctx, t.client, []string{slot}, job.ID).Err(); relErr != nil {
			return false, errors.Join(err, fmt.Errorf("failed to release import slot: %w", relErr))
		}
		return false, err
	}
	return true, nil
}

// Update stores the job and releases the account slot on terminal states.
func (t *RedisImportTracker) Update(ctx context.Context, job *entity.ImportJob) error {
	if err := t.store(ctx, job); err != nil {
		return err
	}
	if !job.Status.IsTerminal() {
		return nil
	}
	if err := releaseRunning.Run(ctx, t.client, []string{importRunningKeyPrefix + job.AccountID.String()}, job.ID).Err(); err != nil {
		return fmt.Errorf("failed to release import slot: %w", err)
	}
	return nil
}

// Get returns the job, or nil when unknown or expired.
func (t *RedisImportTracker) Get(ctx context.Context, jobID string) (*entity.ImportJob, error) {
	raw, err := t.client.Get(ctx, importJobKeyPrefix+jobID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read import job: %w", err)
	}

	var job entity.ImportJob
	if err := json.Unmarshal(raw, &job); err != nil {
		return nil, fmt.Errorf("failed to decode import job: %w", err)
	}
	return &job, nil
}

// Running returns the ID of the account's running import, if any.
func (t *RedisImportTracker) Running(ctx context.Context, accountID uuid.UUID) (string, bool, error) {
	jobID, err := t.client.Get(ctx, importRunningKeyPrefix+accountID.String()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read import slot: %w", err)
	}
	return jobID, true, nil
}

func (t *RedisImportTracker) store(ctx context.Context, job *entity.ImportJob) error {
	raw, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to encode import job: %w", err)
	}
	if err := t.client.Set(ctx, importJobKeyPrefix+job.ID, raw, t.jobTTL).Err(); err != nil {
		return fmt.Errorf("failed to write import job: %w", err)
	}
	return nil
}
