// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/menu-pricing/backend/internal/domain/entity"
)

// ImportTracker keeps the status of asynchronous sales imports.
type ImportTracker interface {
	// TryStart registers the job as the account's running import.
	// Returns false when another import of the account is still running.
	TryStart(ctx context.Context, job *entity.ImportJob) (bool, error)

	// Update stores the latest state of the job.
	// Terminal states release the account's running slot.
	Update(ctx context.Context, job *entity.ImportJob) error

	// Get returns the job, or nil when unknown or expired.
	Get(ctx context.Context, jobID string) (*entity.ImportJob, error)

	// Running returns the ID of the account's running import, if any.
	Running(ctx context.Context, accountID uuid.UUID) (string, bool, error)
}
