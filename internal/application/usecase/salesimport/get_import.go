// Package salesimport contains the asynchronous point-of-sale import use cases.
package salesimport

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/menu-pricing/backend/internal/application/adapter"
	"github.com/menu-pricing/backend/internal/domain/entity"
	domainerror "github.com/menu-pricing/backend/internal/domain/error"
)

// GetImportInput represents the input for fetching an import job.
type GetImportInput struct {
	AccountID uuid.UUID
	JobID     string
}

// GetImportUseCase returns the status of an import job.
type GetImportUseCase struct {
	tracker adapter.ImportTracker
}

// NewGetImportUseCase creates a new GetImportUseCase instance.
func NewGetImportUseCase(tracker adapter.ImportTracker) *GetImportUseCase {
	return &GetImportUseCase{tracker: tracker}
}

// Execute returns the job when it belongs to the account.
func (uc *GetImportUseCase) Execute(ctx context.Context, input GetImportInput) (*entity.ImportJob, error) {
	job, err := uc.tracker.Get(ctx, input.JobID)
	if err != nil {
		return nil, fmt.Errorf("failed to get import job: %w", err)
	}
	if job == nil || job.AccountID != input.AccountID {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeImportNotFound,
			"sales import not found",
			domainerror.ErrImportNotFound,
		)
	}
	return job, nil
}
