// Package salesimport contains the asynchronous point-of-sale import use cases.
package salesimport

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/menu-pricing/backend/internal/application/adapter"
	"github.com/menu-pricing/backend/internal/domain/entity"
	domainerror "github.com/menu-pricing/backend/internal/domain/error"
)

const (
	// MaxImportRangeDays bounds the date range of a single import.
	MaxImportRangeDays = 366

	// DefaultJobTimeout bounds the lifetime of a single import job.
	DefaultJobTimeout = 10 * time.Minute
)

// StartImportInput represents the input for starting a sales import.
type StartImportInput struct {
	AccountID uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// StartImportOutput represents the output of starting an import.
type StartImportOutput struct {
	Job *entity.ImportJob
}

// StartImportUseCase launches an asynchronous point-of-sale import.
type StartImportUseCase struct {
	upstream     adapter.UpstreamSalesClient
	salesRepo    adapter.SalesRepository
	tracker      adapter.ImportTracker
	cache        adapter.AggregateCache
	clock        adapter.Clock
	metrics      adapter.MetricsRecorder
	pollInterval time.Duration
	jobTimeout   time.Duration
}

// Options tunes polling for tests and deployments.
type Options struct {
	PollInterval time.Duration
	JobTimeout   time.Duration
}

// NewStartImportUseCase creates a new StartImportUseCase instance.
func NewStartImportUseCase(
	upstream adapter.UpstreamSalesClient,
	salesRepo adapter.SalesRepository,
	tracker adapter.ImportTracker,
	cache adapter.AggregateCache,
	clock adapter.Clock,
	metrics adapter.MetricsRecorder,
	opts Options,
) *StartImportUseCase {
	if metrics == nil {
		metrics = adapter.NoopMetrics{}
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if opts.JobTimeout <= 0 {
		opts.JobTimeout = DefaultJobTimeout
	}
	return &StartImportUseCase{
		upstream:     upstream,
		salesRepo:    salesRepo,
		tracker:      tracker,
		cache:        cache,
		clock:        clock,
		metrics:      metrics,
		pollInterval: opts.PollInterval,
		jobTimeout:   opts.JobTimeout,
	}
}

// Execute validates the request, registers the job and starts it in the background.
// Only one import per account may run at a time.
func (uc *StartImportUseCase) Execute(ctx context.Context, input StartImportInput) (*StartImportOutput, error) {
	start := dateOnly(input.StartDate)
	end := dateOnly(input.EndDate)
	if input.StartDate.IsZero() || input.EndDate.IsZero() || end.Before(start) ||
		entity.DaysBetween(start, end) >= MaxImportRangeDays {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeInvalidImportRange,
			fmt.Sprintf("start_date and end_date are required, ordered and at most %d days apart", MaxImportRangeDays),
			nil,
		)
	}

	if uc.upstream == nil || !uc.upstream.IsAvailable() {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeUpstreamUnavailable,
			"point-of-sale integration is not available",
			domainerror.ErrUpstreamUnavailable,
		)
	}

	job := &entity.ImportJob{
		ID:        uuid.New().String(),
		AccountID: input.AccountID,
		Status:    entity.ImportStatusPending,
		StartDate: start,
		EndDate:   end,
		StartedAt: uc.clock.Now(),
	}

	started, err := uc.tracker.TryStart(ctx, job)
	if err != nil {
		return nil, fmt.Errorf("failed to register import: %w", err)
	}
	if !started {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeImportAlreadyRunning,
			"a sales import is already in progress for this account",
			domainerror.ErrImportAlreadyRunning,
		)
	}

	slog.Info("Sales import started",
		"jobID", job.ID,
		"accountID", job.AccountID.String(),
		"startDate", start.Format(entity.DateLayout),
		"endDate", end.Format(entity.DateLayout),
	)

	snapshot := *job
	go uc.run(job)

	return &StartImportOutput{Job: &snapshot}, nil
}

// run drives the job to a terminal state. It owns job from here on.
func (uc *StartImportUseCase) run(job *entity.ImportJob) {
	ctx, cancel := context.WithTimeout(context.Background(), uc.jobTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			slog.Error("Sales import panicked", "jobID", job.ID, "panic", r)
			uc.fail(job, fmt.Errorf("panic: %v", r))
		}
	}()

	imported, rejected, err := uc.importRows(ctx, job)
	if err != nil {
		uc.fail(job, err)
		return
	}

	finished := uc.clock.Now()
	job.Status = entity.ImportStatusCompleted
	job.RowsImported = imported
	job.RowsRejected = rejected
	job.FinishedAt = &finished
	uc.save(job)

	if uc.cache != nil {
		if err := uc.cache.InvalidateAccount(context.Background(), job.AccountID); err != nil {
			slog.Warn("Failed to invalidate aggregate cache",
				"accountID", job.AccountID.String(),
				"error", err.Error(),
			)
		}
	}

	uc.metrics.ImportFinished(string(entity.ImportStatusCompleted))
	slog.Info("Sales import completed",
		"jobID", job.ID,
		"rowsImported", imported,
		"rowsRejected", rejected,
	)
}

func (uc *StartImportUseCase) importRows(ctx context.Context, job *entity.ImportJob) (int, int, error) {
	handle, err := uc.upstream.RequestExport(ctx, adapter.ExportRequest{
		AccountID: job.AccountID,
		StartDate: job.StartDate,
		EndDate:   job.EndDate,
	})
	if err != nil {
		return 0, 0, fmt.Errorf("failed to request export: %w", err)
	}

	job.Status = entity.ImportStatusProcessing
	uc.save(job)

	status, err := PollUntilTerminal(ctx, uc.pollInterval, func(ctx context.Context) (entity.ImportStatus, error) {
		return uc.upstream.ProcessStatus(ctx, handle.ProcessID)
	})
	if err != nil {
		return 0, 0, fmt.Errorf("failed to poll export: %w", err)
	}
	if status == entity.ImportStatusError {
		return 0, 0, domainerror.ErrUpstreamProcessFailed
	}

	rows, err := uc.upstream.FetchRows(ctx, job.AccountID, handle.ExportID)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to fetch export rows: %w", err)
	}

	for _, record := range rows.Records {
		record.AccountID = job.AccountID
	}

	imported, err := uc.salesRepo.UpsertBatch(ctx, rows.Records)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to store sales records: %w", err)
	}

	return imported, rows.Rejected, nil
}

func (uc *StartImportUseCase) fail(job *entity.ImportJob, err error) {
	classified := classifyError(err)

	finished := uc.clock.Now()
	job.Status = entity.ImportStatusError
	job.Error = classified.Message
	job.ErrorCode = classified.Code
	job.Retryable = classified.Retryable
	job.FinishedAt = &finished
	uc.save(job)

	uc.metrics.ImportFinished(string(entity.ImportStatusError))
	slog.Error("Sales import failed",
		"jobID", job.ID,
		"accountID", job.AccountID.String(),
		"code", classified.Code,
		"error", err.Error(),
	)
}

func (uc *StartImportUseCase) save(job *entity.ImportJob) {
	if err := uc.tracker.Update(context.Background(), job); err != nil {
		slog.Warn("Failed to update import job", "jobID", job.ID, "error", err.Error())
	}
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
