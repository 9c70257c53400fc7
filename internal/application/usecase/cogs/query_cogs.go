// Package cogs contains cost-of-goods-sold use cases and the daily cost distribution.
package cogs

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

// RangeInput represents a date range query for one account.
type RangeInput struct {
	AccountID uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// ListCOGSUseCase lists the entries overlapping a date range.
type ListCOGSUseCase struct {
	cogsRepo adapter.COGSRepository
}

// NewListCOGSUseCase creates a new ListCOGSUseCase instance.
func NewListCOGSUseCase(cogsRepo adapter.COGSRepository) *ListCOGSUseCase {
	return &ListCOGSUseCase{
		cogsRepo: cogsRepo,
	}
}

// Execute lists the entries.
func (uc *ListCOGSUseCase) Execute(ctx context.Context, input RangeInput) ([]*entity.COGSEntry, error) {
	if err := validateRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	entries, err := uc.cogsRepo.FindByRange(ctx, input.AccountID, dateOnly(input.StartDate), dateOnly(input.EndDate))
	if err != nil {
		return nil, fmt.Errorf("failed to list cogs entries: %w", err)
	}
	return entries, nil
}

// DailyCOGSOutput is the per-day cost map of a range.
type DailyCOGSOutput struct {
	Daily map[string]float64
}

// GetDailyCOGSUseCase distributes the weekly entries of a range into days.
type GetDailyCOGSUseCase struct {
	cogsRepo adapter.COGSRepository
}

// NewGetDailyCOGSUseCase creates a new GetDailyCOGSUseCase instance.
func NewGetDailyCOGSUseCase(cogsRepo adapter.COGSRepository) *GetDailyCOGSUseCase {
	return &GetDailyCOGSUseCase{
		cogsRepo: cogsRepo,
	}
}

// Execute returns the distributed daily costs restricted to the range.
func (uc *GetDailyCOGSUseCase) Execute(ctx context.Context, input RangeInput) (*DailyCOGSOutput, error) {
	if err := validateRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	start := dateOnly(input.StartDate)
	end := dateOnly(input.EndDate)

	entries, err := uc.cogsRepo.FindByRange(ctx, input.AccountID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list cogs entries: %w", err)
	}

	first := start.Format(entity.DateLayout)
	last := end.Format(entity.DateLayout)

	daily := DistributeWeekly(entries)
	for day := range daily {
		if day < first || day > last {
			delete(daily, day)
		}
	}

	return &DailyCOGSOutput{Daily: daily}, nil
}

// DeleteCOGSUseCase removes every entry of the account.
type DeleteCOGSUseCase struct {
	cogsRepo adapter.COGSRepository
	cache    adapter.AggregateCache
}

// NewDeleteCOGSUseCase creates a new DeleteCOGSUseCase instance.
func NewDeleteCOGSUseCase(cogsRepo adapter.COGSRepository, cache adapter.AggregateCache) *DeleteCOGSUseCase {
	return &DeleteCOGSUseCase{
		cogsRepo: cogsRepo,
		cache:    cache,
	}
}

// Execute deletes the entries and returns how many were removed.
func (uc *DeleteCOGSUseCase) Execute(ctx context.Context, accountID uuid.UUID) (int64, error) {
	deleted, err := uc.cogsRepo.DeleteByAccount(ctx, accountID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete cogs entries: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.InvalidateAccount(ctx, accountID); err != nil {
			slog.Warn("Failed to invalidate aggregate cache", "accountID", accountID.String(), "error", err.Error())
		}
	}

	return deleted, nil
}

// CurrentWeekOutput describes the COGS state of the current week.
type CurrentWeekOutput struct {
	WeekStartDate time.Time
	WeekEndDate   time.Time
	HasEntry      bool
	Amount        float64
	DailyCost     float64
}

// GetCurrentWeekUseCase reports whether the current week's COGS was recorded.
type GetCurrentWeekUseCase struct {
	cogsRepo adapter.COGSRepository
	clock    adapter.Clock
}

// NewGetCurrentWeekUseCase creates a new GetCurrentWeekUseCase instance.
func NewGetCurrentWeekUseCase(cogsRepo adapter.COGSRepository, clock adapter.Clock) *GetCurrentWeekUseCase {
	return &GetCurrentWeekUseCase{
		cogsRepo: cogsRepo,
		clock:    clock,
	}
}

// Execute looks up the entry of the week containing today.
func (uc *GetCurrentWeekUseCase) Execute(ctx context.Context, accountID uuid.UUID) (*CurrentWeekOutput, error) {
	weekStart := dateOnly(entity.WeekStart(uc.clock.Now()))

	output := &CurrentWeekOutput{
		WeekStartDate: weekStart,
		WeekEndDate:   weekStart.AddDate(0, 0, 6),
	}

	entry, err := uc.cogsRepo.FindByWeekStart(ctx, accountID, weekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to find current week cogs: %w", err)
	}
	if entry == nil {
		return output, nil
	}

	output.HasEntry = true
	output.Amount = entry.Amount
	output.WeekEndDate = entry.WeekEndDate
	if days := entry.DaysInWeek(); days > 0 {
		output.DailyCost = entry.Amount / float64(days)
	}
	return output, nil
}

func validateRange(start, end time.Time) error {
	if start.IsZero() {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeMissingStartDate,
			"start_date is required",
			domainerror.ErrMissingStartDate,
		)
	}
	if end.IsZero() {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeMissingEndDate,
			"end_date is required",
			domainerror.ErrMissingEndDate,
		)
	}
	if end.Before(start) {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must be after start_date",
			domainerror.ErrInvalidDateRange,
		)
	}
	return nil
}
