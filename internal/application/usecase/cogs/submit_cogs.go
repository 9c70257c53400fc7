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

// SubmitCOGSInput represents the input for submitting a weekly COGS amount.
type SubmitCOGSInput struct {
	AccountID     uuid.UUID
	WeekStartDate time.Time
	WeekEndDate   *time.Time // Optional, defaults to the Sunday of the week
	Amount        float64
}

// SubmitCOGSOutput represents the output of a COGS submission.
type SubmitCOGSOutput struct {
	Entry *entity.COGSEntry
}

// SubmitCOGSUseCase stores the authoritative COGS amount of a week.
type SubmitCOGSUseCase struct {
	cogsRepo adapter.COGSRepository
	cache    adapter.AggregateCache
}

// NewSubmitCOGSUseCase creates a new SubmitCOGSUseCase instance.
func NewSubmitCOGSUseCase(cogsRepo adapter.COGSRepository, cache adapter.AggregateCache) *SubmitCOGSUseCase {
	return &SubmitCOGSUseCase{
		cogsRepo: cogsRepo,
		cache:    cache,
	}
}

// Execute validates the week and upserts the entry.
// A week that already has an entry gets its amount replaced.
func (uc *SubmitCOGSUseCase) Execute(ctx context.Context, input SubmitCOGSInput) (*SubmitCOGSOutput, error) {
	if input.WeekStartDate.IsZero() {
		return nil, domainerror.NewCOGSError(
			domainerror.ErrCodeMissingCOGSWeek,
			"week_start_date is required",
			domainerror.ErrMissingCOGSWeek,
		)
	}
	if input.Amount < 0 {
		return nil, domainerror.NewCOGSError(
			domainerror.ErrCodeInvalidCOGSAmount,
			"amount must not be negative",
			domainerror.ErrInvalidCOGSAmount,
		)
	}

	start := dateOnly(input.WeekStartDate)
	var end time.Time
	if input.WeekEndDate == nil {
		start = entity.WeekStart(start)
		end = start.AddDate(0, 0, 6)
	} else {
		end = dateOnly(*input.WeekEndDate)
	}

	span := entity.DaysBetween(start, end)
	if span < 0 {
		return nil, domainerror.NewCOGSError(
			domainerror.ErrCodeInvalidCOGSWeek,
			"week_end_date must not be before week_start_date",
			domainerror.ErrInvalidCOGSWeek,
		)
	}
	if span > 6 {
		return nil, domainerror.NewCOGSError(
			domainerror.ErrCodeCOGSWeekTooLong,
			"a COGS entry covers at most 7 days",
			domainerror.ErrCOGSWeekTooLong,
		)
	}

	entry := entity.NewCOGSEntry(input.AccountID, start, end, input.Amount)
	if err := uc.cogsRepo.Upsert(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to save cogs entry: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.InvalidateAccount(ctx, input.AccountID); err != nil {
			slog.Warn("Failed to invalidate aggregate cache",
				"accountID", input.AccountID.String(),
				"error", err.Error(),
			)
		}
	}

	return &SubmitCOGSOutput{Entry: entry}, nil
}

// dateOnly drops the clock part and pins the date to UTC for storage.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
