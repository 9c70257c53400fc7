package cogs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menu-pricing/backend/internal/application/adapter"
	"github.com/menu-pricing/backend/internal/domain/entity"
	domainerror "github.com/menu-pricing/backend/internal/domain/error"
)

type memCOGSRepo struct {
	entries map[string]*entity.COGSEntry
	failErr error
}

func newMemCOGSRepo() *memCOGSRepo {
	return &memCOGSRepo{entries: make(map[string]*entity.COGSEntry)}
}

func (r *memCOGSRepo) key(accountID uuid.UUID, weekStart time.Time) string {
	return accountID.String() + weekStart.Format(entity.DateLayout)
}

func (r *memCOGSRepo) Upsert(_ context.Context, e *entity.COGSEntry) error {
	if r.failErr != nil {
		return r.failErr
	}
	k := r.key(e.AccountID, e.WeekStartDate)
	if existing, ok := r.entries[k]; ok {
		existing.Amount = e.Amount
		existing.WeekEndDate = e.WeekEndDate
		e.ID = existing.ID
		return nil
	}
	r.entries[k] = e
	return nil
}

func (r *memCOGSRepo) FindByRange(_ context.Context, accountID uuid.UUID, start, end time.Time) ([]*entity.COGSEntry, error) {
	out := make([]*entity.COGSEntry, 0)
	for _, e := range r.entries {
		if e.AccountID == accountID && !e.WeekEndDate.Before(start) && !e.WeekStartDate.After(end) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memCOGSRepo) FindByWeekStart(_ context.Context, accountID uuid.UUID, weekStart time.Time) (*entity.COGSEntry, error) {
	return r.entries[r.key(accountID, weekStart)], nil
}

func (r *memCOGSRepo) DeleteByAccount(_ context.Context, accountID uuid.UUID) (int64, error) {
	var n int64
	for k, e := range r.entries {
		if e.AccountID == accountID {
			delete(r.entries, k)
			n++
		}
	}
	return n, nil
}

type spyCache struct {
	invalidated []uuid.UUID
}

func (c *spyCache) Get(context.Context, adapter.AggregateKey) ([]entity.ChartDataPoint, bool, error) {
	return nil, false, nil
}

func (c *spyCache) Set(context.Context, adapter.AggregateKey, []entity.ChartDataPoint) error {
	return nil
}

func (c *spyCache) InvalidateAccount(_ context.Context, accountID uuid.UUID) error {
	c.invalidated = append(c.invalidated, accountID)
	return nil
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func TestSubmitCOGSUseCase(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.New()

	t.Run("derives monday to sunday when end omitted", func(t *testing.T) {
		repo := newMemCOGSRepo()
		cache := &spyCache{}
		uc := NewSubmitCOGSUseCase(repo, cache)

		out, err := uc.Execute(ctx, SubmitCOGSInput{AccountID: accountID, WeekStartDate: day("2024-01-03"), Amount: 700})

		require.NoError(t, err)
		assert.Equal(t, "2024-01-01", out.Entry.WeekStartDate.Format(entity.DateLayout))
		assert.Equal(t, "2024-01-07", out.Entry.WeekEndDate.Format(entity.DateLayout))
		assert.Equal(t, []uuid.UUID{accountID}, cache.invalidated)
	})

	t.Run("resubmitting replaces the amount", func(t *testing.T) {
		repo := newMemCOGSRepo()
		uc := NewSubmitCOGSUseCase(repo, nil)

		_, err := uc.Execute(ctx, SubmitCOGSInput{AccountID: accountID, WeekStartDate: day("2024-01-01"), Amount: 700})
		require.NoError(t, err)
		_, err = uc.Execute(ctx, SubmitCOGSInput{AccountID: accountID, WeekStartDate: day("2024-01-01"), Amount: 350})
		require.NoError(t, err)

		require.Len(t, repo.entries, 1)
		got, _ := repo.FindByWeekStart(ctx, accountID, day("2024-01-01"))
		assert.Equal(t, 350.0, got.Amount)
	})

	t.Run("validation", func(t *testing.T) {
		uc := NewSubmitCOGSUseCase(newMemCOGSRepo(), nil)
		end := day("2023-12-30")
		long := day("2024-01-09")

		tests := []struct {
			name  string
			input SubmitCOGSInput
			code  domainerror.COGSErrorCode
		}{
			{name: "missing week", input: SubmitCOGSInput{AccountID: accountID, Amount: 1}, code: domainerror.ErrCodeMissingCOGSWeek},
			{name: "negative amount", input: SubmitCOGSInput{AccountID: accountID, WeekStartDate: day("2024-01-01"), Amount: -1}, code: domainerror.ErrCodeInvalidCOGSAmount},
			{name: "inverted", input: SubmitCOGSInput{AccountID: accountID, WeekStartDate: day("2024-01-01"), WeekEndDate: &end, Amount: 1}, code: domainerror.ErrCodeInvalidCOGSWeek},
			{name: "too long", input: SubmitCOGSInput{AccountID: accountID, WeekStartDate: day("2024-01-01"), WeekEndDate: &long, Amount: 1}, code: domainerror.ErrCodeCOGSWeekTooLong},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := uc.Execute(ctx, tt.input)

				var cogsErr *domainerror.COGSError
				require.True(t, errors.As(err, &cogsErr))
				assert.Equal(t, tt.code, cogsErr.Code)
			})
		}
	})

	t.Run("repository failure is wrapped", func(t *testing.T) {
		repo := newMemCOGSRepo()
		repo.failErr = errors.New("connection reset")
		uc := NewSubmitCOGSUseCase(repo, nil)

		_, err := uc.Execute(ctx, SubmitCOGSInput{AccountID: accountID, WeekStartDate: day("2024-01-01"), Amount: 1})

		assert.ErrorIs(t, err, repo.failErr)
	})
}

func TestGetDailyCOGSUseCase(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.New()
	repo := newMemCOGSRepo()
	require.NoError(t, repo.Upsert(ctx, entity.NewCOGSEntry(accountID, day("2024-01-01"), day("2024-01-07"), 700)))

	out, err := NewGetDailyCOGSUseCase(repo).Execute(ctx, RangeInput{
		AccountID: accountID,
		StartDate: day("2024-01-03"),
		EndDate:   day("2024-01-05"),
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"2024-01-03": 100, "2024-01-04": 100, "2024-01-05": 100}, out.Daily)

	_, err = NewGetDailyCOGSUseCase(repo).Execute(ctx, RangeInput{AccountID: accountID, StartDate: day("2024-01-05"), EndDate: day("2024-01-01")})
	assert.ErrorIs(t, err, domainerror.ErrInvalidDateRange)
}

func TestDeleteCOGSUseCase(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.New()
	other := uuid.New()
	repo := newMemCOGSRepo()
	require.NoError(t, repo.Upsert(ctx, entity.NewCOGSEntry(accountID, day("2024-01-01"), day("2024-01-07"), 700)))
	require.NoError(t, repo.Upsert(ctx, entity.NewCOGSEntry(accountID, day("2024-01-08"), day("2024-01-14"), 700)))
	require.NoError(t, repo.Upsert(ctx, entity.NewCOGSEntry(other, day("2024-01-08"), day("2024-01-14"), 700)))
	cache := &spyCache{}

	deleted, err := NewDeleteCOGSUseCase(repo, cache).Execute(ctx, accountID)

	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
	assert.Len(t, repo.entries, 1)
	assert.Equal(t, []uuid.UUID{accountID}, cache.invalidated)
}

func TestGetCurrentWeekUseCase(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.New()
	repo := newMemCOGSRepo()
	clock := fixedClock{now: time.Date(2024, 1, 17, 9, 30, 0, 0, time.UTC)}
	uc := NewGetCurrentWeekUseCase(repo, clock)

	out, err := uc.Execute(ctx, accountID)
	require.NoError(t, err)
	assert.False(t, out.HasEntry)
	assert.Equal(t, "2024-01-15", out.WeekStartDate.Format(entity.DateLayout))
	assert.Equal(t, "2024-01-21", out.WeekEndDate.Format(entity.DateLayout))

	require.NoError(t, repo.Upsert(ctx, entity.NewCOGSEntry(accountID, day("2024-01-15"), day("2024-01-21"), 1400)))

	out, err = uc.Execute(ctx, accountID)
	require.NoError(t, err)
	assert.True(t, out.HasEntry)
	assert.Equal(t, 1400.0, out.Amount)
	assert.Equal(t, 200.0, out.DailyCost)
}
