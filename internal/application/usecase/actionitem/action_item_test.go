package actionitem

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menu-pricing/backend/internal/application/usecase/cogs"
	"github.com/menu-pricing/backend/internal/domain/entity"
	domainerror "github.com/menu-pricing/backend/internal/domain/error"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type memItemRepo struct {
	items map[uuid.UUID]*entity.ActionItem
}

func newMemItemRepo() *memItemRepo {
	return &memItemRepo{items: make(map[uuid.UUID]*entity.ActionItem)}
}

func (r *memItemRepo) Create(_ context.Context, item *entity.ActionItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *memItemRepo) FindByID(_ context.Context, id, accountID uuid.UUID) (*entity.ActionItem, error) {
	item, ok := r.items[id]
	if !ok || item.AccountID != accountID {
		return nil, domainerror.ErrActionItemNotFound
	}
	return item, nil
}

func (r *memItemRepo) FindByAccount(_ context.Context, accountID uuid.UUID) ([]*entity.ActionItem, error) {
	out := make([]*entity.ActionItem, 0)
	for _, item := range r.items {
		if item.AccountID == accountID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *memItemRepo) FindByAccountAndWeek(_ context.Context, accountID uuid.UUID, itemType entity.ActionItemType, weekStart time.Time) (*entity.ActionItem, error) {
	for _, item := range r.items {
		if item.AccountID == accountID && item.Type == itemType && item.WeekStartDate.Equal(weekStart) {
			return item, nil
		}
	}
	return nil, nil
}

func (r *memItemRepo) FindOpenByType(_ context.Context, itemType entity.ActionItemType) ([]*entity.ActionItem, error) {
	out := make([]*entity.ActionItem, 0)
	for _, item := range r.items {
		if item.Type == itemType && item.IsOpen() {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *memItemRepo) Update(_ context.Context, item *entity.ActionItem) error {
	r.items[item.ID] = item
	return nil
}

type stubSubmitter struct {
	err   error
	calls []cogs.SubmitCOGSInput
}

func (s *stubSubmitter) Execute(_ context.Context, input cogs.SubmitCOGSInput) (*cogs.SubmitCOGSOutput, error) {
	s.calls = append(s.calls, input)
	if s.err != nil {
		return nil, s.err
	}
	return &cogs.SubmitCOGSOutput{Entry: entity.NewCOGSEntry(input.AccountID, input.WeekStartDate, *input.WeekEndDate, input.Amount)}, nil
}

func actionErrCode(t *testing.T, err error) domainerror.ActionItemErrorCode {
	t.Helper()
	var actionErr *domainerror.ActionItemError
	require.True(t, errors.As(err, &actionErr), "expected ActionItemError, got %v", err)
	return actionErr.Code
}

func TestService_Flow(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.New()
	clock := fixedClock{now: time.Date(2024, 1, 17, 10, 0, 0, 0, time.UTC)}

	t.Run("pending to in_progress to completed", func(t *testing.T) {
		repo := newMemItemRepo()
		submitter := &stubSubmitter{}
		svc := NewService(repo, submitter, clock)

		item, created, err := svc.EnsureCurrentWeek(ctx, accountID)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, entity.ActionItemStatusPending, item.Status)
		assert.Equal(t, "2024-01-15", item.WeekStartDate.Format(entity.DateLayout))

		item, err = svc.Start(ctx, accountID, item.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.ActionItemStatusInProgress, item.Status)

		item, err = svc.Complete(ctx, accountID, item.ID, 1400)
		require.NoError(t, err)
		assert.Equal(t, entity.ActionItemStatusCompleted, item.Status)
		assert.NotNil(t, item.CompletedAt)

		require.Len(t, submitter.calls, 1)
		assert.Equal(t, 1400.0, submitter.calls[0].Amount)
		assert.Equal(t, "2024-01-21", submitter.calls[0].WeekEndDate.Format(entity.DateLayout))
	})

	t.Run("entry recorded elsewhere completes a pending item", func(t *testing.T) {
		repo := newMemItemRepo()
		submitter := &stubSubmitter{}
		svc := NewService(repo, submitter, clock)
		item, _, err := svc.EnsureCurrentWeek(ctx, accountID)
		require.NoError(t, err)
		require.Equal(t, entity.ActionItemStatusPending, item.Status)

		require.NoError(t, svc.CompleteFromEntry(ctx, item))

		stored := repo.items[item.ID]
		assert.Equal(t, entity.ActionItemStatusCompleted, stored.Status)
		assert.NotNil(t, stored.CompletedAt)
		assert.Empty(t, submitter.calls)

		completedAt := *stored.CompletedAt
		require.NoError(t, svc.CompleteFromEntry(ctx, stored))
		assert.Equal(t, completedAt, *repo.items[item.ID].CompletedAt)
	})

	t.Run("ensure is idempotent", func(t *testing.T) {
		repo := newMemItemRepo()
		svc := NewService(repo, &stubSubmitter{}, clock)

		first, _, err := svc.EnsureCurrentWeek(ctx, accountID)
		require.NoError(t, err)
		second, created, err := svc.EnsureCurrentWeek(ctx, accountID)
		require.NoError(t, err)

		assert.False(t, created)
		assert.Equal(t, first.ID, second.ID)
		assert.Len(t, repo.items, 1)
	})

	t.Run("complete requires in_progress", func(t *testing.T) {
		repo := newMemItemRepo()
		svc := NewService(repo, &stubSubmitter{}, clock)
		item, _, err := svc.EnsureCurrentWeek(ctx, accountID)
		require.NoError(t, err)

		_, err = svc.Complete(ctx, accountID, item.ID, 10)

		assert.Equal(t, domainerror.ErrCodeInvalidActionItemTransition, actionErrCode(t, err))
		assert.Equal(t, entity.ActionItemStatusPending, repo.items[item.ID].Status)
	})

	t.Run("start twice is rejected", func(t *testing.T) {
		repo := newMemItemRepo()
		svc := NewService(repo, &stubSubmitter{}, clock)
		item, _, err := svc.EnsureCurrentWeek(ctx, accountID)
		require.NoError(t, err)
		_, err = svc.Start(ctx, accountID, item.ID)
		require.NoError(t, err)

		_, err = svc.Start(ctx, accountID, item.ID)

		assert.Equal(t, domainerror.ErrCodeInvalidActionItemTransition, actionErrCode(t, err))
	})

	t.Run("completed item cannot restart", func(t *testing.T) {
		repo := newMemItemRepo()
		svc := NewService(repo, &stubSubmitter{}, clock)
		item, _, _ := svc.EnsureCurrentWeek(ctx, accountID)
		_, _ = svc.Start(ctx, accountID, item.ID)
		_, err := svc.Complete(ctx, accountID, item.ID, 5)
		require.NoError(t, err)

		_, err = svc.Start(ctx, accountID, item.ID)
		assert.ErrorIs(t, err, domainerror.ErrInvalidActionItemTransition)
	})

	t.Run("failed submission stays in_progress", func(t *testing.T) {
		repo := newMemItemRepo()
		submitter := &stubSubmitter{err: errors.New("database unavailable")}
		svc := NewService(repo, submitter, clock)
		item, _, _ := svc.EnsureCurrentWeek(ctx, accountID)
		_, err := svc.Start(ctx, accountID, item.ID)
		require.NoError(t, err)

		_, err = svc.Complete(ctx, accountID, item.ID, 700)

		assert.Equal(t, domainerror.ErrCodeActionItemSubmissionFailed, actionErrCode(t, err))
		stored := repo.items[item.ID]
		assert.Equal(t, entity.ActionItemStatusInProgress, stored.Status)
		assert.Equal(t, "database unavailable", stored.LastError)

		// Manual retry succeeds once the store is back.
		submitter.err = nil
		done, err := svc.Complete(ctx, accountID, item.ID, 700)
		require.NoError(t, err)
		assert.Equal(t, entity.ActionItemStatusCompleted, done.Status)
		assert.Empty(t, done.LastError)
	})

	t.Run("validation error is returned as is", func(t *testing.T) {
		repo := newMemItemRepo()
		submitter := &stubSubmitter{err: domainerror.NewCOGSError(domainerror.ErrCodeInvalidCOGSAmount, "amount must not be negative", domainerror.ErrInvalidCOGSAmount)}
		svc := NewService(repo, submitter, clock)
		item, _, _ := svc.EnsureCurrentWeek(ctx, accountID)
		_, _ = svc.Start(ctx, accountID, item.ID)

		_, err := svc.Complete(ctx, accountID, item.ID, -1)

		assert.ErrorIs(t, err, domainerror.ErrInvalidCOGSAmount)
		assert.Equal(t, entity.ActionItemStatusInProgress, repo.items[item.ID].Status)
	})

	t.Run("other account cannot act", func(t *testing.T) {
		repo := newMemItemRepo()
		svc := NewService(repo, &stubSubmitter{}, clock)
		item, _, _ := svc.EnsureCurrentWeek(ctx, accountID)

		_, err := svc.Start(ctx, uuid.New(), item.ID)

		assert.Equal(t, domainerror.ErrCodeActionItemNotFound, actionErrCode(t, err))
	})
}
