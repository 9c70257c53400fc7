package worker

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
)

type fakeItemRepo struct {
	items   []*entity.ActionItem
	loadErr error
	updated int
}

func (r *fakeItemRepo) Create(context.Context, *entity.ActionItem) error { return nil }
func (r *fakeItemRepo) FindByID(context.Context, uuid.UUID, uuid.UUID) (*entity.ActionItem, error) {
	return nil, nil
}
func (r *fakeItemRepo) FindByAccount(context.Context, uuid.UUID) ([]*entity.ActionItem, error) {
	return r.items, nil
}
func (r *fakeItemRepo) FindByAccountAndWeek(context.Context, uuid.UUID, entity.ActionItemType, time.Time) (*entity.ActionItem, error) {
	return nil, nil
}
func (r *fakeItemRepo) FindOpenByType(_ context.Context, itemType entity.ActionItemType) ([]*entity.ActionItem, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	out := make([]*entity.ActionItem, 0)
	for _, item := range r.items {
		if item.Type == itemType && item.IsOpen() {
			out = append(out, item)
		}
	}
	return out, nil
}
func (r *fakeItemRepo) Update(context.Context, *entity.ActionItem) error {
	r.updated++
	return nil
}

type fakeCOGSRepo struct {
	entries map[string]*entity.COGSEntry
	failFor uuid.UUID
}

func (r *fakeCOGSRepo) key(accountID uuid.UUID, weekStart time.Time) string {
	return accountID.String() + weekStart.Format(entity.DateLayout)
}

func (r *fakeCOGSRepo) Upsert(_ context.Context, entry *entity.COGSEntry) error {
	r.entries[r.key(entry.AccountID, entry.WeekStartDate)] = entry
	return nil
}
func (r *fakeCOGSRepo) FindByRange(context.Context, uuid.UUID, time.Time, time.Time) ([]*entity.COGSEntry, error) {
	return nil, nil
}
func (r *fakeCOGSRepo) FindByWeekStart(_ context.Context, accountID uuid.UUID, weekStart time.Time) (*entity.COGSEntry, error) {
	if accountID == r.failFor {
		return nil, errors.New("connection reset")
	}
	return r.entries[r.key(accountID, weekStart)], nil
}
func (r *fakeCOGSRepo) DeleteByAccount(context.Context, uuid.UUID) (int64, error) { return 0, nil }

type itemCompleter struct {
	repo *fakeItemRepo
}

func (c itemCompleter) CompleteFromEntry(ctx context.Context, item *entity.ActionItem) error {
	item.MarkCompleted()
	return c.repo.Update(ctx, item)
}

type recordingCache struct {
	invalidated []uuid.UUID
}

func (c *recordingCache) Get(context.Context, adapter.AggregateKey) ([]entity.ChartDataPoint, bool, error) {
	return nil, false, nil
}
func (c *recordingCache) Set(context.Context, adapter.AggregateKey, []entity.ChartDataPoint) error {
	return nil
}
func (c *recordingCache) InvalidateAccount(_ context.Context, accountID uuid.UUID) error {
	c.invalidated = append(c.invalidated, accountID)
	return nil
}

func TestCOGSRefresher_Refresh(t *testing.T) {
	weekStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	entered := uuid.New()
	missing := uuid.New()

	itemRepo := &fakeItemRepo{items: []*entity.ActionItem{
		entity.NewCOGSActionItem(entered, weekStart),
		entity.NewCOGSActionItem(missing, weekStart),
	}}
	cogsRepo := &fakeCOGSRepo{entries: map[string]*entity.COGSEntry{}}
	require.NoError(t, cogsRepo.Upsert(context.Background(),
		entity.NewCOGSEntry(entered, weekStart, weekStart.AddDate(0, 0, 6), 700)))
	cache := &recordingCache{}

	w := NewCOGSRefresher(itemRepo, cogsRepo, itemCompleter{repo: itemRepo}, cache, COGSRefresherConfig{})

	completed := w.Refresh(context.Background())

	assert.Equal(t, 1, completed)
	assert.Equal(t, entity.ActionItemStatusCompleted, itemRepo.items[0].Status)
	assert.Equal(t, entity.ActionItemStatusPending, itemRepo.items[1].Status)
	assert.Equal(t, []uuid.UUID{entered}, cache.invalidated)

	// A second pass has nothing left to complete for the entered account.
	assert.Equal(t, 0, w.Refresh(context.Background()))
}

func TestCOGSRefresher_FailuresAreSwallowed(t *testing.T) {
	weekStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	broken := uuid.New()
	healthy := uuid.New()

	itemRepo := &fakeItemRepo{items: []*entity.ActionItem{
		entity.NewCOGSActionItem(broken, weekStart),
		entity.NewCOGSActionItem(healthy, weekStart),
	}}
	cogsRepo := &fakeCOGSRepo{entries: map[string]*entity.COGSEntry{}, failFor: broken}
	require.NoError(t, cogsRepo.Upsert(context.Background(),
		entity.NewCOGSEntry(healthy, weekStart, weekStart.AddDate(0, 0, 6), 350)))

	w := NewCOGSRefresher(itemRepo, cogsRepo, itemCompleter{repo: itemRepo}, &recordingCache{}, COGSRefresherConfig{})

	assert.Equal(t, 1, w.Refresh(context.Background()))
	assert.True(t, itemRepo.items[0].IsOpen())

	itemRepo.loadErr = errors.New("database unavailable")
	assert.Equal(t, 0, w.Refresh(context.Background()))
}

func TestCOGSRefresher_StartStopsOnCancel(t *testing.T) {
	itemRepo := &fakeItemRepo{}
	w := NewCOGSRefresher(itemRepo, &fakeCOGSRepo{entries: map[string]*entity.COGSEntry{}},
		itemCompleter{repo: itemRepo}, &recordingCache{}, COGSRefresherConfig{Interval: time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	time.Sleep(5 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("refresher did not stop after cancel")
	}
}
