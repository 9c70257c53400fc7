package salesimport

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menu-pricing/backend/internal/application/adapter"
	"github.com/menu-pricing/backend/internal/domain/entity"
	domainerror "github.com/menu-pricing/backend/internal/domain/error"
)

type fakeUpstream struct {
	mu        sync.Mutex
	available bool
	statuses  []entity.ImportStatus
	polls     int
	rows      *adapter.ExportRows
	fetchErr  error
	release   chan struct{}
}

func (f *fakeUpstream) RequestExport(_ context.Context, _ adapter.ExportRequest) (*adapter.ExportHandle, error) {
	if f.release != nil {
		<-f.release
	}
	return &adapter.ExportHandle{ExportID: "exp-1", ProcessID: "proc-1"}, nil
}

func (f *fakeUpstream) ProcessStatus(_ context.Context, _ string) (entity.ImportStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	status := f.statuses[min(f.polls, len(f.statuses)-1)]
	f.polls++
	return status, nil
}

func (f *fakeUpstream) FetchRows(_ context.Context, _ uuid.UUID, _ string) (*adapter.ExportRows, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.rows, nil
}

func (f *fakeUpstream) IsAvailable() bool { return f.available }

type memSales struct {
	mu      sync.Mutex
	records []*entity.SalesRecord
}

func (m *memSales) UpsertBatch(_ context.Context, records []*entity.SalesRecord) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, records...)
	return len(records), nil
}

func (m *memSales) FindByPeriod(context.Context, uuid.UUID, time.Time, time.Time) ([]*entity.SalesRecord, error) {
	return nil, nil
}

type countingCache struct {
	mu          sync.Mutex
	invalidated int
}

func (c *countingCache) Get(context.Context, adapter.AggregateKey) ([]entity.ChartDataPoint, bool, error) {
	return nil, false, nil
}

func (c *countingCache) Set(context.Context, adapter.AggregateKey, []entity.ChartDataPoint) error {
	return nil
}

func (c *countingCache) InvalidateAccount(context.Context, uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated++
	return nil
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var (
	now       = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	startDate = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	endDate   = time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
)

func newUseCase(upstream *fakeUpstream, sales *memSales, tracker adapter.ImportTracker, cache adapter.AggregateCache) *StartImportUseCase {
	return NewStartImportUseCase(upstream, sales, tracker, cache, fixedClock{now: now}, nil, Options{
		PollInterval: time.Millisecond,
		JobTimeout:   time.Second,
	})
}

func waitTerminal(t *testing.T, tracker adapter.ImportTracker, jobID string) *entity.ImportJob {
	t.Helper()
	var job *entity.ImportJob
	require.Eventually(t, func() bool {
		job, _ = tracker.Get(context.Background(), jobID)
		return job != nil && job.Status.IsTerminal()
	}, 2*time.Second, 5*time.Millisecond)
	return job
}

func TestStartImport_CompletesAfterPolling(t *testing.T) {
	accountID := uuid.New()
	upstream := &fakeUpstream{
		available: true,
		statuses:  []entity.ImportStatus{entity.ImportStatusProcessing, entity.ImportStatusProcessing, entity.ImportStatusCompleted},
		rows: &adapter.ExportRows{
			Records: []*entity.SalesRecord{
				{ExternalLineID: "l1", OrderID: "o1", ItemName: "Burger", Quantity: 1, Revenue: 12},
				{ExternalLineID: "l2", OrderID: "o1", ItemName: "Fries", Quantity: 2, Revenue: 6},
			},
			Rejected: 1,
		},
	}
	sales := &memSales{}
	tracker := NewInMemoryImportTracker()
	cache := &countingCache{}

	out, err := newUseCase(upstream, sales, tracker, cache).Execute(context.Background(), StartImportInput{
		AccountID: accountID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ImportStatusPending, out.Job.Status)

	job := waitTerminal(t, tracker, out.Job.ID)
	assert.Equal(t, entity.ImportStatusCompleted, job.Status)
	assert.Equal(t, 2, job.RowsImported)
	assert.Equal(t, 1, job.RowsRejected)
	assert.Equal(t, 3, upstream.polls)
	require.Len(t, sales.records, 2)
	assert.Equal(t, accountID, sales.records[0].AccountID)
	assert.Equal(t, 1, cache.invalidated)

	_, running, _ := tracker.Running(context.Background(), accountID)
	assert.False(t, running)
}

func TestStartImport_UpstreamProcessError(t *testing.T) {
	upstream := &fakeUpstream{
		available: true,
		statuses:  []entity.ImportStatus{entity.ImportStatusError},
	}
	tracker := NewInMemoryImportTracker()

	out, err := newUseCase(upstream, &memSales{}, tracker, nil).Execute(context.Background(), StartImportInput{
		AccountID: uuid.New(),
		StartDate: startDate,
		EndDate:   endDate,
	})
	require.NoError(t, err)

	job := waitTerminal(t, tracker, out.Job.ID)
	assert.Equal(t, entity.ImportStatusError, job.Status)
	assert.Equal(t, ErrCodeExportFailed, job.ErrorCode)
	assert.True(t, job.Retryable)
	assert.NotEmpty(t, job.Error)
}

func TestStartImport_InvalidPayloadIsNotRetryable(t *testing.T) {
	upstream := &fakeUpstream{
		available: true,
		statuses:  []entity.ImportStatus{entity.ImportStatusCompleted},
		fetchErr:  domainerror.ErrInvalidUpstreamPayload,
	}
	tracker := NewInMemoryImportTracker()

	out, err := newUseCase(upstream, &memSales{}, tracker, nil).Execute(context.Background(), StartImportInput{
		AccountID: uuid.New(),
		StartDate: startDate,
		EndDate:   endDate,
	})
	require.NoError(t, err)

	job := waitTerminal(t, tracker, out.Job.ID)
	assert.Equal(t, ErrCodeUpstreamPayload, job.ErrorCode)
	assert.False(t, job.Retryable)
}

func TestStartImport_OneRunningImportPerAccount(t *testing.T) {
	accountID := uuid.New()
	upstream := &fakeUpstream{
		available: true,
		statuses:  []entity.ImportStatus{entity.ImportStatusCompleted},
		rows:      &adapter.ExportRows{},
		release:   make(chan struct{}),
	}
	tracker := NewInMemoryImportTracker()
	uc := newUseCase(upstream, &memSales{}, tracker, nil)
	input := StartImportInput{AccountID: accountID, StartDate: startDate, EndDate: endDate}

	first, err := uc.Execute(context.Background(), input)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), input)
	var importErr *domainerror.ImportError
	require.True(t, errors.As(err, &importErr))
	assert.Equal(t, domainerror.ErrCodeImportAlreadyRunning, importErr.Code)

	// Another account is not blocked.
	other := input
	other.AccountID = uuid.New()
	second, err := uc.Execute(context.Background(), other)
	require.NoError(t, err)

	close(upstream.release)
	waitTerminal(t, tracker, first.Job.ID)
	waitTerminal(t, tracker, second.Job.ID)

	_, err = uc.Execute(context.Background(), input)
	require.NoError(t, err)
}

func TestStartImport_Validation(t *testing.T) {
	tracker := NewInMemoryImportTracker()

	t.Run("upstream unavailable", func(t *testing.T) {
		uc := newUseCase(&fakeUpstream{available: false}, &memSales{}, tracker, nil)
		_, err := uc.Execute(context.Background(), StartImportInput{AccountID: uuid.New(), StartDate: startDate, EndDate: endDate})
		var importErr *domainerror.ImportError
		require.True(t, errors.As(err, &importErr))
		assert.Equal(t, domainerror.ErrCodeUpstreamUnavailable, importErr.Code)
	})

	t.Run("inverted range", func(t *testing.T) {
		uc := newUseCase(&fakeUpstream{available: true}, &memSales{}, tracker, nil)
		_, err := uc.Execute(context.Background(), StartImportInput{AccountID: uuid.New(), StartDate: endDate, EndDate: startDate})
		var importErr *domainerror.ImportError
		require.True(t, errors.As(err, &importErr))
		assert.Equal(t, domainerror.ErrCodeInvalidImportRange, importErr.Code)
	})

	t.Run("range too large", func(t *testing.T) {
		uc := newUseCase(&fakeUpstream{available: true}, &memSales{}, tracker, nil)
		_, err := uc.Execute(context.Background(), StartImportInput{
			AccountID: uuid.New(),
			StartDate: startDate,
			EndDate:   startDate.AddDate(2, 0, 0),
		})
		var importErr *domainerror.ImportError
		require.True(t, errors.As(err, &importErr))
		assert.Equal(t, domainerror.ErrCodeInvalidImportRange, importErr.Code)
	})
}

func TestGetImport_ScopedToAccount(t *testing.T) {
	tracker := NewInMemoryImportTracker()
	accountID := uuid.New()
	job := &entity.ImportJob{ID: "job-1", AccountID: accountID, Status: entity.ImportStatusProcessing}
	ok, err := tracker.TryStart(context.Background(), job)
	require.NoError(t, err)
	require.True(t, ok)

	uc := NewGetImportUseCase(tracker)

	got, err := uc.Execute(context.Background(), GetImportInput{AccountID: accountID, JobID: "job-1"})
	require.NoError(t, err)
	assert.Equal(t, entity.ImportStatusProcessing, got.Status)

	_, err = uc.Execute(context.Background(), GetImportInput{AccountID: uuid.New(), JobID: "job-1"})
	assert.ErrorIs(t, err, domainerror.ErrImportNotFound)

	_, err = uc.Execute(context.Background(), GetImportInput{AccountID: accountID, JobID: "missing"})
	assert.ErrorIs(t, err, domainerror.ErrImportNotFound)
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		err       error
		code      string
		retryable bool
	}{
		{context.DeadlineExceeded, ErrCodeImportTimeout, true},
		{errors.New("status 429: rate limit"), ErrCodeUpstreamRateLimited, true},
		{errors.New("status 401"), ErrCodeUpstreamAuthError, false},
		{errors.New("dial tcp: connection refused"), ErrCodeUpstreamUnavailable, true},
		{errors.New("json: cannot unmarshal"), ErrCodeUpstreamPayload, false},
		{errors.New("boom"), ErrCodeImportUnknownError, true},
	}
	for _, tt := range tests {
		got := classifyError(tt.err)
		assert.Equal(t, tt.code, got.Code, tt.err.Error())
		assert.Equal(t, tt.retryable, got.Retryable, tt.err.Error())
		assert.NotEmpty(t, got.Message)
	}
}
