// Package salesimport contains the asynchronous point-of-sale import use cases.
package salesimport

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/menu-pricing/backend/internal/domain/entity"
)

// InMemoryImportTracker is a simple in-memory implementation of adapter.ImportTracker.
type InMemoryImportTracker struct {
	mu      sync.RWMutex
	jobs    map[string]*entity.ImportJob
	running map[uuid.UUID]string
}

// NewInMemoryImportTracker creates a new in-memory import tracker.
func NewInMemoryImportTracker() *InMemoryImportTracker {
	return &InMemoryImportTracker{
		jobs:    make(map[string]*entity.ImportJob),
		running: make(map[uuid.UUID]string),
	}
}

// TryStart registers the job unless the account already has one running.
func (t *InMemoryImportTracker) TryStart(_ context.Context, job *entity.ImportJob) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.running[job.AccountID]; ok {
		return false, nil
	}
	t.running[job.AccountID] = job.ID
	copied := *job
	t.jobs[job.ID] = &copied
	return true, nil
}

// Update stores the job state and frees the account slot on terminal states.
func (t *InMemoryImportTracker) Update(_ context.Context, job *entity.ImportJob) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	copied := *job
	t.jobs[job.ID] = &copied
	if job.Status.IsTerminal() && t.running[job.AccountID] == job.ID {
		delete(t.running, job.AccountID)
	}
	return nil
}

// Get returns a copy of the job, or nil when unknown.
func (t *InMemoryImportTracker) Get(_ context.Context, jobID string) (*entity.ImportJob, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	job, ok := t.jobs[jobID]
	if !ok {
		return nil, nil
	}
	copied := *job
	return &copied, nil
}

// Running returns the account's running job ID.
func (t *InMemoryImportTracker) Running(_ context.Context, accountID uuid.UUID) (string, bool, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	jobID, ok := t.running[accountID]
	return jobID, ok, nil
}
