// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ImportStatus represents the state of an asynchronous sales import.
type ImportStatus string

const (
	ImportStatusPending    ImportStatus = "pending"
	ImportStatusProcessing ImportStatus = "processing"
	ImportStatusCompleted  ImportStatus = "completed"
	ImportStatusError      ImportStatus = "error"
)

// IsTerminal reports whether polling can stop.
func (s ImportStatus) IsTerminal() bool {
	return s == ImportStatusCompleted || s == ImportStatusError
}

// ImportJob tracks a sales import from the point-of-sale system.
type ImportJob struct {
	ID           string       `json:"id"`
	AccountID    uuid.UUID    `json:"account_id"`
	Status       ImportStatus `json:"status"`
	StartDate    time.Time    `json:"start_date"`
	EndDate      time.Time    `json:"end_date"`
	RowsImported int          `json:"rows_imported"`
	RowsRejected int          `json:"rows_rejected"`
	Error        string       `json:"error,omitempty"`
	ErrorCode    string       `json:"error_code,omitempty"`
	Retryable    bool         `json:"retryable,omitempty"`
	StartedAt    time.Time    `json:"started_at"`
	FinishedAt   *time.Time   `json:"finished_at,omitempty"`
}
