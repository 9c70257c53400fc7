// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActionItemStatus represents the progress of an action item.
type ActionItemStatus string

const (
	ActionItemStatusPending    ActionItemStatus = "pending"
	ActionItemStatusInProgress ActionItemStatus = "in_progress"
	ActionItemStatusCompleted  ActionItemStatus = "completed"
)

// ActionItemType represents what the user is prompted to do.
type ActionItemType string

const (
	ActionItemTypeCOGSEntry ActionItemType = "cogs_entry"
)

// ActionItem is a weekly prompt asking the account to record its COGS.
type ActionItem struct {
	ID            uuid.UUID
	AccountID     uuid.UUID
	Type          ActionItemType
	WeekStartDate time.Time
	WeekEndDate   time.Time
	Status        ActionItemStatus
	LastError     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	CompletedAt   *time.Time
}

// NewCOGSActionItem creates a pending COGS entry prompt for the week starting at weekStart.
func NewCOGSActionItem(accountID uuid.UUID, weekStart time.Time) *ActionItem {
	now := time.Now().UTC()
	start := StartOfDay(weekStart)

	return &ActionItem{
		ID:            uuid.New(),
		AccountID:     accountID,
		Type:          ActionItemTypeCOGSEntry,
		WeekStartDate: start,
		WeekEndDate:   start.AddDate(0, 0, 6),
		Status:        ActionItemStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// CanStart reports whether the item may move to in_progress.
func (a *ActionItem) CanStart() bool {
	return a.Status == ActionItemStatusPending
}

// CanComplete reports whether the item may move to completed.
func (a *ActionItem) CanComplete() bool {
	return a.Status == ActionItemStatusInProgress
}

// MarkInProgress moves the item from pending to in_progress.
func (a *ActionItem) MarkInProgress() {
	a.Status = ActionItemStatusInProgress
	a.UpdatedAt = time.Now().UTC()
}

// MarkCompleted marks the item as done and clears any previous failure.
func (a *ActionItem) MarkCompleted() {
	now := time.Now().UTC()
	a.Status = ActionItemStatusCompleted
	a.LastError = ""
	a.CompletedAt = &now
	a.UpdatedAt = now
}

// MarkFailed records a failed submission. The item stays in_progress for a manual retry.
func (a *ActionItem) MarkFailed(err error) {
	a.LastError = err.Error()
	a.UpdatedAt = time.Now().UTC()
}

// IsOpen reports whether the item still awaits a submission.
func (a *ActionItem) IsOpen() bool {
	return a.Status != ActionItemStatusCompleted
}
