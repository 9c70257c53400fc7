// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the ISO calendar date layout used for day keys.
const DateLayout = "2006-01-02"

// COGSEntry is the cost of goods sold recorded for one calendar week.
// Exactly one entry is authoritative per account and week start.
type COGSEntry struct {
	ID            uuid.UUID
	AccountID     uuid.UUID
	WeekStartDate time.Time
	WeekEndDate   time.Time // Inclusive
	Amount        float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewCOGSEntry creates a new COGSEntry entity.
func NewCOGSEntry(accountID uuid.UUID, weekStart, weekEnd time.Time, amount float64) *COGSEntry {
	now := time.Now().UTC()

	return &COGSEntry{
		ID:            uuid.New(),
		AccountID:     accountID,
		WeekStartDate: weekStart,
		WeekEndDate:   weekEnd,
		Amount:        amount,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// DaysInWeek returns the inclusive number of calendar days covered by the entry.
// Partial weeks yield fewer than 7; an inverted range yields a value <= 0.
func (e *COGSEntry) DaysInWeek() int {
	return DaysBetween(e.WeekStartDate, e.WeekEndDate) + 1
}

// Covers reports whether the given calendar day falls inside the entry's week.
// Only the calendar dates are compared, so locations may differ.
func (e *COGSEntry) Covers(day time.Time) bool {
	return DaysBetween(e.WeekStartDate, day) >= 0 && DaysBetween(day, e.WeekEndDate) >= 0
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekStart returns the Monday of the week containing t.
func WeekStart(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday is 7
	}
	return time.Date(t.Year(), t.Month(), t.Day()-(weekday-1), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the number of calendar days from a to b, ignoring clock time.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	start := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	end := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}
