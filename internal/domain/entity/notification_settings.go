// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationSettings holds an account's reminder preferences.
type NotificationSettings struct {
	AccountID          uuid.UUID
	Email              string
	WeeklyCOGSReminder bool
	UpdatedAt          time.Time
}
