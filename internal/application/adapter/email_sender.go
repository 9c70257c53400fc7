// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// COGSReminder holds the data of a weekly COGS reminder e-mail.
type COGSReminder struct {
	To            string
	WeekStartDate time.Time
	WeekEndDate   time.Time
	DashboardURL  string
	// EstimateRatio is the share of revenue assumed as cost until COGS is entered.
	EstimateRatio float64
}

// SendResult holds the provider's answer to a send.
type SendResult struct {
	ResendID string
}

// EmailSender defines the interface for sending e-mails.
type EmailSender interface {
	// SendCOGSReminder sends the weekly reminder to record COGS.
	SendCOGSReminder(ctx context.Context, reminder COGSReminder) (*SendResult, error)
}
