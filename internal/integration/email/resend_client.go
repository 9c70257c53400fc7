// Package email provides email sending functionality via Resend.
package email

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/menu-pricing/backend/internal/application/adapter"
	domainerror "github.com/menu-pricing/backend/internal/domain/error"
	"github.com/menu-pricing/backend/internal/integration/email/templates"
)

// reminderDateLayout renders week bounds in reminder e-mails.
const reminderDateLayout = "Mon, Jan 2"

// ResendClient implements the adapter.EmailSender interface using Resend.
type ResendClient struct {
	client    *resend.Client
	renderer  *templates.Renderer
	fromName  string
	fromEmail string
}

// NewResendClient creates a new Resend client.
func NewResendClient(apiKey, fromName, fromEmail string, renderer *templates.Renderer) *ResendClient {
	return &ResendClient{
		client:    resend.NewClient(apiKey),
		renderer:  renderer,
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// SendCOGSReminder renders and sends the weekly COGS reminder.
func (c *ResendClient) SendCOGSReminder(ctx context.Context, reminder adapter.COGSReminder) (*adapter.SendResult, error) {
	subject, html, text, err := RenderCOGSReminder(c.renderer, reminder)
	if err != nil {
		return nil, err
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{reminder.To},
		Subject: subject,
		Html:    html,
		Text:    text,
	}

	resp, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		if isPermanentError(err) {
			return nil, domainerror.NewEmailError(
				domainerror.ErrCodePermanentEmailFailure,
				"permanent email failure",
				err,
			)
		}
		return nil, domainerror.NewEmailError(
			domainerror.ErrCodeTemporaryEmailFailure,
			"temporary email failure",
			err,
		)
	}

	return &adapter.SendResult{
		ResendID: resp.Id,
	}, nil
}

// RenderCOGSReminder builds the subject and bodies of a reminder.
func RenderCOGSReminder(renderer *templates.Renderer, reminder adapter.COGSReminder) (subject, html, text string, err error) {
	data := templates.COGSReminderData{
		WeekStart:       reminder.WeekStartDate.Format(reminderDateLayout),
		WeekEnd:         reminder.WeekEndDate.Format(reminderDateLayout),
		DashboardURL:    reminder.DashboardURL,
		EstimatePercent: int(math.Round(reminder.EstimateRatio * 100)),
	}

	html, text, err = renderer.Render(templates.COGSReminder, data)
	if err != nil {
		return "", "", "", domainerror.NewEmailError(
			domainerror.ErrCodeTemplateRenderFailed,
			"failed to render cogs reminder",
			err,
		)
	}

	subject = fmt.Sprintf("Enter your COGS for the week of %s", data.WeekStart)
	return subject, html, text, nil
}

// isPermanentError checks if the error is a permanent error that should not be retried.
// Permanent errors include: 401 (Unauthorized), 403 (Forbidden), 422 (Validation Error)
// Temporary errors include: 429 (Rate Limit), 5xx (Server Errors)
func isPermanentError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())

	permanentPatterns := []string{
		"401",
		"403",
		"422",
		"unauthorized",
		"forbidden",
		"validation",
		"invalid",
		"bad request",
	}

	for _, pattern := range permanentPatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}

	return false
}

// MockEmailSender is a mock implementation for testing.
type MockEmailSender struct {
	Sent       []adapter.COGSReminder
	ShouldFail bool
	FailError  error
}

// NewMockEmailSender creates a new mock email sender.
func NewMockEmailSender() *MockEmailSender {
	return &MockEmailSender{
		Sent: make([]adapter.COGSReminder, 0),
	}
}

// SendCOGSReminder records the reminder or fails as configured.
func (m *MockEmailSender) SendCOGSReminder(_ context.Context, reminder adapter.COGSReminder) (*adapter.SendResult, error) {
	if m.ShouldFail {
		return nil, domainerror.NewEmailError(
			domainerror.ErrCodeTemporaryEmailFailure,
			"mock temporary failure",
			m.FailError,
		)
	}

	m.Sent = append(m.Sent, reminder)

	return &adapter.SendResult{
		ResendID: fmt.Sprintf("mock-%d", len(m.Sent)),
	}, nil
}

// Reset clears all sent emails and failure configuration.
func (m *MockEmailSender) Reset() {
	m.Sent = make([]adapter.COGSReminder, 0)
	m.ShouldFail = false
	m.FailError = nil
}

// Ensure implementations satisfy interfaces.
var (
	_ adapter.EmailSender = (*ResendClient)(nil)
	_ adapter.EmailSender = (*MockEmailSender)(nil)
)
