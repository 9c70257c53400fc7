// Package error defines domain-specific errors for the Menu Pricing application.
package error

import "errors"

// Settings domain errors.
var (
	// ErrInvalidNotificationEmail is returned when the reminder e-mail is malformed.
	ErrInvalidNotificationEmail = errors.New("invalid notification email")

	// ErrSettingsNotFound is returned when the account has not configured notifications yet.
	ErrSettingsNotFound = errors.New("notification settings not found")
)

// SettingsErrorCode defines error codes for settings errors.
// Format: SET-XXYYYY where XX is category and YYYY is specific error.
type SettingsErrorCode string

const (
	ErrCodeInvalidNotificationEmail SettingsErrorCode = "SET-010001"
	ErrCodeSettingsNotFound         SettingsErrorCode = "SET-010002"
	ErrCodeMissingSettingsFields    SettingsErrorCode = "SET-010003"
)

// SettingsError represents a settings error with code and message.
type SettingsError struct {
	Code    SettingsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SettingsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SettingsError) Unwrap() error {
	return e.Err
}

// NewSettingsError creates a new SettingsError with the given code and message.
func NewSettingsError(code SettingsErrorCode, message string, err error) *SettingsError {
	return &SettingsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
