// Package error defines domain-specific errors for the Menu Pricing application.
package error

import "errors"

// COGS domain errors.
var (
	// ErrInvalidCOGSAmount is returned when the weekly amount is negative.
	ErrInvalidCOGSAmount = errors.New("cogs amount must not be negative")

	// ErrInvalidCOGSWeek is returned when the week end precedes the week start.
	ErrInvalidCOGSWeek = errors.New("week_end_date must not be before week_start_date")

	// ErrMissingCOGSWeek is returned when no week start date is provided.
	ErrMissingCOGSWeek = errors.New("week_start_date is required")

	// ErrCOGSWeekTooLong is returned when an entry spans more than one calendar week.
	ErrCOGSWeekTooLong = errors.New("cogs entry must not span more than 7 days")
)

// COGSErrorCode defines error codes for COGS errors.
// Format: COG-XXYYYY where XX is category and YYYY is specific error.
type COGSErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidCOGSAmount COGSErrorCode = "COG-010001"
	ErrCodeInvalidCOGSWeek   COGSErrorCode = "COG-010002"
	ErrCodeMissingCOGSWeek   COGSErrorCode = "COG-010003"
	ErrCodeCOGSWeekTooLong   COGSErrorCode = "COG-010004"
	ErrCodeMissingCOGSFields COGSErrorCode = "COG-010005"
	ErrCodeInvalidCOGSDate   COGSErrorCode = "COG-010006"

	// Internal errors (99XXXX)
	ErrCodeCOGSInternalError COGSErrorCode = "COG-990001"
)

// COGSError represents a COGS error with code and message.
type COGSError struct {
	Code    COGSErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *COGSError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *COGSError) Unwrap() error {
	return e.Err
}

// NewCOGSError creates a new COGSError with the given code and message.
func NewCOGSError(code COGSErrorCode, message string, err error) *COGSError {
	return &COGSError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
