// Package error defines domain-specific errors for the Menu Pricing application.
package error

import "errors"

// Dashboard domain errors.
var (
	// ErrMissingStartDate is returned when start_date is not provided.
	ErrMissingStartDate = errors.New("start_date is required")

	// ErrMissingEndDate is returned when end_date is not provided.
	ErrMissingEndDate = errors.New("end_date is required")

	// ErrInvalidDateRange is returned when end_date is before start_date.
	ErrInvalidDateRange = errors.New("end_date must be after start_date")

	// ErrInvalidTimeFrame is returned when time_frame is not valid.
	ErrInvalidTimeFrame = errors.New("time_frame must be: 1d, 7d, 1m, 6m, or 1yr")

	// ErrMissingTimeFrame is returned when neither a date range nor a time frame is provided.
	ErrMissingTimeFrame = errors.New("time_frame or start_date/end_date is required")

	// ErrInvalidDateFormat is returned when date format is invalid.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrDateRangeTooLarge is returned when the requested range exceeds the maximum span.
	ErrDateRangeTooLarge = errors.New("date range must not exceed 366 days")
)

// DashboardErrorCode defines error codes for dashboard errors.
// Format: DSH-XXYYYY where XX is category and YYYY is specific error.
type DashboardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingStartDate  DashboardErrorCode = "DSH-010001"
	ErrCodeMissingEndDate    DashboardErrorCode = "DSH-010002"
	ErrCodeInvalidDateRange  DashboardErrorCode = "DSH-010003"
	ErrCodeInvalidTimeFrame  DashboardErrorCode = "DSH-010004"
	ErrCodeMissingTimeFrame  DashboardErrorCode = "DSH-010005"
	ErrCodeInvalidDateFormat DashboardErrorCode = "DSH-010006"
	ErrCodeDateRangeTooLarge DashboardErrorCode = "DSH-010007"

	// Internal errors (99XXXX)
	ErrCodeDashboardInternalError DashboardErrorCode = "DSH-990001"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
