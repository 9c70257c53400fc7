// Package error defines domain-specific errors for the Menu Pricing application.
package error

import "errors"

// Competitor domain errors.
var (
	// ErrCompetitorItemNotFound is returned when a competitor item does not exist for the account.
	ErrCompetitorItemNotFound = errors.New("competitor item not found")

	// ErrInvalidCompetitorItem is returned when required fields are missing or invalid.
	ErrInvalidCompetitorItem = errors.New("invalid competitor item")
)

// CompetitorErrorCode defines error codes for competitor errors.
// Format: CMP-XXYYYY where XX is category and YYYY is specific error.
type CompetitorErrorCode string

const (
	ErrCodeInvalidCompetitorItem  CompetitorErrorCode = "CMP-010001"
	ErrCodeCompetitorItemNotFound CompetitorErrorCode = "CMP-010002"
	ErrCodeReferenceItemNotFound  CompetitorErrorCode = "CMP-010003"
)

// CompetitorError represents a competitor error with code and message.
type CompetitorError struct {
	Code    CompetitorErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CompetitorError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CompetitorError) Unwrap() error {
	return e.Err
}

// NewCompetitorError creates a new CompetitorError with the given code and message.
func NewCompetitorError(code CompetitorErrorCode, message string, err error) *CompetitorError {
	return &CompetitorError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
