// Package error defines domain-specific errors for the Menu Pricing application.
package error

import "errors"

// AI suggestion domain errors.
var (
	// ErrAIServiceUnavailable is returned when no AI provider is configured.
	ErrAIServiceUnavailable = errors.New("ai service is not configured")

	// ErrAINoMenuItems is returned when the request carries no menu items.
	ErrAINoMenuItems = errors.New("at least one menu item is required")

	// ErrAITooManyMenuItems is returned when the request exceeds the batch limit.
	ErrAITooManyMenuItems = errors.New("too many menu items in a single request")

	// ErrAIGenerationFailed is returned when the provider call fails.
	ErrAIGenerationFailed = errors.New("ai suggestion generation failed")
)

// AISuggestionErrorCode defines error codes for AI suggestion errors.
// Format: AI-XXYYYY where XX is category and YYYY is specific error.
type AISuggestionErrorCode string

const (
	// Request errors (01XXXX)
	ErrCodeAINoMenuItems        AISuggestionErrorCode = "AI-010001"
	ErrCodeAIServiceUnavailable AISuggestionErrorCode = "AI-010002"
	ErrCodeAITooManyMenuItems   AISuggestionErrorCode = "AI-010003"

	// Provider errors (02XXXX)
	ErrCodeAIGenerationFailed AISuggestionErrorCode = "AI-020001"
	ErrCodeAIRateLimited      AISuggestionErrorCode = "AI-020002"
	ErrCodeAITimeout          AISuggestionErrorCode = "AI-020003"
)

// AISuggestionError represents a AI suggestion error with code and message.
type AISuggestionError struct {
	Code    AISuggestionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AISuggestionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AISuggestionError) Unwrap() error {
	return e.Err
}

// NewAISuggestionError creates a new AISuggestionError with the given code and message.
func NewAISuggestionError(code AISuggestionErrorCode, message string, err error) *AISuggestionError {
	return &AISuggestionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
