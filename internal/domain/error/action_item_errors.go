// Package error defines domain-specific errors for the Menu Pricing application.
package error

import "errors"

// Action item domain errors.
var (
	// ErrActionItemNotFound is returned when the action item does not exist for the account.
	ErrActionItemNotFound = errors.New("action item not found")

	// ErrInvalidActionItemTransition is returned when the requested state change is not allowed.
	ErrInvalidActionItemTransition = errors.New("invalid action item transition")

	// ErrActionItemSubmissionFailed is returned when persisting the COGS entry fails.
	ErrActionItemSubmissionFailed = errors.New("failed to submit cogs entry")
)

// ActionItemErrorCode defines error codes for action item errors.
// Format: ACT-XXYYYY where XX is category and YYYY is specific error.
type ActionItemErrorCode string

const (
	ErrCodeActionItemNotFound          ActionItemErrorCode = "ACT-010001"
	ErrCodeInvalidActionItemTransition ActionItemErrorCode = "ACT-010002"
	ErrCodeMissingActionItemFields     ActionItemErrorCode = "ACT-010003"

	ErrCodeActionItemSubmissionFailed ActionItemErrorCode = "ACT-020001"
)

// ActionItemError represents a action item error with code and message.
type ActionItemError struct {
	Code    ActionItemErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ActionItemError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ActionItemError) Unwrap() error {
	return e.Err
}

// NewActionItemError creates a new ActionItemError with the given code and message.
func NewActionItemError(code ActionItemErrorCode, message string, err error) *ActionItemError {
	return &ActionItemError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
