// Package error defines domain-specific errors for the Menu Pricing application.
package error

import "errors"

// Sales import domain errors.
var (
	// ErrImportAlreadyRunning is returned when an import is already in progress for the account.
	ErrImportAlreadyRunning = errors.New("a sales import is already in progress")

	// ErrImportNotFound is returned when the import job is unknown.
	ErrImportNotFound = errors.New("sales import not found")

	// ErrUpstreamUnavailable is returned when the point-of-sale API is not configured.
	ErrUpstreamUnavailable = errors.New("point-of-sale integration is not configured")

	// ErrUpstreamProcessFailed is returned when the upstream export ends in error.
	ErrUpstreamProcessFailed = errors.New("upstream export failed")

	// ErrInvalidUpstreamPayload is returned when the upstream response does not match its schema.
	ErrInvalidUpstreamPayload = errors.New("invalid upstream payload")
)

// ImportErrorCode defines error codes for import errors.
// Format: IMP-XXYYYY where XX is category and YYYY is specific error.
type ImportErrorCode string

const (
	ErrCodeImportAlreadyRunning ImportErrorCode = "IMP-010001"
	ErrCodeImportNotFound       ImportErrorCode = "IMP-010002"
	ErrCodeInvalidImportRange   ImportErrorCode = "IMP-010003"

	ErrCodeUpstreamUnavailable    ImportErrorCode = "IMP-020001"
	ErrCodeUpstreamProcessFailed  ImportErrorCode = "IMP-020002"
	ErrCodeInvalidUpstreamPayload ImportErrorCode = "IMP-020003"
)

// ImportError represents a import error with code and message.
type ImportError struct {
	Code    ImportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ImportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ImportError) Unwrap() error {
	return e.Err
}

// NewImportError creates a new ImportError with the given code and message.
func NewImportError(code ImportErrorCode, message string, err error) *ImportError {
	return &ImportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
