// Package salesimport contains the asynchronous point-of-sale import use cases.
package salesimport

import (
	"context"
	"errors"
	"strings"

	domainerror "github.com/menu-pricing/backend/internal/domain/error"
)

// Error code constants for import failures.
const (
	ErrCodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	ErrCodeUpstreamRateLimited = "UPSTREAM_RATE_LIMITED"
	ErrCodeUpstreamAuthError   = "UPSTREAM_AUTH_ERROR"
	ErrCodeImportTimeout       = "IMPORT_TIMEOUT"
	ErrCodeUpstreamPayload     = "UPSTREAM_PAYLOAD_ERROR"
	ErrCodeExportFailed        = "EXPORT_FAILED"
	ErrCodeImportUnknownError  = "IMPORT_UNKNOWN_ERROR"
)

// errorMessages contains user-facing messages for each error code.
var errorMessages = map[string]string{
	ErrCodeUpstreamUnavailable: "The point-of-sale service is temporarily unavailable. Try again later.",
	ErrCodeUpstreamRateLimited: "The point-of-sale service is rate limiting requests. Wait a few minutes and try again.",
	ErrCodeUpstreamAuthError:   "The point-of-sale credentials were rejected. Please contact support.",
	ErrCodeImportTimeout:       "The import took longer than expected. Try again with a shorter date range.",
	ErrCodeUpstreamPayload:     "The point-of-sale service returned data that could not be read.",
	ErrCodeExportFailed:        "The point-of-sale export failed. Try again.",
	ErrCodeImportUnknownError:  "An unexpected error occurred during the import. Try again.",
}

// ImportFailure is a classified import error.
type ImportFailure struct {
	Code      string
	Message   string
	Retryable bool
}

// classifyError converts an import error to a code, message and retryable flag.
func classifyError(err error) ImportFailure {
	errStr := strings.ToLower(err.Error())

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return failure(ErrCodeImportTimeout, true)
	}

	if errors.Is(err, domainerror.ErrUpstreamProcessFailed) {
		return failure(ErrCodeExportFailed, true)
	}

	if errors.Is(err, domainerror.ErrInvalidUpstreamPayload) {
		return failure(ErrCodeUpstreamPayload, false)
	}

	if strings.Contains(errStr, "rate limit") || strings.Contains(errStr, "429") {
		return failure(ErrCodeUpstreamRateLimited, true)
	}

	if strings.Contains(errStr, "401") || strings.Contains(errStr, "403") ||
		strings.Contains(errStr, "unauthorized") || strings.Contains(errStr, "forbidden") {
		return failure(ErrCodeUpstreamAuthError, false)
	}

	if strings.Contains(errStr, "connection") || strings.Contains(errStr, "dial") ||
		strings.Contains(errStr, "timeout") || strings.Contains(errStr, "unavailable") ||
		strings.Contains(errStr, "502") || strings.Contains(errStr, "503") {
		return failure(ErrCodeUpstreamUnavailable, true)
	}

	if strings.Contains(errStr, "json") || strings.Contains(errStr, "decode") ||
		strings.Contains(errStr, "unmarshal") {
		return failure(ErrCodeUpstreamPayload, false)
	}

	return failure(ErrCodeImportUnknownError, true)
}

func failure(code string, retryable bool) ImportFailure {
	return ImportFailure{
		Code:      code,
		Message:   errorMessages[code],
		Retryable: retryable,
	}
}
