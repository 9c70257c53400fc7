// Package error defines domain-specific errors for the Menu Pricing application.
package error

import "errors"

// Menu item domain errors.
var (
	// ErrMenuItemNotFound is returned when a menu item does not exist for the account.
	ErrMenuItemNotFound = errors.New("menu item not found")

	// ErrInvalidMenuItemName is returned when the name is empty or too long.
	ErrInvalidMenuItemName = errors.New("invalid menu item name")

	// ErrInvalidMenuItemPrice is returned when the price is negative.
	ErrInvalidMenuItemPrice = errors.New("menu item price must not be negative")
)

// MenuItemErrorCode defines error codes for menu item errors.
// Format: MNU-XXYYYY where XX is category and YYYY is specific error.
type MenuItemErrorCode string

const (
	ErrCodeInvalidMenuItemName   MenuItemErrorCode = "MNU-010001"
	ErrCodeInvalidMenuItemPrice  MenuItemErrorCode = "MNU-010002"
	ErrCodeMenuItemNotFound      MenuItemErrorCode = "MNU-010003"
	ErrCodeMissingMenuItemFields MenuItemErrorCode = "MNU-010004"
)

// MenuItemError represents a menu item error with code and message.
type MenuItemError struct {
	Code    MenuItemErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *MenuItemError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *MenuItemError) Unwrap() error {
	return e.Err
}

// NewMenuItemError creates a new MenuItemError with the given code and message.
func NewMenuItemError(code MenuItemErrorCode, message string, err error) *MenuItemError {
	return &MenuItemError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
