// Package error defines domain-specific errors for the Menu Pricing application.
package error

import "errors"

// Ingredient domain errors.
var (
	// ErrIngredientNotFound is returned when an ingredient does not exist for the account.
	ErrIngredientNotFound = errors.New("ingredient not found")

	// ErrIngredientInUse is returned when deleting an ingredient still referenced by a recipe.
	ErrIngredientInUse = errors.New("ingredient is used by one or more recipes")

	// ErrInvalidIngredientQuantity is returned when the purchase quantity is not positive.
	ErrInvalidIngredientQuantity = errors.New("ingredient quantity must be greater than zero")

	// ErrInvalidIngredientPrice is returned when the purchase price is negative.
	ErrInvalidIngredientPrice = errors.New("ingredient price must not be negative")

	// ErrInvalidIngredientName is returned when the name is empty or too long.
	ErrInvalidIngredientName = errors.New("invalid ingredient name")

	// ErrMissingIngredientUnit is returned when no unit is provided.
	ErrMissingIngredientUnit = errors.New("ingredient unit is required")
)

// IngredientErrorCode defines error codes for ingredient errors.
// Format: ING-XXYYYY where XX is category and YYYY is specific error.
type IngredientErrorCode string

const (
	ErrCodeInvalidIngredientName     IngredientErrorCode = "ING-010001"
	ErrCodeInvalidIngredientQuantity IngredientErrorCode = "ING-010002"
	ErrCodeInvalidIngredientPrice    IngredientErrorCode = "ING-010003"
	ErrCodeIngredientInUse           IngredientErrorCode = "ING-010004"
	ErrCodeIngredientNotFound        IngredientErrorCode = "ING-010005"
	ErrCodeMissingIngredientUnit     IngredientErrorCode = "ING-010006"
	ErrCodeMissingIngredientFields   IngredientErrorCode = "ING-010007"
)

// IngredientError represents a ingredient error with code and message.
type IngredientError struct {
	Code    IngredientErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *IngredientError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *IngredientError) Unwrap() error {
	return e.Err
}

// NewIngredientError creates a new IngredientError with the given code and message.
func NewIngredientError(code IngredientErrorCode, message string, err error) *IngredientError {
	return &IngredientError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
