// Package error defines domain-specific errors for the Menu Pricing application.
package error

import "errors"

// Recipe domain errors.
var (
	// ErrRecipeNotFound is returned when a recipe does not exist for the account.
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrInvalidRecipeName is returned when the name is empty or too long.
	ErrInvalidRecipeName = errors.New("invalid recipe name")

	// ErrInvalidRecipeLine is returned when an ingredient line has a non-positive quantity.
	ErrInvalidRecipeLine = errors.New("recipe ingredient quantity must be greater than zero")

	// ErrUnknownRecipeIngredient is returned when a line references an ingredient the account does not own.
	ErrUnknownRecipeIngredient = errors.New("recipe references an unknown ingredient")

	// ErrUnknownRecipeMenuItem is returned when the linked menu item does not exist.
	ErrUnknownRecipeMenuItem = errors.New("recipe references an unknown menu item")
)

// RecipeErrorCode defines error codes for recipe errors.
// Format: RCP-XXYYYY where XX is category and YYYY is specific error.
type RecipeErrorCode string

const (
	ErrCodeInvalidRecipeName       RecipeErrorCode = "RCP-010001"
	ErrCodeInvalidRecipeLine       RecipeErrorCode = "RCP-010002"
	ErrCodeUnknownRecipeIngredient RecipeErrorCode = "RCP-010003"
	ErrCodeUnknownRecipeMenuItem   RecipeErrorCode = "RCP-010004"
	ErrCodeRecipeNotFound          RecipeErrorCode = "RCP-010005"
	ErrCodeMissingRecipeFields     RecipeErrorCode = "RCP-010006"
)

// RecipeError represents a recipe error with code and message.
type RecipeError struct {
	Code    RecipeErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecipeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecipeError) Unwrap() error {
	return e.Err
}

// NewRecipeError creates a new RecipeError with the given code and message.
func NewRecipeError(code RecipeErrorCode, message string, err error) *RecipeError {
	return &RecipeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
