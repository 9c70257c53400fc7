// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// MenuItemForAI represents a menu item sent for recipe suggestion.
type MenuItemForAI struct {
	Name        string
	Category    string
	Price       float64
	Description string
}

// SuggestedIngredient is one ingredient line returned by the AI.
type SuggestedIngredient struct {
	Name           string
	Quantity       float64
	Unit           string
	EstimatedPrice float64
}

// MenuSuggestion is a suggested recipe for one menu item.
type MenuSuggestion struct {
	MenuItemName string
	RecipeName   string
	Ingredients  []SuggestedIngredient
	Reasoning    string
}

// MenuSuggestionService defines the interface for AI menu suggestion operations.
type MenuSuggestionService interface {
	// SuggestRecipes returns one suggested recipe per menu item.
	SuggestRecipes(ctx context.Context, items []MenuItemForAI) ([]*MenuSuggestion, error)

	// IsAvailable checks if the AI service is available and properly configured.
	IsAvailable() bool
}
