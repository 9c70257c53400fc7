// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/menu-pricing/backend/internal/application/adapter"
	"github.com/menu-pricing/backend/internal/application/usecase/aisuggestion"
)

// MenuItemForSuggestion is one menu item to suggest a recipe for.
type MenuItemForSuggestion struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Category    string  `json:"category,omitempty"`
	Price       float64 `json:"price,omitempty"`
	Description string  `json:"description,omitempty" binding:"max=500"`
}

// MenuSuggestionsRequest represents the request body for menu suggestions.
type MenuSuggestionsRequest struct {
	MenuItems []MenuItemForSuggestion `json:"menu_items" binding:"required,dive"`
}

// ToMenuItemsForAI converts the request items.
func (r MenuSuggestionsRequest) ToMenuItemsForAI() []adapter.MenuItemForAI {
	items := make([]adapter.MenuItemForAI, len(r.MenuItems))
	for i, item := range r.MenuItems {
		items[i] = adapter.MenuItemForAI{
			Name:        item.Name,
			Category:    item.Category,
			Price:       item.Price,
			Description: item.Description,
		}
	}
	return items
}

// SuggestedIngredientResponse is one suggested ingredient line.
type SuggestedIngredientResponse struct {
	Name           string  `json:"name"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	UnitRecognized bool    `json:"unit_recognized"`
	EstimatedPrice float64 `json:"estimated_price"`
}

// MenuSuggestionResponse is one suggested recipe.
type MenuSuggestionResponse struct {
	MenuItemName  string                        `json:"menu_item_name"`
	RecipeName    string                        `json:"recipe_name"`
	Ingredients   []SuggestedIngredientResponse `json:"ingredients"`
	EstimatedCost float64                       `json:"estimated_cost"`
	Reasoning     string                        `json:"reasoning,omitempty"`
}

// MenuSuggestionsResponse represents the response for menu suggestions.
type MenuSuggestionsResponse struct {
	Suggestions []MenuSuggestionResponse `json:"suggestions"`
}

// ToMenuSuggestionsResponse converts the use case output.
func ToMenuSuggestionsResponse(output *aisuggestion.SuggestMenuOutput) MenuSuggestionsResponse {
	suggestions := make([]MenuSuggestionResponse, len(output.Suggestions))
	for i, s := range output.Suggestions {
		ingredients := make([]SuggestedIngredientResponse, len(s.Ingredients))
		for j, ing := range s.Ingredients {
			ingredients[j] = SuggestedIngredientResponse{
				Name:           ing.Name,
				Quantity:       ing.Quantity,
				Unit:           ing.Unit,
				UnitRecognized: ing.UnitRecognized,
				EstimatedPrice: ing.EstimatedPrice,
			}
		}
		suggestions[i] = MenuSuggestionResponse{
			MenuItemName:  s.MenuItemName,
			RecipeName:    s.RecipeName,
			Ingredients:   ingredients,
			EstimatedCost: s.EstimatedCost,
			Reasoning:     s.Reasoning,
		}
	}
	return MenuSuggestionsResponse{
		Suggestions: suggestions,
	}
}
