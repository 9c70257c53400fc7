// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/menu-pricing/backend/internal/application/usecase/costing"
	"github.com/menu-pricing/backend/internal/domain/entity"
)

// RecipeIngredientRequest is one ingredient line of a recipe request.
type RecipeIngredientRequest struct {
	IngredientID string  `json:"ingredient_id" binding:"required,uuid"`
	Quantity     float64 `json:"quantity" binding:"gte=0"`
	Unit         string  `json:"unit" binding:"required"`
}

// RecipeRequest represents the request body for recipe creation and update.
type RecipeRequest struct {
	Name        string                    `json:"name" binding:"required,min=1,max=100"`
	MenuItemID  *string                   `json:"menu_item_id,omitempty" binding:"omitempty,uuid"`
	Ingredients []RecipeIngredientRequest `json:"ingredients" binding:"dive"`
}

// ToEntityLines converts the request lines to recipe ingredients.
// Binding already validated the ids.
func (r RecipeRequest) ToEntityLines() []entity.RecipeIngredient {
	lines := make([]entity.RecipeIngredient, 0, len(r.Ingredients))
	for _, line := range r.Ingredients {
		lines = append(lines, entity.RecipeIngredient{
			IngredientID: uuid.MustParse(line.IngredientID),
			Quantity:     line.Quantity,
			Unit:         line.Unit,
		})
	}
	return lines
}

// MenuItemUUID returns the parsed menu item id, if any.
func (r RecipeRequest) MenuItemUUID() *uuid.UUID {
	if r.MenuItemID == nil || *r.MenuItemID == "" {
		return nil
	}
	id := uuid.MustParse(*r.MenuItemID)
	return &id
}

// RecipeLineResponse is one costed recipe line.
type RecipeLineResponse struct {
	IngredientID     string  `json:"ingredient_id"`
	IngredientName   string  `json:"ingredient_name,omitempty"`
	Quantity         float64 `json:"quantity"`
	Unit             string  `json:"unit"`
	ConversionFactor float64 `json:"conversion_factor"`
	UnitsCompatible  bool    `json:"units_compatible"`
	Cost             float64 `json:"cost"`
	Skipped          bool    `json:"skipped,omitempty"`
	SkipReason       string  `json:"skip_reason,omitempty"`
}

// RecipeResponse represents a recipe with its derived cost.
type RecipeResponse struct {
	ID               string               `json:"id"`
	Name             string               `json:"name"`
	MenuItemID       *string              `json:"menu_item_id"`
	Ingredients      []RecipeLineResponse `json:"ingredients"`
	TotalCost        float64              `json:"total_cost"`
	TotalCostDisplay float64              `json:"total_cost_display"`
	CostWarning      bool                 `json:"cost_warning"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

// RecipeListResponse represents the response for listing recipes.
type RecipeListResponse struct {
	Recipes []RecipeResponse `json:"recipes"`
}

// ToRecipeResponse converts a costed recipe to a RecipeResponse DTO.
func ToRecipeResponse(r *costing.RecipeWithCost) RecipeResponse {
	var menuItemID *string
	if r.Recipe.MenuItemID != nil {
		id := r.Recipe.MenuItemID.String()
		menuItemID = &id
	}

	lines := make([]RecipeLineResponse, len(r.Cost.Lines))
	for i, line := range r.Cost.Lines {
		lines[i] = RecipeLineResponse{
			IngredientID:     line.IngredientID.String(),
			IngredientName:   line.IngredientName,
			Quantity:         line.Quantity,
			Unit:             line.Unit,
			ConversionFactor: line.ConversionFactor,
			UnitsCompatible:  line.UnitsCompatible,
			Cost:             line.Cost,
			Skipped:          line.Skipped,
			SkipReason:       line.SkipReason,
		}
	}

	return RecipeResponse{
		ID:               r.Recipe.ID.String(),
		Name:             r.Recipe.Name,
		MenuItemID:       menuItemID,
		Ingredients:      lines,
		TotalCost:        r.Cost.Total,
		TotalCostDisplay: r.Cost.TotalDisplay,
		CostWarning:      r.Cost.Warning,
		CreatedAt:        r.Recipe.CreatedAt,
		UpdatedAt:        r.Recipe.UpdatedAt,
	}
}

// ToRecipeListResponse converts costed recipes to RecipeListResponse.
func ToRecipeListResponse(recipes []*costing.RecipeWithCost) RecipeListResponse {
	items := make([]RecipeResponse, len(recipes))
	for i, r := range recipes {
		items[i] = ToRecipeResponse(r)
	}
	return RecipeListResponse{
		Recipes: items,
	}
}
