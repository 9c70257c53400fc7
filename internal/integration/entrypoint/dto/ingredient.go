// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/menu-pricing/backend/internal/domain/entity"
)

// CreateIngredientRequest represents the request body for ingredient creation.
type CreateIngredientRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=100"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
	Unit     string  `json:"unit" binding:"required"`
	Price    float64 `json:"price" binding:"gte=0"`
}

// UpdateIngredientRequest represents the request body for ingredient update.
type UpdateIngredientRequest struct {
	Name     *string  `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Quantity *float64 `json:"quantity,omitempty" binding:"omitempty,gt=0"`
	Unit     *string  `json:"unit,omitempty"`
	Price    *float64 `json:"price,omitempty" binding:"omitempty,gte=0"`
}

// IngredientResponse represents a single ingredient in API responses.
type IngredientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Quantity  float64   `json:"quantity"`
	Unit      string    `json:"unit"`
	Price     float64   `json:"price"`
	UnitPrice float64   `json:"unit_price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IngredientListResponse represents the response for listing ingredients.
type IngredientListResponse struct {
	Ingredients []IngredientResponse `json:"ingredients"`
}

// ToIngredientResponse converts a domain Ingredient entity to an IngredientResponse DTO.
func ToIngredientResponse(ing *entity.Ingredient) IngredientResponse {
	unitPrice := 0.0
	if ing.Quantity > 0 {
		unitPrice = ing.Price / ing.Quantity
	}
	return IngredientResponse{
		ID:        ing.ID.String(),
		Name:      ing.Name,
		Quantity:  ing.Quantity,
		Unit:      ing.Unit,
		Price:     ing.Price,
		UnitPrice: unitPrice,
		CreatedAt: ing.CreatedAt,
		UpdatedAt: ing.UpdatedAt,
	}
}

// ToIngredientListResponse converts a list of ingredients to IngredientListResponse.
func ToIngredientListResponse(ingredients []*entity.Ingredient) IngredientListResponse {
	items := make([]IngredientResponse, len(ingredients))
	for i, ing := range ingredients {
		items[i] = ToIngredientResponse(ing)
	}
	return IngredientListResponse{
		Ingredients: items,
	}
}
