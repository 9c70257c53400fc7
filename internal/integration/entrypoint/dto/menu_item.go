// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/menu-pricing/backend/internal/domain/entity"
)

// CreateMenuItemRequest represents the request body for menu item creation.
type CreateMenuItemRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=100"`
	Category string  `json:"category" binding:"max=50"`
	Price    float64 `json:"price" binding:"gte=0"`
}

// UpdateMenuItemRequest represents the request body for menu item update.
type UpdateMenuItemRequest struct {
	Name     *string  `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Category *string  `json:"category,omitempty" binding:"omitempty,max=50"`
	Price    *float64 `json:"price,omitempty" binding:"omitempty,gte=0"`
	Active   *bool    `json:"active,omitempty"`
}

// MenuItemResponse represents a single menu item in API responses.
type MenuItemResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MenuItemListResponse represents the response for listing menu items.
type MenuItemListResponse struct {
	MenuItems []MenuItemResponse `json:"menu_items"`
}

// ToMenuItemResponse converts a domain MenuItem entity to a MenuItemResponse DTO.
func ToMenuItemResponse(item *entity.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:        item.ID.String(),
		Name:      item.Name,
		Category:  item.Category,
		Price:     item.Price,
		Active:    item.Active,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

// ToMenuItemListResponse converts menu items to MenuItemListResponse.
func ToMenuItemListResponse(items []*entity.MenuItem) MenuItemListResponse {
	out := make([]MenuItemResponse, len(items))
	for i, item := range items {
		out[i] = ToMenuItemResponse(item)
	}
	return MenuItemListResponse{
		MenuItems: out,
	}
}
