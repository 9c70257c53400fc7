// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/menu-pricing/backend/internal/domain/entity"
)

// CompleteActionItemRequest represents the request body for completing a COGS action item.
type CompleteActionItemRequest struct {
	Amount *float64 `json:"amount" binding:"required"`
}

// ActionItemResponse represents an action item in API responses.
type ActionItemResponse struct {
	ID            string     `json:"id"`
	Type          string     `json:"type"`
	WeekStartDate string     `json:"week_start_date"`
	WeekEndDate   string     `json:"week_end_date"`
	Status        string     `json:"status"`
	LastError     string     `json:"last_error,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// ActionItemListResponse represents the response for listing action items.
type ActionItemListResponse struct {
	ActionItems []ActionItemResponse `json:"action_items"`
}

// ToActionItemResponse converts a domain ActionItem to an ActionItemResponse DTO.
func ToActionItemResponse(item *entity.ActionItem) ActionItemResponse {
	return ActionItemResponse{
		ID:            item.ID.String(),
		Type:          string(item.Type),
		WeekStartDate: item.WeekStartDate.Format(DateLayout),
		WeekEndDate:   item.WeekEndDate.Format(DateLayout),
		Status:        string(item.Status),
		LastError:     item.LastError,
		CompletedAt:   item.CompletedAt,
		CreatedAt:     item.CreatedAt,
	}
}

// ToActionItemListResponse converts action items to ActionItemListResponse.
func ToActionItemListResponse(items []*entity.ActionItem) ActionItemListResponse {
	out := make([]ActionItemResponse, len(items))
	for i, item := range items {
		out[i] = ToActionItemResponse(item)
	}
	return ActionItemListResponse{
		ActionItems: out,
	}
}
