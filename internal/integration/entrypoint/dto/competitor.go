// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/menu-pricing/backend/internal/application/usecase/competitor"
	"github.com/menu-pricing/backend/internal/domain/entity"
)

// CreateCompetitorItemRequest represents the request body for recording a competitor price.
type CreateCompetitorItemRequest struct {
	CompetitorName string  `json:"competitor_name" binding:"required,max=100"`
	ItemName       string  `json:"item_name" binding:"required,max=100"`
	Category       string  `json:"category" binding:"max=50"`
	Price          float64 `json:"price" binding:"gte=0"`
	ObservedAt     *string `json:"observed_at,omitempty"`
}

// CompetitorItemResponse represents a competitor item in API responses.
type CompetitorItemResponse struct {
	ID             string    `json:"id"`
	CompetitorName string    `json:"competitor_name"`
	ItemName       string    `json:"item_name"`
	Category       string    `json:"category"`
	Price          float64   `json:"price"`
	ObservedAt     string    `json:"observed_at"`
	CreatedAt      time.Time `json:"created_at"`
}

// CompetitorItemListResponse represents the response for listing competitor items.
type CompetitorItemListResponse struct {
	CompetitorItems []CompetitorItemResponse `json:"competitor_items"`
}

// SimilarItemResponse is a ranked competitor item.
type SimilarItemResponse struct {
	CompetitorItemResponse
	SimilarityScore    float64  `json:"similarity_score"`
	PriceDifference    float64  `json:"price_difference"`
	PriceDifferencePct *float64 `json:"price_difference_pct"`
}

// SimilarItemsResponse represents the ranking against one menu item.
type SimilarItemsResponse struct {
	MenuItem MenuItemResponse      `json:"menu_item"`
	Items    []SimilarItemResponse `json:"items"`
}

// ToCompetitorItemResponse converts a domain CompetitorItem to a CompetitorItemResponse DTO.
func ToCompetitorItemResponse(item *entity.CompetitorItem) CompetitorItemResponse {
	return CompetitorItemResponse{
		ID:             item.ID.String(),
		CompetitorName: item.CompetitorName,
		ItemName:       item.ItemName,
		Category:       item.Category,
		Price:          item.Price,
		ObservedAt:     item.ObservedAt.Format(DateLayout),
		CreatedAt:      item.CreatedAt,
	}
}

// ToCompetitorItemListResponse converts competitor items to CompetitorItemListResponse.
func ToCompetitorItemListResponse(items []*entity.CompetitorItem) CompetitorItemListResponse {
	out := make([]CompetitorItemResponse, len(items))
	for i, item := range items {
		out[i] = ToCompetitorItemResponse(item)
	}
	return CompetitorItemListResponse{
		CompetitorItems: out,
	}
}

// ToSimilarItemsResponse converts a similarity ranking.
func ToSimilarItemsResponse(output *competitor.SimilarToOutput) SimilarItemsResponse {
	items := make([]SimilarItemResponse, len(output.Items))
	for i, s := range output.Items {
		items[i] = SimilarItemResponse{
			CompetitorItemResponse: ToCompetitorItemResponse(s.Item),
			SimilarityScore:        s.Score,
			PriceDifference:        s.PriceDifference,
			PriceDifferencePct:     s.PriceDifferencePct,
		}
	}
	return SimilarItemsResponse{
		MenuItem: ToMenuItemResponse(output.MenuItem),
		Items:    items,
	}
}
