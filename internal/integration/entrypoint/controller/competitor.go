// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/menu-pricing/backend/internal/application/usecase/competitor"
	domainerror "github.com/menu-pricing/backend/internal/domain/error"
	"github.com/menu-pricing/backend/internal/integration/entrypoint/dto"
)

// CompetitorController handles competitor item endpoints.
type CompetitorController struct {
	service *competitor.Service
}

// NewCompetitorController creates a new competitor controller instance.
func NewCompetitorController(service *competitor.Service) *CompetitorController {
	return &CompetitorController{
		service: service,
	}
}

// List handles GET /competitor-items requests.
func (c *CompetitorController) List(ctx *gin.Context) {
	accountID, ok := requireAccount(ctx)
	if !ok {
		return
	}

	items, err := c.service.List(ctx.Request.Context(), accountID)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCompetitorItemListResponse(items))
}

// Create handles POST /competitor-items requests.
func (c *CompetitorController) Create(ctx *gin.Context) {
	accountID, ok := requireAccount(ctx)
	if !ok {
		return
	}

	var req dto.CreateCompetitorItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err)
		return
	}

	var observedAt *time.Time
	if req.ObservedAt != nil && *req.ObservedAt != "" {
		t, err := time.Parse(dto.DateLayout, *req.ObservedAt)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "observed_at must be in YYYY-MM-DD format",
				Code:  string(domainerror.ErrCodeInvalidCompetitorItem),
			})
			return
		}
		observedAt = &t
	}

	item, err := c.service.Create(ctx.Request.Context(), competitor.CreateInput{
		AccountID:      accountID,
		CompetitorName: req.CompetitorName,
		ItemName:       req.ItemName,
		Category:       req.Category,
		Price:          req.Price,
		ObservedAt:     observedAt,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCompetitorItemResponse(item))
}

// Delete handles DELETE /competitor-items/:id requests.
func (c *CompetitorController) Delete(ctx *gin.Context) {
	accountID, ok := requireAccount(ctx)
	if !ok {
		return
	}

	itemID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), accountID, itemID); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SimilarTo handles GET /competitor-items/similar-to/:itemId requests.
func (c *CompetitorController) SimilarTo(ctx *gin.Context) {
	accountID, ok := requireAccount(ctx)
	if !ok {
		return
	}

	menuItemID, ok := parseIDParam(ctx, "itemId")
	if !ok {
		return
	}

	output, err := c.service.SimilarTo(ctx.Request.Context(), accountID, menuItemID)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSimilarItemsResponse(output))
}
