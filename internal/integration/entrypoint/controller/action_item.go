// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/menu-pricing/backend/internal/application/usecase/actionitem"
	domainerror "github.com/menu-pricing/backend/internal/domain/error"
	"github.com/menu-pricing/backend/internal/integration/entrypoint/dto"
)

// ActionItemController handles the weekly COGS action item endpoints.
type ActionItemController struct {
	service *actionitem.Service
}

// NewActionItemController creates a new action item controller instance.
func NewActionItemController(service *actionitem.Service) *ActionItemController {
	return &ActionItemController{
		service: service,
	}
}

// List handles GET /action-items requests.
// The current week's item is created on first access.
func (c *ActionItemController) List(ctx *gin.Context) {
	accountID, ok := requireAccount(ctx)
	if !ok {
		return
	}

	if _, _, err := c.service.EnsureCurrentWeek(ctx.Request.Context(), accountID); err != nil {
		handleError(ctx, err)
		return
	}

	items, err := c.service.List(ctx.Request.Context(), accountID)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToActionItemListResponse(items))
}

// Start handles POST /action-items/:id/start requests.
func (c *ActionItemController) Start(ctx *gin.Context) {
	accountID, ok := requireAccount(ctx)
	if !ok {
		return
	}

	itemID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	item, err := c.service.Start(ctx.Request.Context(), accountID, itemID)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToActionItemResponse(item))
}

// Complete handles POST /action-items/:id/complete requests.
func (c *ActionItemController) Complete(ctx *gin.Context) {
	accountID, ok := requireAccount(ctx)
	if !ok {
		return
	}

	itemID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CompleteActionItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "amount is required",
			Code:    string(domainerror.ErrCodeMissingActionItemFields),
			Details: err.Error(),
		})
		return
	}

	item, err := c.service.Complete(ctx.Request.Context(), accountID, itemID, *req.Amount)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToActionItemResponse(item))
}
