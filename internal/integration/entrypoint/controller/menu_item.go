// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/menu-pricing/backend/internal/application/usecase/menuitem"
	"github.com/menu-pricing/backend/internal/integration/entrypoint/dto"
)

// MenuItemController handles menu item endpoints.
type MenuItemController struct {
	service *menuitem.Service
}

// NewMenuItemController creates a new menu item controller instance.
func NewMenuItemController(service *menuitem.Service) *MenuItemController {
	return &MenuItemController{
		service: service,
	}
}

// List handles GET /menu-items requests.
func (c *MenuItemController) List(ctx *gin.Context) {
	accountID, ok := requireAccount(ctx)
	if !ok {
		return
	}

	items, err := c.service.List(ctx.Request.Context(), accountID)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMenuItemListResponse(items))
}

// Create handles POST /menu-items requests.
func (c *MenuItemController) Create(ctx *gin.Context) {
	accountID, ok := requireAccount(ctx)
	if !ok {
		return
	}

	var req dto.CreateMenuItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err)
		return
	}

	item, err := c.service.Create(ctx.Request.Context(), menuitem.CreateInput{
		AccountID: accountID,
		Name:      req.Name,
		Category:  req.Category,
		Price:     req.Price,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToMenuItemResponse(item))
}

// Update handles PUT /menu-items/:id requests.
func (c *MenuItemController) Update(ctx *gin.Context) {
	accountID, ok := requireAccount(ctx)
	if !ok {
		return
	}

	menuItemID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateMenuItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err)
		return
	}

	item, err := c.service.Update(ctx.Request.Context(), menuitem.UpdateInput{
		AccountID:  accountID,
		MenuItemID: menuItemID,
		Name:       req.Name,
		Category:   req.Category,
		Price:      req.Price,
		Active:     req.Active,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMenuItemResponse(item))
}

// Delete handles DELETE /menu-items/:id requests.
// Recipes linked to the item keep existing without the link.
func (c *MenuItemController) Delete(ctx *gin.Context) {
	accountID, ok := requireAccount(ctx)
	if !ok {
		return
	}

	menuItemID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), accountID, menuItemID); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
