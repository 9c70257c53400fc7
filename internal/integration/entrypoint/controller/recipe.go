// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/menu-pricing/backend/internal/application/usecase/costing"
	"github.com/menu-pricing/backend/internal/integration/entrypoint/dto"
)

// RecipeController handles recipe endpoints.
type RecipeController struct {
	service *costing.RecipeService
}

// NewRecipeController creates a new recipe controller instance.
func NewRecipeController(service *costing.RecipeService) *RecipeController {
	return &RecipeController{
		service: service,
	}
}

// List handles GET /recipes requests.
func (c *RecipeController) List(ctx *gin.Context) {
	accountID, ok := requireAccount(ctx)
	if !ok {
		return
	}

	output, err := c.service.List(ctx.Request.Context(), accountID)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecipeListResponse(output.Recipes))
}

// Get handles GET /recipes/:id requests.
func (c *RecipeController) Get(ctx *gin.Context) {
	accountID, ok := requireAccount(ctx)
	if !ok {
		return
	}

	recipeID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	recipe, err := c.service.Get(ctx.Request.Context(), accountID, recipeID)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecipeResponse(recipe))
}

// Create handles POST /recipes requests.
func (c *RecipeController) Create(ctx *gin.Context) {
	accountID, ok := requireAccount(ctx)
	if !ok {
		return
	}

	var req dto.RecipeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err)
		return
	}

	recipe, err := c.service.Create(ctx.Request.Context(), costing.RecipeInput{
		AccountID:   accountID,
		Name:        req.Name,
		MenuItemID:  req.MenuItemUUID(),
		Ingredients: req.ToEntityLines(),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRecipeResponse(recipe))
}

// Update handles PUT /recipes/:id requests. The ingredient lines are replaced.
func (c *RecipeController) Update(ctx *gin.Context) {
	accountID, ok := requireAccount(ctx)
	if !ok {
		return
	}

	recipeID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.RecipeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err)
		return
	}

	recipe, err := c.service.Update(ctx.Request.Context(), costing.RecipeInput{
		AccountID:   accountID,
		RecipeID:    recipeID,
		Name:        req.Name,
		MenuItemID:  req.MenuItemUUID(),
		Ingredients: req.ToEntityLines(),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecipeResponse(recipe))
}

// Delete handles DELETE /recipes/:id requests.
func (c *RecipeController) Delete(ctx *gin.Context) {
	accountID, ok := requireAccount(ctx)
	if !ok {
		return
	}

	recipeID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), accountID, recipeID); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
