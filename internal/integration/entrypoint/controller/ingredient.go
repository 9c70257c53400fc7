// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/menu-pricing/backend/internal/application/usecase/costing"
	"github.com/menu-pricing/backend/internal/integration/entrypoint/dto"
)

// IngredientController handles ingredient endpoints.
type IngredientController struct {
	listUseCase   *costing.ListIngredientsUseCase
	createUseCase *costing.CreateIngredientUseCase
	updateUseCase *costing.UpdateIngredientUseCase
	deleteUseCase *costing.DeleteIngredientUseCase
}

// NewIngredientController creates a new ingredient controller instance.
func NewIngredientController(
	listUseCase *costing.ListIngredientsUseCase,
	createUseCase *costing.CreateIngredientUseCase,
	updateUseCase *costing.UpdateIngredientUseCase,
	deleteUseCase *costing.DeleteIngredientUseCase,
) *IngredientController {
	return &IngredientController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /recipes/ingredients requests.
func (c *IngredientController) List(ctx *gin.Context) {
	accountID, ok := requireAccount(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), accountID)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIngredientListResponse(output.Ingredients))
}

// Create handles POST /recipes/ingredients requests.
func (c *IngredientController) Create(ctx *gin.Context) {
	accountID, ok := requireAccount(ctx)
	if !ok {
		return
	}

	var req dto.CreateIngredientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), costing.IngredientInput{
		AccountID: accountID,
		Name:      req.Name,
		Quantity:  req.Quantity,
		Unit:      req.Unit,
		Price:     req.Price,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToIngredientResponse(output.Ingredient))
}

// Update handles PUT /recipes/ingredients/:id requests.
func (c *IngredientController) Update(ctx *gin.Context) {
	accountID, ok := requireAccount(ctx)
	if !ok {
		return
	}

	ingredientID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateIngredientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), costing.UpdateIngredientInput{
		AccountID:    accountID,
		IngredientID: ingredientID,
		Name:         req.Name,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		Price:        req.Price,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIngredientResponse(output.Ingredient))
}

// Delete handles DELETE /recipes/ingredients/:id requests.
// Ingredients referenced by a recipe cannot be deleted.
func (c *IngredientController) Delete(ctx *gin.Context) {
	accountID, ok := requireAccount(ctx)
	if !ok {
		return
	}

	ingredientID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), accountID, ingredientID); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
