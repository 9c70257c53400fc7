// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/menu-pricing/backend/internal/application/usecase/aisuggestion"
	domainerror "github.com/menu-pricing/backend/internal/domain/error"
	"github.com/menu-pricing/backend/internal/integration/entrypoint/dto"
)

// AISuggestionController handles AI suggestion endpoints.
type AISuggestionController struct {
	suggestMenuUseCase *aisuggestion.SuggestMenuUseCase
}

// NewAISuggestionController creates a new AI suggestion controller instance.
func NewAISuggestionController(suggestMenuUseCase *aisuggestion.SuggestMenuUseCase) *AISuggestionController {
	return &AISuggestionController{
		suggestMenuUseCase: suggestMenuUseCase,
	}
}

// MenuSuggestions handles POST /ai-suggestions/menu-suggestions requests.
func (c *AISuggestionController) MenuSuggestions(ctx *gin.Context) {
	accountID, ok := requireAccount(ctx)
	if !ok {
		return
	}

	var req dto.MenuSuggestionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeAINoMenuItems),
			Details: err.Error(),
		})
		return
	}

	output, err := c.suggestMenuUseCase.Execute(ctx.Request.Context(), aisuggestion.SuggestMenuInput{
		AccountID: accountID,
		MenuItems: req.ToMenuItemsForAI(),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMenuSuggestionsResponse(output))
}
