// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/menu-pricing/backend/internal/domain/error"
	"github.com/menu-pricing/backend/internal/integration/entrypoint/dto"
	"github.com/menu-pricing/backend/internal/integration/entrypoint/middleware"
)

// requireAccount returns the authenticated account or writes a 401.
func requireAccount(ctx *gin.Context) (uuid.UUID, bool) {
	accountID, ok := middleware.GetAccountIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Account not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return accountID, true
}

// parseIDParam parses a UUID path parameter or writes a 400.
func parseIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name + " format",
		})
		return uuid.Nil, false
	}
	return id, true
}

// parseDate parses an ISO date, returning a dashboard error on bad input.
func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		return time.Time{}, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidDateFormat,
			field+" must be in YYYY-MM-DD format",
			err,
		)
	}
	return t, nil
}

// parseOptionalDate parses an optional ISO query parameter.
func parseOptionalDate(ctx *gin.Context, field string) (*time.Time, error) {
	value := ctx.Query(field)
	if value == "" {
		return nil, nil
	}
	t, err := parseDate(field, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// invalidBody writes a 400 for a request body that failed binding.
func invalidBody(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Invalid request body",
		Details: err.Error(),
	})
}

// handleError maps domain errors to HTTP responses.
func handleError(ctx *gin.Context, err error) {
	if status, code, message, ok := classify(err); ok {
		ctx.JSON(status, dto.ErrorResponse{
			Error: message,
			Code:  code,
		})
		return
	}

	slog.Error("Unhandled request error",
		"method", ctx.Request.Method,
		"path", ctx.FullPath(),
		"error", err,
	)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

func classify(err error) (status int, code, message string, ok bool) {
	var ingErr *domainerror.IngredientError
	if errors.As(err, &ingErr) {
		return statusForIngredientError(ingErr.Code), string(ingErr.Code), ingErr.Message, true
	}
	var rcpErr *domainerror.RecipeError
	if errors.As(err, &rcpErr) {
		return statusForRecipeError(rcpErr.Code), string(rcpErr.Code), rcpErr.Message, true
	}
	var mnuErr *domainerror.MenuItemError
	if errors.As(err, &mnuErr) {
		return statusForMenuItemError(mnuErr.Code), string(mnuErr.Code), mnuErr.Message, true
	}
	var cogErr *domainerror.COGSError
	if errors.As(err, &cogErr) {
		return statusForCOGSError(cogErr.Code), string(cogErr.Code), cogErr.Message, true
	}
	var dshErr *domainerror.DashboardError
	if errors.As(err, &dshErr) {
		return statusForDashboardError(dshErr.Code), string(dshErr.Code), dshErr.Message, true
	}
	var actErr *domainerror.ActionItemError
	if errors.As(err, &actErr) {
		return statusForActionItemError(actErr.Code), string(actErr.Code), actErr.Message, true
	}
	var cmpErr *domainerror.CompetitorError
	if errors.As(err, &cmpErr) {
		return statusForCompetitorError(cmpErr.Code), string(cmpErr.Code), cmpErr.Message, true
	}
	var aiErr *domainerror.AISuggestionError
	if errors.As(err, &aiErr) {
		return statusForAIError(aiErr.Code), string(aiErr.Code), aiErr.Message, true
	}
	var impErr *domainerror.ImportError
	if errors.As(err, &impErr) {
		return statusForImportError(impErr.Code), string(impErr.Code), impErr.Message, true
	}
	var setErr *domainerror.SettingsError
	if errors.As(err, &setErr) {
		return statusForSettingsError(setErr.Code), string(setErr.Code), setErr.Message, true
	}
	return 0, "", "", false
}

func statusForIngredientError(code domainerror.IngredientErrorCode) int {
	switch code {
	case domainerror.ErrCodeIngredientNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeIngredientInUse:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidIngredientName,
		domainerror.ErrCodeInvalidIngredientQuantity,
		domainerror.ErrCodeInvalidIngredientPrice,
		domainerror.ErrCodeMissingIngredientUnit,
		domainerror.ErrCodeMissingIngredientFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func statusForRecipeError(code domainerror.RecipeErrorCode) int {
	switch code {
	case domainerror.ErrCodeRecipeNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidRecipeName,
		domainerror.ErrCodeInvalidRecipeLine,
		domainerror.ErrCodeUnknownRecipeIngredient,
		domainerror.ErrCodeUnknownRecipeMenuItem,
		domainerror.ErrCodeMissingRecipeFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func statusForMenuItemError(code domainerror.MenuItemErrorCode) int {
	switch code {
	case domainerror.ErrCodeMenuItemNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidMenuItemName,
		domainerror.ErrCodeInvalidMenuItemPrice,
		domainerror.ErrCodeMissingMenuItemFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func statusForCOGSError(code domainerror.COGSErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidCOGSAmount,
		domainerror.ErrCodeInvalidCOGSWeek,
		domainerror.ErrCodeMissingCOGSWeek,
		domainerror.ErrCodeCOGSWeekTooLong,
		domainerror.ErrCodeMissingCOGSFields,
		domainerror.ErrCodeInvalidCOGSDate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func statusForDashboardError(code domainerror.DashboardErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingStartDate,
		domainerror.ErrCodeMissingEndDate,
		domainerror.ErrCodeInvalidDateRange,
		domainerror.ErrCodeInvalidTimeFrame,
		domainerror.ErrCodeMissingTimeFrame,
		domainerror.ErrCodeInvalidDateFormat,
		domainerror.ErrCodeDateRangeTooLarge:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func statusForActionItemError(code domainerror.ActionItemErrorCode) int {
	switch code {
	case domainerror.ErrCodeActionItemNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidActionItemTransition:
		return http.StatusConflict
	case domainerror.ErrCodeMissingActionItemFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeActionItemSubmissionFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func statusForCompetitorError(code domainerror.CompetitorErrorCode) int {
	switch code {
	case domainerror.ErrCodeCompetitorItemNotFound,
		domainerror.ErrCodeReferenceItemNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidCompetitorItem:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func statusForAIError(code domainerror.AISuggestionErrorCode) int {
	switch code {
	case domainerror.ErrCodeAINoMenuItems,
		domainerror.ErrCodeAITooManyMenuItems:
		return http.StatusBadRequest
	case domainerror.ErrCodeAIServiceUnavailable:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeAIRateLimited:
		return http.StatusTooManyRequests
	case domainerror.ErrCodeAITimeout:
		return http.StatusGatewayTimeout
	case domainerror.ErrCodeAIGenerationFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func statusForImportError(code domainerror.ImportErrorCode) int {
	switch code {
	case domainerror.ErrCodeImportAlreadyRunning:
		return http.StatusConflict
	case domainerror.ErrCodeImportNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidImportRange:
		return http.StatusBadRequest
	case domainerror.ErrCodeUpstreamUnavailable:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeUpstreamProcessFailed,
		domainerror.ErrCodeInvalidUpstreamPayload:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func statusForSettingsError(code domainerror.SettingsErrorCode) int {
	switch code {
	case domainerror.ErrCodeSettingsNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidNotificationEmail,
		domainerror.ErrCodeMissingSettingsFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
