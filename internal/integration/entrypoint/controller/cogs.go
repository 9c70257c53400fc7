// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/menu-pricing/backend/internal/application/usecase/cogs"
	domainerror "github.com/menu-pricing/backend/internal/domain/error"
	"github.com/menu-pricing/backend/internal/integration/entrypoint/dto"
)

// COGSController handles weekly cost of goods sold endpoints.
type COGSController struct {
	submitUseCase      *cogs.SubmitCOGSUseCase
	listUseCase        *cogs.ListCOGSUseCase
	dailyUseCase       *cogs.GetDailyCOGSUseCase
	deleteUseCase      *cogs.DeleteCOGSUseCase
	currentWeekUseCase *cogs.GetCurrentWeekUseCase
}

// NewCOGSController creates a new COGS controller instance.
func NewCOGSController(
	submitUseCase *cogs.SubmitCOGSUseCase,
	listUseCase *cogs.ListCOGSUseCase,
	dailyUseCase *cogs.GetDailyCOGSUseCase,
	deleteUseCase *cogs.DeleteCOGSUseCase,
	currentWeekUseCase *cogs.GetCurrentWeekUseCase,
) *COGSController {
	return &COGSController{
		submitUseCase:      submitUseCase,
		listUseCase:        listUseCase,
		dailyUseCase:       dailyUseCase,
		deleteUseCase:      deleteUseCase,
		currentWeekUseCase: currentWeekUseCase,
	}
}

// List handles GET /cogs requests.
func (c *COGSController) List(ctx *gin.Context) {
	accountID, ok := requireAccount(ctx)
	if !ok {
		return
	}

	input, err := rangeInput(ctx, accountID)
	if err != nil {
		handleError(ctx, err)
		return
	}

	entries, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCOGSListResponse(entries))
}

// Submit handles POST /cogs requests. An existing week is replaced.
func (c *COGSController) Submit(ctx *gin.Context) {
	accountID, ok := requireAccount(ctx)
	if !ok {
		return
	}

	var req dto.SubmitCOGSRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingCOGSFields),
			Details: err.Error(),
		})
		return
	}

	weekStart, err := parseCOGSDate("week_start_date", req.WeekStartDate)
	if err != nil {
		handleError(ctx, err)
		return
	}

	var weekEnd *time.Time
	if req.WeekEndDate != nil && *req.WeekEndDate != "" {
		end, err := parseCOGSDate("week_end_date", *req.WeekEndDate)
		if err != nil {
			handleError(ctx, err)
			return
		}
		weekEnd = &end
	}

	output, err := c.submitUseCase.Execute(ctx.Request.Context(), cogs.SubmitCOGSInput{
		AccountID:     accountID,
		WeekStartDate: weekStart,
		WeekEndDate:   weekEnd,
		Amount:        *req.Amount,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCOGSEntryResponse(output.Entry))
}

// DeleteAll handles DELETE /cogs requests.
func (c *COGSController) DeleteAll(ctx *gin.Context) {
	accountID, ok := requireAccount(ctx)
	if !ok {
		return
	}

	deleted, err := c.deleteUseCase.Execute(ctx.Request.Context(), accountID)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteCOGSResponse{DeletedCount: deleted})
}

// Daily handles GET /cogs/daily requests.
func (c *COGSController) Daily(ctx *gin.Context) {
	accountID, ok := requireAccount(ctx)
	if !ok {
		return
	}

	input, err := rangeInput(ctx, accountID)
	if err != nil {
		handleError(ctx, err)
		return
	}

	output, err := c.dailyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DailyCOGSResponse{
		StartDate: input.StartDate.Format(dto.DateLayout),
		EndDate:   input.EndDate.Format(dto.DateLayout),
		Daily:     output.Daily,
	})
}

// CurrentWeek handles GET /cogs/current-week requests.
func (c *COGSController) CurrentWeek(ctx *gin.Context) {
	accountID, ok := requireAccount(ctx)
	if !ok {
		return
	}

	output, err := c.currentWeekUseCase.Execute(ctx.Request.Context(), accountID)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCurrentWeekResponse(output))
}

func rangeInput(ctx *gin.Context, accountID uuid.UUID) (cogs.RangeInput, error) {
	input := cogs.RangeInput{AccountID: accountID}

	start, err := parseOptionalDate(ctx, "start_date")
	if err != nil {
		return input, err
	}
	end, err := parseOptionalDate(ctx, "end_date")
	if err != nil {
		return input, err
	}

	if start != nil {
		input.StartDate = *start
	}
	if end != nil {
		input.EndDate = *end
	}
	return input, nil
}

func parseCOGSDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		return time.Time{}, domainerror.NewCOGSError(
			domainerror.ErrCodeInvalidCOGSDate,
			field+" must be in YYYY-MM-DD format",
			err,
		)
	}
	return t, nil
}
