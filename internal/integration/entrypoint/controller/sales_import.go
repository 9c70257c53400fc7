// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/menu-pricing/backend/internal/application/usecase/salesimport"
	"github.com/menu-pricing/backend/internal/integration/entrypoint/dto"
)

// SalesImportController handles point-of-sale import endpoints.
type SalesImportController struct {
	startUseCase *salesimport.StartImportUseCase
	getUseCase   *salesimport.GetImportUseCase
}

// NewSalesImportController creates a new sales import controller instance.
func NewSalesImportController(
	startUseCase *salesimport.StartImportUseCase,
	getUseCase *salesimport.GetImportUseCase,
) *SalesImportController {
	return &SalesImportController{
		startUseCase: startUseCase,
		getUseCase:   getUseCase,
	}
}

// Start handles POST /sales/imports requests.
// The import runs in the background; the response carries the job to poll.
func (c *SalesImportController) Start(ctx *gin.Context) {
	accountID, ok := requireAccount(ctx)
	if !ok {
		return
	}

	var req dto.StartImportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err)
		return
	}

	startDate, err := parseDate("start_date", req.StartDate)
	if err != nil {
		handleError(ctx, err)
		return
	}
	endDate, err := parseDate("end_date", req.EndDate)
	if err != nil {
		handleError(ctx, err)
		return
	}

	output, err := c.startUseCase.Execute(ctx.Request.Context(), salesimport.StartImportInput{
		AccountID: accountID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, dto.ToImportJobResponse(output.Job))
}

// Get handles GET /sales/imports/:id requests.
func (c *SalesImportController) Get(ctx *gin.Context) {
	accountID, ok := requireAccount(ctx)
	if !ok {
		return
	}

	job, err := c.getUseCase.Execute(ctx.Request.Context(), salesimport.GetImportInput{
		AccountID: accountID,
		JobID:     ctx.Param("id"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToImportJobResponse(job))
}
