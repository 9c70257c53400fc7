// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/menu-pricing/backend/internal/application/usecase/dashboard"
	domainerror "github.com/menu-pricing/backend/internal/domain/error"
	"github.com/menu-pricing/backend/internal/domain/valueobject"
	"github.com/menu-pricing/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	salesDataUseCase          *dashboard.GetSalesDataUseCase
	salesChartUseCase         *dashboard.GetSalesChartUseCase
	productPerformanceUseCase *dashboard.GetProductPerformanceUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	salesDataUseCase *dashboard.GetSalesDataUseCase,
	salesChartUseCase *dashboard.GetSalesChartUseCase,
	productPerformanceUseCase *dashboard.GetProductPerformanceUseCase,
) *DashboardController {
	return &DashboardController{
		salesDataUseCase:          salesDataUseCase,
		salesChartUseCase:         salesChartUseCase,
		productPerformanceUseCase: productPerformanceUseCase,
	}
}

// GetSalesData handles GET /dashboard/sales-data requests.
// Explicit start_date/end_date win over time_frame.
func (c *DashboardController) GetSalesData(ctx *gin.Context) {
	accountID, ok := requireAccount(ctx)
	if !ok {
		return
	}

	startDate, err := parseOptionalDate(ctx, "start_date")
	if err != nil {
		handleError(ctx, err)
		return
	}
	endDate, err := parseOptionalDate(ctx, "end_date")
	if err != nil {
		handleError(ctx, err)
		return
	}

	output, err := c.salesDataUseCase.Execute(ctx.Request.Context(), dashboard.GetSalesDataInput{
		AccountID: accountID,
		StartDate: startDate,
		EndDate:   endDate,
		TimeFrame: valueobject.TimeFrame(ctx.Query("time_frame")),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSalesDataResponse(output))
}

// GetSalesChart handles GET /dashboard/sales-chart requests.
func (c *DashboardController) GetSalesChart(ctx *gin.Context) {
	accountID, ok := requireAccount(ctx)
	if !ok {
		return
	}

	end := ctx.DefaultQuery("end", "today")
	if end != "today" && end != "yesterday" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "end must be: today or yesterday",
			Code:  string(domainerror.ErrCodeInvalidDateRange),
		})
		return
	}

	output, err := c.salesChartUseCase.Execute(ctx.Request.Context(), dashboard.GetSalesChartInput{
		AccountID:    accountID,
		TimeFrame:    valueobject.TimeFrame(ctx.DefaultQuery("time_frame", string(valueobject.TimeFrameWeek))),
		EndYesterday: end == "yesterday",
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSalesChartResponse(output))
}

// GetProductPerformance handles GET /dashboard/product-performance requests.
func (c *DashboardController) GetProductPerformance(ctx *gin.Context) {
	accountID, ok := requireAccount(ctx)
	if !ok {
		return
	}

	frame := valueobject.TimeFrame(ctx.DefaultQuery("time_frame", string(valueobject.TimeFrameMonth)))
	products, err := c.productPerformanceUseCase.Execute(ctx.Request.Context(), dashboard.GetProductPerformanceInput{
		AccountID: accountID,
		TimeFrame: frame,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ProductPerformanceResponse{
		TimeFrame: string(frame),
		Products:  products,
	})
}
