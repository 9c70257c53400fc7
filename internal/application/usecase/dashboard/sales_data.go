// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/menu-pricing/backend/internal/application/adapter"
	"github.com/menu-pricing/backend/internal/domain/entity"
	domainerror "github.com/menu-pricing/backend/internal/domain/error"
	"github.com/menu-pricing/backend/internal/domain/valueobject"
)

const (
	// TopSellingItemsLimit caps the top selling items list.
	TopSellingItemsLimit = 5

	// MaxRangeDays is the longest explicit date range accepted.
	MaxRangeDays = 366
)

// GetSalesDataInput represents the input for the sales summary.
// Explicit dates win over the time frame.
type GetSalesDataInput struct {
	AccountID uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	TimeFrame valueobject.TimeFrame
}

// DaySales is one gap-filled day of the summary.
type DaySales struct {
	Date          string   `json:"date"`
	Revenue       float64  `json:"revenue"`
	Orders        int      `json:"orders"`
	COGS          float64  `json:"cogs"`
	ProfitMargin  *float64 `json:"profit_margin"`
	COGSEstimated bool     `json:"cogs_estimated"`
}

// GetSalesDataOutput represents the sales summary of a period.
type GetSalesDataOutput struct {
	StartDate         time.Time              `json:"start_date"`
	EndDate           time.Time              `json:"end_date"`
	TotalSales        float64                `json:"total_sales"`
	TotalOrders       int                    `json:"total_orders"`
	AverageOrderValue float64                `json:"average_order_value"`
	TopSellingItems   []entity.ItemSales     `json:"top_selling_items"`
	SalesByDay        []DaySales             `json:"sales_by_day"`
	SalesByCategory   []entity.CategorySales `json:"sales_by_category"`
}

// GetSalesDataUseCase builds the sales summary shown above the charts.
type GetSalesDataUseCase struct {
	loader  *periodLoader
	clock   adapter.Clock
	metrics adapter.MetricsRecorder
}

// NewGetSalesDataUseCase creates a new GetSalesDataUseCase instance.
func NewGetSalesDataUseCase(
	salesRepo adapter.SalesRepository,
	cogsRepo adapter.COGSRepository,
	clock adapter.Clock,
	metrics adapter.MetricsRecorder,
	estimateRatio float64,
) *GetSalesDataUseCase {
	if metrics == nil {
		metrics = adapter.NoopMetrics{}
	}
	return &GetSalesDataUseCase{
		loader: &periodLoader{
			salesRepo:     salesRepo,
			cogsRepo:      cogsRepo,
			estimateRatio: estimateRatio,
		},
		clock:   clock,
		metrics: metrics,
	}
}

// Execute computes totals, top items, gap-filled days and categories.
func (uc *GetSalesDataUseCase) Execute(ctx context.Context, input GetSalesDataInput) (*GetSalesDataOutput, error) {
	now := uc.clock.Now()

	start, end, err := resolveWindow(input.StartDate, input.EndDate, input.TimeFrame, now)
	if err != nil {
		return nil, err
	}

	data, err := uc.loader.load(ctx, input.AccountID, start, end, now)
	if err != nil {
		return nil, err
	}

	output := &GetSalesDataOutput{
		StartDate:       start,
		EndDate:         end.AddDate(0, 0, -1),
		TotalOrders:     countOrders(data.records),
		SalesByCategory: AggregateCategories(data.records),
	}

	for _, record := range data.records {
		output.TotalSales += record.Revenue
	}
	output.TotalSales = valueobject.RoundTo2(output.TotalSales)
	if output.TotalOrders > 0 {
		output.AverageOrderValue = valueobject.RoundTo2(output.TotalSales / float64(output.TotalOrders))
	}

	items := AggregateItems(data.records)
	if len(items) > TopSellingItemsLimit {
		items = items[:TopSellingItemsLimit]
	}
	output.TopSellingItems = items

	days := daysOf(start, end)
	output.SalesByDay = make([]DaySales, 0, len(days))
	for _, day := range days {
		revenue, orders := data.day(day)
		cost := data.resolver.Resolve(day, revenue)
		if cost.Estimated() {
			uc.metrics.EstimatedCostDay()
		}
		output.SalesByDay = append(output.SalesByDay, DaySales{
			Date:          day.Format(entity.DateLayout),
			Revenue:       valueobject.RoundTo2(revenue),
			Orders:        orders,
			COGS:          valueobject.RoundTo2(cost.Amount),
			ProfitMargin:  valueobject.ProfitMargin(revenue, cost.Amount),
			COGSEstimated: cost.Estimated(),
		})
	}

	return output, nil
}

// resolveWindow returns the [start, end) window of the request in now's location.
func resolveWindow(startDate, endDate *time.Time, frame valueobject.TimeFrame, now time.Time) (time.Time, time.Time, error) {
	loc := now.Location()

	if startDate != nil || endDate != nil {
		if startDate == nil {
			return time.Time{}, time.Time{}, domainerror.NewDashboardError(
				domainerror.ErrCodeMissingStartDate,
				"start_date is required",
				domainerror.ErrMissingStartDate,
			)
		}
		if endDate == nil {
			return time.Time{}, time.Time{}, domainerror.NewDashboardError(
				domainerror.ErrCodeMissingEndDate,
				"end_date is required",
				domainerror.ErrMissingEndDate,
			)
		}

		start := inLocation(*startDate, loc)
		last := inLocation(*endDate, loc)
		if last.Before(start) {
			return time.Time{}, time.Time{}, domainerror.NewDashboardError(
				domainerror.ErrCodeInvalidDateRange,
				"end_date must be after start_date",
				domainerror.ErrInvalidDateRange,
			)
		}
		if entity.DaysBetween(start, last)+1 > MaxRangeDays {
			return time.Time{}, time.Time{}, domainerror.NewDashboardError(
				domainerror.ErrCodeDateRangeTooLarge,
				"date range must not exceed 366 days",
				domainerror.ErrDateRangeTooLarge,
			)
		}
		return start, last.AddDate(0, 0, 1), nil
	}

	if frame == "" {
		return time.Time{}, time.Time{}, domainerror.NewDashboardError(
			domainerror.ErrCodeMissingTimeFrame,
			"time_frame or start_date/end_date is required",
			domainerror.ErrMissingTimeFrame,
		)
	}
	if !frame.IsValid() {
		return time.Time{}, time.Time{}, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidTimeFrame,
			"time_frame must be: 1d, 7d, 1m, 6m, or 1yr",
			domainerror.ErrInvalidTimeFrame,
		)
	}

	start, end := FrameWindow(frame, now, false)
	return start, end, nil
}

// inLocation reinterprets the calendar date of t as midnight in loc.
func inLocation(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
