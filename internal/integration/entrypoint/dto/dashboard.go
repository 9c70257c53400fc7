// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/menu-pricing/backend/internal/application/usecase/dashboard"
	"github.com/menu-pricing/backend/internal/domain/entity"
)

// SalesChartResponse is a gap-filled chart series.
type SalesChartResponse struct {
	TimeFrame        string                  `json:"time_frame"`
	Granularity      string                  `json:"granularity"`
	StartDate        string                  `json:"start_date"`
	EndDate          string                  `json:"end_date"`
	Points           []entity.ChartDataPoint `json:"points"`
	EstimatedBuckets int                     `json:"estimated_buckets"`
}

// SalesDataResponse is the sales summary of a period.
type SalesDataResponse struct {
	StartDate         string                 `json:"start_date"`
	EndDate           string                 `json:"end_date"`
	TotalSales        float64                `json:"total_sales"`
	TotalOrders       int                    `json:"total_orders"`
	AverageOrderValue float64                `json:"average_order_value"`
	TopSellingItems   []entity.ItemSales     `json:"top_selling_items"`
	SalesByDay        []dashboard.DaySales   `json:"sales_by_day"`
	SalesByCategory   []entity.CategorySales `json:"sales_by_category"`
}

// ProductPerformanceResponse lists per-item performance.
type ProductPerformanceResponse struct {
	TimeFrame string                         `json:"time_frame"`
	Products  []dashboard.ProductPerformance `json:"products"`
}

// ToSalesChartResponse converts the chart output.
func ToSalesChartResponse(o *dashboard.GetSalesChartOutput) SalesChartResponse {
	return SalesChartResponse{
		TimeFrame:        string(o.TimeFrame),
		Granularity:      string(o.Granularity),
		StartDate:        o.StartDate.Format(DateLayout),
		EndDate:          o.EndDate.Format(DateLayout),
		Points:           o.Points,
		EstimatedBuckets: o.EstimatedBuckets,
	}
}

// ToSalesDataResponse converts the sales summary output.
func ToSalesDataResponse(o *dashboard.GetSalesDataOutput) SalesDataResponse {
	return SalesDataResponse{
		StartDate:         o.StartDate.Format(DateLayout),
		EndDate:           o.EndDate.Format(DateLayout),
		TotalSales:        o.TotalSales,
		TotalOrders:       o.TotalOrders,
		AverageOrderValue: o.AverageOrderValue,
		TopSellingItems:   o.TopSellingItems,
		SalesByDay:        o.SalesByDay,
		SalesByCategory:   o.SalesByCategory,
	}
}
