// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// CostSource tells where a day's cost figure came from.
type CostSource string

const (
	CostSourceActual         CostSource = "actual"
	CostSourceDistributed    CostSource = "distributed"
	CostSourceWeekFallback   CostSource = "week_fallback"
	CostSourceCarriedForward CostSource = "carried_forward"
	CostSourceEstimated      CostSource = "estimated"
	CostSourceNone           CostSource = "none"
)

// ChartDataPoint is a single gap-filled bucket of a sales chart.
type ChartDataPoint struct {
	Label         string    `json:"label"`
	BucketStart   time.Time `json:"bucket_start"`
	Revenue       float64   `json:"revenue"`
	Orders        int       `json:"orders"`
	COGS          float64   `json:"cogs"`
	ProfitMargin  *float64  `json:"profit_margin"`
	COGSEstimated bool      `json:"cogs_estimated"`
}
