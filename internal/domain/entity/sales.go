// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SalesRecord is a single sold line item imported from the point of sale.
type SalesRecord struct {
	ID             uuid.UUID
	AccountID      uuid.UUID
	ExternalLineID string
	OrderID        string
	MenuItemID     *uuid.UUID
	ItemName       string
	Category       string
	Quantity       int
	Revenue        float64
	Cost           *float64 // Food cost reported by the point of sale, if any
	SoldAt         time.Time
	CreatedAt      time.Time
}

// DailySalesRow is the per-day sales aggregate consumed by the chart builders.
type DailySalesRow struct {
	Date    time.Time
	Revenue float64
	Orders  int
	Cost    *float64 // Optional pre-aggregated cost
	Margin  *float64 // Optional pre-aggregated margin
}

// HourlySalesRow is the per-hour sales aggregate used by the 1d chart.
type HourlySalesRow struct {
	Hour    time.Time
	Revenue float64
	Orders  int
}

// ItemSales aggregates sales of a single item over a period.
type ItemSales struct {
	MenuItemID *uuid.UUID `json:"menu_item_id"`
	ItemName   string     `json:"item_name"`
	Category   string     `json:"category"`
	Quantity   int        `json:"quantity"`
	Revenue    float64    `json:"revenue"`
	Orders     int        `json:"orders"`
}

// CategorySales aggregates sales of a category over a period.
type CategorySales struct {
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
	Quantity int     `json:"quantity"`
}
