// Package valueobject contains immutable value objects used across the domain layer.
package valueobject

import "github.com/shopspring/decimal"

// ProfitMargin returns the margin percentage rounded to two decimals.
//
// Both revenue and cost must be positive: without cost data the margin is
// undefined and nil is returned, so charts render a gap instead of a
// misleading 100%.
func ProfitMargin(revenue, cogs float64) *float64 {
	if revenue <= 0 || cogs <= 0 {
		return nil
	}
	margin := RoundTo2(((revenue - cogs) / revenue) * 100)
	return &margin
}

// RoundTo2 rounds a float to two decimal places using half-away-from-zero.
func RoundTo2(value float64) float64 {
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}
