// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// MetricsRecorder records domain metrics.
type MetricsRecorder interface {
	// UnitConversionFallback counts a conversion that fell back to factor 1.
	UnitConversionFallback(from, to string)

	// EstimatedCostDay counts a day whose cost was estimated from revenue.
	EstimatedCostDay()

	// ImportFinished counts an import outcome by terminal status.
	ImportFinished(status string)

	// SeriesBuilt observes the duration of a chart series build.
	SeriesBuilt(timeFrame string, duration time.Duration)
}

// NoopMetrics discards every observation.
type NoopMetrics struct{}

func (NoopMetrics) UnitConversionFallback(string, string) {}
func (NoopMetrics) EstimatedCostDay()                     {}
func (NoopMetrics) ImportFinished(string)                 {}
func (NoopMetrics) SeriesBuilt(string, time.Duration)     {}
