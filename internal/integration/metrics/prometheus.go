// Package metrics provides the Prometheus implementation of the metrics recorder.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/menu-pricing/backend/internal/application/adapter"
)

const namespace = "menu_pricing"

// PrometheusRecorder records domain and HTTP metrics on its own registry.
type PrometheusRecorder struct {
	registry *prometheus.Registry

	unitFallbacks   *prometheus.CounterVec
	estimatedDays   prometheus.Counter
	imports         *prometheus.CounterVec
	seriesDuration  *prometheus.HistogramVec
	httpRequests    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewPrometheusRecorder creates a recorder with every collector registered.
func NewPrometheusRecorder() *PrometheusRecorder {
	registry := prometheus.NewRegistry()

	r := &PrometheusRecorder{
		registry: registry,
		unitFallbacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "unit_conversion_fallbacks_total",
				Help:      "Unit conversions that fell back to factor 1",
			},
			[]string{"from", "to"},
		),
		estimatedDays: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "estimated_cost_days_total",
				Help:      "Days whose cost was estimated from revenue",
			},
		),
		imports: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "imports_total",
				Help:      "Sales imports by terminal status",
			},
			[]string{"status"},
		),
		seriesDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "series_build_duration_seconds",
				Help:      "Time taken to build a chart series",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
			},
			[]string{"time_frame"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by route and status",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	registry.MustRegister(
		r.unitFallbacks,
		r.estimatedDays,
		r.imports,
		r.seriesDuration,
		r.httpRequests,
		r.requestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// UnitConversionFallback counts a conversion that fell back to factor 1.
func (r *PrometheusRecorder) UnitConversionFallback(from, to string) {
	r.unitFallbacks.WithLabelValues(from, to).Inc()
}

// EstimatedCostDay counts a day whose cost was estimated from revenue.
func (r *PrometheusRecorder) EstimatedCostDay() {
	r.estimatedDays.Inc()
}

// ImportFinished counts an import outcome.
func (r *PrometheusRecorder) ImportFinished(status string) {
	r.imports.WithLabelValues(status).Inc()
}

// SeriesBuilt observes a chart series build.
func (r *PrometheusRecorder) SeriesBuilt(timeFrame string, duration time.Duration) {
	r.seriesDuration.WithLabelValues(timeFrame).Observe(duration.Seconds())
}

// ObserveRequest records one served HTTP request.
func (r *PrometheusRecorder) ObserveRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Registry returns the underlying registry.
func (r *PrometheusRecorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler exposes the registry in the Prometheus text format.
func (r *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

var _ adapter.MetricsRecorder = (*PrometheusRecorder)(nil)
