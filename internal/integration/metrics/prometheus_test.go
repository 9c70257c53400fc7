package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusRecorder_Counters(t *testing.T) {
	r := NewPrometheusRecorder()

	r.UnitConversionFallback("cup", "gram")
	r.UnitConversionFallback("cup", "gram")
	r.EstimatedCostDay()
	r.ImportFinished("completed")
	r.ImportFinished("error")
	r.ImportFinished("completed")

	assert.Equal(t, 2.0, testutil.ToFloat64(r.unitFallbacks.WithLabelValues("cup", "gram")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.estimatedDays))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.imports.WithLabelValues("completed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.imports.WithLabelValues("error")))
}

func TestPrometheusRecorder_Histograms(t *testing.T) {
	r := NewPrometheusRecorder()

	r.SeriesBuilt("1yr", 15*time.Millisecond)
	r.ObserveRequest(http.MethodGet, "/api/v1/cogs", http.StatusOK, time.Millisecond)
	r.ObserveRequest(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, 1, testutil.CollectAndCount(r.seriesDuration))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.httpRequests.WithLabelValues("GET", "unmatched", "404")))
}

func TestPrometheusRecorder_Handler(t *testing.T) {
	r := NewPrometheusRecorder()
	r.EstimatedCostDay()

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "menu_pricing_estimated_cost_days_total 1")
}
