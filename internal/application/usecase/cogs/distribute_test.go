package cogs

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menu-pricing/backend/internal/domain/entity"
)

func day(s string) time.Time {
	t, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func entry(start, end string, amount float64) *entity.COGSEntry {
	return entity.NewCOGSEntry(uuid.Nil, day(start), day(end), amount)
}

func TestDistributeWeekly(t *testing.T) {
	t.Run("full week splits evenly", func(t *testing.T) {
		daily := DistributeWeekly([]*entity.COGSEntry{entry("2024-01-01", "2024-01-07", 700)})

		require.Len(t, daily, 7)
		sum := 0.0
		for d := day("2024-01-01"); !d.After(day("2024-01-07")); d = d.AddDate(0, 0, 1) {
			assert.Equal(t, 100.0, daily[d.Format(entity.DateLayout)])
			sum += daily[d.Format(entity.DateLayout)]
		}
		assert.InDelta(t, 700.0, sum, 1e-9)
	})

	t.Run("uneven amount sums back", func(t *testing.T) {
		daily := DistributeWeekly([]*entity.COGSEntry{entry("2024-03-04", "2024-03-10", 1000)})

		sum := 0.0
		for _, v := range daily {
			sum += v
		}
		assert.InDelta(t, 1000.0, sum, 1e-9)
	})

	t.Run("partial week", func(t *testing.T) {
		daily := DistributeWeekly([]*entity.COGSEntry{entry("2024-01-29", "2024-01-31", 300)})

		assert.Len(t, daily, 3)
		assert.Equal(t, 100.0, daily["2024-01-30"])
	})

	t.Run("overlap last write wins", func(t *testing.T) {
		daily := DistributeWeekly([]*entity.COGSEntry{
			entry("2024-01-01", "2024-01-07", 700),
			entry("2024-01-05", "2024-01-06", 40),
		})

		assert.Equal(t, 100.0, daily["2024-01-04"])
		assert.Equal(t, 20.0, daily["2024-01-05"])
		assert.Equal(t, 20.0, daily["2024-01-06"])
		assert.Equal(t, 100.0, daily["2024-01-07"])
	})

	t.Run("inverted entry is skipped", func(t *testing.T) {
		daily := DistributeWeekly([]*entity.COGSEntry{entry("2024-01-07", "2024-01-01", 700)})

		assert.Empty(t, daily)
	})
}

func TestCostResolver(t *testing.T) {
	// Wednesday 2024-01-17; current week is 2024-01-15..21.
	now := time.Date(2024, 1, 17, 15, 0, 0, 0, time.UTC)

	t.Run("actual cost wins", func(t *testing.T) {
		r := NewCostResolver(
			[]*entity.COGSEntry{entry("2024-01-01", "2024-01-07", 700)},
			map[string]float64{"2024-01-03": 42},
			now, 0,
		)

		got := r.Resolve(day("2024-01-03"), 500)
		assert.Equal(t, ResolvedCost{Amount: 42, Source: entity.CostSourceActual}, got)
	})

	t.Run("distributed", func(t *testing.T) {
		r := NewCostResolver([]*entity.COGSEntry{entry("2024-01-01", "2024-01-07", 700)}, nil, now, 0)

		got := r.Resolve(day("2024-01-02"), 500)
		assert.Equal(t, ResolvedCost{Amount: 100, Source: entity.CostSourceDistributed}, got)
	})

	t.Run("week start fallback divides by seven", func(t *testing.T) {
		// Partial entry Mon..Tue; Friday of the same week is not distributed.
		r := NewCostResolver([]*entity.COGSEntry{entry("2024-01-08", "2024-01-09", 140)}, nil, now, 0)

		got := r.Resolve(day("2024-01-12"), 500)
		assert.Equal(t, entity.CostSourceWeekFallback, got.Source)
		assert.InDelta(t, 20.0, got.Amount, 1e-9)
	})

	t.Run("carried forward in current week", func(t *testing.T) {
		r := NewCostResolver(
			[]*entity.COGSEntry{entry("2024-01-08", "2024-01-14", 700)},
			map[string]float64{"2024-01-15": 55},
			now, 0,
		)

		got := r.Resolve(day("2024-01-17"), 300)
		assert.Equal(t, ResolvedCost{Amount: 55, Source: entity.CostSourceCarriedForward}, got)
	})

	t.Run("no carry forward outside current week", func(t *testing.T) {
		r := NewCostResolver([]*entity.COGSEntry{entry("2023-12-25", "2023-12-31", 700)}, nil, now, 0)

		got := r.Resolve(day("2024-01-03"), 200)
		assert.Equal(t, entity.CostSourceEstimated, got.Source)
		assert.InDelta(t, 140.0, got.Amount, 1e-9)
		assert.True(t, got.Estimated())
	})

	t.Run("custom estimate ratio", func(t *testing.T) {
		r := NewCostResolver(nil, nil, now, 0.5)

		got := r.Resolve(day("2024-01-03"), 200)
		assert.InDelta(t, 100.0, got.Amount, 1e-9)
	})

	t.Run("no revenue and no data", func(t *testing.T) {
		r := NewCostResolver(nil, nil, now, 0)

		got := r.Resolve(day("2024-01-03"), 0)
		assert.Equal(t, ResolvedCost{Amount: 0, Source: entity.CostSourceNone}, got)
	})
}
