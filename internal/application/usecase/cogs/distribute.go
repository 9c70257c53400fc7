// Package cogs contains cost-of-goods-sold use cases and the daily cost distribution.
package cogs

import (
	"log/slog"
	"sort"
	"time"

	"github.com/menu-pricing/backend/internal/domain/entity"
)

// DefaultEstimateRatio is the share of revenue assumed as cost when no COGS data exists (30% margin).
const DefaultEstimateRatio = 0.7

// DistributeWeekly spreads each weekly amount evenly over the days of its week.
// Keys are ISO dates. When entries overlap, the later entry in the slice wins.
// Entries whose end precedes their start are skipped.
func DistributeWeekly(entries []*entity.COGSEntry) map[string]float64 {
	daily := make(map[string]float64)

	for _, entry := range entries {
		days := entry.DaysInWeek()
		if days <= 0 {
			slog.Warn("Skipping COGS entry with inverted week",
				"entryID", entry.ID.String(),
				"weekStart", entry.WeekStartDate.Format(entity.DateLayout),
				"weekEnd", entry.WeekEndDate.Format(entity.DateLayout),
			)
			continue
		}

		dailyCost := entry.Amount / float64(days)
		start := entity.StartOfDay(entry.WeekStartDate)
		for i := 0; i < days; i++ {
			daily[start.AddDate(0, 0, i).Format(entity.DateLayout)] = dailyCost
		}
	}

	return daily
}

// ResolvedCost is the cost attributed to one day and where it came from.
type ResolvedCost struct {
	Amount float64
	Source entity.CostSource
}

// Estimated reports whether the amount is the revenue-based approximation.
func (r ResolvedCost) Estimated() bool {
	return r.Source == entity.CostSourceEstimated
}

// CostResolver attributes a cost to any day using the fallback chain:
// pre-aggregated actual cost, distributed weekly amount, the week's entry
// divided by 7, the last known day (current week only), a revenue estimate,
// and finally zero.
type CostResolver struct {
	entries       []*entity.COGSEntry
	daily         map[string]float64
	actual        map[string]float64
	knownDays     []string
	today         time.Time
	estimateRatio float64
}

// NewCostResolver builds a resolver over the given entries.
// actual holds pre-aggregated daily costs keyed by ISO date and may be nil.
// now anchors "today" and the current week.
func NewCostResolver(entries []*entity.COGSEntry, actual map[string]float64, now time.Time, estimateRatio float64) *CostResolver {
	if estimateRatio <= 0 {
		estimateRatio = DefaultEstimateRatio
	}
	if actual == nil {
		actual = map[string]float64{}
	}

	daily := DistributeWeekly(entries)

	seen := make(map[string]struct{}, len(daily)+len(actual))
	known := make([]string, 0, len(daily)+len(actual))
	for _, src := range []map[string]float64{daily, actual} {
		for day := range src {
			if _, ok := seen[day]; ok {
				continue
			}
			seen[day] = struct{}{}
			known = append(known, day)
		}
	}
	sort.Strings(known)

	return &CostResolver{
		entries:       entries,
		daily:         daily,
		actual:        actual,
		knownDays:     known,
		today:         entity.StartOfDay(now),
		estimateRatio: estimateRatio,
	}
}

// Daily returns the distributed per-day map.
func (r *CostResolver) Daily() map[string]float64 {
	return r.daily
}

// Resolve returns the cost of day given the revenue booked on it.
func (r *CostResolver) Resolve(day time.Time, revenue float64) ResolvedCost {
	key := day.Format(entity.DateLayout)

	if cost, ok := r.actual[key]; ok {
		return ResolvedCost{Amount: cost, Source: entity.CostSourceActual}
	}

	if cost, ok := r.daily[key]; ok {
		return ResolvedCost{Amount: cost, Source: entity.CostSourceDistributed}
	}

	monday := entity.WeekStart(day)
	for i := len(r.entries) - 1; i >= 0; i-- {
		entry := r.entries[i]
		if entity.DaysBetween(entry.WeekStartDate, monday) == 0 || entry.Covers(day) {
			return ResolvedCost{Amount: entry.Amount / 7, Source: entity.CostSourceWeekFallback}
		}
	}

	if r.inCurrentWeek(day) {
		if cost, ok := r.lastKnownBefore(key); ok {
			return ResolvedCost{Amount: cost, Source: entity.CostSourceCarriedForward}
		}
	}

	// Approximation only: keeps the margin line continuous where no cost was
	// recorded. Callers must surface it as estimated.
	if revenue > 0 {
		return ResolvedCost{Amount: revenue * r.estimateRatio, Source: entity.CostSourceEstimated}
	}

	return ResolvedCost{Amount: 0, Source: entity.CostSourceNone}
}

func (r *CostResolver) inCurrentWeek(day time.Time) bool {
	d := entity.StartOfDay(day)
	weekStart := entity.WeekStart(r.today)
	offset := entity.DaysBetween(weekStart, d)
	return offset >= 0 && offset < 7
}

// lastKnownBefore finds the cost of the latest known day strictly before key.
func (r *CostResolver) lastKnownBefore(key string) (float64, bool) {
	idx := sort.SearchStrings(r.knownDays, key)
	if idx == 0 {
		return 0, false
	}
	prev := r.knownDays[idx-1]
	if cost, ok := r.actual[prev]; ok {
		return cost, true
	}
	return r.daily[prev], true
}
