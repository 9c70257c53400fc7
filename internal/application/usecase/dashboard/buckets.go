// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"fmt"
	"time"

	"github.com/menu-pricing/backend/internal/domain/entity"
	"github.com/menu-pricing/backend/internal/domain/valueobject"
)

// Bucket is one slot of a chart's time axis. End is exclusive.
type Bucket struct {
	Start time.Time
	End   time.Time
	Label string

	// key pins hour buckets to their wall-clock hour; Start can shift on DST days.
	key string
}

// Key returns the lookup key of the bucket for its granularity.
func (b Bucket) Key(granularity valueobject.Granularity) string {
	if b.key != "" {
		return b.key
	}
	return BucketKey(b.Start, granularity)
}

// BucketKey returns the key of the bucket containing t.
func BucketKey(t time.Time, granularity valueobject.Granularity) string {
	switch granularity {
	case valueobject.GranularityHour:
		return t.Format("2006-01-02T15")
	case valueobject.GranularityMonth:
		return t.Format("2006-01")
	default:
		return t.Format(entity.DateLayout)
	}
}

// BucketLabel generates the display label of a bucket.
// Formats:
// - Hour: "15:00"
// - Day: "Jan 02"
// - Month: "Jan 2025"
func BucketLabel(t time.Time, granularity valueobject.Granularity) string {
	switch granularity {
	case valueobject.GranularityHour:
		return t.Format("15:00")
	case valueobject.GranularityMonth:
		return t.Format("Jan 2006")
	default:
		return t.Format("Jan 02")
	}
}

// FrameWindow returns the [start, end) window of a time frame, anchored at now.
// endYesterday only affects the 7d frame.
func FrameWindow(frame valueobject.TimeFrame, now time.Time, endYesterday bool) (start, end time.Time) {
	today := entity.StartOfDay(now)
	tomorrow := today.AddDate(0, 0, 1)

	switch frame {
	case valueobject.TimeFrameDay:
		return today.AddDate(0, 0, -1), today
	case valueobject.TimeFrameWeek:
		last := today
		if endYesterday {
			last = today.AddDate(0, 0, -1)
		}
		return last.AddDate(0, 0, -6), last.AddDate(0, 0, 1)
	case valueobject.TimeFrameMonth:
		return today.AddDate(0, 0, -29), tomorrow
	case valueobject.TimeFrameHalfYear, valueobject.TimeFrameYear:
		firstOfMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return firstOfMonth.AddDate(0, -(frame.BucketCount() - 1), 0), tomorrow
	default:
		return today, tomorrow
	}
}

// GenerateBuckets generates the full ordered bucket list of a frame.
// Boundaries always derive from now, never from data, so the length is
// always the frame's bucket count.
func GenerateBuckets(frame valueobject.TimeFrame, now time.Time, endYesterday bool) []Bucket {
	start, _ := FrameWindow(frame, now, endYesterday)
	granularity := frame.Granularity()
	count := frame.BucketCount()
	if granularity == valueobject.GranularityHour {
		return hourBuckets(start, count)
	}

	buckets := make([]Bucket, 0, count)
	current := start
	for i := 0; i < count; i++ {
		next := advance(current, granularity)
		buckets = append(buckets, Bucket{
			Start: current,
			End:   next,
			Label: BucketLabel(current, granularity),
		})
		current = next
	}
	return buckets
}

// hourBuckets builds one bucket per wall-clock hour of day. On a spring-forward
// day the skipped hour is an empty bucket; on a fall-back day the repeated
// hour is a single two-hour bucket.
func hourBuckets(day time.Time, count int) []Bucket {
	y, m, d := day.Date()
	loc := day.Location()

	buckets := make([]Bucket, 0, count)
	for h := 0; h < count; h++ {
		buckets = append(buckets, Bucket{
			Start: time.Date(y, m, d, h, 0, 0, 0, loc),
			End:   time.Date(y, m, d, h+1, 0, 0, 0, loc),
			Label: fmt.Sprintf("%02d:00", h),
			key:   fmt.Sprintf("%sT%02d", day.Format(entity.DateLayout), h),
		})
	}
	return buckets
}

func advance(t time.Time, granularity valueobject.Granularity) time.Time {
	switch granularity {
	case valueobject.GranularityMonth:
		return t.AddDate(0, 1, 0)
	default:
		return t.AddDate(0, 0, 1)
	}
}

// daysOf lists the calendar days in [start, end).
func daysOf(start, end time.Time) []time.Time {
	days := make([]time.Time, 0)
	for d := entity.StartOfDay(start); d.Before(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
