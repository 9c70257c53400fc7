// Package valueobject contains immutable value objects used across the domain layer.
package valueobject

// TimeFrame is the dashboard time window selector.
type TimeFrame string

const (
	TimeFrameDay      TimeFrame = "1d"
	TimeFrameWeek     TimeFrame = "7d"
	TimeFrameMonth    TimeFrame = "1m"
	TimeFrameHalfYear TimeFrame = "6m"
	TimeFrameYear     TimeFrame = "1yr"
)

// Granularity is the width of a single chart bucket.
type Granularity string

const (
	GranularityHour  Granularity = "hour"
	GranularityDay   Granularity = "day"
	GranularityMonth Granularity = "month"
)

// frameSpec describes the fixed bucket layout of a time frame.
type frameSpec struct {
	buckets     int
	granularity Granularity
}

var frameSpecs = map[TimeFrame]frameSpec{
	TimeFrameDay:      {buckets: 24, granularity: GranularityHour},
	TimeFrameWeek:     {buckets: 7, granularity: GranularityDay},
	TimeFrameMonth:    {buckets: 30, granularity: GranularityDay},
	TimeFrameHalfYear: {buckets: 6, granularity: GranularityMonth},
	TimeFrameYear:     {buckets: 12, granularity: GranularityMonth},
}

// AllTimeFrames lists the supported frames in display order.
var AllTimeFrames = []TimeFrame{
	TimeFrameDay,
	TimeFrameWeek,
	TimeFrameMonth,
	TimeFrameHalfYear,
	TimeFrameYear,
}

// IsValid reports whether the frame is one of the supported selectors.
func (f TimeFrame) IsValid() bool {
	_, ok := frameSpecs[f]
	return ok
}

// BucketCount returns the fixed number of buckets for the frame.
func (f TimeFrame) BucketCount() int {
	return frameSpecs[f].buckets
}

// Granularity returns the bucket width for the frame.
func (f TimeFrame) Granularity() Granularity {
	return frameSpecs[f].granularity
}

// IsMonthly reports whether the frame is served from the trailing 12-month aggregation.
func (f TimeFrame) IsMonthly() bool {
	return f.Granularity() == GranularityMonth
}
