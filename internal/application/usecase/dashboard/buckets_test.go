package dashboard

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menu-pricing/backend/internal/domain/valueobject"
)

func TestGenerateBuckets_CountsAreFixed(t *testing.T) {
	nows := []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 12, 0, 0, 0, time.UTC),
	}

	for _, now := range nows {
		for _, frame := range valueobject.AllTimeFrames {
			buckets := GenerateBuckets(frame, now, false)
			assert.Len(t, buckets, frame.BucketCount(), "%s at %s", frame, now)
		}
		assert.Len(t, GenerateBuckets(valueobject.TimeFrameWeek, now, true), 7)
	}
}

func TestGenerateBuckets_Windows(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

	t.Run("1d covers yesterday by hour", func(t *testing.T) {
		buckets := GenerateBuckets(valueobject.TimeFrameDay, now, false)

		assert.Equal(t, time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), buckets[0].Start)
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), buckets[23].End)
		assert.Equal(t, "00:00", buckets[0].Label)
		assert.Equal(t, "23:00", buckets[23].Label)
	})

	t.Run("7d ends today", func(t *testing.T) {
		buckets := GenerateBuckets(valueobject.TimeFrameWeek, now, false)

		assert.Equal(t, "2024-03-09", buckets[0].Key(valueobject.GranularityDay))
		assert.Equal(t, "2024-03-15", buckets[6].Key(valueobject.GranularityDay))
	})

	t.Run("7d ends yesterday", func(t *testing.T) {
		buckets := GenerateBuckets(valueobject.TimeFrameWeek, now, true)

		assert.Equal(t, "2024-03-08", buckets[0].Key(valueobject.GranularityDay))
		assert.Equal(t, "2024-03-14", buckets[6].Key(valueobject.GranularityDay))
	})

	t.Run("1m is 30 days ending today", func(t *testing.T) {
		buckets := GenerateBuckets(valueobject.TimeFrameMonth, now, false)

		assert.Equal(t, "2024-02-15", buckets[0].Key(valueobject.GranularityDay))
		assert.Equal(t, "2024-03-15", buckets[29].Key(valueobject.GranularityDay))
	})

	t.Run("1yr includes the current month", func(t *testing.T) {
		buckets := GenerateBuckets(valueobject.TimeFrameYear, now, false)

		assert.Equal(t, "2023-04", buckets[0].Key(valueobject.GranularityMonth))
		assert.Equal(t, "2024-03", buckets[11].Key(valueobject.GranularityMonth))
		assert.Equal(t, "Mar 2024", buckets[11].Label)
	})

	t.Run("6m is the tail of 1yr", func(t *testing.T) {
		year := GenerateBuckets(valueobject.TimeFrameYear, now, false)
		half := GenerateBuckets(valueobject.TimeFrameHalfYear, now, false)

		require.Len(t, half, 6)
		assert.Equal(t, year[6:], half)
	})
}

func TestGenerateBuckets_DaylightSaving(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	labels := func(buckets []Bucket) []string {
		out := make([]string, 0, len(buckets))
		for _, b := range buckets {
			out = append(out, b.Label)
		}
		return out
	}
	want := make([]string, 0, 24)
	for h := 0; h < 24; h++ {
		want = append(want, time.Date(2024, 1, 1, h, 0, 0, 0, time.UTC).Format("15:00"))
	}

	t.Run("spring forward stays on yesterday", func(t *testing.T) {
		buckets := GenerateBuckets(valueobject.TimeFrameDay, time.Date(2024, 3, 11, 12, 0, 0, 0, ny), false)

		require.Len(t, buckets, 24)
		assert.Equal(t, want, labels(buckets))
		assert.Equal(t, time.Date(2024, 3, 10, 23, 0, 0, 0, ny), buckets[23].Start)
		assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, ny), buckets[23].End)
		assert.Equal(t, "2024-03-10T02", buckets[2].Key(valueobject.GranularityHour))
		assert.Equal(t, "2024-03-10T03", buckets[3].Key(valueobject.GranularityHour))
	})

	t.Run("fall back keeps one bucket per clock hour", func(t *testing.T) {
		buckets := GenerateBuckets(valueobject.TimeFrameDay, time.Date(2024, 11, 4, 12, 0, 0, 0, ny), false)

		require.Len(t, buckets, 24)
		assert.Equal(t, want, labels(buckets))
		assert.Equal(t, 2*time.Hour, buckets[1].End.Sub(buckets[1].Start))
		assert.Equal(t, "2024-11-03T23", buckets[23].Key(valueobject.GranularityHour))
		assert.Equal(t, time.Date(2024, 11, 4, 0, 0, 0, 0, ny), buckets[23].End)
	})
}
