package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfitMargin(t *testing.T) {
	t.Run("revenue and cost present", func(t *testing.T) {
		margin := ProfitMargin(1000, 700)
		require.NotNil(t, margin)
		assert.Equal(t, 30.0, *margin)
	})

	t.Run("rounds to two decimals", func(t *testing.T) {
		margin := ProfitMargin(300, 100)
		require.NotNil(t, margin)
		assert.Equal(t, 66.67, *margin)
	})

	t.Run("negative margin when cost exceeds revenue", func(t *testing.T) {
		margin := ProfitMargin(100, 150)
		require.NotNil(t, margin)
		assert.Equal(t, -50.0, *margin)
	})

	t.Run("zero cost is insufficient data", func(t *testing.T) {
		assert.Nil(t, ProfitMargin(1000, 0))
	})

	t.Run("zero revenue is insufficient data", func(t *testing.T) {
		assert.Nil(t, ProfitMargin(0, 700))
	})
}

func TestTimeFrame(t *testing.T) {
	expected := map[TimeFrame]int{
		TimeFrameDay:      24,
		TimeFrameWeek:     7,
		TimeFrameMonth:    30,
		TimeFrameHalfYear: 6,
		TimeFrameYear:     12,
	}
	for frame, count := range expected {
		assert.True(t, frame.IsValid())
		assert.Equal(t, count, frame.BucketCount(), string(frame))
	}

	assert.False(t, TimeFrame("2w").IsValid())
	assert.True(t, TimeFrameHalfYear.IsMonthly())
	assert.False(t, TimeFrameMonth.IsMonthly())
	assert.Equal(t, GranularityHour, TimeFrameDay.Granularity())
}
