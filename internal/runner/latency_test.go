package runner

import (
	"testing"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeLatencyStats_Empty(t *testing.T) {
	s := ComputeLatencyStats(nil)
	assert.Zero(t, s.Min)
	assert.Zero(t, s.Max)
	assert.Zero(t, s.Mean)
	assert.Zero(t, s.Median)
	assert.Zero(t, s.SampleCount)
	assert.True(t, s.IsZero())
}

func TestComputeLatencyStats_SingleValue(t *testing.T) {
	s := ComputeLatencyStats([]time.Duration{10 * time.Millisecond})

	assert.Equal(t, 10*time.Millisecond, s.Min)
	assert.Equal(t, 10*time.Millisecond, s.Max)
	assert.Equal(t, 10*time.Millisecond, s.Mean)
	assert.Equal(t, 10*time.Millisecond, s.Median)
	assert.Equal(t, 1, s.SampleCount)
	assert.Zero(t, s.Stddev)
	assert.False(t, s.IsZero())
}

func TestComputeLatencyStats_Unsorted(t *testing.T) {
	durations := []time.Duration{
		50 * time.Millisecond,
		10 * time.Millisecond,
		30 * time.Millisecond,
		20 * time.Millisecond,
		40 * time.Millisecond,
	}
	s := ComputeLatencyStats(durations)

	assert.Equal(t, 10*time.Millisecond, s.Min)
	assert.Equal(t, 50*time.Millisecond, s.Max)
	assert.Equal(t, 30*time.Millisecond, s.Mean)
	assert.Equal(t, 30*time.Millisecond, s.Median)
	assert.Equal(t, 5, s.SampleCount)
}

func TestComputeLatencyStats_Percentiles(t *testing.T) {
	durations := make([]time.Duration, 100)
	for i := range durations {
		durations[i] = time.Duration(i+1) * time.Millisecond
	}
	s := ComputeLatencyStats(durations)

	assert.Equal(t, 1*time.Millisecond, s.Min)
	assert.Equal(t, 100*time.Millisecond, s.Max)
	assert.Equal(t, 100, s.SampleCount)

	assert.InDelta(t, float64(50*time.Millisecond), float64(s.P50()), float64(1*time.Millisecond))
	assert.InDelta(t, float64(90*time.Millisecond), float64(s.P90()), float64(1*time.Millisecond))
	assert.InDelta(t, float64(95*time.Millisecond), float64(s.P95()), float64(1*time.Millisecond))
	assert.InDelta(t, float64(99*time.Millisecond), float64(s.P99()), float64(1*time.Millisecond))
}

// Cross-checks the hand-rolled aggregates against the stats library.
// Percentile methods differ slightly, so those get a coarser delta.
func TestComputeLatencyStats_CrossCheck(t *testing.T) {
	durations := make([]time.Duration, 100)
	for i := range durations {
		durations[i] = time.Duration(i+1) * time.Millisecond
	}
	s := ComputeLatencyStats(durations)

	floats := lo.Map(durations, func(d time.Duration, _ int) float64 {
		return float64(d)
	})

	mean, err := stats.Mean(floats)
	require.NoError(t, err)
	assert.InDelta(t, mean, float64(s.Mean), float64(time.Microsecond))

	median, err := stats.Median(floats)
	require.NoError(t, err)
	assert.InDelta(t, median, float64(s.Median), float64(time.Microsecond))

	stddev, err := stats.StandardDeviationSample(floats)
	require.NoError(t, err)
	assert.InDelta(t, stddev, float64(s.Stddev), float64(time.Microsecond))

	for _, p := range []int{50, 90, 95, 99} {
		want, err := stats.Percentile(floats, float64(p))
		require.NoError(t, err)
		assert.InDelta(t, want, float64(s.Percentiles[p]), float64(time.Millisecond),
			"percentile %d", p)
	}
}

func TestComputeLatencyStats_Stddev(t *testing.T) {
	flat := ComputeLatencyStats([]time.Duration{
		100 * time.Millisecond,
		100 * time.Millisecond,
		100 * time.Millisecond,
	})
	assert.Zero(t, flat.Stddev)

	spread := ComputeLatencyStats([]time.Duration{
		10 * time.Millisecond,
		20 * time.Millisecond,
		30 * time.Millisecond,
	})
	assert.Greater(t, spread.Stddev, time.Duration(0))
}

func TestAggregateLatencyStats(t *testing.T) {
	first := ComputeLatencyStats([]time.Duration{10 * time.Millisecond, 20 * time.Millisecond})
	second := ComputeLatencyStats([]time.Duration{30 * time.Millisecond, 40 * time.Millisecond})

	agg := AggregateLatencyStats([]LatencyStats{first, second})

	assert.Equal(t, 10*time.Millisecond, agg.Min)
	assert.Equal(t, 40*time.Millisecond, agg.Max)
	assert.Equal(t, 25*time.Millisecond, agg.Mean)
	assert.Equal(t, 4, agg.SampleCount)
}

func TestAggregateLatencyStats_Empty(t *testing.T) {
	agg := AggregateLatencyStats(nil)
	assert.True(t, agg.IsZero())
}

func TestPercentile_EdgeCases(t *testing.T) {
	single := []time.Duration{10 * time.Millisecond}
	assert.Equal(t, 10*time.Millisecond, percentile(single, 0))
	assert.Equal(t, 10*time.Millisecond, percentile(single, 50))
	assert.Equal(t, 10*time.Millisecond, percentile(single, 100))

	assert.Zero(t, percentile(nil, 50))
}
