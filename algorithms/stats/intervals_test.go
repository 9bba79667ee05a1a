package stats

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateIntervals(t *testing.T) {
	readings := [][]int{
		{100, 50, 100, 50},
		{102, 49, 101, 48},
	}

	intervals, err := AggregateIntervals(readings)
	require.NoError(t, err)
	require.Len(t, intervals, 4)

	expected := []AggregatedInterval{
		{Position: 0, Average: 101, StandardDeviation: math.Sqrt(2), MaxDistance: 1, Silence: false},
		{Position: 1, Average: 49, StandardDeviation: 1, MaxDistance: 1, Silence: true},
		{Position: 2, Average: 100, StandardDeviation: 1, MaxDistance: 1, Silence: false},
		{Position: 3, Average: 49, StandardDeviation: math.Sqrt(2), MaxDistance: 1, Silence: true},
	}

	for i, want := range expected {
		got := intervals[i]
		assert.Equal(t, want.Position, got.Position, "position %d", i)
		assert.Equal(t, want.Average, got.Average, "average %d", i)
		assert.Equal(t, want.MaxDistance, got.MaxDistance, "max distance %d", i)
		assert.Equal(t, want.Silence, got.Silence, "silence %d", i)
		assert.InDelta(t, want.StandardDeviation, got.StandardDeviation, 1e-9, "std dev %d", i)
	}
}

func TestAggregateIntervalsTruncatesAverage(t *testing.T) {
	intervals, err := AggregateIntervals([][]int{{9001}, {9002}, {9002}})
	require.NoError(t, err)
	assert.Equal(t, 9001, intervals[0].Average)
	assert.Equal(t, 1, intervals[0].MaxDistance)
}

func TestAggregateIntervalsLengthMismatch(t *testing.T) {
	_, err := AggregateIntervals([][]int{{100, 50}, {100, 50, 100}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInconsistentLength))

	var mismatch *LengthMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, 1, mismatch.Reading)
	assert.Equal(t, 2, mismatch.Expected)
	assert.Equal(t, 3, mismatch.Got)
}

func TestAggregateIntervalsLengthCheckedFirst(t *testing.T) {
	// one reading would also be too few; the length error must win
	_, err := AggregateIntervals([][]int{{1}, {1, 2}})
	assert.ErrorIs(t, err, ErrInconsistentLength)
}

func TestAggregateIntervalsInsufficientSamples(t *testing.T) {
	tests := []struct {
		name     string
		readings [][]int
	}{
		{"none", nil},
		{"single", [][]int{{100, 50, 100}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intervals, err := AggregateIntervals(tt.readings)
			assert.ErrorIs(t, err, ErrInsufficientSamples)
			assert.Nil(t, intervals)
		})
	}
}

func TestAggregateIntervalsEmptyReadings(t *testing.T) {
	intervals, err := AggregateIntervals([][]int{{}, {}})
	assert.ErrorIs(t, err, ErrEmptyReadings)
	assert.Nil(t, intervals)
}

func TestIsSilence(t *testing.T) {
	assert.False(t, IsSilence(0))
	for pos := 0; pos < 100; pos++ {
		assert.Equal(t, pos%2 == 1, IsSilence(pos))
	}
}

func TestParityOfAggregatedIntervals(t *testing.T) {
	reading := make([]int, 67)
	for i := range reading {
		reading[i] = 560 + i
	}
	intervals, err := AggregateIntervals([][]int{reading, reading})
	require.NoError(t, err)

	for i, ai := range intervals {
		assert.Equal(t, i%2 == 1, ai.Silence)
	}
}

func TestNormalizingThreshold(t *testing.T) {
	intervals := []AggregatedInterval{{MaxDistance: 3}, {MaxDistance: 10}, {MaxDistance: 7}}
	assert.Equal(t, 15.0, NormalizingThreshold(intervals, DefaultThresholdScale))
	assert.Equal(t, 0.0, NormalizingThreshold([]AggregatedInterval{{MaxDistance: 0}}, DefaultThresholdScale))
	assert.Equal(t, 0.0, NormalizingThreshold(nil, DefaultThresholdScale))
}

func TestSummarize(t *testing.T) {
	intervals := []AggregatedInterval{
		{StandardDeviation: 1, MaxDistance: 1},
		{StandardDeviation: 3, MaxDistance: 4},
		{StandardDeviation: 2, MaxDistance: 2},
	}

	summary := Summarize(intervals)
	assert.Equal(t, 3, summary.Intervals)
	assert.InDelta(t, 2.0, summary.MeanStdDev, 1e-9)
	assert.Equal(t, 3.0, summary.MaxStdDev)
	assert.Equal(t, 2.0, summary.MedianMaxDistance)
	assert.Equal(t, 4, summary.MaxDistance)
}
