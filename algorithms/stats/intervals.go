package stats

import (
	"errors"
	"fmt"
	"math"

	"github.com/RyanBlaney/sonido-ir/algorithms/common"
	"gonum.org/v1/gonum/floats"
)

var (
	// ErrInconsistentLength is returned when readings have a different number of intervals
	ErrInconsistentLength = errors.New("readings have a different number of intervals")

	// ErrInsufficientSamples is returned when fewer than two readings are supplied,
	// which leaves the sample standard deviation undefined
	ErrInsufficientSamples = errors.New("at least two readings are required")

	// ErrEmptyReadings is returned when the readings hold no intervals at all
	ErrEmptyReadings = errors.New("readings contain no intervals")
)

// LengthMismatchError reports the first reading whose length differs from reading 0
type LengthMismatchError struct {
	Reading  int
	Expected int
	Got      int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("%v: reading %d has %d intervals, reading 0 has %d",
		ErrInconsistentLength, e.Reading, e.Got, e.Expected)
}

func (e *LengthMismatchError) Unwrap() error { return ErrInconsistentLength }

// AggregatedInterval holds the statistics of one interval position across all readings
type AggregatedInterval struct {
	Position          int     `json:"position" yaml:"position"`
	Average           int     `json:"average" yaml:"average"`                       // truncating integer mean (µs)
	StandardDeviation float64 `json:"standard_deviation" yaml:"standard_deviation"` // sample, divisor N-1
	MaxDistance       int     `json:"max_distance" yaml:"max_distance"`             // max |v - Average|
	Silence           bool    `json:"silence" yaml:"silence"`
}

// IsSilence reports the parity class of an interval position. Captures start
// with a pulse, so even positions are noise and odd positions are silence.
func IsSilence(position int) bool {
	return position%2 == 1
}

// CheckLengths verifies that every reading has the same number of intervals
func CheckLengths(readings [][]int) error {
	if len(readings) == 0 {
		return nil
	}
	expected := len(readings[0])
	for i, r := range readings[1:] {
		if len(r) != expected {
			return &LengthMismatchError{Reading: i + 1, Expected: expected, Got: len(r)}
		}
	}
	return nil
}

// AggregateIntervals computes per-position statistics across all readings.
//
// The length check runs before any statistics are computed. Averages use
// truncating integer division so that they stay on the integer timing grid;
// the standard deviation and max distance are measured about that truncated
// average.
func AggregateIntervals(readings [][]int) ([]AggregatedInterval, error) {
	if err := CheckLengths(readings); err != nil {
		return nil, err
	}
	if len(readings) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientSamples, len(readings))
	}

	n := len(readings)
	m := len(readings[0])
	if m == 0 {
		return nil, ErrEmptyReadings
	}
	intervals := make([]AggregatedInterval, m)
	sample := make([]int, n)

	for pos := 0; pos < m; pos++ {
		for r, reading := range readings {
			sample[r] = reading[pos]
		}

		average := common.TruncatedMean(sample)
		deviations := common.Deviations(sample, average)

		maxDistance := 0
		for _, v := range sample {
			if d := common.AbsInt(v - average); d > maxDistance {
				maxDistance = d
			}
		}

		intervals[pos] = AggregatedInterval{
			Position:          pos,
			Average:           average,
			StandardDeviation: math.Sqrt(floats.Dot(deviations, deviations) / float64(n-1)),
			MaxDistance:       maxDistance,
			Silence:           IsSilence(pos),
		}
	}

	return intervals, nil
}

// IntervalSummary describes the spread of a capture set
type IntervalSummary struct {
	Intervals         int     `json:"intervals" yaml:"intervals"`
	MeanStdDev        float64 `json:"mean_std_dev" yaml:"mean_std_dev"`
	MaxStdDev         float64 `json:"max_std_dev" yaml:"max_std_dev"`
	MedianMaxDistance float64 `json:"median_max_distance" yaml:"median_max_distance"`
	MaxDistance       int     `json:"max_distance" yaml:"max_distance"`
}

// Summarize reduces aggregated intervals to a few spread figures
func Summarize(intervals []AggregatedInterval) IntervalSummary {
	stdDevs := make([]float64, len(intervals))
	distances := make([]float64, len(intervals))
	for i, ai := range intervals {
		stdDevs[i] = ai.StandardDeviation
		distances[i] = float64(ai.MaxDistance)
	}

	return IntervalSummary{
		Intervals:         len(intervals),
		MeanStdDev:        common.Mean(stdDevs),
		MaxStdDev:         common.Max(stdDevs),
		MedianMaxDistance: common.Percentile(distances, 0.5),
		MaxDistance:       int(common.Max(distances)),
	}
}
