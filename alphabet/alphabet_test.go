package alphabet

import (
	"errors"
	"os"
	"testing"

	"github.com/RyanBlaney/sonido-ir/algorithms/stats"
	"github.com/RyanBlaney/sonido-ir/alphabet/config"
	"github.com/RyanBlaney/sonido-ir/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logging.SetGlobalLogger(&logging.NoOpLogger{})
	os.Exit(m.Run())
}

func TestLearnTwoReadings(t *testing.T) {
	readings := [][]int{
		{100, 50, 100, 50},
		{102, 49, 101, 48},
	}

	result, err := NewLearner(nil).Learn(readings)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Readings)
	assert.Equal(t, 1.5, result.Threshold)
	assert.Equal(t, "BaBa", result.Canonical)
	assert.Equal(t, []string{"BaBa", "BaBa"}, result.Encoded)

	symbols := result.Alphabet.Symbols()
	require.Len(t, symbols, 2)
	assert.Equal(t, 'a', symbols[0].Letter)
	assert.Equal(t, []int{1, 3}, symbols[0].Positions)
	assert.Equal(t, 'B', symbols[1].Letter)
	assert.Equal(t, []int{2, 0}, symbols[1].Positions)
}

func TestLearnLengthMismatch(t *testing.T) {
	result, err := NewLearner(nil).Learn([][]int{{100, 50}, {100, 50, 100}})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, stats.ErrInconsistentLength)
}

func TestLearnSingleReading(t *testing.T) {
	_, err := NewLearner(nil).Learn([][]int{{100, 50, 100}})
	assert.ErrorIs(t, err, stats.ErrInsufficientSamples)
}

func TestLearnEmptyReadings(t *testing.T) {
	result, err := NewLearner(nil).Learn([][]int{{}, {}})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, stats.ErrEmptyReadings)
}

func TestLearnDivergentEncoding(t *testing.T) {
	// position 0 straddles the first noise cluster: 100 falls inside it, 121
	// only reaches the second one
	readings := [][]int{
		{100, 1000, 100, 1000, 125, 1000, 90, 1000},
		{121, 1000, 100, 1000, 125, 1000, 90, 1000},
	}

	result, err := NewLearner(nil).Learn(readings)
	assert.Nil(t, result)
	require.ErrorIs(t, err, ErrInconsistentEncoding)

	var inconsistent *InconsistentEncodingError
	require.True(t, errors.As(err, &inconsistent))
	assert.Equal(t, "AcAcBcAc", inconsistent.Expected)
	assert.Equal(t, "BcAcBcAc", inconsistent.Got)
	assert.Equal(t, 1, inconsistent.Reading)
}

func TestLearnNoMatchingCluster(t *testing.T) {
	// the noise cluster's running average drifts up to 107 while reading 0
	// holds 95 at position 0, beyond the 7.5 threshold
	readings := [][]int{
		{95, 500, 106, 500, 110, 500, 112, 500},
		{105, 500, 106, 500, 110, 500, 112, 500},
	}

	_, err := NewLearner(nil).Learn(readings)
	require.ErrorIs(t, err, ErrNoMatchingCluster)

	var noMatch *NoMatchingClusterError
	require.True(t, errors.As(err, &noMatch))
	assert.Equal(t, 0, noMatch.Reading)
	assert.Equal(t, 0, noMatch.Position)
	assert.Equal(t, 95, noMatch.Value)
}

func TestLearnAlphabetExhausted(t *testing.T) {
	reading := make([]int, 27)
	for i := range reading {
		reading[i] = 1000 * (i + 1)
	}

	_, err := NewLearner(nil).Learn([][]int{reading, reading})
	require.ErrorIs(t, err, ErrAlphabetExhausted)

	var exhausted *AlphabetExhaustedError
	require.True(t, errors.As(err, &exhausted))
	assert.Equal(t, 27, exhausted.Clusters)
}

func TestLearnExactMatchWithZeroThreshold(t *testing.T) {
	reading := make([]int, 26)
	for i := range reading {
		reading[i] = 1000 * (i + 1)
	}

	result, err := NewLearner(nil).Learn([][]int{reading, reading, reading})
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Threshold)
	assert.Equal(t, "AbCdEfGhIjKlMnOpQrStUvWxYz", result.Canonical)
}

// necFrame builds a header, eight data bits and a stop pulse
func necFrame(bits string, jitter int) []int {
	frame := []int{9000 + jitter, 4500 + jitter}
	for _, b := range bits {
		frame = append(frame, 560+jitter)
		if b == '1' {
			frame = append(frame, 1690+jitter)
		} else {
			frame = append(frame, 560+jitter)
		}
	}
	return append(frame, 560+jitter)
}

func TestLearnRoundTrip(t *testing.T) {
	jitters := []int{-6, -3, 0, 2, 5, 7, -1, 4, -4, 3}
	readings := make([][]int, len(jitters))
	for i, j := range jitters {
		readings[i] = necFrame("10110010", j)
	}

	result, err := NewLearner(nil).Learn(readings)
	require.NoError(t, err)

	assert.Equal(t, 10.5, result.Threshold)
	assert.Equal(t, "EdAcAbAcAcAbAbAcAbA", result.Canonical)
	for _, encoded := range result.Encoded {
		assert.Equal(t, result.Canonical, encoded)
	}

	kinds := map[rune]string{}
	for _, s := range result.Alphabet.Symbols() {
		kinds[s.Letter] = s.Kind()
	}
	assert.Equal(t, map[rune]string{
		'A': "noise", 'b': "silence", 'c': "silence", 'd': "silence", 'E': "noise",
	}, kinds)
}

func TestLearnDeterministic(t *testing.T) {
	readings := [][]int{
		necFrame("01100111", 3),
		necFrame("01100111", -2),
		necFrame("01100111", 0),
	}

	first, err := NewLearner(nil).Learn(readings)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := NewLearner(nil).Learn(readings)
		require.NoError(t, err)
		assert.Equal(t, first.Canonical, again.Canonical)
		assert.Equal(t, first.Alphabet.Symbols(), again.Alphabet.Symbols())
		assert.Equal(t, first.Intervals, again.Intervals)
	}
}

func TestLearnCustomScale(t *testing.T) {
	readings := [][]int{
		{100, 50, 100, 50},
		{102, 49, 101, 48},
	}

	result, err := NewLearner(&config.LearnerConfig{ThresholdScale: 3}).Learn(readings)
	require.NoError(t, err)
	assert.Equal(t, 3.0, result.Threshold)

	_, err = NewLearner(&config.LearnerConfig{ThresholdScale: -1}).Learn(readings)
	assert.Error(t, err)
}

func TestInspect(t *testing.T) {
	intervals, threshold, err := NewLearner(nil).Inspect([][]int{{100, 50}, {104, 50}})
	require.NoError(t, err)
	require.Len(t, intervals, 2)
	assert.Equal(t, 102, intervals[0].Average)
	assert.Equal(t, 3.0, threshold)
}
