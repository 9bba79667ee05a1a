package common

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Integer helpers for microsecond timing data. Durations arrive as integer
// counts, so means over them truncate the same way the capture grid does.

// TruncatedMean returns sum(data)/len(data) using integer division, which
// truncates toward zero. Returns 0 for empty input.
func TruncatedMean(data []int) int {
	if len(data) == 0 {
		return 0
	}
	sum := 0
	for _, v := range data {
		sum += v
	}
	return sum / len(data)
}

// AbsInt returns the absolute value of v
func AbsInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Deviations returns v - center for every value, as float64
func Deviations(data []int, center int) []float64 {
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = float64(v - center)
	}
	return out
}

// Mean calculates the arithmetic mean of a slice using gonum
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return stat.Mean(data, nil)
}

// Max returns the largest value, or 0 for empty input
func Max(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return floats.Max(data)
}

// Percentile calculates the p-th percentile (p between 0 and 1)
func Percentile(data []float64, p float64) float64 {
	if len(data) == 0 || p < 0 || p > 1 {
		return 0.0
	}

	// Make a copy and sort
	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	return stat.Quantile(p, stat.Empirical, sorted, nil)
}
