package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func interval(pos, average int) AggregatedInterval {
	return AggregatedInterval{Position: pos, Average: average, Silence: IsSilence(pos)}
}

func TestGreedyClusteringMergesByParity(t *testing.T) {
	intervals := []AggregatedInterval{
		interval(0, 101),
		interval(1, 49),
		interval(2, 100),
		interval(3, 49),
	}

	clusters := NewGreedyClustering(1.5).Fit(intervals)
	require.Len(t, clusters, 2)

	// lowest averages come first, so the silence cluster is created first
	assert.True(t, clusters[0].Silence)
	assert.Equal(t, []int{1, 3}, clusters[0].Positions)
	assert.Equal(t, []int{49, 49}, clusters[0].Members)
	assert.Equal(t, 49.0, clusters[0].Average)

	assert.False(t, clusters[1].Silence)
	assert.Equal(t, []int{2, 0}, clusters[1].Positions)
	assert.Equal(t, 100.5, clusters[1].Average)
}

func TestGreedyClusteringNeverMixesParity(t *testing.T) {
	intervals := []AggregatedInterval{interval(0, 560), interval(1, 560)}

	clusters := NewGreedyClustering(1000).Fit(intervals)
	require.Len(t, clusters, 2)
	assert.NotEqual(t, clusters[0].Silence, clusters[1].Silence)
}

func TestGreedyClusteringStrictThreshold(t *testing.T) {
	intervals := []AggregatedInterval{interval(0, 100), interval(2, 110)}

	assert.Len(t, NewGreedyClustering(10).Fit(intervals), 2, "distance equal to threshold must not merge")
	assert.Len(t, NewGreedyClustering(10.5).Fit(intervals), 1)
	assert.Equal(t, 10.5, NewGreedyClustering(10.5).Threshold())
}

func TestGreedyClusteringZeroThreshold(t *testing.T) {
	intervals := []AggregatedInterval{interval(0, 100), interval(2, 100)}

	clusters := NewGreedyClustering(0).Fit(intervals)
	assert.Len(t, clusters, 2)
}

func TestGreedyClusteringIsFirstFit(t *testing.T) {
	// 112 is compared against the running average of the first cluster
	// (104 after 108 joined), not against its seed
	intervals := []AggregatedInterval{
		interval(0, 100),
		interval(2, 108),
		interval(4, 112),
		interval(6, 125),
	}

	clusters := NewGreedyClustering(10).Fit(intervals)
	require.Len(t, clusters, 2)
	assert.Equal(t, []int{0, 2, 4}, clusters[0].Positions)
	assert.InDelta(t, 320.0/3.0, clusters[0].Average, 1e-9)
	assert.Equal(t, []int{6}, clusters[1].Positions)
}

func TestGreedyClusteringRunningAverageDrifts(t *testing.T) {
	// each member pulls the running average up, letting later positions join
	// that would be too far from the seed
	intervals := []AggregatedInterval{
		interval(0, 100),
		interval(2, 108),
		interval(4, 113),
		interval(6, 116),
	}

	clusters := NewGreedyClustering(10).Fit(intervals)
	require.Len(t, clusters, 1)
	assert.Equal(t, []int{0, 2, 4, 6}, clusters[0].Positions)
}

func TestGreedyClusteringTiesKeepPositionOrder(t *testing.T) {
	intervals := []AggregatedInterval{interval(4, 50), interval(0, 50), interval(2, 50)}

	clusters := NewGreedyClustering(0).Fit(intervals)
	require.Len(t, clusters, 3)
	assert.Equal(t, 0, clusters[0].Positions[0])
	assert.Equal(t, 2, clusters[1].Positions[0])
	assert.Equal(t, 4, clusters[2].Positions[0])
}

func TestGreedyClusteringDoesNotMutateInput(t *testing.T) {
	intervals := []AggregatedInterval{interval(0, 300), interval(1, 100), interval(2, 200)}
	original := append([]AggregatedInterval(nil), intervals...)

	NewGreedyClustering(5).Fit(intervals)
	assert.Equal(t, original, intervals)
}

func TestGreedyClusteringPartition(t *testing.T) {
	averages := []int{9000, 4500, 560, 560, 560, 1690, 580, 1700, 550, 560, 570, 1680, 560}
	intervals := make([]AggregatedInterval, len(averages))
	for i, avg := range averages {
		intervals[i] = interval(i, avg)
	}

	clusters := NewGreedyClustering(30).Fit(intervals)

	seen := make(map[int]int)
	for _, c := range clusters {
		assert.Equal(t, len(c.Members), c.Size())
		for _, pos := range c.Positions {
			seen[pos]++
		}
	}
	require.Len(t, seen, len(averages))
	for pos, count := range seen {
		assert.Equal(t, 1, count, "position %d", pos)
	}

	for pos, label := range Assignments(clusters, len(averages)) {
		assert.GreaterOrEqual(t, label, 0, "position %d unassigned", pos)
		assert.Equal(t, IsSilence(pos), clusters[label].Silence)
	}
}

func TestGreedyClusteringDeterministic(t *testing.T) {
	intervals := []AggregatedInterval{
		interval(0, 9000), interval(1, 4500), interval(2, 560), interval(3, 1690),
		interval(4, 565), interval(5, 560), interval(6, 555), interval(7, 1700),
	}

	first := NewGreedyClustering(20).Fit(intervals)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, NewGreedyClustering(20).Fit(intervals))
	}
}

func TestAssignmentsMarksMissingPositions(t *testing.T) {
	clusters := []*IntervalCluster{{Positions: []int{0, 2}}}
	assert.Equal(t, []int{0, -1, 0}, Assignments(clusters, 3))
}
