package stats

import (
	"math"
	"slices"
)

// IntervalCluster groups interval positions judged to represent the same
// timing symbol. It is only mutated while GreedyClustering.Fit runs.
type IntervalCluster struct {
	Silence   bool    `json:"silence"`
	Members   []int   `json:"members"`   // member position averages, insertion order
	Positions []int   `json:"positions"` // member positions, insertion order
	Average   float64 `json:"average"`   // mean of Members
}

func (c *IntervalCluster) add(ai AggregatedInterval) {
	c.Members = append(c.Members, ai.Average)
	c.Positions = append(c.Positions, ai.Position)

	sum := 0
	for _, v := range c.Members {
		sum += v
	}
	c.Average = float64(sum) / float64(len(c.Members))
}

// Size returns the number of positions in the cluster
func (c *IntervalCluster) Size() int {
	return len(c.Positions)
}

// GreedyClustering merges interval positions into clusters in a single pass.
//
// Positions are visited in ascending order of their average (ties keep
// position order). Each position joins the first cluster, in creation order,
// that has the same parity class and whose running average is strictly closer
// than the threshold; otherwise it seeds a new cluster. This is first-fit, not
// best-fit: the result depends on creation order and must stay that way.
type GreedyClustering struct {
	threshold float64
}

// NewGreedyClustering creates a clusterer for the given distance threshold
func NewGreedyClustering(threshold float64) *GreedyClustering {
	return &GreedyClustering{threshold: threshold}
}

// Threshold returns the distance threshold used by Fit
func (g *GreedyClustering) Threshold() float64 {
	return g.threshold
}

// Fit clusters the intervals and returns the clusters in creation order
func (g *GreedyClustering) Fit(intervals []AggregatedInterval) []*IntervalCluster {
	sorted := slices.Clone(intervals)
	slices.SortStableFunc(sorted, func(a, b AggregatedInterval) int {
		if a.Average != b.Average {
			return a.Average - b.Average
		}
		return a.Position - b.Position
	})

	var clusters []*IntervalCluster
	for _, ai := range sorted {
		cluster := g.firstFit(clusters, ai)
		if cluster == nil {
			cluster = &IntervalCluster{Silence: ai.Silence}
			clusters = append(clusters, cluster)
		}
		cluster.add(ai)
	}

	return clusters
}

func (g *GreedyClustering) firstFit(clusters []*IntervalCluster, ai AggregatedInterval) *IntervalCluster {
	for _, c := range clusters {
		if c.Silence == ai.Silence && math.Abs(c.Average-float64(ai.Average)) < g.threshold {
			return c
		}
	}
	return nil
}

// Assignments maps every position in [0, m) to the index of the cluster that
// holds it, or -1 when no cluster does.
func Assignments(clusters []*IntervalCluster, m int) []int {
	labels := make([]int, m)
	for i := range labels {
		labels[i] = -1
	}
	for ci, c := range clusters {
		for _, pos := range c.Positions {
			if pos >= 0 && pos < m {
				labels[pos] = ci
			}
		}
	}
	return labels
}
