package stats

// DefaultThresholdScale is the factor applied to the largest per-position
// deviation to obtain the clustering distance.
const DefaultThresholdScale = 1.5

// NormalizingThreshold returns scale * max(MaxDistance). A zero threshold is
// legal and forces exact-match clustering.
func NormalizingThreshold(intervals []AggregatedInterval, scale float64) float64 {
	maxDistance := 0
	for _, ai := range intervals {
		if ai.MaxDistance > maxDistance {
			maxDistance = ai.MaxDistance
		}
	}
	return float64(maxDistance) * scale
}
