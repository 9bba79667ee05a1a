package alphabet

import (
	"fmt"

	"github.com/RyanBlaney/sonido-ir/algorithms/stats"
	"github.com/RyanBlaney/sonido-ir/alphabet/config"
	"github.com/RyanBlaney/sonido-ir/logging"
)

// Result is the outcome of a successful learning run
type Result struct {
	Readings  int                        `json:"readings"`
	Intervals []stats.AggregatedInterval `json:"intervals"`
	Threshold float64                    `json:"threshold"`
	Alphabet  *Alphabet                  `json:"-"`
	Encoded   []string                   `json:"encoded"`
	Canonical string                     `json:"canonical"`
}

// Learner infers a symbol alphabet from repeated captures of the same button
// and checks that every capture normalizes to the same string.
type Learner struct {
	config *config.LearnerConfig
	logger logging.Logger
}

// NewLearner creates a learner; a nil config uses the defaults
func NewLearner(cfg *config.LearnerConfig) *Learner {
	if cfg == nil {
		cfg = config.DefaultLearnerConfig()
	}

	return &Learner{
		config: cfg,
		logger: logging.WithFields(logging.Fields{
			"component": "alphabet_learner",
		}),
	}
}

// Inspect runs the statistics stage only and returns the per-position
// statistics with the threshold they imply.
func (l *Learner) Inspect(readings [][]int) ([]stats.AggregatedInterval, float64, error) {
	if err := CheckLengths(readings); err != nil {
		return nil, 0, err
	}

	intervals, err := stats.AggregateIntervals(readings)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to aggregate intervals: %w", err)
	}

	return intervals, stats.NormalizingThreshold(intervals, l.config.ThresholdScale), nil
}

// Learn runs the full pipeline. Any failure is terminal and no partial
// result is returned.
func (l *Learner) Learn(readings [][]int) (*Result, error) {
	if err := l.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid learner config: %w", err)
	}

	l.logger.Debug("Averaging readings", logging.Fields{
		"readings": len(readings),
	})

	intervals, threshold, err := l.Inspect(readings)
	if err != nil {
		return nil, err
	}

	clusterer := stats.NewGreedyClustering(threshold)
	clusters := clusterer.Fit(intervals)
	l.logger.Debug("Clustered interval positions", logging.Fields{
		"intervals": len(intervals),
		"clusters":  len(clusters),
		"threshold": clusterer.Threshold(),
	})

	alphabet, err := Label(clusters, clusterer.Threshold())
	if err != nil {
		return nil, err
	}

	encoded, err := alphabet.EncodeAll(readings)
	if err != nil {
		return nil, err
	}

	canonical, err := CheckEncodings(encoded)
	if err != nil {
		return nil, err
	}

	l.logger.Info("All readings match the same normalized string", logging.Fields{
		"readings": len(readings),
		"symbols":  alphabet.Len(),
		"string":   canonical,
	})

	return &Result{
		Readings:  len(readings),
		Intervals: intervals,
		Threshold: threshold,
		Alphabet:  alphabet,
		Encoded:   encoded,
		Canonical: canonical,
	}, nil
}
