package alphabet

import (
	"math"
	"slices"
	"unicode"

	"github.com/RyanBlaney/sonido-ir/algorithms/stats"
)

// Letters is the symbol alphabet, assigned in cluster creation order
const Letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Symbol is a frozen cluster with its letter
type Symbol struct {
	Letter    rune    `json:"letter" yaml:"letter"`
	Average   float64 `json:"average" yaml:"average"`
	Silence   bool    `json:"silence" yaml:"silence"`
	Positions []int   `json:"positions" yaml:"positions"`
}

// RoundedAverage returns the symbol's average rounded to whole microseconds
func (s Symbol) RoundedAverage() int {
	return int(math.Round(s.Average))
}

// Kind returns "silence" or "noise"
func (s Symbol) Kind() string {
	if s.Silence {
		return "silence"
	}
	return "noise"
}

// Alphabet is the ordered set of symbols learned from a capture set, plus the
// threshold used to match raw intervals against them.
type Alphabet struct {
	symbols   []Symbol
	threshold float64
}

// Label assigns letters to clusters by creation order: the k-th cluster gets
// the k-th letter, lower-cased for silence. The letter is therefore a
// function of clustering order, not of the cluster's final average.
func Label(clusters []*stats.IntervalCluster, threshold float64) (*Alphabet, error) {
	letters := []rune(Letters)
	if len(clusters) > len(letters) {
		return nil, &AlphabetExhaustedError{Clusters: len(clusters), Letters: len(letters)}
	}

	symbols := make([]Symbol, len(clusters))
	for i, c := range clusters {
		letter := letters[i]
		if c.Silence {
			letter = unicode.ToLower(letter)
		}
		symbols[i] = Symbol{
			Letter:    letter,
			Average:   c.Average,
			Silence:   c.Silence,
			Positions: slices.Clone(c.Positions),
		}
	}

	return &Alphabet{symbols: symbols, threshold: threshold}, nil
}

// Symbols returns a copy of the symbols in creation order
func (a *Alphabet) Symbols() []Symbol {
	return slices.Clone(a.symbols)
}

// Threshold returns the matching distance
func (a *Alphabet) Threshold() float64 {
	return a.threshold
}

// Len returns the number of symbols
func (a *Alphabet) Len() int {
	return len(a.symbols)
}
