package alphabet

import (
	"math"
	"strings"

	"github.com/RyanBlaney/sonido-ir/algorithms/stats"
)

// Match returns the first symbol, in creation order, with the parity class
// of position whose average is within the threshold of value. The comparison
// is inclusive, unlike the strict comparison used while clustering.
func (a *Alphabet) Match(position, value int) (Symbol, bool) {
	silence := stats.IsSilence(position)
	for _, s := range a.symbols {
		if s.Silence == silence && math.Abs(float64(value)-s.Average) <= a.threshold {
			return s, true
		}
	}
	return Symbol{}, false
}

// Encode maps every interval of a reading to its symbol
func (a *Alphabet) Encode(reading []int) (string, error) {
	return a.encode(0, reading)
}

// EncodeAll encodes every reading, stopping at the first interval that
// matches no symbol.
func (a *Alphabet) EncodeAll(readings [][]int) ([]string, error) {
	encoded := make([]string, len(readings))
	for i, reading := range readings {
		s, err := a.encode(i, reading)
		if err != nil {
			return nil, err
		}
		encoded[i] = s
	}
	return encoded, nil
}

func (a *Alphabet) encode(index int, reading []int) (string, error) {
	var b strings.Builder
	b.Grow(len(reading))

	for pos, value := range reading {
		s, ok := a.Match(pos, value)
		if !ok {
			return "", &NoMatchingClusterError{
				Reading:  index,
				Position: pos,
				Value:    value,
				Silence:  stats.IsSilence(pos),
			}
		}
		b.WriteRune(s.Letter)
	}

	return b.String(), nil
}
