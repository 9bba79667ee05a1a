package alphabet

import (
	"fmt"

	"github.com/RyanBlaney/sonido-ir/algorithms/stats"
)

// CheckLengths is the first consistency checkpoint: every reading must have
// the same number of intervals before any statistics are computed.
func CheckLengths(readings [][]int) error {
	return stats.CheckLengths(readings)
}

// CheckEncodings is the second checkpoint: all readings must normalize to the
// same string. It returns that canonical string.
func CheckEncodings(encoded []string) (string, error) {
	if len(encoded) == 0 {
		return "", fmt.Errorf("no encoded readings to compare")
	}

	canonical := encoded[0]
	for i, s := range encoded[1:] {
		if s != canonical {
			return "", &InconsistentEncodingError{
				Readings: len(encoded),
				Reading:  i + 1,
				Expected: canonical,
				Got:      s,
			}
		}
	}
	return canonical, nil
}
