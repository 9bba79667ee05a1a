package alphabet

import (
	"errors"
	"fmt"
)

var (
	// ErrAlphabetExhausted is returned when clustering yields more symbols than letters
	ErrAlphabetExhausted = errors.New("too many clusters for a single-letter alphabet")

	// ErrNoMatchingCluster is returned when a raw interval is too far from every learned symbol
	ErrNoMatchingCluster = errors.New("interval matches no learned symbol")

	// ErrInconsistentEncoding is returned when readings decode to different symbol strings
	ErrInconsistentEncoding = errors.New("readings normalize to different strings")
)

// AlphabetExhaustedError carries the number of clusters that had to be labelled
type AlphabetExhaustedError struct {
	Clusters int
	Letters  int
}

func (e *AlphabetExhaustedError) Error() string {
	return fmt.Sprintf("%v: %d clusters, %d letters available", ErrAlphabetExhausted, e.Clusters, e.Letters)
}

func (e *AlphabetExhaustedError) Unwrap() error { return ErrAlphabetExhausted }

// NoMatchingClusterError identifies the interval that could not be encoded
type NoMatchingClusterError struct {
	Reading  int
	Position int
	Value    int
	Silence  bool
}

func (e *NoMatchingClusterError) Error() string {
	kind := "noise"
	if e.Silence {
		kind = "silence"
	}
	return fmt.Sprintf("%v: reading %d position %d (%s) value %dus",
		ErrNoMatchingCluster, e.Reading, e.Position, kind, e.Value)
}

func (e *NoMatchingClusterError) Unwrap() error { return ErrNoMatchingCluster }

// InconsistentEncodingError names the first reading that disagrees with reading 0
type InconsistentEncodingError struct {
	Readings int
	Reading  int
	Expected string
	Got      string
}

func (e *InconsistentEncodingError) Error() string {
	return fmt.Sprintf("%v: normalizing the %d readings, reading %d gives %q, reading 0 gives %q",
		ErrInconsistentEncoding, e.Readings, e.Reading, e.Got, e.Expected)
}

func (e *InconsistentEncodingError) Unwrap() error { return ErrInconsistentEncoding }
