package capture

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/RyanBlaney/sonido-ir/alphabet/config"
	"github.com/RyanBlaney/sonido-ir/logging"
)

var (
	// ErrShortCapture is returned when a source runs out before yielding the requested readings
	ErrShortCapture = errors.New("capture ended before all readings were collected")

	// ErrCaptureTimeout is returned when no burst arrives within the configured timeout
	ErrCaptureTimeout = errors.New("timed out waiting for a button press")

	// ErrShortReading is returned when a capture file holds fewer intervals than required
	ErrShortReading = errors.New("capture holds too few intervals")
)

// SampleSource yields already tokenized readings, one per button press
type SampleSource interface {
	Readings(ctx context.Context, count int) ([][]int, error)
}

// StaticSource serves readings held in memory
type StaticSource struct {
	readings [][]int
}

// NewStaticSource creates a source over the given readings
func NewStaticSource(readings [][]int) *StaticSource {
	return &StaticSource{readings: readings}
}

func (s *StaticSource) Readings(ctx context.Context, count int) ([][]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(s.readings) < count {
		return nil, fmt.Errorf("%w: have %d of %d", ErrShortCapture, len(s.readings), count)
	}

	out := make([][]int, count)
	for i := range out {
		out[i] = slices.Clone(s.readings[i])
	}
	return out, nil
}

// FileSource reads one capture file per reading
type FileSource struct {
	paths        []string
	minIntervals int
	logger       logging.Logger
}

// NewFileSource creates a source over capture files; a nil config uses the defaults
func NewFileSource(paths []string, cfg *config.CaptureConfig) *FileSource {
	if cfg == nil {
		cfg = config.DefaultCaptureConfig()
	}

	return &FileSource{
		paths:        paths,
		minIntervals: cfg.MinIntervals,
		logger: logging.WithFields(logging.Fields{
			"component": "file_source",
		}),
	}
}

func (f *FileSource) Readings(ctx context.Context, count int) ([][]int, error) {
	if len(f.paths) < count {
		return nil, fmt.Errorf("%w: have %d capture files for %d readings", ErrShortCapture, len(f.paths), count)
	}

	readings := make([][]int, 0, count)
	for i, path := range f.paths[:count] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read capture %s: %w", path, err)
		}

		reading, err := Tokenize(raw)
		if err != nil {
			return nil, fmt.Errorf("capture %s: %w", path, err)
		}
		if len(reading) < f.minIntervals {
			return nil, fmt.Errorf("capture %s: %w: got %d, need at least %d",
				path, ErrShortReading, len(reading), f.minIntervals)
		}

		logReading(f.logger, i, reading, logging.Fields{"file": path})
		readings = append(readings, reading)
	}

	return readings, nil
}

func logReading(logger logging.Logger, index int, reading []int, extra logging.Fields) {
	values := make([]string, len(reading))
	for i, v := range reading {
		values[i] = strconv.Itoa(v)
	}

	fields := logging.Fields{
		"reading":   index,
		"intervals": len(reading),
	}
	for k, v := range extra {
		fields[k] = v
	}

	logger.Debug(strings.Join(values, ", "), fields)
	logger.Info(fmt.Sprintf("Read %d intervals.", len(reading)), fields)
}
