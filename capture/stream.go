package capture

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/RyanBlaney/sonido-ir/alphabet/config"
	"github.com/RyanBlaney/sonido-ir/logging"
)

// StreamSource reads bursts of interval lines from a byte stream such as a
// serial device or a pipe. A blank line (or the end of the stream) closes a
// burst, so one burst corresponds to one button press.
type StreamSource struct {
	r            io.Reader
	minIntervals int
	burstTimeout time.Duration
	logger       logging.Logger
}

type burst struct {
	data []byte
	err  error
}

// NewStreamSource creates a source over r; a nil config uses the defaults
func NewStreamSource(r io.Reader, cfg *config.CaptureConfig) *StreamSource {
	if cfg == nil {
		cfg = config.DefaultCaptureConfig()
	}

	return &StreamSource{
		r:            r,
		minIntervals: cfg.MinIntervals,
		burstTimeout: cfg.BurstTimeout,
		logger: logging.WithFields(logging.Fields{
			"component": "stream_source",
		}),
	}
}

// Readings collects count bursts. Bursts with fewer than the configured
// minimum number of intervals are treated as receiver glitches and skipped.
//
// The underlying reader cannot be interrupted, so on cancellation or timeout
// the scanning goroutine exits at its next read.
func (s *StreamSource) Readings(ctx context.Context, count int) ([][]int, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	bursts := make(chan burst)
	go s.scan(ctx, bursts)

	readings := make([][]int, 0, count)
	for len(readings) < count {
		s.logger.Info("Press a button on the remote.", logging.Fields{
			"reading": len(readings),
			"of":      count,
		})

		b, err := s.next(ctx, bursts)
		if err != nil {
			return nil, err
		}
		if b.err != nil {
			return nil, fmt.Errorf("failed to read capture stream: %w", b.err)
		}
		if b.data == nil {
			return nil, fmt.Errorf("%w: got %d of %d", ErrShortCapture, len(readings), count)
		}

		reading, err := Tokenize(b.data)
		if err != nil {
			return nil, fmt.Errorf("reading %d: %w", len(readings), err)
		}
		if len(reading) < s.minIntervals {
			s.logger.Warn("Skipping short burst", logging.Fields{
				"intervals": len(reading),
				"minimum":   s.minIntervals,
			})
			continue
		}

		logReading(s.logger, len(readings), reading, nil)
		readings = append(readings, reading)
	}

	return readings, nil
}

func (s *StreamSource) next(ctx context.Context, bursts <-chan burst) (burst, error) {
	var timeout <-chan time.Time
	if s.burstTimeout > 0 {
		timer := time.NewTimer(s.burstTimeout)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case b, ok := <-bursts:
		if !ok {
			return burst{}, nil
		}
		return b, nil
	case <-timeout:
		return burst{}, fmt.Errorf("%w after %v", ErrCaptureTimeout, s.burstTimeout)
	case <-ctx.Done():
		return burst{}, ctx.Err()
	}
}

// scan splits the stream into bursts and closes the channel at end of stream
func (s *StreamSource) scan(ctx context.Context, out chan<- burst) {
	defer close(out)

	send := func(b burst) bool {
		select {
		case out <- b:
			return true
		case <-ctx.Done():
			return false
		}
	}

	var current bytes.Buffer
	scanner := bufio.NewScanner(s.r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			if current.Len() > 0 {
				if !send(burst{data: bytes.Clone(current.Bytes())}) {
					return
				}
				current.Reset()
			}
			continue
		}
		current.WriteString(line)
		current.WriteByte('\n')
	}

	if err := scanner.Err(); err != nil {
		send(burst{err: err})
		return
	}
	if current.Len() > 0 {
		send(burst{data: bytes.Clone(current.Bytes())})
	}
}
