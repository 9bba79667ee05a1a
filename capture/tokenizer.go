package capture

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidToken is returned when a capture line is not a non-negative integer
var ErrInvalidToken = errors.New("invalid interval token")

// InvalidTokenError locates the offending token within a capture
type InvalidTokenError struct {
	Line  int
	Token string
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("%v: line %d: %q", ErrInvalidToken, e.Line, e.Token)
}

func (e *InvalidTokenError) Unwrap() error { return ErrInvalidToken }

// Tokenize parses one capture, one interval duration (µs) per line.
// Surrounding whitespace is trimmed and blank lines are skipped. Anything
// that is not a non-negative integer is rejected rather than read as zero.
func Tokenize(raw []byte) ([]int, error) {
	var reading []int

	scanner := bufio.NewScanner(bytes.NewReader(raw))
	line := 0
	for scanner.Scan() {
		line++
		token := strings.TrimSpace(scanner.Text())
		if token == "" {
			continue
		}

		value, err := strconv.Atoi(token)
		if err != nil || value < 0 {
			return nil, &InvalidTokenError{Line: line, Token: token}
		}
		reading = append(reading, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan capture: %w", err)
	}

	return reading, nil
}
