package config

import (
	"fmt"
	"math"
	"time"
)

// LearnerConfig configures alphabet learning
type LearnerConfig struct {
	// ThresholdScale multiplies the largest per-position deviation to get the
	// clustering distance. 1.5 unless there is a reason to change it.
	ThresholdScale float64 `json:"threshold_scale" yaml:"threshold_scale" mapstructure:"threshold_scale"`
}

// CaptureConfig configures how readings are collected
type CaptureConfig struct {
	ReadingCount int           `json:"reading_count" yaml:"reading_count" mapstructure:"reading_count"`
	Input        string        `json:"input" yaml:"input" mapstructure:"input"` // "-" for stdin, or a file/device path
	Files        []string      `json:"files,omitempty" yaml:"files,omitempty" mapstructure:"files"`
	MinIntervals int           `json:"min_intervals" yaml:"min_intervals" mapstructure:"min_intervals"`
	BurstTimeout time.Duration `json:"burst_timeout" yaml:"burst_timeout" mapstructure:"burst_timeout"` // 0 waits forever
}

// ReportConfig configures result output
type ReportConfig struct {
	Format string `json:"format" yaml:"format" mapstructure:"format"` // "text", "json", "yaml"
	Color  bool   `json:"color" yaml:"color" mapstructure:"color"`
}

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// DefaultLearnerConfig returns the learner defaults
func DefaultLearnerConfig() *LearnerConfig {
	return &LearnerConfig{
		ThresholdScale: 1.5,
	}
}

// DefaultCaptureConfig returns capture defaults: ten button presses read from stdin
func DefaultCaptureConfig() *CaptureConfig {
	return &CaptureConfig{
		ReadingCount: 10,
		Input:        "-",
		MinIntervals: 1,
		BurstTimeout: 0,
	}
}

// DefaultReportConfig returns report defaults
func DefaultReportConfig() *ReportConfig {
	return &ReportConfig{
		Format: FormatText,
		Color:  true,
	}
}

func (c *LearnerConfig) Validate() error {
	if math.IsNaN(c.ThresholdScale) || math.IsInf(c.ThresholdScale, 0) {
		return fmt.Errorf("threshold_scale must be a finite number, got %v", c.ThresholdScale)
	}
	if c.ThresholdScale < 0 {
		return fmt.Errorf("threshold_scale must not be negative, got %v", c.ThresholdScale)
	}
	return nil
}

func (c *CaptureConfig) Validate() error {
	if c.ReadingCount < 2 {
		return fmt.Errorf("reading_count must be at least 2, got %d", c.ReadingCount)
	}
	if c.MinIntervals < 1 {
		return fmt.Errorf("min_intervals must be positive, got %d", c.MinIntervals)
	}
	if c.BurstTimeout < 0 {
		return fmt.Errorf("burst_timeout must not be negative")
	}
	if len(c.Files) == 0 && c.Input == "" {
		return fmt.Errorf("an input stream or capture files are required")
	}
	if len(c.Files) > 0 && len(c.Files) != c.ReadingCount {
		return fmt.Errorf("%d capture files given for %d readings", len(c.Files), c.ReadingCount)
	}
	return nil
}

func (c *ReportConfig) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("unsupported report format %q", c.Format)
	}
}
