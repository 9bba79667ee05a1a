package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/RyanBlaney/sonido-ir/algorithms/stats"
	"github.com/RyanBlaney/sonido-ir/alphabet"
	"github.com/RyanBlaney/sonido-ir/alphabet/config"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// SymbolEntry is one learned symbol as shown to the operator
type SymbolEntry struct {
	Letter    string `json:"letter" yaml:"letter"`
	Average   int    `json:"average_us" yaml:"average_us"`
	Kind      string `json:"kind" yaml:"kind"`
	Positions []int  `json:"positions" yaml:"positions"`
}

// Report is the diagnostic output of a learning run
type Report struct {
	RunID       string        `json:"run_id" yaml:"run_id"`
	GeneratedAt time.Time     `json:"generated_at" yaml:"generated_at"`
	Readings    int           `json:"readings" yaml:"readings"`
	Intervals   int           `json:"intervals" yaml:"intervals"`
	Threshold   float64       `json:"threshold" yaml:"threshold"`
	Symbols     []SymbolEntry `json:"symbols" yaml:"symbols"`
	Canonical   string        `json:"canonical" yaml:"canonical"`
}

// InspectionReport shows per-position statistics without clustering
type InspectionReport struct {
	RunID       string                     `json:"run_id" yaml:"run_id"`
	GeneratedAt time.Time                  `json:"generated_at" yaml:"generated_at"`
	Readings    int                        `json:"readings" yaml:"readings"`
	Threshold   float64                    `json:"threshold" yaml:"threshold"`
	Summary     stats.IntervalSummary      `json:"summary" yaml:"summary"`
	Positions   []stats.AggregatedInterval `json:"positions" yaml:"positions"`
}

// New builds a report from a learning result
func New(result *alphabet.Result) *Report {
	symbols := result.Alphabet.Symbols()
	entries := make([]SymbolEntry, len(symbols))
	for i, s := range symbols {
		entries[i] = SymbolEntry{
			Letter:    string(s.Letter),
			Average:   s.RoundedAverage(),
			Kind:      s.Kind(),
			Positions: s.Positions,
		}
	}

	return &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Readings:    result.Readings,
		Intervals:   len(result.Canonical),
		Threshold:   result.Threshold,
		Symbols:     entries,
		Canonical:   result.Canonical,
	}
}

// NewInspection builds an inspection report
func NewInspection(readings int, intervals []stats.AggregatedInterval, threshold float64) *InspectionReport {
	return &InspectionReport{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Readings:    readings,
		Threshold:   threshold,
		Summary:     stats.Summarize(intervals),
		Positions:   intervals,
	}
}

// Write renders the report in the requested format
func Write(w io.Writer, r *Report, cfg *config.ReportConfig) error {
	cfg = orDefault(cfg)
	return write(w, r, cfg, func() string { return renderText(w, r, cfg.Color) })
}

// WriteInspection renders an inspection report in the requested format
func WriteInspection(w io.Writer, r *InspectionReport, cfg *config.ReportConfig) error {
	cfg = orDefault(cfg)
	return write(w, r, cfg, func() string { return renderInspectionText(w, r, cfg.Color) })
}

func orDefault(cfg *config.ReportConfig) *config.ReportConfig {
	if cfg == nil {
		return config.DefaultReportConfig()
	}
	return cfg
}

func write(w io.Writer, v any, cfg *config.ReportConfig, text func() string) error {
	switch cfg.Format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)

	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml report: %w", err)
		}
		return enc.Close()

	case config.FormatText:
		_, err := io.WriteString(w, text())
		return err

	default:
		return fmt.Errorf("unsupported report format %q", cfg.Format)
	}
}
