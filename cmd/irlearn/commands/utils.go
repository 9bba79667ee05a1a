package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/RyanBlaney/sonido-ir/alphabet/config"
	"github.com/RyanBlaney/sonido-ir/capture"
	"github.com/RyanBlaney/sonido-ir/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Execute runs cmd and returns the process exit status. A failure is always
// written to the command's error stream, whatever the log level.
func Execute(ctx context.Context, cmd *cobra.Command) int {
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return 1
	}
	return 0
}

// LoadConfig loads configuration from the config file and environment
func LoadConfig(v *viper.Viper) error {
	if configFile := v.GetString("config"); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("IRLEARN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return nil
}

// SetupLogging configures the global logger. Logs go to stderr so that the
// report on stdout stays machine readable.
func SetupLogging(cmd *cobra.Command, v *viper.Viper) error {
	level, ok := logging.ParseLevel(v.GetString("log_level"))
	if !ok {
		return fmt.Errorf("invalid log level: %q", v.GetString("log_level"))
	}

	logger := logging.NewLogger(cmd.ErrOrStderr(), cmd.ErrOrStderr(), logging.IsTerminal(os.Stderr))
	logger.SetLevel(level)
	logging.SetGlobalLogger(logger)
	if v.GetBool("no_color") {
		logging.DisableColors()
	}

	return nil
}

func createLearnerConfig(v *viper.Viper) *config.LearnerConfig {
	return &config.LearnerConfig{
		ThresholdScale: v.GetFloat64("learner.threshold_scale"),
	}
}

func createCaptureConfig(v *viper.Viper) *config.CaptureConfig {
	return &config.CaptureConfig{
		ReadingCount: v.GetInt("capture.reading_count"),
		Input:        v.GetString("capture.input"),
		Files:        v.GetStringSlice("capture.files"),
		MinIntervals: v.GetInt("capture.min_intervals"),
		BurstTimeout: v.GetDuration("capture.burst_timeout"),
	}
}

func createReportConfig(v *viper.Viper) *config.ReportConfig {
	return &config.ReportConfig{
		Format: v.GetString("report.format"),
		Color:  !v.GetBool("no_color"),
	}
}

// prepare loads configuration, sets up logging and validates every section
func prepare(cmd *cobra.Command, v *viper.Viper) (*config.LearnerConfig, *config.CaptureConfig, *config.ReportConfig, error) {
	if err := LoadConfig(v); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := SetupLogging(cmd, v); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to setup logging: %w", err)
	}

	learnerCfg := createLearnerConfig(v)
	captureCfg := createCaptureConfig(v)
	reportCfg := createReportConfig(v)

	if err := learnerCfg.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := captureCfg.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := reportCfg.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return learnerCfg, captureCfg, reportCfg, nil
}

// openSource picks the sample source described by cfg. The returned close
// function must be called once the readings are collected.
func openSource(cmd *cobra.Command, cfg *config.CaptureConfig) (capture.SampleSource, func() error, error) {
	noop := func() error { return nil }

	if len(cfg.Files) > 0 {
		return capture.NewFileSource(cfg.Files, cfg), noop, nil
	}

	if cfg.Input == "-" {
		return capture.NewStreamSource(cmd.InOrStdin(), cfg), noop, nil
	}

	f, err := os.Open(cfg.Input)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open capture input: %w", err)
	}
	return capture.NewStreamSource(f, cfg), f.Close, nil
}

// collect reads the configured number of readings
func collect(cmd *cobra.Command, cfg *config.CaptureConfig) ([][]int, error) {
	source, closeSource, err := openSource(cmd, cfg)
	if err != nil {
		return nil, err
	}
	defer closeSource()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	readings, err := source.Readings(ctx, cfg.ReadingCount)
	if err != nil {
		return nil, fmt.Errorf("failed to capture readings: %w", err)
	}
	return readings, nil
}
