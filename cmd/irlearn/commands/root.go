package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand builds the irlearn command tree. Each call gets its own
// viper instance so commands can be constructed repeatedly in tests.
func NewRootCommand() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "irlearn",
		Short: "Learn the symbol alphabet of an infrared remote from repeated captures",
		Long: `irlearn reads several captures of the same remote button, each a list of
pulse and silence durations in microseconds, clusters the durations into a
small alphabet of symbols and checks that every capture normalizes to the
same symbol string.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Configuration file path")
	flags.String("log-level", "info", "Logging level (debug, info, warn, error)")
	flags.Bool("no-color", false, "Disable colored output")
	flags.String("format", "text", "Report format (text, json, yaml)")

	flags.IntP("readings", "n", 10, "Number of button presses to capture")
	flags.StringP("input", "i", "-", "Capture stream: '-' for stdin, or a file/device path")
	flags.StringSlice("files", nil, "Capture files, one reading per file (overrides --input)")
	flags.Int("min-intervals", 1, "Skip bursts with fewer intervals than this")
	flags.Duration("burst-timeout", 0, "Give up waiting for a button press after this long (0 waits forever)")
	flags.Float64("scale", 1.5, "Threshold scale applied to the largest per-position deviation")

	v.BindPFlag("config", flags.Lookup("config"))
	v.BindPFlag("log_level", flags.Lookup("log-level"))
	v.BindPFlag("no_color", flags.Lookup("no-color"))
	v.BindPFlag("report.format", flags.Lookup("format"))
	v.BindPFlag("capture.reading_count", flags.Lookup("readings"))
	v.BindPFlag("capture.input", flags.Lookup("input"))
	v.BindPFlag("capture.files", flags.Lookup("files"))
	v.BindPFlag("capture.min_intervals", flags.Lookup("min-intervals"))
	v.BindPFlag("capture.burst_timeout", flags.Lookup("burst-timeout"))
	v.BindPFlag("learner.threshold_scale", flags.Lookup("scale"))

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "learn",
			Short: "Capture readings, learn the alphabet and print the normalized string",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return RunLearn(cmd, v)
			},
		},
		&cobra.Command{
			Use:   "inspect",
			Short: "Capture readings and print per-position statistics",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return RunInspect(cmd, v)
			},
		},
	)

	return rootCmd
}
