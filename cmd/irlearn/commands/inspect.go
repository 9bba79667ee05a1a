package commands

import (
	"github.com/RyanBlaney/sonido-ir/alphabet"
	"github.com/RyanBlaney/sonido-ir/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunInspect captures the readings and prints their per-position statistics
// without clustering, for diagnosing noisy or truncated captures.
func RunInspect(cmd *cobra.Command, v *viper.Viper) error {
	learnerCfg, captureCfg, reportCfg, err := prepare(cmd, v)
	if err != nil {
		return err
	}

	readings, err := collect(cmd, captureCfg)
	if err != nil {
		return err
	}

	intervals, threshold, err := alphabet.NewLearner(learnerCfg).Inspect(readings)
	if err != nil {
		return err
	}

	return report.WriteInspection(cmd.OutOrStdout(), report.NewInspection(len(readings), intervals, threshold), reportCfg)
}
