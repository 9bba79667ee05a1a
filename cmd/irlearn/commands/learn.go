package commands

import (
	"github.com/RyanBlaney/sonido-ir/alphabet"
	"github.com/RyanBlaney/sonido-ir/logging"
	"github.com/RyanBlaney/sonido-ir/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunLearn captures the readings, learns the alphabet and prints the report.
// Any failure aborts the command; nothing is printed on stdout in that case.
func RunLearn(cmd *cobra.Command, v *viper.Viper) error {
	learnerCfg, captureCfg, reportCfg, err := prepare(cmd, v)
	if err != nil {
		return err
	}

	readings, err := collect(cmd, captureCfg)
	if err != nil {
		return err
	}

	result, err := alphabet.NewLearner(learnerCfg).Learn(readings)
	if err != nil {
		return err
	}

	r := report.New(result)
	logging.Debug("Learned alphabet", logging.Fields{
		"run_id":  r.RunID,
		"symbols": len(r.Symbols),
	})

	return report.Write(cmd.OutOrStdout(), r, reportCfg)
}
