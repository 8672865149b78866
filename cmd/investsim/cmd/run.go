package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rpgo/investsim/internal/config"
)

func newRunCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run every simulation of a configuration",
		Long: `Runs the compound, portfolio and comparison sections of --config concurrently
and prints one combined report. Without --config the example configuration is run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfiguration()
			if err != nil {
				return err
			}
			if opts.cfgFile == "" {
				example := config.NewInputParser().CreateExampleConfiguration()
				cfg.Compound, cfg.Portfolio, cfg.Comparison = example.Compound, example.Portfolio, example.Comparison
			}
			report, err := opts.simulate(cmd, cfg)
			if err != nil {
				return err
			}
			return opts.emit(cmd, report)
		},
	}
}
