package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/investsim/internal/config"
	"github.com/rpgo/investsim/internal/output"
)

func newChartCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "chart",
		Short: "Render PNG charts of a run",
		Long: `Runs the configuration (or the example configuration without --config) and
writes PNG charts of the compound growth, sample portfolio paths, final value
histogram and guided vs chaotic balances to --output-dir (default ".").`,
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
			dir := opts.outputDir
			if dir == "" {
				dir = "."
			}
			paths, err := output.WriteCharts(report, dir)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", p)
			}
			return nil
		},
	}
}
