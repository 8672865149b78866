package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rpgo/investsim/internal/config"
)

func newCompoundCommand(opts *rootOptions) *cobra.Command {
	var (
		initial, contribution, rate, volatility, fee float64
		years                                        int
		seed                                         int64
	)
	defaults := config.NewInputParser().CreateExampleConfiguration().Compound

	cmd := &cobra.Command{
		Use:   "compound",
		Short: "Project compound growth month by month",
		Long: `Projects a balance with monthly contributions, an annual rate and fee, and
optional log-normal monthly shocks (--volatility > 0). Flags override the
compound section of --config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfiguration()
			if err != nil {
				return err
			}
			s := *defaults
			if cfg.Compound != nil {
				s = *cfg.Compound
			}
			changed := cmd.Flags().Changed
			override(changed, "initial", &s.InitialCapital, initial)
			override(changed, "contribution", &s.MonthlyContribution, contribution)
			override(changed, "years", &s.Years, years)
			override(changed, "rate", &s.RatePercent, rate)
			override(changed, "volatility", &s.VolatilityPercent, volatility)
			override(changed, "fee", &s.FeePercent, fee)
			override(changed, "seed", &s.Seed, seed)
			cfg.Compound, cfg.Portfolio, cfg.Comparison = &s, nil, nil

			report, err := opts.simulate(cmd, cfg)
			if err != nil {
				return err
			}
			return opts.emit(cmd, report)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&initial, "initial", defaults.InitialCapital, "initial capital")
	f.Float64Var(&contribution, "contribution", defaults.MonthlyContribution, "monthly contribution")
	f.IntVar(&years, "years", defaults.Years, "horizon in years")
	f.Float64Var(&rate, "rate", defaults.RatePercent, "annual rate in percent")
	f.Float64Var(&volatility, "volatility", defaults.VolatilityPercent, "annual volatility in percent, 0 disables shocks")
	f.Float64Var(&fee, "fee", defaults.FeePercent, "annual fee in percent")
	f.Int64Var(&seed, "seed", defaults.Seed, "random seed for the shocks")
	return cmd
}
