package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rpgo/investsim/internal/config"
	"github.com/rpgo/investsim/internal/domain"
)

func newCompareCommand(opts *rootOptions) *cobra.Command {
	var (
		initial, contribution, ret, volatility, fee float64
		chaoticFee, withdrawalProbability           float64
		years                                       int
		seed                                        int64
		noChaos                                     bool
	)
	defaults := config.NewInputParser().CreateExampleConfiguration().Comparison

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare a guided and a chaotic investor",
		Long: `Runs a guided investor (fixed contribution, low fee) and a chaotic investor
(erratic contributions, random withdrawals, higher fee) through the same
simulated market. --no-chaos turns the chaotic behavior off, which makes both
investors identical.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfiguration()
			if err != nil {
				return err
			}
			s := *defaults
			if cfg.Comparison != nil {
				s = *cfg.Comparison
			}
			changed := cmd.Flags().Changed
			override(changed, "initial", &s.InitialCapital, initial)
			override(changed, "contribution", &s.MonthlyContribution, contribution)
			override(changed, "years", &s.Years, years)
			override(changed, "return", &s.ReturnPercent, ret)
			override(changed, "volatility", &s.VolatilityPercent, volatility)
			override(changed, "fee", &s.FeePercent, fee)
			override(changed, "seed", &s.Seed, seed)

			chaotic := domain.ChaoticSettings{}
			if s.Chaotic != nil {
				chaotic = *s.Chaotic
			}
			if changed("chaotic-fee") {
				chaotic.FeePercent = &chaoticFee
			}
			if changed("withdrawal-probability") {
				chaotic.WithdrawalProbability = &withdrawalProbability
			}
			if noChaos {
				one, zero := 1.0, 0.0
				guidedFee := s.FeePercent
				chaotic = domain.ChaoticSettings{
					FeePercent:            &guidedFee,
					MultiplierMin:         &one,
					MultiplierMax:         &one,
					TimingBias:            &zero,
					WithdrawalProbability: &zero,
				}
			}
			s.Chaotic = &chaotic
			cfg.Compound, cfg.Portfolio, cfg.Comparison = nil, nil, &s

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
	f.Float64Var(&ret, "return", defaults.ReturnPercent, "expected annual market return in percent")
	f.Float64Var(&volatility, "volatility", defaults.VolatilityPercent, "annual market volatility in percent")
	f.Float64Var(&fee, "fee", defaults.FeePercent, "annual fee of the guided investor in percent")
	f.Float64Var(&chaoticFee, "chaotic-fee", 2, "annual fee of the chaotic investor in percent")
	f.Float64Var(&withdrawalProbability, "withdrawal-probability", 0.08, "monthly chance of a chaotic withdrawal (0..1)")
	f.Int64Var(&seed, "seed", defaults.Seed, "random seed for the market and the chaotic behavior")
	f.BoolVar(&noChaos, "no-chaos", false, "disable the chaotic behavior")
	return cmd
}
