package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rpgo/investsim/internal/config"
	"github.com/rpgo/investsim/internal/domain"
	"github.com/rpgo/investsim/internal/output"
)

func newPortfolioCommand(opts *rootOptions) *cobra.Command {
	var (
		assets             []string
		correlation        float64
		initialValue       float64
		years, trials      int
		seed               int64
		csvDir, htmlReport string
	)
	defaults := config.NewInputParser().CreateExampleConfiguration().Portfolio

	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Simulate correlated portfolio paths",
		Long: `Simulates a weighted portfolio of correlated assets as a geometric random walk
and reports annualized return, volatility, risk-adjusted ratio and the
distribution of final values. Assets are given as name:return:volatility:weight
with percents for return and volatility, e.g. --asset stocks:10:20:0.6.`,
		Example: `  investsim portfolio --asset stocks:10:20:0.6 --asset bonds:5:5:0.4 --trials 5000
  investsim portfolio --config sim.yaml --csv-dir out/ --html out/portfolio.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfiguration()
			if err != nil {
				return err
			}
			s := *defaults
			if cfg.Portfolio != nil {
				s = *cfg.Portfolio
			}
			if len(assets) > 0 {
				parsed := make([]domain.AssetSettings, 0, len(assets))
				for _, a := range assets {
					asset, err := parseAsset(a)
					if err != nil {
						return err
					}
					parsed = append(parsed, asset)
				}
				s.Assets = parsed
			}
			changed := cmd.Flags().Changed
			override(changed, "correlation", &s.Correlation, correlation)
			override(changed, "years", &s.Years, years)
			override(changed, "trials", &s.Trials, trials)
			override(changed, "initial-value", &s.InitialValue, initialValue)
			override(changed, "seed", &s.Seed, seed)
			cfg.Compound, cfg.Portfolio, cfg.Comparison = nil, &s, nil

			report, err := opts.simulate(cmd, cfg)
			if err != nil {
				return err
			}
			if csvDir != "" {
				exporter := &output.MonteCarloCSVReport{Result: report.Portfolio}
				if err := exporter.GenerateAllCSVReports(csvDir); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote CSV exports to %s\n", filepath.Clean(csvDir))
			}
			if htmlReport != "" {
				page := &output.MonteCarloHTMLReport{Result: report.Portfolio}
				if err := page.GenerateHTMLReport(htmlReport); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", htmlReport)
			}
			return opts.emit(cmd, report)
		},
	}

	f := cmd.Flags()
	f.StringArrayVar(&assets, "asset", nil, "asset as name:return:volatility:weight (repeatable)")
	f.Float64Var(&correlation, "correlation", defaults.Correlation, "uniform pairwise correlation")
	f.IntVar(&years, "years", defaults.Years, "horizon in years")
	f.IntVar(&trials, "trials", defaults.Trials, "number of simulated paths")
	f.Float64Var(&initialValue, "initial-value", defaults.InitialValue, "starting value of every path")
	f.Int64Var(&seed, "seed", defaults.Seed, "random seed for the paths")
	f.StringVar(&csvDir, "csv-dir", "", "also write the Monte Carlo CSV exports to this directory")
	f.StringVar(&htmlReport, "html", "", "also write a standalone HTML page with charts to this file")
	return cmd
}

// parseAsset reads name:return:volatility:weight.
func parseAsset(s string) (domain.AssetSettings, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 4 {
		return domain.AssetSettings{}, fmt.Errorf("invalid asset %q: want name:return:volatility:weight", s)
	}
	values := make([]float64, 3)
	for i, p := range parts[1:] {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return domain.AssetSettings{}, fmt.Errorf("invalid asset %q: %w", s, err)
		}
		values[i] = v
	}
	return domain.AssetSettings{
		Name:              strings.TrimSpace(parts[0]),
		ReturnPercent:     values[0],
		VolatilityPercent: values[1],
		Weight:            values[2],
	}, nil
}
