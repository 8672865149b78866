package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rpgo/investsim/internal/calculation"
	"github.com/rpgo/investsim/internal/config"
	"github.com/rpgo/investsim/internal/domain"
	"github.com/rpgo/investsim/internal/output"
)

// rootOptions hold the persistent flags shared by every command.
type rootOptions struct {
	cfgFile    string
	verbose    bool
	logLevel   string
	currency   string
	outputDir  string
	format     string
	randomSeed bool
}

// NewRootCommand builds the investsim command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "investsim",
		Short: "Investment simulator",
		Long: `investsim projects investment outcomes from a YAML or TOML configuration
or from command-line flags.

Simulations:
  compound   - month-by-month compound growth with optional market shocks
  portfolio  - correlated multi-asset random-walk paths and their statistics
  compare    - a guided and a chaotic investor in the same market`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.cfgFile, "config", "", "configuration file (.yaml or .toml)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output (debug logging)")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&opts.currency, "currency", "", "ISO 4217 currency code for amounts")
	pf.StringVarP(&opts.outputDir, "output-dir", "o", "", "write report files to this directory instead of stdout")
	pf.StringVarP(&opts.format, "format", "f", "console",
		fmt.Sprintf("report format: %s or all", strings.Join(output.AvailableFormatterNames(), ", ")))
	pf.BoolVar(&opts.randomSeed, "random-seed", false, "draw fresh seeds instead of the configured ones")

	root.AddCommand(
		newRunCommand(opts),
		newCompoundCommand(opts),
		newPortfolioCommand(opts),
		newCompareCommand(opts),
		newChartCommand(opts),
		newExampleConfigCommand(),
		newVersionCommand(),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

// ExecuteContext runs the root command with ctx, so an interrupt cancels a run.
func ExecuteContext(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// loadConfiguration reads --config when given, otherwise starts from the
// defaults with environment overrides. Flags are applied last.
func (o *rootOptions) loadConfiguration() (*domain.Configuration, error) {
	parser := config.NewInputParser()
	var cfg *domain.Configuration
	if o.cfgFile != "" {
		loaded, err := parser.LoadFromFile(o.cfgFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = config.NewDefaultConfiguration()
		if err := parser.ApplyEnvOverrides(cfg); err != nil {
			return nil, err
		}
	}
	if o.currency != "" {
		cfg.General.Currency = strings.ToUpper(o.currency)
	}
	if o.logLevel != "" {
		cfg.General.LogLevel = o.logLevel
	}
	if o.verbose {
		cfg.General.LogLevel = "debug"
	}
	return cfg, nil
}

// simulate validates cfg and runs every section it holds.
func (o *rootOptions) simulate(cmd *cobra.Command, cfg *domain.Configuration) (*domain.SimulationReport, error) {
	logger := newCLILogger(cfg.General.LogLevel, cmd.ErrOrStderr())
	if o.randomSeed {
		reseed(cfg, logger)
	}
	if err := config.NewInputParser().ValidateConfiguration(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	engine := calculation.NewEngine()
	engine.SamplePaths = cfg.General.SamplePathsToKeep
	engine.HistogramBins = cfg.General.HistogramBins
	engine.SetLogger(logger)

	report, err := engine.RunAll(cmd.Context(), config.RunRequest(cfg))
	if err != nil {
		return nil, err
	}
	report.Assumptions = output.GenerateAssumptions(report)
	return report, nil
}

// emit prints the report to stdout, or writes files when --output-dir is set.
func (o *rootOptions) emit(cmd *cobra.Command, report *domain.SimulationReport) error {
	if o.outputDir != "" {
		paths, err := output.GenerateReport(report, o.format, o.outputDir)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", p)
		}
		return nil
	}

	if output.NormalizeFormatName(o.format) == "all" {
		return fmt.Errorf("format \"all\" requires --output-dir")
	}
	f := output.GetFormatterByName(o.format)
	if f == nil {
		return fmt.Errorf("%w: %q. Try one of: %s", output.ErrUnsupportedFormat, o.format, strings.Join(output.AvailableFormatterNames(), ", "))
	}
	data, err := f.Format(report)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func reseed(cfg *domain.Configuration, logger calculation.Logger) {
	if cfg.Compound != nil {
		cfg.Compound.Seed = calculation.NewSeed()
		logger.Infof("compound seed %d", cfg.Compound.Seed)
	}
	if cfg.Portfolio != nil {
		cfg.Portfolio.Seed = calculation.NewSeed()
		logger.Infof("portfolio seed %d", cfg.Portfolio.Seed)
	}
	if cfg.Comparison != nil {
		cfg.Comparison.Seed = calculation.NewSeed()
		logger.Infof("comparison seed %d", cfg.Comparison.Seed)
	}
}

// override assigns v to dst when the named flag was set on the command line.
func override[T any](changed func(string) bool, name string, dst *T, v T) {
	if changed(name) {
		*dst = v
	}
}
