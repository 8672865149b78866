package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/pelletier/go-toml/v2"
	"github.com/rpgo/investsim/internal/domain"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	EnvLogLevel        = "INVESTSIM_LOG_LEVEL"
	EnvCurrency        = "INVESTSIM_CURRENCY"
	EnvRiskFreePercent = "INVESTSIM_RISK_FREE_PERCENT"
)

// Defaults applied before a file is decoded.
const (
	DefaultCurrency          = "BRL"
	DefaultRiskFreePercent   = 6.0
	DefaultLogLevel          = "info"
	DefaultSamplePathsToKeep = 50
	DefaultHistogramBins     = 30
	DefaultInitialValue      = 1.0
	MaxTrials                = 100000
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// NewDefaultConfiguration returns the general settings every run starts from.
func NewDefaultConfiguration() *domain.Configuration {
	return &domain.Configuration{
		General: domain.GeneralSettings{
			Currency:          DefaultCurrency,
			RiskFreePercent:   DefaultRiskFreePercent,
			LogLevel:          DefaultLogLevel,
			SamplePathsToKeep: DefaultSamplePathsToKeep,
			HistogramBins:     DefaultHistogramBins,
		},
	}
}

// LoadFromFile loads configuration from a YAML or TOML file. Values are
// layered as defaults, then the file, then environment overrides.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	config, err := ip.Parse(data, formatFromExtension(filename))
	if err != nil {
		return nil, err
	}

	if err := ip.ApplyEnvOverrides(config); err != nil {
		return nil, err
	}

	// Validate the configuration
	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Parse decodes raw configuration data in the given format ("yaml" or "toml")
// over the defaults.
func (ip *InputParser) Parse(data []byte, format string) (*domain.Configuration, error) {
	config := NewDefaultConfiguration()
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	case "yaml", "":
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported configuration format %q", format)
	}
	applySectionDefaults(config)
	return config, nil
}

func formatFromExtension(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return "toml"
	default:
		return "yaml"
	}
}

// applySectionDefaults fills zero values that have no meaning as zero.
func applySectionDefaults(config *domain.Configuration) {
	if config.General.Currency == "" {
		config.General.Currency = DefaultCurrency
	}
	config.General.Currency = strings.ToUpper(config.General.Currency)
	if config.General.SamplePathsToKeep == 0 {
		config.General.SamplePathsToKeep = DefaultSamplePathsToKeep
	}
	if config.General.HistogramBins == 0 {
		config.General.HistogramBins = DefaultHistogramBins
	}
	if config.Portfolio != nil && config.Portfolio.InitialValue == 0 {
		config.Portfolio.InitialValue = DefaultInitialValue
	}
}

// ApplyEnvOverrides overrides general settings from the environment.
func (ip *InputParser) ApplyEnvOverrides(config *domain.Configuration) error {
	if level := os.Getenv(EnvLogLevel); level != "" {
		config.General.LogLevel = level
	}
	if currency := os.Getenv(EnvCurrency); currency != "" {
		config.General.Currency = strings.ToUpper(currency)
	}
	if rf := os.Getenv(EnvRiskFreePercent); rf != "" {
		v, err := strconv.ParseFloat(rf, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvRiskFreePercent, rf, err)
		}
		config.General.RiskFreePercent = v
	}
	return nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.Compound == nil && config.Portfolio == nil && config.Comparison == nil {
		return fmt.Errorf("no simulation sections provided")
	}

	if err := ip.validateGeneral(&config.General); err != nil {
		return fmt.Errorf("general settings validation failed: %w", err)
	}
	if config.Compound != nil {
		if err := ip.validateCompound(config.Compound); err != nil {
			return fmt.Errorf("compound validation failed: %w", err)
		}
	}
	if config.Portfolio != nil {
		if err := ip.validatePortfolio(config.Portfolio); err != nil {
			return fmt.Errorf("portfolio validation failed: %w", err)
		}
	}
	if config.Comparison != nil {
		if err := ip.validateComparison(config.Comparison); err != nil {
			return fmt.Errorf("comparison validation failed: %w", err)
		}
	}

	return nil
}

func (ip *InputParser) validateGeneral(general *domain.GeneralSettings) error {
	if money.GetCurrency(general.Currency) == nil {
		return fmt.Errorf("unknown currency code %q", general.Currency)
	}
	if general.SamplePathsToKeep < 0 {
		return fmt.Errorf("sample paths cannot be negative")
	}
	if general.HistogramBins < 1 {
		return fmt.Errorf("histogram bins must be at least 1")
	}
	return nil
}

func (ip *InputParser) validateCompound(c *domain.CompoundSettings) error {
	if c.InitialCapital < 0 {
		return fmt.Errorf("initial capital cannot be negative")
	}
	if c.MonthlyContribution < 0 {
		return fmt.Errorf("monthly contribution cannot be negative")
	}
	if c.Years < 0 {
		return fmt.Errorf("years cannot be negative")
	}
	if c.VolatilityPercent < 0 {
		return fmt.Errorf("volatility cannot be negative")
	}
	if c.RatePercent <= -100 {
		return fmt.Errorf("rate must be greater than -100%%")
	}
	if c.FeePercent <= -100 {
		return fmt.Errorf("fee must be greater than -100%%")
	}
	return nil
}

func (ip *InputParser) validatePortfolio(p *domain.PortfolioSettings) error {
	if len(p.Assets) == 0 {
		return fmt.Errorf("at least one asset is required")
	}
	for i, asset := range p.Assets {
		if asset.VolatilityPercent < 0 {
			return fmt.Errorf("asset %d (%s): volatility cannot be negative", i+1, asset.Name)
		}
		if asset.ReturnPercent <= -100 {
			return fmt.Errorf("asset %d (%s): return must be greater than -100%%", i+1, asset.Name)
		}
		if asset.Weight < 0 || asset.Weight > 1 {
			return fmt.Errorf("asset %d (%s): weight must be between 0 and 1", i+1, asset.Name)
		}
	}
	if p.Correlation < -1 || p.Correlation > 1 {
		return fmt.Errorf("correlation must be between -1 and 1")
	}
	if p.Years < 1 {
		return fmt.Errorf("years must be at least 1")
	}
	if p.Trials < 1 || p.Trials > MaxTrials {
		return fmt.Errorf("trials must be between 1 and %d", MaxTrials)
	}
	if p.InitialValue <= 0 {
		return fmt.Errorf("initial value must be positive")
	}
	return nil
}

func (ip *InputParser) validateComparison(c *domain.ComparisonSettings) error {
	if c.InitialCapital < 0 {
		return fmt.Errorf("initial capital cannot be negative")
	}
	if c.MonthlyContribution < 0 {
		return fmt.Errorf("monthly contribution cannot be negative")
	}
	if c.Years < 1 {
		return fmt.Errorf("years must be at least 1")
	}
	if c.VolatilityPercent < 0 {
		return fmt.Errorf("volatility cannot be negative")
	}
	if c.ReturnPercent <= -100 {
		return fmt.Errorf("return must be greater than -100%%")
	}
	if c.FeePercent <= -100 {
		return fmt.Errorf("fee must be greater than -100%%")
	}
	if c.Chaotic != nil {
		if err := ip.validateChaotic(c.Chaotic); err != nil {
			return fmt.Errorf("chaotic: %w", err)
		}
	}
	return nil
}

func (ip *InputParser) validateChaotic(c *domain.ChaoticSettings) error {
	b := ChaoticBehavior(c)
	if b.MultiplierMin < 0 {
		return fmt.Errorf("multiplier_min cannot be negative")
	}
	if b.MultiplierMin > b.MultiplierMax {
		return fmt.Errorf("multiplier_min must not exceed multiplier_max")
	}
	if b.WithdrawalProbability < 0 || b.WithdrawalProbability > 1 {
		return fmt.Errorf("withdrawal_probability must be between 0 and 1")
	}
	if b.WithdrawalMin < 0 || b.WithdrawalMax > 1 || b.WithdrawalMin > b.WithdrawalMax {
		return fmt.Errorf("withdrawal percents must satisfy 0 <= min <= max <= 100")
	}
	if b.AnnualFee <= -1 {
		return fmt.Errorf("fee must be greater than -100%%")
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	config := NewDefaultConfiguration()
	config.Compound = &domain.CompoundSettings{
		InitialCapital:      1000,
		MonthlyContribution: 200,
		Years:               10,
		RatePercent:         10,
		VolatilityPercent:   0,
		FeePercent:          0,
		Seed:                42,
	}
	config.Portfolio = &domain.PortfolioSettings{
		Assets: []domain.AssetSettings{
			{Name: "Asset 1", ReturnPercent: 10, VolatilityPercent: 20, Weight: 1.0 / 3},
			{Name: "Asset 2", ReturnPercent: 10, VolatilityPercent: 20, Weight: 1.0 / 3},
			{Name: "Asset 3", ReturnPercent: 10, VolatilityPercent: 20, Weight: 1.0 / 3},
		},
		Correlation:  0.2,
		Years:        10,
		Trials:       2000,
		InitialValue: DefaultInitialValue,
		Seed:         123,
	}
	config.Comparison = &domain.ComparisonSettings{
		InitialCapital:      2000,
		MonthlyContribution: 300,
		Years:               8,
		ReturnPercent:       9,
		VolatilityPercent:   18,
		FeePercent:          0.3,
		Seed:                777,
	}
	return config
}
