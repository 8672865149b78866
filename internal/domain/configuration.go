package domain

// Configuration is the top-level simulation input file. Every percentage in
// it is a whole-number percent (10 means 10%); internal/config converts them
// to fractions before anything reaches the calculation engine.
// Omitted sections are skipped by a run.
type Configuration struct {
	General    GeneralSettings     `yaml:"general" toml:"general" json:"general"`
	Compound   *CompoundSettings   `yaml:"compound,omitempty" toml:"compound,omitempty" json:"compound,omitempty"`
	Portfolio  *PortfolioSettings  `yaml:"portfolio,omitempty" toml:"portfolio,omitempty" json:"portfolio,omitempty"`
	Comparison *ComparisonSettings `yaml:"comparison,omitempty" toml:"comparison,omitempty" json:"comparison,omitempty"`
}

// GeneralSettings apply to every tab.
type GeneralSettings struct {
	Currency          string  `yaml:"currency" toml:"currency" json:"currency"` // ISO 4217 code, e.g. BRL
	RiskFreePercent   float64 `yaml:"risk_free_percent" toml:"risk_free_percent" json:"risk_free_percent"`
	LogLevel          string  `yaml:"log_level,omitempty" toml:"log_level,omitempty" json:"log_level,omitempty"`
	SamplePathsToKeep int     `yaml:"sample_paths,omitempty" toml:"sample_paths,omitempty" json:"sample_paths,omitempty"` // Default: 50
	HistogramBins     int     `yaml:"histogram_bins,omitempty" toml:"histogram_bins,omitempty" json:"histogram_bins,omitempty"` // Default: 30
}

// CompoundSettings configure the compound-growth projector.
type CompoundSettings struct {
	InitialCapital      float64 `yaml:"initial_capital" toml:"initial_capital" json:"initial_capital"`
	MonthlyContribution float64 `yaml:"monthly_contribution" toml:"monthly_contribution" json:"monthly_contribution"`
	Years               int     `yaml:"years" toml:"years" json:"years"`
	RatePercent         float64 `yaml:"rate_percent" toml:"rate_percent" json:"rate_percent"`
	VolatilityPercent   float64 `yaml:"volatility_percent" toml:"volatility_percent" json:"volatility_percent"` // 0 disables shocks
	FeePercent          float64 `yaml:"fee_percent" toml:"fee_percent" json:"fee_percent"`
	Seed                int64   `yaml:"seed" toml:"seed" json:"seed"`
}

// AssetSettings describe one asset in whole-number percents.
type AssetSettings struct {
	Name              string  `yaml:"name" toml:"name" json:"name"`
	ReturnPercent     float64 `yaml:"return_percent" toml:"return_percent" json:"return_percent"`
	VolatilityPercent float64 `yaml:"volatility_percent" toml:"volatility_percent" json:"volatility_percent"`
	Weight            float64 `yaml:"weight" toml:"weight" json:"weight"` // 0..1, normalized before use
}

// PortfolioSettings configure the portfolio path simulator.
type PortfolioSettings struct {
	Assets       []AssetSettings `yaml:"assets" toml:"assets" json:"assets"`
	Correlation  float64         `yaml:"correlation" toml:"correlation" json:"correlation"`
	Years        int             `yaml:"years" toml:"years" json:"years"`
	Trials       int             `yaml:"trials" toml:"trials" json:"trials"`
	InitialValue float64         `yaml:"initial_value,omitempty" toml:"initial_value,omitempty" json:"initial_value,omitempty"` // Default: 1.0
	Seed         int64           `yaml:"seed" toml:"seed" json:"seed"`
}

// ChaoticSettings override the chaotic investor model. Nil fields keep the defaults.
type ChaoticSettings struct {
	FeePercent            *float64 `yaml:"fee_percent,omitempty" toml:"fee_percent,omitempty" json:"fee_percent,omitempty"`
	MultiplierMin         *float64 `yaml:"multiplier_min,omitempty" toml:"multiplier_min,omitempty" json:"multiplier_min,omitempty"`
	MultiplierMax         *float64 `yaml:"multiplier_max,omitempty" toml:"multiplier_max,omitempty" json:"multiplier_max,omitempty"`
	TimingBias            *float64 `yaml:"timing_bias,omitempty" toml:"timing_bias,omitempty" json:"timing_bias,omitempty"`
	WithdrawalProbability *float64 `yaml:"withdrawal_probability,omitempty" toml:"withdrawal_probability,omitempty" json:"withdrawal_probability,omitempty"` // 0..1 per month
	WithdrawalMinPercent  *float64 `yaml:"withdrawal_min_percent,omitempty" toml:"withdrawal_min_percent,omitempty" json:"withdrawal_min_percent,omitempty"`
	WithdrawalMaxPercent  *float64 `yaml:"withdrawal_max_percent,omitempty" toml:"withdrawal_max_percent,omitempty" json:"withdrawal_max_percent,omitempty"`
}

// ComparisonSettings configure the guided vs chaotic comparison.
type ComparisonSettings struct {
	InitialCapital      float64          `yaml:"initial_capital" toml:"initial_capital" json:"initial_capital"`
	MonthlyContribution float64          `yaml:"monthly_contribution" toml:"monthly_contribution" json:"monthly_contribution"`
	Years               int              `yaml:"years" toml:"years" json:"years"`
	ReturnPercent       float64          `yaml:"return_percent" toml:"return_percent" json:"return_percent"`
	VolatilityPercent   float64          `yaml:"volatility_percent" toml:"volatility_percent" json:"volatility_percent"`
	FeePercent          float64          `yaml:"fee_percent" toml:"fee_percent" json:"fee_percent"`
	Seed                int64            `yaml:"seed" toml:"seed" json:"seed"`
	Chaotic             *ChaoticSettings `yaml:"chaotic,omitempty" toml:"chaotic,omitempty" json:"chaotic,omitempty"`
}
