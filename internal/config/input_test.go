package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rpgo/investsim/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile_YAML(t *testing.T) {
	testConfig := "general:\n" +
		"  currency: usd\n" +
		"  risk_free_percent: 4.5\n" +
		"compound:\n" +
		"  initial_capital: 1000\n" +
		"  monthly_contribution: 200\n" +
		"  years: 10\n" +
		"  rate_percent: 10\n" +
		"  seed: 42\n" +
		"portfolio:\n" +
		"  correlation: 0.2\n" +
		"  years: 10\n" +
		"  trials: 2000\n" +
		"  seed: 123\n" +
		"  assets:\n" +
		"    - name: \"Stocks\"\n" +
		"      return_percent: 10\n" +
		"      volatility_percent: 20\n" +
		"      weight: 0.6\n" +
		"    - name: \"Bonds\"\n" +
		"      return_percent: 5\n" +
		"      volatility_percent: 6\n" +
		"      weight: 0.4\n"

	parser := NewInputParser()
	config, err := parser.LoadFromFile(writeFile(t, "config.yaml", testConfig))
	require.NoError(t, err)

	assert.Equal(t, "USD", config.General.Currency)
	assert.Equal(t, 4.5, config.General.RiskFreePercent)
	assert.Equal(t, DefaultHistogramBins, config.General.HistogramBins)
	assert.Equal(t, DefaultSamplePathsToKeep, config.General.SamplePathsToKeep)
	require.NotNil(t, config.Compound)
	assert.Equal(t, 10, config.Compound.Years)
	require.NotNil(t, config.Portfolio)
	assert.Len(t, config.Portfolio.Assets, 2)
	assert.Equal(t, DefaultInitialValue, config.Portfolio.InitialValue)
	assert.Nil(t, config.Comparison)
}

func TestLoadFromFile_TOML(t *testing.T) {
	testConfig := `
[general]
currency = "EUR"

[comparison]
initial_capital = 2000.0
monthly_contribution = 300.0
years = 8
return_percent = 9.0
volatility_percent = 18.0
fee_percent = 0.3
seed = 777

[comparison.chaotic]
withdrawal_probability = 0.0
`
	parser := NewInputParser()
	config, err := parser.LoadFromFile(writeFile(t, "config.toml", testConfig))
	require.NoError(t, err)

	assert.Equal(t, "EUR", config.General.Currency)
	assert.Equal(t, DefaultRiskFreePercent, config.General.RiskFreePercent)
	require.NotNil(t, config.Comparison)
	assert.Equal(t, int64(777), config.Comparison.Seed)
	require.NotNil(t, config.Comparison.Chaotic)
	require.NotNil(t, config.Comparison.Chaotic.WithdrawalProbability)
	assert.Equal(t, 0.0, *config.Comparison.Chaotic.WithdrawalProbability)
	assert.Nil(t, config.Comparison.Chaotic.MultiplierMax)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(writeFile(t, "bad.yaml", "compound: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_ValidationFailure(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(writeFile(t, "neg.yaml", "compound:\n  years: -1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
}

func TestLoadFromFile_EnvOverrides(t *testing.T) {
	t.Setenv(EnvCurrency, "gbp")
	t.Setenv(EnvRiskFreePercent, "3.25")
	t.Setenv(EnvLogLevel, "debug")

	parser := NewInputParser()
	config, err := parser.LoadFromFile(writeFile(t, "env.yaml", "general:\n  currency: BRL\ncompound:\n  years: 1\n"))
	require.NoError(t, err)

	assert.Equal(t, "GBP", config.General.Currency)
	assert.Equal(t, 3.25, config.General.RiskFreePercent)
	assert.Equal(t, "debug", config.General.LogLevel)
}

func TestApplyEnvOverrides_InvalidRiskFree(t *testing.T) {
	t.Setenv(EnvRiskFreePercent, "six")
	err := NewInputParser().ApplyEnvOverrides(NewDefaultConfiguration())
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvRiskFreePercent)
}

func TestParse_UnsupportedFormat(t *testing.T) {
	_, err := NewInputParser().Parse([]byte("{}"), "ini")
	assert.Error(t, err)
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*domain.Configuration)
		expectError string
	}{
		{"example is valid", func(c *domain.Configuration) {}, ""},
		{"no sections", func(c *domain.Configuration) {
			c.Compound, c.Portfolio, c.Comparison = nil, nil, nil
		}, "no simulation sections"},
		{"unknown currency", func(c *domain.Configuration) { c.General.Currency = "XYZ" }, "unknown currency"},
		{"negative capital", func(c *domain.Configuration) { c.Compound.InitialCapital = -1 }, "initial capital"},
		{"negative contribution", func(c *domain.Configuration) { c.Comparison.MonthlyContribution = -5 }, "monthly contribution"},
		{"negative compound volatility", func(c *domain.Configuration) { c.Compound.VolatilityPercent = -1 }, "volatility"},
		{"no assets", func(c *domain.Configuration) { c.Portfolio.Assets = nil }, "at least one asset"},
		{"weight above one", func(c *domain.Configuration) { c.Portfolio.Assets[0].Weight = 1.5 }, "weight"},
		{"negative asset volatility", func(c *domain.Configuration) { c.Portfolio.Assets[1].VolatilityPercent = -3 }, "volatility"},
		{"correlation out of range", func(c *domain.Configuration) { c.Portfolio.Correlation = 1.2 }, "correlation"},
		{"portfolio needs a year", func(c *domain.Configuration) { c.Portfolio.Years = 0 }, "years must be at least 1"},
		{"too many trials", func(c *domain.Configuration) { c.Portfolio.Trials = MaxTrials + 1 }, "trials"},
		{"zero trials", func(c *domain.Configuration) { c.Portfolio.Trials = 0 }, "trials"},
		{"zero initial value", func(c *domain.Configuration) { c.Portfolio.InitialValue = 0 }, "initial value must be positive"},
		{"comparison needs a year", func(c *domain.Configuration) { c.Comparison.Years = 0 }, "years must be at least 1"},
		{"chaotic probability", func(c *domain.Configuration) {
			p := 1.5
			c.Comparison.Chaotic = &domain.ChaoticSettings{WithdrawalProbability: &p}
		}, "withdrawal_probability"},
		{"chaotic multiplier range", func(c *domain.Configuration) {
			lo := 2.0
			c.Comparison.Chaotic = &domain.ChaoticSettings{MultiplierMin: &lo}
		}, "multiplier_min"},
		{"compound years zero is fine", func(c *domain.Configuration) { c.Compound.Years = 0 }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewInputParser()
			config := parser.CreateExampleConfiguration()
			tt.mutate(config)

			err := parser.ValidateConfiguration(config)
			if tt.expectError == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestCreateExampleConfiguration(t *testing.T) {
	config := NewInputParser().CreateExampleConfiguration()

	assert.Equal(t, "BRL", config.General.Currency)
	assert.Equal(t, 6.0, config.General.RiskFreePercent)
	require.NotNil(t, config.Compound)
	assert.Equal(t, int64(42), config.Compound.Seed)
	require.NotNil(t, config.Portfolio)
	assert.Len(t, config.Portfolio.Assets, 3)
	assert.Equal(t, 2000, config.Portfolio.Trials)
	assert.Equal(t, int64(123), config.Portfolio.Seed)
	require.NotNil(t, config.Comparison)
	assert.Equal(t, 0.3, config.Comparison.FeePercent)
	assert.Equal(t, int64(777), config.Comparison.Seed)
}
