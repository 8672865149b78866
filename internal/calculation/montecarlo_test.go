package calculation

import (
	"errors"
	"math"
	"testing"

	"github.com/rpgo/investsim/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeAssetInput(t *testing.T, trials, months int, seed int64) domain.PathInput {
	t.Helper()
	vols := []float64{
		AnnualToMonthlyVolatility(0.20),
		AnnualToMonthlyVolatility(0.20),
		AnnualToMonthlyVolatility(0.20),
	}
	cov, err := BuildCovariance(vols, 0.2)
	require.NoError(t, err)
	mu := AnnualToMonthlyRate(0.10)
	return domain.PathInput{
		MonthlyReturns: []float64{mu, mu, mu},
		Covariance:     CovarianceRows(cov),
		Weights:        NormalizeWeights([]float64{1, 1, 1}),
		InitialValue:   1.0,
		Months:         months,
		Trials:         trials,
		Seed:           seed,
	}
}

func TestSimulatePaths_Shape(t *testing.T) {
	paths, err := SimulatePaths(threeAssetInput(t, 200, 120, 123))
	require.NoError(t, err)

	assert.Equal(t, 120, paths.Months)
	assert.Equal(t, 200, paths.Trials)
	require.Len(t, paths.Values, 121)
	for _, row := range paths.Values {
		assert.Len(t, row, 200)
	}
}

func TestSimulatePaths_InitialConditionAndNonNegativity(t *testing.T) {
	in := threeAssetInput(t, 100, 60, 7)
	in.InitialValue = 2.5
	paths, err := SimulatePaths(in)
	require.NoError(t, err)

	for j := 0; j < paths.Trials; j++ {
		assert.Equal(t, 2.5, paths.At(0, j))
	}
	for t2, row := range paths.Values {
		for j, v := range row {
			if v < 0 || math.IsNaN(v) {
				t.Fatalf("invalid value %g at month %d trial %d", v, t2, j)
			}
		}
	}
}

func TestSimulatePaths_Deterministic(t *testing.T) {
	in := threeAssetInput(t, 500, 24, 123)
	first, err := SimulatePaths(in)
	require.NoError(t, err)
	second, err := SimulatePaths(in)
	require.NoError(t, err)
	assert.Equal(t, first.Values, second.Values)

	in.Seed = 124
	other, err := SimulatePaths(in)
	require.NoError(t, err)
	assert.NotEqual(t, first.Values, other.Values)
}

func TestSimulatePaths_SingleAssetSingleTrial(t *testing.T) {
	v := AnnualToMonthlyVolatility(0.20)
	in := domain.PathInput{
		MonthlyReturns: []float64{AnnualToMonthlyRate(0.10)},
		Covariance:     [][]float64{{v * v}},
		Weights:        []float64{1},
		InitialValue:   1.0,
		Months:         1,
		Trials:         1,
		Seed:           99,
	}
	first, err := SimulatePaths(in)
	require.NoError(t, err)
	second, err := SimulatePaths(in)
	require.NoError(t, err)

	assert.Equal(t, first.At(1, 0), second.At(1, 0))
	assert.Greater(t, first.At(1, 0), 0.0)
}

func TestSimulatePaths_ZeroVolatilityIsDeterministicGrowth(t *testing.T) {
	mu := 0.01
	in := domain.PathInput{
		MonthlyReturns: []float64{mu},
		Covariance:     [][]float64{{0}},
		Weights:        []float64{1},
		InitialValue:   1.0,
		Months:         12,
		Trials:         3,
		Seed:           1,
	}
	paths, err := SimulatePaths(in)
	require.NoError(t, err)
	for j := 0; j < 3; j++ {
		assert.InDelta(t, math.Exp(12*mu), paths.At(12, j), 1e-12)
	}
}

func TestSimulatePaths_ZeroMonths(t *testing.T) {
	paths, err := SimulatePaths(threeAssetInput(t, 5, 0, 1))
	require.NoError(t, err)
	require.Len(t, paths.Values, 1)
	assert.Equal(t, []float64{1, 1, 1, 1, 1}, paths.Terminal())
}

func TestSimulatePaths_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.PathInput)
		param  string
	}{
		{"negative months", func(in *domain.PathInput) { in.Months = -1 }, "months"},
		{"zero trials", func(in *domain.PathInput) { in.Trials = 0 }, "trials"},
		{"negative initial value", func(in *domain.PathInput) { in.InitialValue = -1 }, "initial_value"},
		{"zero initial value", func(in *domain.PathInput) { in.InitialValue = 0 }, "initial_value"},
		{"weight length mismatch", func(in *domain.PathInput) { in.Weights = []float64{0.5, 0.5} }, "weights"},
		{"covariance not square", func(in *domain.PathInput) { in.Covariance = in.Covariance[:2] }, "covariance"},
		{"covariance dimension mismatch", func(in *domain.PathInput) {
			in.MonthlyReturns = []float64{0.01, 0.01}
			in.Weights = []float64{0.5, 0.5}
		}, "covariance"},
		{"not positive semi-definite", func(in *domain.PathInput) {
			in.Covariance = [][]float64{
				{0.01, -0.009, -0.009},
				{-0.009, 0.01, -0.009},
				{-0.009, -0.009, 0.01},
			}
		}, "covariance"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := threeAssetInput(t, 10, 12, 1)
			tt.mutate(&in)
			_, err := SimulatePaths(in)
			require.Error(t, err)

			var perr *ParameterError
			require.True(t, errors.As(err, &perr), "expected ParameterError, got %v", err)
			assert.Equal(t, tt.param, perr.Param)
		})
	}
}

func TestPortfolioMoments(t *testing.T) {
	cov, err := BuildCovariance([]float64{0.1, 0.2}, 0)
	require.NoError(t, err)

	mu, sigma, err := PortfolioMoments([]float64{0.01, 0.02}, cov, []float64{0.5, 0.5})
	require.NoError(t, err)
	assert.InDelta(t, 0.015, mu, 1e-15)
	// 0.25*0.01 + 0.25*0.04
	assert.InDelta(t, math.Sqrt(0.0125), sigma, 1e-15)
}

func TestSamplePaths(t *testing.T) {
	paths, err := SimulatePaths(threeAssetInput(t, 10, 6, 3))
	require.NoError(t, err)

	samples := SamplePaths(paths, 4)
	require.Len(t, samples, 4)
	assert.Len(t, samples[0], 7)
	assert.Equal(t, paths.Trial(2), samples[2])

	assert.Len(t, SamplePaths(paths, 50), 10)
	assert.Nil(t, SamplePaths(paths, 0))
	assert.Nil(t, SamplePaths(nil, 5))
}
