package calculation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCovariance(t *testing.T) {
	cov, err := BuildCovariance([]float64{0.1, 0.2, 0.3}, 0.5)
	require.NoError(t, err)

	expected := [][]float64{
		{0.01, 0.01, 0.015},
		{0.01, 0.04, 0.03},
		{0.015, 0.03, 0.09},
	}
	rows := CovarianceRows(cov)
	require.Len(t, rows, 3)
	for i := range expected {
		assert.InDeltaSlice(t, expected[i], rows[i], 1e-15)
	}
	assert.True(t, IsPositiveSemiDefinite(cov))
}

func TestBuildCovariance_SingleAsset(t *testing.T) {
	cov, err := BuildCovariance([]float64{0.2}, 0.9)
	require.NoError(t, err)
	assert.Equal(t, 1, cov.SymmetricDim())
	assert.InDelta(t, 0.04, cov.At(0, 0), 1e-15)
}

func TestBuildCovariance_Validation(t *testing.T) {
	_, err := BuildCovariance(nil, 0.2)
	assert.True(t, errors.Is(err, ErrInvalidParameter))

	_, err = BuildCovariance([]float64{0.1, -0.2}, 0.2)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestIsPositiveSemiDefinite(t *testing.T) {
	tests := []struct {
		name        string
		correlation float64
		expected    bool
	}{
		{"independent", 0, true},
		{"moderate", 0.2, true},
		{"perfect", 1, true},
		{"mild negative", -0.4, true},
		{"boundary negative", -0.5, true},
		{"too negative for three assets", -0.9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cov, err := BuildCovariance([]float64{0.1, 0.1, 0.1}, tt.correlation)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, IsPositiveSemiDefinite(cov))
		})
	}
}

func TestSymmetricFromRows(t *testing.T) {
	_, err := symmetricFromRows([][]float64{{1, 0}, {0}})
	assert.True(t, errors.Is(err, ErrInvalidParameter))

	_, err = symmetricFromRows([][]float64{{1, 0.5}, {0.2, 1}})
	assert.True(t, errors.Is(err, ErrInvalidParameter))

	_, err = symmetricFromRows(nil)
	assert.True(t, errors.Is(err, ErrInvalidParameter))

	m, err := symmetricFromRows([][]float64{{1, 0.5}, {0.5, 1}})
	require.NoError(t, err)
	assert.Equal(t, 0.5, m.At(1, 0))
}
