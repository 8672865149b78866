package output

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/investsim/internal/domain"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

func TestRenderCharts(t *testing.T) {
	report := buildTestReport()
	tests := []struct {
		name   string
		render func() ([]byte, error)
	}{
		{"growth", func() ([]byte, error) { return RenderGrowthChart(report.Projection, report.Currency) }},
		{"paths", func() ([]byte, error) { return RenderPathChart(report.Portfolio) }},
		{"histogram", func() ([]byte, error) { return RenderHistogramChart(report.Portfolio) }},
		{"comparison", func() ([]byte, error) { return RenderComparisonChart(report.Comparison, report.Currency) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := tt.render()
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(b, pngSignature), "expected PNG output")
		})
	}
}

func TestRenderChartsWithoutData(t *testing.T) {
	_, err := RenderGrowthChart(nil, "USD")
	assert.ErrorIs(t, err, ErrNoChartData)
	_, err = RenderPathChart(&domain.PortfolioResult{})
	assert.ErrorIs(t, err, ErrNoChartData)
	_, err = RenderComparisonChart(&domain.ScenarioComparison{}, "USD")
	assert.ErrorIs(t, err, ErrNoChartData)

	pngs, err := RenderCharts(&domain.SimulationReport{Currency: "USD"})
	require.NoError(t, err)
	assert.Empty(t, pngs)
}

func TestWriteChartsSkipsMissingTabs(t *testing.T) {
	report := buildTestReport()
	report.Portfolio = nil
	dir := t.TempDir()

	written, err := WriteCharts(report, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "investsim_growth.png"),
		filepath.Join(dir, "investsim_comparison.png"),
	}, written)
}
