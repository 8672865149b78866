package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vicanso/go-charts/v2"

	"github.com/rpgo/investsim/internal/domain"
)

const (
	chartWidth     = 1000
	chartHeight    = 600
	maxChartPaths  = 20
	chartAxisSplit = 12
)

// ErrNoChartData is returned when a chart would have no series to draw.
var ErrNoChartData = errors.New("no data to chart")

func monthLabels(n int, from int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = intToString(from + i)
	}
	return out
}

func splitFor(n int) int {
	return max(1, min(chartAxisSplit, n))
}

// RenderGrowthChart draws the compound balance month by month as a PNG.
func RenderGrowthChart(p *domain.ProjectionResult, currency string) ([]byte, error) {
	if p == nil || len(p.Schedule) == 0 {
		return nil, ErrNoChartData
	}
	values := p.Schedule.Balances()
	painter, err := charts.LineRender([][]float64{values},
		charts.TitleTextOptionFunc("Compound growth", fmt.Sprintf("final %s", FormatCurrency(p.FinalBalance, currency))),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: monthLabels(len(values), 1), BoundaryGap: charts.FalseFlag(), SplitNumber: splitFor(len(values))}),
		charts.YAxisOptionFunc(charts.YAxisOption{DivideCount: 5}),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(chartWidth),
		charts.HeightOptionFunc(chartHeight),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return painter.Bytes()
}

// RenderPathChart draws up to maxChartPaths of the kept sample paths.
func RenderPathChart(p *domain.PortfolioResult) ([]byte, error) {
	if p == nil || len(p.SamplePaths) == 0 {
		return nil, ErrNoChartData
	}
	paths := p.SamplePaths[:min(maxChartPaths, len(p.SamplePaths))]
	yMin, yMax := paths[0][0], paths[0][0]
	for _, path := range paths {
		for _, v := range path {
			yMin = min(yMin, v)
			yMax = max(yMax, v)
		}
	}
	pad := (yMax - yMin) * 0.05
	yMin = max(0, yMin-pad)
	yMax += pad
	n := len(paths[0])
	painter, err := charts.LineRender(paths,
		charts.TitleTextOptionFunc("Simulated portfolio paths", fmt.Sprintf("%d of %d paths", len(paths), p.Input.Trials)),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: monthLabels(n, 0), BoundaryGap: charts.FalseFlag(), SplitNumber: splitFor(n)}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(chartWidth),
		charts.HeightOptionFunc(chartHeight),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return painter.Bytes()
}

// RenderHistogramChart draws the terminal value histogram as bars.
func RenderHistogramChart(p *domain.PortfolioResult) ([]byte, error) {
	if p == nil || len(p.Terminal.Histogram) == 0 {
		return nil, ErrNoChartData
	}
	counts := make([]float64, len(p.Terminal.Histogram))
	labels := make([]string, len(p.Terminal.Histogram))
	for i, b := range p.Terminal.Histogram {
		counts[i] = float64(b.Count)
		labels[i] = fixed(b.Lower, 2)
	}
	painter, err := charts.BarRender([][]float64{counts},
		charts.TitleTextOptionFunc("Final value distribution", fmt.Sprintf("median %s", fixed(p.Terminal.Percentiles.P50, 4))),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: labels, SplitNumber: splitFor(len(labels))}),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(chartWidth),
		charts.HeightOptionFunc(chartHeight),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return painter.Bytes()
}

// RenderComparisonChart draws the guided and chaotic balances on one chart.
func RenderComparisonChart(cmp *domain.ScenarioComparison, currency string) ([]byte, error) {
	if cmp == nil || len(cmp.Guided) == 0 {
		return nil, ErrNoChartData
	}
	n := len(cmp.Guided)
	painter, err := charts.LineRender([][]float64{cmp.Chaotic.Balances(), cmp.Guided.Balances()},
		charts.TitleTextOptionFunc("Guided vs chaotic", fmt.Sprintf("difference %s", FormatCurrency(cmp.Difference, currency))),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: monthLabels(n, 1), BoundaryGap: charts.FalseFlag(), SplitNumber: splitFor(n)}),
		charts.LegendOptionFunc(charts.LegendOption{Data: []string{"Chaotic", "Guided"}, Top: charts.PositionTop}),
		charts.YAxisOptionFunc(charts.YAxisOption{DivideCount: 5}),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(chartWidth),
		charts.HeightOptionFunc(chartHeight),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return painter.Bytes()
}

// RenderCharts renders every chart the report has data for, keyed by file stem.
func RenderCharts(report *domain.SimulationReport) (map[string][]byte, error) {
	out := map[string][]byte{}
	add := func(name string, b []byte, err error) error {
		if errors.Is(err, ErrNoChartData) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s chart: %w", name, err)
		}
		out[name] = b
		return nil
	}
	if report.Projection != nil {
		b, err := RenderGrowthChart(report.Projection, report.Currency)
		if err := add("growth", b, err); err != nil {
			return nil, err
		}
	}
	if report.Portfolio != nil {
		b, err := RenderPathChart(report.Portfolio)
		if err := add("paths", b, err); err != nil {
			return nil, err
		}
		b, err = RenderHistogramChart(report.Portfolio)
		if err := add("histogram", b, err); err != nil {
			return nil, err
		}
	}
	if report.Comparison != nil {
		b, err := RenderComparisonChart(report.Comparison, report.Currency)
		if err := add("comparison", b, err); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// WriteCharts writes every chart of the report as PNG files into dir and
// returns the written paths.
func WriteCharts(report *domain.SimulationReport, dir string) ([]string, error) {
	pngs, err := RenderCharts(report)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	var written []string
	for _, name := range []string{"growth", "paths", "histogram", "comparison"} {
		b, ok := pngs[name]
		if !ok {
			continue
		}
		path := filepath.Join(dir, fmt.Sprintf("investsim_%s.png", name))
		if err := os.WriteFile(path, b, 0644); err != nil {
			return nil, fmt.Errorf("failed to write chart: %w", err)
		}
		written = append(written, path)
	}
	return written, nil
}
