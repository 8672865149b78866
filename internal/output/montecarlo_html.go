package output

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/rpgo/investsim/internal/domain"
)

// MonteCarloHTMLReport generates a standalone HTML page for portfolio path simulation results
type MonteCarloHTMLReport struct {
	Result *domain.PortfolioResult
}

var monteCarloHTMLTemplate = template.Must(template.New("montecarlo").Funcs(template.FuncMap{
	"pct": FormatPercentage,
	"f4":  func(f float64) string { return fixed(f, 4) },
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Portfolio Simulation Report</title>
    <style>
        body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 0; padding: 20px; background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); min-height: 100vh; }
        .container { max-width: 1100px; margin: 0 auto; background: #fff; border-radius: 15px; padding: 30px; }
        .metrics { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 16px; }
        .metric { background: #f8f9fa; border-radius: 10px; padding: 16px; text-align: center; }
        .metric .value { font-size: 1.6em; font-weight: bold; }
        .risk-low { color: #28a745; } .risk-moderate { color: #17a2b8; } .risk-high { color: #fd7e14; } .risk-very-high { color: #dc3545; }
        table { border-collapse: collapse; width: 100%; margin: 16px 0; }
        th, td { border: 1px solid #dee2e6; padding: 8px; text-align: right; }
        th:first-child, td:first-child { text-align: left; }
        img { max-width: 100%; margin: 16px 0; }
    </style>
</head>
<body>
<div class="container">
<h1>Portfolio Simulation Report</h1>
<p>{{.Result.Input.Trials}} paths over {{.Result.Input.Months}} months, seed {{.Result.Input.Seed}}</p>
<div class="metrics">
    <div class="metric"><div>Expected Return</div><div class="value">{{pct .Result.Statistics.ExpectedReturn}}</div></div>
    <div class="metric"><div>Volatility</div><div class="value {{.RiskClass}}">{{pct .Result.Statistics.Volatility}}</div><div>{{.RiskLevel}} risk</div></div>
    <div class="metric"><div>Risk-Adjusted Ratio</div><div class="value">{{printf "%.3f" .Result.Statistics.SharpeRatio}}</div></div>
    <div class="metric"><div>Median Final Value</div><div class="value">{{f4 .Result.Terminal.Percentiles.P50}}</div></div>
</div>
<h2>Assets</h2>
<table>
<tr><th>Asset</th><th>Return</th><th>Volatility</th><th>Weight</th></tr>
{{- range .Result.Input.Assets}}
<tr><td>{{.Name}}</td><td>{{pct .ExpectedReturn}}</td><td>{{pct .Volatility}}</td><td>{{printf "%.3f" .Weight}}</td></tr>
{{- end}}
</table>
<h2>Final Value Percentiles</h2>
<table>
<tr><th>Percentile</th><th>Final Value</th></tr>
<tr><td>10th</td><td>{{f4 .Result.Terminal.Percentiles.P10}}</td></tr>
<tr><td>25th</td><td>{{f4 .Result.Terminal.Percentiles.P25}}</td></tr>
<tr><td>50th (Median)</td><td>{{f4 .Result.Terminal.Percentiles.P50}}</td></tr>
<tr><td>75th</td><td>{{f4 .Result.Terminal.Percentiles.P75}}</td></tr>
<tr><td>90th</td><td>{{f4 .Result.Terminal.Percentiles.P90}}</td></tr>
</table>
{{- if .PathChart}}
<h2>Sample Paths</h2>
<img alt="sample paths" src="{{.PathChart}}">
{{- end}}
{{- if .HistogramChart}}
<h2>Distribution</h2>
<img alt="histogram" src="{{.HistogramChart}}">
{{- end}}
</div>
</body>
</html>
`))

// GenerateHTMLReport creates a standalone HTML report with embedded charts
func (m *MonteCarloHTMLReport) GenerateHTMLReport(outputPath string) error {
	if m.Result == nil {
		return fmt.Errorf("no portfolio result to report")
	}
	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	content, err := m.generateHTMLContent()
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write HTML report: %w", err)
	}
	return nil
}

func (m *MonteCarloHTMLReport) generateHTMLContent() ([]byte, error) {
	data := struct {
		Result         *domain.PortfolioResult
		RiskLevel      string
		RiskClass      string
		PathChart      template.URL
		HistogramChart template.URL
	}{
		Result:    m.Result,
		RiskLevel: RiskLevel(m.Result.Statistics.Volatility),
		RiskClass: m.getRiskClass(),
	}
	if b, err := RenderPathChart(m.Result); err == nil {
		data.PathChart = pngDataURL(b)
	}
	if b, err := RenderHistogramChart(m.Result); err == nil {
		data.HistogramChart = pngDataURL(b)
	}

	var buf bytes.Buffer
	if err := monteCarloHTMLTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render HTML report: %w", err)
	}
	return buf.Bytes(), nil
}

func (m *MonteCarloHTMLReport) getRiskClass() string {
	switch RiskLevel(m.Result.Statistics.Volatility) {
	case "Low":
		return "risk-low"
	case "Moderate":
		return "risk-moderate"
	case "High":
		return "risk-high"
	default:
		return "risk-very-high"
	}
}

func pngDataURL(b []byte) template.URL {
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(b))
}
