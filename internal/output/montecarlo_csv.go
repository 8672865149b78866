package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rpgo/investsim/internal/domain"
)

// MonteCarloCSVReport generates CSV exports for portfolio path simulation results
type MonteCarloCSVReport struct {
	Result *domain.PortfolioResult
}

func writeCSVFile(outputPath string, header []string, rows [][]string) (err error) {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close CSV file: %w", cerr)
		}
	}()
	return writeCSV(file, header, rows)
}

// writeCSV writes header and rows and flushes, so buffered write errors surface.
func writeCSV(out io.Writer, header []string, rows [][]string) error {
	writer := csv.NewWriter(out)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write data row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// GenerateSummaryCSV creates a summary CSV with aggregate statistics
func (m *MonteCarloCSVReport) GenerateSummaryCSV(outputPath string) error {
	r := m.Result
	stats := r.Statistics
	rows := [][]string{
		{"Expected Return", FormatPercentage(stats.ExpectedReturn), "Annualized mean of pooled monthly returns"},
		{"Volatility", FormatPercentage(stats.Volatility), "Annualized standard deviation of pooled monthly returns"},
		{"Risk-Adjusted Ratio", fixed(stats.SharpeRatio, 4), "(return - risk-free) / volatility"},
		{"Risk Level", RiskLevel(stats.Volatility), "Classification of the annualized volatility"},
		{"Portfolio Monthly Return", floatToString(r.PortfolioReturn), "Weighted expected monthly return"},
		{"Portfolio Monthly Volatility", floatToString(r.PortfolioVolatility), "Monthly volatility from the covariance matrix"},
		{"Mean Final Value", fixed(r.Terminal.Mean, 4), "Average final value across all paths"},
		{"Min Final Value", fixed(r.Terminal.Min, 4), "Worst final value"},
		{"Max Final Value", fixed(r.Terminal.Max, 4), "Best final value"},
		{"Number of Paths", strconv.Itoa(r.Input.Trials), "Total number of simulated paths"},
		{"Months", strconv.Itoa(r.Input.Months), "Simulation horizon"},
		{"Seed", strconv.FormatInt(r.Input.Seed, 10), "Random seed of the run"},
	}
	return writeCSVFile(outputPath, []string{"Metric", "Value", "Description"}, rows)
}

// GeneratePercentileCSV creates a CSV with the final value percentiles
func (m *MonteCarloCSVReport) GeneratePercentileCSV(outputPath string) error {
	p := m.Result.Terminal.Percentiles
	rows := [][]string{
		{"10th", fixed(p.P10, 4), "Worst 10% of paths"},
		{"25th", fixed(p.P25, 4), "Below average paths"},
		{"50th (Median)", fixed(p.P50, 4), "Typical path"},
		{"75th", fixed(p.P75, 4), "Above average paths"},
		{"90th", fixed(p.P90, 4), "Best 10% of paths"},
	}
	return writeCSVFile(outputPath, []string{"Percentile", "FinalValue", "Interpretation"}, rows)
}

// GenerateHistogramCSV creates a CSV with the final value histogram
func (m *MonteCarloCSVReport) GenerateHistogramCSV(outputPath string) error {
	rows := make([][]string, 0, len(m.Result.Terminal.Histogram))
	for _, b := range m.Result.Terminal.Histogram {
		rows = append(rows, []string{floatToString(b.Lower), floatToString(b.Upper), strconv.Itoa(b.Count)})
	}
	return writeCSVFile(outputPath, []string{"Lower", "Upper", "Count"}, rows)
}

// GenerateSamplePathsCSV creates a CSV with one row per month and one column per kept path
func (m *MonteCarloCSVReport) GenerateSamplePathsCSV(outputPath string) error {
	paths := m.Result.SamplePaths
	header := []string{"Month"}
	for i := range paths {
		header = append(header, "Path"+strconv.Itoa(i+1))
	}
	months := 0
	if len(paths) > 0 {
		months = len(paths[0])
	}
	rows := make([][]string, 0, months)
	for t := 0; t < months; t++ {
		row := []string{strconv.Itoa(t)}
		for _, path := range paths {
			row = append(row, floatToString(path[t]))
		}
		rows = append(rows, row)
	}
	return writeCSVFile(outputPath, header, rows)
}

// GenerateAllCSVReports creates all CSV reports in a single directory
func (m *MonteCarloCSVReport) GenerateAllCSVReports(outputDir string) error {
	if m.Result == nil {
		return fmt.Errorf("no portfolio result to export")
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := m.GenerateSummaryCSV(filepath.Join(outputDir, "monte_carlo_summary.csv")); err != nil {
		return fmt.Errorf("failed to generate summary CSV: %w", err)
	}
	if err := m.GeneratePercentileCSV(filepath.Join(outputDir, "monte_carlo_percentiles.csv")); err != nil {
		return fmt.Errorf("failed to generate percentile CSV: %w", err)
	}
	if err := m.GenerateHistogramCSV(filepath.Join(outputDir, "monte_carlo_histogram.csv")); err != nil {
		return fmt.Errorf("failed to generate histogram CSV: %w", err)
	}
	if err := m.GenerateSamplePathsCSV(filepath.Join(outputDir, "monte_carlo_paths.csv")); err != nil {
		return fmt.Errorf("failed to generate sample paths CSV: %w", err)
	}
	return nil
}
