package calculation

import (
	"math"
	"sort"

	"github.com/rpgo/investsim/internal/domain"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// sharpeEpsilon keeps the risk-adjusted ratio finite when volatility is zero.
const sharpeEpsilon = 1e-9

// PeriodReturns flattens paths[t]/paths[t-1]-1 for every adjacent month pair
// of every trial into one sample, month-major.
func PeriodReturns(paths *domain.PathMatrix) ([]float64, error) {
	if paths == nil {
		return nil, invalidParam("paths", "must not be nil")
	}
	if paths.Months < 1 {
		return nil, invalidParam("months", "at least one simulated month is required, got %d", paths.Months)
	}
	if paths.Trials < 1 {
		return nil, invalidParam("trials", "must be at least 1, got %d", paths.Trials)
	}

	returns := make([]float64, 0, paths.Months*paths.Trials)
	for t := 1; t <= paths.Months; t++ {
		for j := 0; j < paths.Trials; j++ {
			prev := paths.Values[t-1][j]
			if prev == 0 {
				return nil, invalidParam("paths", "zero value at month %d of trial %d", t-1, j)
			}
			returns = append(returns, paths.Values[t][j]/prev-1)
		}
	}
	return returns, nil
}

// ComputeStatistics treats every period return of the matrix as one pooled
// sample and annualizes its mean and population standard deviation.
// riskFree is an annual fraction.
func ComputeStatistics(paths *domain.PathMatrix, riskFree float64) (domain.PortfolioStatistics, error) {
	returns, err := PeriodReturns(paths)
	if err != nil {
		return domain.PortfolioStatistics{}, err
	}

	mean, std := stat.PopMeanStdDev(returns, nil)
	annualReturn := math.Pow(1+mean, monthsPerYear) - 1
	annualVol := std * math.Sqrt(monthsPerYear)

	return domain.PortfolioStatistics{
		ExpectedReturn: annualReturn,
		Volatility:     annualVol,
		SharpeRatio:    (annualReturn - riskFree) / (annualVol + sharpeEpsilon),
	}, nil
}

// SummarizeTerminal describes the final-month distribution of the paths:
// mean, range, percentiles and an equal-width histogram with the given
// number of bins.
func SummarizeTerminal(paths *domain.PathMatrix, bins int) (domain.TerminalSummary, error) {
	if paths == nil || paths.Trials < 1 {
		return domain.TerminalSummary{}, invalidParam("paths", "at least one trial is required")
	}
	if bins < 1 {
		return domain.TerminalSummary{}, invalidParam("bins", "must be at least 1, got %d", bins)
	}

	terminal := paths.Terminal()
	sort.Float64s(terminal)

	summary := domain.TerminalSummary{
		Mean: stat.Mean(terminal, nil),
		Min:  terminal[0],
		Max:  terminal[len(terminal)-1],
		Percentiles: domain.PercentileRanges{
			P10: stat.Quantile(0.10, stat.Empirical, terminal, nil),
			P25: stat.Quantile(0.25, stat.Empirical, terminal, nil),
			P50: stat.Quantile(0.50, stat.Empirical, terminal, nil),
			P75: stat.Quantile(0.75, stat.Empirical, terminal, nil),
			P90: stat.Quantile(0.90, stat.Empirical, terminal, nil),
		},
	}
	summary.Histogram = histogram(terminal, summary.Min, summary.Max, bins)
	return summary, nil
}

// histogram expects sorted values.
func histogram(sorted []float64, lo, hi float64, bins int) []domain.HistogramBin {
	if lo == hi {
		return []domain.HistogramBin{{Lower: lo, Upper: hi, Count: len(sorted)}}
	}

	dividers := floats.Span(make([]float64, bins+1), lo, hi)
	// stat.Histogram treats the last divider as exclusive
	dividers[bins] = math.Nextafter(hi, math.Inf(1))
	counts := stat.Histogram(nil, dividers, sorted, nil)

	out := make([]domain.HistogramBin, bins)
	for i := range out {
		out[i] = domain.HistogramBin{
			Lower: dividers[i],
			Upper: dividers[i+1],
			Count: int(counts[i]),
		}
	}
	out[bins-1].Upper = hi
	return out
}
