package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/investsim/internal/domain"
)

const (
	scheduleHeadMonths = 12
	scheduleTailMonths = 5
	histogramBarWidth  = 40
)

// ConsoleVerboseFormatter renders the detailed console report via the pluggable interface.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "DETAILED INVESTMENT SIMULATION REPORT")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintf(&buf, "Run ID:    %s\n", report.RunID)
	fmt.Fprintf(&buf, "Generated: %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&buf, "Currency:  %s\n", report.Currency)
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	assumptions := report.Assumptions
	if len(assumptions) == 0 {
		assumptions = DefaultAssumptions
	}
	for _, a := range assumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	if report.Projection != nil {
		writeProjection(&buf, report.Projection, report.Currency)
	}
	if report.Portfolio != nil {
		writePortfolio(&buf, report.Portfolio)
	}
	if report.Comparison != nil {
		writeComparison(&buf, report.Comparison, report.Currency)
	}

	return buf.Bytes(), nil
}

func writeProjection(buf *bytes.Buffer, p *domain.ProjectionResult, cur string) {
	fmt.Fprintln(buf, "COMPOUND GROWTH")
	fmt.Fprintln(buf, strings.Repeat("=", 50))
	fmt.Fprintf(buf, "  Initial Capital:        %s\n", FormatCurrency(p.Input.InitialCapital, cur))
	fmt.Fprintf(buf, "  Monthly Contribution:   %s\n", FormatCurrency(p.Input.Contribution, cur))
	fmt.Fprintf(buf, "  Monthly Rate:           %s\n", FormatPercentage(p.Input.MonthlyRate))
	fmt.Fprintf(buf, "  Monthly Fee:            %s\n", FormatPercentage(p.Input.MonthlyFee))
	if p.Input.ShockVolatility != nil {
		fmt.Fprintf(buf, "  Monthly Shock SD:       %s\n", FormatPercentage(*p.Input.ShockVolatility))
	}
	fmt.Fprintln(buf)

	head := min(scheduleHeadMonths, len(p.Schedule))
	if head > 0 {
		fmt.Fprintf(buf, "FIRST %d MONTHS:\n", head)
		fmt.Fprintf(buf, "  %-6s %20s\n", "Month", "Balance")
		for _, pt := range p.Schedule[:head] {
			fmt.Fprintf(buf, "  %-6d %20s\n", pt.Month, FormatCurrency(pt.Balance, cur))
		}
		fmt.Fprintln(buf)
	}

	fmt.Fprintf(buf, "  Total Contributed:      %s\n", FormatCurrency(p.TotalContributed, cur))
	fmt.Fprintf(buf, "  Final Balance:          %s\n", FormatCurrency(p.FinalBalance, cur))
	fmt.Fprintf(buf, "  Growth:                 %s\n", ProjectionGain(p, cur).Format())
	if p.ClosedFormBalance != nil {
		fmt.Fprintf(buf, "  Closed-Form Check:      %s\n", FormatCurrency(*p.ClosedFormBalance, cur))
	}
	fmt.Fprintln(buf)
	fmt.Fprintln(buf)
}

func writePortfolio(buf *bytes.Buffer, p *domain.PortfolioResult) {
	fmt.Fprintln(buf, "PORTFOLIO RISK & RETURN")
	fmt.Fprintln(buf, strings.Repeat("=", 50))
	fmt.Fprintf(buf, "  %-16s %10s %10s %8s\n", "Asset", "Return", "Vol", "Weight")
	for _, a := range p.Input.Assets {
		fmt.Fprintf(buf, "  %-16s %10s %10s %8.3f\n", a.Name, FormatPercentage(a.ExpectedReturn), FormatPercentage(a.Volatility), a.Weight)
	}
	fmt.Fprintf(buf, "  Correlation: %.2f   Paths: %d   Months: %d\n", p.Input.Correlation, p.Input.Trials, p.Input.Months)
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "SIMULATED STATISTICS:")
	fmt.Fprintf(buf, "  Expected Return (p.a.): %s\n", FormatPercentage(p.Statistics.ExpectedReturn))
	fmt.Fprintf(buf, "  Volatility (p.a.):      %s (%s)\n", FormatPercentage(p.Statistics.Volatility), RiskLevel(p.Statistics.Volatility))
	fmt.Fprintf(buf, "  Risk-Adjusted Ratio:    %.3f\n", p.Statistics.SharpeRatio)
	fmt.Fprintln(buf)

	t := p.Terminal
	fmt.Fprintf(buf, "FINAL VALUE DISTRIBUTION (initial = %.2f):\n", p.Input.InitialValue)
	fmt.Fprintf(buf, "  Mean %.4f   Min %.4f   Max %.4f\n", t.Mean, t.Min, t.Max)
	fmt.Fprintf(buf, "  P10 %.4f   P25 %.4f   P50 %.4f   P75 %.4f   P90 %.4f\n",
		t.Percentiles.P10, t.Percentiles.P25, t.Percentiles.P50, t.Percentiles.P75, t.Percentiles.P90)
	writeHistogram(buf, t.Histogram)
	fmt.Fprintln(buf)
	fmt.Fprintln(buf)
}

func writeHistogram(buf *bytes.Buffer, bins []domain.HistogramBin) {
	peak := 0
	for _, b := range bins {
		peak = max(peak, b.Count)
	}
	if peak == 0 {
		return
	}
	for _, b := range bins {
		bar := strings.Repeat("#", b.Count*histogramBarWidth/peak)
		fmt.Fprintf(buf, "  %9.4f - %9.4f | %-*s %d\n", b.Lower, b.Upper, histogramBarWidth, bar, b.Count)
	}
}

func writeComparison(buf *bytes.Buffer, cmp *domain.ScenarioComparison, cur string) {
	fmt.Fprintln(buf, "GUIDED vs CHAOTIC")
	fmt.Fprintln(buf, strings.Repeat("=", 50))

	n := len(cmp.Guided)
	from := max(0, n-scheduleTailMonths)
	if n > 0 {
		fmt.Fprintf(buf, "LAST %d MONTHS:\n", n-from)
		fmt.Fprintf(buf, "  %-6s %20s %20s %10s\n", "Month", "Chaotic", "Guided", "Market")
		for i := from; i < n; i++ {
			fmt.Fprintf(buf, "  %-6d %20s %20s %10s\n", cmp.Guided[i].Month,
				FormatCurrency(cmp.Chaotic[i].Balance, cur), FormatCurrency(cmp.Guided[i].Balance, cur),
				FormatPercentage(cmp.Market[i]))
		}
		fmt.Fprintln(buf)
	}

	insight := AnalyzeComparison(cmp)
	totals := TotalComparison(cmp, cur)
	fmt.Fprintln(buf, "FINAL COMPARISON:")
	fmt.Fprintf(buf, "  Final Balance - Chaotic: %s\n", totals.ChaoticFinal.Format())
	fmt.Fprintf(buf, "  Final Balance - Guided:  %s\n", totals.GuidedFinal.Format())
	fmt.Fprintf(buf, "  Difference (Guided - Chaotic): %s (%s)\n", totals.Difference.Format(), FormatPercentage(insight.DifferencePercent))
	fmt.Fprintf(buf, "  Contributed - Chaotic:   %s\n", totals.ChaoticContributed.Format())
	fmt.Fprintf(buf, "  Contributed - Guided:    %s\n", totals.GuidedContributed.Format())
	fmt.Fprintf(buf, "  Withdrawn - Chaotic:     %s in %d months\n", totals.Withdrawn.Format(), insight.WithdrawalMonths)
	fmt.Fprintf(buf, "  Net Invested - Chaotic:  %s\n", totals.ChaoticNetInvested.Format())
	fmt.Fprintf(buf, "  Gain - Chaotic:          %s\n", totals.ChaoticGain.Format())
	fmt.Fprintf(buf, "  Gain - Guided:           %s\n", totals.GuidedGain.Format())
	if insight.LeadMonth > 0 {
		fmt.Fprintf(buf, "  Guided stays ahead from month %d\n", insight.LeadMonth)
	}
	if insight.BreakEvenFee != nil {
		fmt.Fprintf(buf, "  Guided fee that would erase the advantage: %s p.a.\n", FormatPercentage(*insight.BreakEvenFee))
	}
}
