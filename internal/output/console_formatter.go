package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/investsim/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	var buf bytes.Buffer
	cur := report.Currency
	fmt.Fprintln(&buf, "INVESTMENT SIMULATION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Run: %s\n", report.RunID)
	fmt.Fprintln(&buf)
	if p := report.Projection; p != nil {
		fmt.Fprintf(&buf, "Compound: Months=%d Contributed=%s Final=%s\n",
			p.Input.Months, FormatCurrency(p.TotalContributed, cur), FormatCurrency(p.FinalBalance, cur))
	}
	if p := report.Portfolio; p != nil {
		fmt.Fprintf(&buf, "Portfolio: Return=%s Volatility=%s Ratio=%.3f Median=%.4f\n",
			FormatPercentage(p.Statistics.ExpectedReturn), FormatPercentage(p.Statistics.Volatility),
			p.Statistics.SharpeRatio, p.Terminal.Percentiles.P50)
	}
	if cmp := report.Comparison; cmp != nil {
		fmt.Fprintf(&buf, "Comparison: Guided=%s Chaotic=%s\n",
			FormatCurrency(cmp.GuidedFinal, cur), FormatCurrency(cmp.ChaoticFinal, cur))
		insight := AnalyzeComparison(cmp)
		fmt.Fprintf(&buf, "  Winner=%s Difference=%s\n", insight.Winner, TotalComparison(cmp, cur).Difference.Format())
	}
	return buf.Bytes(), nil
}
