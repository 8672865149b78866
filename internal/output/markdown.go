package output

import (
	"fmt"
	"strings"

	"github.com/rpgo/investsim/internal/domain"
)

// MarkdownFormatter renders the report as GitHub flavored markdown.
// The terminal and HTML formatters render the same document.
type MarkdownFormatter struct{}

func (m MarkdownFormatter) Name() string { return "markdown" }

func (m MarkdownFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	return []byte(buildMarkdown(report)), nil
}

func buildMarkdown(report *domain.SimulationReport) string {
	var sb strings.Builder
	cur := report.Currency

	sb.WriteString("# Investment Simulation Report\n\n")
	fmt.Fprintf(&sb, "- **Run ID:** `%s`\n", report.RunID)
	fmt.Fprintf(&sb, "- **Generated:** %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&sb, "- **Currency:** %s\n\n", cur)

	sb.WriteString("## Assumptions\n\n")
	assumptions := report.Assumptions
	if len(assumptions) == 0 {
		assumptions = DefaultAssumptions
	}
	for _, a := range assumptions {
		fmt.Fprintf(&sb, "- %s\n", a)
	}
	sb.WriteString("\n")

	if p := report.Projection; p != nil {
		sb.WriteString("## Compound Growth\n\n")
		sb.WriteString("| Metric | Value |\n|---|---:|\n")
		fmt.Fprintf(&sb, "| Months | %d |\n", p.Input.Months)
		fmt.Fprintf(&sb, "| Total contributed | %s |\n", FormatCurrency(p.TotalContributed, cur))
		fmt.Fprintf(&sb, "| Final balance | %s |\n", FormatCurrency(p.FinalBalance, cur))
		if p.ClosedFormBalance != nil {
			fmt.Fprintf(&sb, "| Closed-form check | %s |\n", FormatCurrency(*p.ClosedFormBalance, cur))
		}
		sb.WriteString("\n")
	}

	if p := report.Portfolio; p != nil {
		sb.WriteString("## Portfolio Risk & Return\n\n")
		sb.WriteString("| Asset | Return | Volatility | Weight |\n|---|---:|---:|---:|\n")
		for _, a := range p.Input.Assets {
			fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n", a.Name, FormatPercentage(a.ExpectedReturn), FormatPercentage(a.Volatility), fixed(a.Weight, 3))
		}
		sb.WriteString("\n| Statistic | Value |\n|---|---:|\n")
		fmt.Fprintf(&sb, "| Expected return (p.a.) | %s |\n", FormatPercentage(p.Statistics.ExpectedReturn))
		fmt.Fprintf(&sb, "| Volatility (p.a.) | %s (%s) |\n", FormatPercentage(p.Statistics.Volatility), RiskLevel(p.Statistics.Volatility))
		fmt.Fprintf(&sb, "| Risk-adjusted ratio | %s |\n", fixed(p.Statistics.SharpeRatio, 3))
		fmt.Fprintf(&sb, "| Paths | %d |\n", p.Input.Trials)
		sb.WriteString("\n| P10 | P25 | P50 | P75 | P90 |\n|---:|---:|---:|---:|---:|\n")
		pr := p.Terminal.Percentiles
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s |\n\n", fixed(pr.P10, 4), fixed(pr.P25, 4), fixed(pr.P50, 4), fixed(pr.P75, 4), fixed(pr.P90, 4))
	}

	if cmp := report.Comparison; cmp != nil {
		insight := AnalyzeComparison(cmp)
		totals := TotalComparison(cmp, cur)
		sb.WriteString("## Guided vs Chaotic\n\n")
		sb.WriteString("| | Chaotic | Guided |\n|---|---:|---:|\n")
		fmt.Fprintf(&sb, "| Final balance | %s | %s |\n", totals.ChaoticFinal.Format(), totals.GuidedFinal.Format())
		fmt.Fprintf(&sb, "| Contributed | %s | %s |\n", totals.ChaoticContributed.Format(), totals.GuidedContributed.Format())
		fmt.Fprintf(&sb, "| Withdrawn | %s | %s |\n", totals.Withdrawn.Format(), FormatCurrency(0, cur))
		fmt.Fprintf(&sb, "| Gain | %s | %s |\n\n", totals.ChaoticGain.Format(), totals.GuidedGain.Format())
		fmt.Fprintf(&sb, "**Difference (guided - chaotic):** %s (%s), winner: **%s**\n\n",
			totals.Difference.Format(), FormatPercentage(insight.DifferencePercent), insight.Winner)
		if insight.LeadMonth > 0 {
			fmt.Fprintf(&sb, "Guided stays ahead from month %d.\n\n", insight.LeadMonth)
		}
		if insight.BreakEvenFee != nil {
			fmt.Fprintf(&sb, "A guided fee of %s p.a. would erase the advantage.\n\n", FormatPercentage(*insight.BreakEvenFee))
		}
	}
	return sb.String()
}
