package output

import (
	"fmt"

	"github.com/rpgo/investsim/internal/domain"
)

// DefaultAssumptions lists the modeling assumptions that hold for every run.
var DefaultAssumptions = []string{
	"Monthly rates compound to the annual rate: (1 + annual)^(1/12) - 1",
	"Monthly volatility follows the square-root-of-time rule: annual / sqrt(12)",
	"Contributions are credited at the end of each month",
	"Portfolio paths follow a geometric random walk with drift correction",
	"Portfolio statistics pool every monthly return of every path into one sample",
}

// GenerateAssumptions creates the assumptions list from the values a report was run with.
func GenerateAssumptions(report *domain.SimulationReport) []string {
	out := append([]string(nil), DefaultAssumptions...)
	if p := report.Projection; p != nil {
		if p.Input.ShockVolatility != nil {
			out = append(out, fmt.Sprintf("Compound growth: monthly log-normal shocks with SD %s (seed %d)",
				FormatPercentage(*p.Input.ShockVolatility), p.Input.Seed))
		} else {
			out = append(out, "Compound growth: deterministic, matches the annuity closed form")
		}
	}
	if p := report.Portfolio; p != nil {
		out = append(out, fmt.Sprintf("Portfolio: %d assets, uniform correlation %.2f, %d paths (seed %d)",
			len(p.Input.MonthlyReturns), p.Input.Correlation, p.Input.Trials, p.Input.Seed))
		out = append(out, fmt.Sprintf("Risk-free rate: %s annually", FormatPercentage(p.Input.RiskFree)))
	}
	if c := report.Comparison; c != nil {
		b := c.Input.Behavior
		out = append(out, fmt.Sprintf("Chaotic investor: %s annual fee, contribution multiplier U[%.2f, %.2f] with timing bias %.2f x market return",
			FormatPercentage(b.AnnualFee), b.MultiplierMin, b.MultiplierMax, b.TimingBias))
		out = append(out, fmt.Sprintf("Chaotic investor: %s monthly chance of withdrawing %s-%s of the balance",
			FormatPercentage(b.WithdrawalProbability), FormatPercentage(b.WithdrawalMin), FormatPercentage(b.WithdrawalMax)))
		out = append(out, fmt.Sprintf("Guided investor: %s annual fee, fixed contribution, no withdrawals (seed %d)",
			FormatPercentage(c.Input.AnnualFee), c.Input.Seed))
	}
	return out
}
