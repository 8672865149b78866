package output

import (
	"github.com/rpgo/investsim/internal/domain"
	"github.com/rpgo/investsim/pkg/money"
)

// ComparisonInsight summarizes what undisciplined behavior cost in a comparison.
type ComparisonInsight struct {
	Winner            string  // "guided", "chaotic" or "tie"
	Difference        float64 // guided - chaotic
	DifferencePercent float64 // relative to the chaotic final balance, fraction
	ContributionGap   float64 // guided contributions - chaotic contributions
	Withdrawn         float64
	WithdrawalMonths  int
	LeadMonth         int
	BreakEvenFee      *float64
}

// AnalyzeComparison derives the headline figures of a guided vs chaotic run.
// Extracted from the formatters for testability.
func AnalyzeComparison(cmp *domain.ScenarioComparison) ComparisonInsight {
	if cmp == nil {
		return ComparisonInsight{}
	}
	insight := ComparisonInsight{
		Difference:       cmp.Difference,
		ContributionGap:  cmp.GuidedContributed - cmp.ChaoticContributed,
		Withdrawn:        cmp.ChaoticWithdrawn,
		WithdrawalMonths: cmp.WithdrawalMonths,
		LeadMonth:        cmp.LeadMonth,
		BreakEvenFee:     cmp.BreakEvenFee,
	}
	switch {
	case cmp.Difference > 0:
		insight.Winner = "guided"
	case cmp.Difference < 0:
		insight.Winner = "chaotic"
	default:
		insight.Winner = "tie"
	}
	if cmp.ChaoticFinal != 0 {
		insight.DifferencePercent = cmp.Difference / cmp.ChaoticFinal
	}
	return insight
}

// ComparisonTotals are the money figures of a comparison. Each balance is
// rounded to the minor unit before any arithmetic, so a derived row always
// equals the difference of the rows printed above it.
type ComparisonTotals struct {
	ChaoticFinal       money.Money
	GuidedFinal        money.Money
	Difference         money.Money // guided - chaotic
	ChaoticContributed money.Money
	GuidedContributed  money.Money
	Withdrawn          money.Money
	ChaoticNetInvested money.Money // contributed - withdrawn
	ChaoticGain        money.Money // final - net invested
	GuidedGain         money.Money
}

// TotalComparison rounds the comparison balances into currency amounts.
func TotalComparison(cmp *domain.ScenarioComparison, currency string) ComparisonTotals {
	if cmp == nil {
		return ComparisonTotals{}
	}
	amount := func(v float64) money.Money { return money.New(v, currency).Round() }
	t := ComparisonTotals{
		ChaoticFinal:       amount(cmp.ChaoticFinal),
		GuidedFinal:        amount(cmp.GuidedFinal),
		ChaoticContributed: amount(cmp.ChaoticContributed),
		GuidedContributed:  amount(cmp.GuidedContributed),
		Withdrawn:          amount(cmp.ChaoticWithdrawn),
	}
	t.Difference = t.GuidedFinal.Sub(t.ChaoticFinal)
	t.ChaoticNetInvested = t.ChaoticContributed.Sub(t.Withdrawn)
	t.ChaoticGain = t.ChaoticFinal.Add(t.Withdrawn).Sub(t.ChaoticContributed)
	t.GuidedGain = t.GuidedFinal.Sub(t.GuidedContributed)
	return t
}

// ProjectionGain is the final balance minus everything contributed, in
// rounded currency amounts.
func ProjectionGain(p *domain.ProjectionResult, currency string) money.Money {
	final := money.New(p.FinalBalance, currency).Round()
	return final.Sub(money.New(p.TotalContributed, currency).Round())
}

// RiskLevel classifies an annualized volatility for display.
func RiskLevel(volatility float64) string {
	switch {
	case volatility < 0.05:
		return "Low"
	case volatility < 0.15:
		return "Moderate"
	case volatility < 0.25:
		return "High"
	default:
		return "Very High"
	}
}
