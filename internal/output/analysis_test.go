package output

import (
	"testing"

	"github.com/rpgo/investsim/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAnalyzeComparison(t *testing.T) {
	fee := 0.031
	cmp := &domain.ScenarioComparison{
		GuidedFinal:        150,
		ChaoticFinal:       100,
		Difference:         50,
		GuidedContributed:  1000,
		ChaoticContributed: 800,
		ChaoticWithdrawn:   40,
		WithdrawalMonths:   3,
		LeadMonth:          4,
		BreakEvenFee:       &fee,
	}

	insight := AnalyzeComparison(cmp)
	assert.Equal(t, "guided", insight.Winner)
	assert.Equal(t, 0.5, insight.DifferencePercent)
	assert.Equal(t, 200.0, insight.ContributionGap)
	assert.Equal(t, 40.0, insight.Withdrawn)
	assert.Equal(t, 3, insight.WithdrawalMonths)
	assert.Equal(t, 4, insight.LeadMonth)
	assert.Equal(t, &fee, insight.BreakEvenFee)
}

func TestAnalyzeComparison_Winners(t *testing.T) {
	assert.Equal(t, "chaotic", AnalyzeComparison(&domain.ScenarioComparison{Difference: -1, ChaoticFinal: 10}).Winner)
	assert.Equal(t, "tie", AnalyzeComparison(&domain.ScenarioComparison{}).Winner)
	assert.Equal(t, ComparisonInsight{}, AnalyzeComparison(nil))
}

func TestRiskLevel(t *testing.T) {
	assert.Equal(t, "Low", RiskLevel(0.02))
	assert.Equal(t, "Moderate", RiskLevel(0.10))
	assert.Equal(t, "High", RiskLevel(0.2))
	assert.Equal(t, "Very High", RiskLevel(0.4))
}

func TestTotalComparison(t *testing.T) {
	cmp := &domain.ScenarioComparison{
		GuidedFinal:        100.004,
		ChaoticFinal:       50.006,
		Difference:         49.998,
		GuidedContributed:  80,
		ChaoticContributed: 70.5,
		ChaoticWithdrawn:   10.25,
	}

	totals := TotalComparison(cmp, "USD")
	assert.Equal(t, "100.00", totals.GuidedFinal.String())
	assert.Equal(t, "50.01", totals.ChaoticFinal.String())
	// agrees with the two rounded rows, not with the raw float difference
	assert.Equal(t, "49.99", totals.Difference.String())
	assert.Equal(t, "60.25", totals.ChaoticNetInvested.String())
	assert.Equal(t, "-10.24", totals.ChaoticGain.String())
	assert.Equal(t, "20.00", totals.GuidedGain.String())
	assert.Equal(t, "$49.99", totals.Difference.Format())

	assert.Equal(t, ComparisonTotals{}, TotalComparison(nil, "USD"))
}

func TestProjectionGain(t *testing.T) {
	p := &domain.ProjectionResult{TotalContributed: 1300, FinalBalance: 1333.314}
	assert.Equal(t, "33.31", ProjectionGain(p, "BRL").String())
}
