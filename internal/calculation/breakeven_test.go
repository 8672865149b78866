package calculation

import (
	"testing"

	"github.com/rpgo/investsim/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func schedule(balances ...float64) domain.BalanceSchedule {
	out := make(domain.BalanceSchedule, len(balances))
	for i, b := range balances {
		out[i] = domain.BalancePoint{Month: i + 1, Balance: b}
	}
	return out
}

func TestLeadMonth(t *testing.T) {
	tests := []struct {
		name     string
		guided   domain.BalanceSchedule
		chaotic  domain.BalanceSchedule
		expected int
	}{
		{"ahead from the start", schedule(10, 20, 30), schedule(5, 10, 15), 1},
		{"overtakes in month three", schedule(10, 10, 30, 40), schedule(12, 11, 15, 20), 3},
		{"loses the lead then regains it", schedule(10, 5, 30), schedule(5, 10, 15), 3},
		{"ends behind", schedule(10, 20, 10), schedule(5, 10, 15), 0},
		{"tie counts as level", schedule(10, 10), schedule(10, 10), 1},
		{"empty", nil, nil, 0},
		{"length mismatch", schedule(1, 2), schedule(1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LeadMonth(tt.guided, tt.chaotic))
		})
	}
}

func TestBreakEvenGuidedFee(t *testing.T) {
	in := referenceComparison(777)
	cmp, err := CompareScenarios(in)
	require.NoError(t, err)
	require.Greater(t, cmp.Difference, 0.0)

	fee, err := BreakEvenGuidedFee(cmp)
	require.NoError(t, err)
	assert.Greater(t, fee, in.AnnualFee)
	assert.Less(t, fee, 1.0)

	in.AnnualFee = fee
	level, err := CompareScenarios(in)
	require.NoError(t, err)
	assert.InDelta(t, level.ChaoticFinal, level.GuidedFinal, 0.05)
}

func TestBreakEvenGuidedFee_Errors(t *testing.T) {
	_, err := BreakEvenGuidedFee(nil)
	assert.Error(t, err)

	_, err = BreakEvenGuidedFee(&domain.ScenarioComparison{})
	assert.Error(t, err)

	// guided cannot catch up even without fees
	cmp := &domain.ScenarioComparison{
		Input:        domain.ComparisonInput{InitialCapital: 100, Contribution: 0},
		Market:       []float64{0, 0},
		ChaoticFinal: 1000,
	}
	_, err = BreakEvenGuidedFee(cmp)
	assert.Error(t, err)
}
