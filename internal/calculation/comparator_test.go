package calculation

import (
	"errors"
	"math"
	"testing"

	"github.com/rpgo/investsim/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func referenceComparison(seed int64) domain.ComparisonInput {
	return domain.ComparisonInput{
		InitialCapital:   2000,
		Contribution:     300,
		Years:            8,
		AnnualReturn:     0.09,
		AnnualVolatility: 0.18,
		AnnualFee:        0.003,
		Seed:             seed,
		Behavior:         domain.DefaultChaoticBehavior(),
	}
}

func TestCompareScenarios_Shape(t *testing.T) {
	cmp, err := CompareScenarios(referenceComparison(777))
	require.NoError(t, err)

	require.Len(t, cmp.Chaotic, 96)
	require.Len(t, cmp.Guided, 96)
	require.Len(t, cmp.Market, 96)
	for i := range cmp.Guided {
		assert.Equal(t, i+1, cmp.Guided[i].Month)
		assert.Equal(t, i+1, cmp.Chaotic[i].Month)
	}
	assert.Equal(t, cmp.Guided.Final(), cmp.GuidedFinal)
	assert.Equal(t, cmp.Chaotic.Final(), cmp.ChaoticFinal)
	assert.Equal(t, cmp.GuidedFinal-cmp.ChaoticFinal, cmp.Difference)
	assert.Equal(t, 2000.0+300*96, cmp.GuidedContributed)
	assert.GreaterOrEqual(t, cmp.ChaoticWithdrawn, 0.0)
}

// rebuildChaotic replays the default chaotic investor from the raw generator:
// market shocks first, then per month the multiplier draw, the withdrawal
// roll and, when it fires, the withdrawal fraction.
func rebuildChaotic(in domain.ComparisonInput) (balances []float64, withdrawals int) {
	months := in.Years * 12
	rate := AnnualToMonthlyRate(in.AnnualReturn)
	vol := AnnualToMonthlyVolatility(in.AnnualVolatility)
	fee := AnnualToMonthlyRate(0.02)

	rng := rand.New(rand.NewSource(uint64(in.Seed)))
	market := make([]float64, months)
	for m := range market {
		market[m] = rng.NormFloat64() * vol
	}
	for m := range market {
		market[m] = math.Exp(rate-0.5*vol*vol+market[m]) - 1
	}

	balance := in.InitialCapital
	for _, r := range market {
		mult := rng.Float64()*1.5 - 0.5*r
		mult = math.Max(0, math.Min(1.5, mult))

		var w float64
		if rng.Float64() < 0.08 {
			w = math.Min(balance*(0.01+rng.Float64()*0.04), balance)
			withdrawals++
		}
		balance = (balance-w)*(1+r-fee) + in.Contribution*mult
		balances = append(balances, balance)
	}
	return balances, withdrawals
}

func TestCompareScenarios_ChaoticMatchesReferenceModel(t *testing.T) {
	for _, seed := range []int64{7, 42, 777} {
		in := referenceComparison(seed)
		cmp, err := CompareScenarios(in)
		require.NoError(t, err)

		want, withdrawals := rebuildChaotic(in)
		got := cmp.Chaotic.Balances()
		require.Len(t, got, len(want))
		for m := range want {
			assert.InDelta(t, want[m], got[m], 1e-6*math.Max(1, math.Abs(want[m])), "seed %d month %d", seed, m+1)
		}
		assert.Equal(t, withdrawals, cmp.WithdrawalMonths, "seed %d", seed)
	}
}

// impliedContributions backs the monthly contribution out of a chaotic
// schedule that never withdraws.
func impliedContributions(cmp *domain.ScenarioComparison, fee float64) []float64 {
	out := make([]float64, len(cmp.Chaotic))
	prev := cmp.Input.InitialCapital
	for m, r := range cmp.Market {
		out[m] = cmp.Chaotic[m].Balance - prev*(1+r-fee)
		prev = cmp.Chaotic[m].Balance
	}
	return out
}

func TestCompareScenarios_TimingBiasLeansAgainstMarket(t *testing.T) {
	in := referenceComparison(21)
	// a range wide enough that the clamp never binds
	in.Behavior = domain.ChaoticBehavior{
		AnnualFee:     in.AnnualFee,
		MultiplierMin: -1e6,
		MultiplierMax: 1e6,
	}
	unbiased, err := CompareScenarios(in)
	require.NoError(t, err)

	in.Behavior.TimingBias = -0.5
	biased, err := CompareScenarios(in)
	require.NoError(t, err)

	var marketSum float64
	for _, r := range biased.Market {
		marketSum += r
	}
	gap := biased.ChaoticContributed - unbiased.ChaoticContributed
	assert.InDelta(t, -0.5*in.Contribution*marketSum, gap, 1e-3)
}

func TestCompareScenarios_MultiplierIsClamped(t *testing.T) {
	in := referenceComparison(9)
	in.Behavior = domain.ChaoticBehavior{
		AnnualFee:     in.AnnualFee,
		MultiplierMin: 0,
		MultiplierMax: 1.5,
		TimingBias:    -1000,
	}
	cmp, err := CompareScenarios(in)
	require.NoError(t, err)

	contributions := impliedContributions(cmp, AnnualToMonthlyRate(in.AnnualFee))
	for m, r := range cmp.Market {
		c := contributions[m]
		switch {
		case r > 0.002:
			assert.InDelta(t, 0, c, 1e-6, "month %d", m+1)
		case r < -0.002:
			assert.InDelta(t, 1.5*in.Contribution, c, 1e-6, "month %d", m+1)
		default:
			assert.True(t, c >= -1e-6 && c <= 1.5*in.Contribution+1e-6, "month %d: %g", m+1, c)
		}
	}
}

func TestCompareScenarios_Deterministic(t *testing.T) {
	first, err := CompareScenarios(referenceComparison(777))
	require.NoError(t, err)
	second, err := CompareScenarios(referenceComparison(777))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCompareScenarios_GuidedFollowsSharedMarket(t *testing.T) {
	in := referenceComparison(11)
	cmp, err := CompareScenarios(in)
	require.NoError(t, err)

	fee := AnnualToMonthlyRate(in.AnnualFee)
	balance := in.InitialCapital
	for m, r := range cmp.Market {
		balance = balance*(1+r-fee) + in.Contribution
		assert.Equal(t, balance, cmp.Guided[m].Balance)
	}
}

func TestCompareScenarios_MarketDoesNotDependOnBehavior(t *testing.T) {
	in := referenceComparison(5)
	base, err := CompareScenarios(in)
	require.NoError(t, err)

	in.Behavior.WithdrawalProbability = 0.5
	in.Behavior.MultiplierMax = 3
	changed, err := CompareScenarios(in)
	require.NoError(t, err)

	assert.Equal(t, base.Market, changed.Market)
	assert.Equal(t, base.Guided, changed.Guided)
}

func TestCompareScenarios_DisabledBehaviorMatchesGuided(t *testing.T) {
	for _, seed := range []int64{1, 42, 777} {
		in := referenceComparison(seed)
		in.Behavior = domain.ChaoticBehavior{
			AnnualFee:     in.AnnualFee,
			MultiplierMin: 1,
			MultiplierMax: 1,
		}
		cmp, err := CompareScenarios(in)
		require.NoError(t, err)

		assert.Equal(t, cmp.Guided.Balances(), cmp.Chaotic.Balances(), "seed %d", seed)
		assert.Zero(t, cmp.WithdrawalMonths)
		assert.Zero(t, cmp.Difference)
	}
}

func TestCompareScenarios_GuidedDominatesInAggregate(t *testing.T) {
	const runs = 200
	wins := 0
	var totalDiff float64
	for seed := int64(0); seed < runs; seed++ {
		cmp, err := CompareScenarios(referenceComparison(seed))
		require.NoError(t, err)
		if cmp.GuidedFinal > cmp.ChaoticFinal {
			wins++
		}
		totalDiff += cmp.Difference
	}
	assert.GreaterOrEqual(t, wins, runs*9/10)
	assert.Greater(t, totalDiff/runs, 0.0)
}

func TestCompareScenarios_WithdrawalsNeverExceedBalance(t *testing.T) {
	in := referenceComparison(3)
	in.InitialCapital = 100
	in.Contribution = 0
	in.Behavior.WithdrawalProbability = 1
	in.Behavior.WithdrawalMin = 1
	in.Behavior.WithdrawalMax = 1
	cmp, err := CompareScenarios(in)
	require.NoError(t, err)

	// the whole balance leaves in month one and nothing comes back
	assert.Equal(t, 96, cmp.WithdrawalMonths)
	assert.InDelta(t, 100, cmp.ChaoticWithdrawn, 1e-9)
	assert.Zero(t, cmp.ChaoticFinal)
}

func TestCompareScenarios_ZeroYears(t *testing.T) {
	in := referenceComparison(1)
	in.Years = 0
	cmp, err := CompareScenarios(in)
	require.NoError(t, err)
	assert.Empty(t, cmp.Guided)
	assert.Empty(t, cmp.Chaotic)
	assert.Equal(t, in.InitialCapital, cmp.GuidedFinal)
	assert.Equal(t, in.InitialCapital, cmp.ChaoticFinal)
	assert.Zero(t, cmp.LeadMonth)
}

func TestCompareScenarios_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.ComparisonInput)
	}{
		{"negative years", func(in *domain.ComparisonInput) { in.Years = -1 }},
		{"negative volatility", func(in *domain.ComparisonInput) { in.AnnualVolatility = -0.1 }},
		{"probability above one", func(in *domain.ComparisonInput) { in.Behavior.WithdrawalProbability = 1.5 }},
		{"multiplier range inverted", func(in *domain.ComparisonInput) { in.Behavior.MultiplierMin = 2 }},
		{"withdrawal range inverted", func(in *domain.ComparisonInput) { in.Behavior.WithdrawalMin = 0.1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := referenceComparison(1)
			tt.mutate(&in)
			_, err := CompareScenarios(in)
			assert.True(t, errors.Is(err, ErrInvalidParameter), "got %v", err)
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, clamp(-0.2, 0, 1.5))
	assert.Equal(t, 1.5, clamp(1.7, 0, 1.5))
	assert.Equal(t, 0.7, clamp(0.7, 0, 1.5))
}
