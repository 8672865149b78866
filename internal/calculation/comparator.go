package calculation

import (
	"math"

	"github.com/rpgo/investsim/internal/domain"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// CompareScenarios runs a guided and a chaotic investor through one shared
// market scenario. Draws come from a single generator in a fixed order: all
// market shocks first, then per chaotic month the contribution multiplier,
// the withdrawal roll and, when it fires, the withdrawal fraction.
func CompareScenarios(in domain.ComparisonInput) (*domain.ScenarioComparison, error) {
	if in.Years < 0 {
		return nil, invalidParam("years", "must not be negative, got %d", in.Years)
	}
	if in.AnnualVolatility < 0 {
		return nil, invalidParam("annual_volatility", "must not be negative, got %g", in.AnnualVolatility)
	}
	if err := validateBehavior(in.Behavior); err != nil {
		return nil, err
	}

	months := in.Years * monthsPerYear
	rate := AnnualToMonthlyRate(in.AnnualReturn)
	vol := AnnualToMonthlyVolatility(in.AnnualVolatility)
	guidedFee := AnnualToMonthlyRate(in.AnnualFee)
	chaoticFee := AnnualToMonthlyRate(in.Behavior.AnnualFee)

	src := rand.NewSource(uint64(in.Seed))
	market := marketReturns(rate, vol, months, src)

	result := &domain.ScenarioComparison{
		Input:   in,
		Chaotic: make(domain.BalanceSchedule, 0, months),
		Guided:  make(domain.BalanceSchedule, 0, months),
		Market:  market,
	}

	b := in.Behavior
	multiplier := distuv.Uniform{Min: b.MultiplierMin, Max: b.MultiplierMax, Src: src}
	roll := rand.New(src)
	withdrawal := distuv.Uniform{Min: b.WithdrawalMin, Max: b.WithdrawalMax, Src: src}

	balance := in.InitialCapital
	result.ChaoticContributed = in.InitialCapital
	for m := 1; m <= months; m++ {
		r := market[m-1]
		mult := clamp(multiplier.Rand()+b.TimingBias*r, b.MultiplierMin, b.MultiplierMax)
		contribution := in.Contribution * mult

		var w float64
		if roll.Float64() < b.WithdrawalProbability {
			w = math.Min(balance*withdrawal.Rand(), balance)
			result.WithdrawalMonths++
		}

		balance = (balance-w)*(1+r-chaoticFee) + contribution
		result.ChaoticContributed += contribution
		result.ChaoticWithdrawn += w
		result.Chaotic = append(result.Chaotic, domain.BalancePoint{Month: m, Balance: balance})
	}

	balance = in.InitialCapital
	for m := 1; m <= months; m++ {
		balance = balance*(1+market[m-1]-guidedFee) + in.Contribution
		result.Guided = append(result.Guided, domain.BalancePoint{Month: m, Balance: balance})
	}

	result.ChaoticFinal = result.Chaotic.Final()
	result.GuidedFinal = result.Guided.Final()
	if months == 0 {
		result.ChaoticFinal = in.InitialCapital
		result.GuidedFinal = in.InitialCapital
	}
	result.Difference = result.GuidedFinal - result.ChaoticFinal
	result.GuidedContributed = TotalContributed(in.InitialCapital, in.Contribution, months)
	result.LeadMonth = LeadMonth(result.Guided, result.Chaotic)
	return result, nil
}

// marketReturns draws months shocks with SD vol and converts them with the
// drift-corrected growth factor exp((rate - vol²/2) + shock) - 1.
func marketReturns(rate, vol float64, months int, src rand.Source) []float64 {
	shock := distuv.Normal{Mu: 0, Sigma: vol, Src: src}
	shocks := make([]float64, months)
	for m := range shocks {
		shocks[m] = shock.Rand()
	}

	drift := rate - 0.5*vol*vol
	market := make([]float64, months)
	for m, s := range shocks {
		market[m] = math.Exp(drift+s) - 1
	}
	return market
}

func validateBehavior(b domain.ChaoticBehavior) error {
	switch {
	case b.MultiplierMin > b.MultiplierMax:
		return invalidParam("multiplier", "min %g exceeds max %g", b.MultiplierMin, b.MultiplierMax)
	case b.WithdrawalProbability < 0 || b.WithdrawalProbability > 1:
		return invalidParam("withdrawal_probability", "must be within [0, 1], got %g", b.WithdrawalProbability)
	case b.WithdrawalMin < 0 || b.WithdrawalMax > 1:
		return invalidParam("withdrawal", "fractions must be within [0, 1], got [%g, %g]", b.WithdrawalMin, b.WithdrawalMax)
	case b.WithdrawalMin > b.WithdrawalMax:
		return invalidParam("withdrawal", "min %g exceeds max %g", b.WithdrawalMin, b.WithdrawalMax)
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
