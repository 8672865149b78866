package calculation

import (
	"fmt"

	"github.com/rpgo/investsim/internal/domain"
)

// LeadMonth returns the first month from which the guided balance stays at or
// above the chaotic balance until the horizon. It returns 0 when guided ends
// behind or the schedules are empty or of different lengths.
func LeadMonth(guided, chaotic domain.BalanceSchedule) int {
	if len(guided) == 0 || len(guided) != len(chaotic) {
		return 0
	}
	lead := 0
	for i := len(guided) - 1; i >= 0; i-- {
		if guided[i].Balance < chaotic[i].Balance {
			break
		}
		lead = guided[i].Month
	}
	return lead
}

// BreakEvenGuidedFee finds the annual guided fee at which the guided investor
// would finish level with the chaotic one on the same market series.
func BreakEvenGuidedFee(cmp *domain.ScenarioComparison) (float64, error) {
	if cmp == nil || len(cmp.Market) == 0 {
		return 0, fmt.Errorf("break-even fee requires a non-empty comparison")
	}
	target := cmp.ChaoticFinal

	guidedFinal := func(annualFee float64) float64 {
		fee := AnnualToMonthlyRate(annualFee)
		balance := cmp.Input.InitialCapital
		for _, r := range cmp.Market {
			balance = balance*(1+r-fee) + cmp.Input.Contribution
		}
		return balance
	}

	// Binary search for the fee
	minFee := 0.0
	maxFee := 1.0     // 100% p.a.
	tolerance := 0.01 // Within one cent
	maxIterations := 100

	if guidedFinal(minFee) < target {
		return 0, fmt.Errorf("guided path trails chaotic even without fees")
	}
	if guidedFinal(maxFee) > target {
		return 0, fmt.Errorf("no fee up to %.0f%% brings guided level with chaotic", maxFee*100)
	}

	for i := 0; i < maxIterations; i++ {
		testFee := (minFee + maxFee) / 2
		diff := guidedFinal(testFee) - target

		if diff > -tolerance && diff < tolerance {
			return testFee, nil
		}
		if diff > 0 {
			// Guided still ahead, fee can go higher
			minFee = testFee
		} else {
			maxFee = testFee
		}
		if maxFee-minFee < 1e-12 {
			break
		}
	}

	return (minFee + maxFee) / 2, nil
}
