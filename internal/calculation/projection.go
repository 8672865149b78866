package calculation

import (
	"math"

	"github.com/rpgo/investsim/internal/domain"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// ProjectBalances runs the compound-growth projector: for each month the
// nominal rate is optionally perturbed by a log-normal shock, the fee is
// subtracted, and the balance grows and receives the contribution.
//
// Shocks are enabled only when ShockVolatility is present and positive. The
// same seed and inputs always produce the same schedule.
func ProjectBalances(in domain.ProjectionInput) (domain.BalanceSchedule, error) {
	if in.Months < 0 {
		return nil, invalidParam("months", "must not be negative, got %d", in.Months)
	}
	if in.ShockVolatility != nil && *in.ShockVolatility < 0 {
		return nil, invalidParam("shock_volatility", "must not be negative, got %g", *in.ShockVolatility)
	}

	shocked := in.ShockVolatility != nil && *in.ShockVolatility > 0
	var shock distuv.Normal
	if shocked {
		shock = distuv.Normal{Mu: 0, Sigma: *in.ShockVolatility, Src: rand.NewSource(uint64(in.Seed))}
	}

	balance := in.InitialCapital
	schedule := make(domain.BalanceSchedule, 0, in.Months)
	for month := 1; month <= in.Months; month++ {
		rate := in.MonthlyRate
		if shocked {
			rate = (1+rate)*math.Exp(shock.Rand()) - 1
		}
		effective := rate - in.MonthlyFee
		balance = balance*(1+effective) + in.Contribution
		schedule = append(schedule, domain.BalancePoint{Month: month, Balance: balance})
	}
	return schedule, nil
}

// FutureValue is the closed-form balance after months periods of constant
// rate with an end-of-period contribution: P0(1+r)^n + c((1+r)^n - 1)/r.
func FutureValue(initial, contribution, rate float64, months int) float64 {
	if rate == 0 {
		return initial + contribution*float64(months)
	}
	growth := math.Pow(1+rate, float64(months))
	return initial*growth + contribution*(growth-1)/rate
}

// TotalContributed is the initial capital plus every scheduled contribution.
func TotalContributed(initial, contribution float64, months int) float64 {
	return initial + contribution*float64(months)
}
