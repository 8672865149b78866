package calculation

import (
	"math"

	"github.com/rpgo/investsim/internal/domain"
)

const monthsPerYear = 12

// AnnualToMonthlyRate returns the rate that compounded 12 times equals annual.
func AnnualToMonthlyRate(annual float64) float64 {
	return math.Pow(1+annual, 1.0/monthsPerYear) - 1
}

// MonthlyToAnnualRate is the inverse of AnnualToMonthlyRate.
func MonthlyToAnnualRate(monthly float64) float64 {
	return math.Pow(1+monthly, monthsPerYear) - 1
}

// AnnualToMonthlyVolatility scales an annual volatility by the square-root-of-time rule.
func AnnualToMonthlyVolatility(annual float64) float64 {
	return annual / math.Sqrt(monthsPerYear)
}

// NewRateSpec builds a RateSpec from an annual fraction.
func NewRateSpec(annual float64) domain.RateSpec {
	return domain.RateSpec{Annual: annual, Monthly: AnnualToMonthlyRate(annual)}
}
