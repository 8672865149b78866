package config

import (
	"github.com/rpgo/investsim/internal/calculation"
	"github.com/rpgo/investsim/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Fraction converts a whole-number percent (10 for 10%) to a fraction.
// Decimal division keeps 0.3% at exactly 0.003 before it becomes a float.
func Fraction(percent float64) float64 {
	return decimal.NewFromFloat(percent).Div(hundred).InexactFloat64()
}

// ProjectionInput converts the compound section. The shock is present only
// when the annual volatility is positive.
func ProjectionInput(c *domain.CompoundSettings) domain.ProjectionInput {
	in := domain.ProjectionInput{
		InitialCapital: c.InitialCapital,
		Contribution:   c.MonthlyContribution,
		MonthlyRate:    calculation.AnnualToMonthlyRate(Fraction(c.RatePercent)),
		Months:         c.Years * 12,
		MonthlyFee:     calculation.AnnualToMonthlyRate(Fraction(c.FeePercent)),
		Seed:           c.Seed,
	}
	if c.VolatilityPercent > 0 {
		shock := calculation.AnnualToMonthlyVolatility(Fraction(c.VolatilityPercent))
		in.ShockVolatility = &shock
	}
	return in
}

// PortfolioInput converts the portfolio section. riskFreePercent comes from
// the general settings.
func PortfolioInput(p *domain.PortfolioSettings, riskFreePercent float64) domain.PortfolioInput {
	n := len(p.Assets)
	in := domain.PortfolioInput{
		Assets:              make([]domain.AssetAssumption, n),
		MonthlyReturns:      make([]float64, n),
		MonthlyVolatilities: make([]float64, n),
		Correlation:         p.Correlation,
		InitialValue:        p.InitialValue,
		Months:              p.Years * 12,
		Trials:              p.Trials,
		RiskFree:            Fraction(riskFreePercent),
		Seed:                p.Seed,
	}

	raw := make([]float64, n)
	for i, a := range p.Assets {
		ret := Fraction(a.ReturnPercent)
		vol := Fraction(a.VolatilityPercent)
		in.MonthlyReturns[i] = calculation.AnnualToMonthlyRate(ret)
		in.MonthlyVolatilities[i] = calculation.AnnualToMonthlyVolatility(vol)
		raw[i] = a.Weight
		in.Assets[i] = domain.AssetAssumption{Name: a.Name, ExpectedReturn: ret, Volatility: vol}
	}

	in.Weights = calculation.NormalizeWeights(raw)
	for i := range in.Assets {
		in.Assets[i].Weight = in.Weights[i]
	}
	return in
}

// ChaoticBehavior applies the overrides of s to the default chaotic investor.
// A nil s yields the defaults.
func ChaoticBehavior(s *domain.ChaoticSettings) domain.ChaoticBehavior {
	b := domain.DefaultChaoticBehavior()
	if s == nil {
		return b
	}
	if s.FeePercent != nil {
		b.AnnualFee = Fraction(*s.FeePercent)
	}
	if s.MultiplierMin != nil {
		b.MultiplierMin = *s.MultiplierMin
	}
	if s.MultiplierMax != nil {
		b.MultiplierMax = *s.MultiplierMax
	}
	if s.TimingBias != nil {
		b.TimingBias = *s.TimingBias
	}
	if s.WithdrawalProbability != nil {
		b.WithdrawalProbability = *s.WithdrawalProbability
	}
	if s.WithdrawalMinPercent != nil {
		b.WithdrawalMin = Fraction(*s.WithdrawalMinPercent)
	}
	if s.WithdrawalMaxPercent != nil {
		b.WithdrawalMax = Fraction(*s.WithdrawalMaxPercent)
	}
	return b
}

// ComparisonInput converts the comparison section. Rates stay annual; the
// comparator derives the monthly figures itself.
func ComparisonInput(c *domain.ComparisonSettings) domain.ComparisonInput {
	return domain.ComparisonInput{
		InitialCapital:   c.InitialCapital,
		Contribution:     c.MonthlyContribution,
		Years:            c.Years,
		AnnualReturn:     Fraction(c.ReturnPercent),
		AnnualVolatility: Fraction(c.VolatilityPercent),
		AnnualFee:        Fraction(c.FeePercent),
		Seed:             c.Seed,
		Behavior:         ChaoticBehavior(c.Chaotic),
	}
}

// RunRequest converts every present section of the configuration.
func RunRequest(config *domain.Configuration) calculation.RunRequest {
	req := calculation.RunRequest{Currency: config.General.Currency}
	if config.Compound != nil {
		in := ProjectionInput(config.Compound)
		req.Projection = &in
	}
	if config.Portfolio != nil {
		in := PortfolioInput(config.Portfolio, config.General.RiskFreePercent)
		req.Portfolio = &in
	}
	if config.Comparison != nil {
		in := ComparisonInput(config.Comparison)
		req.Comparison = &in
	}
	return req
}
