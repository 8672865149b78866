package domain

// ProjectionInput parameterizes the compound-growth projector.
// Rates are monthly fractions.
type ProjectionInput struct {
	InitialCapital float64 `json:"initial_capital"`
	Contribution   float64 `json:"contribution"`
	MonthlyRate    float64 `json:"monthly_rate"`
	Months         int     `json:"months"`
	MonthlyFee     float64 `json:"monthly_fee"`
	// ShockVolatility is the monthly log-normal shock SD. Nil disables shocks.
	ShockVolatility *float64 `json:"shock_volatility,omitempty"`
	Seed            int64    `json:"seed"`
}

// PathInput parameterizes the geometric random walk of a weighted portfolio.
// Returns and covariance are monthly.
type PathInput struct {
	MonthlyReturns []float64   `json:"monthly_returns"`
	Covariance     [][]float64 `json:"covariance"`
	Weights        []float64   `json:"weights"`
	InitialValue   float64     `json:"initial_value"`
	Months         int         `json:"months"`
	Trials         int         `json:"trials"`
	Seed           int64       `json:"seed"`
}

// PortfolioInput is the boundary-converted portfolio tab: annual asset
// assumptions plus their monthly equivalents and normalized weights.
type PortfolioInput struct {
	Assets              []AssetAssumption `json:"assets"`
	MonthlyReturns      []float64         `json:"monthly_returns"`
	MonthlyVolatilities []float64         `json:"monthly_volatilities"`
	Weights             []float64         `json:"weights"`
	Correlation         float64           `json:"correlation"`
	InitialValue        float64           `json:"initial_value"`
	Months              int               `json:"months"`
	Trials              int               `json:"trials"`
	RiskFree            float64           `json:"risk_free"` // annual fraction
	Seed                int64             `json:"seed"`
}

// ChaoticBehavior holds the knobs of the undisciplined investor.
// DefaultChaoticBehavior reproduces the reference model.
type ChaoticBehavior struct {
	AnnualFee             float64 `json:"annual_fee"`
	MultiplierMin         float64 `json:"multiplier_min"`
	MultiplierMax         float64 `json:"multiplier_max"`
	TimingBias            float64 `json:"timing_bias"` // coefficient applied to the month's market return
	WithdrawalProbability float64 `json:"withdrawal_probability"`
	WithdrawalMin         float64 `json:"withdrawal_min"` // fraction of balance
	WithdrawalMax         float64 `json:"withdrawal_max"`
}

// DefaultChaoticBehavior returns the reference chaotic investor: 2% annual fee,
// contribution multiplier U[0, 1.5] biased by -0.5 x market return, and an 8%
// monthly chance of withdrawing 1%-5% of the balance.
func DefaultChaoticBehavior() ChaoticBehavior {
	return ChaoticBehavior{
		AnnualFee:             0.02,
		MultiplierMin:         0.0,
		MultiplierMax:         1.5,
		TimingBias:            -0.5,
		WithdrawalProbability: 0.08,
		WithdrawalMin:         0.01,
		WithdrawalMax:         0.05,
	}
}

// ComparisonInput parameterizes the guided vs chaotic comparison.
// Rates are annual fractions; the comparator converts them to monthly terms.
type ComparisonInput struct {
	InitialCapital   float64         `json:"initial_capital"`
	Contribution     float64         `json:"contribution"`
	Years            int             `json:"years"`
	AnnualReturn     float64         `json:"annual_return"`
	AnnualVolatility float64         `json:"annual_volatility"`
	AnnualFee        float64         `json:"annual_fee"`
	Seed             int64           `json:"seed"`
	Behavior         ChaoticBehavior `json:"behavior"`
}
