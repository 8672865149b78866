package domain

import "time"

// ProjectionResult is the outcome of the compound-growth tab.
type ProjectionResult struct {
	Input            ProjectionInput `json:"input"`
	Schedule         BalanceSchedule `json:"schedule"`
	TotalContributed float64         `json:"total_contributed"`
	FinalBalance     float64         `json:"final_balance"`
	// ClosedFormBalance is set when the run has no shocks.
	ClosedFormBalance *float64 `json:"closed_form_balance,omitempty"`
}

// PortfolioResult is the outcome of the portfolio tab.
type PortfolioResult struct {
	Input               PortfolioInput      `json:"input"`
	Covariance          [][]float64         `json:"covariance"`
	PortfolioReturn     float64             `json:"portfolio_return"`     // monthly
	PortfolioVolatility float64             `json:"portfolio_volatility"` // monthly
	Paths               *PathMatrix         `json:"-"`
	SamplePaths         [][]float64         `json:"sample_paths"`
	Statistics          PortfolioStatistics `json:"statistics"`
	Terminal            TerminalSummary     `json:"terminal"`
}

// ScenarioComparison is the outcome of the guided vs chaotic tab.
type ScenarioComparison struct {
	Input   ComparisonInput `json:"input"`
	Chaotic BalanceSchedule `json:"chaotic"`
	Guided  BalanceSchedule `json:"guided"`
	// Market is the shared monthly market-return series both paths consumed.
	Market []float64 `json:"market"`

	ChaoticFinal       float64 `json:"chaotic_final"`
	GuidedFinal        float64 `json:"guided_final"`
	Difference         float64 `json:"difference"` // guided - chaotic
	GuidedContributed  float64 `json:"guided_contributed"`
	ChaoticContributed float64 `json:"chaotic_contributed"`
	ChaoticWithdrawn   float64 `json:"chaotic_withdrawn"`
	WithdrawalMonths   int     `json:"withdrawal_months"`
	// LeadMonth is the month from which guided stays ahead, 0 if it never does.
	LeadMonth int `json:"lead_month"`
	// BreakEvenFee is the annual guided fee that would erase the guided advantage.
	BreakEvenFee *float64 `json:"break_even_fee,omitempty"`
}

// SimulationReport bundles the three tabs of one run for the output layer.
type SimulationReport struct {
	RunID       string              `json:"run_id"`
	GeneratedAt time.Time           `json:"generated_at"`
	Currency    string              `json:"currency"`
	RiskFree    float64             `json:"risk_free"`
	Assumptions []string            `json:"assumptions"`
	Projection  *ProjectionResult   `json:"projection,omitempty"`
	Portfolio   *PortfolioResult    `json:"portfolio,omitempty"`
	Comparison  *ScenarioComparison `json:"comparison,omitempty"`
}
