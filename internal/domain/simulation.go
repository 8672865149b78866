package domain

// RateSpec pairs an annual rate with its monthly-equivalent rate.
// Both are fractions (0.10 for 10%), never whole-number percents.
type RateSpec struct {
	Annual  float64 `json:"annual"`
	Monthly float64 `json:"monthly"`
}

// AssetAssumption describes one asset of a simulated portfolio.
// Name is a label only.
type AssetAssumption struct {
	Name           string  `json:"name"`
	ExpectedReturn float64 `json:"expected_return"` // annual, fraction
	Volatility     float64 `json:"volatility"`      // annual, fraction
	Weight         float64 `json:"weight"`
}

// BalancePoint is a single (month, balance) entry of a schedule.
type BalancePoint struct {
	Month   int     `json:"month"`
	Balance float64 `json:"balance"`
}

// BalanceSchedule is an ordered month-by-month balance table starting at month 1.
type BalanceSchedule []BalancePoint

// Final returns the balance of the last month, or zero for an empty schedule.
func (s BalanceSchedule) Final() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].Balance
}

// Balances returns the balances in month order.
func (s BalanceSchedule) Balances() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Balance
	}
	return out
}

// PathMatrix holds simulated portfolio values indexed by (month, trial).
// Row 0 is the initial value for every trial.
type PathMatrix struct {
	Months int         `json:"months"`
	Trials int         `json:"trials"`
	Values [][]float64 `json:"values"`
}

// NewPathMatrix allocates a (months+1) x trials matrix with row 0 set to initial.
func NewPathMatrix(months, trials int, initial float64) *PathMatrix {
	values := make([][]float64, months+1)
	for t := range values {
		values[t] = make([]float64, trials)
	}
	for j := 0; j < trials; j++ {
		values[0][j] = initial
	}
	return &PathMatrix{Months: months, Trials: trials, Values: values}
}

// At returns the value of trial j at month t.
func (p *PathMatrix) At(t, j int) float64 { return p.Values[t][j] }

// Trial returns a copy of the path of trial j across all months.
func (p *PathMatrix) Trial(j int) []float64 {
	out := make([]float64, p.Months+1)
	for t := 0; t <= p.Months; t++ {
		out[t] = p.Values[t][j]
	}
	return out
}

// Terminal returns a copy of the final-month values of every trial.
func (p *PathMatrix) Terminal() []float64 {
	return append([]float64(nil), p.Values[p.Months]...)
}

// PortfolioStatistics are the annualized figures derived from a PathMatrix.
type PortfolioStatistics struct {
	ExpectedReturn float64 `json:"expected_return"`
	Volatility     float64 `json:"volatility"`
	SharpeRatio    float64 `json:"sharpe_ratio"`
}

// PercentileRanges represents percentile ranges of terminal path values
type PercentileRanges struct {
	P10 float64 `json:"p10"`
	P25 float64 `json:"p25"`
	P50 float64 `json:"p50"`
	P75 float64 `json:"p75"`
	P90 float64 `json:"p90"`
}

// HistogramBin counts terminal values falling in [Lower, Upper).
// The last bin is closed on the right.
type HistogramBin struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// TerminalSummary describes the distribution of final path values.
type TerminalSummary struct {
	Mean        float64          `json:"mean"`
	Min         float64          `json:"min"`
	Max         float64          `json:"max"`
	Percentiles PercentileRanges `json:"percentiles"`
	Histogram   []HistogramBin   `json:"histogram"`
}
