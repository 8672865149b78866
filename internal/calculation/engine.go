package calculation

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rpgo/investsim/internal/domain"
)

const (
	// DefaultSamplePaths is how many trial paths a portfolio result keeps for plotting.
	DefaultSamplePaths = 50
	// DefaultHistogramBins is the bin count of the terminal-value histogram.
	DefaultHistogramBins = 30
)

// RunRequest selects which components a run executes. Nil inputs are skipped.
type RunRequest struct {
	Currency   string
	Projection *domain.ProjectionInput
	Portfolio  *domain.PortfolioInput
	Comparison *domain.ComparisonInput
}

// Engine orchestrates the simulation components. The zero value is usable:
// unset fields fall back to the NewEngine defaults.
type Engine struct {
	SamplePaths   int
	HistogramBins int
	Logger        Logger
}

// NewEngine creates a new simulation engine
func NewEngine() *Engine {
	return &Engine{
		SamplePaths:   DefaultSamplePaths,
		HistogramBins: DefaultHistogramBins,
		Logger:        NopLogger{},
	}
}

func (e *Engine) logger() Logger {
	if e.Logger == nil {
		return NopLogger{}
	}
	return e.Logger
}

func (e *Engine) samplePaths() int {
	if e.SamplePaths <= 0 {
		return DefaultSamplePaths
	}
	return e.SamplePaths
}

func (e *Engine) histogramBins() int {
	if e.HistogramBins <= 0 {
		return DefaultHistogramBins
	}
	return e.HistogramBins
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// RunProjection projects a compound-growth balance schedule.
func (e *Engine) RunProjection(ctx context.Context, in domain.ProjectionInput) (*domain.ProjectionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e.logger().Debugf("projection: capital=%.2f contribution=%.2f rate=%.6f fee=%.6f months=%d seed=%d",
		in.InitialCapital, in.Contribution, in.MonthlyRate, in.MonthlyFee, in.Months, in.Seed)

	schedule, err := ProjectBalances(in)
	if err != nil {
		return nil, fmt.Errorf("compound projection: %w", err)
	}

	result := &domain.ProjectionResult{
		Input:            in,
		Schedule:         schedule,
		TotalContributed: TotalContributed(in.InitialCapital, in.Contribution, in.Months),
		FinalBalance:     schedule.Final(),
	}
	if in.Months == 0 {
		result.FinalBalance = in.InitialCapital
	}
	if in.ShockVolatility == nil || *in.ShockVolatility == 0 {
		closed := FutureValue(in.InitialCapital, in.Contribution, in.MonthlyRate-in.MonthlyFee, in.Months)
		result.ClosedFormBalance = &closed
	}

	e.logger().Infof("projection: final balance %.2f after %d months", result.FinalBalance, in.Months)
	return result, nil
}

// RunPortfolio builds the covariance, simulates the portfolio paths and
// summarizes them.
func (e *Engine) RunPortfolio(ctx context.Context, in domain.PortfolioInput) (*domain.PortfolioResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e.logger().Debugf("portfolio: assets=%d correlation=%.2f months=%d trials=%d seed=%d",
		len(in.MonthlyReturns), in.Correlation, in.Months, in.Trials, in.Seed)

	if len(in.MonthlyVolatilities) != len(in.MonthlyReturns) {
		return nil, fmt.Errorf("portfolio: %w", invalidParam("monthly_volatilities",
			"got %d volatilities for %d assets", len(in.MonthlyVolatilities), len(in.MonthlyReturns)))
	}

	cov, err := BuildCovariance(in.MonthlyVolatilities, in.Correlation)
	if err != nil {
		return nil, fmt.Errorf("portfolio covariance: %w", err)
	}
	muP, sigmaP, err := PortfolioMoments(in.MonthlyReturns, cov, in.Weights)
	if err != nil {
		return nil, fmt.Errorf("portfolio moments: %w", err)
	}

	rows := CovarianceRows(cov)
	paths, err := SimulatePaths(domain.PathInput{
		MonthlyReturns: in.MonthlyReturns,
		Covariance:     rows,
		Weights:        in.Weights,
		InitialValue:   in.InitialValue,
		Months:         in.Months,
		Trials:         in.Trials,
		Seed:           in.Seed,
	})
	if err != nil {
		return nil, fmt.Errorf("portfolio paths: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stats, err := ComputeStatistics(paths, in.RiskFree)
	if err != nil {
		return nil, fmt.Errorf("portfolio statistics: %w", err)
	}
	terminal, err := SummarizeTerminal(paths, e.histogramBins())
	if err != nil {
		return nil, fmt.Errorf("terminal summary: %w", err)
	}

	e.logger().Infof("portfolio: expected return %.4f volatility %.4f ratio %.3f",
		stats.ExpectedReturn, stats.Volatility, stats.SharpeRatio)

	return &domain.PortfolioResult{
		Input:               in,
		Covariance:          rows,
		PortfolioReturn:     muP,
		PortfolioVolatility: sigmaP,
		Paths:               paths,
		SamplePaths:         SamplePaths(paths, e.samplePaths()),
		Statistics:          stats,
		Terminal:            terminal,
	}, nil
}

// RunComparison compares the guided and chaotic investors.
func (e *Engine) RunComparison(ctx context.Context, in domain.ComparisonInput) (*domain.ScenarioComparison, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e.logger().Debugf("comparison: capital=%.2f contribution=%.2f years=%d return=%.4f vol=%.4f fee=%.4f seed=%d",
		in.InitialCapital, in.Contribution, in.Years, in.AnnualReturn, in.AnnualVolatility, in.AnnualFee, in.Seed)

	cmp, err := CompareScenarios(in)
	if err != nil {
		return nil, fmt.Errorf("scenario comparison: %w", err)
	}
	if len(cmp.Market) > 0 {
		if fee, err := BreakEvenGuidedFee(cmp); err != nil {
			e.logger().Debugf("comparison: no break-even fee: %v", err)
		} else {
			cmp.BreakEvenFee = &fee
		}
	}

	e.logger().Infof("comparison: guided %.2f chaotic %.2f difference %.2f",
		cmp.GuidedFinal, cmp.ChaoticFinal, cmp.Difference)
	return cmp, nil
}

// RunAll runs the requested components concurrently and assembles a report.
// Each component owns its generator, so the outcome does not depend on scheduling.
func (e *Engine) RunAll(ctx context.Context, req RunRequest) (*domain.SimulationReport, error) {
	report := &domain.SimulationReport{
		RunID:       uuid.NewString(),
		GeneratedAt: nowFunc(),
		Currency:    req.Currency,
	}
	if req.Portfolio != nil {
		report.RiskFree = req.Portfolio.RiskFree
	}
	e.logger().Infof("run %s started", report.RunID)

	// one slot per component keeps the joined error order stable
	var wg sync.WaitGroup
	errs := make([]error, 3)

	if req.Projection != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := e.RunProjection(ctx, *req.Projection)
			if err != nil {
				errs[0] = err
				return
			}
			report.Projection = res
		}()
	}
	if req.Portfolio != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := e.RunPortfolio(ctx, *req.Portfolio)
			if err != nil {
				errs[1] = err
				return
			}
			report.Portfolio = res
		}()
	}
	if req.Comparison != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := e.RunComparison(ctx, *req.Comparison)
			if err != nil {
				errs[2] = err
				return
			}
			report.Comparison = res
		}()
	}

	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		e.logger().Errorf("run %s failed: %v", report.RunID, err)
		return nil, err
	}
	e.logger().Infof("run %s completed", report.RunID)
	return report, nil
}
