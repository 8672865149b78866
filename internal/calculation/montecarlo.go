package calculation

import (
	"math"
	"runtime"
	"sync"

	"github.com/rpgo/investsim/internal/domain"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// SimulatePaths reduces the assets to one portfolio process and runs a
// geometric random walk per trial:
//
//	value[t] = value[t-1] * exp((mu_p - sigma_p²/2) + sigma_p * z)
//
// Row 0 is InitialValue for every trial. Identical inputs and seed produce an
// identical matrix regardless of how trials are scheduled.
func SimulatePaths(in domain.PathInput) (*domain.PathMatrix, error) {
	if in.Months < 0 {
		return nil, invalidParam("months", "must not be negative, got %d", in.Months)
	}
	if in.Trials < 1 {
		return nil, invalidParam("trials", "must be at least 1, got %d", in.Trials)
	}
	if in.InitialValue <= 0 {
		return nil, invalidParam("initial_value", "must be positive, got %g", in.InitialValue)
	}

	cov, err := symmetricFromRows(in.Covariance)
	if err != nil {
		return nil, err
	}
	mu, sigma, err := PortfolioMoments(in.MonthlyReturns, cov, in.Weights)
	if err != nil {
		return nil, err
	}
	return simulateGBM(mu, sigma, in.InitialValue, in.Months, in.Trials, in.Seed), nil
}

// PortfolioMoments returns the portfolio drift w·mu and volatility
// sqrt(wᵀ·Cov·w).
func PortfolioMoments(mu []float64, cov mat.Symmetric, weights []float64) (float64, float64, error) {
	n := len(mu)
	if n == 0 {
		return 0, 0, invalidParam("monthly_returns", "at least one asset is required")
	}
	if len(weights) != n {
		return 0, 0, invalidParam("weights", "got %d weights for %d assets", len(weights), n)
	}
	if cov.SymmetricDim() != n {
		return 0, 0, invalidParam("covariance", "dimension %d does not match %d assets", cov.SymmetricDim(), n)
	}
	if !IsPositiveSemiDefinite(cov) {
		return 0, 0, invalidParam("covariance", "matrix is not positive semi-definite")
	}

	w := mat.NewVecDense(n, append([]float64(nil), weights...))
	m := mat.NewVecDense(n, append([]float64(nil), mu...))
	muP := mat.Dot(w, m)
	varP := mat.Inner(w, cov, w)
	if varP < 0 {
		// rounding on singular matrices
		varP = 0
	}
	return muP, math.Sqrt(varP), nil
}

// simulateGBM fills the path matrix trial by trial. Each trial owns a
// generator seeded from a master sequence drawn before any work starts.
func simulateGBM(mu, sigma, initial float64, months, trials int, seed int64) *domain.PathMatrix {
	paths := domain.NewPathMatrix(months, trials, initial)
	drift := mu - 0.5*sigma*sigma

	master := rand.New(rand.NewSource(uint64(seed)))
	seeds := make([]uint64, trials)
	for j := range seeds {
		seeds[j] = master.Uint64()
	}

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, runtime.NumCPU()) // Limit concurrent trials

	for j := 0; j < trials; j++ {
		wg.Add(1)
		go func(trial int) {
			defer wg.Done()
			semaphore <- struct{}{}        // Acquire semaphore
			defer func() { <-semaphore }() // Release semaphore

			z := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seeds[trial])}
			for t := 1; t <= months; t++ {
				paths.Values[t][trial] = paths.Values[t-1][trial] * math.Exp(drift+sigma*z.Rand())
			}
		}(j)
	}

	wg.Wait()
	return paths
}

// SamplePaths returns up to n trial paths for plotting.
func SamplePaths(paths *domain.PathMatrix, n int) [][]float64 {
	if paths == nil || n <= 0 {
		return nil
	}
	n = min(n, paths.Trials)
	out := make([][]float64, n)
	for j := 0; j < n; j++ {
		out[j] = paths.Trial(j)
	}
	return out
}
