package calculation

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// psdTolerance absorbs rounding in the eigenvalues of singular matrices.
const psdTolerance = 1e-12

// BuildCovariance constructs diag(vol) · R · diag(vol), where R carries 1 on
// the diagonal and the uniform pairwise correlation elsewhere. A single asset
// yields the 1x1 variance matrix. Correlation is not range-checked here;
// callers reject values outside [-1, 1].
func BuildCovariance(vols []float64, correlation float64) (*mat.SymDense, error) {
	n := len(vols)
	if n == 0 {
		return nil, invalidParam("volatilities", "at least one asset is required")
	}
	for i, v := range vols {
		if v < 0 || math.IsNaN(v) {
			return nil, invalidParam("volatilities", "asset %d has invalid volatility %g", i, v)
		}
	}
	if n == 1 {
		return mat.NewSymDense(1, []float64{vols[0] * vols[0]}), nil
	}

	corr := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if i == j {
				corr.SetSym(i, j, 1.0)
			} else {
				corr.SetSym(i, j, correlation)
			}
		}
	}

	diag := mat.NewDiagDense(n, append([]float64(nil), vols...))
	var left, full mat.Dense
	left.Mul(diag, corr)
	full.Mul(&left, diag)

	cov := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			cov.SetSym(i, j, full.At(i, j))
		}
	}
	return cov, nil
}

// IsPositiveSemiDefinite reports whether every eigenvalue of m is non-negative
// within tolerance.
func IsPositiveSemiDefinite(m mat.Symmetric) bool {
	var eig mat.EigenSym
	if ok := eig.Factorize(m, false); !ok {
		return false
	}
	values := eig.Values(nil)
	scale := 1.0
	for _, v := range values {
		scale = math.Max(scale, math.Abs(v))
	}
	for _, v := range values {
		if v < -psdTolerance*scale {
			return false
		}
	}
	return true
}

// CovarianceRows copies a symmetric matrix into row slices.
func CovarianceRows(m mat.Symmetric) [][]float64 {
	n := m.SymmetricDim()
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			rows[i][j] = m.At(i, j)
		}
	}
	return rows
}

// symmetricFromRows validates a square symmetric row matrix and wraps it.
func symmetricFromRows(rows [][]float64) (*mat.SymDense, error) {
	n := len(rows)
	if n == 0 {
		return nil, invalidParam("covariance", "matrix is empty")
	}
	data := make([]float64, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, invalidParam("covariance", "row %d has %d columns, want %d", i, len(row), n)
		}
		data = append(data, row...)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(rows[i][j]-rows[j][i]) > psdTolerance*math.Max(1, math.Abs(rows[i][j])) {
				return nil, invalidParam("covariance", "matrix is not symmetric at (%d,%d)", i, j)
			}
		}
	}
	return mat.NewSymDense(n, data), nil
}
