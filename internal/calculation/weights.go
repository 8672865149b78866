package calculation

import "gonum.org/v1/gonum/floats"

// NormalizeWeights rescales weights to sum to one. An all-zero (zero-sum)
// vector falls back to equal weighting.
func NormalizeWeights(weights []float64) []float64 {
	out := make([]float64, len(weights))
	if len(weights) == 0 {
		return out
	}
	sum := floats.Sum(weights)
	if sum == 0 {
		for i := range out {
			out[i] = 1.0 / float64(len(weights))
		}
		return out
	}
	copy(out, weights)
	floats.Scale(1/sum, out)
	return out
}
