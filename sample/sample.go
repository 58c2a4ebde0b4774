// Package sample provides basic operations on numeric samples.
package sample

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// constTolerance is the spread below which a sample is treated as constant.
const constTolerance = 1e-10

// Mean calculates the arithmetic mean of the sample.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return stat.Mean(xs, nil)
}

// Variance calculates the unbiased sample variance (n-1 denominator).
func Variance(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return stat.Variance(xs, nil)
}

// StdDev calculates the sample standard deviation.
func StdDev(xs []float64) float64 {
	return math.Sqrt(Variance(xs))
}

// Diff calculates the first difference of the sample.
// The result has len(xs)-1 elements.
func Diff(xs []float64) []float64 {
	if len(xs) < 2 {
		return []float64{}
	}
	result := make([]float64, len(xs)-1)
	for i := 1; i < len(xs); i++ {
		result[i-1] = xs[i] - xs[i-1]
	}
	return result
}

// Sum returns the sum of the sample values.
func Sum(xs []float64) float64 {
	return floats.Sum(xs)
}

// IsConstant reports whether all values of the sample lie within a
// 1e-10 band, which makes regression-based tests degenerate.
func IsConstant(xs []float64) bool {
	if len(xs) < 2 {
		return true
	}
	min, max := xs[0], xs[0]
	for _, v := range xs[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return max-min < constTolerance
}

// Copy creates a copy of the sample.
func Copy(xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)
	return out
}
