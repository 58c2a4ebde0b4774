// Package stationarity provides unit-root, stationarity, and randomness
// tests for univariate series.
package stationarity

import (
	"errors"
	"fmt"

	"github.com/perhult/gostats/sample"
)

// TestType selects the deterministic component of a unit-root
// regression.
type TestType string

const (
	// TypeNone fits no deterministic terms.
	TypeNone TestType = "none"
	// TypeDrift fits an intercept.
	TypeDrift TestType = "drift"
	// TypeTrend fits an intercept and a linear time trend.
	TypeTrend TestType = "trend"
)

// ParseTestType converts a string into a TestType.
func ParseTestType(s string) (TestType, error) {
	switch TestType(s) {
	case TypeNone, TypeDrift, TypeTrend:
		return TestType(s), nil
	}
	return "", fmt.Errorf("stationarity: invalid test type %q, want none, drift or trend", s)
}

var (
	// ErrSampleSize reports a series with too few observations.
	ErrSampleSize = errors.New("series is too short")
	// ErrConstantSeries reports a series whose values are all equal
	// to within 1e-10, which makes the test regressions degenerate.
	ErrConstantSeries = errors.New("series is constant")
)

// validateSeries applies the validation shared by every test: a
// minimum observation count and a non-constant series.
func validateSeries(xs []float64, minObs int) error {
	if len(xs) < minObs {
		return fmt.Errorf("stationarity: need at least %d observations, got %d: %w", minObs, len(xs), ErrSampleSize)
	}
	if sample.IsConstant(xs) {
		return ErrConstantSeries
	}
	return nil
}

// levelKey maps a supported significance level to its critical-value
// table key.
func levelKey(alpha float64) (string, error) {
	switch {
	case almostEqual(alpha, 0.01):
		return "1%", nil
	case almostEqual(alpha, 0.05):
		return "5%", nil
	case almostEqual(alpha, 0.10):
		return "10%", nil
	}
	return "", fmt.Errorf("stationarity: critical values are tabulated for alpha 0.01, 0.05 and 0.10 only, got %g", alpha)
}

func almostEqual(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

// validateAlpha rejects significance levels outside (0, 1).
func validateAlpha(alpha float64) error {
	if !(alpha > 0 && alpha < 1) {
		return fmt.Errorf("stationarity: significance level must be in (0, 1), got %g", alpha)
	}
	return nil
}
