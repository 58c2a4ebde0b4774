package stationarity

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// A TurningPointResult is the result of a turning-point randomness
// test. The null hypothesis is that the series is independent and
// identically distributed.
type TurningPointResult struct {
	// Statistic is the normal-approximation z score of the observed
	// turning-point count.
	Statistic float64

	// PValue is the two-sided p-value of the z score.
	PValue float64

	// TurningPoints is the observed number of strict local maxima
	// and minima.
	TurningPoints int

	// Expected is the count expected under randomness, 2(n-2)/3.
	Expected float64

	// Variance is the asymptotic variance (16n-29)/90.
	Variance float64

	// NObs is the series length.
	NObs int
}

// TurningPoint counts the strict local maxima and minima of the series
// (ties produce neither) and compares the count to its asymptotic
// distribution under randomness with a two-sided normal z-test.
// Requires at least 3 observations and a non-constant series.
func TurningPoint(xs []float64) (*TurningPointResult, error) {
	if err := validateSeries(xs, 3); err != nil {
		return nil, err
	}

	n := len(xs)
	count := 0
	for i := 1; i < n-1; i++ {
		peak := xs[i] > xs[i-1] && xs[i] > xs[i+1]
		trough := xs[i] < xs[i-1] && xs[i] < xs[i+1]
		if peak || trough {
			count++
		}
	}

	expected := 2 * float64(n-2) / 3
	variance := (16*float64(n) - 29) / 90

	z := (float64(count) - expected) / math.Sqrt(variance)
	cdf := distuv.UnitNormal.CDF(z)
	p := 2 * math.Min(cdf, 1-cdf)

	return &TurningPointResult{
		Statistic:     z,
		PValue:        p,
		TurningPoints: count,
		Expected:      expected,
		Variance:      variance,
		NObs:          n,
	}, nil
}

// Evaluate reports whether the randomness null hypothesis is rejected
// at the given significance level.
func (r *TurningPointResult) Evaluate(alpha float64) (bool, error) {
	if err := validateAlpha(alpha); err != nil {
		return false, err
	}
	return r.PValue < alpha, nil
}

// Interpret renders a narrative verdict at the given significance level.
func (r *TurningPointResult) Interpret(alpha float64) string {
	reject, err := r.Evaluate(alpha)
	if err != nil {
		return err.Error()
	}
	if reject {
		return fmt.Sprintf("%d turning points observed, %.1f expected (z = %.4f, p = %.4g): reject randomness at the %g level",
			r.TurningPoints, r.Expected, r.Statistic, r.PValue, alpha)
	}
	return fmt.Sprintf("%d turning points observed, %.1f expected (z = %.4f, p = %.4g): consistent with randomness at the %g level",
		r.TurningPoints, r.Expected, r.Statistic, r.PValue, alpha)
}

func (r *TurningPointResult) String() string {
	return fmt.Sprintf("turning point: count=%d expected=%.4g z=%.6g p=%.6g n=%d", r.TurningPoints, r.Expected, r.Statistic, r.PValue, r.NObs)
}
