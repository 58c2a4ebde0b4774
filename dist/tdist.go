package dist

import (
	"fmt"
	"math"

	"github.com/perhult/gostats/sample"
	"github.com/perhult/gostats/specfun"
)

// TDist is a Student's t-distribution with Df degrees of freedom.
// Df may be fractional (a Welch-Satterthwaite approximation produces
// fractional degrees of freedom). A TDist is immutable and safe for
// concurrent use.
type TDist struct {
	Df float64
}

// NewTDist creates a t-distribution. The degrees of freedom must be
// strictly positive.
func NewTDist(df float64) (*TDist, error) {
	if df <= 0 || math.IsNaN(df) {
		return nil, fmt.Errorf("dist: t-distribution requires df > 0, got %g", df)
	}
	return &TDist{Df: df}, nil
}

// CDF calculates P(T <= t) via the regularized incomplete beta function
// applied to df/(df+t^2). The computation splits on the sign of t so
// that CDF(t) + CDF(-t) = 1 holds exactly.
func (d *TDist) CDF(t float64) (float64, error) {
	switch {
	case math.IsNaN(t):
		return 0, fmt.Errorf("dist: t-distribution CDF requires a real argument, got %g", t)
	case t == 0:
		return 0.5, nil
	case t < 0:
		upper, err := d.CDF(-t)
		if err != nil {
			return 0, err
		}
		return 1 - upper, nil
	case math.IsInf(t, 1):
		return 1, nil
	}
	ib, err := specfun.RegularizedIncompleteBeta(d.Df/(d.Df+t*t), d.Df/2, 0.5)
	if err != nil {
		return 0, err
	}
	return 1 - 0.5*ib, nil
}

// TwoTailedPValue calculates P(|T| > |t|).
func (d *TDist) TwoTailedPValue(t float64) (float64, error) {
	if math.IsNaN(t) {
		return 0, fmt.Errorf("dist: t-distribution p-value requires a real argument, got %g", t)
	}
	if t == 0 {
		return 1, nil
	}
	ib, err := specfun.RegularizedIncompleteBeta(d.Df/(d.Df+t*t), d.Df/2, 0.5)
	if err != nil {
		return 0, err
	}
	return ib, nil
}

// OneTailedPValueUpper calculates P(T > t).
func (d *TDist) OneTailedPValueUpper(t float64) (float64, error) {
	cdf, err := d.CDF(t)
	if err != nil {
		return 0, err
	}
	return 1 - cdf, nil
}

// OneTailedPValueLower calculates P(T < t).
func (d *TDist) OneTailedPValueLower(t float64) (float64, error) {
	return d.CDF(t)
}

// OneSampleTTest calculates the two-tailed p-value of a one-sample
// t-test of the null hypothesis that the sample mean equals mu.
func OneSampleTTest(mu float64, xs []float64) (float64, error) {
	n := len(xs)
	if n < 2 {
		return 0, ErrSampleSize
	}
	v := sample.Variance(xs)
	if v == 0 {
		return 0, ErrZeroVariance
	}
	t := (sample.Mean(xs) - mu) / math.Sqrt(v/float64(n))
	td, err := NewTDist(float64(n - 1))
	if err != nil {
		return 0, err
	}
	return td.TwoTailedPValue(t)
}

// TwoSampleTTest calculates the two-tailed p-value of Welch's
// two-sample t-test (unequal variances) of the null hypothesis that
// the two samples have equal means. The degrees of freedom follow the
// Welch-Satterthwaite approximation and are generally fractional.
func TwoSampleTTest(xs1, xs2 []float64) (float64, error) {
	n1, n2 := len(xs1), len(xs2)
	if n1 < 2 || n2 < 2 {
		return 0, ErrSampleSize
	}
	v1, v2 := sample.Variance(xs1), sample.Variance(xs2)
	if v1 == 0 && v2 == 0 {
		return 0, ErrZeroVariance
	}

	se1, se2 := v1/float64(n1), v2/float64(n2)
	t := (sample.Mean(xs1) - sample.Mean(xs2)) / math.Sqrt(se1+se2)
	df := (se1 + se2) * (se1 + se2) /
		(se1*se1/float64(n1-1) + se2*se2/float64(n2-1))

	td, err := NewTDist(df)
	if err != nil {
		return 0, err
	}
	return td.TwoTailedPValue(t)
}

// PairedTTest calculates the two-tailed p-value of a paired t-test:
// a one-sample test of the pairwise differences against zero.
func PairedTTest(xs1, xs2 []float64) (float64, error) {
	if len(xs1) != len(xs2) {
		return 0, ErrMismatchedSamples
	}
	diffs := make([]float64, len(xs1))
	for i := range xs1 {
		diffs[i] = xs1[i] - xs2[i]
	}
	return OneSampleTTest(0, diffs)
}
