package htest

import (
	"fmt"
	"math"

	"github.com/perhult/gostats/dist"
	"github.com/perhult/gostats/sample"
)

// A TTestResult is the result of a t-test. It is immutable once
// constructed.
type TTestResult struct {
	// N1 and N2 are the sizes of the input samples. For a one-sample
	// test N2 is 0.
	N1, N2 int

	// T is the value of the t-statistic.
	T float64

	// Df is the degrees of freedom, fractional for Welch's test.
	Df float64

	// P is the two-tailed p-value.
	P float64
}

func newTTestResult(n1, n2 int, t, df float64) (*TTestResult, error) {
	td, err := dist.NewTDist(df)
	if err != nil {
		return nil, err
	}
	p, err := td.TwoTailedPValue(t)
	if err != nil {
		return nil, err
	}
	return &TTestResult{N1: n1, N2: n2, T: t, Df: df, P: p}, nil
}

// OneSampleTTest performs a two-tailed one-sample t-test of the null
// hypothesis that the population mean of xs equals mu.
func OneSampleTTest(xs []float64, mu float64) (*TTestResult, error) {
	n := len(xs)
	if n < 2 {
		return nil, ErrSampleSize
	}
	v := sample.Variance(xs)
	if v == 0 {
		return nil, ErrZeroVariance
	}
	t := (sample.Mean(xs) - mu) / math.Sqrt(v/float64(n))
	return newTTestResult(n, 0, t, float64(n-1))
}

// WelchTTest performs a two-tailed two-sample t-test without assuming
// equal variances. The degrees of freedom follow the
// Welch-Satterthwaite approximation.
func WelchTTest(xs1, xs2 []float64) (*TTestResult, error) {
	n1, n2 := len(xs1), len(xs2)
	if n1 < 2 || n2 < 2 {
		return nil, ErrSampleSize
	}
	v1, v2 := sample.Variance(xs1), sample.Variance(xs2)
	if v1 == 0 && v2 == 0 {
		return nil, ErrZeroVariance
	}

	se1, se2 := v1/float64(n1), v2/float64(n2)
	t := (sample.Mean(xs1) - sample.Mean(xs2)) / math.Sqrt(se1+se2)
	df := (se1 + se2) * (se1 + se2) /
		(se1*se1/float64(n1-1) + se2*se2/float64(n2-1))
	return newTTestResult(n1, n2, t, df)
}

// PairedTTest performs a two-tailed paired t-test: a one-sample test
// of the pairwise differences against zero.
func PairedTTest(xs1, xs2 []float64) (*TTestResult, error) {
	if len(xs1) != len(xs2) {
		return nil, ErrMismatchedSamples
	}
	diffs := make([]float64, len(xs1))
	for i := range xs1 {
		diffs[i] = xs1[i] - xs2[i]
	}
	r, err := OneSampleTTest(diffs, 0)
	if err != nil {
		return nil, err
	}
	r.N2 = len(xs2)
	return r, nil
}

// Evaluate reports whether the null hypothesis of equal means is
// rejected at the given significance level.
func (r *TTestResult) Evaluate(alpha float64) (bool, error) {
	if err := validateAlpha(alpha); err != nil {
		return false, err
	}
	return r.P < alpha, nil
}

// Interpret renders a narrative verdict at the given significance level.
func (r *TTestResult) Interpret(alpha float64) string {
	reject, err := r.Evaluate(alpha)
	if err != nil {
		return err.Error()
	}
	if reject {
		return fmt.Sprintf("t = %.4f (df = %.4g), p = %.4g: reject the null hypothesis of equal means at the %g level",
			r.T, r.Df, r.P, alpha)
	}
	return fmt.Sprintf("t = %.4f (df = %.4g), p = %.4g: fail to reject the null hypothesis of equal means at the %g level",
		r.T, r.Df, r.P, alpha)
}

func (r *TTestResult) String() string {
	return fmt.Sprintf("t-test: t=%.6g df=%.6g p=%.6g (n1=%d, n2=%d)", r.T, r.Df, r.P, r.N1, r.N2)
}
