package htest

import (
	"fmt"

	"github.com/perhult/gostats/dist"
	"github.com/perhult/gostats/sample"
)

// A LjungBoxResult is the result of a Ljung-Box portmanteau test for
// serial correlation.
type LjungBoxResult struct {
	// Statistic is the Ljung-Box Q statistic.
	Statistic float64

	// PValue is the right-tail chi-squared probability of Q.
	PValue float64

	// Lags is the number of autocorrelation lags summed.
	Lags int

	// Df is the chi-squared degrees of freedom, Lags reduced by the
	// number of fitted model parameters.
	Df int
}

// LjungBox tests the null hypothesis that xs has no autocorrelation up
// to the given lag. fitdf is the number of parameters estimated by any
// model that produced xs (zero for a raw series); it reduces the
// chi-squared degrees of freedom.
func LjungBox(xs []float64, lags, fitdf int) (*LjungBoxResult, error) {
	n := len(xs)
	if n < 10 {
		return nil, fmt.Errorf("htest: Ljung-Box requires at least 10 observations, got %d: %w", n, ErrSampleSize)
	}
	if lags < 1 {
		return nil, fmt.Errorf("htest: Ljung-Box requires at least 1 lag, got %d", lags)
	}
	if fitdf < 0 {
		return nil, fmt.Errorf("htest: Ljung-Box requires fitdf >= 0, got %d", fitdf)
	}
	if lags >= n {
		lags = n - 1
	}
	if sample.IsConstant(xs) {
		return nil, ErrZeroVariance
	}

	acf := autocorrelations(xs, lags)

	q := 0.0
	for k := 1; k <= lags; k++ {
		q += acf[k] * acf[k] / float64(n-k)
	}
	q *= float64(n * (n + 2))

	df := lags - fitdf
	if df < 1 {
		df = 1
	}

	cs, err := dist.NewChiSquaredDist(float64(df))
	if err != nil {
		return nil, err
	}
	p, err := cs.PValue(q)
	if err != nil {
		return nil, err
	}

	return &LjungBoxResult{Statistic: q, PValue: p, Lags: lags, Df: df}, nil
}

// Evaluate reports whether the null hypothesis of no autocorrelation
// is rejected at the given significance level.
func (r *LjungBoxResult) Evaluate(alpha float64) (bool, error) {
	if err := validateAlpha(alpha); err != nil {
		return false, err
	}
	return r.PValue < alpha, nil
}

// Interpret renders a narrative verdict at the given significance level.
func (r *LjungBoxResult) Interpret(alpha float64) string {
	reject, err := r.Evaluate(alpha)
	if err != nil {
		return err.Error()
	}
	if reject {
		return fmt.Sprintf("Q = %.4f (df = %d), p = %.4g: reject the null hypothesis at the %g level; the series is serially correlated up to lag %d",
			r.Statistic, r.Df, r.PValue, alpha, r.Lags)
	}
	return fmt.Sprintf("Q = %.4f (df = %d), p = %.4g: fail to reject the null hypothesis at the %g level; no evidence of serial correlation up to lag %d",
		r.Statistic, r.Df, r.PValue, alpha, r.Lags)
}

// autocorrelations calculates the sample autocorrelation function for
// lags 0 through maxLag.
func autocorrelations(xs []float64, maxLag int) []float64 {
	n := len(xs)
	mean := sample.Mean(xs)

	variance := 0.0
	for _, v := range xs {
		d := v - mean
		variance += d * d
	}

	acf := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		sum := 0.0
		for i := k; i < n; i++ {
			sum += (xs[i] - mean) * (xs[i-k] - mean)
		}
		acf[k] = sum / variance
	}
	return acf
}
