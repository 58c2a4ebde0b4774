package stationarity

import (
	"fmt"
	"math"

	"github.com/perhult/gostats/linalg"
	"github.com/perhult/gostats/sample"
)

// A KPSSResult is the result of a Kwiatkowski-Phillips-Schmidt-Shin
// stationarity test. Unlike the unit-root tests, the null hypothesis
// is that the series IS stationary.
type KPSSResult struct {
	// Statistic is the KPSS statistic sum(S_t^2) / (T^2 * s^2).
	Statistic float64

	// Lags is the Bartlett window width used by the long-run
	// variance estimator.
	Lags int

	// NObs is the series length.
	NObs int

	// Type records the detrending variant: TypeDrift removes the
	// mean, TypeTrend removes a linear trend.
	Type TestType

	// CriticalValues holds the fixed KPSS critical values at 1%, 5%
	// and 10%.
	CriticalValues map[string]float64
}

// KPSS performs the KPSS stationarity test. The series is demeaned
// (TypeDrift) or linearly detrended (TypeTrend), partial sums of the
// residuals are formed, and the statistic divides their sum of squares
// by T^2 times a Newey-West long-run variance with a Bartlett kernel.
// The window is floor(4*(T/100)^0.25) clamped to [1, T/3].
func KPSS(xs []float64, typ TestType) (*KPSSResult, error) {
	if typ != TypeDrift && typ != TypeTrend {
		return nil, fmt.Errorf("stationarity: KPSS requires test type drift or trend, got %q", typ)
	}
	if err := validateSeries(xs, minRegressionObs); err != nil {
		return nil, err
	}

	n := len(xs)
	lags := int(math.Floor(4 * math.Pow(float64(n)/100, 0.25)))
	if lags < 1 {
		lags = 1
	}
	if max := n / 3; lags > max {
		lags = max
	}

	residuals, err := detrendResiduals(xs, typ)
	if err != nil {
		return nil, err
	}

	// Partial sums of the residuals.
	partial := make([]float64, n)
	partial[0] = residuals[0]
	for i := 1; i < n; i++ {
		partial[i] = partial[i-1] + residuals[i]
	}

	s2 := longRunVariance(residuals, lags)
	if s2 <= 0 {
		return nil, ErrConstantSeries
	}

	etaSq := 0.0
	for _, s := range partial {
		etaSq += s * s
	}
	stat := etaSq / (float64(n) * float64(n) * s2)

	return &KPSSResult{
		Statistic: stat,
		Lags:      lags,
		NObs:      n,
		Type:      typ,
		CriticalValues: map[string]float64{
			"1%":  kpssCriticalValues[typ][1],
			"5%":  kpssCriticalValues[typ][5],
			"10%": kpssCriticalValues[typ][10],
		},
	}, nil
}

// detrendResiduals removes the deterministic component selected by typ.
func detrendResiduals(xs []float64, typ TestType) ([]float64, error) {
	n := len(xs)
	residuals := make([]float64, n)

	if typ == TypeDrift {
		mean := sample.Mean(xs)
		for i, v := range xs {
			residuals[i] = v - mean
		}
		return residuals, nil
	}

	x := make([][]float64, n)
	for i := 0; i < n; i++ {
		x[i] = []float64{1, float64(i + 1)}
	}
	fit, err := linalg.OLS(x, xs)
	if err != nil {
		return nil, fmt.Errorf("stationarity: KPSS detrending failed: %w", err)
	}
	copy(residuals, fit.Residuals)
	return residuals, nil
}

// longRunVariance estimates the long-run variance with a Newey-West
// estimator using Bartlett weights 1 - l/(lags+1).
func longRunVariance(residuals []float64, lags int) float64 {
	n := len(residuals)

	s2 := 0.0
	for _, r := range residuals {
		s2 += r * r
	}
	s2 /= float64(n)

	for l := 1; l <= lags; l++ {
		cov := 0.0
		for i := l; i < n; i++ {
			cov += residuals[i] * residuals[i-l]
		}
		cov /= float64(n)
		s2 += 2 * (1 - float64(l)/float64(lags+1)) * cov
	}
	return s2
}

// Evaluate reports whether the stationarity null hypothesis is
// rejected at the given significance level (one of 0.01, 0.05, 0.10).
// A true result is evidence of non-stationarity.
func (r *KPSSResult) Evaluate(alpha float64) (bool, error) {
	cv, err := criticalValueAt(r.CriticalValues, alpha)
	if err != nil {
		return false, err
	}
	return r.Statistic > cv, nil
}

// Interpret renders a narrative verdict at the given significance level.
func (r *KPSSResult) Interpret(alpha float64) string {
	reject, err := r.Evaluate(alpha)
	if err != nil {
		return err.Error()
	}
	cv, _ := criticalValueAt(r.CriticalValues, alpha)
	if reject {
		return fmt.Sprintf("KPSS = %.4f > %.4f: reject the stationarity null at the %g level; the series appears non-stationary (%s)",
			r.Statistic, cv, alpha, r.Type)
	}
	return fmt.Sprintf("KPSS = %.4f <= %.4f: fail to reject the stationarity null at the %g level; the series appears stationary (%s)",
		r.Statistic, cv, alpha, r.Type)
}

func (r *KPSSResult) String() string {
	return fmt.Sprintf("KPSS (%s): stat=%.6g lags=%d n=%d", r.Type, r.Statistic, r.Lags, r.NObs)
}
