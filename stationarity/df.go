package stationarity

import (
	"fmt"

	"github.com/perhult/gostats/linalg"
)

// minRegressionObs is the minimum series length for the
// regression-based tests.
const minRegressionObs = 10

// A DickeyFullerResult is the result of a Dickey-Fuller unit-root test.
// The null hypothesis is that the series has a unit root.
type DickeyFullerResult struct {
	// Statistic is the tau statistic Gamma/StdErr.
	Statistic float64

	// Gamma is the estimated coefficient on the lagged level.
	Gamma float64

	// StdErr is the standard error of Gamma.
	StdErr float64

	// NObs is the number of observations entering the regression.
	NObs int

	// Type records the deterministic component that was fitted.
	Type TestType

	// CriticalValues holds the MacKinnon critical values at 1%, 5%
	// and 10%, evaluated at NObs.
	CriticalValues map[string]float64
}

// DickeyFuller performs the (non-augmented) Dickey-Fuller test,
// regressing the first difference on the lagged level plus the
// deterministic terms selected by typ. Requires at least 10
// observations and a non-constant series.
func DickeyFuller(xs []float64, typ TestType) (*DickeyFullerResult, error) {
	if _, err := ParseTestType(string(typ)); err != nil {
		return nil, err
	}
	if err := validateSeries(xs, minRegressionObs); err != nil {
		return nil, err
	}

	n := len(xs)
	nObs := n - 1

	y := make([]float64, nObs)
	x := make([][]float64, nObs)
	for i := 0; i < nObs; i++ {
		y[i] = xs[i+1] - xs[i]
		switch typ {
		case TypeNone:
			x[i] = []float64{xs[i]}
		case TypeDrift:
			x[i] = []float64{1, xs[i]}
		case TypeTrend:
			x[i] = []float64{1, float64(i + 1), xs[i]}
		}
	}

	fit, err := linalg.OLS(x, y)
	if err != nil {
		return nil, fmt.Errorf("stationarity: Dickey-Fuller regression failed: %w", err)
	}

	k := len(fit.Coefficients)
	gamma := fit.Coefficients[k-1]
	se := fit.StdErrs[k-1]

	return &DickeyFullerResult{
		Statistic:      gamma / se,
		Gamma:          gamma,
		StdErr:         se,
		NObs:           nObs,
		Type:           typ,
		CriticalValues: criticalValueTable(dfCriticalValues[typ], nObs),
	}, nil
}

// Evaluate reports whether the unit-root null hypothesis is rejected
// at the given significance level (one of 0.01, 0.05, 0.10).
func (r *DickeyFullerResult) Evaluate(alpha float64) (bool, error) {
	cv, err := criticalValueAt(r.CriticalValues, alpha)
	if err != nil {
		return false, err
	}
	return r.Statistic < cv, nil
}

// Interpret renders a narrative verdict at the given significance level.
func (r *DickeyFullerResult) Interpret(alpha float64) string {
	reject, err := r.Evaluate(alpha)
	if err != nil {
		return err.Error()
	}
	cv, _ := criticalValueAt(r.CriticalValues, alpha)
	if reject {
		return fmt.Sprintf("tau = %.4f < %.4f: reject the unit-root null at the %g level; the series appears stationary (%s)",
			r.Statistic, cv, alpha, r.Type)
	}
	return fmt.Sprintf("tau = %.4f >= %.4f: fail to reject the unit-root null at the %g level; the series appears non-stationary (%s)",
		r.Statistic, cv, alpha, r.Type)
}

func (r *DickeyFullerResult) String() string {
	return fmt.Sprintf("Dickey-Fuller (%s): tau=%.6g gamma=%.6g se=%.6g n=%d", r.Type, r.Statistic, r.Gamma, r.StdErr, r.NObs)
}
