package regression

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// ErrInvalidTau reports a quantile level outside the open interval
// (0, 1).
var ErrInvalidTau = errors.New("quantile level must lie strictly between 0 and 1")

// A QuantileFit holds a fitted quantile regression line: the estimated
// conditional tau-quantile of y given x. It is immutable once
// returned.
type QuantileFit struct {
	Tau       float64
	Intercept float64
	Slope     float64
	NObs      int
}

// QuantileRegression fits the conditional tau-quantile line
// y = a + b*x by minimizing the pinball loss
//
//	sum_i rho_tau(y_i - a - b*x_i),  rho_tau(u) = u*(tau - 1[u<0]).
//
// The problem is rewritten as a linear program: the intercept, the
// slope, and every residual are split into non-negative positive and
// negative parts, which makes the loss linear in the variables, and
// the program is handed to a simplex solver. Solver failure is
// wrapped with the requested tau.
func QuantileRegression(x, y []float64, tau float64) (*QuantileFit, error) {
	if tau <= 0 || tau >= 1 {
		return nil, fmt.Errorf("regression: got tau=%g: %w", tau, ErrInvalidTau)
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("regression: got %d x values and %d y values: %w", len(x), len(y), ErrMismatchedSamples)
	}
	n := len(x)
	if n < 2 {
		return nil, fmt.Errorf("regression: quantile fit needs at least 2 observations, got %d: %w", n, ErrSampleSize)
	}

	// Variable layout: [a+, a-, b+, b-, u_0..u_{n-1}, v_0..v_{n-1}]
	// with u_i - v_i the residual of observation i. Constraint i is
	//   a + b*x_i + u_i - v_i = y_i.
	nvar := 4 + 2*n
	c := make([]float64, nvar)
	for i := 0; i < n; i++ {
		c[4+i] = tau
		c[4+n+i] = 1 - tau
	}

	a := mat.NewDense(n, nvar, nil)
	b := make([]float64, n)
	for i := 0; i < n; i++ {
		a.Set(i, 0, 1)
		a.Set(i, 1, -1)
		a.Set(i, 2, x[i])
		a.Set(i, 3, -x[i])
		a.Set(i, 4+i, 1)
		a.Set(i, 4+n+i, -1)
		b[i] = y[i]
	}

	_, opt, err := lp.Simplex(c, a, b, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("regression: quantile fit at tau=%g failed: %w", tau, err)
	}

	return &QuantileFit{
		Tau:       tau,
		Intercept: opt[0] - opt[1],
		Slope:     opt[2] - opt[3],
		NObs:      n,
	}, nil
}

// Predict returns the fitted conditional quantile a + b*x.
func (f *QuantileFit) Predict(x float64) float64 {
	return f.Intercept + f.Slope*x
}

func (f *QuantileFit) String() string {
	return fmt.Sprintf("Q_%.2f(y|x) = %.6f + %.6f*x (n = %d)", f.Tau, f.Intercept, f.Slope, f.NObs)
}
