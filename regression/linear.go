package regression

import (
	"errors"
	"fmt"

	"github.com/perhult/gostats/linalg"
	"github.com/perhult/gostats/sample"
)

var (
	// ErrSampleSize reports too few observations for the requested fit.
	ErrSampleSize = errors.New("insufficient sample size")

	// ErrMismatchedSamples reports x and y slices of different lengths.
	ErrMismatchedSamples = errors.New("mismatched sample lengths")
)

// A LinearFit holds a fitted simple linear regression y = a + b*x. It
// is immutable once returned.
type LinearFit struct {
	Intercept float64
	Slope     float64

	// InterceptStdErr and SlopeStdErr are the coefficient standard
	// errors from the inverted normal equations.
	InterceptStdErr float64
	SlopeStdErr     float64

	// R2 is the coefficient of determination.
	R2 float64

	NObs int
}

// LinearRegression fits y = a + b*x by ordinary least squares.
// Requires at least three observations so that a residual variance can
// be estimated.
func LinearRegression(x, y []float64) (*LinearFit, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("regression: got %d x values and %d y values: %w", len(x), len(y), ErrMismatchedSamples)
	}
	if len(x) < 3 {
		return nil, fmt.Errorf("regression: linear fit needs at least 3 observations, got %d: %w", len(x), ErrSampleSize)
	}

	rows := make([][]float64, len(x))
	for i, xi := range x {
		rows[i] = []float64{1, xi}
	}
	fit, err := linalg.OLS(rows, y)
	if err != nil {
		return nil, fmt.Errorf("regression: linear fit: %w", err)
	}

	return &LinearFit{
		Intercept:       fit.Coefficients[0],
		Slope:           fit.Coefficients[1],
		InterceptStdErr: fit.StdErrs[0],
		SlopeStdErr:     fit.StdErrs[1],
		R2:              rSquared(y, fit.Residuals),
		NObs:            fit.NObs,
	}, nil
}

// Predict returns the fitted value a + b*x.
func (f *LinearFit) Predict(x float64) float64 {
	return f.Intercept + f.Slope*x
}

func (f *LinearFit) String() string {
	return fmt.Sprintf("y = %.6f + %.6f*x (R^2 = %.4f, n = %d)", f.Intercept, f.Slope, f.R2, f.NObs)
}

// rSquared computes 1 - SSE/SST from the response and the fit
// residuals. A zero-variance response yields an R^2 of zero rather
// than a division by zero.
func rSquared(y, residuals []float64) float64 {
	mean := sample.Mean(y)
	sst := 0.0
	for _, yi := range y {
		d := yi - mean
		sst += d * d
	}
	if sst == 0 {
		return 0
	}
	sse := 0.0
	for _, r := range residuals {
		sse += r * r
	}
	return 1 - sse/sst
}
