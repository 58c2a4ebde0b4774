package regression

import (
	"errors"
	"fmt"
	"strings"

	"github.com/perhult/gostats/linalg"
)

// ErrInvalidDegree reports a polynomial degree below 1.
var ErrInvalidDegree = errors.New("polynomial degree must be at least 1")

// A PolynomialFit holds a fitted polynomial
// y = c0 + c1*x + ... + cd*x^d. It is immutable once returned.
type PolynomialFit struct {
	// Coefficients are ordered by ascending power, constant first.
	Coefficients []float64

	// StdErrs holds the standard error of each coefficient.
	StdErrs []float64

	Degree int
	R2     float64
	NObs   int
}

// PolynomialRegression fits a polynomial of the given degree by
// ordinary least squares on the Vandermonde basis. Requires strictly
// more observations than coefficients.
func PolynomialRegression(x, y []float64, degree int) (*PolynomialFit, error) {
	if degree < 1 {
		return nil, fmt.Errorf("regression: got degree %d: %w", degree, ErrInvalidDegree)
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("regression: got %d x values and %d y values: %w", len(x), len(y), ErrMismatchedSamples)
	}
	if len(x) <= degree+1 {
		return nil, fmt.Errorf("regression: degree-%d fit needs more than %d observations, got %d: %w", degree, degree+1, len(x), ErrSampleSize)
	}

	rows := make([][]float64, len(x))
	for i, xi := range x {
		row := make([]float64, degree+1)
		row[0] = 1
		for j := 1; j <= degree; j++ {
			row[j] = row[j-1] * xi
		}
		rows[i] = row
	}
	fit, err := linalg.OLS(rows, y)
	if err != nil {
		return nil, fmt.Errorf("regression: degree-%d fit: %w", degree, err)
	}

	return &PolynomialFit{
		Coefficients: fit.Coefficients,
		StdErrs:      fit.StdErrs,
		Degree:       degree,
		R2:           rSquared(y, fit.Residuals),
		NObs:         fit.NObs,
	}, nil
}

// Predict evaluates the fitted polynomial at x using Horner's scheme.
func (f *PolynomialFit) Predict(x float64) float64 {
	v := 0.0
	for i := len(f.Coefficients) - 1; i >= 0; i-- {
		v = v*x + f.Coefficients[i]
	}
	return v
}

func (f *PolynomialFit) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "y = %.6f", f.Coefficients[0])
	for i, c := range f.Coefficients[1:] {
		fmt.Fprintf(&b, " + %.6f*x^%d", c, i+1)
	}
	fmt.Fprintf(&b, " (R^2 = %.4f, n = %d)", f.R2, f.NObs)
	return b.String()
}
