// Package linalg provides the shared ordinary-least-squares kernel used
// by the unit-root tests and the regression estimators. Consolidating
// the solve/invert step here keeps pivoting and precision behavior
// identical across every call site.
package linalg

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrSingular reports a design matrix whose normal equations cannot be
// inverted.
var ErrSingular = errors.New("design matrix is singular or near-singular")

// An OLSFit holds the estimates of an ordinary-least-squares regression
// y = X*beta + e. It is immutable once returned.
type OLSFit struct {
	// Coefficients is the estimated beta vector.
	Coefficients []float64

	// StdErrs holds the standard error of each coefficient, computed
	// from the diagonal of sigma^2 (X'X)^-1.
	StdErrs []float64

	// Residuals are y - X*beta.
	Residuals []float64

	// Sigma2 is the residual variance SSE/(n-k).
	Sigma2 float64

	// NObs is the number of observations n.
	NObs int
}

// OLS solves the normal equations beta = (X'X)^-1 X'y. The rows of x
// are observations and must all have the same number of regressors.
// Inversion uses an LU factorization with partial pivoting; a singular
// or near-singular X'X surfaces as ErrSingular. Requires strictly more
// observations than regressors.
func OLS(x [][]float64, y []float64) (*OLSFit, error) {
	n := len(y)
	if n == 0 || len(x) != n {
		return nil, fmt.Errorf("linalg: OLS requires matching design rows and responses, got %d rows and %d responses", len(x), n)
	}
	k := len(x[0])
	if k == 0 {
		return nil, errors.New("linalg: OLS requires at least one regressor")
	}
	if n <= k {
		return nil, fmt.Errorf("linalg: OLS requires more observations than regressors, got n=%d, k=%d", n, k)
	}

	flat := make([]float64, 0, n*k)
	for i, row := range x {
		if len(row) != k {
			return nil, fmt.Errorf("linalg: OLS design row %d has %d regressors, expected %d", i, len(row), k)
		}
		flat = append(flat, row...)
	}

	X := mat.NewDense(n, k, flat)
	yVec := mat.NewVecDense(n, y)

	var xtx mat.Dense
	xtx.Mul(X.T(), X)

	var xtxInv mat.Dense
	if err := xtxInv.Inverse(&xtx); err != nil {
		return nil, fmt.Errorf("linalg: %w: %v", ErrSingular, err)
	}

	var xty mat.VecDense
	xty.MulVec(X.T(), yVec)

	var beta mat.VecDense
	beta.MulVec(&xtxInv, &xty)

	coeffs := make([]float64, k)
	for i := range coeffs {
		coeffs[i] = beta.AtVec(i)
	}

	residuals := make([]float64, n)
	sse := 0.0
	for i := 0; i < n; i++ {
		pred := 0.0
		for j := 0; j < k; j++ {
			pred += coeffs[j] * x[i][j]
		}
		residuals[i] = y[i] - pred
		sse += residuals[i] * residuals[i]
	}

	sigma2 := sse / float64(n-k)
	stdErrs := make([]float64, k)
	for i := range stdErrs {
		stdErrs[i] = math.Sqrt(sigma2 * xtxInv.At(i, i))
	}

	return &OLSFit{
		Coefficients: coeffs,
		StdErrs:      stdErrs,
		Residuals:    residuals,
		Sigma2:       sigma2,
		NObs:         n,
	}, nil
}
