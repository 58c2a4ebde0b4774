package dist

import (
	"fmt"
	"math"

	"github.com/perhult/gostats/specfun"
)

// ChiSquaredDist is a chi-squared distribution with Df degrees of
// freedom. It backs the Ljung-Box portmanteau test. Immutable and safe
// for concurrent use.
type ChiSquaredDist struct {
	Df float64
}

// NewChiSquaredDist creates a chi-squared distribution. The degrees of
// freedom must be strictly positive.
func NewChiSquaredDist(df float64) (*ChiSquaredDist, error) {
	if df <= 0 || math.IsNaN(df) {
		return nil, fmt.Errorf("dist: chi-squared distribution requires df > 0, got %g", df)
	}
	return &ChiSquaredDist{Df: df}, nil
}

// CDF calculates P(X <= x) via the regularized lower incomplete gamma
// function P(df/2, x/2). x must be non-negative.
func (d *ChiSquaredDist) CDF(x float64) (float64, error) {
	if x < 0 || math.IsNaN(x) {
		return 0, fmt.Errorf("dist: chi-squared CDF requires x >= 0, got %g", x)
	}
	if math.IsInf(x, 1) {
		return 1, nil
	}
	return specfun.RegularizedGammaP(d.Df/2, x/2)
}

// PValue calculates the right-tail probability P(X > x).
func (d *ChiSquaredDist) PValue(x float64) (float64, error) {
	cdf, err := d.CDF(x)
	if err != nil {
		return 0, err
	}
	return 1 - cdf, nil
}
