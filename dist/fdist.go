// Package dist provides the continuous distributions behind the
// hypothesis tests: Fisher's F, Student's t, and chi-squared.
package dist

import (
	"errors"
	"fmt"
	"math"

	"github.com/perhult/gostats/sample"
	"github.com/perhult/gostats/specfun"
)

var (
	// ErrSampleSize reports a sample with too few observations.
	ErrSampleSize = errors.New("sample is too small")
	// ErrZeroVariance reports a sample whose variance is zero.
	ErrZeroVariance = errors.New("sample has zero variance")
	// ErrMismatchedSamples reports paired samples of different lengths.
	ErrMismatchedSamples = errors.New("samples have different lengths")
)

// FDist is an F-distribution with Df1 and Df2 degrees of freedom.
// Both may be fractional (an unbalanced design produces fractional
// degrees of freedom). An FDist is immutable and safe for concurrent use.
type FDist struct {
	Df1, Df2 float64
}

// NewFDist creates an F-distribution. Both degrees of freedom must be
// strictly positive.
func NewFDist(df1, df2 float64) (*FDist, error) {
	if df1 <= 0 || math.IsNaN(df1) {
		return nil, fmt.Errorf("dist: F-distribution requires df1 > 0, got %g", df1)
	}
	if df2 <= 0 || math.IsNaN(df2) {
		return nil, fmt.Errorf("dist: F-distribution requires df2 > 0, got %g", df2)
	}
	return &FDist{Df1: df1, Df2: df2}, nil
}

// CDF calculates P(F <= f) via the regularized incomplete beta function:
// 1 - I_{df2/(df2+df1*f)}(df2/2, df1/2). f must be non-negative.
func (d *FDist) CDF(f float64) (float64, error) {
	if f < 0 || math.IsNaN(f) {
		return 0, fmt.Errorf("dist: F-distribution CDF requires f >= 0, got %g", f)
	}
	if math.IsInf(f, 1) {
		return 1, nil
	}
	x := d.Df2 / (d.Df2 + d.Df1*f)
	ib, err := specfun.RegularizedIncompleteBeta(x, d.Df2/2, d.Df1/2)
	if err != nil {
		return 0, err
	}
	return 1 - ib, nil
}

// PValue calculates the right-tail probability P(F > f).
func (d *FDist) PValue(f float64) (float64, error) {
	cdf, err := d.CDF(f)
	if err != nil {
		return 0, err
	}
	return 1 - cdf, nil
}

// OneWayANOVAFValue calculates the one-way ANOVA F statistic
// (between-group mean square over within-group mean square) directly
// from the raw groups.
func OneWayANOVAFValue(groups ...[]float64) (float64, error) {
	_, _, msb, msw, err := anovaMeanSquares(groups)
	if err != nil {
		return 0, err
	}
	if msw == 0 {
		return 0, ErrZeroVariance
	}
	return msb / msw, nil
}

// OneWayANOVAPValue calculates the one-way ANOVA p-value for the given
// groups using the F-distribution with k-1 and N-k degrees of freedom.
func OneWayANOVAPValue(groups ...[]float64) (float64, error) {
	dfb, dfw, msb, msw, err := anovaMeanSquares(groups)
	if err != nil {
		return 0, err
	}
	if msw == 0 {
		return 0, ErrZeroVariance
	}
	fd, err := NewFDist(dfb, dfw)
	if err != nil {
		return 0, err
	}
	return fd.PValue(msb / msw)
}

// anovaMeanSquares calculates the between and within degrees of freedom
// and mean squares for a one-way layout.
func anovaMeanSquares(groups [][]float64) (dfb, dfw, msb, msw float64, err error) {
	if len(groups) < 2 {
		return 0, 0, 0, 0, fmt.Errorf("dist: one-way ANOVA requires at least 2 groups, got %d", len(groups))
	}

	total := 0
	grandSum := 0.0
	for i, g := range groups {
		if len(g) == 0 {
			return 0, 0, 0, 0, fmt.Errorf("dist: one-way ANOVA group %d is empty: %w", i, ErrSampleSize)
		}
		total += len(g)
		grandSum += sample.Sum(g)
	}
	k := len(groups)
	if total <= k {
		return 0, 0, 0, 0, fmt.Errorf("dist: one-way ANOVA requires more observations than groups: %w", ErrSampleSize)
	}
	grandMean := grandSum / float64(total)

	ssb, ssw := 0.0, 0.0
	for _, g := range groups {
		m := sample.Mean(g)
		d := m - grandMean
		ssb += float64(len(g)) * d * d
		for _, v := range g {
			ssw += (v - m) * (v - m)
		}
	}

	dfb = float64(k - 1)
	dfw = float64(total - k)
	return dfb, dfw, ssb / dfb, ssw / dfw, nil
}
