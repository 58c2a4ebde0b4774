// Package htest provides hypothesis tests over named numeric samples.
package htest

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/perhult/gostats/dist"
	"github.com/perhult/gostats/sample"
)

var (
	// ErrSampleSize reports a sample or group with too few observations.
	ErrSampleSize = errors.New("sample is too small")
	// ErrZeroVariance reports samples whose variance is zero.
	ErrZeroVariance = errors.New("sample has zero variance")
	// ErrMismatchedSamples reports paired samples of different lengths.
	ErrMismatchedSamples = errors.New("samples have different lengths")
)

// validateAlpha rejects significance levels outside (0, 1).
func validateAlpha(alpha float64) error {
	if !(alpha > 0 && alpha < 1) {
		return fmt.Errorf("htest: significance level must be in (0, 1), got %g", alpha)
	}
	return nil
}

// An ANOVAResult is the result of a one-way analysis of variance.
// It is immutable; Evaluate and Interpret are pure functions of the
// stored fields and the caller-supplied significance level.
type ANOVAResult struct {
	// F is the ratio of the between-group to the within-group mean square.
	F float64

	// PValue is the right-tail probability of F under the null
	// hypothesis that all group means are equal.
	PValue float64

	// DfBetween and DfWithin are k-1 and N-k.
	DfBetween, DfWithin float64

	// SSBetween and SSWithin are the between-group and within-group
	// sums of squares; MSBetween and MSWithin the mean squares.
	SSBetween, SSWithin float64
	MSBetween, MSWithin float64

	// GroupNames lists the group labels in sorted order.
	GroupNames []string

	// NObs is the total number of observations.
	NObs int
}

// OneWayANOVA performs a one-way analysis of variance over two or more
// named groups. The null hypothesis is that every group has the same
// mean. Group labels only identify samples in output; the computation
// is order-independent.
func OneWayANOVA(groups map[string][]float64) (*ANOVAResult, error) {
	if len(groups) < 2 {
		return nil, fmt.Errorf("htest: one-way ANOVA requires at least 2 groups, got %d", len(groups))
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	total := 0
	grandSum := 0.0
	for _, name := range names {
		g := groups[name]
		if len(g) == 0 {
			return nil, fmt.Errorf("htest: one-way ANOVA group %q is empty: %w", name, ErrSampleSize)
		}
		total += len(g)
		grandSum += sample.Sum(g)
	}
	k := len(names)
	if total <= k {
		return nil, fmt.Errorf("htest: one-way ANOVA requires more observations than groups: %w", ErrSampleSize)
	}
	grandMean := grandSum / float64(total)

	ssb, ssw := 0.0, 0.0
	for _, name := range names {
		g := groups[name]
		m := sample.Mean(g)
		d := m - grandMean
		ssb += float64(len(g)) * d * d
		for _, v := range g {
			ssw += (v - m) * (v - m)
		}
	}

	dfb := float64(k - 1)
	dfw := float64(total - k)
	msb := ssb / dfb
	msw := ssw / dfw
	if msw == 0 {
		return nil, ErrZeroVariance
	}

	fd, err := dist.NewFDist(dfb, dfw)
	if err != nil {
		return nil, err
	}
	f := msb / msw
	p, err := fd.PValue(f)
	if err != nil {
		return nil, err
	}

	return &ANOVAResult{
		F:          f,
		PValue:     p,
		DfBetween:  dfb,
		DfWithin:   dfw,
		SSBetween:  ssb,
		SSWithin:   ssw,
		MSBetween:  msb,
		MSWithin:   msw,
		GroupNames: names,
		NObs:       total,
	}, nil
}

// Evaluate reports whether the null hypothesis of equal group means is
// rejected at the given significance level.
func (r *ANOVAResult) Evaluate(alpha float64) (bool, error) {
	if err := validateAlpha(alpha); err != nil {
		return false, err
	}
	return r.PValue < alpha, nil
}

// Interpret renders a narrative verdict at the given significance level.
func (r *ANOVAResult) Interpret(alpha float64) string {
	reject, err := r.Evaluate(alpha)
	if err != nil {
		return err.Error()
	}
	if reject {
		return fmt.Sprintf("F = %.4f, p = %.4g: reject the null hypothesis at the %g level; at least one group mean differs",
			r.F, r.PValue, alpha)
	}
	return fmt.Sprintf("F = %.4f, p = %.4g: fail to reject the null hypothesis at the %g level; no evidence the group means differ",
		r.F, r.PValue, alpha)
}

// String renders a compact ANOVA table.
func (r *ANOVAResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "One-way ANOVA (%s), N=%d\n", strings.Join(r.GroupNames, ", "), r.NObs)
	fmt.Fprintf(&b, "  between: SS=%.6g df=%g MS=%.6g\n", r.SSBetween, r.DfBetween, r.MSBetween)
	fmt.Fprintf(&b, "  within:  SS=%.6g df=%g MS=%.6g\n", r.SSWithin, r.DfWithin, r.MSWithin)
	fmt.Fprintf(&b, "  F=%.6g p=%.6g", r.F, r.PValue)
	return b.String()
}
