// Package dist provides the continuous distributions used by the
// hypothesis tests in this module.
//
// Distribution values are immutable after construction and can be
// reused across any number of CDF queries, including concurrently.
// Degrees of freedom are validated at construction and may be
// fractional, which unbalanced designs and Welch-Satterthwaite
// approximations routinely produce.
//
// # F-distribution
//
//	fd, _ := dist.NewFDist(5, 10)
//	cdf, _ := fd.CDF(2.5)     // 0.897...
//	p, _ := fd.PValue(2.5)    // right tail
//
// # Student's t-distribution
//
//	td, _ := dist.NewTDist(9)
//	p, _ := td.TwoTailedPValue(2.262)  // ~0.05
//
// # Convenience tests
//
// The package also exposes direct p-value helpers that build the
// statistic from raw samples:
//
//	p, _ := dist.TwoSampleTTest(xs1, xs2)          // Welch's t-test
//	p, _ := dist.OneWayANOVAPValue(g1, g2, g3)     // one-way ANOVA
//
// Richer result objects for the same tests live in package htest.
package dist
