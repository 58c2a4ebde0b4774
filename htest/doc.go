// Package htest provides hypothesis tests over named numeric samples.
//
// Every test validates its input up front, then returns an immutable
// result object holding the statistic, its p-value, and the quantities
// used to build them. Verdicts are a separate formatting layer:
// Evaluate(alpha) answers reject/fail-to-reject and Interpret(alpha)
// renders a narrative, both pure functions of the stored fields.
//
// # One-way ANOVA
//
//	r, err := htest.OneWayANOVA(map[string][]float64{
//	    "control": control,
//	    "treated": treated,
//	})
//	reject, _ := r.Evaluate(0.05)
//
// # t-tests
//
//	r, _ := htest.WelchTTest(xs1, xs2)    // unequal variances
//	r, _ := htest.OneSampleTTest(xs, 10)  // H0: mean(xs) == 10
//	r, _ := htest.PairedTTest(before, after)
//
// # Serial correlation
//
//	r, _ := htest.LjungBox(residuals, 10, fitdf)
package htest
