// Package gostats is a statistical distribution and hypothesis-testing
// engine for numeric samples.
//
// The library is layered bottom-up: specfun provides log-gamma and the
// regularized incomplete beta/gamma integrals; dist builds F, t, and
// chi-squared CDFs and p-values on top of them; linalg holds the
// shared least-squares kernel; and the remaining packages consume
// those primitives.
//
// # Quick Start
//
// Run a one-way ANOVA over named groups:
//
//	result, _ := htest.OneWayANOVA(map[string][]float64{
//		"control":   control,
//		"treatment": treatment,
//	})
//	fmt.Println(result.Interpret(0.05))
//
// Test a series for a unit root with GLS detrending and automatic lag
// selection:
//
//	result, _ := stationarity.ADFGLS(series, -1, stationarity.TypeDrift)
//	reject, _ := result.Evaluate(0.05)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - specfun: log-gamma, gamma, regularized incomplete beta and gamma
//   - dist: F, Student's t, and chi-squared distributions with t-test
//     and ANOVA p-value helpers
//   - htest: one-way ANOVA, t-tests, and the Ljung-Box test with
//     result objects carrying an Evaluate/Interpret verdict API
//   - stationarity: Dickey-Fuller, ADF-GLS, KPSS, and turning-point
//     tests
//   - regression: linear, polynomial, and quantile regression
//   - linalg: the shared ordinary-least-squares kernel
//   - sample: descriptive helpers for plain []float64 samples
//
// Every result and model value is immutable once returned and safe to
// share across goroutines.
package gostats
