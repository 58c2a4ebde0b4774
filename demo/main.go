// Package main walks through the statistical engine on synthetic data:
// special functions, F/t/chi-squared distributions, hypothesis tests,
// unit-root and randomness tests, and the three regression estimators.
package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/perhult/gostats/dist"
	"github.com/perhult/gostats/htest"
	"github.com/perhult/gostats/regression"
	"github.com/perhult/gostats/sample"
	"github.com/perhult/gostats/specfun"
	"github.com/perhult/gostats/stationarity"
)

func main() {
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("gostats Demonstration - distributions, hypothesis tests, regression")
	fmt.Println(strings.Repeat("=", 80))

	demoSpecialFunctions()
	demoDistributions()
	demoHypothesisTests()
	demoStationarity()
	demoRegression()

	fmt.Println(strings.Repeat("=", 80))
}

func section(title string) {
	fmt.Printf("\n%s\n%s\n%s\n", strings.Repeat("=", 80), title, strings.Repeat("=", 80))
}

func demoSpecialFunctions() {
	section("1. Special functions")

	fmt.Printf("   logGamma(5)    = %.12f (exact: ln 24)\n", specfun.LogGamma(5))
	fmt.Printf("   gamma(0.5)     = %.12f (exact: sqrt(pi) = %.12f)\n", specfun.Gamma(0.5), math.Sqrt(math.Pi))
	ib, _ := specfun.RegularizedIncompleteBeta(0.3, 2, 3)
	fmt.Printf("   I_0.3(2,3)     = %.12f\n", ib)
	gp, _ := specfun.RegularizedGammaP(2.5, 1.0)
	fmt.Printf("   P(2.5, 1.0)    = %.12f\n", gp)
}

func demoDistributions() {
	section("2. Distributions")

	f, _ := dist.NewFDist(5, 10)
	cdf, _ := f.CDF(2.5)
	fmt.Printf("   F(5,10) CDF at 2.5          = %.6f\n", cdf)

	td, _ := dist.NewTDist(9)
	p, _ := td.TwoTailedPValue(2.262)
	fmt.Printf("   t(9) two-tailed p at 2.262  = %.6f\n", p)

	chi, _ := dist.NewChiSquaredDist(3)
	pc, _ := chi.PValue(7.81)
	fmt.Printf("   chi2(3) p-value at 7.81     = %.6f\n", pc)
}

func demoHypothesisTests() {
	section("3. Hypothesis tests")

	groups := map[string][]float64{
		"control":   {18.2, 20.1, 17.6, 16.8, 18.8, 19.7},
		"treatment": {24.6, 25.1, 21.1, 22.3, 23.1, 25.0},
		"placebo":   {19.1, 18.4, 21.7, 20.2, 19.9, 18.8},
	}
	anova, err := htest.OneWayANOVA(groups)
	if err != nil {
		fmt.Printf("   ANOVA error: %v\n", err)
		return
	}
	fmt.Printf("   %s\n", anova)
	fmt.Printf("   %s\n", anova.Interpret(0.05))

	tt, err := htest.WelchTTest(groups["control"], groups["treatment"])
	if err != nil {
		fmt.Printf("   t-test error: %v\n", err)
		return
	}
	fmt.Printf("   %s\n", tt)
	fmt.Printf("   %s\n", tt.Interpret(0.05))
}

func demoStationarity() {
	section("4. Stationarity and randomness tests")

	n := 200
	stationary := make([]float64, n)
	trending := make([]float64, n)
	for i := 0; i < n; i++ {
		stationary[i] = 2*math.Sin(float64(i)) + float64(i%5-2)/5
		trending[i] = 0.5*float64(i) + 0.3*math.Sin(float64(i))
	}

	fmt.Printf("   Stationary series: mean=%.3f sd=%.3f\n",
		sample.Mean(stationary), sample.StdDev(stationary))

	if r, err := stationarity.DickeyFuller(stationary, stationarity.TypeDrift); err == nil {
		fmt.Printf("   DF (stationary):  %s\n", r.Interpret(0.05))
	}
	if r, err := stationarity.DickeyFuller(trending, stationarity.TypeDrift); err == nil {
		fmt.Printf("   DF (trending):    %s\n", r.Interpret(0.05))
	}
	if r, err := stationarity.ADFGLS(stationary, -1, stationarity.TypeDrift); err == nil {
		fmt.Printf("   ADF-GLS:          %s (auto lags=%d)\n", r.Interpret(0.05), r.Lags)
	}
	if r, err := stationarity.KPSS(trending, stationarity.TypeTrend); err == nil {
		fmt.Printf("   KPSS (trend):     %s\n", r.Interpret(0.05))
	}
	if r, err := stationarity.TurningPoint(stationary); err == nil {
		fmt.Printf("   TurningPoint:     %s\n", r.Interpret(0.05))
	}

	if r, err := htest.LjungBox(stationary, 10, 0); err == nil {
		fmt.Printf("   Ljung-Box:        %s\n", r.Interpret(0.05))
	}
}

func demoRegression() {
	section("5. Regression estimators")

	x := make([]float64, 30)
	y := make([]float64, 30)
	for i := range x {
		x[i] = float64(i)
		y[i] = 3 + 1.5*x[i] + math.Sin(float64(i)) // bounded disturbance
	}
	// A pair of gross outliers the median fit should shrug off.
	y[10] += 40
	y[20] -= 40

	if f, err := regression.LinearRegression(x, y); err == nil {
		fmt.Printf("   OLS:      %s\n", f)
	}
	if f, err := regression.PolynomialRegression(x, y, 2); err == nil {
		fmt.Printf("   Poly(2):  %s\n", f)
	}
	if f, err := regression.QuantileRegression(x, y, 0.5); err == nil {
		fmt.Printf("   Median:   %s\n", f)
	}
	if f, err := regression.QuantileRegression(x, y, 0.9); err == nil {
		fmt.Printf("   Q(0.9):   %s\n", f)
	}
}
