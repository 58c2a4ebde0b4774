package stationarity

import (
	"errors"
	"math"
	"testing"
)

// oscillating returns a bounded, mean-reverting series.
func oscillating(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = 2*math.Sin(float64(i)) + float64(i%5-2)/5
	}
	return xs
}

// drifting returns a series with a stochastic-trend-like level: each
// step adds a positive drift plus a bounded disturbance.
func drifting(n int) []float64 {
	xs := make([]float64, n)
	for i := 1; i < n; i++ {
		xs[i] = xs[i-1] + 0.5 + 0.3*math.Sin(float64(i))
	}
	return xs
}

func TestParseTestType(t *testing.T) {
	for _, s := range []string{"none", "drift", "trend"} {
		typ, err := ParseTestType(s)
		if err != nil || string(typ) != s {
			t.Errorf("ParseTestType(%q) = %v, %v", s, typ, err)
		}
	}
	if _, err := ParseTestType("ct"); err == nil {
		t.Error("expected error for an unknown test type")
	}
}

func TestDickeyFullerStationary(t *testing.T) {
	r, err := DickeyFuller(oscillating(100), TypeDrift)
	if err != nil {
		t.Fatal(err)
	}
	if r.NObs != 99 {
		t.Errorf("NObs = %d, expected 99", r.NObs)
	}
	reject, err := r.Evaluate(0.05)
	if err != nil {
		t.Fatal(err)
	}
	if !reject {
		t.Errorf("tau = %f: a strongly mean-reverting series should reject the unit root", r.Statistic)
	}
	if r.Statistic > -3 {
		t.Errorf("tau = %f, expected a clearly negative statistic", r.Statistic)
	}
}

func TestDickeyFullerNonStationary(t *testing.T) {
	r, err := DickeyFuller(drifting(200), TypeDrift)
	if err != nil {
		t.Fatal(err)
	}
	reject, err := r.Evaluate(0.05)
	if err != nil {
		t.Fatal(err)
	}
	if reject {
		t.Errorf("tau = %f: a drifting level should not reject the unit root under a drift-only regression", r.Statistic)
	}
}

func TestDickeyFullerStatisticDefinition(t *testing.T) {
	r, err := DickeyFuller(oscillating(60), TypeTrend)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(r.Statistic-r.Gamma/r.StdErr) > 1e-12 {
		t.Errorf("Statistic = %g, Gamma/StdErr = %g", r.Statistic, r.Gamma/r.StdErr)
	}
	if r.Type != TypeTrend {
		t.Errorf("Type = %q, expected trend", r.Type)
	}
}

func TestDickeyFullerCriticalValues(t *testing.T) {
	// At large samples the drift critical values approach the
	// asymptotic MacKinnon constants.
	r, err := DickeyFuller(oscillating(1000), TypeDrift)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(r.CriticalValues["5%"]-(-2.8615)) > 0.01 {
		t.Errorf("5%% critical value = %f, expected about -2.86", r.CriticalValues["5%"])
	}
	if math.Abs(r.CriticalValues["1%"]-(-3.4304)) > 0.02 {
		t.Errorf("1%% critical value = %f, expected about -3.43", r.CriticalValues["1%"])
	}
	if !(r.CriticalValues["1%"] < r.CriticalValues["5%"] && r.CriticalValues["5%"] < r.CriticalValues["10%"]) {
		t.Errorf("critical values not ordered: %v", r.CriticalValues)
	}
}

func TestDickeyFullerValidation(t *testing.T) {
	if _, err := DickeyFuller(oscillating(9), TypeDrift); !errors.Is(err, ErrSampleSize) {
		t.Errorf("expected ErrSampleSize, got %v", err)
	}
	constant := make([]float64, 50)
	for i := range constant {
		constant[i] = 1.5
	}
	if _, err := DickeyFuller(constant, TypeDrift); !errors.Is(err, ErrConstantSeries) {
		t.Errorf("expected ErrConstantSeries, got %v", err)
	}
	if _, err := DickeyFuller(oscillating(50), TestType("bogus")); err == nil {
		t.Error("expected error for an invalid test type")
	}
}

func TestDickeyFullerUnsupportedAlpha(t *testing.T) {
	r, err := DickeyFuller(oscillating(50), TypeDrift)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Evaluate(0.025); err == nil {
		t.Error("expected error for an untabulated significance level")
	}
	if _, err := r.Evaluate(0.05); err != nil {
		t.Errorf("0.05 should be supported: %v", err)
	}
}

func TestADFGLSStationary(t *testing.T) {
	r, err := ADFGLS(oscillating(100), 0, TypeDrift)
	if err != nil {
		t.Fatal(err)
	}
	reject, err := r.Evaluate(0.05)
	if err != nil {
		t.Fatal(err)
	}
	if !reject {
		t.Errorf("tau = %f: a strongly mean-reverting series should reject the unit root", r.Statistic)
	}
}

func TestADFGLSNonStationary(t *testing.T) {
	r, err := ADFGLS(drifting(200), 0, TypeDrift)
	if err != nil {
		t.Fatal(err)
	}
	reject, err := r.Evaluate(0.05)
	if err != nil {
		t.Fatal(err)
	}
	if reject {
		t.Errorf("tau = %f: a drifting level should not reject the unit root", r.Statistic)
	}
}

func TestADFGLSAutoLagRoundTrip(t *testing.T) {
	xs := oscillating(120)
	for _, typ := range []TestType{TypeDrift, TypeTrend} {
		auto, err := ADFGLS(xs, -1, typ)
		if err != nil {
			t.Fatalf("%s: auto selection failed: %v", typ, err)
		}
		explicit, err := ADFGLS(xs, auto.Lags, typ)
		if err != nil {
			t.Fatalf("%s: explicit lags failed: %v", typ, err)
		}
		if auto.Statistic != explicit.Statistic ||
			auto.Gamma != explicit.Gamma ||
			auto.StdErr != explicit.StdErr ||
			auto.NObs != explicit.NObs {
			t.Errorf("%s: auto (lags=%d) gives %+v, explicit gives %+v", typ, auto.Lags, auto, explicit)
		}
	}
}

func TestADFGLSLagBound(t *testing.T) {
	xs := oscillating(120)
	auto, err := ADFGLS(xs, -1, TypeDrift)
	if err != nil {
		t.Fatal(err)
	}
	maxLag := int(math.Floor(12 * math.Pow(120.0/100, 0.25)))
	if maxLag > 12 {
		maxLag = 12
	}
	if auto.Lags < 0 || auto.Lags > maxLag {
		t.Errorf("selected lags = %d outside [0, %d]", auto.Lags, maxLag)
	}
}

func TestADFGLSValidation(t *testing.T) {
	if _, err := ADFGLS(oscillating(50), 0, TypeNone); err == nil {
		t.Error("expected error for type none")
	}
	if _, err := ADFGLS(oscillating(9), 0, TypeDrift); !errors.Is(err, ErrSampleSize) {
		t.Errorf("expected ErrSampleSize, got %v", err)
	}
	// Lags so large no observations remain.
	if _, err := ADFGLS(oscillating(12), 9, TypeDrift); !errors.Is(err, ErrSampleSize) {
		t.Errorf("expected ErrSampleSize for excessive lags, got %v", err)
	}
}

func TestKPSSLevelStationary(t *testing.T) {
	r, err := KPSS(oscillating(200), TypeDrift)
	if err != nil {
		t.Fatal(err)
	}
	reject, err := r.Evaluate(0.05)
	if err != nil {
		t.Fatal(err)
	}
	if reject {
		t.Errorf("KPSS = %f: a bounded series should not reject level stationarity", r.Statistic)
	}
}

func TestKPSSTrendingSeries(t *testing.T) {
	xs := make([]float64, 200)
	for i := range xs {
		xs[i] = 0.5*float64(i) + 0.2*math.Sin(float64(i))
	}

	// Strong trend: level stationarity must be rejected...
	level, err := KPSS(xs, TypeDrift)
	if err != nil {
		t.Fatal(err)
	}
	reject, err := level.Evaluate(0.05)
	if err != nil {
		t.Fatal(err)
	}
	if !reject {
		t.Errorf("KPSS = %f: a trending series should reject level stationarity", level.Statistic)
	}

	// ...but the series is stationary around its trend.
	trend, err := KPSS(xs, TypeTrend)
	if err != nil {
		t.Fatal(err)
	}
	reject, err = trend.Evaluate(0.05)
	if err != nil {
		t.Fatal(err)
	}
	if reject {
		t.Errorf("KPSS = %f: a trend-stationary series should not reject trend stationarity", trend.Statistic)
	}
}

func TestKPSSLagWindow(t *testing.T) {
	r, err := KPSS(oscillating(200), TypeDrift)
	if err != nil {
		t.Fatal(err)
	}
	// floor(4 * (200/100)^0.25) = 4.
	if r.Lags != 4 {
		t.Errorf("Lags = %d, expected 4", r.Lags)
	}
	if r.CriticalValues["5%"] != 0.463 {
		t.Errorf("5%% critical value = %f, expected 0.463", r.CriticalValues["5%"])
	}
}

func TestKPSSTrendCriticalValues(t *testing.T) {
	xs := make([]float64, 100)
	for i := range xs {
		xs[i] = float64(i) + math.Sin(float64(i))
	}
	r, err := KPSS(xs, TypeTrend)
	if err != nil {
		t.Fatal(err)
	}
	if r.CriticalValues["5%"] != 0.146 {
		t.Errorf("5%% critical value = %f, expected 0.146", r.CriticalValues["5%"])
	}
}

func TestKPSSValidation(t *testing.T) {
	if _, err := KPSS(oscillating(100), TypeNone); err == nil {
		t.Error("expected error for type none")
	}
	if _, err := KPSS(oscillating(5), TypeDrift); !errors.Is(err, ErrSampleSize) {
		t.Errorf("expected ErrSampleSize, got %v", err)
	}
}

func TestTurningPointMonotonic(t *testing.T) {
	xs := make([]float64, 50)
	for i := range xs {
		xs[i] = float64(i)
	}
	r, err := TurningPoint(xs)
	if err != nil {
		t.Fatal(err)
	}
	if r.TurningPoints != 0 {
		t.Errorf("TurningPoints = %d, expected 0 for a monotone series", r.TurningPoints)
	}
	if r.Expected != 32 {
		t.Errorf("Expected = %f, want 2(n-2)/3 = 32", r.Expected)
	}
	if math.Abs(r.Variance-(16*50-29)/90.0) > 1e-12 {
		t.Errorf("Variance = %f, want (16n-29)/90", r.Variance)
	}
	if r.Statistic > -5 {
		t.Errorf("z = %f, expected a large negative score", r.Statistic)
	}
	if r.PValue > 1e-6 {
		t.Errorf("p = %g, expected an extreme p-value", r.PValue)
	}
	reject, err := r.Evaluate(0.05)
	if err != nil {
		t.Fatal(err)
	}
	if !reject {
		t.Error("a monotone series must reject randomness")
	}
}

func TestTurningPointAlternating(t *testing.T) {
	xs := make([]float64, 30)
	for i := range xs {
		if i%2 == 0 {
			xs[i] = 1
		} else {
			xs[i] = -1
		}
	}
	r, err := TurningPoint(xs)
	if err != nil {
		t.Fatal(err)
	}
	if r.TurningPoints != 28 {
		t.Errorf("TurningPoints = %d, expected every interior point (28)", r.TurningPoints)
	}
	if r.Statistic < 5 {
		t.Errorf("z = %f, expected a large positive score", r.Statistic)
	}
}

func TestTurningPointTies(t *testing.T) {
	// Plateaus produce neither peaks nor troughs.
	xs := []float64{1, 2, 2, 2, 1, 0, 0, 1}
	r, err := TurningPoint(xs)
	if err != nil {
		t.Fatal(err)
	}
	if r.TurningPoints != 0 {
		t.Errorf("TurningPoints = %d, expected 0 with tied shoulders", r.TurningPoints)
	}
}

func TestTurningPointValidation(t *testing.T) {
	if _, err := TurningPoint([]float64{1, 2}); !errors.Is(err, ErrSampleSize) {
		t.Errorf("expected ErrSampleSize, got %v", err)
	}
	if _, err := TurningPoint([]float64{3, 3, 3, 3}); !errors.Is(err, ErrConstantSeries) {
		t.Errorf("expected ErrConstantSeries, got %v", err)
	}
}
