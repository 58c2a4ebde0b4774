package regression

import (
	"errors"
	"math"
	"testing"
)

func TestLinearRegressionExactFit(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4, 5}
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = 2 + 3*xi
	}
	f, err := LinearRegression(x, y)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(f.Intercept-2) > 1e-10 || math.Abs(f.Slope-3) > 1e-10 {
		t.Errorf("fit = (%f, %f), expected (2, 3)", f.Intercept, f.Slope)
	}
	if math.Abs(f.R2-1) > 1e-10 {
		t.Errorf("R2 = %f, expected 1 for a noiseless line", f.R2)
	}
	if math.Abs(f.Predict(10)-32) > 1e-10 {
		t.Errorf("Predict(10) = %f, expected 32", f.Predict(10))
	}
}

func TestLinearRegressionHandChecked(t *testing.T) {
	// Slope 3/5, intercept 1/2, SSE 0.2, SST 2 by hand.
	x := []float64{1, 2, 3, 4}
	y := []float64{1, 2, 2, 3}
	f, err := LinearRegression(x, y)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(f.Slope-0.6) > 1e-12 {
		t.Errorf("Slope = %f, expected 0.6", f.Slope)
	}
	if math.Abs(f.Intercept-0.5) > 1e-12 {
		t.Errorf("Intercept = %f, expected 0.5", f.Intercept)
	}
	if math.Abs(f.R2-0.9) > 1e-12 {
		t.Errorf("R2 = %f, expected 0.9", f.R2)
	}
	if f.NObs != 4 {
		t.Errorf("NObs = %d, expected 4", f.NObs)
	}
}

func TestLinearRegressionValidation(t *testing.T) {
	if _, err := LinearRegression([]float64{1, 2}, []float64{1, 2, 3}); !errors.Is(err, ErrMismatchedSamples) {
		t.Errorf("expected ErrMismatchedSamples, got %v", err)
	}
	if _, err := LinearRegression([]float64{1, 2}, []float64{1, 2}); !errors.Is(err, ErrSampleSize) {
		t.Errorf("expected ErrSampleSize, got %v", err)
	}
}

func TestPolynomialRegressionExactFit(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4, 5}
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = 1 - 2*xi + xi*xi
	}
	f, err := PolynomialRegression(x, y, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{1, -2, 1}
	for i, c := range f.Coefficients {
		if math.Abs(c-want[i]) > 1e-9 {
			t.Errorf("coefficient %d = %f, expected %f", i, c, want[i])
		}
	}
	if math.Abs(f.R2-1) > 1e-10 {
		t.Errorf("R2 = %f, expected 1", f.R2)
	}
	if math.Abs(f.Predict(3)-4) > 1e-9 {
		t.Errorf("Predict(3) = %f, expected 4", f.Predict(3))
	}
}

func TestPolynomialDegreeOneMatchesLinear(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6}
	y := []float64{1.1, 1.9, 3.2, 3.8, 5.1, 5.9}
	lin, err := LinearRegression(x, y)
	if err != nil {
		t.Fatal(err)
	}
	poly, err := PolynomialRegression(x, y, 1)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(poly.Coefficients[0]-lin.Intercept) > 1e-10 ||
		math.Abs(poly.Coefficients[1]-lin.Slope) > 1e-10 {
		t.Errorf("degree-1 fit %v does not match the linear fit (%f, %f)",
			poly.Coefficients, lin.Intercept, lin.Slope)
	}
	if math.Abs(poly.R2-lin.R2) > 1e-10 {
		t.Errorf("R2 mismatch: %f vs %f", poly.R2, lin.R2)
	}
}

func TestPolynomialRegressionValidation(t *testing.T) {
	x := []float64{1, 2, 3}
	if _, err := PolynomialRegression(x, x, 0); !errors.Is(err, ErrInvalidDegree) {
		t.Errorf("expected ErrInvalidDegree, got %v", err)
	}
	if _, err := PolynomialRegression(x, x, 2); !errors.Is(err, ErrSampleSize) {
		t.Errorf("expected ErrSampleSize for n == degree+1, got %v", err)
	}
	if _, err := PolynomialRegression(x, []float64{1, 2}, 1); !errors.Is(err, ErrMismatchedSamples) {
		t.Errorf("expected ErrMismatchedSamples, got %v", err)
	}
}

func TestQuantileRegressionRecoversLine(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = 1 + 2*xi
	}
	f, err := QuantileRegression(x, y, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(f.Intercept-1) > 1e-6 || math.Abs(f.Slope-2) > 1e-6 {
		t.Errorf("median fit = (%f, %f), expected (1, 2)", f.Intercept, f.Slope)
	}
	if math.Abs(f.Predict(20)-41) > 1e-5 {
		t.Errorf("Predict(20) = %f, expected 41", f.Predict(20))
	}
}

func TestQuantileRegressionIgnoresOutlier(t *testing.T) {
	// Five points on y = x plus one gross outlier. The median fit
	// runs through the majority.
	x := []float64{0, 1, 2, 3, 4, 5}
	y := []float64{0, 1, 2, 3, 4, -10}
	f, err := QuantileRegression(x, y, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(f.Intercept) > 1e-6 || math.Abs(f.Slope-1) > 1e-6 {
		t.Errorf("median fit = (%f, %f), expected (0, 1)", f.Intercept, f.Slope)
	}
}

func TestQuantileRegressionTauValidation(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	for _, tau := range []float64{0, 1, -0.5, 1.5} {
		if _, err := QuantileRegression(x, x, tau); !errors.Is(err, ErrInvalidTau) {
			t.Errorf("tau=%g: expected ErrInvalidTau, got %v", tau, err)
		}
	}
}

func TestQuantileRegressionValidation(t *testing.T) {
	if _, err := QuantileRegression([]float64{1, 2, 3}, []float64{1, 2}, 0.5); !errors.Is(err, ErrMismatchedSamples) {
		t.Errorf("expected ErrMismatchedSamples, got %v", err)
	}
	if _, err := QuantileRegression([]float64{1}, []float64{1}, 0.5); !errors.Is(err, ErrSampleSize) {
		t.Errorf("expected ErrSampleSize, got %v", err)
	}
}
