package stationarity

import "fmt"

// A cvPoly is an asymptotic critical-value approximation
// CV(T) = b0 + b1/T + b2/T^2 + b3/T^3.
type cvPoly [4]float64

func (p cvPoly) at(n int) float64 {
	t := float64(n)
	return p[0] + p[1]/t + p[2]/(t*t) + p[3]/(t*t*t)
}

// dfCriticalValues holds the MacKinnon (2010) response-surface
// coefficients for the Dickey-Fuller tau statistic, keyed by test type
// and significance level in percent.
var dfCriticalValues = map[TestType]map[int]cvPoly{
	TypeNone: {
		1:  {-2.56574, -2.2358, -3.627, 0},
		5:  {-1.94100, -0.2686, -3.365, 31.223},
		10: {-1.61682, 0.2656, -2.714, 25.364},
	},
	TypeDrift: {
		1:  {-3.43035, -6.5393, -16.786, -79.433},
		5:  {-2.86154, -2.8903, -4.234, -40.040},
		10: {-2.56677, -1.5384, -2.809, 0},
	},
	TypeTrend: {
		1:  {-3.95877, -9.0531, -28.428, -134.155},
		5:  {-3.41049, -4.3904, -9.036, -45.374},
		10: {-3.12705, -2.5856, -3.925, -22.380},
	},
}

// adfGLSCriticalValues approximates the critical values of the GLS
// detrended Dickey-Fuller statistic. The demeaned ("drift") statistic
// follows the no-constant Dickey-Fuller distribution; the detrended
// ("trend") coefficients are a fit to Elliott, Rothenberg and Stock
// (1996), Table 1.
//
// TODO: replace the trend fit with MacKinnon-quality response-surface
// estimates once recomputed against the published table.
var adfGLSCriticalValues = map[TestType]map[int]cvPoly{
	TypeDrift: {
		1:  {-2.56574, -2.2358, -3.627, 0},
		5:  {-1.94100, -0.2686, -3.365, 31.223},
		10: {-1.61682, 0.2656, -2.714, 25.364},
	},
	TypeTrend: {
		1:  {-3.48, -5.5, -450, 0},
		5:  {-2.89, -13, -100, 0},
		10: {-2.57, -18, 100, 0},
	},
}

// kpssCriticalValues holds the fixed KPSS critical values from
// Kwiatkowski, Phillips, Schmidt and Shin (1992), Table 1; the level
// statistic uses the "drift" row, the detrended statistic the "trend"
// row.
var kpssCriticalValues = map[TestType]map[int]float64{
	TypeDrift: {1: 0.739, 5: 0.463, 10: 0.347},
	TypeTrend: {1: 0.216, 5: 0.146, 10: 0.119},
}

// criticalValueTable evaluates a polynomial table at the given sample
// size, producing the "1%"/"5%"/"10%" map stored on results.
func criticalValueTable(table map[int]cvPoly, n int) map[string]float64 {
	return map[string]float64{
		"1%":  table[1].at(n),
		"5%":  table[5].at(n),
		"10%": table[10].at(n),
	}
}

// criticalValueAt looks up the critical value for a supported alpha in
// a result's critical-value map.
func criticalValueAt(cvs map[string]float64, alpha float64) (float64, error) {
	key, err := levelKey(alpha)
	if err != nil {
		return 0, err
	}
	cv, ok := cvs[key]
	if !ok {
		return 0, fmt.Errorf("stationarity: no critical value tabulated at %s", key)
	}
	return cv, nil
}
