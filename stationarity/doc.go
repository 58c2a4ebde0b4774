// Package stationarity implements tests for unit roots and randomness
// in univariate series.
//
// DickeyFuller runs the classic Dickey-Fuller regression with a choice
// of deterministic terms (none, drift, trend) and compares the tau
// statistic against MacKinnon response-surface critical values. ADFGLS
// applies the Elliott-Rothenberg-Stock GLS detrending before the
// augmented regression and can pick its lag order automatically by
// minimizing a modified AIC. KPSS reverses the null: its statistic
// rejects stationarity, not the unit root. TurningPoint is a
// distribution-free randomness check based on counting local peaks and
// troughs.
//
// Every test returns a result struct carrying the statistic, the
// sample size, and the relevant critical values or p-value, with
// Evaluate and Interpret helpers for reading off a decision at a given
// significance level.
package stationarity
