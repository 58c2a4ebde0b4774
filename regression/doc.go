// Package regression provides three estimators of a conditional
// relationship between two numeric samples: LinearRegression and
// PolynomialRegression solve the normal equations through the shared
// least-squares kernel, while QuantileRegression minimizes the pinball
// loss by rewriting it as a linear program and running a simplex
// solver.
//
// Each fit returns an immutable model value with the coefficients,
// their standard errors where defined, and a Predict method.
package regression
