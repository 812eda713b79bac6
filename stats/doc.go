// Package stats offers descriptive statistics, counting and simple linear
// regression over float64 samples.
//
// Descriptive: Mean, Median, Mode, Variance and StdDev. Variance takes a
// sample flag that selects the n-1 (Bessel) denominator; fewer than two
// points give a variance of 0.
//
// Counting: Permutations and Combinations are exact in uint64 and report
// ErrOverflow instead of wrapping; r outside [0, n] counts as 0 ways.
// BinomialProbability builds on Combinations.
//
// Regression: LinearRegression fits y = slope·x + intercept by ordinary
// least squares. When every x is equal the slope is 0 and the intercept is
// the mean of y.
package stats
