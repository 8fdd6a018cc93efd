// Package arith applies binary operators and scientific functions to float64
// operands.
//
// Both functions are total: anomalies such as division by zero or the root
// of a negative number produce IEEE-754 infinities and NaN instead of errors.
package arith
