package arith

import (
	"math"

	"tricalc/internal/domain"
)

// Apply evaluates prev op curr.
func Apply(op domain.Operator, prev, curr float64) float64 {
	switch op {
	case domain.OpAdd:
		return prev + curr
	case domain.OpSub:
		return prev - curr
	case domain.OpMul:
		return prev * curr
	case domain.OpDiv:
		return prev / curr
	case domain.OpPow:
		return math.Pow(prev, curr)
	case domain.OpNthRoot:
		// Real-exponent power: a negative radicand with a non-integer
		// exponent is NaN, odd roots of negatives included.
		return math.Pow(prev, 1/curr)
	}
	return math.NaN()
}

var unary = map[domain.ScientificFunction]func(float64) float64{
	domain.FnSin:   math.Sin,
	domain.FnCos:   math.Cos,
	domain.FnTan:   math.Tan,
	domain.FnLog10: math.Log10,
	domain.FnLn:    math.Log,
	domain.FnSqrt:  math.Sqrt,
	domain.FnPi:    func(float64) float64 { return math.Pi },
	domain.FnE:     func(float64) float64 { return math.E },
}

// ApplyUnary evaluates fn(x), x in radians for the trigonometric functions.
func ApplyUnary(fn domain.ScientificFunction, x float64) float64 {
	f, ok := unary[fn]
	if !ok {
		return math.NaN()
	}
	return f(x)
}
