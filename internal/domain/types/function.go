package types

// ScientificFunction is a unary function applied to the current operand in place.
type ScientificFunction int

const (
	FnSin ScientificFunction = iota
	FnCos
	FnTan
	FnLog10
	FnLn
	FnSqrt
	FnPi
	FnE
)

var functionNames = [...]string{
	FnSin:   "sin",
	FnCos:   "cos",
	FnTan:   "tan",
	FnLog10: "log",
	FnLn:    "ln",
	FnSqrt:  "sqrt",
	FnPi:    "pi",
	FnE:     "e",
}

func (f ScientificFunction) String() string {
	if f < 0 || int(f) >= len(functionNames) {
		return "fn?"
	}
	return functionNames[f]
}

// Constant reports whether f ignores its argument (pi and e).
func (f ScientificFunction) Constant() bool { return f == FnPi || f == FnE }
