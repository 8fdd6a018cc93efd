package types

import "fmt"

// Operator is a binary arithmetic operator held as the pending operation.
type Operator int

const (
	OpNone Operator = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpPow
	OpNthRoot
)

var operatorSymbols = [...]string{
	OpNone:    "",
	OpAdd:     "+",
	OpSub:     "-",
	OpMul:     "×",
	OpDiv:     "÷",
	OpPow:     "^",
	OpNthRoot: "yroot",
}

// Symbol returns the display symbol shown next to the previous operand.
func (op Operator) Symbol() string {
	if op < 0 || int(op) >= len(operatorSymbols) {
		return fmt.Sprintf("op(%d)", int(op))
	}
	return operatorSymbols[op]
}

func (op Operator) String() string { return op.Symbol() }

// Scientific reports whether the operator is only offered in scientific mode.
func (op Operator) Scientific() bool { return op == OpPow || op == OpNthRoot }
