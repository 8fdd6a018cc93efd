package types

// Action is one discrete user input consumed by the interpreter.
//
// The set of actions is closed: only the types in this file implement it.
type Action interface {
	isAction()
}

// Digit appends a decimal digit 0-9.
type Digit struct{ D byte }

// DecimalPoint appends ".".
type DecimalPoint struct{}

// OperatorAction selects the pending binary operator.
type OperatorAction struct{ Op Operator }

// Evaluate resolves the pending operation.
type Evaluate struct{}

// Clear resets the operands and the pending operator.
type Clear struct{}

// Backspace removes the last typed character.
type Backspace struct{}

// SciFunction applies a unary scientific function.
type SciFunction struct{ Fn ScientificFunction }

// Percent divides the current operand by 100.
type Percent struct{}

// ModeChange switches the interaction mode.
type ModeChange struct{ Mode Mode }

// BracketToken appends a parenthesis as free text.
type BracketToken struct{ Token Bracket }

// SelectCategory picks the converter category.
type SelectCategory struct{ Category ConversionCategory }

// SelectUnits picks the converter source and target units.
type SelectUnits struct{ From, To string }

// SwapUnits exchanges the converter source and target units.
type SwapUnits struct{}

// Refresh recomputes the conversion, e.g. once rates have arrived.
type Refresh struct{}

func (Digit) isAction()          {}
func (DecimalPoint) isAction()   {}
func (OperatorAction) isAction() {}
func (Evaluate) isAction()       {}
func (Clear) isAction()          {}
func (Backspace) isAction()      {}
func (SciFunction) isAction()    {}
func (Percent) isAction()        {}
func (ModeChange) isAction()     {}
func (BracketToken) isAction()   {}
func (SelectCategory) isAction() {}
func (SelectUnits) isAction()    {}
func (SwapUnits) isAction()      {}
func (Refresh) isAction()        {}

// Bracket is an open, close or toggle parenthesis token.
type Bracket int

const (
	BracketOpen Bracket = iota
	BracketClose
	// BracketToggle opens when the buffer is balanced and closes otherwise.
	BracketToggle
)

// Effect is a side effect the session actor must perform after a reduction.
type Effect int

const (
	EffectNone Effect = iota
	EffectLoadRates
)
