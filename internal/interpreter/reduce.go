package interpreter

import (
	"strings"

	"tricalc/internal/domain"
	"tricalc/internal/engine/arith"
	"tricalc/internal/engine/convert"
	"tricalc/internal/units"
)

// NewState returns a cleared state in mode with the given converter selection.
func NewState(mode domain.Mode, sel domain.ConverterSelection) domain.SessionState {
	if !mode.Valid() {
		mode = domain.ModeStandard
	}
	return domain.SessionState{
		Mode:         mode,
		CurrentInput: "0",
		Converter:    sel,
	}
}

// DefaultSelection is the converter selection a new session starts with.
func DefaultSelection() domain.ConverterSelection {
	from, to := units.DefaultPair(domain.CategoryLength, domain.RateTable{})
	return domain.ConverterSelection{Category: domain.CategoryLength, From: from, To: to}
}

// Reduce applies one action to st. rates is the session's current rate table
// and may be empty. The returned effect tells the caller whether rates
// should be loaded.
func Reduce(
	st domain.SessionState,
	action domain.Action,
	rates domain.RateTable,
) (domain.SessionState, domain.Effect) {
	switch a := action.(type) {
	case domain.Digit:
		if a.D > 9 {
			return st, domain.EffectNone
		}
		st.CurrentInput = appendText(st.CurrentInput, string(rune('0'+a.D)))
		return edited(st, rates), domain.EffectNone

	case domain.DecimalPoint:
		if replaceable(st.CurrentInput) {
			st.CurrentInput = "0."
		} else if strings.Contains(st.CurrentInput, ".") {
			return st, domain.EffectNone
		} else {
			st.CurrentInput += "."
		}
		return edited(st, rates), domain.EffectNone

	case domain.OperatorAction:
		return selectOperator(st, a.Op), domain.EffectNone

	case domain.Evaluate:
		if st.Mode == domain.ModeConverter {
			return recompute(st, rates), domain.EffectNone
		}
		return evaluate(st), domain.EffectNone

	case domain.Clear:
		st = clearOperands(st)
		return edited(st, rates), domain.EffectNone

	case domain.Backspace:
		cur := st.CurrentInput
		if replaceable(cur) {
			cur = "0"
		} else {
			cur = cur[:len(cur)-1]
		}
		if cur == "" || cur == "-" {
			cur = "0"
		}
		st.CurrentInput = cur
		return edited(st, rates), domain.EffectNone

	case domain.SciFunction:
		return applyFunction(st, a.Fn), domain.EffectNone

	case domain.Percent:
		if st.Mode == domain.ModeConverter {
			return st, domain.EffectNone
		}
		st.CurrentInput = FormatNumber(parseOperand(st.CurrentInput) / 100)
		return st, domain.EffectNone

	case domain.ModeChange:
		return changeMode(st, a.Mode, rates)

	case domain.BracketToken:
		return appendBracket(st, a.Token), domain.EffectNone

	case domain.SelectCategory:
		return selectCategory(st, a.Category, rates)

	case domain.SelectUnits:
		if st.Converter.Category == domain.CategoryCurrency {
			a.From, a.To = strings.ToUpper(a.From), strings.ToUpper(a.To)
		}
		if st.Mode != domain.ModeConverter ||
			!units.Has(st.Converter.Category, a.From, rates) ||
			!units.Has(st.Converter.Category, a.To, rates) {
			return st, domain.EffectNone
		}
		st.Converter.From, st.Converter.To = a.From, a.To
		st.HasResult = false
		return recompute(st, rates), domain.EffectNone

	case domain.SwapUnits:
		if st.Mode != domain.ModeConverter {
			return st, domain.EffectNone
		}
		st.Converter.From, st.Converter.To = st.Converter.To, st.Converter.From
		st.HasResult = false
		return recompute(st, rates), domain.EffectNone

	case domain.Refresh:
		if st.Mode != domain.ModeConverter {
			return st, domain.EffectNone
		}
		sel := st.Converter
		if sel.Category == domain.CategoryCurrency && !rates.Empty() &&
			(!units.Has(sel.Category, sel.From, rates) || !units.Has(sel.Category, sel.To, rates)) {
			st.Converter.From, st.Converter.To = units.DefaultPair(sel.Category, rates)
			st.HasResult = false
		}
		return recompute(st, rates), domain.EffectNone
	}
	return st, domain.EffectNone
}

// edited re-runs the conversion after currentInput changed in converter mode.
func edited(st domain.SessionState, rates domain.RateTable) domain.SessionState {
	if st.Mode != domain.ModeConverter {
		return st
	}
	return recompute(st, rates)
}

// recompute converts currentInput with the current selection. An unavailable
// conversion, including input that is not a number, keeps the previous result.
func recompute(st domain.SessionState, rates domain.RateTable) domain.SessionState {
	sel := st.Converter
	v, ok := convert.Convert(sel.Category, sel.From, sel.To, parseOperand(st.CurrentInput), rates)
	if !ok {
		return st
	}
	st.Result, st.HasResult = v, true
	return st
}

func clearOperands(st domain.SessionState) domain.SessionState {
	st.CurrentInput = "0"
	st.PreviousInput = ""
	st.PendingOperator = domain.OpNone
	return st
}

func selectOperator(st domain.SessionState, op domain.Operator) domain.SessionState {
	if st.Mode == domain.ModeConverter || op <= domain.OpNone || op > domain.OpNthRoot {
		return st
	}
	if op.Scientific() && st.Mode != domain.ModeScientific {
		return st
	}
	st = evaluate(st)
	st.PreviousInput = st.CurrentInput
	st.CurrentInput = "0"
	st.PendingOperator = op
	return st
}

// evaluate resolves the pending operation, if any. Operands are read by
// their numeric prefix; one without a number yields NaN.
func evaluate(st domain.SessionState) domain.SessionState {
	if !st.HasPending() {
		return st
	}
	prev := parseOperand(st.PreviousInput)
	curr := parseOperand(st.CurrentInput)
	st.CurrentInput = FormatNumber(arith.Apply(st.PendingOperator, prev, curr))
	st.PreviousInput = ""
	st.PendingOperator = domain.OpNone
	return st
}

func applyFunction(st domain.SessionState, fn domain.ScientificFunction) domain.SessionState {
	if st.Mode != domain.ModeScientific {
		return st
	}
	if fn.Constant() {
		st.CurrentInput = FormatNumber(arith.ApplyUnary(fn, 0))
		return st
	}
	st.CurrentInput = FormatNumber(arith.ApplyUnary(fn, parseOperand(st.CurrentInput)))
	return st
}

func appendBracket(st domain.SessionState, b domain.Bracket) domain.SessionState {
	if st.Mode == domain.ModeConverter {
		return st
	}
	var tok string
	switch b {
	case domain.BracketOpen:
		tok = "("
	case domain.BracketClose:
		tok = ")"
	case domain.BracketToggle:
		tok = "("
		if openBrackets(st.CurrentInput) {
			tok = ")"
		}
	default:
		return st
	}
	st.CurrentInput = appendText(st.CurrentInput, tok)
	return st
}

func changeMode(
	st domain.SessionState,
	mode domain.Mode,
	rates domain.RateTable,
) (domain.SessionState, domain.Effect) {
	if !mode.Valid() {
		return st, domain.EffectNone
	}
	st = clearOperands(st)
	st.Mode = mode
	st.Result, st.HasResult = 0, false
	if mode != domain.ModeConverter {
		return st, domain.EffectNone
	}
	st = recompute(st, rates)
	if st.Converter.Category == domain.CategoryCurrency {
		return st, domain.EffectLoadRates
	}
	return st, domain.EffectNone
}

func selectCategory(
	st domain.SessionState,
	c domain.ConversionCategory,
	rates domain.RateTable,
) (domain.SessionState, domain.Effect) {
	if st.Mode != domain.ModeConverter || c < domain.CategoryLength || c > domain.CategoryCurrency {
		return st, domain.EffectNone
	}
	from, to := units.DefaultPair(c, rates)
	st.Converter = domain.ConverterSelection{Category: c, From: from, To: to}
	st.HasResult = false
	st = recompute(st, rates)
	if c == domain.CategoryCurrency {
		return st, domain.EffectLoadRates
	}
	return st, domain.EffectNone
}
