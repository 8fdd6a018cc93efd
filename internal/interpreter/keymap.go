package interpreter

import (
	"errors"
	"fmt"
	"strings"

	"tricalc/internal/domain"
)

// ErrUnknownToken is returned by ParseActions for input it cannot map.
var ErrUnknownToken = errors.New("unknown token")

var keywords = map[string]domain.Action{
	"+":     domain.OperatorAction{Op: domain.OpAdd},
	"-":     domain.OperatorAction{Op: domain.OpSub},
	"*":     domain.OperatorAction{Op: domain.OpMul},
	"x":     domain.OperatorAction{Op: domain.OpMul},
	"×":     domain.OperatorAction{Op: domain.OpMul},
	"/":     domain.OperatorAction{Op: domain.OpDiv},
	"÷":     domain.OperatorAction{Op: domain.OpDiv},
	"^":     domain.OperatorAction{Op: domain.OpPow},
	"**":    domain.OperatorAction{Op: domain.OpPow},
	"yroot": domain.OperatorAction{Op: domain.OpNthRoot},
	"root":  domain.OperatorAction{Op: domain.OpNthRoot},

	"=":         domain.Evaluate{},
	"c":         domain.Clear{},
	"ac":        domain.Clear{},
	"clear":     domain.Clear{},
	"del":       domain.Backspace{},
	"bs":        domain.Backspace{},
	"backspace": domain.Backspace{},
	"⌫":         domain.Backspace{},
	"%":         domain.Percent{},

	"sin":  domain.SciFunction{Fn: domain.FnSin},
	"cos":  domain.SciFunction{Fn: domain.FnCos},
	"tan":  domain.SciFunction{Fn: domain.FnTan},
	"log":  domain.SciFunction{Fn: domain.FnLog10},
	"ln":   domain.SciFunction{Fn: domain.FnLn},
	"sqrt": domain.SciFunction{Fn: domain.FnSqrt},
	"√":    domain.SciFunction{Fn: domain.FnSqrt},
	"pi":   domain.SciFunction{Fn: domain.FnPi},
	"π":    domain.SciFunction{Fn: domain.FnPi},
	"e":    domain.SciFunction{Fn: domain.FnE},

	"(":  domain.BracketToken{Token: domain.BracketOpen},
	")":  domain.BracketToken{Token: domain.BracketClose},
	"()": domain.BracketToken{Token: domain.BracketToggle},

	"swap": domain.SwapUnits{},
}

// singles are the characters split out of a compact field such as "3+4=".
const singles = "+-*/^%()=×÷"

// ParseActions translates one line of typed input into actions.
//
// Fields are separated by whitespace. A field is either a keyword, a
// directive (mode:<mode>, cat:<category>, units:<from>:<to>), or a compact
// run of numbers and operator characters such as "12.5*3=".
func ParseActions(line string) ([]domain.Action, error) {
	var out []domain.Action
	for _, field := range strings.Fields(line) {
		acts, err := parseField(field)
		if err != nil {
			return nil, err
		}
		out = append(out, acts...)
	}
	return out, nil
}

func parseField(field string) ([]domain.Action, error) {
	if a, ok := keywords[strings.ToLower(field)]; ok {
		return []domain.Action{a}, nil
	}
	if name, arg, ok := strings.Cut(field, ":"); ok {
		a, err := parseDirective(strings.ToLower(name), arg)
		if err != nil {
			return nil, err
		}
		return []domain.Action{a}, nil
	}

	var out []domain.Action
	for i := 0; i < len(field); {
		r := rune(field[i])
		switch {
		case r >= '0' && r <= '9':
			out = append(out, domain.Digit{D: byte(r - '0')})
			i++
		case r == '.':
			out = append(out, domain.DecimalPoint{})
			i++
		case isLetter(field[i]):
			j := i
			for j < len(field) && isLetter(field[j]) {
				j++
			}
			a, ok := keywords[strings.ToLower(field[i:j])]
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownToken, field[i:j])
			}
			out = append(out, a)
			i = j
		default:
			tok, size := nextSingle(field[i:])
			if size == 0 {
				return nil, fmt.Errorf("%w: %q", ErrUnknownToken, field[i:])
			}
			out = append(out, keywords[tok])
			i += size
		}
	}
	return out, nil
}

// nextSingle returns the operator character at the start of s and its byte
// length, or size 0 when s does not start with one.
func nextSingle(s string) (string, int) {
	for _, r := range s {
		if strings.ContainsRune(singles, r) {
			tok := string(r)
			return tok, len(tok)
		}
		break
	}
	return "", 0
}

func isLetter(b byte) bool { return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' }

func parseDirective(name, arg string) (domain.Action, error) {
	switch name {
	case "mode":
		m, err := domain.ParseMode(arg)
		if err != nil {
			return nil, err
		}
		return domain.ModeChange{Mode: m}, nil
	case "cat", "category":
		c, err := domain.ParseCategory(arg)
		if err != nil {
			return nil, err
		}
		return domain.SelectCategory{Category: c}, nil
	case "units":
		from, to, ok := strings.Cut(arg, ":")
		if !ok || from == "" || to == "" {
			return nil, fmt.Errorf("%w: units needs <from>:<to>, got %q", ErrUnknownToken, arg)
		}
		return domain.SelectUnits{From: from, To: to}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownToken, name+":"+arg)
}
