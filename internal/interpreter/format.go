package interpreter

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	textInf    = "Infinity"
	textNegInf = "-Infinity"
	textNaN    = "NaN"
)

// FormatNumber renders f the way a JavaScript number prints: the shortest
// round-trippable decimal, switching to exponent form ("1.5e-7", "1e+21")
// below 1e-6 and from 1e21 up.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return textNaN
	case math.IsInf(f, 1):
		return textInf
	case math.IsInf(f, -1):
		return textNegInf
	case f == 0:
		return "0"
	}
	if abs := math.Abs(f); abs < 1e-6 || abs >= 1e21 {
		mant, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
		return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// parseOperand reads the longest numeric prefix of s, so "3(" is 3 and
// "-Infinity" is negative infinity. Text without one is NaN.
func parseOperand(s string) float64 {
	s = strings.TrimLeft(s, " \t")
	n := numericPrefix(s)
	if n == 0 {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s[:n], 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
			return f
		}
		return math.NaN()
	}
	return f
}

// numericPrefix returns the length of the float literal at the start of s:
// an optional sign, then "Infinity" or digits with at most one point and an
// optional exponent.
func numericPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], textInf) {
		return i + len(textInf)
	}
	digits := 0
	for ; i < len(s) && isDigit(s[i]); i++ {
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for ; i < len(s) && isDigit(s[i]); i++ {
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	return i
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// replaceable reports whether typed text should overwrite s instead of
// extending it.
func replaceable(s string) bool {
	switch s {
	case "0", "", textInf, textNegInf, textNaN:
		return true
	}
	return false
}

func appendText(cur, s string) string {
	if replaceable(cur) {
		return s
	}
	return cur + s
}

func openBrackets(s string) bool {
	return strings.Count(s, "(") > strings.Count(s, ")")
}
