package types

import (
	"fmt"
	"strings"
)

// Mode selects which reducer path handles an action.
type Mode int

const (
	ModeStandard Mode = iota
	ModeScientific
	ModeConverter
)

var modeNames = [...]string{
	ModeStandard:   "standard",
	ModeScientific: "scientific",
	ModeConverter:  "converter",
}

// String returns the lower-case name of the mode.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("mode(%d)", int(m))
	}
	return modeNames[m]
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool { return m >= ModeStandard && m <= ModeConverter }

// ParseMode accepts a mode name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}
