package units

import (
	"errors"

	"tricalc/internal/domain"
)

// ErrUnknownUnit is returned when a unit symbol is not selectable.
var ErrUnknownUnit = errors.New("unknown unit")

type unit struct {
	symbol string
	factor float64
}

// Tables are listed in display order; the first two units are the default pair.
var (
	length = []unit{
		{"m", 1},
		{"km", 1000},
		{"ft", 0.3048},
		{"mi", 1609.34},
		{"cm", 0.01},
		{"inch", 0.0254},
	}
	weight = []unit{
		{"kg", 1},
		{"g", 0.001},
		{"lb", 0.453592},
		{"oz", 0.0283495},
	}
)

// FallbackCurrencies are offered before any rates have been loaded.
var FallbackCurrencies = []string{"USD", "EUR", "GBP", "JPY", "INR"}

func table(c domain.ConversionCategory) []unit {
	switch c {
	case domain.CategoryLength:
		return length
	case domain.CategoryWeight:
		return weight
	}
	return nil
}

// Factor returns how many base units one sym is worth.
func Factor(c domain.ConversionCategory, sym string) (float64, bool) {
	for _, u := range table(c) {
		if u.symbol == sym {
			return u.factor, true
		}
	}
	return 0, false
}

// Symbols lists the units of a static category in display order.
func Symbols(c domain.ConversionCategory) []string {
	t := table(c)
	out := make([]string, len(t))
	for i, u := range t {
		out[i] = u.symbol
	}
	return out
}

// Available lists the selectable units of c. For currency these are the
// loaded codes, or FallbackCurrencies while the table is empty.
func Available(c domain.ConversionCategory, rates domain.RateTable) []string {
	if c != domain.CategoryCurrency {
		return Symbols(c)
	}
	if rates.Empty() {
		return append([]string(nil), FallbackCurrencies...)
	}
	return rates.Codes()
}

// Has reports whether sym is selectable in c.
func Has(c domain.ConversionCategory, sym string, rates domain.RateTable) bool {
	for _, s := range Available(c, rates) {
		if s == sym {
			return true
		}
	}
	return false
}

// CategoryOf finds the static category that defines sym. Unknown symbols are
// assumed to be currency codes.
func CategoryOf(sym string) domain.ConversionCategory {
	if _, ok := Factor(domain.CategoryLength, sym); ok {
		return domain.CategoryLength
	}
	if _, ok := Factor(domain.CategoryWeight, sym); ok {
		return domain.CategoryWeight
	}
	return domain.CategoryCurrency
}

// DefaultPair returns the first two selectable units of c.
func DefaultPair(c domain.ConversionCategory, rates domain.RateTable) (from, to string) {
	avail := Available(c, rates)
	switch len(avail) {
	case 0:
		return "", ""
	case 1:
		return avail[0], avail[0]
	}
	return avail[0], avail[1]
}
