package types

import (
	"sort"
	"time"
)

// RateTable maps currency codes to rates relative to one base currency.
//
// A RateTable is immutable; the zero value is an empty table.
type RateTable struct {
	base      string
	rates     map[string]float64
	fetchedAt time.Time
}

// NewRateTable copies rates into a new table.
func NewRateTable(base string, rates map[string]float64, fetchedAt time.Time) RateTable {
	m := make(map[string]float64, len(rates))
	for code, r := range rates {
		m[code] = r
	}
	return RateTable{base: base, rates: m, fetchedAt: fetchedAt}
}

// Base returns the code the rates are expressed in.
func (t RateTable) Base() string { return t.base }

// FetchedAt returns when the table was obtained.
func (t RateTable) FetchedAt() time.Time { return t.fetchedAt }

// Len returns the number of currencies in the table.
func (t RateTable) Len() int { return len(t.rates) }

// Empty reports whether the table holds no rates.
func (t RateTable) Empty() bool { return len(t.rates) == 0 }

// Rate looks up the rate for code.
func (t RateTable) Rate(code string) (float64, bool) {
	r, ok := t.rates[code]
	return r, ok
}

// Codes returns the currency codes in lexical order.
func (t RateTable) Codes() []string {
	out := make([]string, 0, len(t.rates))
	for code := range t.rates {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
