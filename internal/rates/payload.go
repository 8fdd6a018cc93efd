package rates

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"tricalc/internal/domain"
)

// DefaultURL is the public endpoint used when nothing else is configured.
const DefaultURL = "https://api.exchangerate-api.com/v4/latest/USD"

// ErrMalformedPayload marks a response that is not a usable rate table.
var ErrMalformedPayload = errors.New("malformed rate payload")

// payload is the wire form of a rate table.
type payload struct {
	Base  string             `json:"base"`
	Date  string             `json:"date,omitempty"`
	Rates map[string]float64 `json:"rates"`
}

func (p payload) table(fetchedAt time.Time) (domain.RateTable, error) {
	if len(p.Rates) == 0 {
		return domain.RateTable{}, fmt.Errorf("%w: no rates", ErrMalformedPayload)
	}
	for code, r := range p.Rates {
		if code == "" || !(r > 0) {
			return domain.RateTable{}, fmt.Errorf("%w: rate %q = %v", ErrMalformedPayload, code, r)
		}
	}
	return domain.NewRateTable(p.Base, p.Rates, fetchedAt), nil
}

// LoadFile reads a rate table from a JSON file in the payload format.
func LoadFile(path string) (domain.RateTable, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.RateTable{}, err
	}
	var p payload
	if err := json.Unmarshal(b, &p); err != nil {
		return domain.RateTable{}, fmt.Errorf("%w: %s: %v", ErrMalformedPayload, path, err)
	}
	fi, err := os.Stat(path)
	if err != nil {
		return domain.RateTable{}, err
	}
	return p.table(fi.ModTime())
}

// SampleTable is a fixed USD-based table for the development server.
func SampleTable() domain.RateTable {
	return domain.NewRateTable("USD", map[string]float64{
		"USD": 1,
		"EUR": 0.92,
		"GBP": 0.79,
		"JPY": 151.4,
		"INR": 83.3,
		"CHF": 0.9,
		"CAD": 1.36,
		"AUD": 1.52,
	}, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
}
