package convert

import (
	"math"

	"tricalc/internal/domain"
	"tricalc/internal/units"
)

// Convert expresses value (in from) in to. ok is false when the conversion
// is unavailable: NaN input, an unknown unit, or a rate not yet loaded.
func Convert(
	category domain.ConversionCategory,
	from, to string,
	value float64,
	rates domain.RateTable,
) (result float64, ok bool) {
	if math.IsNaN(value) {
		return 0, false
	}
	if category == domain.CategoryCurrency {
		return currency(from, to, value, rates)
	}

	fromFactor, ok := units.Factor(category, from)
	if !ok {
		return 0, false
	}
	toFactor, ok := units.Factor(category, to)
	if !ok {
		return 0, false
	}
	inBase := value * fromFactor
	return inBase / toFactor, true
}

func currency(from, to string, value float64, rates domain.RateTable) (float64, bool) {
	if rates.Empty() {
		return 0, false
	}
	fromRate, ok := rates.Rate(from)
	if !ok {
		return 0, false
	}
	toRate, ok := rates.Rate(to)
	if !ok {
		return 0, false
	}
	inBase := value / fromRate
	return inBase * toRate, true
}
