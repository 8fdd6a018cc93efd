package types

import (
	"fmt"
	"strings"
)

// ConversionCategory groups units that can be converted into each other.
type ConversionCategory int

const (
	CategoryLength ConversionCategory = iota
	CategoryWeight
	CategoryCurrency
)

var categoryNames = [...]string{
	CategoryLength:   "length",
	CategoryWeight:   "weight",
	CategoryCurrency: "currency",
}

func (c ConversionCategory) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseCategory accepts a category name, case-insensitively.
func ParseCategory(s string) (ConversionCategory, error) {
	for i, name := range categoryNames {
		if strings.EqualFold(s, name) {
			return ConversionCategory(i), nil
		}
	}
	return 0, fmt.Errorf("unknown conversion category %q", s)
}

// Categories lists all categories in display order.
func Categories() []ConversionCategory {
	return []ConversionCategory{CategoryLength, CategoryWeight, CategoryCurrency}
}
