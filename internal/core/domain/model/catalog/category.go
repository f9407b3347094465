package catalog

import (
	"fmt"
	"strings"

	"pizzeria/internal/pkg/errs"
)

// Category classifies a customization option.
type Category int

const (
	// UnknownCategory is the zero value and is never valid.
	UnknownCategory Category = iota
	// Crust is the pizza base.
	Crust
	// Sauce is the pizza sauce.
	Sauce
	// Topping is anything added on top of the pizza.
	Topping
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		UnknownCategory: "UNKNOWN",
		Crust:           "CRUST",
		Sauce:           "SAUCE",
		Topping:         "TOPPING",
	}
}

// String returns the upper-case category name, "UNKNOWN" for invalid values.
func (c Category) String() string {
	if s, ok := getCategoryStrings()[c]; ok {
		return s
	}
	return "UNKNOWN"
}

// Validate rejects UnknownCategory and out-of-range values.
func (c Category) Validate() error {
	if c < Crust || c > Topping {
		return errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// ParseCategory parses a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for c, name := range getCategoryStrings() {
		if c != UnknownCategory && name == normalized {
			return c, nil
		}
	}
	return UnknownCategory, errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%q is not a valid category", s))
}
