package menu

import (
	"fmt"

	"pizzeria/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Size represents the diameter of a pizza and drives its price multiplier.
// A pizza's price scales with its size: the base price of the recipe is
// multiplied by the size's multiplier before surcharges are added.
type Size int

const (
	// SizeUnknown represents an invalid or undefined size.
	SizeUnknown Size = iota

	// SizeSmall is a 25 cm pizza at the recipe's base price.
	SizeSmall

	// SizeMedium is a 30 cm pizza at 1.5x the base price.
	// Medium is the default size for built and recipe pizzas.
	SizeMedium

	// SizeLarge is a 35 cm pizza at 2x the base price.
	SizeLarge

	// SizeExtraLarge is a 40 cm pizza at 2.5x the base price.
	SizeExtraLarge
)

type sizeSpec struct {
	name       string
	diameterCm int
	multiplier decimal.Decimal
}

func getSizeSpecs() map[Size]sizeSpec {
	//nolint:exhaustive // Unknown has no spec
	return map[Size]sizeSpec{
		SizeSmall:      {"Small", 25, decimal.NewFromFloat(1.0)},
		SizeMedium:     {"Medium", 30, decimal.NewFromFloat(1.5)},
		SizeLarge:      {"Large", 35, decimal.NewFromFloat(2.0)},
		SizeExtraLarge: {"Extra Large", 40, decimal.NewFromFloat(2.5)},
	}
}

// Validate checks that the size is one of the defined values.
func (s Size) Validate() error {
	if _, ok := getSizeSpecs()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("size is invalid",
			fmt.Errorf("%d is not a valid pizza size", s))
	}
	return nil
}

// String returns the display name of the size.
// Implements the fmt.Stringer interface.
func (s Size) String() string {
	if spec, ok := getSizeSpecs()[s]; ok {
		return spec.name
	}
	return "Unknown"
}

// DiameterCm returns the pizza diameter in centimeters, 0 for invalid sizes.
func (s Size) DiameterCm() int {
	return getSizeSpecs()[s].diameterCm
}

// PriceMultiplier returns the factor applied to a recipe's base price.
// Invalid sizes return a zero multiplier, which Validate catches earlier.
func (s Size) PriceMultiplier() decimal.Decimal {
	return getSizeSpecs()[s].multiplier
}
