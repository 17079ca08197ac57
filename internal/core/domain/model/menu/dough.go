package menu

import (
	"fmt"

	"pizzeria/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Dough represents the crust type of a pizza. Each dough carries a flat
// surcharge added on top of the size-scaled base price.
type Dough int

const (
	// DoughUnknown represents an invalid or undefined dough type.
	DoughUnknown Dough = iota

	// DoughThin is a thin crust with no surcharge.
	DoughThin

	// DoughTraditional is the standard crust. Default for built pizzas.
	DoughTraditional

	// DoughThick is a thick crust.
	DoughThick

	// DoughCheeseStuffed has cheese baked into the crust.
	DoughCheeseStuffed

	// DoughGlutenFree is made with gluten free flour.
	DoughGlutenFree
)

type doughSpec struct {
	name      string
	surcharge decimal.Decimal
}

func getDoughSpecs() map[Dough]doughSpec {
	//nolint:exhaustive // Unknown has no spec
	return map[Dough]doughSpec{
		DoughThin:          {"Thin Crust", decimal.Zero},
		DoughTraditional:   {"Traditional", decimal.NewFromFloat(1.0)},
		DoughThick:         {"Thick Crust", decimal.NewFromFloat(2.0)},
		DoughCheeseStuffed: {"Cheese Stuffed", decimal.NewFromFloat(3.5)},
		DoughGlutenFree:    {"Gluten Free", decimal.NewFromFloat(4.0)},
	}
}

// Validate checks that the dough is one of the defined values.
func (d Dough) Validate() error {
	if _, ok := getDoughSpecs()[d]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("dough is invalid",
			fmt.Errorf("%d is not a valid dough type", d))
	}
	return nil
}

// String returns the display name of the dough type.
// Implements the fmt.Stringer interface.
func (d Dough) String() string {
	if spec, ok := getDoughSpecs()[d]; ok {
		return spec.name
	}
	return "Unknown"
}

// Surcharge returns the flat amount this dough adds to the pizza price.
func (d Dough) Surcharge() decimal.Decimal {
	return getDoughSpecs()[d].surcharge
}
