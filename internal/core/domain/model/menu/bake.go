package menu

import (
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// Bake represents how long a pizza is baked. It does not affect the price.
type Bake int

const (
	// BakeUnknown represents an invalid or undefined bake level.
	BakeUnknown Bake = iota

	// BakeLight is slightly undercooked and softer.
	BakeLight

	// BakeNormal is the standard baking. Default for built pizzas.
	BakeNormal

	// BakeWellDone is extra crispy with a darker crust.
	BakeWellDone
)

type bakeSpec struct {
	name        string
	description string
}

func getBakeSpecs() map[Bake]bakeSpec {
	//nolint:exhaustive // Unknown has no spec
	return map[Bake]bakeSpec{
		BakeLight:    {"Light Bake", "Slightly undercooked, softer"},
		BakeNormal:   {"Normal Bake", "Standard baking"},
		BakeWellDone: {"Well Done", "Extra crispy, darker crust"},
	}
}

// Validate checks that the bake level is one of the defined values.
func (b Bake) Validate() error {
	if _, ok := getBakeSpecs()[b]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("bake level is invalid",
			fmt.Errorf("%d is not a valid bake level", b))
	}
	return nil
}

// String returns the display name of the bake level.
// Implements the fmt.Stringer interface.
func (b Bake) String() string {
	if spec, ok := getBakeSpecs()[b]; ok {
		return spec.name
	}
	return "Unknown"
}

// Description returns a short explanation of the bake level.
func (b Bake) Description() string {
	return getBakeSpecs()[b].description
}
