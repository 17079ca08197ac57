package menu

import (
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// Category classifies a menu item for display and filtering.
type Category int

const (
	// CategoryUnknown represents an invalid or undefined category.
	// This value (0) helps catch uninitialized Category values.
	CategoryUnknown Category = iota

	// CategoryPizza covers all types of pizza.
	CategoryPizza

	// CategoryDrink covers beverages.
	CategoryDrink

	// CategoryDessert covers sweet treats.
	CategoryDessert

	// CategoryAppetizer covers starters and sides.
	CategoryAppetizer

	// CategorySauce covers extra sauces.
	CategorySauce

	// CategoryCombo covers special combo offers.
	CategoryCombo
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		CategoryUnknown:   "Unknown",
		CategoryPizza:     "Pizza",
		CategoryDrink:     "Drinks",
		CategoryDessert:   "Desserts",
		CategoryAppetizer: "Appetizers",
		CategorySauce:     "Sauces",
		CategoryCombo:     "Combo Meals",
	}
}

func getCategoryDescriptions() map[Category]string {
	//nolint:exhaustive // Unknown has no description
	return map[Category]string{
		CategoryPizza:     "All types of pizza",
		CategoryDrink:     "Beverages",
		CategoryDessert:   "Sweet treats",
		CategoryAppetizer: "Starters and sides",
		CategorySauce:     "Extra sauces",
		CategoryCombo:     "Special combo offers",
	}
}

// Validate checks that the category is one of the defined values.
func (c Category) Validate() error {
	if _, ok := getCategoryDescriptions()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category is invalid",
			fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// String returns the display name of the category.
// Implements the fmt.Stringer interface.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "Unknown"
}

// Description returns a short explanation of the category.
func (c Category) Description() string {
	return getCategoryDescriptions()[c]
}
