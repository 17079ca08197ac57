package menu

import (
	"fmt"

	"pizzeria/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PizzaType names the standard recipes the kitchen can prepare without a
// custom build. Each type carries its display name, a menu description and
// the recipe's base price before size scaling and surcharges.
type PizzaType int

const (
	// PizzaTypeUnknown represents an invalid or undefined pizza type.
	PizzaTypeUnknown PizzaType = iota

	// PizzaTypeMargherita is the classic tomato sauce, mozzarella and basil pizza.
	PizzaTypeMargherita

	// PizzaTypePepperoni is the classic pepperoni pizza.
	PizzaTypePepperoni

	// PizzaTypeHawaiian carries ham and pineapple.
	PizzaTypeHawaiian

	// PizzaTypeFourCheese carries four types of cheese.
	PizzaTypeFourCheese

	// PizzaTypeVegetarian carries fresh vegetables.
	PizzaTypeVegetarian

	// PizzaTypeMeatLovers carries multiple meat toppings.
	PizzaTypeMeatLovers

	// PizzaTypeBBQChicken carries BBQ sauce, chicken and red onion.
	PizzaTypeBBQChicken

	// PizzaTypeSeafood carries shrimp, mussels and calamari.
	PizzaTypeSeafood
)

type pizzaTypeSpec struct {
	name        string
	description string
	basePrice   decimal.Decimal
}

func getPizzaTypeSpecs() map[PizzaType]pizzaTypeSpec {
	//nolint:exhaustive // Unknown has no spec
	return map[PizzaType]pizzaTypeSpec{
		PizzaTypeMargherita: {
			"Margherita", "Classic tomato sauce, mozzarella, basil", decimal.NewFromFloat(8.99)},
		PizzaTypePepperoni: {
			"Pepperoni", "Tomato sauce, mozzarella, pepperoni", decimal.NewFromFloat(10.99)},
		PizzaTypeHawaiian: {
			"Hawaiian", "Tomato sauce, mozzarella, ham, pineapple", decimal.NewFromFloat(11.99)},
		PizzaTypeFourCheese: {
			"Four Cheese", "Mozzarella, parmesan, gorgonzola, ricotta", decimal.NewFromFloat(12.99)},
		PizzaTypeVegetarian: {
			"Vegetarian", "Tomato sauce, mozzarella, peppers, mushrooms, onions", decimal.NewFromFloat(10.99)},
		PizzaTypeMeatLovers: {
			"Meat Lovers", "Tomato sauce, mozzarella, pepperoni, sausage, bacon, ham", decimal.NewFromFloat(14.99)},
		PizzaTypeBBQChicken: {
			"BBQ Chicken", "BBQ sauce, mozzarella, chicken, red onion", decimal.NewFromFloat(13.99)},
		PizzaTypeSeafood: {
			"Seafood", "Tomato sauce, mozzarella, shrimp, mussels, calamari", decimal.NewFromFloat(15.99)},
	}
}

// Validate checks that the pizza type is one of the defined values.
func (t PizzaType) Validate() error {
	if _, ok := getPizzaTypeSpecs()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("pizza type is invalid",
			fmt.Errorf("%d is not a valid pizza type", t))
	}
	return nil
}

// String returns the display name of the pizza type.
// Implements the fmt.Stringer interface.
func (t PizzaType) String() string {
	if spec, ok := getPizzaTypeSpecs()[t]; ok {
		return spec.name
	}
	return "Unknown"
}

// Description returns the menu description of the pizza type.
func (t PizzaType) Description() string {
	return getPizzaTypeSpecs()[t].description
}

// BasePrice returns the recipe's base price before size scaling and surcharges.
func (t PizzaType) BasePrice() decimal.Decimal {
	return getPizzaTypeSpecs()[t].basePrice
}
