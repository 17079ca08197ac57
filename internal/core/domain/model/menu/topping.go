package menu

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// Topping is a value object pairing an ingredient with the price charged
// when it is added to a pizza. The topping price is independent of the
// ingredient's unit price.
type Topping struct {
	ingredient *Ingredient
	price      kernel.Money
}

// NewTopping creates a Topping for the given ingredient at the given price.
func NewTopping(ingredient *Ingredient, price kernel.Money) (Topping, error) {
	if ingredient == nil {
		return Topping{}, errs.NewValueIsRequiredError("ingredient")
	}
	if err := price.Validate(); err != nil {
		return Topping{}, err
	}

	return Topping{
		ingredient: ingredient,
		price:      price,
	}, nil
}

// Validate checks that the Topping was created through the constructor.
func (t Topping) Validate() error {
	if t.ingredient == nil {
		return errors.Join(errs.NewValueIsRequiredError("ingredient"), t.price.Validate())
	}
	return t.price.Validate()
}

// Ingredient returns the underlying ingredient.
func (t Topping) Ingredient() *Ingredient {
	return t.ingredient
}

// Price returns the amount this topping adds to the pizza price.
func (t Topping) Price() kernel.Money {
	return t.price
}

// Name returns the ingredient name.
func (t Topping) Name() string {
	return t.ingredient.Name()
}

// IsAvailable reports whether the underlying ingredient is in stock.
func (t Topping) IsAvailable() bool {
	return t.ingredient.IsInStock()
}

// String returns the ingredient name. Implements fmt.Stringer.
func (t Topping) String() string {
	return t.ingredient.Name()
}
