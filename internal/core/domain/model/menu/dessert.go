package menu

import (
	"errors"
	"fmt"
	"strings"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// Dessert is a sweet menu item with a fixed price.
type Dessert struct {
	id          kernel.UUID
	name        string
	description string
	weightGrams int
	price       kernel.Money
	available   bool
}

// NewDessert creates a Dessert with a fresh identifier.
func NewDessert(name, description string, weightGrams int, price kernel.Money) (*Dessert, error) {
	dessert := &Dessert{
		id:          kernel.NewUUID(),
		description: description,
		available:   true,
	}

	if err := errors.Join(
		dessert.setName(name),
		dessert.setWeightGrams(weightGrams),
		dessert.setPrice(price),
	); err != nil {
		return nil, err
	}

	return dessert, nil
}

// ID returns the unique identifier of the dessert.
func (d *Dessert) ID() kernel.UUID {
	return d.id
}

// Name returns the dessert name.
func (d *Dessert) Name() string {
	return d.name
}

// SetName updates the dessert name.
func (d *Dessert) SetName(name string) error {
	return d.setName(name)
}

// Description returns the menu description.
func (d *Dessert) Description() string {
	return d.description
}

// SetDescription updates the menu description.
func (d *Dessert) SetDescription(description string) {
	d.description = description
}

// Category returns CategoryDessert.
func (d *Dessert) Category() Category {
	return CategoryDessert
}

// WeightGrams returns the serving weight in grams.
func (d *Dessert) WeightGrams() int {
	return d.weightGrams
}

// SetWeightGrams updates the serving weight.
func (d *Dessert) SetWeightGrams(weightGrams int) error {
	return d.setWeightGrams(weightGrams)
}

// Price returns the fixed price of the dessert.
func (d *Dessert) Price() (kernel.Money, error) {
	return d.price, nil
}

// SetPrice updates the price.
func (d *Dessert) SetPrice(price kernel.Money) error {
	return d.setPrice(price)
}

// IsAvailable reports whether the dessert can currently be ordered.
func (d *Dessert) IsAvailable() bool {
	return d.available
}

// SetAvailable toggles whether the dessert can be ordered.
func (d *Dessert) SetAvailable(available bool) {
	d.available = available
}

// String renders the dessert as "Name (120g) - Price". Implements fmt.Stringer.
func (d *Dessert) String() string {
	return fmt.Sprintf("%s (%dg) - %s", d.name, d.weightGrams, d.price)
}

func (d *Dessert) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Dessert) setWeightGrams(weightGrams int) error {
	if weightGrams <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weightGrams",
			fmt.Errorf("%d is not positive", weightGrams))
	}
	d.weightGrams = weightGrams
	return nil
}

func (d *Dessert) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	d.price = price
	return nil
}
