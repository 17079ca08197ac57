package menu

import (
	"errors"
	"fmt"
	"strings"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// Drink is a beverage menu item with a fixed price.
type Drink struct {
	id          kernel.UUID
	name        string
	description string
	volumeMl    int
	price       kernel.Money
	carbonated  bool
	available   bool
}

// NewDrink creates a Drink with a fresh identifier.
func NewDrink(name, description string, volumeMl int, price kernel.Money, carbonated bool) (*Drink, error) {
	drink := &Drink{
		id:          kernel.NewUUID(),
		description: description,
		carbonated:  carbonated,
		available:   true,
	}

	if err := errors.Join(
		drink.setName(name),
		drink.setVolumeMl(volumeMl),
		drink.setPrice(price),
	); err != nil {
		return nil, err
	}

	return drink, nil
}

// ID returns the unique identifier of the drink.
func (d *Drink) ID() kernel.UUID {
	return d.id
}

// Name returns the drink name.
func (d *Drink) Name() string {
	return d.name
}

// SetName updates the drink name.
func (d *Drink) SetName(name string) error {
	return d.setName(name)
}

// Description returns the menu description.
func (d *Drink) Description() string {
	return d.description
}

// SetDescription updates the menu description.
func (d *Drink) SetDescription(description string) {
	d.description = description
}

// Category returns CategoryDrink.
func (d *Drink) Category() Category {
	return CategoryDrink
}

// VolumeMl returns the serving volume in milliliters.
func (d *Drink) VolumeMl() int {
	return d.volumeMl
}

// SetVolumeMl updates the serving volume.
func (d *Drink) SetVolumeMl(volumeMl int) error {
	return d.setVolumeMl(volumeMl)
}

// Price returns the fixed price of the drink.
func (d *Drink) Price() (kernel.Money, error) {
	return d.price, nil
}

// SetPrice updates the price.
func (d *Drink) SetPrice(price kernel.Money) error {
	return d.setPrice(price)
}

// IsCarbonated reports whether the drink is carbonated.
func (d *Drink) IsCarbonated() bool {
	return d.carbonated
}

// IsAvailable reports whether the drink can currently be ordered.
func (d *Drink) IsAvailable() bool {
	return d.available
}

// SetAvailable toggles whether the drink can be ordered.
func (d *Drink) SetAvailable(available bool) {
	d.available = available
}

// String renders the drink as "Name (330ml) - Price". Implements fmt.Stringer.
func (d *Drink) String() string {
	return fmt.Sprintf("%s (%dml) - %s", d.name, d.volumeMl, d.price)
}

func (d *Drink) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Drink) setVolumeMl(volumeMl int) error {
	if volumeMl <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("volumeMl",
			fmt.Errorf("%d is not positive", volumeMl))
	}
	d.volumeMl = volumeMl
	return nil
}

func (d *Drink) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	d.price = price
	return nil
}
