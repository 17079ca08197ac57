package menu

import (
	"fmt"
	"slices"

	"pizzeria/internal/core/domain/model/kernel"
)

// Pizza is the pizzeria's main product. A Pizza is assembled either from a
// recipe through the RecipeBook or step by step through a PizzaBuilder.
//
// The pizza price is never stored: it is derived on every Price call from
// the base price, the size multiplier, the dough surcharge and the topping
// prices, so a configuration change is reflected immediately:
//
//	price = basePrice * size.PriceMultiplier() + dough.Surcharge() + sum(toppings)
type Pizza struct {
	id          kernel.UUID
	name        string
	description string
	size        Size
	dough       Dough
	bake        Bake
	toppings    []Topping
	basePrice   kernel.Money
	available   bool
}

// ID returns the unique identifier of the pizza.
func (p *Pizza) ID() kernel.UUID {
	return p.id
}

// Name returns the pizza name.
func (p *Pizza) Name() string {
	return p.name
}

// Description returns the menu description.
func (p *Pizza) Description() string {
	return p.description
}

// SetDescription updates the menu description.
func (p *Pizza) SetDescription(description string) {
	p.description = description
}

// Category returns CategoryPizza.
func (p *Pizza) Category() Category {
	return CategoryPizza
}

// Size returns the pizza size.
func (p *Pizza) Size() Size {
	return p.size
}

// Dough returns the dough type.
func (p *Pizza) Dough() Dough {
	return p.dough
}

// Bake returns the bake level.
func (p *Pizza) Bake() Bake {
	return p.bake
}

// Toppings returns a copy of the topping list.
func (p *Pizza) Toppings() []Topping {
	return slices.Clone(p.toppings)
}

// BasePrice returns the recipe base price before size scaling and surcharges.
func (p *Pizza) BasePrice() kernel.Money {
	return p.basePrice
}

// SetBasePrice updates the base price.
func (p *Pizza) SetBasePrice(basePrice kernel.Money) error {
	if err := basePrice.Validate(); err != nil {
		return err
	}
	p.basePrice = basePrice
	return nil
}

// Price derives the full pizza price from its current configuration.
func (p *Pizza) Price() (kernel.Money, error) {
	price, err := p.basePrice.Multiply(p.size.PriceMultiplier())
	if err != nil {
		return kernel.Money{}, err
	}

	surcharge, err := kernel.NewMoney(p.dough.Surcharge(), price.Currency())
	if err != nil {
		return kernel.Money{}, err
	}
	price, err = price.Add(surcharge)
	if err != nil {
		return kernel.Money{}, err
	}

	for _, topping := range p.toppings {
		price, err = price.Add(topping.Price())
		if err != nil {
			return kernel.Money{}, err
		}
	}

	return price, nil
}

// IsAvailable reports whether the pizza can currently be ordered.
func (p *Pizza) IsAvailable() bool {
	return p.available
}

// SetAvailable toggles whether the pizza can be ordered.
func (p *Pizza) SetAvailable(available bool) {
	p.available = available
}

// String renders the pizza as "Name (Size, Dough) - Price".
// Implements fmt.Stringer.
func (p *Pizza) String() string {
	price, err := p.Price()
	if err != nil {
		return fmt.Sprintf("%s (%s, %s)", p.name, p.size, p.dough)
	}
	return fmt.Sprintf("%s (%s, %s) - %s", p.name, p.size, p.dough, price)
}
