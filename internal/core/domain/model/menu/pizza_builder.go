package menu

import (
	"errors"
	"fmt"
	"strings"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// PizzaBuilder assembles a Pizza step by step. It starts from sensible
// defaults (medium size, traditional dough, normal bake) so only the name
// and the base price are mandatory.
//
// The fluent setters never fail; problems such as an unavailable topping or
// an invalid size are collected and reported together by Build.
//
// Example:
//
//	pizza, err := menu.NewPizzaBuilder().
//	    WithName("Diavola").
//	    WithSize(menu.SizeLarge).
//	    WithDough(menu.DoughThin).
//	    AddTopping(salami).
//	    WithBasePrice(basePrice).
//	    Build()
type PizzaBuilder struct {
	name        string
	description string
	size        Size
	dough       Dough
	bake        Bake
	toppings    []Topping
	basePrice   kernel.Money
	hasPrice    bool
	problems    []error
}

// NewPizzaBuilder creates a builder with default size, dough and bake level.
func NewPizzaBuilder() *PizzaBuilder {
	return &PizzaBuilder{
		size:  SizeMedium,
		dough: DoughTraditional,
		bake:  BakeNormal,
	}
}

// PizzaBuilderFrom creates a builder preloaded with the configuration of an
// existing pizza, for building a modified copy.
func PizzaBuilderFrom(pizza *Pizza) *PizzaBuilder {
	return &PizzaBuilder{
		name:        pizza.Name(),
		description: pizza.Description(),
		size:        pizza.Size(),
		dough:       pizza.Dough(),
		bake:        pizza.Bake(),
		toppings:    pizza.Toppings(),
		basePrice:   pizza.BasePrice(),
		hasPrice:    true,
	}
}

// WithName sets the pizza name.
func (b *PizzaBuilder) WithName(name string) *PizzaBuilder {
	b.name = name
	return b
}

// WithDescription sets the menu description.
func (b *PizzaBuilder) WithDescription(description string) *PizzaBuilder {
	b.description = description
	return b
}

// WithSize sets the pizza size.
func (b *PizzaBuilder) WithSize(size Size) *PizzaBuilder {
	if err := size.Validate(); err != nil {
		b.problems = append(b.problems, err)
		return b
	}
	b.size = size
	return b
}

// WithDough sets the dough type.
func (b *PizzaBuilder) WithDough(dough Dough) *PizzaBuilder {
	if err := dough.Validate(); err != nil {
		b.problems = append(b.problems, err)
		return b
	}
	b.dough = dough
	return b
}

// WithBake sets the bake level.
func (b *PizzaBuilder) WithBake(bake Bake) *PizzaBuilder {
	if err := bake.Validate(); err != nil {
		b.problems = append(b.problems, err)
		return b
	}
	b.bake = bake
	return b
}

// AddTopping adds a topping. Unavailable toppings are rejected.
func (b *PizzaBuilder) AddTopping(topping Topping) *PizzaBuilder {
	if err := topping.Validate(); err != nil {
		b.problems = append(b.problems, err)
		return b
	}
	if !topping.IsAvailable() {
		b.problems = append(b.problems, errs.NewValueIsInvalidErrorWithCause("topping",
			fmt.Errorf("topping is not available: %s", topping.Name())))
		return b
	}
	b.toppings = append(b.toppings, topping)
	return b
}

// RemoveTopping removes the first topping based on the same ingredient.
func (b *PizzaBuilder) RemoveTopping(topping Topping) *PizzaBuilder {
	for i, t := range b.toppings {
		if t.Ingredient().IsEqual(topping.Ingredient()) {
			b.toppings = append(b.toppings[:i], b.toppings[i+1:]...)
			break
		}
	}
	return b
}

// ClearToppings removes all toppings.
func (b *PizzaBuilder) ClearToppings() *PizzaBuilder {
	b.toppings = nil
	return b
}

// WithBasePrice sets the base price of the pizza.
func (b *PizzaBuilder) WithBasePrice(basePrice kernel.Money) *PizzaBuilder {
	if err := basePrice.Validate(); err != nil {
		b.problems = append(b.problems, err)
		return b
	}
	b.basePrice = basePrice
	b.hasPrice = true
	return b
}

// Build assembles the Pizza. It fails when any setter collected a problem,
// the name is blank or the base price was never set.
func (b *PizzaBuilder) Build() (*Pizza, error) {
	problems := b.problems
	if strings.TrimSpace(b.name) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("name"))
	}
	if !b.hasPrice {
		problems = append(problems, errs.NewValueIsRequiredError("basePrice"))
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	toppings := make([]Topping, len(b.toppings))
	copy(toppings, b.toppings)

	return &Pizza{
		id:          kernel.NewUUID(),
		name:        strings.TrimSpace(b.name),
		description: b.description,
		size:        b.size,
		dough:       b.dough,
		bake:        b.bake,
		toppings:    toppings,
		basePrice:   b.basePrice,
		available:   true,
	}, nil
}

// Reset returns the builder to its initial state so it can be reused.
func (b *PizzaBuilder) Reset() *PizzaBuilder {
	*b = *NewPizzaBuilder()
	return b
}
