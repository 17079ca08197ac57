package menu

import (
	"pizzeria/internal/core/domain/model/kernel"
)

// Item is the common contract for everything the pizzeria sells.
// Orders reference menu items rather than copied prices, so Price is
// consulted on every pricing calculation. For a Pizza the price is
// derived live from its size, dough and toppings; Drink and Dessert
// return a fixed price.
type Item interface {
	// ID returns the unique identifier of the item.
	ID() kernel.UUID

	// Name returns the display name of the item.
	Name() string

	// Description returns the menu description of the item.
	Description() string

	// Price returns the current price of a single unit.
	Price() (kernel.Money, error)

	// Category returns the menu category the item belongs to.
	Category() Category

	// IsAvailable reports whether the item can currently be ordered.
	IsAvailable() bool

	// SetAvailable toggles whether the item can be ordered.
	SetAvailable(available bool)
}
