package order

import (
	"errors"
	"fmt"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/menu"
	"pizzeria/internal/pkg/errs"
)

// Item is one line of an order: a menu item and a quantity. The line holds a
// reference to the menu item rather than a price snapshot, so the line total
// always reflects the item's current price.
type Item struct {
	menuItem menu.Item
	quantity int
}

// NewItem creates an order line. The quantity must be positive.
func NewItem(menuItem menu.Item, quantity int) (*Item, error) {
	if menuItem == nil {
		return nil, errs.NewValueIsRequiredError("menuItem")
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not positive", quantity))
	}

	return &Item{
		menuItem: menuItem,
		quantity: quantity,
	}, nil
}

// MenuItem returns the referenced menu item.
func (i *Item) MenuItem() menu.Item {
	return i.menuItem
}

// Quantity returns how many units the line holds.
func (i *Item) Quantity() int {
	return i.quantity
}

// SetQuantity replaces the quantity. Must be positive.
func (i *Item) SetQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not positive", quantity))
	}
	i.quantity = quantity
	return nil
}

// IncrementQuantity adds one unit.
func (i *Item) IncrementQuantity() {
	i.quantity++
}

// DecrementQuantity removes one unit. The quantity cannot drop below 1;
// remove the line instead.
func (i *Item) DecrementQuantity() error {
	if i.quantity <= 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			errors.New("cannot decrement below 1"))
	}
	i.quantity--
	return nil
}

// TotalPrice returns the line total: the menu item's current price times
// the quantity.
func (i *Item) TotalPrice() (kernel.Money, error) {
	price, err := i.menuItem.Price()
	if err != nil {
		return kernel.Money{}, err
	}
	return price.MultiplyInt(i.quantity)
}

// IsSameMenuItem reports whether the line references the given menu item.
func (i *Item) IsSameMenuItem(menuItem menu.Item) bool {
	return menuItem != nil && i.menuItem.ID().IsEqual(menuItem.ID())
}

// String renders the line as "Name x2 - USD 21.98". Implements fmt.Stringer.
func (i *Item) String() string {
	total, err := i.TotalPrice()
	if err != nil {
		return fmt.Sprintf("%s x%d", i.menuItem.Name(), i.quantity)
	}
	return fmt.Sprintf("%s x%d - %s", i.menuItem.Name(), i.quantity, total)
}
