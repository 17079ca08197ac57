package menu

import (
	"errors"
	"fmt"
	"strings"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// initialStockQuantity is the stock every new ingredient starts with.
const initialStockQuantity = 100

// Ingredient is an entity representing a raw kitchen ingredient that can be
// offered as a pizza topping. It tracks a unit price and a stock counter;
// an ingredient with zero stock makes every topping based on it unavailable.
type Ingredient struct {
	id            kernel.UUID
	name          string
	pricePerUnit  kernel.Money
	stockQuantity int
}

// NewIngredient creates an Ingredient with a fresh identifier and the
// default initial stock.
func NewIngredient(name string, pricePerUnit kernel.Money) (*Ingredient, error) {
	ingredient := &Ingredient{
		id:            kernel.NewUUID(),
		stockQuantity: initialStockQuantity,
	}

	if err := errors.Join(
		ingredient.setName(name),
		ingredient.setPricePerUnit(pricePerUnit),
	); err != nil {
		return nil, err
	}

	return ingredient, nil
}

// ID returns the unique identifier of the ingredient.
func (i *Ingredient) ID() kernel.UUID {
	return i.id
}

// Name returns the ingredient name.
func (i *Ingredient) Name() string {
	return i.name
}

// PricePerUnit returns the price of one unit of the ingredient.
func (i *Ingredient) PricePerUnit() kernel.Money {
	return i.pricePerUnit
}

// SetPricePerUnit updates the unit price.
func (i *Ingredient) SetPricePerUnit(price kernel.Money) error {
	return i.setPricePerUnit(price)
}

// StockQuantity returns the units currently in stock.
func (i *Ingredient) StockQuantity() int {
	return i.stockQuantity
}

// AddStock increases the stock counter by the given quantity.
func (i *Ingredient) AddStock(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}
	i.stockQuantity += quantity
	return nil
}

// UseStock decreases the stock counter by the given quantity.
// Fails when the quantity is negative or exceeds the current stock.
func (i *Ingredient) UseStock(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}
	if quantity > i.stockQuantity {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d exceeds stock of %d", quantity, i.stockQuantity))
	}
	i.stockQuantity -= quantity
	return nil
}

// IsInStock reports whether at least one unit is available.
func (i *Ingredient) IsInStock() bool {
	return i.stockQuantity > 0
}

// IsEqual compares ingredients by identity.
func (i *Ingredient) IsEqual(other *Ingredient) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// String returns the ingredient name. Implements fmt.Stringer.
func (i *Ingredient) String() string {
	return i.name
}

func (i *Ingredient) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Ingredient) setPricePerUnit(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	i.pricePerUnit = price
	return nil
}
