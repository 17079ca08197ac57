package services

import (
	"fmt"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
)

// defaultFirstOrderPercentage is the welcome discount for new customers.
const defaultFirstOrderPercentage = 15

// DiscountStrategy calculates a discount for an order. Strategies are
// interchangeable: the order service applies whichever one the campaign
// of the day dictates.
type DiscountStrategy interface {
	// IsApplicable reports whether the strategy applies to the order.
	IsApplicable(o *order.Order) (bool, error)

	// CalculateDiscount returns the discount amount for the order,
	// zero when the strategy does not apply.
	CalculateDiscount(o *order.Order) (kernel.Money, error)

	// Description returns a human-readable summary of the discount.
	Description() string
}

// PercentageDiscount takes a percentage off the subtotal for orders that
// reach a minimum amount.
type PercentageDiscount struct {
	percentage   int
	minimumOrder kernel.Money
}

// NewPercentageDiscount creates a percentage discount gated by a minimum
// order subtotal. The percentage must lie within [0..100].
func NewPercentageDiscount(percentage int, minimumOrder kernel.Money) (PercentageDiscount, error) {
	if percentage < 0 || percentage > 100 {
		return PercentageDiscount{}, errs.NewValueIsOutOfRangeError("percentage", percentage, 0, 100)
	}
	if err := minimumOrder.Validate(); err != nil {
		return PercentageDiscount{}, err
	}

	return PercentageDiscount{
		percentage:   percentage,
		minimumOrder: minimumOrder,
	}, nil
}

// Percentage returns the discount percentage.
func (d PercentageDiscount) Percentage() int {
	return d.percentage
}

// MinimumOrder returns the subtotal required for the discount to apply.
func (d PercentageDiscount) MinimumOrder() kernel.Money {
	return d.minimumOrder
}

// IsApplicable reports whether the order subtotal reaches the minimum.
func (d PercentageDiscount) IsApplicable(o *order.Order) (bool, error) {
	if o == nil {
		return false, errs.NewValueIsRequiredError("order")
	}
	return o.Subtotal().IsGreaterThanOrEqual(d.minimumOrder)
}

// CalculateDiscount returns the percentage of the subtotal, zero when the
// order does not qualify.
func (d PercentageDiscount) CalculateDiscount(o *order.Order) (kernel.Money, error) {
	applicable, err := d.IsApplicable(o)
	if err != nil {
		return kernel.Money{}, err
	}
	if !applicable {
		return kernel.Zero(o.Subtotal().Currency()), nil
	}
	return o.Subtotal().Percentage(d.percentage)
}

// Description implements DiscountStrategy.
func (d PercentageDiscount) Description() string {
	if d.minimumOrder.IsZero() {
		return fmt.Sprintf("%d%% discount", d.percentage)
	}
	return fmt.Sprintf("%d%% discount on orders over %s", d.percentage, d.minimumOrder)
}

// FixedAmountDiscount takes a fixed amount off orders that reach a minimum
// subtotal. The discount never exceeds the subtotal itself.
type FixedAmountDiscount struct {
	amount       kernel.Money
	minimumOrder kernel.Money
}

// NewFixedAmountDiscount creates a fixed discount gated by a minimum order
// subtotal.
func NewFixedAmountDiscount(amount, minimumOrder kernel.Money) (FixedAmountDiscount, error) {
	if err := amount.Validate(); err != nil {
		return FixedAmountDiscount{}, err
	}
	if err := minimumOrder.Validate(); err != nil {
		return FixedAmountDiscount{}, err
	}

	return FixedAmountDiscount{
		amount:       amount,
		minimumOrder: minimumOrder,
	}, nil
}

// Amount returns the discount amount.
func (d FixedAmountDiscount) Amount() kernel.Money {
	return d.amount
}

// MinimumOrder returns the subtotal required for the discount to apply.
func (d FixedAmountDiscount) MinimumOrder() kernel.Money {
	return d.minimumOrder
}

// IsApplicable reports whether the order subtotal reaches the minimum.
func (d FixedAmountDiscount) IsApplicable(o *order.Order) (bool, error) {
	if o == nil {
		return false, errs.NewValueIsRequiredError("order")
	}
	return o.Subtotal().IsGreaterThanOrEqual(d.minimumOrder)
}

// CalculateDiscount returns the fixed amount, capped at the order subtotal
// so the discount can never push the total negative.
func (d FixedAmountDiscount) CalculateDiscount(o *order.Order) (kernel.Money, error) {
	applicable, err := d.IsApplicable(o)
	if err != nil {
		return kernel.Money{}, err
	}
	if !applicable {
		return kernel.Zero(o.Subtotal().Currency()), nil
	}

	exceeds, err := d.amount.IsGreaterThan(o.Subtotal())
	if err != nil {
		return kernel.Money{}, err
	}
	if exceeds {
		return o.Subtotal(), nil
	}
	return d.amount, nil
}

// Description implements DiscountStrategy.
func (d FixedAmountDiscount) Description() string {
	if d.minimumOrder.IsZero() {
		return fmt.Sprintf("%s discount", d.amount)
	}
	return fmt.Sprintf("%s discount on orders over %s", d.amount, d.minimumOrder)
}

// FirstOrderDiscount welcomes new customers with a percentage off their
// very first order.
type FirstOrderDiscount struct {
	percentage int
}

// NewFirstOrderDiscount creates a first-order discount. The percentage must
// lie within [0..100].
func NewFirstOrderDiscount(percentage int) (FirstOrderDiscount, error) {
	if percentage < 0 || percentage > 100 {
		return FirstOrderDiscount{}, errs.NewValueIsOutOfRangeError("percentage", percentage, 0, 100)
	}
	return FirstOrderDiscount{percentage: percentage}, nil
}

// NewDefaultFirstOrderDiscount creates the standard welcome discount.
func NewDefaultFirstOrderDiscount() FirstOrderDiscount {
	return FirstOrderDiscount{percentage: defaultFirstOrderPercentage}
}

// Percentage returns the discount percentage.
func (d FirstOrderDiscount) Percentage() int {
	return d.percentage
}

// IsApplicable reports whether the customer has no finished orders yet.
func (d FirstOrderDiscount) IsApplicable(o *order.Order) (bool, error) {
	if o == nil {
		return false, errs.NewValueIsRequiredError("order")
	}
	return o.Customer().TotalOrders() == 0, nil
}

// CalculateDiscount returns the percentage of the subtotal for first-time
// customers, zero for everyone else.
func (d FirstOrderDiscount) CalculateDiscount(o *order.Order) (kernel.Money, error) {
	applicable, err := d.IsApplicable(o)
	if err != nil {
		return kernel.Money{}, err
	}
	if !applicable {
		return kernel.Zero(o.Subtotal().Currency()), nil
	}
	return o.Subtotal().Percentage(d.percentage)
}

// Description implements DiscountStrategy.
func (d FirstOrderDiscount) Description() string {
	return fmt.Sprintf("%d%% discount for first order", d.percentage)
}
