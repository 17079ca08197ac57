package payment

import (
	"fmt"

	"pizzeria/internal/core/domain/model/kernel"
)

// Cash is a payment method for paying the courier on delivery. It records
// how much the customer hands over so the change can be calculated; a zero
// provided amount means the customer pays the exact total.
type Cash struct {
	amountProvided kernel.Money
	needsChange    bool
}

// NewCash creates a cash method for an exact-amount payment.
func NewCash(currency string) Cash {
	return Cash{
		amountProvided: kernel.Zero(currency),
	}
}

// NewCashWithAmount creates a cash method where the customer hands over the
// given amount and may need change.
func NewCashWithAmount(amountProvided kernel.Money, needsChange bool) (Cash, error) {
	if err := amountProvided.Validate(); err != nil {
		return Cash{}, err
	}

	return Cash{
		amountProvided: amountProvided,
		needsChange:    needsChange,
	}, nil
}

// AmountProvided returns how much the customer hands over.
func (c Cash) AmountProvided() kernel.Money {
	return c.amountProvided
}

// NeedsChange reports whether the courier must bring change.
func (c Cash) NeedsChange() bool {
	return c.needsChange
}

// CalculateChange returns the change due for the given order total, zero
// when the provided amount does not exceed the total.
func (c Cash) CalculateChange(orderTotal kernel.Money) (kernel.Money, error) {
	if err := orderTotal.Validate(); err != nil {
		return kernel.Money{}, err
	}

	greater, err := c.amountProvided.IsGreaterThan(orderTotal)
	if err != nil {
		return kernel.Money{}, err
	}
	if !greater {
		return kernel.Zero(orderTotal.Currency()), nil
	}
	return c.amountProvided.Subtract(orderTotal)
}

// Type returns "CASH".
func (c Cash) Type() string {
	return "CASH"
}

// Description returns "Cash payment".
func (c Cash) Description() string {
	return "Cash payment"
}

// IsValid always reports true; cash needs no validation.
func (c Cash) IsValid() bool {
	return true
}

// MaskedInfo renders the method for display.
func (c Cash) MaskedInfo() string {
	if c.amountProvided.IsZero() {
		return "Cash"
	}
	return fmt.Sprintf("Cash (%s provided)", c.amountProvided)
}

// String implements fmt.Stringer.
func (c Cash) String() string {
	return c.MaskedInfo()
}
