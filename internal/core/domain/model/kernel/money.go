package kernel

import (
	"errors"
	"fmt"

	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency assumed when a constructor receives an
// empty currency code.
const DefaultCurrency = "USD"

// moneyScale is the number of fractional digits every Money amount is
// quantized to on construction.
const moneyScale = 2

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly initialized Money value.
// Money must be created via NewMoney, MoneyFromString, MoneyFromFloat, or Zero.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"Money must be created via NewMoney, MoneyFromString, MoneyFromFloat, or Zero")

// Money is an immutable value object representing an exact monetary amount in
// a single currency. All pricing arithmetic in the system routes through it.
//
// Invariants:
//   - The amount is never negative
//   - The amount is always stored at two-decimal scale, rounded half-up
//     immediately on construction, so results are reproducible for the same
//     decimal input
//   - Arithmetic between two Money values requires the same currency; a
//     mismatch is an error and never a silent coercion
//
// Every operation returns a new value; a Money is never mutated in place.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("10.005", "USD") // stored as 10.01
//	fee, _ := kernel.MoneyFromFloat(5, "USD")
//	total, err := price.Add(fee)
type Money struct { //nolint:recvcheck //using for validation
	amount   decimal.Decimal
	currency string
	guard    guard.ConstructorGuard
}

// NewMoney creates a Money from an exact decimal amount and a currency code.
// An empty currency defaults to DefaultCurrency. The amount is quantized to
// two fractional digits with half-up rounding. Negative amounts are rejected.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount))
	}
	if currency == "" {
		currency = DefaultCurrency
	}

	return Money{
		amount:   amount.Round(moneyScale),
		currency: currency,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// MoneyFromString parses a decimal string such as "14.90" into a Money.
func MoneyFromString(amount string, currency string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d, currency)
}

// MoneyFromFloat creates a Money from a float64 amount. The float is
// converted through its shortest decimal representation, so literals like
// 10.005 keep their intended value before quantization.
func MoneyFromFloat(amount float64, currency string) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount), currency)
}

// Zero returns a zero amount in the given currency.
// An empty currency defaults to DefaultCurrency.
func Zero(currency string) Money {
	if currency == "" {
		currency = DefaultCurrency
	}
	return Money{
		amount:   decimal.Zero,
		currency: currency,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate checks that the Money was created through a constructor.
// The zero value of Money is invalid.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the exact decimal amount at two-decimal scale.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency code.
func (m Money) Currency() string {
	return m.currency
}

// Add returns the sum of two Money values of the same currency.
func (m Money) Add(other Money) (Money, error) {
	if err := m.checkOperands(other); err != nil {
		return Money{}, err
	}
	return NewMoney(m.amount.Add(other.amount), m.currency)
}

// Subtract returns the difference of two Money values of the same currency.
// Returns errs.ErrNegativeResult when the difference would be negative.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.checkOperands(other); err != nil {
		return Money{}, err
	}

	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, errs.ErrNegativeResult
	}
	return NewMoney(result, m.currency)
}

// Multiply returns the amount scaled by the given decimal multiplier.
// A negative multiplier is rejected because the result would be negative.
func (m Money) Multiply(multiplier decimal.Decimal) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	return NewMoney(m.amount.Mul(multiplier), m.currency)
}

// MultiplyInt returns the amount scaled by an integer factor, such as a line
// item quantity.
func (m Money) MultiplyInt(factor int) (Money, error) {
	return m.Multiply(decimal.NewFromInt(int64(factor)))
}

// Divide returns the amount divided by the given decimal divisor.
// Returns ErrDivideByZero for a zero divisor.
func (m Money) Divide(divisor decimal.Decimal) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if divisor.IsZero() {
		return Money{}, errs.ErrDivideByZero
	}
	return NewMoney(m.amount.DivRound(divisor, moneyScale), m.currency)
}

// Percentage returns the given integer percentage of the amount,
// e.g. Percentage(10) of USD 11.00 is USD 1.10.
func (m Money) Percentage(percent int) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if percent < 0 || percent > 100 {
		return Money{}, errs.NewValueIsOutOfRangeError("percent", percent, 0, 100)
	}
	return NewMoney(m.amount.Mul(decimal.NewFromInt(int64(percent))).Div(decimal.NewFromInt(100)), m.currency)
}

// IsGreaterThan reports whether m exceeds other. Both values must share a currency.
func (m Money) IsGreaterThan(other Money) (bool, error) {
	if err := m.checkOperands(other); err != nil {
		return false, err
	}
	return m.amount.GreaterThan(other.amount), nil
}

// IsLessThan reports whether m is below other. Both values must share a currency.
func (m Money) IsLessThan(other Money) (bool, error) {
	if err := m.checkOperands(other); err != nil {
		return false, err
	}
	return m.amount.LessThan(other.amount), nil
}

// IsGreaterThanOrEqual reports whether m is at least other. Both values must share a currency.
func (m Money) IsGreaterThanOrEqual(other Money) (bool, error) {
	if err := m.checkOperands(other); err != nil {
		return false, err
	}
	return m.amount.GreaterThanOrEqual(other.amount), nil
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual reports whether two Money values have the same currency and the
// same amount. Unlike the arithmetic operations it never errors: values of
// different currencies are simply not equal.
func (m Money) IsEqual(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// String renders the value as "<currency> <amount>", e.g. "USD 14.90".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.currency, m.amount.StringFixed(moneyScale))
}

// checkOperands validates both operands of a binary operation and enforces
// the equal-currency invariant.
func (m Money) checkOperands(other Money) error {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return err
	}
	if m.currency != other.currency {
		return errs.NewCurrencyMismatchError(m.currency, other.currency)
	}
	return nil
}
