package services

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/payment"
	"pizzeria/internal/pkg/errs"
)

// defaultCardFeePercent is the processing fee charged on card payments.
var defaultCardFeePercent = decimal.NewFromFloat(2.5)

// Receipt and transaction reference shapes, e.g. "RCPT-3F2A9B1C4D"
// and "TXN-3F2A9B1C4D5E".
const (
	receiptPrefix     = "RCPT"
	receiptLength     = 10
	transactionPrefix = "TXN"
	transactionLength = 12
)

// PaymentStrategy processes payments for one kind of payment method.
// ProcessPayment drives the payment through its status flow and reports
// whether the charge succeeded; a declined or invalid payment is marked
// failed on the payment itself, not returned as an error.
type PaymentStrategy interface {
	// CanProcess reports whether the strategy handles the given method.
	CanProcess(method payment.Method) bool

	// ProcessPayment charges the payment. Returns true when the payment
	// completed, false when it was marked failed.
	ProcessPayment(p *payment.Payment) (bool, error)

	// CalculateFee returns the processing fee for the given amount.
	CalculateFee(amount kernel.Money) (kernel.Money, error)

	// Description returns a human-readable summary of the strategy.
	Description() string
}

// CashStrategy settles cash payments on the spot: no gateway, no fee. It
// checks that the handed-over amount covers the total and records the
// change due in the payment notes.
type CashStrategy struct {
	logger *slog.Logger
}

// NewCashStrategy creates a cash payment strategy.
func NewCashStrategy(logger *slog.Logger) CashStrategy {
	return CashStrategy{
		logger: logger.With("component", "cash_payment"),
	}
}

// CanProcess implements PaymentStrategy.
func (s CashStrategy) CanProcess(method payment.Method) bool {
	_, ok := method.(payment.Cash)
	return ok
}

// ProcessPayment settles a cash payment immediately. A handed-over amount
// short of the total fails the payment; a surplus is recorded as change in
// the payment notes.
func (s CashStrategy) ProcessPayment(p *payment.Payment) (bool, error) {
	if p == nil {
		return false, errs.NewValueIsRequiredError("payment")
	}
	cash, ok := p.Method().(payment.Cash)
	if !ok {
		return false, failPayment(p, "invalid payment method")
	}

	if err := p.StartProcessing(); err != nil {
		return false, err
	}

	provided := cash.AmountProvided()
	if !provided.IsZero() {
		short, err := provided.IsLessThan(p.Amount())
		if err != nil {
			return false, err
		}
		if short {
			return false, failPayment(p, "insufficient cash provided")
		}

		change, err := cash.CalculateChange(p.Amount())
		if err != nil {
			return false, err
		}
		if !change.IsZero() {
			p.SetNotes(fmt.Sprintf("Change: %s", change))
		}
	}

	receipt := kernel.NewReferenceCode(receiptPrefix, receiptLength)
	if err := p.Complete(receipt); err != nil {
		return false, err
	}

	s.logger.Info("cash payment received",
		"payment_id", p.ID(),
		"amount", p.Amount().String(),
		"receipt", receipt)
	return true, nil
}

// CalculateFee returns zero; cash carries no processing fee.
func (s CashStrategy) CalculateFee(amount kernel.Money) (kernel.Money, error) {
	if err := amount.Validate(); err != nil {
		return kernel.Money{}, err
	}
	return kernel.Zero(amount.Currency()), nil
}

// Description implements PaymentStrategy.
func (s CashStrategy) Description() string {
	return "Cash Payment (no fees)"
}

// CreditCardStrategy charges card payments through a payment gateway and
// adds a percentage processing fee. The gateway integration is simulated;
// a real deployment would talk to an acquirer here.
type CreditCardStrategy struct {
	feePercent decimal.Decimal
	logger     *slog.Logger
}

// NewCreditCardStrategy creates a card strategy with the given fee
// percentage. The fee must not be negative.
func NewCreditCardStrategy(feePercent decimal.Decimal, logger *slog.Logger) (CreditCardStrategy, error) {
	if feePercent.IsNegative() {
		return CreditCardStrategy{}, errs.NewValueIsInvalidErrorWithCause("feePercent",
			fmt.Errorf("%s is negative", feePercent))
	}

	return CreditCardStrategy{
		feePercent: feePercent,
		logger:     logger.With("component", "card_payment"),
	}, nil
}

// NewDefaultCreditCardStrategy creates a card strategy with the standard fee.
func NewDefaultCreditCardStrategy(logger *slog.Logger) CreditCardStrategy {
	s, _ := NewCreditCardStrategy(defaultCardFeePercent, logger)
	return s
}

// FeePercent returns the processing fee percentage.
func (s CreditCardStrategy) FeePercent() decimal.Decimal {
	return s.feePercent
}

// CanProcess implements PaymentStrategy.
func (s CreditCardStrategy) CanProcess(method payment.Method) bool {
	_, ok := method.(payment.CreditCard)
	return ok
}

// ProcessPayment revalidates the card and charges it through the gateway.
// An invalid or expired card fails the payment without touching the gateway.
func (s CreditCardStrategy) ProcessPayment(p *payment.Payment) (bool, error) {
	if p == nil {
		return false, errs.NewValueIsRequiredError("payment")
	}
	card, ok := p.Method().(payment.CreditCard)
	if !ok {
		return false, failPayment(p, "invalid payment method")
	}

	if !card.IsValid() {
		return false, failPayment(p, "invalid or expired card")
	}

	if err := p.StartProcessing(); err != nil {
		return false, err
	}

	if !s.chargeGateway(card, p.Amount()) {
		return false, failPayment(p, "payment declined by bank")
	}

	if err := p.Complete(kernel.NewReferenceCode(transactionPrefix, transactionLength)); err != nil {
		return false, err
	}
	return true, nil
}

// CalculateFee returns the percentage fee on the given amount.
func (s CreditCardStrategy) CalculateFee(amount kernel.Money) (kernel.Money, error) {
	return amount.Multiply(s.feePercent.Div(decimal.NewFromInt(100)))
}

// Description implements PaymentStrategy.
func (s CreditCardStrategy) Description() string {
	return fmt.Sprintf("Credit Card Payment (%s%% fee)", s.feePercent)
}

// chargeGateway stands in for the acquirer integration.
func (s CreditCardStrategy) chargeGateway(card payment.CreditCard, amount kernel.Money) bool {
	s.logger.Info("processing card payment",
		"card", card.MaskedInfo(),
		"amount", amount.String())
	return true
}

// failPayment marks the payment failed with the given reason.
func failPayment(p *payment.Payment, reason string) error {
	return p.Fail(reason)
}
