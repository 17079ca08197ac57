package payment_test

import (
	"testing"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/menu"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/payment"
	"pizzeria/internal/core/domain/model/user"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, amount string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(amount, "USD")
	require.NoError(t, err)
	return m
}

func newPaidableOrder(t *testing.T, total string) *order.Order {
	t.Helper()
	email, err := user.NewEmail("payer@example.com")
	require.NoError(t, err)
	phone, err := user.NewPhone("5550006666")
	require.NoError(t, err)
	customer, err := user.NewCustomer("Payer", email, phone)
	require.NoError(t, err)

	o, err := order.NewOrder(customer, "USD")
	require.NoError(t, err)
	drink, err := menu.NewDrink("Item", "", 330, money(t, total), false)
	require.NoError(t, err)
	require.NoError(t, o.AddItem(drink, 1))
	return o
}

func futureExpiry() (int, time.Month) {
	future := time.Now().AddDate(1, 0, 0)
	return future.Year(), future.Month()
}

func newCard(t *testing.T) payment.CreditCard {
	t.Helper()
	year, month := futureExpiry()
	card, err := payment.NewCreditCard("4111 1111 1111 1111", "John Doe", year, month, "123")
	require.NoError(t, err)
	return card
}

func TestNewPayment(t *testing.T) {
	t.Run("amount is the order total at creation", func(t *testing.T) {
		o := newPaidableOrder(t, "14.90")

		p, err := payment.NewPayment(o, payment.NewCash("USD"))

		require.NoError(t, err)
		assert.Equal(t, "USD 14.90", p.Amount().String())
		assert.Equal(t, payment.StatusPending, p.Status())
		assert.Empty(t, p.TransactionID())
	})

	t.Run("rejects an order with zero total", func(t *testing.T) {
		email, err := user.NewEmail("payer@example.com")
		require.NoError(t, err)
		phone, err := user.NewPhone("5550006666")
		require.NoError(t, err)
		customer, err := user.NewCustomer("Payer", email, phone)
		require.NoError(t, err)
		emptyOrder, err := order.NewOrder(customer, "USD")
		require.NoError(t, err)

		_, err = payment.NewPayment(emptyOrder, payment.NewCash("USD"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects nil order and method", func(t *testing.T) {
		o := newPaidableOrder(t, "10.00")

		_, err := payment.NewPayment(nil, payment.NewCash("USD"))
		require.Error(t, err)

		_, err = payment.NewPayment(o, nil)
		require.Error(t, err)
	})
}

func TestPayment_Lifecycle(t *testing.T) {
	t.Run("happy path pending to completed", func(t *testing.T) {
		p, err := payment.NewPayment(newPaidableOrder(t, "10.00"), newCard(t))
		require.NoError(t, err)

		require.NoError(t, p.StartProcessing())
		assert.Equal(t, payment.StatusProcessing, p.Status())
		_, processed := p.ProcessedAt()
		assert.True(t, processed)

		require.NoError(t, p.Complete("TXN-ABC123"))
		assert.Equal(t, "TXN-ABC123", p.TransactionID())
		assert.True(t, p.IsSuccessful())
		assert.True(t, p.IsCompleted())
		assert.True(t, p.IsRefundable())
		_, completed := p.CompletedAt()
		assert.True(t, completed)
	})

	t.Run("cannot process twice", func(t *testing.T) {
		p, err := payment.NewPayment(newPaidableOrder(t, "10.00"), payment.NewCash("USD"))
		require.NoError(t, err)
		require.NoError(t, p.StartProcessing())

		err = p.StartProcessing()

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("cannot complete without processing", func(t *testing.T) {
		p, err := payment.NewPayment(newPaidableOrder(t, "10.00"), payment.NewCash("USD"))
		require.NoError(t, err)

		require.ErrorIs(t, p.Complete("TXN-X"), errs.ErrInvalidState)
	})

	t.Run("failed payment is completed but not successful", func(t *testing.T) {
		p, err := payment.NewPayment(newPaidableOrder(t, "10.00"), payment.NewCash("USD"))
		require.NoError(t, err)
		require.NoError(t, p.StartProcessing())

		require.NoError(t, p.Fail("insufficient cash provided"))

		assert.True(t, p.IsCompleted())
		assert.False(t, p.IsSuccessful())
		assert.Equal(t, "insufficient cash provided", p.ErrorMessage())
	})

	t.Run("cannot fail a final payment", func(t *testing.T) {
		p, err := payment.NewPayment(newPaidableOrder(t, "10.00"), payment.NewCash("USD"))
		require.NoError(t, err)
		require.NoError(t, p.StartProcessing())
		require.NoError(t, p.Complete("TXN-1"))

		require.ErrorIs(t, p.Fail("too late"), errs.ErrInvalidState)
	})

	t.Run("refund only from completed", func(t *testing.T) {
		p, err := payment.NewPayment(newPaidableOrder(t, "10.00"), payment.NewCash("USD"))
		require.NoError(t, err)

		require.ErrorIs(t, p.Refund(), errs.ErrInvalidState)

		require.NoError(t, p.StartProcessing())
		require.NoError(t, p.Complete("TXN-1"))
		require.NoError(t, p.Refund())
		assert.Equal(t, payment.StatusRefunded, p.Status())
		assert.False(t, p.IsRefundable())
	})

	t.Run("cancel only before a final status", func(t *testing.T) {
		p, err := payment.NewPayment(newPaidableOrder(t, "10.00"), payment.NewCash("USD"))
		require.NoError(t, err)

		require.NoError(t, p.Cancel())
		assert.Equal(t, payment.StatusCancelled, p.Status())

		require.ErrorIs(t, p.Cancel(), errs.ErrInvalidState)
	})
}

func TestCash(t *testing.T) {
	t.Run("change is provided minus total", func(t *testing.T) {
		cash, err := payment.NewCashWithAmount(money(t, "20.00"), true)
		require.NoError(t, err)

		change, err := cash.CalculateChange(money(t, "14.90"))

		require.NoError(t, err)
		assert.Equal(t, "USD 5.10", change.String())
	})

	t.Run("no change when exact or short", func(t *testing.T) {
		cash, err := payment.NewCashWithAmount(money(t, "10.00"), false)
		require.NoError(t, err)

		change, err := cash.CalculateChange(money(t, "10.00"))
		require.NoError(t, err)
		assert.True(t, change.IsZero())

		change, err = cash.CalculateChange(money(t, "15.00"))
		require.NoError(t, err)
		assert.True(t, change.IsZero())
	})

	t.Run("exact cash masks plainly", func(t *testing.T) {
		assert.Equal(t, "Cash", payment.NewCash("USD").MaskedInfo())
		assert.True(t, payment.NewCash("USD").IsValid())
		assert.Equal(t, "CASH", payment.NewCash("USD").Type())
	})
}

func TestCreditCard(t *testing.T) {
	year, month := futureExpiry()

	t.Run("valid card", func(t *testing.T) {
		card := newCard(t)

		assert.Equal(t, "CREDIT_CARD", card.Type())
		assert.Equal(t, "VISA", card.CardType())
		assert.Equal(t, "1111", card.LastFourDigits())
		assert.Equal(t, "JOHN DOE", card.CardholderName())
		assert.True(t, card.IsValid())
		assert.Equal(t, "VISA **** **** **** 1111 (JOHN DOE)", card.MaskedInfo())
	})

	t.Run("brand detection", func(t *testing.T) {
		tests := []struct {
			number string
			brand  string
		}{
			{"4111111111111111", "VISA"},
			{"5555555555554444", "MasterCard"},
			{"378282246310005", "American Express"},
			{"6011111111111117", "Discover"},
		}

		for _, tt := range tests {
			card, err := payment.NewCreditCard(tt.number, "Jane Roe", year, month, "999")
			require.NoError(t, err, tt.number)
			assert.Equal(t, tt.brand, card.CardType())
		}
	})

	t.Run("rejects luhn failures", func(t *testing.T) {
		_, err := payment.NewCreditCard("4111111111111112", "Jane Roe", year, month, "123")
		require.Error(t, err)
	})

	t.Run("rejects wrong lengths and bad cvv", func(t *testing.T) {
		_, err := payment.NewCreditCard("411111", "Jane Roe", year, month, "123")
		require.Error(t, err)

		_, err = payment.NewCreditCard("4111111111111111", "Jane Roe", year, month, "12")
		require.Error(t, err)
	})

	t.Run("rejects expired card", func(t *testing.T) {
		past := time.Now().AddDate(-1, 0, 0)

		_, err := payment.NewCreditCard("4111111111111111", "Jane Roe", past.Year(), past.Month(), "123")

		require.Error(t, err)
	})

	t.Run("rejects blank cardholder", func(t *testing.T) {
		_, err := payment.NewCreditCard("4111111111111111", "  ", year, month, "123")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
