package services_test

import (
	"testing"

	"pizzeria/internal/core/domain/model/delivery"
	"pizzeria/internal/core/domain/model/menu"
	"pizzeria/internal/core/domain/model/payment"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOrder(t *testing.T) {
	t.Run("a filled order passes", func(t *testing.T) {
		o := orderWithSubtotal(t, newCustomer(t), "20.00")

		assert.Empty(t, services.ValidateOrder(o))
		assert.True(t, services.IsOrderValid(o))
		require.NoError(t, services.CheckOrder(o))
	})

	t.Run("an empty order is rejected", func(t *testing.T) {
		o := orderWithSubtotal(t, newCustomer(t), "20.00")
		require.NoError(t, o.ClearItems())

		violations := services.ValidateOrder(o)

		assert.Contains(t, violations, "order must have at least one item")
		assert.Contains(t, violations, "order total cannot be zero")
		require.ErrorIs(t, services.CheckOrder(o), errs.ErrValidationFailed)
	})

	t.Run("an unavailable item is flagged by name", func(t *testing.T) {
		o := orderWithSubtotal(t, newCustomer(t), "20.00")
		drink, err := menu.NewDrink("Spezi", "", 500, money(t, "3.00"), true)
		require.NoError(t, err)
		require.NoError(t, o.AddItem(drink, 1))
		drink.SetAvailable(false)

		violations := services.ValidateOrder(o)

		assert.Contains(t, violations, `item "Spezi" is not available`)
	})

	t.Run("nil order", func(t *testing.T) {
		assert.Equal(t, []string{"order cannot be nil"}, services.ValidateOrder(nil))
	})
}

func TestValidatePayment(t *testing.T) {
	t.Run("a fresh payment passes", func(t *testing.T) {
		o := orderWithSubtotal(t, newCustomer(t), "20.00")
		p, err := payment.NewPayment(o, payment.NewCash("USD"))
		require.NoError(t, err)

		assert.True(t, services.IsPaymentValid(p))
	})

	t.Run("a stale amount is rejected", func(t *testing.T) {
		o := orderWithSubtotal(t, newCustomer(t), "20.00")
		p, err := payment.NewPayment(o, payment.NewCash("USD"))
		require.NoError(t, err)

		// the order changed after the payment was created
		require.NoError(t, o.SetDeliveryFee(money(t, "5.00")))

		violations := services.ValidatePayment(p)

		assert.Contains(t, violations, "payment amount must match order total")
		require.ErrorIs(t, services.CheckPayment(p), errs.ErrValidationFailed)
	})

	t.Run("nil payment", func(t *testing.T) {
		assert.Equal(t, []string{"payment cannot be nil"}, services.ValidatePayment(nil))
	})
}

func TestValidateDelivery(t *testing.T) {
	t.Run("a fresh delivery passes", func(t *testing.T) {
		d, err := delivery.NewDelivery(orderWithSubtotal(t, newCustomer(t), "20.00"),
			mustAddress(t), money(t, "5.00"))
		require.NoError(t, err)

		assert.Empty(t, services.ValidateDelivery(d))
		require.NoError(t, services.CheckDelivery(d))
	})

	t.Run("a deactivated courier is flagged", func(t *testing.T) {
		d, err := delivery.NewDelivery(orderWithSubtotal(t, newCustomer(t), "20.00"),
			mustAddress(t), money(t, "5.00"))
		require.NoError(t, err)
		courier := newCourier(t)
		require.NoError(t, d.AssignCourier(courier))
		courier.Deactivate()

		violations := services.ValidateDelivery(d)

		assert.Contains(t, violations, "assigned courier is not active")
		require.ErrorIs(t, services.CheckDelivery(d), errs.ErrValidationFailed)
	})

	t.Run("nil delivery", func(t *testing.T) {
		assert.Equal(t, []string{"delivery cannot be nil"}, services.ValidateDelivery(nil))
	})
}
