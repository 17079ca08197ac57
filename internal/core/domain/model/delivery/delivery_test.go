package delivery_test

import (
	"strings"
	"testing"

	"pizzeria/internal/core/domain/model/delivery"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/menu"
	"pizzeria/internal/core/domain/model/order"
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

func mustAddress(t *testing.T) kernel.Address {
	t.Helper()
	addr, err := kernel.NewSimpleAddress("Main St", "42", "Springfield")
	require.NoError(t, err)
	return addr
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	email, err := user.NewEmail("eater@example.com")
	require.NoError(t, err)
	phone, err := user.NewPhone("5550001111")
	require.NoError(t, err)
	customer, err := user.NewCustomer("Eater", email, phone)
	require.NoError(t, err)

	o, err := order.NewOrder(customer, "USD")
	require.NoError(t, err)
	drink, err := menu.NewDrink("Cola", "", 330, money(t, "2.50"), true)
	require.NoError(t, err)
	require.NoError(t, o.AddItem(drink, 1))
	return o
}

func newTestCourier(t *testing.T) *user.Courier {
	t.Helper()
	email, err := user.NewEmail("rider@example.com")
	require.NoError(t, err)
	phone, err := user.NewPhone("5550002222")
	require.NoError(t, err)
	courier, err := user.NewCourier("Rider", email, phone, money(t, "1500.00"), "Scooter")
	require.NoError(t, err)
	return courier
}

func newTestDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(newTestOrder(t), mustAddress(t), money(t, "5.00"))
	require.NoError(t, err)
	return d
}

func TestNewDelivery(t *testing.T) {
	t.Run("starts pending with defaults", func(t *testing.T) {
		d := newTestDelivery(t)

		assert.Equal(t, delivery.StatusPending, d.Status())
		assert.False(t, d.IsAssigned())
		assert.False(t, d.IsCompleted())
		assert.Equal(t, 30, d.EstimatedMinutes())
		assert.Equal(t, "USD 5.00", d.DeliveryFee().String())

		_, assigned := d.AssignedAt()
		assert.False(t, assigned)
	})

	t.Run("tracking code has the TRK prefix", func(t *testing.T) {
		d := newTestDelivery(t)

		assert.True(t, strings.HasPrefix(d.TrackingCode(), "TRK-"))
		assert.Len(t, d.TrackingCode(), len("TRK-")+8)
		assert.Equal(t, strings.ToUpper(d.TrackingCode()), d.TrackingCode())
	})

	t.Run("tracking codes are distinct", func(t *testing.T) {
		assert.NotEqual(t, newTestDelivery(t).TrackingCode(), newTestDelivery(t).TrackingCode())
	})

	t.Run("rejects missing order and zero address", func(t *testing.T) {
		_, err := delivery.NewDelivery(nil, mustAddress(t), money(t, "5.00"))
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = delivery.NewDelivery(newTestOrder(t), kernel.Address{}, money(t, "5.00"))
		require.Error(t, err)
	})
}

func TestDelivery_AssignCourier(t *testing.T) {
	t.Run("moves the delivery to assigned and stamps the time", func(t *testing.T) {
		d := newTestDelivery(t)
		courier := newTestCourier(t)

		require.NoError(t, d.AssignCourier(courier))

		assert.Equal(t, delivery.StatusAssigned, d.Status())
		assert.True(t, d.IsAssigned())
		got, ok := d.Courier()
		require.True(t, ok)
		assert.Equal(t, courier, got)
		_, assigned := d.AssignedAt()
		assert.True(t, assigned)
	})

	t.Run("rejects an unavailable courier", func(t *testing.T) {
		d := newTestDelivery(t)
		courier := newTestCourier(t)
		courier.Deactivate()

		require.ErrorIs(t, d.AssignCourier(courier), errs.ErrInvalidState)
		assert.Equal(t, delivery.StatusPending, d.Status())
	})

	t.Run("rejects a second assignment", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.AssignCourier(newTestCourier(t)))

		require.ErrorIs(t, d.AssignCourier(newTestCourier(t)), errs.ErrInvalidState)
	})
}

func TestDelivery_UnassignCourier(t *testing.T) {
	t.Run("returns the delivery to pending and clears the stamp", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.AssignCourier(newTestCourier(t)))

		require.NoError(t, d.UnassignCourier())

		assert.Equal(t, delivery.StatusPending, d.Status())
		assert.False(t, d.IsAssigned())
		_, assigned := d.AssignedAt()
		assert.False(t, assigned)
	})

	t.Run("fails once the order was picked up", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.AssignCourier(newTestCourier(t)))
		require.NoError(t, d.TransitionTo(delivery.StatusPickedUp))

		require.ErrorIs(t, d.UnassignCourier(), errs.ErrInvalidState)
	})

	t.Run("fails without a courier", func(t *testing.T) {
		require.ErrorIs(t, newTestDelivery(t).UnassignCourier(), errs.ErrInvalidState)
	})
}

func TestDelivery_TransitionTo(t *testing.T) {
	t.Run("walks the full flow stamping each time once", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.AssignCourier(newTestCourier(t)))

		for _, status := range []delivery.Status{
			delivery.StatusPickedUp,
			delivery.StatusInTransit,
			delivery.StatusNearby,
			delivery.StatusArrived,
			delivery.StatusDelivered,
		} {
			require.NoError(t, d.TransitionTo(status))
		}

		assert.True(t, d.IsCompleted())
		pickedUp, ok := d.PickedUpAt()
		require.True(t, ok)
		delivered, ok := d.DeliveredAt()
		require.True(t, ok)
		assert.False(t, delivered.Before(pickedUp))

		minutes, ok := d.ActualDeliveryTime()
		require.True(t, ok)
		assert.GreaterOrEqual(t, minutes, 0)
	})

	t.Run("final delivery rejects further transitions", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.TransitionTo(delivery.StatusFailed))

		require.ErrorIs(t, d.TransitionTo(delivery.StatusPending), errs.ErrInvalidState)
	})

	t.Run("rejects undefined statuses", func(t *testing.T) {
		d := newTestDelivery(t)

		require.ErrorIs(t, d.TransitionTo(delivery.Status(99)), errs.ErrValueIsInvalid)
		require.ErrorIs(t, d.TransitionTo(delivery.StatusUnknown), errs.ErrValueIsInvalid)
	})

	t.Run("actual time is undefined until both stamps exist", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.AssignCourier(newTestCourier(t)))
		require.NoError(t, d.TransitionTo(delivery.StatusPickedUp))

		_, ok := d.ActualDeliveryTime()
		assert.False(t, ok)
	})
}

func TestDelivery_Setters(t *testing.T) {
	d := newTestDelivery(t)

	require.NoError(t, d.SetEstimatedMinutes(45))
	assert.Equal(t, 45, d.EstimatedMinutes())
	require.ErrorIs(t, d.SetEstimatedMinutes(0), errs.ErrValueIsInvalid)

	require.NoError(t, d.SetDeliveryFee(money(t, "7.50")))
	assert.Equal(t, "USD 7.50", d.DeliveryFee().String())

	d.SetNotes("leave at the door")
	assert.Equal(t, "leave at the door", d.Notes())
}

func TestStatus(t *testing.T) {
	t.Run("only delivered and failed are final", func(t *testing.T) {
		assert.True(t, delivery.StatusDelivered.IsFinal())
		assert.True(t, delivery.StatusFailed.IsFinal())
		assert.False(t, delivery.StatusPending.IsFinal())
		assert.False(t, delivery.StatusArrived.IsFinal())
	})

	t.Run("string and description", func(t *testing.T) {
		assert.Equal(t, "In Transit", delivery.StatusInTransit.String())
		assert.Equal(t, "Courier is nearby (5 min)", delivery.StatusNearby.Description())
		assert.Equal(t, "Unknown", delivery.Status(42).String())
	})

	t.Run("validate", func(t *testing.T) {
		require.NoError(t, delivery.StatusPending.Validate())
		require.ErrorIs(t, delivery.StatusUnknown.Validate(), errs.ErrValueIsInvalid)
	})
}
