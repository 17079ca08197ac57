package user_test

import (
	"testing"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/user"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEmail(t *testing.T, address string) user.Email {
	t.Helper()
	email, err := user.NewEmail(address)
	require.NoError(t, err)
	return email
}

func mustPhone(t *testing.T, number string) user.Phone {
	t.Helper()
	phone, err := user.NewPhone(number)
	require.NoError(t, err)
	return phone
}

func mustAddress(t *testing.T, street, building, city string) kernel.Address {
	t.Helper()
	address, err := kernel.NewSimpleAddress(street, building, city)
	require.NoError(t, err)
	return address
}

func mustSalary(t *testing.T) kernel.Money {
	t.Helper()
	salary, err := kernel.MoneyFromString("1500.00", "USD")
	require.NoError(t, err)
	return salary
}

func TestEmail(t *testing.T) {
	t.Run("should normalize to lowercase", func(t *testing.T) {
		email := mustEmail(t, "  John.Doe@Example.COM ")

		assert.Equal(t, "john.doe@example.com", email.Address())
		assert.Equal(t, "example.com", email.Domain())
	})

	t.Run("should reject malformed addresses", func(t *testing.T) {
		for _, address := range []string{"", "plainstring", "no@dot", "@example.com"} {
			_, err := user.NewEmail(address)
			require.Error(t, err, address)
		}
	})
}

func TestPhone(t *testing.T) {
	t.Run("should clean separators", func(t *testing.T) {
		phone := mustPhone(t, "+1 555-010-99 88")

		assert.Equal(t, "+15550109988", phone.Number())
	})

	t.Run("should reject wrong lengths", func(t *testing.T) {
		_, err := user.NewPhone("12345")
		require.Error(t, err)

		_, err = user.NewPhone("1234567890123456")
		require.Error(t, err)
	})
}

func TestCustomer_Addresses(t *testing.T) {
	newCustomer := func(t *testing.T) *user.Customer {
		t.Helper()
		customer, err := user.NewCustomer("Alice", mustEmail(t, "alice@example.com"), mustPhone(t, "5550001111"))
		require.NoError(t, err)
		return customer
	}

	t.Run("first address becomes default", func(t *testing.T) {
		customer := newCustomer(t)
		home := mustAddress(t, "Main St", "1", "Springfield")

		require.NoError(t, customer.AddDeliveryAddress(home))

		got, err := customer.DefaultAddress()
		require.NoError(t, err)
		assert.True(t, got.IsEqual(home))
	})

	t.Run("duplicates are ignored", func(t *testing.T) {
		customer := newCustomer(t)
		home := mustAddress(t, "Main St", "1", "Springfield")

		require.NoError(t, customer.AddDeliveryAddress(home))
		require.NoError(t, customer.AddDeliveryAddress(home))

		assert.Len(t, customer.DeliveryAddresses(), 1)
	})

	t.Run("removing the default promotes the next address", func(t *testing.T) {
		customer := newCustomer(t)
		home := mustAddress(t, "Main St", "1", "Springfield")
		work := mustAddress(t, "Office Rd", "9", "Springfield")
		require.NoError(t, customer.AddDeliveryAddress(home))
		require.NoError(t, customer.AddDeliveryAddress(work))

		customer.RemoveDeliveryAddress(home)

		got, err := customer.DefaultAddress()
		require.NoError(t, err)
		assert.True(t, got.IsEqual(work))
	})

	t.Run("no default without addresses", func(t *testing.T) {
		customer := newCustomer(t)

		_, err := customer.DefaultAddress()

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("default must be a registered address", func(t *testing.T) {
		customer := newCustomer(t)
		stranger := mustAddress(t, "Nowhere", "0", "Limbo")

		require.Error(t, customer.SetDefaultAddress(stranger))
	})
}

func TestCustomer_Loyalty(t *testing.T) {
	customer, err := user.NewCustomer("Bob", mustEmail(t, "bob@example.com"), mustPhone(t, "5550002222"))
	require.NoError(t, err)

	require.NoError(t, customer.AddLoyaltyPoints(50))
	require.NoError(t, customer.UseLoyaltyPoints(20))
	assert.Equal(t, 30, customer.LoyaltyPoints())

	require.Error(t, customer.UseLoyaltyPoints(100))
	require.Error(t, customer.AddLoyaltyPoints(-5))
}

func TestCustomer_VIP(t *testing.T) {
	customer, err := user.NewCustomer("Carol", mustEmail(t, "carol@example.com"), mustPhone(t, "5550003333"))
	require.NoError(t, err)

	assert.False(t, customer.IsVIP())
	for range 10 {
		customer.IncrementTotalOrders()
	}
	assert.True(t, customer.IsVIP())
	assert.Equal(t, 10, customer.TotalOrders())
}

func TestCourier_Capacity(t *testing.T) {
	newCourier := func(t *testing.T) *user.Courier {
		t.Helper()
		courier, err := user.NewCourier("Dave", mustEmail(t, "dave@example.com"),
			mustPhone(t, "5550004444"), mustSalary(t), "")
		require.NoError(t, err)
		return courier
	}

	t.Run("defaults", func(t *testing.T) {
		courier := newCourier(t)

		assert.Equal(t, "Bike", courier.VehicleType())
		assert.Equal(t, 2, courier.MaxActiveDeliveries())
		assert.True(t, courier.IsAvailable())
	})

	t.Run("accepting beyond the limit fails", func(t *testing.T) {
		courier := newCourier(t)

		require.NoError(t, courier.AcceptDelivery(kernel.NewUUID()))
		require.NoError(t, courier.AcceptDelivery(kernel.NewUUID()))
		assert.False(t, courier.IsAvailable())

		err := courier.AcceptDelivery(kernel.NewUUID())
		require.ErrorIs(t, err, errs.ErrInsufficientCapacity)
	})

	t.Run("completing frees a slot and counts", func(t *testing.T) {
		courier := newCourier(t)
		deliveryID := kernel.NewUUID()
		require.NoError(t, courier.AcceptDelivery(deliveryID))

		require.NoError(t, courier.CompleteDelivery(deliveryID))

		assert.Equal(t, 0, courier.ActiveDeliveryCount())
		assert.Equal(t, 1, courier.CompletedDeliveries())
	})

	t.Run("completing an unknown delivery fails", func(t *testing.T) {
		courier := newCourier(t)

		err := courier.CompleteDelivery(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("inactive courier is unavailable", func(t *testing.T) {
		courier := newCourier(t)

		courier.Deactivate()

		assert.False(t, courier.IsAvailable())
		require.Error(t, courier.AcceptDelivery(kernel.NewUUID()))
	})

	t.Run("location is unset until first update", func(t *testing.T) {
		courier := newCourier(t)

		_, err := courier.CurrentLocation()
		require.Error(t, err)

		loc, err := kernel.NewLocation(3, 4)
		require.NoError(t, err)
		require.NoError(t, courier.UpdateLocation(loc))

		got, err := courier.CurrentLocation()
		require.NoError(t, err)
		equal, err := got.IsEqual(loc)
		require.NoError(t, err)
		assert.True(t, equal)
	})
}

func TestCook_Capacity(t *testing.T) {
	newCook := func(t *testing.T) *user.Cook {
		t.Helper()
		cook, err := user.NewCook("Elena", mustEmail(t, "elena@example.com"),
			mustPhone(t, "5550005555"), mustSalary(t), "")
		require.NoError(t, err)
		return cook
	}

	t.Run("defaults", func(t *testing.T) {
		cook := newCook(t)

		assert.Equal(t, "All-rounder", cook.Specialization())
		assert.Equal(t, 3, cook.MaxConcurrentOrders())
		assert.True(t, cook.IsAvailable())
	})

	t.Run("accepting beyond the limit fails", func(t *testing.T) {
		cook := newCook(t)

		for range 3 {
			require.NoError(t, cook.AcceptOrder(kernel.NewUUID()))
		}
		assert.False(t, cook.IsAvailable())

		err := cook.AcceptOrder(kernel.NewUUID())
		require.ErrorIs(t, err, errs.ErrInsufficientCapacity)
	})

	t.Run("completing frees a slot and counts", func(t *testing.T) {
		cook := newCook(t)
		orderID := kernel.NewUUID()
		require.NoError(t, cook.AcceptOrder(orderID))

		require.NoError(t, cook.CompleteOrder(orderID))

		assert.Equal(t, 0, cook.CurrentOrderCount())
		assert.Equal(t, 1, cook.CompletedOrders())
	})

	t.Run("raising the limit opens capacity", func(t *testing.T) {
		cook := newCook(t)
		for range 3 {
			require.NoError(t, cook.AcceptOrder(kernel.NewUUID()))
		}

		require.NoError(t, cook.SetMaxConcurrentOrders(4))

		assert.True(t, cook.IsAvailable())
		require.Error(t, cook.SetMaxConcurrentOrders(0))
	})
}
