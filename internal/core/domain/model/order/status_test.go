package order_test

import (
	"testing"

	"pizzeria/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.StatusUnknown))
		assert.Equal(t, 1, int(order.StatusDraft))
		assert.Equal(t, 10, int(order.StatusCancelled))
	})

	t.Run("unknown is invalid", func(t *testing.T) {
		require.Error(t, order.StatusUnknown.Validate())
		require.Error(t, order.Status(42).Validate())
	})

	t.Run("all defined statuses are valid", func(t *testing.T) {
		statuses := []order.Status{
			order.StatusDraft,
			order.StatusPendingPayment,
			order.StatusPaid,
			order.StatusConfirmed,
			order.StatusPreparing,
			order.StatusReady,
			order.StatusOutForDelivery,
			order.StatusDelivered,
			order.StatusCompleted,
			order.StatusCancelled,
		}
		for _, status := range statuses {
			require.NoError(t, status.Validate(), status.String())
		}
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Draft", order.StatusDraft.String())
	assert.Equal(t, "Pending Payment", order.StatusPendingPayment.String())
	assert.Equal(t, "Out for Delivery", order.StatusOutForDelivery.String())
	assert.Equal(t, "Unknown", order.StatusUnknown.String())
	assert.Equal(t, "Waiting for payment", order.StatusPendingPayment.Description())
}

func TestStatus_IsEditable(t *testing.T) {
	assert.True(t, order.StatusDraft.IsEditable())

	for _, status := range []order.Status{
		order.StatusPendingPayment,
		order.StatusPaid,
		order.StatusConfirmed,
		order.StatusPreparing,
		order.StatusCompleted,
		order.StatusCancelled,
	} {
		assert.False(t, status.IsEditable(), status.String())
	}
}

func TestStatus_IsCancellable(t *testing.T) {
	cancellable := []order.Status{
		order.StatusDraft,
		order.StatusPendingPayment,
		order.StatusPaid,
		order.StatusConfirmed,
	}
	for _, status := range cancellable {
		assert.True(t, status.IsCancellable(), status.String())
	}

	notCancellable := []order.Status{
		order.StatusPreparing,
		order.StatusReady,
		order.StatusOutForDelivery,
		order.StatusDelivered,
		order.StatusCompleted,
		order.StatusCancelled,
	}
	for _, status := range notCancellable {
		assert.False(t, status.IsCancellable(), status.String())
	}
}

func TestStatus_IsFinal(t *testing.T) {
	final := []order.Status{
		order.StatusDelivered,
		order.StatusCompleted,
		order.StatusCancelled,
	}
	for _, status := range final {
		assert.True(t, status.IsFinal(), status.String())
	}

	assert.False(t, order.StatusDraft.IsFinal())
	assert.False(t, order.StatusPreparing.IsFinal())
}
