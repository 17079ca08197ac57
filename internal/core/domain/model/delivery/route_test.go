package delivery_test

import (
	"testing"

	"pizzeria/internal/core/domain/model/delivery"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLocation(t *testing.T, x, y kernel.Coordinate) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(x, y)
	require.NoError(t, err)
	return loc
}

func newTestRoute(t *testing.T) *delivery.Route {
	t.Helper()
	r, err := delivery.NewRoute(mustLocation(t, 1, 1))
	require.NoError(t, err)
	return r
}

func TestNewRoute(t *testing.T) {
	t.Run("starts empty at the start location", func(t *testing.T) {
		start := mustLocation(t, 3, 4)

		r, err := delivery.NewRoute(start)

		require.NoError(t, err)
		assert.Equal(t, start, r.StartLocation())
		assert.Equal(t, start, r.CurrentLocation())
		assert.True(t, r.IsEmpty())
		assert.False(t, r.IsOptimized())
		assert.Zero(t, r.TotalDistance())
	})

	t.Run("rejects a zero start location", func(t *testing.T) {
		_, err := delivery.NewRoute(kernel.Location{})
		require.Error(t, err)
	})
}

func TestRoute_AddDelivery(t *testing.T) {
	t.Run("adding drops the optimized flag", func(t *testing.T) {
		r := newTestRoute(t)
		r.SetOptimized(true)

		require.NoError(t, r.AddDelivery(newTestDelivery(t)))

		assert.Equal(t, 1, r.DeliveryCount())
		assert.False(t, r.IsOptimized())
	})

	t.Run("rejects the same delivery twice", func(t *testing.T) {
		r := newTestRoute(t)
		d := newTestDelivery(t)
		require.NoError(t, r.AddDelivery(d))

		require.ErrorIs(t, r.AddDelivery(d), errs.ErrInvalidState)
		assert.Equal(t, 1, r.DeliveryCount())
	})

	t.Run("rejects nil", func(t *testing.T) {
		require.ErrorIs(t, newTestRoute(t).AddDelivery(nil), errs.ErrValueIsRequired)
	})
}

func TestRoute_RemoveDelivery(t *testing.T) {
	r := newTestRoute(t)
	d := newTestDelivery(t)
	require.NoError(t, r.AddDelivery(d))
	r.SetOptimized(true)

	r.RemoveDelivery(d.ID())

	assert.True(t, r.IsEmpty())
	assert.False(t, r.IsOptimized())

	// removing again is a no-op
	r.RemoveDelivery(d.ID())
	assert.True(t, r.IsEmpty())
}

func TestRoute_ClearDeliveries(t *testing.T) {
	r := newTestRoute(t)
	require.NoError(t, r.AddDelivery(newTestDelivery(t)))
	require.NoError(t, r.SetTotalDistance(1200))
	require.NoError(t, r.SetEstimatedTotalTime(25))
	r.SetOptimized(true)

	r.ClearDeliveries()

	assert.True(t, r.IsEmpty())
	assert.Zero(t, r.TotalDistance())
	assert.Zero(t, r.EstimatedTotalTime())
	assert.False(t, r.IsOptimized())
}

func TestRoute_Progress(t *testing.T) {
	t.Run("empty route has zero progress and is not completed", func(t *testing.T) {
		r := newTestRoute(t)

		assert.Zero(t, r.Progress())
		assert.False(t, r.IsCompleted())
		_, ok := r.NextDelivery()
		assert.False(t, ok)
	})

	t.Run("one of three completed", func(t *testing.T) {
		r := newTestRoute(t)
		first := newTestDelivery(t)
		second := newTestDelivery(t)
		third := newTestDelivery(t)
		require.NoError(t, r.AddDelivery(first))
		require.NoError(t, r.AddDelivery(second))
		require.NoError(t, r.AddDelivery(third))

		require.NoError(t, first.TransitionTo(delivery.StatusFailed))

		assert.Equal(t, 1, r.CompletedCount())
		assert.InDelta(t, 1.0/3.0, r.Progress(), 1e-9)
		assert.False(t, r.IsCompleted())

		next, ok := r.NextDelivery()
		require.True(t, ok)
		assert.Equal(t, second, next)
	})

	t.Run("all completed", func(t *testing.T) {
		r := newTestRoute(t)
		first := newTestDelivery(t)
		second := newTestDelivery(t)
		require.NoError(t, r.AddDelivery(first))
		require.NoError(t, r.AddDelivery(second))

		require.NoError(t, first.TransitionTo(delivery.StatusDelivered))
		require.NoError(t, second.TransitionTo(delivery.StatusFailed))

		assert.True(t, r.IsCompleted())
		assert.InDelta(t, 1.0, r.Progress(), 1e-9)
		_, ok := r.NextDelivery()
		assert.False(t, ok)
	})
}

func TestRoute_Setters(t *testing.T) {
	r := newTestRoute(t)

	require.NoError(t, r.SetCurrentLocation(mustLocation(t, 5, 5)))
	assert.Equal(t, mustLocation(t, 5, 5), r.CurrentLocation())
	require.Error(t, r.SetCurrentLocation(kernel.Location{}))

	require.NoError(t, r.SetTotalDistance(800))
	require.ErrorIs(t, r.SetTotalDistance(-1), errs.ErrValueIsInvalid)

	require.NoError(t, r.SetEstimatedTotalTime(15))
	require.ErrorIs(t, r.SetEstimatedTotalTime(-5), errs.ErrValueIsInvalid)
}
