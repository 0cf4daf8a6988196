package services_test

import (
	"testing"

	"github.com/pathania28/s2y-taste-trail/entity"
	"github.com/pathania28/s2y-taste-trail/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placeTestOrder(t *testing.T, f *fixture) *services.PlacedOrder {
	t.Helper()
	placed, err := f.orders.PlaceOrder(f.customer.ID, f.rest.ID,
		[]services.CartLine{{MenuItemID: f.salad.ID, Quantity: 1, Price: 180}},
		"456 Home Lane", "+91 98765 43210", "")
	require.NoError(t, err)
	return placed
}

func currentStatus(t *testing.T, f *fixture, orderID uint) entity.OrderStatus {
	t.Helper()
	var o entity.Order
	require.NoError(t, f.db.First(&o, orderID).Error)
	return o.Status
}

func TestAdvanceStatusForwardPath(t *testing.T) {
	f := newFixture(t, services.PolicyPriceLock)
	placed := placeTestOrder(t, f)

	path := []entity.OrderStatus{
		entity.StatusConfirmed,
		entity.StatusPreparing,
		entity.StatusReady,
		entity.StatusPickedUp,
		entity.StatusDelivered,
	}
	for _, next := range path {
		require.NoError(t, f.orders.AdvanceStatus(placed.ID, next))
		assert.Equal(t, next, currentStatus(t, f, placed.ID))
	}
}

func TestAdvanceStatusRejectsSkip(t *testing.T) {
	f := newFixture(t, services.PolicyPriceLock)
	placed := placeTestOrder(t, f)

	// pending straight to preparing skips confirmed
	err := f.orders.AdvanceStatus(placed.ID, entity.StatusPreparing)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)
	assert.Equal(t, entity.StatusPending, currentStatus(t, f, placed.ID))
}

func TestAdvanceStatusRejectsBackward(t *testing.T) {
	f := newFixture(t, services.PolicyPriceLock)
	placed := placeTestOrder(t, f)
	require.NoError(t, f.orders.AdvanceStatus(placed.ID, entity.StatusConfirmed))

	err := f.orders.AdvanceStatus(placed.ID, entity.StatusPending)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)
	assert.Equal(t, entity.StatusConfirmed, currentStatus(t, f, placed.ID))
}

func TestAdvanceStatusReadyCannotJumpToDelivered(t *testing.T) {
	f := newFixture(t, services.PolicyPriceLock)
	placed := placeTestOrder(t, f)
	for _, s := range []entity.OrderStatus{entity.StatusConfirmed, entity.StatusPreparing, entity.StatusReady} {
		require.NoError(t, f.orders.AdvanceStatus(placed.ID, s))
	}

	err := f.orders.AdvanceStatus(placed.ID, entity.StatusDelivered)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)
	assert.Equal(t, entity.StatusReady, currentStatus(t, f, placed.ID))
}

func TestAdvanceStatusCancellation(t *testing.T) {
	f := newFixture(t, services.PolicyPriceLock)

	t.Run("from_pending", func(t *testing.T) {
		placed := placeTestOrder(t, f)
		require.NoError(t, f.orders.AdvanceStatus(placed.ID, entity.StatusCancelled))
		assert.Equal(t, entity.StatusCancelled, currentStatus(t, f, placed.ID))
	})

	t.Run("from_picked_up", func(t *testing.T) {
		placed := placeTestOrder(t, f)
		for _, s := range []entity.OrderStatus{entity.StatusConfirmed, entity.StatusPreparing, entity.StatusReady, entity.StatusPickedUp} {
			require.NoError(t, f.orders.AdvanceStatus(placed.ID, s))
		}
		require.NoError(t, f.orders.AdvanceStatus(placed.ID, entity.StatusCancelled))
	})

	t.Run("not_from_delivered", func(t *testing.T) {
		placed := placeTestOrder(t, f)
		for _, s := range []entity.OrderStatus{entity.StatusConfirmed, entity.StatusPreparing, entity.StatusReady, entity.StatusPickedUp, entity.StatusDelivered} {
			require.NoError(t, f.orders.AdvanceStatus(placed.ID, s))
		}
		err := f.orders.AdvanceStatus(placed.ID, entity.StatusCancelled)
		assert.ErrorIs(t, err, services.ErrInvalidTransition)
	})
}

func TestAdvanceStatusTerminalStates(t *testing.T) {
	f := newFixture(t, services.PolicyPriceLock)
	placed := placeTestOrder(t, f)
	require.NoError(t, f.orders.AdvanceStatus(placed.ID, entity.StatusCancelled))

	for _, next := range []entity.OrderStatus{entity.StatusConfirmed, entity.StatusPending, entity.StatusDelivered} {
		err := f.orders.AdvanceStatus(placed.ID, next)
		assert.ErrorIs(t, err, services.ErrInvalidTransition, "cancelled -> %s", next)
	}
}

func TestAdvanceStatusUnknownOrder(t *testing.T) {
	f := newFixture(t, services.PolicyPriceLock)
	err := f.orders.AdvanceStatus(12345, entity.StatusConfirmed)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestAdvanceStatusUnknownStatus(t *testing.T) {
	f := newFixture(t, services.PolicyPriceLock)
	placed := placeTestOrder(t, f)
	err := f.orders.AdvanceStatus(placed.ID, entity.OrderStatus("accepted"))
	assert.ErrorIs(t, err, services.ErrInvalidTransition)
	assert.Equal(t, entity.StatusPending, currentStatus(t, f, placed.ID))
}

func TestAdvanceForVendor(t *testing.T) {
	f := newFixture(t, services.PolicyPriceLock)
	placed := placeTestOrder(t, f)

	t.Run("owner_advances", func(t *testing.T) {
		require.NoError(t, f.orders.AdvanceForVendor(f.vendor.ID, placed.ID, entity.StatusConfirmed))
		assert.Equal(t, entity.StatusConfirmed, currentStatus(t, f, placed.ID))
	})

	t.Run("stranger_is_forbidden", func(t *testing.T) {
		err := f.orders.AdvanceForVendor(f.customer.ID, placed.ID, entity.StatusPreparing)
		assert.ErrorIs(t, err, services.ErrForbidden)
	})

	t.Run("vendor_cannot_mark_picked_up", func(t *testing.T) {
		err := f.orders.AdvanceForVendor(f.vendor.ID, placed.ID, entity.StatusPickedUp)
		assert.ErrorIs(t, err, services.ErrForbidden)
	})
}

func TestAdvanceForCourier(t *testing.T) {
	f := newFixture(t, services.PolicyPriceLock)
	placed := placeTestOrder(t, f)
	for _, s := range []entity.OrderStatus{entity.StatusConfirmed, entity.StatusPreparing, entity.StatusReady} {
		require.NoError(t, f.orders.AdvanceStatus(placed.ID, s))
	}

	t.Run("courier_cannot_confirm", func(t *testing.T) {
		err := f.orders.AdvanceForCourier(placed.ID, entity.StatusConfirmed)
		assert.ErrorIs(t, err, services.ErrForbidden)
	})

	t.Run("pickup_then_deliver", func(t *testing.T) {
		require.NoError(t, f.orders.AdvanceForCourier(placed.ID, entity.StatusPickedUp))
		require.NoError(t, f.orders.AdvanceForCourier(placed.ID, entity.StatusDelivered))
		assert.Equal(t, entity.StatusDelivered, currentStatus(t, f, placed.ID))
	})
}

func TestVendorAndCourierShareOneOrderRow(t *testing.T) {
	f := newFixture(t, services.PolicyPriceLock)
	placed := placeTestOrder(t, f)

	// vendor runs the kitchen side
	require.NoError(t, f.orders.AdvanceForVendor(f.vendor.ID, placed.ID, entity.StatusConfirmed))
	require.NoError(t, f.orders.AdvanceForVendor(f.vendor.ID, placed.ID, entity.StatusPreparing))
	require.NoError(t, f.orders.AdvanceForVendor(f.vendor.ID, placed.ID, entity.StatusReady))

	// the courier's job board sees the same row the vendor just marked ready
	jobs, err := f.orders.ListByStatus(entity.StatusReady, 0)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, placed.ID, jobs[0].ID)

	// courier completes it; the customer history shows delivered
	require.NoError(t, f.orders.AdvanceForCourier(placed.ID, entity.StatusPickedUp))
	require.NoError(t, f.orders.AdvanceForCourier(placed.ID, entity.StatusDelivered))

	history, err := f.orders.ListForUser(f.customer.ID, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, entity.StatusDelivered, history[0].Status)
}
