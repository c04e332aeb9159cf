package order_test

import (
	"testing"

	"visibility/internal/core/domain/model/kernel"
	"visibility/internal/core/domain/model/order"
	"visibility/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T, orderID string, orderType order.Type, location, status string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), orderID, orderType, kernel.MustLocationCode(location), order.NewStatus(status))
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create a valid order", func(t *testing.T) {
		id := kernel.NewUUID()
		loc := kernel.MustLocationCode("WH-A")

		o, err := order.NewOrder(id, "SO-1001", order.Pickup, loc, order.NewStatus("New"))

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, id.IsEqual(o.RecordID()))
		assert.Equal(t, "SO-1001", o.OrderID())
		assert.Equal(t, order.Pickup, o.Type())
		assert.True(t, loc.IsEqual(o.Location()))
		assert.Equal(t, "New", o.Status().Raw())
	})

	t.Run("should join every validation error", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{}, " ", order.Type("X"), kernel.LocationCode{}, order.NewStatus("New"))

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, order.ErrOrderIDIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, kernel.ErrLocationCodeIsRequired)
	})

	t.Run("should accept unrecognized statuses", func(t *testing.T) {
		o := newTestOrder(t, "SO-1", order.Drop, "DC-B", "On Hold")

		assert.Equal(t, order.Unrecognized, o.Status().Progress(o.Type()))
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should reject nil and zero orders", func(t *testing.T) {
		var nilOrder *order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, nilOrder.Validate())
		assert.Equal(t, order.ErrOrderIsNotConstructed, (&order.Order{}).Validate())
	})
}

func TestOrder_CombinedOrders(t *testing.T) {
	t.Run("should use the part before the first comma as logical ID", func(t *testing.T) {
		combined := newTestOrder(t, "123,456", order.Pickup, "WH-A", "New")
		single := newTestOrder(t, "123", order.Pickup, "WH-A", "New")

		assert.Equal(t, "123", combined.LogicalID())
		assert.Equal(t, "123", single.LogicalID())
		assert.True(t, combined.IsCombined())
		assert.False(t, single.IsCombined())
	})

	t.Run("should list underlying IDs", func(t *testing.T) {
		combined := newTestOrder(t, "SO-1, SO-2,,SO-3", order.Drop, "DC-B", "New")

		assert.Equal(t, []string{"SO-1", "SO-2", "SO-3"}, combined.UnderlyingOrderIDs())
		assert.True(t, combined.Carries("SO-2"))
		assert.True(t, combined.Carries("SO-1, SO-2,,SO-3"))
		assert.False(t, combined.Carries("SO-4"))
	})
}

func TestOrder_Matches(t *testing.T) {
	o := newTestOrder(t, "SO-1", order.Pickup, "WH-A", "New")

	t.Run("should match type and location", func(t *testing.T) {
		assert.True(t, o.Matches(order.Pickup, kernel.MustLocationCode("WH-A")))
		assert.False(t, o.Matches(order.Pickup, kernel.MustLocationCode("WH-B")))
		assert.False(t, o.Matches(order.Drop, kernel.MustLocationCode("WH-A")))
	})

	t.Run("should match any location when none is given", func(t *testing.T) {
		assert.True(t, o.Matches(order.Pickup, kernel.LocationCode{}))
		assert.False(t, o.Matches(order.Drop, kernel.LocationCode{}))
	})
}

func TestOrder_WithStatus(t *testing.T) {
	t.Run("should return a modified copy", func(t *testing.T) {
		o := newTestOrder(t, "SO-1", order.Pickup, "WH-A", "New")

		updated := o.WithStatus(order.NewStatus("Picked up"))

		assert.Equal(t, "New", o.Status().Raw())
		assert.Equal(t, "Picked up", updated.Status().Raw())
		assert.True(t, o.RecordID().IsEqual(updated.RecordID()))
		require.NoError(t, updated.Validate())
	})
}
