package queries_test

import (
	"testing"

	"visibility/internal/core/application/usecases/queries"
	"visibility/internal/core/domain/model/order"
	"visibility/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListShipmentsQuery(t *testing.T) {
	t.Run("should be valid when constructed", func(t *testing.T) {
		require.NoError(t, queries.NewListShipmentsQuery().Validate())
	})

	t.Run("should reject the zero value", func(t *testing.T) {
		err := queries.ListShipmentsQuery{}.Validate()
		assert.ErrorIs(t, err, queries.ErrListShipmentsQueryIsNotConstructed)
	})
}

func TestNewGetShipmentVisibilityQuery(t *testing.T) {
	t.Run("should keep the shipment ID", func(t *testing.T) {
		q, err := queries.NewGetShipmentVisibilityQuery("SHP-1")

		require.NoError(t, err)
		require.NoError(t, q.Validate())
		assert.Equal(t, "SHP-1", q.ShipmentID())
	})

	t.Run("should reject a blank shipment ID", func(t *testing.T) {
		q, err := queries.NewGetShipmentVisibilityQuery("  ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, q.Validate(), queries.ErrGetShipmentVisibilityQueryIsNotConstructed)
	})
}

func TestNewGetSegmentStatusQuery(t *testing.T) {
	t.Run("should keep shipment and index", func(t *testing.T) {
		q, err := queries.NewGetSegmentStatusQuery("SHP-1", 3)

		require.NoError(t, err)
		require.NoError(t, q.Validate())
		assert.Equal(t, "SHP-1", q.ShipmentID())
		assert.Equal(t, 3, q.SegmentIndex())
	})

	t.Run("should join every validation error", func(t *testing.T) {
		_, err := queries.NewGetSegmentStatusQuery("", -1)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject the zero value", func(t *testing.T) {
		err := queries.GetSegmentStatusQuery{}.Validate()
		assert.ErrorIs(t, err, queries.ErrGetSegmentStatusQueryIsNotConstructed)
	})
}

func TestNewFindShipmentsByOrderQuery(t *testing.T) {
	t.Run("should trim the order ID", func(t *testing.T) {
		q, err := queries.NewFindShipmentsByOrderQuery(" SO-2 ")

		require.NoError(t, err)
		assert.Equal(t, "SO-2", q.OrderID())
	})

	t.Run("should reject a blank order ID", func(t *testing.T) {
		_, err := queries.NewFindShipmentsByOrderQuery("")

		require.ErrorIs(t, err, queries.ErrOrderIDIsRequired)
	})
}

func TestNewSimulateOrderStatusQuery(t *testing.T) {
	t.Run("should keep every parameter", func(t *testing.T) {
		q, err := queries.NewSimulateOrderStatusQuery("SHP-1", "SO-3", order.Pickup, "Picked up")

		require.NoError(t, err)
		require.NoError(t, q.Validate())
		assert.Equal(t, "SHP-1", q.ShipmentID())
		assert.Equal(t, "SO-3", q.OrderID())
		assert.Equal(t, order.Pickup, q.OrderType())
		assert.Equal(t, "Picked up", q.Status().Raw())
	})

	t.Run("should accept an empty order type", func(t *testing.T) {
		q, err := queries.NewSimulateOrderStatusQuery("SHP-1", "SO-3", "", "COMPLETED")

		require.NoError(t, err)
		assert.Empty(t, q.OrderType())
	})

	t.Run("should join every validation error", func(t *testing.T) {
		_, err := queries.NewSimulateOrderStatusQuery("", " ", order.Type("X"), "")

		require.ErrorIs(t, err, queries.ErrShipmentIDIsRequired)
		require.ErrorIs(t, err, queries.ErrOrderIDIsRequired)
		require.ErrorIs(t, err, queries.ErrStatusIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
