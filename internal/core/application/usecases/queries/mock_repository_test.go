package queries_test

import (
	"context"
	"testing"

	"visibility/internal/core/domain/model/kernel"
	"visibility/internal/core/domain/model/order"
	"visibility/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Get(ctx context.Context, id string) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) List(ctx context.Context) ([]*shipment.Shipment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) FindByOrderID(ctx context.Context, orderID string) ([]*shipment.Shipment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

type testOrder struct {
	id        string
	orderType order.Type
	location  string
	status    string
}

// newTestShipment builds a two-leg shipment A -> B, C -> D.
func newTestShipment(t *testing.T, id string, orders ...testOrder) *shipment.Shipment {
	t.Helper()

	segments := make([]shipment.Segment, 0, 4)
	for i, spec := range []struct {
		segmentType shipment.SegmentType
		location    string
	}{
		{shipment.SegmentPickup, "A"},
		{shipment.SegmentDrop, "B"},
		{shipment.SegmentPickup, "C"},
		{shipment.SegmentDrop, "D"},
	} {
		seg, err := shipment.NewSegment(i+1, spec.segmentType, kernel.MustLocationCode(spec.location), "10 km", "15 min")
		require.NoError(t, err)
		segments = append(segments, seg)
	}
	route, err := shipment.NewRoute(segments)
	require.NoError(t, err)

	records := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		record, err := order.NewOrder(kernel.NewUUID(), o.id, o.orderType, kernel.MustLocationCode(o.location), order.NewStatus(o.status))
		require.NoError(t, err)
		records = append(records, record)
	}

	s, err := shipment.NewShipment(id, route, records)
	require.NoError(t, err)
	return s
}

// inFirstLeg has leg 0 picked up and in transit to B, leg 1 waiting.
func inFirstLeg(t *testing.T) *shipment.Shipment {
	t.Helper()
	return newTestShipment(t, "SHP-1",
		testOrder{"SO-1,SO-2", order.Pickup, "A", "Picked up"},
		testOrder{"SO-1,SO-2", order.Drop, "B", "In-Transit"},
		testOrder{"SO-3", order.Pickup, "C", "New"},
		testOrder{"SO-3", order.Drop, "D", "New"},
	)
}

// delivered has every order completed.
func delivered(t *testing.T) *shipment.Shipment {
	t.Helper()
	return newTestShipment(t, "SHP-2",
		testOrder{"SO-4", order.Pickup, "A", "COMPLETED"},
		testOrder{"SO-4", order.Drop, "B", "Delivered"},
		testOrder{"SO-5", order.Pickup, "C", "Picked up"},
		testOrder{"SO-5", order.Drop, "D", "COMPLETED"},
	)
}
