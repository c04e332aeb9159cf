package queries_test

import (
	"context"
	"errors"
	"testing"

	"visibility/internal/core/application/usecases/queries"
	"visibility/internal/core/domain/model/order"
	"visibility/internal/core/domain/model/shipment"
	"visibility/internal/core/domain/services"
	"visibility/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListShipmentsQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	engine := services.NewRouteStatusEngine()

	t.Run("should summarize every shipment", func(t *testing.T) {
		repo := &MockShipmentRepository{}
		repo.On("List", ctx).Return([]*shipment.Shipment{inFirstLeg(t), delivered(t)}, nil).Once()
		handler := queries.NewListShipmentsQueryHandler(repo, engine)

		summaries, err := handler.Handle(ctx, queries.NewListShipmentsQuery())

		require.NoError(t, err)
		require.Len(t, summaries, 2)
		assert.Equal(t, "SHP-1", summaries[0].ID)
		assert.Equal(t, 4, summaries[0].SegmentCount)
		assert.Equal(t, 2, summaries[0].LegCount)
		assert.Equal(t, 4, summaries[0].OrderCount)
		assert.Equal(t, shipment.InProgress, summaries[0].Overall)
		assert.Equal(t, 0, summaries[0].ActiveLeg)
		assert.Equal(t, shipment.Completed, summaries[1].Overall)
		assert.Equal(t, -1, summaries[1].ActiveLeg)
		repo.AssertExpectations(t)
	})

	t.Run("should return an empty list for an empty snapshot", func(t *testing.T) {
		repo := &MockShipmentRepository{}
		repo.On("List", ctx).Return([]*shipment.Shipment{}, nil).Once()
		handler := queries.NewListShipmentsQueryHandler(repo, engine)

		summaries, err := handler.Handle(ctx, queries.NewListShipmentsQuery())

		require.NoError(t, err)
		assert.NotNil(t, summaries)
		assert.Empty(t, summaries)
	})

	t.Run("should wrap repository errors", func(t *testing.T) {
		repoErr := errors.New("connection refused")
		repo := &MockShipmentRepository{}
		repo.On("List", ctx).Return(nil, repoErr).Once()
		handler := queries.NewListShipmentsQueryHandler(repo, engine)

		_, err := handler.Handle(ctx, queries.NewListShipmentsQuery())

		require.ErrorIs(t, err, repoErr)
	})

	t.Run("should reject unconstructed queries without touching the repository", func(t *testing.T) {
		repo := &MockShipmentRepository{}
		handler := queries.NewListShipmentsQueryHandler(repo, engine)

		_, err := handler.Handle(ctx, queries.ListShipmentsQuery{})

		require.ErrorIs(t, err, queries.ErrListShipmentsQueryIsNotConstructed)
		repo.AssertNotCalled(t, "List", mock.Anything)
	})
}

func TestGetShipmentVisibilityQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	engine := services.NewRouteStatusEngine()

	t.Run("should report every segment and leg", func(t *testing.T) {
		repo := &MockShipmentRepository{}
		repo.On("Get", ctx, "SHP-1").Return(inFirstLeg(t), nil).Once()
		handler := queries.NewGetShipmentVisibilityQueryHandler(repo, engine)
		query, err := queries.NewGetShipmentVisibilityQuery("SHP-1")
		require.NoError(t, err)

		visibility, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, "SHP-1", visibility.ShipmentID)
		require.Len(t, visibility.Segments, 4)
		assert.Equal(t, shipment.Completed, visibility.Segments[0].Status)
		assert.Equal(t, shipment.InProgress, visibility.Segments[1].Status)
		assert.Equal(t, shipment.NotStarted, visibility.Segments[2].Status)
		assert.Equal(t, "B", visibility.Segments[1].Location)
		assert.Equal(t, "10 km", visibility.Segments[1].Distance)
		require.Len(t, visibility.Legs, 2)
		assert.Equal(t, shipment.InProgress, visibility.Legs[0].Status)
		assert.Equal(t, shipment.NotStarted, visibility.Legs[1].Status)
		assert.Equal(t, 0, visibility.ActiveLeg)
		repo.AssertExpectations(t)
	})

	t.Run("should pass not found errors through", func(t *testing.T) {
		repo := &MockShipmentRepository{}
		repo.On("Get", ctx, "SHP-9").Return(nil, errs.NewObjectNotFoundError("shipment ID", "SHP-9")).Once()
		handler := queries.NewGetShipmentVisibilityQueryHandler(repo, engine)
		query, _ := queries.NewGetShipmentVisibilityQuery("SHP-9")

		_, err := handler.Handle(ctx, query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestGetSegmentStatusQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	engine := services.NewRouteStatusEngine()

	t.Run("should return the status of one segment", func(t *testing.T) {
		repo := &MockShipmentRepository{}
		repo.On("Get", ctx, "SHP-1").Return(inFirstLeg(t), nil).Once()
		handler := queries.NewGetSegmentStatusQueryHandler(repo, engine)
		query, err := queries.NewGetSegmentStatusQuery("SHP-1", 1)
		require.NoError(t, err)

		response, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, "SHP-1", response.ShipmentID)
		assert.Equal(t, 2, response.Segment.ID)
		assert.Equal(t, shipment.SegmentDrop, response.Segment.Type)
		assert.Equal(t, shipment.InProgress, response.Segment.Status)
	})

	t.Run("should return not found past the end of the route", func(t *testing.T) {
		repo := &MockShipmentRepository{}
		repo.On("Get", ctx, "SHP-1").Return(inFirstLeg(t), nil).Once()
		handler := queries.NewGetSegmentStatusQueryHandler(repo, engine)
		query, _ := queries.NewGetSegmentStatusQuery("SHP-1", 4)

		_, err := handler.Handle(ctx, query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Contains(t, err.Error(), "has 4 segments")
	})
}

func TestFindShipmentsByOrderQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	engine := services.NewRouteStatusEngine()

	t.Run("should summarize the shipments carrying the order", func(t *testing.T) {
		repo := &MockShipmentRepository{}
		repo.On("FindByOrderID", ctx, "SO-2").Return([]*shipment.Shipment{inFirstLeg(t)}, nil).Once()
		handler := queries.NewFindShipmentsByOrderQueryHandler(repo, engine)
		query, _ := queries.NewFindShipmentsByOrderQuery("SO-2")

		summaries, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, "SHP-1", summaries[0].ID)
		repo.AssertExpectations(t)
	})

	t.Run("should return an empty list when nobody carries the order", func(t *testing.T) {
		repo := &MockShipmentRepository{}
		repo.On("FindByOrderID", ctx, "SO-404").Return([]*shipment.Shipment{}, nil).Once()
		handler := queries.NewFindShipmentsByOrderQueryHandler(repo, engine)
		query, _ := queries.NewFindShipmentsByOrderQuery("SO-404")

		summaries, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		assert.Empty(t, summaries)
	})
}

func TestSimulateOrderStatusQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	engine := services.NewRouteStatusEngine()

	t.Run("should report the route before and after the change", func(t *testing.T) {
		current := inFirstLeg(t)
		repo := &MockShipmentRepository{}
		repo.On("Get", ctx, "SHP-1").Return(current, nil).Once()
		handler := queries.NewSimulateOrderStatusQueryHandler(repo, engine)
		query, err := queries.NewSimulateOrderStatusQuery("SHP-1", "SO-2", order.Drop, "Delivered")
		require.NoError(t, err)

		result, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, shipment.InProgress, result.Before.Legs[0].Status)
		assert.Equal(t, shipment.Completed, result.After.Legs[0].Status)
		assert.Equal(t, 0, result.Before.ActiveLeg)
		assert.Equal(t, 1, result.After.ActiveLeg)

		// the snapshot itself is untouched
		again := engine.ComputeRouteReport(current)
		assert.Equal(t, shipment.InProgress, again.Legs[0].Status)
	})

	t.Run("should return not found for an order the shipment does not carry", func(t *testing.T) {
		repo := &MockShipmentRepository{}
		repo.On("Get", ctx, "SHP-1").Return(inFirstLeg(t), nil).Once()
		handler := queries.NewSimulateOrderStatusQueryHandler(repo, engine)
		query, _ := queries.NewSimulateOrderStatusQuery("SHP-1", "SO-404", "", "COMPLETED")

		_, err := handler.Handle(ctx, query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should pass repository errors through", func(t *testing.T) {
		repo := &MockShipmentRepository{}
		repo.On("Get", ctx, "SHP-9").Return(nil, errs.NewObjectNotFoundError("shipment ID", "SHP-9")).Once()
		handler := queries.NewSimulateOrderStatusQueryHandler(repo, engine)
		query, _ := queries.NewSimulateOrderStatusQuery("SHP-9", "SO-1", "", "COMPLETED")

		_, err := handler.Handle(ctx, query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
