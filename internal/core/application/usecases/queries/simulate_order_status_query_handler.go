package queries

import (
	"context"

	"visibility/internal/core/domain/services"
	"visibility/internal/core/ports"
)

// SimulateOrderStatusQueryResponse holds the route report before and after the simulated change.
type SimulateOrderStatusQueryResponse struct {
	Before ShipmentVisibilityResponse
	After  ShipmentVisibilityResponse
}

// SimulateOrderStatusQueryHandler runs what-if simulations of order status changes.
//
// Example:
//
//	handler := NewSimulateOrderStatusQueryHandler(repo, engine)
//	query, _ := NewSimulateOrderStatusQuery("SHP-1", "SO-1001", "", "COMPLETED")
//
//	result, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown shipment, or the shipment does not carry the order
//	}
type SimulateOrderStatusQueryHandler struct {
	repo   ports.ShipmentRepository
	engine services.RouteStatusEngine
}

// NewSimulateOrderStatusQueryHandler creates a handler reading from repo.
func NewSimulateOrderStatusQueryHandler(
	repo ports.ShipmentRepository,
	engine services.RouteStatusEngine,
) SimulateOrderStatusQueryHandler {
	return SimulateOrderStatusQueryHandler{
		repo:   repo,
		engine: engine,
	}
}

// Handle applies the status to a copy of the shipment and reports both routes.
// The repository snapshot is never modified.
func (h SimulateOrderStatusQueryHandler) Handle(
	ctx context.Context,
	query SimulateOrderStatusQuery,
) (SimulateOrderStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return SimulateOrderStatusQueryResponse{}, err
	}

	s, err := h.repo.Get(ctx, query.ShipmentID())
	if err != nil {
		return SimulateOrderStatusQueryResponse{}, err
	}

	simulated, err := s.WithOrderStatus(query.OrderID(), query.OrderType(), query.Status())
	if err != nil {
		return SimulateOrderStatusQueryResponse{}, err
	}

	return SimulateOrderStatusQueryResponse{
		Before: newShipmentVisibilityResponse(h.engine.ComputeRouteReport(s)),
		After:  newShipmentVisibilityResponse(h.engine.ComputeRouteReport(simulated)),
	}, nil
}
