package queries

import (
	"context"
	"fmt"

	"visibility/internal/core/domain/services"
	"visibility/internal/core/ports"
)

// FindShipmentsByOrderQueryHandler summarizes the shipments carrying an order.
// An order nobody carries yields an empty list, not an error.
type FindShipmentsByOrderQueryHandler struct {
	repo   ports.ShipmentRepository
	engine services.RouteStatusEngine
}

// NewFindShipmentsByOrderQueryHandler creates a handler reading from repo.
func NewFindShipmentsByOrderQueryHandler(
	repo ports.ShipmentRepository,
	engine services.RouteStatusEngine,
) FindShipmentsByOrderQueryHandler {
	return FindShipmentsByOrderQueryHandler{
		repo:   repo,
		engine: engine,
	}
}

// Handle returns the summaries of every shipment carrying the order.
func (h FindShipmentsByOrderQueryHandler) Handle(
	ctx context.Context,
	query FindShipmentsByOrderQuery,
) ([]ShipmentSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments, err := h.repo.FindByOrderID(ctx, query.OrderID())
	if err != nil {
		return nil, fmt.Errorf("find shipments by order %s: %w", query.OrderID(), err)
	}

	return newShipmentSummaries(h.engine, shipments), nil
}
