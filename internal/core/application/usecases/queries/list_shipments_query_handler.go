package queries

import (
	"context"
	"fmt"

	"visibility/internal/core/domain/services"
	"visibility/internal/core/ports"
)

// ListShipmentsQueryHandler summarizes every shipment with its overall route status.
type ListShipmentsQueryHandler struct {
	repo   ports.ShipmentRepository
	engine services.RouteStatusEngine
}

// NewListShipmentsQueryHandler creates a handler reading from repo and deriving statuses with engine.
func NewListShipmentsQueryHandler(
	repo ports.ShipmentRepository,
	engine services.RouteStatusEngine,
) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{
		repo:   repo,
		engine: engine,
	}
}

// Handle returns one summary per shipment, in repository order.
func (h ListShipmentsQueryHandler) Handle(
	ctx context.Context,
	query ListShipmentsQuery,
) ([]ShipmentSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments, err := h.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}

	return newShipmentSummaries(h.engine, shipments), nil
}
