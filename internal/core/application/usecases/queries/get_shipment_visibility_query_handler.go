package queries

import (
	"context"

	"visibility/internal/core/domain/services"
	"visibility/internal/core/ports"
)

// GetShipmentVisibilityQueryHandler derives the route report of one shipment.
//
// Example:
//
//	handler := NewGetShipmentVisibilityQueryHandler(repo, services.NewRouteStatusEngine())
//	query, _ := NewGetShipmentVisibilityQuery("SHP-1")
//
//	visibility, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("overall %s, active leg %d\n", visibility.Overall, visibility.ActiveLeg)
type GetShipmentVisibilityQueryHandler struct {
	repo   ports.ShipmentRepository
	engine services.RouteStatusEngine
}

// NewGetShipmentVisibilityQueryHandler creates a handler reading from repo.
func NewGetShipmentVisibilityQueryHandler(
	repo ports.ShipmentRepository,
	engine services.RouteStatusEngine,
) GetShipmentVisibilityQueryHandler {
	return GetShipmentVisibilityQueryHandler{
		repo:   repo,
		engine: engine,
	}
}

// Handle loads the shipment and computes its route report.
// Repository errors, including errs.ObjectNotFoundError, are returned unchanged.
func (h GetShipmentVisibilityQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentVisibilityQuery,
) (ShipmentVisibilityResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipmentVisibilityResponse{}, err
	}

	s, err := h.repo.Get(ctx, query.ShipmentID())
	if err != nil {
		return ShipmentVisibilityResponse{}, err
	}

	return newShipmentVisibilityResponse(h.engine.ComputeRouteReport(s)), nil
}
