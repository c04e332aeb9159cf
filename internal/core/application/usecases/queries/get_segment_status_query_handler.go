package queries

import (
	"context"
	"fmt"

	"visibility/internal/core/domain/services"
	"visibility/internal/core/ports"
	"visibility/internal/pkg/errs"
)

// GetSegmentStatusQueryResponse is the status of one segment of a shipment.
type GetSegmentStatusQueryResponse struct {
	ShipmentID string
	Segment    SegmentStatusResponse
}

// GetSegmentStatusQueryHandler derives the status of one segment.
// The segment is evaluated exactly as it is in the shipment's route report.
type GetSegmentStatusQueryHandler struct {
	repo   ports.ShipmentRepository
	engine services.RouteStatusEngine
}

// NewGetSegmentStatusQueryHandler creates a handler reading from repo.
func NewGetSegmentStatusQueryHandler(
	repo ports.ShipmentRepository,
	engine services.RouteStatusEngine,
) GetSegmentStatusQueryHandler {
	return GetSegmentStatusQueryHandler{
		repo:   repo,
		engine: engine,
	}
}

// Handle loads the shipment and derives the status of the requested segment.
// Returns an errs.ObjectNotFoundError when the index is past the end of the route.
func (h GetSegmentStatusQueryHandler) Handle(
	ctx context.Context,
	query GetSegmentStatusQuery,
) (GetSegmentStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSegmentStatusQueryResponse{}, err
	}

	s, err := h.repo.Get(ctx, query.ShipmentID())
	if err != nil {
		return GetSegmentStatusQueryResponse{}, err
	}

	report, ok := h.engine.ComputeSegmentReport(s, query.SegmentIndex())
	if !ok {
		return GetSegmentStatusQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"segment index", query.SegmentIndex(),
			fmt.Errorf("shipment %s has %d segments", s.ID(), s.Route().Len()),
		)
	}

	return GetSegmentStatusQueryResponse{
		ShipmentID: s.ID(),
		Segment:    newSegmentStatusResponse(report),
	}, nil
}
