package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"visibility/internal/core/application/usecases/queries"
	"visibility/internal/core/domain/model/order"
	"visibility/internal/core/domain/model/shipment"
	"visibility/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var _ ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and the read-only query use cases.
type Server struct {
	spec   *Spec
	logger *slog.Logger

	listShipmentsHandler         queries.ListShipmentsQueryHandler
	getShipmentVisibilityHandler queries.GetShipmentVisibilityQueryHandler
	getSegmentStatusHandler      queries.GetSegmentStatusQueryHandler
	simulateOrderStatusHandler   queries.SimulateOrderStatusQueryHandler
	findShipmentsByOrderHandler  queries.FindShipmentsByOrderQueryHandler
}

// NewServer creates a new HTTP server with the required query handlers.
func NewServer(
	spec *Spec,
	logger *slog.Logger,
	listShipmentsHandler queries.ListShipmentsQueryHandler,
	getShipmentVisibilityHandler queries.GetShipmentVisibilityQueryHandler,
	getSegmentStatusHandler queries.GetSegmentStatusQueryHandler,
	simulateOrderStatusHandler queries.SimulateOrderStatusQueryHandler,
	findShipmentsByOrderHandler queries.FindShipmentsByOrderQueryHandler,
) *Server {
	return &Server{
		spec:                         spec,
		logger:                       logger.With("component", "http_server"),
		listShipmentsHandler:         listShipmentsHandler,
		getShipmentVisibilityHandler: getShipmentVisibilityHandler,
		getSegmentStatusHandler:      getSegmentStatusHandler,
		simulateOrderStatusHandler:   simulateOrderStatusHandler,
		findShipmentsByOrderHandler:  findShipmentsByOrderHandler,
	}
}

// ListShipments handles GET /api/v1/shipments - summarizes every shipment.
func (s *Server) ListShipments(ctx echo.Context) error {
	summaries, err := s.listShipmentsHandler.Handle(ctx.Request().Context(), queries.NewListShipmentsQuery())
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to retrieve shipments")
	}

	return ctx.JSON(http.StatusOK, toShipmentSummaries(summaries))
}

// GetShipment handles GET /api/v1/shipments/{shipmentId} - reports the whole route.
func (s *Server) GetShipment(ctx echo.Context, shipmentID string) error {
	query, err := queries.NewGetShipmentVisibilityQuery(shipmentID)
	if err != nil {
		return s.errorResponse(ctx, err, "Invalid shipment ID")
	}

	visibility, err := s.getShipmentVisibilityHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to retrieve shipment")
	}

	return ctx.JSON(http.StatusOK, toShipmentVisibility(visibility))
}

// GetSegmentStatus handles GET /api/v1/shipments/{shipmentId}/segments/{segmentIndex}/status.
func (s *Server) GetSegmentStatus(ctx echo.Context, shipmentID string, segmentIndex int) error {
	query, err := queries.NewGetSegmentStatusQuery(shipmentID, segmentIndex)
	if err != nil {
		return s.errorResponse(ctx, err, "Invalid segment query")
	}

	result, err := s.getSegmentStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to retrieve segment status")
	}

	return ctx.JSON(http.StatusOK, SegmentStatusResult{
		ShipmentID: result.ShipmentID,
		Segment:    toSegment(result.Segment),
	})
}

// SimulateOrderStatus handles POST /api/v1/shipments/{shipmentId}/simulations.
// The request body is validated against the SimulationRequest schema.
func (s *Server) SimulateOrderStatus(ctx echo.Context, shipmentID string) error {
	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return s.errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err), "Invalid request body")
	}

	var request SimulationRequest
	if err := s.spec.DecodeBody("SimulationRequest", body, &request); err != nil {
		return s.errorResponse(ctx, err, "Invalid request body")
	}

	query, err := queries.NewSimulateOrderStatusQuery(
		shipmentID,
		request.OrderID,
		order.Type(request.OrderType),
		request.Status,
	)
	if err != nil {
		return s.errorResponse(ctx, err, "Invalid simulation")
	}

	result, err := s.simulateOrderStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to simulate order status")
	}

	return ctx.JSON(http.StatusOK, SimulationResult{
		Before: toShipmentVisibility(result.Before),
		After:  toShipmentVisibility(result.After),
	})
}

// FindShipmentsByOrder handles GET /api/v1/orders/{orderId}/shipments.
func (s *Server) FindShipmentsByOrder(ctx echo.Context, orderID string) error {
	query, err := queries.NewFindShipmentsByOrderQuery(orderID)
	if err != nil {
		return s.errorResponse(ctx, err, "Invalid order ID")
	}

	summaries, err := s.findShipmentsByOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to find shipments")
	}

	return ctx.JSON(http.StatusOK, toShipmentSummaries(summaries))
}

// errorResponse writes err as an Error body. Domain validation errors become 400,
// missing objects 404 and anything else a 500 with a fixed message.
func (s *Server) errorResponse(ctx echo.Context, err error, message string) error {
	code := statusCode(err)
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), message,
			"error", err,
			"method", ctx.Request().Method,
			"path", ctx.Path(),
		)
		return ctx.JSON(code, Error{Code: code, Message: message})
	}

	return ctx.JSON(code, Error{Code: code, Message: message + ": " + err.Error()})
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func toStatus(status shipment.SegmentStatus) Status {
	return Status{Code: status.Code(), Label: status.String()}
}

func toSegment(r queries.SegmentStatusResponse) Segment {
	return Segment{
		Position: r.Position,
		Leg:      r.Leg,
		ID:       r.ID,
		Type:     r.Type.String(),
		Location: r.Location,
		Distance: r.Distance,
		Duration: r.Duration,
		Status:   toStatus(r.Status),
	}
}

func toShipmentVisibility(r queries.ShipmentVisibilityResponse) ShipmentVisibility {
	response := ShipmentVisibility{
		ShipmentID: r.ShipmentID,
		Status:     toStatus(r.Overall),
		ActiveLeg:  r.ActiveLeg,
		Segments:   make([]Segment, len(r.Segments)),
		Legs:       make([]Leg, len(r.Legs)),
	}
	for i, seg := range r.Segments {
		response.Segments[i] = toSegment(seg)
	}
	for i, leg := range r.Legs {
		response.Legs[i] = Leg{
			Index:  leg.Index,
			Status: toStatus(leg.Status),
			Pickup: toSegment(leg.Pickup),
			Drop:   toSegment(leg.Drop),
		}
	}
	return response
}

func toShipmentSummaries(summaries []queries.ShipmentSummaryResponse) []ShipmentSummary {
	response := make([]ShipmentSummary, len(summaries))
	for i, summary := range summaries {
		response[i] = ShipmentSummary{
			ID:           summary.ID,
			SegmentCount: summary.SegmentCount,
			LegCount:     summary.LegCount,
			OrderCount:   summary.OrderCount,
			Status:       toStatus(summary.Overall),
			ActiveLeg:    summary.ActiveLeg,
		}
	}
	return response
}
