package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Status carries a derived status as a stable code and its display label.
type Status struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// ShipmentSummary is a list entry of a shipment.
type ShipmentSummary struct {
	ID           string `json:"id"`
	SegmentCount int    `json:"segmentCount"`
	LegCount     int    `json:"legCount"`
	OrderCount   int    `json:"orderCount"`
	Status       Status `json:"status"`
	ActiveLeg    int    `json:"activeLeg"`
}

// Segment is one route stop with its derived status.
type Segment struct {
	Position int    `json:"position"`
	Leg      int    `json:"leg"`
	ID       int    `json:"id"`
	Type     string `json:"type"`
	Location string `json:"location"`
	Distance string `json:"distance,omitempty"`
	Duration string `json:"duration,omitempty"`
	Status   Status `json:"status"`
}

// Leg is a pickup/drop pair with its derived status.
type Leg struct {
	Index  int     `json:"index"`
	Status Status  `json:"status"`
	Pickup Segment `json:"pickup"`
	Drop   Segment `json:"drop"`
}

// ShipmentVisibility is the route report of one shipment.
type ShipmentVisibility struct {
	ShipmentID string    `json:"shipmentId"`
	Status     Status    `json:"status"`
	ActiveLeg  int       `json:"activeLeg"`
	Segments   []Segment `json:"segments"`
	Legs       []Leg     `json:"legs"`
}

// SegmentStatusResult is the status of a single segment.
type SegmentStatusResult struct {
	ShipmentID string  `json:"shipmentId"`
	Segment    Segment `json:"segment"`
}

// SimulationRequest is the body of POST /api/v1/shipments/{shipmentId}/simulations.
type SimulationRequest struct {
	OrderID   string `json:"orderId"`
	OrderType string `json:"orderType,omitempty"`
	Status    string `json:"status"`
}

// SimulationResult holds the route reports before and after a simulated change.
type SimulationResult struct {
	Before ShipmentVisibility `json:"before"`
	After  ShipmentVisibility `json:"after"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List shipments with their overall status
	// (GET /api/v1/shipments)
	ListShipments(ctx echo.Context) error
	// Route report of one shipment
	// (GET /api/v1/shipments/{shipmentId})
	GetShipment(ctx echo.Context, shipmentID string) error
	// Status of the segment at a route position
	// (GET /api/v1/shipments/{shipmentId}/segments/{segmentIndex}/status)
	GetSegmentStatus(ctx echo.Context, shipmentID string, segmentIndex int) error
	// Route report after a hypothetical order status change
	// (POST /api/v1/shipments/{shipmentId}/simulations)
	SimulateOrderStatus(ctx echo.Context, shipmentID string) error
	// Shipments carrying an order
	// (GET /api/v1/orders/{orderId}/shipments)
	FindShipmentsByOrder(ctx echo.Context, orderID string) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListShipments converts echo context to params.
func (w *ServerInterfaceWrapper) ListShipments(ctx echo.Context) error {
	return w.Handler.ListShipments(ctx)
}

// GetShipment converts echo context to params.
func (w *ServerInterfaceWrapper) GetShipment(ctx echo.Context) error {
	shipmentID, err := bindPathString(ctx, "shipmentId")
	if err != nil {
		return err
	}
	return w.Handler.GetShipment(ctx, shipmentID)
}

// GetSegmentStatus converts echo context to params.
func (w *ServerInterfaceWrapper) GetSegmentStatus(ctx echo.Context) error {
	shipmentID, err := bindPathString(ctx, "shipmentId")
	if err != nil {
		return err
	}

	var segmentIndex int
	err = runtime.BindStyledParameterWithOptions("simple", "segmentIndex", ctx.Param("segmentIndex"), &segmentIndex,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter segmentIndex: %s", err))
	}

	return w.Handler.GetSegmentStatus(ctx, shipmentID, segmentIndex)
}

// SimulateOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) SimulateOrderStatus(ctx echo.Context) error {
	shipmentID, err := bindPathString(ctx, "shipmentId")
	if err != nil {
		return err
	}
	return w.Handler.SimulateOrderStatus(ctx, shipmentID)
}

// FindShipmentsByOrder converts echo context to params.
func (w *ServerInterfaceWrapper) FindShipmentsByOrder(ctx echo.Context) error {
	orderID, err := bindPathString(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.FindShipmentsByOrder(ctx, orderID)
}

func bindPathString(ctx echo.Context, name string) (string, error) {
	var value string
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &value,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return value, nil
}

// EchoRouter is the subset of echo routing used to register handlers.
// Both *echo.Echo and *echo.Group implement it.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the handlers, each prefixed with baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/orders/:orderId/shipments", wrapper.FindShipmentsByOrder)
	router.GET(baseURL+"/api/v1/shipments", wrapper.ListShipments)
	router.GET(baseURL+"/api/v1/shipments/:shipmentId", wrapper.GetShipment)
	router.GET(baseURL+"/api/v1/shipments/:shipmentId/segments/:segmentIndex/status", wrapper.GetSegmentStatus)
	router.POST(baseURL+"/api/v1/shipments/:shipmentId/simulations", wrapper.SimulateOrderStatus)
}
