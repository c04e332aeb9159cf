package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"visibility/internal/core/domain/model/kernel"
	"visibility/internal/core/domain/model/order"
	"visibility/internal/core/domain/model/shipment"
)

// ShipmentDTO is a shipment as authored in the snapshot document.
type ShipmentDTO struct {
	ID     string     `json:"id"`
	Route  RouteDTO   `json:"route"`
	Orders []OrderDTO `json:"orders"`
}

// RouteDTO wraps the ordered segments.
type RouteDTO struct {
	Segments []SegmentDTO `json:"segments"`
}

// SegmentDTO is one route stop.
type SegmentDTO struct {
	ID       int    `json:"id"`
	Type     string `json:"type"`
	Location string `json:"location"`
	Distance string `json:"distance,omitempty"`
	Duration string `json:"duration,omitempty"`
}

// OrderDTO is one order record. Fields other than these are ignored.
type OrderDTO struct {
	OrderID  string `json:"orderId"`
	Type     string `json:"type"`
	Location string `json:"location"`
	Status   string `json:"status"`
}

type envelopeDTO struct {
	Shipments []ShipmentDTO `json:"shipments"`
}

// Decode parses a snapshot document: either a top-level array of shipments or an object
// with a "shipments" array.
func Decode(data []byte) ([]ShipmentDTO, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("snapshot document is empty")
	}

	if trimmed[0] == '[' {
		var shipments []ShipmentDTO
		if err := json.Unmarshal(trimmed, &shipments); err != nil {
			return nil, fmt.Errorf("decode shipment array: %w", err)
		}
		return shipments, nil
	}

	var envelope envelopeDTO
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("decode shipment document: %w", err)
	}
	return envelope.Shipments, nil
}

// ToDomain converts a decoded shipment into the aggregate. Order records get fresh
// record IDs, since the document carries none.
func (dto ShipmentDTO) ToDomain() (*shipment.Shipment, error) {
	segments := make([]shipment.Segment, 0, len(dto.Route.Segments))
	for i, s := range dto.Route.Segments {
		seg, err := s.toDomain()
		if err != nil {
			return nil, fmt.Errorf("shipment %s, segment %d: %w", dto.ID, i, err)
		}
		segments = append(segments, seg)
	}

	route, err := shipment.NewRoute(segments)
	if err != nil {
		return nil, fmt.Errorf("shipment %s: %w", dto.ID, err)
	}

	orders := make([]*order.Order, 0, len(dto.Orders))
	for i, o := range dto.Orders {
		record, err := o.toDomain()
		if err != nil {
			return nil, fmt.Errorf("shipment %s, order %d: %w", dto.ID, i, err)
		}
		orders = append(orders, record)
	}

	return shipment.NewShipment(dto.ID, route, orders)
}

func (dto SegmentDTO) toDomain() (shipment.Segment, error) {
	segmentType, typeErr := shipment.ParseSegmentType(dto.Type)
	location, locErr := kernel.NewLocationCode(dto.Location)
	if err := errors.Join(typeErr, locErr); err != nil {
		return shipment.Segment{}, err
	}
	return shipment.NewSegment(dto.ID, segmentType, location, dto.Distance, dto.Duration)
}

func (dto OrderDTO) toDomain() (*order.Order, error) {
	orderType, typeErr := order.ParseType(dto.Type)
	location, locErr := kernel.NewLocationCode(dto.Location)
	if err := errors.Join(typeErr, locErr); err != nil {
		return nil, err
	}
	return order.NewOrder(kernel.NewUUID(), dto.OrderID, orderType, location, order.NewStatus(dto.Status))
}
