// Package queries contains the read operations of the shipment visibility service.
// Implements the Query pattern: every query is a guarded value object handled by a
// dedicated handler that returns a read model. No query ever modifies a shipment.
package queries

import (
	"visibility/internal/core/domain/model/shipment"
	"visibility/internal/core/domain/services"
)

// SegmentStatusResponse is the read model of one route segment and its derived status.
type SegmentStatusResponse struct {
	Position int
	Leg      int
	ID       int
	Type     shipment.SegmentType
	Location string
	Distance string
	Duration string
	Status   shipment.SegmentStatus
}

// LegStatusResponse is the read model of one leg.
type LegStatusResponse struct {
	Index  int
	Status shipment.SegmentStatus
	Pickup SegmentStatusResponse
	Drop   SegmentStatusResponse
}

// ShipmentVisibilityResponse is the read model of a whole route.
//
// Example:
//
//	response := ShipmentVisibilityResponse{
//	    ShipmentID: "SHP-1",
//	    Overall:    shipment.InProgress,
//	    ActiveLeg:  1,
//	}
type ShipmentVisibilityResponse struct {
	ShipmentID string
	Overall    shipment.SegmentStatus
	ActiveLeg  int
	Segments   []SegmentStatusResponse
	Legs       []LegStatusResponse
}

// ShipmentSummaryResponse is the list entry of a shipment.
type ShipmentSummaryResponse struct {
	ID           string
	SegmentCount int
	LegCount     int
	OrderCount   int
	Overall      shipment.SegmentStatus
	ActiveLeg    int
}

func newSegmentStatusResponse(r services.SegmentReport) SegmentStatusResponse {
	return SegmentStatusResponse{
		Position: r.Position,
		Leg:      r.Leg,
		ID:       r.Segment.ID(),
		Type:     r.Segment.Type(),
		Location: r.Segment.Location().String(),
		Distance: r.Segment.Distance(),
		Duration: r.Segment.Duration(),
		Status:   r.Status,
	}
}

func newShipmentVisibilityResponse(report services.RouteReport) ShipmentVisibilityResponse {
	response := ShipmentVisibilityResponse{
		ShipmentID: report.ShipmentID,
		Overall:    report.Overall,
		ActiveLeg:  report.ActiveLeg,
		Segments:   make([]SegmentStatusResponse, 0, len(report.Segments)),
		Legs:       make([]LegStatusResponse, 0, len(report.Legs)),
	}
	for _, s := range report.Segments {
		response.Segments = append(response.Segments, newSegmentStatusResponse(s))
	}
	for _, l := range report.Legs {
		response.Legs = append(response.Legs, LegStatusResponse{
			Index:  l.Index,
			Status: l.Status,
			Pickup: newSegmentStatusResponse(l.Pickup),
			Drop:   newSegmentStatusResponse(l.Drop),
		})
	}
	return response
}

func newShipmentSummaries(engine services.RouteStatusEngine, shipments []*shipment.Shipment) []ShipmentSummaryResponse {
	summaries := make([]ShipmentSummaryResponse, 0, len(shipments))
	for _, s := range shipments {
		report := engine.ComputeRouteReport(s)
		summaries = append(summaries, ShipmentSummaryResponse{
			ID:           s.ID(),
			SegmentCount: s.Route().Len(),
			LegCount:     s.Route().LegCount(),
			OrderCount:   len(s.Orders()),
			Overall:      report.Overall,
			ActiveLeg:    report.ActiveLeg,
		})
	}
	return summaries
}
