package services

import (
	"visibility/internal/core/domain/model/shipment"
)

// SegmentReport is the derived status of one route segment.
type SegmentReport struct {
	Position int
	Leg      int
	Segment  shipment.Segment
	Status   shipment.SegmentStatus
}

// LegReport is the derived status of one leg: COMPLETED when pickup and drop are completed,
// NOT_STARTED when both are not started, IN_PROGRESS otherwise.
type LegReport struct {
	Index  int
	Pickup SegmentReport
	Drop   SegmentReport
	Status shipment.SegmentStatus
}

// RouteReport is the visibility view of a whole shipment route.
type RouteReport struct {
	ShipmentID string
	Segments   []SegmentReport
	Legs       []LegReport

	// Overall combines every segment status the way a leg combines its two segments.
	Overall shipment.SegmentStatus

	// ActiveLeg is the index of the first leg that is not completed, or -1.
	ActiveLeg int
}

// ComputeRouteReport derives the status of every segment, every leg and the whole route.
//
// Each segment is queried with its own type and route position. Multi-leg routes also scope
// each query to the segment location; a single leg aggregates every order of the type.
// A trailing unpaired segment is reported but forms no leg.
//
// A nil or invalid shipment yields an empty NotStarted report.
func (e RouteStatusEngine) ComputeRouteReport(s *shipment.Shipment) RouteReport {
	report := RouteReport{
		Segments:  []SegmentReport{},
		Legs:      []LegReport{},
		Overall:   shipment.NotStarted,
		ActiveLeg: -1,
	}
	if s.Validate() != nil {
		return report
	}
	report.ShipmentID = s.ID()

	route := s.Route()
	statuses := make([]shipment.SegmentStatus, 0, route.Len())
	for position := range route.Len() {
		segment, _ := e.ComputeSegmentReport(s, position)
		statuses = append(statuses, segment.Status)
		report.Segments = append(report.Segments, segment)
	}

	for _, leg := range route.Legs() {
		pickup := report.Segments[2*leg.Index]
		drop := report.Segments[2*leg.Index+1]
		legStatus := shipment.Combine(pickup.Status, drop.Status)

		report.Legs = append(report.Legs, LegReport{
			Index:  leg.Index,
			Pickup: pickup,
			Drop:   drop,
			Status: legStatus,
		})
		if report.ActiveLeg < 0 && legStatus != shipment.Completed {
			report.ActiveLeg = leg.Index
		}
	}

	report.Overall = shipment.Combine(statuses...)
	return report
}

// ComputeSegmentReport derives the status of the segment at a route position the way
// ComputeRouteReport does. Returns false when the position is outside the route or the
// shipment is invalid.
func (e RouteStatusEngine) ComputeSegmentReport(s *shipment.Shipment, position int) (SegmentReport, bool) {
	if s.Validate() != nil {
		return SegmentReport{}, false
	}

	route := s.Route()
	seg, ok := route.At(position)
	if !ok {
		return SegmentReport{}, false
	}

	opts := []SegmentQueryOption{AtSegmentIndex(position)}
	if route.IsMultiLeg() {
		opts = append(opts, AtLocation(seg.Location()))
	}

	return SegmentReport{
		Position: position,
		Leg:      shipment.LegOf(position),
		Segment:  seg,
		Status:   e.ComputeSegmentStatus(s, mustSegmentQuery(seg.Type(), opts...)),
	}, true
}
