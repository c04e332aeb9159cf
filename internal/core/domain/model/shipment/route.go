package shipment

import (
	"errors"
	"fmt"
	"slices"

	"visibility/internal/core/domain/model/kernel"
)

// Route is the ordered sequence of segments of a shipment.
// The zero value is an empty route.
type Route struct {
	segments []Segment
}

// Leg is a routing leg: the segments at positions 2k and 2k+1 of a route.
// In well-formed data Pickup is a pickup segment and Drop is its drop segment.
type Leg struct {
	Index  int
	Pickup Segment
	Drop   Segment
}

// NewRoute creates a Route from segments in route order.
// Each segment must be constructed; the pickup/drop alternation is not validated.
func NewRoute(segments []Segment) (Route, error) {
	errList := make([]error, 0)
	for i, s := range segments {
		if err := s.Validate(); err != nil {
			errList = append(errList, fmt.Errorf("segment at position %d: %w", i, err))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return Route{}, err
	}

	return Route{segments: slices.Clone(segments)}, nil
}

// Segments returns a copy of the segments in route order.
func (r Route) Segments() []Segment {
	return slices.Clone(r.segments)
}

// Len returns the number of segments.
func (r Route) Len() int {
	return len(r.segments)
}

// At returns the segment at a route position.
func (r Route) At(position int) (Segment, bool) {
	if position < 0 || position >= len(r.segments) {
		return Segment{}, false
	}
	return r.segments[position], true
}

// ByID returns the first segment with the given id and its position.
func (r Route) ByID(id int) (Segment, int, bool) {
	for i, s := range r.segments {
		if s.ID() == id {
			return s, i, true
		}
	}
	return Segment{}, -1, false
}

// FirstDrop returns the first drop segment at location and its position.
func (r Route) FirstDrop(location kernel.LocationCode) (Segment, int, bool) {
	for i, s := range r.segments {
		if s.Type() == SegmentDrop && s.Location().IsEqual(location) {
			return s, i, true
		}
	}
	return Segment{}, -1, false
}

// LegCount returns the number of complete legs. A trailing unpaired segment is not a leg.
func (r Route) LegCount() int {
	return len(r.segments) / 2
}

// IsMultiLeg reports whether the route has more than one leg.
func (r Route) IsMultiLeg() bool {
	return r.LegCount() > 1
}

// Legs groups the segments into legs by position.
func (r Route) Legs() []Leg {
	legs := make([]Leg, 0, r.LegCount())
	for k := range r.LegCount() {
		legs = append(legs, Leg{
			Index:  k,
			Pickup: r.segments[2*k],
			Drop:   r.segments[2*k+1],
		})
	}
	return legs
}

// LegOf returns the leg index a route position belongs to.
func LegOf(position int) int {
	return position / 2
}
