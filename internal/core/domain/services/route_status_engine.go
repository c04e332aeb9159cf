package services

import (
	"fmt"
	"slices"
	"strings"

	"visibility/internal/core/domain/model/kernel"
	"visibility/internal/core/domain/model/order"
	"visibility/internal/core/domain/model/shipment"
	"visibility/internal/pkg/errs"
)

// UnrecognizedStatusPolicy decides the status of a segment whose logical orders are neither
// all done, nor in transit, nor not started. That only happens when some order carries a
// status string outside the known vocabulary.
type UnrecognizedStatusPolicy int

const (
	// UnrecognizedAsInProgress assumes work has started.
	UnrecognizedAsInProgress UnrecognizedStatusPolicy = iota

	// UnrecognizedAsNotStarted treats unknown statuses conservatively.
	UnrecognizedAsNotStarted
)

func getUnrecognizedStatusPolicyStrings() map[UnrecognizedStatusPolicy]string {
	return map[UnrecognizedStatusPolicy]string{
		UnrecognizedAsInProgress: "in_progress",
		UnrecognizedAsNotStarted: "not_started",
	}
}

// ParseUnrecognizedStatusPolicy converts "in_progress" or "not_started" into a policy.
func ParseUnrecognizedStatusPolicy(s string) (UnrecognizedStatusPolicy, error) {
	for p, str := range getUnrecognizedStatusPolicyStrings() {
		if strings.EqualFold(s, str) {
			return p, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause(
		"unrecognized status policy",
		fmt.Errorf("%q is not in_progress or not_started", s),
	)
}

func (p UnrecognizedStatusPolicy) String() string {
	if str, ok := getUnrecognizedStatusPolicyStrings()[p]; ok {
		return str
	}
	return "unknown"
}

// SegmentPairing decides how the drop-after-pickup gate finds the pickup paired with a drop.
type SegmentPairing int

const (
	// PairBySegmentID pairs a drop with the pickup whose id is the drop's id minus one.
	PairBySegmentID SegmentPairing = iota

	// PairByPosition pairs a drop with the pickup right before it in route order.
	PairByPosition
)

func getSegmentPairingStrings() map[SegmentPairing]string {
	return map[SegmentPairing]string{
		PairBySegmentID: "id",
		PairByPosition:  "position",
	}
}

// ParseSegmentPairing converts "id" or "position" into a SegmentPairing.
func ParseSegmentPairing(s string) (SegmentPairing, error) {
	for p, str := range getSegmentPairingStrings() {
		if strings.EqualFold(s, str) {
			return p, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause(
		"segment pairing",
		fmt.Errorf("%q is not id or position", s),
	)
}

func (p SegmentPairing) String() string {
	if str, ok := getSegmentPairingStrings()[p]; ok {
		return str
	}
	return "unknown"
}

// RouteStatusEngine derives segment, leg and route statuses of a shipment from the statuses
// of its orders.
//
// Key responsibilities:
//   - Aggregating the statuses of the orders correlated with a segment
//   - Keeping a drop at NOT_STARTED until its paired pickup is done
//   - Keeping a leg at NOT_STARTED until every earlier leg is completed
//
// Business rules:
//   - Orders correlate with segments by type and location equality only
//   - Records of a combined order count once, with the status of the first record
//   - Missing segments or orders never block; they resolve to permissive defaults
//
// The engine is a stateless value: it never mutates the shipment and never returns errors,
// so one instance can be shared between goroutines.
//
// Example usage:
//
//	engine := services.NewRouteStatusEngine()
//	q, _ := services.NewSegmentQuery(shipment.SegmentDrop,
//	    services.AtLocation(kernel.MustLocationCode("B")),
//	    services.AtSegmentIndex(1))
//	status := engine.ComputeSegmentStatus(s, q) // shipment.Completed
type RouteStatusEngine struct {
	unrecognized UnrecognizedStatusPolicy
	pairing      SegmentPairing
}

// EngineOption customizes a RouteStatusEngine.
type EngineOption func(*RouteStatusEngine)

// WithUnrecognizedStatusPolicy sets the fallback used when statuses fall outside the vocabulary.
func WithUnrecognizedStatusPolicy(policy UnrecognizedStatusPolicy) EngineOption {
	return func(e *RouteStatusEngine) {
		e.unrecognized = policy
	}
}

// WithSegmentPairing sets how drops are paired with pickups.
func WithSegmentPairing(pairing SegmentPairing) EngineOption {
	return func(e *RouteStatusEngine) {
		e.pairing = pairing
	}
}

// NewRouteStatusEngine creates an engine with UnrecognizedAsInProgress and PairBySegmentID
// unless options say otherwise.
func NewRouteStatusEngine(opts ...EngineOption) RouteStatusEngine {
	e := RouteStatusEngine{
		unrecognized: UnrecognizedAsInProgress,
		pairing:      PairBySegmentID,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// UnrecognizedStatusPolicy returns the configured fallback policy.
func (e RouteStatusEngine) UnrecognizedStatusPolicy() UnrecognizedStatusPolicy {
	return e.unrecognized
}

// SegmentPairing returns the configured pairing strategy.
func (e RouteStatusEngine) SegmentPairing() SegmentPairing {
	return e.pairing
}

// ComputeSegmentStatus derives the status of the segment selected by query.
//
// Algorithm:
//   - Candidates are the orders of the segment's order type, at the query location if set
//   - No candidates: NotStarted
//   - Drop whose paired pickup is not done: NotStarted
//   - Segment past the first leg whose earlier legs are not all completed: NotStarted
//   - Otherwise the candidates, deduplicated by logical order ID, are aggregated:
//     all done is Completed, any in transit is InProgress, any not started is NotStarted,
//     and anything else follows the UnrecognizedStatusPolicy
//
// A nil or invalid shipment and an invalid query yield NotStarted.
func (e RouteStatusEngine) ComputeSegmentStatus(s *shipment.Shipment, query SegmentQuery) shipment.SegmentStatus {
	if s.Validate() != nil || query.Validate() != nil {
		return shipment.NotStarted
	}
	return e.segmentStatus(s, query, true)
}

// PickupCompleted reports whether the pickup paired with the first drop at dropLocation is
// done. Every pickup order at the pickup's location must be done; records are not
// deduplicated here.
//
// Returns true when there is no such drop, no paired pickup, or no pickup order to wait on.
func (e RouteStatusEngine) PickupCompleted(s *shipment.Shipment, dropLocation kernel.LocationCode) bool {
	if s.Validate() != nil {
		return true
	}

	route := s.Route()
	drop, position, ok := route.FirstDrop(dropLocation)
	if !ok {
		return true
	}

	pickup, ok := e.pairedPickup(route, drop, position)
	if !ok {
		return true
	}

	pickups := s.OrdersMatching(order.Pickup, pickup.Location())
	if len(pickups) == 0 {
		return true
	}

	for _, o := range pickups {
		if !o.Status().IsDone(order.Pickup) {
			return false
		}
	}
	return true
}

// PreviousLegsCompleted reports whether every leg before the one holding segmentIndex has
// a completed pickup and a completed drop. Leg k is made of route positions 2k and 2k+1.
// Legs past the end of the route are skipped.
//
// The check recurses over strictly smaller leg indices: legs before k are verified first,
// so by the time leg k is evaluated its own leg gate is known to hold.
func (e RouteStatusEngine) PreviousLegsCompleted(s *shipment.Shipment, segmentIndex int) bool {
	if s.Validate() != nil {
		return true
	}

	previousLegs := segmentIndex / 2
	if previousLegs <= 0 {
		return true
	}

	lastLeg := previousLegs - 1
	if !e.PreviousLegsCompleted(s, 2*lastLeg) {
		return false
	}
	return e.legCompleted(s, lastLeg)
}

// legCompleted evaluates leg k assuming every earlier leg is completed.
func (e RouteStatusEngine) legCompleted(s *shipment.Shipment, k int) bool {
	route := s.Route()
	pickup, hasPickup := route.At(2 * k)
	drop, hasDrop := route.At(2*k + 1)
	if !hasPickup || !hasDrop {
		return true
	}

	pickupQuery := mustSegmentQuery(shipment.SegmentPickup, AtLocation(pickup.Location()), AtSegmentIndex(2*k))
	if e.segmentStatus(s, pickupQuery, false) != shipment.Completed {
		return false
	}

	dropQuery := mustSegmentQuery(shipment.SegmentDrop, AtLocation(drop.Location()), AtSegmentIndex(2*k+1))
	return e.segmentStatus(s, dropQuery, false) == shipment.Completed
}

func (e RouteStatusEngine) segmentStatus(
	s *shipment.Shipment,
	query SegmentQuery,
	checkPreviousLegs bool,
) shipment.SegmentStatus {
	orderType := query.SegmentType().OrderType()

	candidates := s.OrdersMatching(orderType, query.Location())
	if len(candidates) == 0 {
		return shipment.NotStarted
	}

	if query.SegmentType() == shipment.SegmentDrop && !e.PickupCompleted(s, e.dropLocation(s, query)) {
		return shipment.NotStarted
	}

	if index, ok := query.SegmentIndex(); checkPreviousLegs && ok && index > 0 {
		if !e.PreviousLegsCompleted(s, index) {
			return shipment.NotStarted
		}
	}

	return e.aggregate(candidates, orderType)
}

// dropLocation returns the location whose pickup gates a drop query. Without a location
// restriction it falls back to the drop segment at the query index, if any.
func (e RouteStatusEngine) dropLocation(s *shipment.Shipment, query SegmentQuery) kernel.LocationCode {
	if !query.Location().IsZero() {
		return query.Location()
	}
	if index, ok := query.SegmentIndex(); ok {
		if seg, found := s.Route().At(index); found && seg.Type() == shipment.SegmentDrop {
			return seg.Location()
		}
	}
	return kernel.LocationCode{}
}

func (e RouteStatusEngine) pairedPickup(route shipment.Route, drop shipment.Segment, position int) (shipment.Segment, bool) {
	var (
		candidate shipment.Segment
		ok        bool
	)

	switch e.pairing {
	case PairByPosition:
		candidate, ok = route.At(position - 1)
	case PairBySegmentID:
		candidate, _, ok = route.ByID(drop.ID() - 1)
	}

	if !ok || candidate.Type() != shipment.SegmentPickup {
		return shipment.Segment{}, false
	}
	return candidate, true
}

func (e RouteStatusEngine) aggregate(candidates []*order.Order, orderType order.Type) shipment.SegmentStatus {
	seen := make([]string, 0, len(candidates))
	var done, inTransit, notStarted int

	for _, o := range candidates {
		logicalID := o.LogicalID()
		if slices.Contains(seen, logicalID) {
			continue
		}
		seen = append(seen, logicalID)

		switch o.Status().Progress(orderType) {
		case order.Done:
			done++
		case order.InTransit:
			inTransit++
		case order.NotStarted:
			notStarted++
		case order.Unrecognized:
		}
	}

	switch {
	case done == len(seen):
		return shipment.Completed
	case inTransit > 0:
		return shipment.InProgress
	case notStarted > 0:
		return shipment.NotStarted
	default:
		return e.unrecognizedFallback()
	}
}

func (e RouteStatusEngine) unrecognizedFallback() shipment.SegmentStatus {
	if e.unrecognized == UnrecognizedAsNotStarted {
		return shipment.NotStarted
	}
	return shipment.InProgress
}
