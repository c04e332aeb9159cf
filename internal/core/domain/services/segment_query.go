package services

import (
	"errors"

	"visibility/internal/core/domain/model/kernel"
	"visibility/internal/core/domain/model/shipment"
	"visibility/internal/pkg/errs"
	"visibility/internal/pkg/guard"
)

// ErrSegmentQueryIsNotConstructed is returned when a SegmentQuery was not created through NewSegmentQuery.
var ErrSegmentQueryIsNotConstructed = errors.New("SegmentQuery must be created via NewSegmentQuery constructor")

// SegmentQuery selects the segment whose status is computed: a segment type, optionally
// scoped to a location and to a position in the route.
type SegmentQuery struct {
	segmentType  shipment.SegmentType
	location     kernel.LocationCode
	segmentIndex int
	hasIndex     bool

	guard guard.ConstructorGuard
}

// SegmentQueryOption customizes a SegmentQuery.
type SegmentQueryOption func(*SegmentQuery)

// AtLocation restricts the candidate orders to one location.
// Multi-leg shipments need it, otherwise orders of every leg are aggregated together.
// The zero LocationCode leaves the query unrestricted.
func AtLocation(location kernel.LocationCode) SegmentQueryOption {
	return func(q *SegmentQuery) {
		q.location = location
	}
}

// AtSegmentIndex sets the route position of the segment, enabling the previous-legs gate.
func AtSegmentIndex(index int) SegmentQueryOption {
	return func(q *SegmentQuery) {
		q.segmentIndex = index
		q.hasIndex = true
	}
}

// NewSegmentQuery creates a SegmentQuery.
//
// Parameters:
//   - segmentType: SegmentPickup or SegmentDrop
//   - opts: AtLocation, AtSegmentIndex
//
// Returns:
//   - SegmentQuery: the query if all validations pass
//   - error: ValueIsInvalidError for an unknown type, ValueIsOutOfRangeError for a negative index
//
// Example:
//
//	q, err := services.NewSegmentQuery(shipment.SegmentDrop,
//	    services.AtLocation(kernel.MustLocationCode("B")),
//	    services.AtSegmentIndex(1))
func NewSegmentQuery(segmentType shipment.SegmentType, opts ...SegmentQueryOption) (SegmentQuery, error) {
	q := SegmentQuery{
		segmentType: segmentType,
		guard:       guard.NewConstructorGuard(),
	}
	for _, opt := range opts {
		opt(&q)
	}

	var errList []error
	if err := segmentType.Validate(); err != nil {
		errList = append(errList, err)
	}
	if q.hasIndex && q.segmentIndex < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("segment index", q.segmentIndex, 0, "route length - 1"))
	}
	if err := errors.Join(errList...); err != nil {
		return SegmentQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was built by NewSegmentQuery.
func (q SegmentQuery) Validate() error {
	return q.guard.Validate(ErrSegmentQueryIsNotConstructed)
}

// SegmentType returns the queried segment type.
func (q SegmentQuery) SegmentType() shipment.SegmentType {
	return q.segmentType
}

// Location returns the location restriction; the zero value means none.
func (q SegmentQuery) Location() kernel.LocationCode {
	return q.location
}

// SegmentIndex returns the route position, if one was set.
func (q SegmentQuery) SegmentIndex() (int, bool) {
	return q.segmentIndex, q.hasIndex
}

// mustSegmentQuery builds queries the engine derives from route segments, whose
// type and position are valid by construction.
func mustSegmentQuery(segmentType shipment.SegmentType, opts ...SegmentQueryOption) SegmentQuery {
	q, err := NewSegmentQuery(segmentType, opts...)
	if err != nil {
		panic(err)
	}
	return q
}
