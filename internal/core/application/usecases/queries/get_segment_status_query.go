package queries

import (
	"errors"
	"math"
	"strings"

	"visibility/internal/pkg/errs"
	"visibility/internal/pkg/guard"
)

var (
	ErrGetSegmentStatusQueryIsNotConstructed = errors.New(
		"GetSegmentStatusQuery must be created via NewGetSegmentStatusQuery constructor",
	)
)

// GetSegmentStatusQuery retrieves the derived status of the segment at one route position.
type GetSegmentStatusQuery struct { //nolint:recvcheck //using for validation
	shipmentID   string
	segmentIndex int

	guard guard.ConstructorGuard
}

// NewGetSegmentStatusQuery creates a query for the segment at segmentIndex, counted from 0
// in route order.
// Returns ErrShipmentIDIsRequired for a blank ID and a ValueIsOutOfRangeError for a
// negative index.
func NewGetSegmentStatusQuery(shipmentID string, segmentIndex int) (GetSegmentStatusQuery, error) {
	q := GetSegmentStatusQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setShipmentID(shipmentID),
		q.setSegmentIndex(segmentIndex),
	); err != nil {
		return GetSegmentStatusQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSegmentStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetSegmentStatusQueryIsNotConstructed)
}

// ShipmentID returns the requested shipment.
func (q GetSegmentStatusQuery) ShipmentID() string {
	return q.shipmentID
}

// SegmentIndex returns the requested route position.
func (q GetSegmentStatusQuery) SegmentIndex() int {
	return q.segmentIndex
}

func (q *GetSegmentStatusQuery) setShipmentID(shipmentID string) error {
	if strings.TrimSpace(shipmentID) == "" {
		return ErrShipmentIDIsRequired
	}
	q.shipmentID = shipmentID
	return nil
}

func (q *GetSegmentStatusQuery) setSegmentIndex(segmentIndex int) error {
	if segmentIndex < 0 {
		return errs.NewValueIsOutOfRangeError("segment index", segmentIndex, 0, math.MaxInt)
	}
	q.segmentIndex = segmentIndex
	return nil
}
