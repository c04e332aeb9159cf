package shipment

import (
	"errors"
	"fmt"

	"visibility/internal/core/domain/model/kernel"
	"visibility/internal/core/domain/model/order"
	"visibility/internal/pkg/errs"
	"visibility/internal/pkg/guard"
)

// ErrSegmentIsNotConstructed is returned when a Segment was not created through NewSegment.
var ErrSegmentIsNotConstructed = errors.New("Segment must be created via NewSegment constructor")

// SegmentType tells whether a segment is a pickup stop or a drop stop.
type SegmentType string

const (
	// SegmentPickup is a stop where cargo is collected.
	SegmentPickup SegmentType = "pickup"

	// SegmentDrop is a stop where cargo is delivered.
	SegmentDrop SegmentType = "drop"
)

// ParseSegmentType converts "pickup" or "drop" into a SegmentType.
func ParseSegmentType(s string) (SegmentType, error) {
	t := SegmentType(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Validate returns a ValueIsInvalidError for anything but pickup and drop.
func (t SegmentType) Validate() error {
	if t != SegmentPickup && t != SegmentDrop {
		return errs.NewValueIsInvalidErrorWithCause("segment type", fmt.Errorf("%q is not pickup or drop", string(t)))
	}
	return nil
}

// OrderType returns the order type correlated with this segment type.
func (t SegmentType) OrderType() order.Type {
	if t == SegmentDrop {
		return order.Drop
	}
	return order.Pickup
}

func (t SegmentType) String() string {
	return string(t)
}

// Segment is one stop of a shipment route.
// Distance and duration are descriptive only and never influence status derivation.
type Segment struct {
	id          int
	segmentType SegmentType
	location    kernel.LocationCode
	distance    string
	duration    string

	guard guard.ConstructorGuard
}

// NewSegment creates a Segment.
//
// Parameters:
//   - id: numeric identifier, sequential from 1 in well-formed routes (must be positive)
//   - segmentType: SegmentPickup or SegmentDrop
//   - location: stop code correlating the segment with orders
//   - distance, duration: optional descriptive metadata
func NewSegment(id int, segmentType SegmentType, location kernel.LocationCode, distance, duration string) (Segment, error) {
	s := Segment{
		distance: distance,
		duration: duration,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setType(segmentType),
		s.setLocation(location),
	); err != nil {
		return Segment{}, err
	}

	return s, nil
}

// Validate ensures the Segment was built by NewSegment.
func (s Segment) Validate() error {
	return s.guard.Validate(ErrSegmentIsNotConstructed)
}

// ID returns the numeric segment identifier.
func (s Segment) ID() int {
	return s.id
}

// Type returns whether the segment is a pickup or a drop.
func (s Segment) Type() SegmentType {
	return s.segmentType
}

// Location returns the stop code.
func (s Segment) Location() kernel.LocationCode {
	return s.location
}

// Distance returns the descriptive distance, if any.
func (s Segment) Distance() string {
	return s.distance
}

// Duration returns the descriptive duration, if any.
func (s Segment) Duration() string {
	return s.duration
}

func (s *Segment) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("segment id", fmt.Errorf("%d is not greater than 0", id))
	}
	s.id = id
	return nil
}

func (s *Segment) setType(t SegmentType) error {
	if err := t.Validate(); err != nil {
		return err
	}
	s.segmentType = t
	return nil
}

func (s *Segment) setLocation(location kernel.LocationCode) error {
	if err := location.Validate(); err != nil {
		return err
	}
	s.location = location
	return nil
}
