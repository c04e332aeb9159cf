package order

import (
	"fmt"

	"visibility/internal/pkg/errs"
)

// Raw status strings found in shipment snapshots.
const (
	RawNotStarted = "NOT STARTED"
	RawNew        = "New"
	RawInTransit  = "In-Transit"
	RawStarted    = "Started"
	RawPickedUp   = "Picked up"
	RawDelivered  = "Delivered"
	RawCompleted  = "COMPLETED"
)

// Progress is the normalized bucket an order status falls into.
//
// Normalization depends on the order type:
//
//	raw string     pickup (P)     drop (D)
//	NOT STARTED    NotStarted     NotStarted
//	New            NotStarted     NotStarted
//	In-Transit     InTransit      InTransit
//	Started        InTransit      InTransit
//	Picked up      Done           Unrecognized
//	Delivered      Unrecognized   Done
//	COMPLETED      Done           Done
//	other          Unrecognized   Unrecognized
type Progress int

const (
	// Unrecognized is the bucket of status strings matching none of the known synonyms.
	// It is the zero value so that an uninitialized Progress never reads as real work.
	Unrecognized Progress = iota

	// NotStarted means the order has not begun.
	NotStarted

	// InTransit means the order is en route.
	InTransit

	// Done means the order's pickup (or drop) is finished.
	Done
)

func getProgressStrings() map[Progress]string {
	return map[Progress]string{
		Unrecognized: "Unrecognized",
		NotStarted:   "NotStarted",
		InTransit:    "InTransit",
		Done:         "Done",
	}
}

// Validate returns an error for values outside the enumeration.
// Unrecognized is a valid bucket.
func (p Progress) Validate() error {
	if _, ok := getProgressStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("progress is invalid", fmt.Errorf("%d is not a valid progress", p))
	}
	return nil
}

func (p Progress) String() string {
	if str, ok := getProgressStrings()[p]; ok {
		return str
	}
	return "Unrecognized"
}

// Status is an order status exactly as authored in the source data.
// Any string is accepted; interpretation happens in Progress.
type Status struct {
	raw string
}

// NewStatus wraps a raw status string.
func NewStatus(raw string) Status {
	return Status{raw: raw}
}

// Raw returns the string as authored.
func (s Status) Raw() string {
	return s.raw
}

func (s Status) String() string {
	return s.raw
}

// Progress normalizes the status for an order of the given type.
// Matching is exact: "picked up" or "Completed" are Unrecognized.
//
// Example:
//
//	order.NewStatus("Picked up").Progress(order.Pickup) // Done
//	order.NewStatus("Picked up").Progress(order.Drop)   // Unrecognized
func (s Status) Progress(t Type) Progress {
	switch s.raw {
	case RawNotStarted, RawNew:
		return NotStarted
	case RawInTransit, RawStarted:
		return InTransit
	case RawCompleted:
		return Done
	case RawPickedUp:
		if t == Pickup {
			return Done
		}
	case RawDelivered:
		if t == Drop {
			return Done
		}
	}
	return Unrecognized
}

// IsDone is shorthand for Progress(t) == Done.
func (s Status) IsDone(t Type) bool {
	return s.Progress(t) == Done
}
