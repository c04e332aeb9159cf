package shipment

import (
	"fmt"

	"visibility/internal/pkg/errs"
)

// SegmentStatus is the derived status of a segment, a leg or a whole route.
//
// The zero value SegmentStatusUnknown is invalid and never produced by status derivation;
// it only exists to catch uninitialized values.
type SegmentStatus int

const (
	// SegmentStatusUnknown is an uninitialized SegmentStatus.
	SegmentStatusUnknown SegmentStatus = iota

	// NotStarted means no work is visible yet, or prerequisites are outstanding.
	NotStarted

	// InProgress means some work has started.
	InProgress

	// Completed means every relevant order is done.
	Completed
)

// getSegmentStatusStrings returns the labels used by the freight front end.
func getSegmentStatusStrings() map[SegmentStatus]string {
	//nolint:exhaustive // SegmentStatusUnknown has no label
	return map[SegmentStatus]string{
		NotStarted: "NOT STARTED",
		InProgress: "In-Progress",
		Completed:  "COMPLETED",
	}
}

// getSegmentStatusCodes returns the machine-readable codes used by the API.
func getSegmentStatusCodes() map[SegmentStatus]string {
	//nolint:exhaustive // SegmentStatusUnknown has no code
	return map[SegmentStatus]string{
		NotStarted: "NOT_STARTED",
		InProgress: "IN_PROGRESS",
		Completed:  "COMPLETED",
	}
}

// Validate returns an error for SegmentStatusUnknown and values outside the enumeration.
func (s SegmentStatus) Validate() error {
	if _, ok := getSegmentStatusCodes()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("segment status is invalid", fmt.Errorf("%d is not a valid segment status", s))
	}
	return nil
}

// String returns "NOT STARTED", "In-Progress" or "COMPLETED", or "Unknown" for invalid values.
func (s SegmentStatus) String() string {
	if str, ok := getSegmentStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Code returns "NOT_STARTED", "IN_PROGRESS" or "COMPLETED", or "UNKNOWN" for invalid values.
func (s SegmentStatus) Code() string {
	if code, ok := getSegmentStatusCodes()[s]; ok {
		return code
	}
	return "UNKNOWN"
}

// Combine derives the status of a group of statuses (a leg, a route):
//   - empty group: NotStarted
//   - every status Completed: Completed
//   - every status NotStarted: NotStarted
//   - anything else: InProgress
func Combine(statuses ...SegmentStatus) SegmentStatus {
	if len(statuses) == 0 {
		return NotStarted
	}

	completed, notStarted := 0, 0
	for _, s := range statuses {
		switch s {
		case Completed:
			completed++
		case NotStarted:
			notStarted++
		case SegmentStatusUnknown, InProgress:
		}
	}

	switch {
	case completed == len(statuses):
		return Completed
	case notStarted == len(statuses):
		return NotStarted
	default:
		return InProgress
	}
}
