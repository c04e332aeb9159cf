package order

import (
	"errors"
	"strings"

	"visibility/internal/core/domain/model/kernel"
	"visibility/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIDIsRequired is returned when the source record has an empty order ID.
	ErrOrderIDIsRequired = errs.NewValueIsRequiredError("order ID")
)

// combinedOrderSeparator separates the underlying IDs of a combined order.
const combinedOrderSeparator = ","

// Order is one pickup or drop record of a unit of cargo carried by a shipment.
//
// Order follows these invariants:
//   - Has a valid record ID, a non-empty order ID, a valid type and a location code
//   - Is read-only once constructed; WithStatus returns a modified copy
//
// Orders are correlated with route segments by (type, location) equality only.
type Order struct {
	// recordID identifies this record inside the snapshot
	recordID kernel.UUID

	// orderID is the business order ID, possibly a comma-separated combined order
	orderID string

	// orderType tells whether this record is the pickup or the drop
	orderType Type

	// location is the stop code of the pickup or drop
	location kernel.LocationCode

	// status is the raw status as authored
	status Status

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates an Order record.
//
// Parameters:
//   - recordID: surrogate identifier of the record
//   - orderID: business order ID; "A,B,C" denotes a combined order
//   - orderType: Pickup or Drop
//   - location: stop code of the record
//   - status: raw status string wrapper
//
// Returns:
//   - *Order: the created order if all validations pass
//   - error: all validation failures joined together
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), "SO-1001", order.Pickup,
//	    kernel.MustLocationCode("WH-A"), order.NewStatus("Picked up"))
func NewOrder(
	recordID kernel.UUID,
	orderID string,
	orderType Type,
	location kernel.LocationCode,
	status Status,
) (*Order, error) {
	o := &Order{
		status:        status,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setRecordID(recordID),
		o.setOrderID(orderID),
		o.setType(orderType),
		o.setLocation(location),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was built by NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// RecordID returns the surrogate identifier of the record.
func (o *Order) RecordID() kernel.UUID {
	return o.recordID
}

// OrderID returns the business order ID as authored.
func (o *Order) OrderID() string {
	return o.orderID
}

// Type returns whether the record is a pickup or a drop.
func (o *Order) Type() Type {
	return o.orderType
}

// Location returns the stop code of the record.
func (o *Order) Location() kernel.LocationCode {
	return o.location
}

// Status returns the raw status of the record.
func (o *Order) Status() Status {
	return o.status
}

// LogicalID returns the part of the order ID before the first comma.
// Records sharing a logical ID are one logical order when statuses are aggregated.
//
// Example:
//
//	"SO-1,SO-2" -> "SO-1"
//	"SO-1"      -> "SO-1"
func (o *Order) LogicalID() string {
	logical, _, _ := strings.Cut(o.orderID, combinedOrderSeparator)
	return logical
}

// IsCombined reports whether the order ID lists several underlying orders.
func (o *Order) IsCombined() bool {
	return strings.Contains(o.orderID, combinedOrderSeparator)
}

// UnderlyingOrderIDs returns every ID listed in the order ID, trimmed, empties skipped.
func (o *Order) UnderlyingOrderIDs() []string {
	parts := strings.Split(o.orderID, combinedOrderSeparator)
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}

// Carries reports whether orderID is this record's order ID or one of its underlying IDs.
func (o *Order) Carries(orderID string) bool {
	if o.orderID == orderID {
		return true
	}
	for _, id := range o.UnderlyingOrderIDs() {
		if id == orderID {
			return true
		}
	}
	return false
}

// Matches reports whether the record has the given type and, unless location is the zero
// value, the given location.
func (o *Order) Matches(t Type, location kernel.LocationCode) bool {
	if o.orderType != t {
		return false
	}
	return location.IsZero() || o.location.IsEqual(location)
}

// WithStatus returns a copy of the order carrying a different status.
// The receiver is left untouched.
func (o *Order) WithStatus(status Status) *Order {
	c := *o
	c.status = status
	return &c
}

func (o *Order) setRecordID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.recordID = id
	return nil
}

func (o *Order) setOrderID(orderID string) error {
	if strings.TrimSpace(orderID) == "" {
		return ErrOrderIDIsRequired
	}
	o.orderID = orderID
	return nil
}

func (o *Order) setType(t Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	o.orderType = t
	return nil
}

func (o *Order) setLocation(location kernel.LocationCode) error {
	if err := location.Validate(); err != nil {
		return err
	}
	o.location = location
	return nil
}
