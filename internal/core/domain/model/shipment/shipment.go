package shipment

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"visibility/internal/core/domain/model/kernel"
	"visibility/internal/core/domain/model/order"
	"visibility/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment was not created through NewShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

	// ErrShipmentIDIsRequired is returned for an empty shipment ID.
	ErrShipmentIDIsRequired = errs.NewValueIsRequiredError("shipment ID")
)

// Shipment is the aggregate root of the visibility domain: one transport unit, its route
// and the orders it carries.
//
// Shipment follows these invariants:
//   - Has a non-empty ID
//   - Every segment and order is constructed
//   - Is a read-only snapshot; WithOrderStatus returns a modified copy
//
// Orders are unordered; the route order is meaningful.
type Shipment struct {
	// id is the shipment identifier
	id string

	// route is the ordered sequence of segments
	route Route

	// orders are the pickup and drop records of the carried cargo
	orders []*order.Order

	// isConstructed ensures the shipment was created via NewShipment
	isConstructed bool
}

// NewShipment creates a Shipment snapshot.
//
// Parameters:
//   - id: shipment identifier (must not be blank)
//   - route: ordered segments
//   - orders: pickup and drop records; may be empty for a shipment not yet planned
//
// Returns:
//   - *Shipment: the created shipment if all validations pass
//   - error: all validation failures joined together
//
// Example:
//
//	pickup, _ := shipment.NewSegment(1, shipment.SegmentPickup, kernel.MustLocationCode("A"), "", "")
//	drop, _ := shipment.NewSegment(2, shipment.SegmentDrop, kernel.MustLocationCode("B"), "", "")
//	route, _ := shipment.NewRoute([]shipment.Segment{pickup, drop})
//	s, err := shipment.NewShipment("SHP-1", route, orders)
func NewShipment(id string, route Route, orders []*order.Order) (*Shipment, error) {
	s := &Shipment{
		route:         route,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setOrders(orders),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Shipment was built by NewShipment.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// ID returns the shipment identifier.
func (s *Shipment) ID() string {
	return s.id
}

// Route returns the route.
func (s *Shipment) Route() Route {
	return s.route
}

// Orders returns a copy of the order slice.
func (s *Shipment) Orders() []*order.Order {
	return slices.Clone(s.orders)
}

// OrdersMatching returns the orders of type t at location, in snapshot order.
// A zero location matches every location.
func (s *Shipment) OrdersMatching(t order.Type, location kernel.LocationCode) []*order.Order {
	matched := make([]*order.Order, 0)
	for _, o := range s.orders {
		if o.Matches(t, location) {
			matched = append(matched, o)
		}
	}
	return matched
}

// CarriesOrder reports whether any record carries orderID, directly or as an underlying
// ID of a combined order.
func (s *Shipment) CarriesOrder(orderID string) bool {
	return slices.ContainsFunc(s.orders, func(o *order.Order) bool {
		return o.Carries(orderID)
	})
}

// WithOrderStatus returns a copy of the shipment in which every record carrying orderID
// has the given status. When orderType is non-empty only records of that type change.
//
// Returns:
//   - ValueIsRequiredError if orderID is blank
//   - ObjectNotFoundError if no record matches
//
// The receiver is left untouched. It is the basis of what-if simulations and is never
// persisted.
func (s *Shipment) WithOrderStatus(orderID string, orderType order.Type, status order.Status) (*Shipment, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(orderID) == "" {
		return nil, errs.NewValueIsRequiredError("order ID")
	}
	if orderType != "" {
		if err := orderType.Validate(); err != nil {
			return nil, err
		}
	}

	changed := 0
	orders := make([]*order.Order, len(s.orders))
	for i, o := range s.orders {
		if o.Carries(orderID) && (orderType == "" || o.Type() == orderType) {
			orders[i] = o.WithStatus(status)
			changed++
			continue
		}
		orders[i] = o
	}

	if changed == 0 {
		return nil, errs.NewObjectNotFoundErrorWithCause(
			"order", orderID,
			fmt.Errorf("shipment %s carries no matching order record", s.id),
		)
	}

	return &Shipment{
		id:            s.id,
		route:         s.route,
		orders:        orders,
		isConstructed: true,
	}, nil
}

func (s *Shipment) setID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrShipmentIDIsRequired
	}
	s.id = id
	return nil
}

func (s *Shipment) setOrders(orders []*order.Order) error {
	errList := make([]error, 0)
	for i, o := range orders {
		if err := o.Validate(); err != nil {
			errList = append(errList, fmt.Errorf("order at position %d: %w", i, err))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	s.orders = slices.Clone(orders)
	return nil
}
