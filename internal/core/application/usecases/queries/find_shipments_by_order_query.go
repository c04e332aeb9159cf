package queries

import (
	"errors"
	"strings"

	"visibility/internal/pkg/errs"
	"visibility/internal/pkg/guard"
)

var (
	ErrFindShipmentsByOrderQueryIsNotConstructed = errors.New(
		"FindShipmentsByOrderQuery must be created via NewFindShipmentsByOrderQuery constructor",
	)
	ErrOrderIDIsRequired = errs.NewValueIsRequiredError("order ID")
)

// FindShipmentsByOrderQuery looks up the shipments carrying an order. An underlying ID of a
// combined order finds the shipment carrying the combined order.
//
// Example:
//
//	query, _ := NewFindShipmentsByOrderQuery("SO-1002")
//	shipments, err := handler.Handle(ctx, query)
type FindShipmentsByOrderQuery struct {
	orderID string

	guard guard.ConstructorGuard
}

// NewFindShipmentsByOrderQuery creates a lookup query. The order ID is trimmed.
// Returns ErrOrderIDIsRequired for a blank ID.
func NewFindShipmentsByOrderQuery(orderID string) (FindShipmentsByOrderQuery, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return FindShipmentsByOrderQuery{}, ErrOrderIDIsRequired
	}
	return FindShipmentsByOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q FindShipmentsByOrderQuery) Validate() error {
	return q.guard.Validate(ErrFindShipmentsByOrderQueryIsNotConstructed)
}

// OrderID returns the order to look up.
func (q FindShipmentsByOrderQuery) OrderID() string {
	return q.orderID
}
