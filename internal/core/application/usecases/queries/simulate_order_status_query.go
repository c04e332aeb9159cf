package queries

import (
	"errors"
	"strings"

	"visibility/internal/core/domain/model/order"
	"visibility/internal/pkg/errs"
	"visibility/internal/pkg/guard"
)

var (
	ErrSimulateOrderStatusQueryIsNotConstructed = errors.New(
		"SimulateOrderStatusQuery must be created via NewSimulateOrderStatusQuery constructor",
	)
	ErrStatusIsRequired = errs.NewValueIsRequiredError("status")
)

// SimulateOrderStatusQuery asks what a shipment's route would look like if an order had
// another status. Nothing is persisted: the change applies to a copy of the snapshot.
//
// Example:
//
//	query, err := NewSimulateOrderStatusQuery("SHP-1", "SO-1001", order.Pickup, "Picked up")
//	if err != nil {
//	    return fmt.Errorf("invalid simulation: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, query)
//	fmt.Printf("%s -> %s\n", result.Before.Overall, result.After.Overall)
type SimulateOrderStatusQuery struct { //nolint:recvcheck //using for validation
	shipmentID string
	orderID    string
	orderType  order.Type
	status     order.Status

	guard guard.ConstructorGuard
}

// NewSimulateOrderStatusQuery creates a simulation.
//
// Parameters:
//   - shipmentID: shipment to simulate on
//   - orderID: order whose records change; underlying IDs of combined orders are accepted
//   - orderType: order.Pickup or order.Drop, or "" to change both records
//   - status: the raw status to apply, as the source data would carry it
func NewSimulateOrderStatusQuery(
	shipmentID string,
	orderID string,
	orderType order.Type,
	status string,
) (SimulateOrderStatusQuery, error) {
	q := SimulateOrderStatusQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setShipmentID(shipmentID),
		q.setOrderID(orderID),
		q.setOrderType(orderType),
		q.setStatus(status),
	); err != nil {
		return SimulateOrderStatusQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q SimulateOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrSimulateOrderStatusQueryIsNotConstructed)
}

// ShipmentID returns the shipment to simulate on.
func (q SimulateOrderStatusQuery) ShipmentID() string {
	return q.shipmentID
}

// OrderID returns the order whose records change.
func (q SimulateOrderStatusQuery) OrderID() string {
	return q.orderID
}

// OrderType returns the record type to change; empty means both.
func (q SimulateOrderStatusQuery) OrderType() order.Type {
	return q.orderType
}

// Status returns the status to apply.
func (q SimulateOrderStatusQuery) Status() order.Status {
	return q.status
}

func (q *SimulateOrderStatusQuery) setShipmentID(shipmentID string) error {
	if strings.TrimSpace(shipmentID) == "" {
		return ErrShipmentIDIsRequired
	}
	q.shipmentID = shipmentID
	return nil
}

func (q *SimulateOrderStatusQuery) setOrderID(orderID string) error {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return ErrOrderIDIsRequired
	}
	q.orderID = orderID
	return nil
}

func (q *SimulateOrderStatusQuery) setOrderType(orderType order.Type) error {
	if orderType == "" {
		return nil
	}
	if err := orderType.Validate(); err != nil {
		return err
	}
	q.orderType = orderType
	return nil
}

func (q *SimulateOrderStatusQuery) setStatus(status string) error {
	if strings.TrimSpace(status) == "" {
		return ErrStatusIsRequired
	}
	q.status = order.NewStatus(status)
	return nil
}
