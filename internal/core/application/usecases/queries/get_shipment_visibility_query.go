package queries

import (
	"errors"
	"strings"

	"visibility/internal/pkg/errs"
	"visibility/internal/pkg/guard"
)

var (
	ErrGetShipmentVisibilityQueryIsNotConstructed = errors.New(
		"GetShipmentVisibilityQuery must be created via NewGetShipmentVisibilityQuery constructor",
	)
	ErrShipmentIDIsRequired = errs.NewValueIsRequiredError("shipment ID")
)

// GetShipmentVisibilityQuery retrieves the route report of one shipment: the status of every
// segment and leg, the overall status and the active leg.
//
// Example:
//
//	query, err := NewGetShipmentVisibilityQuery("SHP-1")
//	if err != nil {
//	    return fmt.Errorf("invalid query: %w", err)
//	}
//
//	visibility, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown shipment
//	}
type GetShipmentVisibilityQuery struct {
	shipmentID string

	guard guard.ConstructorGuard
}

// NewGetShipmentVisibilityQuery creates a query for one shipment.
// Returns ErrShipmentIDIsRequired for a blank ID.
func NewGetShipmentVisibilityQuery(shipmentID string) (GetShipmentVisibilityQuery, error) {
	if strings.TrimSpace(shipmentID) == "" {
		return GetShipmentVisibilityQuery{}, ErrShipmentIDIsRequired
	}
	return GetShipmentVisibilityQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentVisibilityQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentVisibilityQueryIsNotConstructed)
}

// ShipmentID returns the requested shipment.
func (q GetShipmentVisibilityQuery) ShipmentID() string {
	return q.shipmentID
}
