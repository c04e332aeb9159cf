// Package ports defines the contracts between the shipment visibility domain and the
// infrastructure that supplies shipment snapshots.
package ports

import (
	"context"

	"visibility/internal/core/domain/model/shipment"
)

// ShipmentRepository provides read access to the current shipment snapshot.
// Implementations never modify shipments; the service has no write path.
type ShipmentRepository interface {
	// Get retrieves a shipment by its identifier.
	// Returns an errs.ObjectNotFoundError when the shipment is not in the snapshot.
	Get(ctx context.Context, id string) (*shipment.Shipment, error)

	// List returns every shipment ordered by identifier.
	List(ctx context.Context) ([]*shipment.Shipment, error)

	// FindByOrderID returns the shipments carrying orderID, either as a whole order ID or as
	// one of the underlying IDs of a combined order, ordered by shipment identifier.
	FindByOrderID(ctx context.Context, orderID string) ([]*shipment.Shipment, error)
}
