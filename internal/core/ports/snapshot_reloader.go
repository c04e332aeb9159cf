package ports

import "context"

// SnapshotReloader refreshes the snapshot a ShipmentRepository serves.
// A failed reload leaves the previous snapshot in place.
type SnapshotReloader interface {
	// Reload reads the snapshot source again and swaps it in as a whole.
	// Returns the number of shipments in the new snapshot.
	Reload(ctx context.Context) (int, error)
}
