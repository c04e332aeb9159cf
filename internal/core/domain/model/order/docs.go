// Package order provides the cargo order entity of a shipment snapshot and the
// normalization of free-form order status strings.
//
// The package includes:
//   - Order: one pickup or drop record of a unit of cargo, correlated to route segments
//     by type and location code
//   - Type: the P (pickup) / D (drop) discriminator
//   - Status: the raw status string as authored in the source data
//   - Progress: the normalized bucket (NotStarted, InTransit, Done) a status falls into
//
// Key business rules:
//   - An order ID listing several IDs separated by commas is a combined order; its logical
//     ID is the part before the first comma
//   - "Picked up" only completes pickups, "Delivered" only completes drops, "COMPLETED"
//     completes both
//   - Unknown status strings normalize to Unrecognized instead of failing
package order
