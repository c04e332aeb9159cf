// Package kernel provides the shared value objects of the shipment visibility domain.
//
// The package includes:
//   - UUID: surrogate identifier for order records loaded from a snapshot source
//   - LocationCode: the stop code that correlates route segments with orders
//
// Both types are immutable and safe for concurrent use. Their zero values are invalid
// and are rejected by Validate.
package kernel
