// Package services provides domain services that derive information spanning the whole
// Shipment aggregate rather than belonging to one of its entities.
//
// The package includes:
//   - RouteStatusEngine: derives segment, leg and route statuses from order statuses,
//     enforcing pickup before drop within a leg and leg-by-leg progress along the route
//   - SegmentQuery: selects the segment whose status is derived
//   - RouteReport: the per-segment, per-leg and overall statuses of a shipment route
//
// Status derivation is pure: it performs no I/O, keeps no state and never mutates a shipment.
package services
