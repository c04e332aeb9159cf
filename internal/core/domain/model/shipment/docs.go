// Package shipment provides the Shipment aggregate: a transport unit moving through an
// ordered route of pickup and drop segments, together with the orders it carries.
//
// The package includes:
//   - Shipment: the aggregate root (ID, Route, orders)
//   - Route: the ordered segments and their grouping into legs
//   - Segment / SegmentType: one stop of the route
//   - Leg: a pickup segment followed by its drop segment
//   - SegmentStatus: the derived status vocabulary shown for segments and legs
//
// Route order is meaningful: leg k occupies positions 2k (pickup) and 2k+1 (drop).
// This pairing is an authoring convention of the source data and is not validated.
package shipment
