// Package shipment models outbound shipment records built by consolidating
// sealed cartons from completed packaging sessions.
//
// A single shipment covers one session; a multi shipment (MSO) covers two or
// more. The set of linked sessions is fixed when the shipment is created.
// Afterwards only the dispatch configuration changes:
//
//	Draft ──Configure──> PendingDispatch ──Configure──> PendingDispatch
//
// Dispatching itself belongs to the shipment subsystem.
package shipment
