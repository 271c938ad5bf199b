// Package packaging holds the packaging Session aggregate: one packing run for
// one order, the cartons it fills and the ledger of what went into them.
//
// The session is the consistency boundary for two rules:
//
//   - For every order line, the quantities recorded across all cartons of the
//     session never exceed the line's picked quantity. Other sessions for the
//     same order are not counted.
//   - At most one carton of the session is open at a time.
//
// Carton lifecycle:
//
//	pending ──OpenNext──> open ──Seal──> sealed
//	                        ^              │
//	                        └────Reopen────┘
//
// Reopening a carton seals (status only) whichever other carton is open.
// Once a session has been consolidated into a shipment it no longer accepts
// changes.
package packaging
