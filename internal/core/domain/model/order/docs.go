// Package order models the upstream customer order as the packing service
// sees it: a read-mostly record owned by the order subsystem, plus the picked
// lines that bound how much may be packed.
//
// The only state this service changes on an order is the packaging-deleted
// flag: deleting a packaging session sets it so the order leaves the intake
// queue, and only an explicit restore clears it.
package order
