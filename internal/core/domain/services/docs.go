// Package services holds domain logic that spans more than one aggregate:
// validating a barcode scan against an order's lines and a session's ledger,
// consolidating completed sessions into a shipment, and filtering the
// packaging intake queue.
//
// Services are stateless values. They never load or store anything; the
// application layer hands them aggregates read inside one unit of work and
// persists whatever they change.
package services
