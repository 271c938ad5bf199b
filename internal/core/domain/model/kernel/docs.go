// Package kernel provides the domain primitives shared by every aggregate of
// the packing service.
//
// The package includes:
//   - UUID: a validated identifier value object
//   - Weight: a non-negative carton weight in kilograms backed by a decimal
//   - NormalizeBarcode: the canonical form of a scanned or stored barcode
//
// All primitives are immutable and safe for concurrent use.
package kernel
