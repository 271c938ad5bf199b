package ports

import (
	"context"

	"packing/internal/core/domain/model/kernel"
)

// LedgerViewKey identifies a cached ledger view.
type LedgerViewKey struct {
	OrderID   kernel.UUID
	SessionID kernel.UUID
}

// LedgerLine is the packing progress of one order line within a session.
type LedgerLine struct {
	LineID         kernel.UUID
	SKU            string
	Name           string
	Barcode        string
	QuantityPicked int
	PackedQuantity int
	Remaining      int
}

// LedgerView summarizes a session's ledger against the order's lines.
type LedgerView struct {
	SessionID    kernel.UUID
	SessionToken string
	OrderID      kernel.UUID
	Lines        []LedgerLine
	TotalPicked  int
	TotalPacked  int
	TotalCartons int
	SealedCount  int
}

// LedgerViewCache is a bounded, short-lived cache of ledger views. It is an
// optimization only: the store stays the source of truth.
//
// Readers take Generation before loading from the store and store the result
// with SetIfGeneration, which refuses views that an intervening Clear made stale.
type LedgerViewCache interface {
	Get(key LedgerViewKey) (LedgerView, bool)
	Generation() uint64
	SetIfGeneration(key LedgerViewKey, view LedgerView, generation uint64) bool
	Clear()
}

// CacheInvalidator drops every cached view that a mutation may have made
// stale. Implementations log their own failures; invalidation never fails
// the mutation that triggered it.
type CacheInvalidator interface {
	Invalidate(ctx context.Context)
}
