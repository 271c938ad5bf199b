package ports

import (
	"context"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/packaging"
)

// SessionRepository persists packaging sessions together with their cartons
// and ledger entries. The *ForUpdate methods lock the session rows until the
// surrounding transaction ends, which serializes carton and ledger changes
// per session.
type SessionRepository interface {
	Add(ctx context.Context, aggregate *packaging.Session) error

	// Update writes the session, its cartons and entries, and removes the
	// cartons and entries no longer present in the aggregate.
	Update(ctx context.Context, aggregate *packaging.Session) error

	Get(ctx context.Context, id kernel.UUID) (*packaging.Session, error)

	GetForUpdate(ctx context.Context, id kernel.UUID) (*packaging.Session, error)

	// GetByCartonForUpdate locks and loads the session owning cartonID.
	GetByCartonForUpdate(ctx context.Context, cartonID kernel.UUID) (*packaging.Session, error)

	// GetManyForUpdate locks and loads the sessions that exist among ids, in
	// a stable order. Missing ids are skipped.
	GetManyForUpdate(ctx context.Context, ids []kernel.UUID) ([]*packaging.Session, error)

	// FindInProgressByOrder returns the in-progress session of the order, or
	// an ObjectNotFound error when there is none.
	FindInProgressByOrder(ctx context.Context, orderID kernel.UUID) (*packaging.Session, error)

	// Delete removes the session with its cartons and ledger entries.
	Delete(ctx context.Context, id kernel.UUID) error

	// MarkShipped flags every session as consolidated into shipmentID with a
	// conditional update. It fails with a conflict unless every session was
	// still unshipped.
	MarkShipped(ctx context.Context, sessionIDs []kernel.UUID, shipmentID kernel.UUID) error
}
