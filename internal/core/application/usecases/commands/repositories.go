// Package commands contains the operations that change packing state.
// Every handler follows the same shape: validate the command, open a unit of
// work, lock and load the aggregates it needs, apply domain methods, persist,
// commit, then invalidate caches and record metrics.
package commands

import (
	"context"
	"time"

	"packing/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	SessionRepoFactory interface {
		SessionRepository() ports.SessionRepository
	}

	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// SessionUoW serves carton and ledger commands, which only touch one session.
	SessionUoW interface {
		TxManager
		SessionRepoFactory
	}

	SessionUoWFactory interface {
		Create() SessionUoW
	}

	// PackingUoW serves commands that touch a session and its order.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   order, err := uow.OrderRepository().GetForUpdate(ctx, orderID)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	PackingUoW interface {
		TxManager
		OrderRepoFactory
		SessionRepoFactory
	}

	PackingUoWFactory interface {
		Create() PackingUoW
	}

	// ShipmentUoW serves consolidation and shipment configuration.
	ShipmentUoW interface {
		TxManager
		OrderRepoFactory
		SessionRepoFactory
		ShipmentRepoFactory
	}

	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}
)

func now() time.Time {
	return time.Now().UTC()
}
