package commands

import (
	"context"

	"packing/internal/core/ports"
)

type DeleteSessionCommandHandler struct {
	uowFactory  PackingUoWFactory
	invalidator ports.CacheInvalidator
	metrics     ports.PackingMetrics
}

func NewDeleteSessionCommandHandler(
	uowFactory PackingUoWFactory,
	invalidator ports.CacheInvalidator,
	metrics ports.PackingMetrics,
) DeleteSessionCommandHandler {
	return DeleteSessionCommandHandler{
		uowFactory:  uowFactory,
		invalidator: invalidator,
		metrics:     metrics,
	}
}

// Handle deletes the session with its cartons and ledger entries and flags
// the owning order as packaging-deleted, so it stays out of intake until
// restored. Both changes commit together.
func (h DeleteSessionCommandHandler) Handle(ctx context.Context, cmd DeleteSessionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sessionRepo := uow.SessionRepository()
	orderRepo := uow.OrderRepository()

	session, err := sessionRepo.GetForUpdate(ctx, cmd.SessionID())
	if err != nil {
		return err
	}
	if err = session.ValidateDeletable(); err != nil {
		return err
	}

	// read before the cascade removes the session row
	o, err := orderRepo.GetForUpdate(ctx, session.OrderID())
	if err != nil {
		return err
	}

	if err = sessionRepo.Delete(ctx, session.ID()); err != nil {
		return err
	}

	o.MarkPackagingDeleted()
	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.invalidator.Invalidate(ctx)
	h.metrics.SessionDeleted(ctx)
	return nil
}
