package commands

import (
	"context"

	"packing/internal/core/ports"
)

type RemoveItemFromCartonCommandHandler struct {
	uowFactory  SessionUoWFactory
	invalidator ports.CacheInvalidator
}

func NewRemoveItemFromCartonCommandHandler(
	uowFactory SessionUoWFactory,
	invalidator ports.CacheInvalidator,
) RemoveItemFromCartonCommandHandler {
	return RemoveItemFromCartonCommandHandler{
		uowFactory:  uowFactory,
		invalidator: invalidator,
	}
}

// Handle deletes a ledger entry and stores the carton's recomputed item count.
func (h RemoveItemFromCartonCommandHandler) Handle(ctx context.Context, cmd RemoveItemFromCartonCommand) error {
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

	session, err := sessionRepo.GetByCartonForUpdate(ctx, cmd.CartonID())
	if err != nil {
		return err
	}

	if err = session.RemoveItem(cmd.CartonID(), cmd.EntryID()); err != nil {
		return err
	}

	if err = sessionRepo.Update(ctx, session); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.invalidator.Invalidate(ctx)
	return nil
}
