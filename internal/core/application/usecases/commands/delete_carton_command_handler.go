package commands

import (
	"context"

	"packing/internal/core/ports"
)

type DeleteCartonCommandHandler struct {
	uowFactory  SessionUoWFactory
	invalidator ports.CacheInvalidator
}

func NewDeleteCartonCommandHandler(
	uowFactory SessionUoWFactory,
	invalidator ports.CacheInvalidator,
) DeleteCartonCommandHandler {
	return DeleteCartonCommandHandler{
		uowFactory:  uowFactory,
		invalidator: invalidator,
	}
}

// Handle removes the carton with its ledger entries and stores the
// recomputed carton count of the session.
func (h DeleteCartonCommandHandler) Handle(ctx context.Context, cmd DeleteCartonCommand) error {
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

	if _, err = session.DeleteCarton(cmd.CartonID()); err != nil {
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
