package commands

import (
	"context"

	"packing/internal/core/ports"
)

type ReopenCartonCommandHandler struct {
	uowFactory  SessionUoWFactory
	invalidator ports.CacheInvalidator
}

func NewReopenCartonCommandHandler(
	uowFactory SessionUoWFactory,
	invalidator ports.CacheInvalidator,
) ReopenCartonCommandHandler {
	return ReopenCartonCommandHandler{
		uowFactory:  uowFactory,
		invalidator: invalidator,
	}
}

// Handle reopens a sealed carton, sealing whichever other carton of the
// session is open. The session is locked for the whole change.
func (h ReopenCartonCommandHandler) Handle(ctx context.Context, cmd ReopenCartonCommand) error {
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

	if err = session.ReopenCarton(cmd.CartonID()); err != nil {
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
