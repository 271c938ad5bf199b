package commands

import (
	"context"

	"packing/internal/core/ports"
)

type SealCartonCommandHandler struct {
	uowFactory  SessionUoWFactory
	invalidator ports.CacheInvalidator
	metrics     ports.PackingMetrics
}

func NewSealCartonCommandHandler(
	uowFactory SessionUoWFactory,
	invalidator ports.CacheInvalidator,
	metrics ports.PackingMetrics,
) SealCartonCommandHandler {
	return SealCartonCommandHandler{
		uowFactory:  uowFactory,
		invalidator: invalidator,
		metrics:     metrics,
	}
}

// Handle seals the open carton with its actual weight. Sealing an empty or
// already sealed carton fails.
func (h SealCartonCommandHandler) Handle(ctx context.Context, cmd SealCartonCommand) error {
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

	if err = session.SealCarton(cmd.CartonID(), cmd.ActualWeight(), cmd.Operator(), now()); err != nil {
		return err
	}

	if err = sessionRepo.Update(ctx, session); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.invalidator.Invalidate(ctx)
	h.metrics.CartonSealed(ctx)
	return nil
}
