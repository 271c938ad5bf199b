package commands

import (
	"context"

	"packing/internal/core/ports"
)

type CompleteSessionCommandHandler struct {
	uowFactory  SessionUoWFactory
	invalidator ports.CacheInvalidator
	metrics     ports.PackingMetrics
}

func NewCompleteSessionCommandHandler(
	uowFactory SessionUoWFactory,
	invalidator ports.CacheInvalidator,
	metrics ports.PackingMetrics,
) CompleteSessionCommandHandler {
	return CompleteSessionCommandHandler{
		uowFactory:  uowFactory,
		invalidator: invalidator,
		metrics:     metrics,
	}
}

// Handle marks the session completed. Unsealed cartons and unpacked lines
// do not block completion.
func (h CompleteSessionCommandHandler) Handle(ctx context.Context, cmd CompleteSessionCommand) error {
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

	session, err := sessionRepo.GetForUpdate(ctx, cmd.SessionID())
	if err != nil {
		return err
	}

	if err = session.Complete(now()); err != nil {
		return err
	}

	if err = sessionRepo.Update(ctx, session); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.invalidator.Invalidate(ctx)
	h.metrics.SessionCompleted(ctx)
	return nil
}
