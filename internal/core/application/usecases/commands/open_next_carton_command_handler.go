package commands

import (
	"context"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/ports"
)

// OpenNextCartonResponse reports the carton that was opened. Opened is false
// when the session had no pending carton left.
type OpenNextCartonResponse struct {
	Opened    bool
	CartonID  kernel.UUID
	BoxNumber int
}

type OpenNextCartonCommandHandler struct {
	uowFactory  SessionUoWFactory
	invalidator ports.CacheInvalidator
}

func NewOpenNextCartonCommandHandler(
	uowFactory SessionUoWFactory,
	invalidator ports.CacheInvalidator,
) OpenNextCartonCommandHandler {
	return OpenNextCartonCommandHandler{
		uowFactory:  uowFactory,
		invalidator: invalidator,
	}
}

func (h OpenNextCartonCommandHandler) Handle(ctx context.Context, cmd OpenNextCartonCommand) (OpenNextCartonResponse, error) {
	if err := cmd.Validate(); err != nil {
		return OpenNextCartonResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return OpenNextCartonResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sessionRepo := uow.SessionRepository()

	session, err := sessionRepo.GetForUpdate(ctx, cmd.SessionID())
	if err != nil {
		return OpenNextCartonResponse{}, err
	}

	carton, opened, err := session.OpenNextCarton()
	if err != nil {
		return OpenNextCartonResponse{}, err
	}
	if !opened {
		return OpenNextCartonResponse{}, nil
	}

	if err = sessionRepo.Update(ctx, session); err != nil {
		return OpenNextCartonResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return OpenNextCartonResponse{}, err
	}

	h.invalidator.Invalidate(ctx)
	return OpenNextCartonResponse{Opened: true, CartonID: carton.ID(), BoxNumber: carton.BoxNumber()}, nil
}
