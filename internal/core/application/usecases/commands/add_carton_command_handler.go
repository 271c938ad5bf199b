package commands

import (
	"context"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/packaging"
	"packing/internal/core/ports"
)

// AddCartonResponse describes the carton appended to the session.
type AddCartonResponse struct {
	CartonID  kernel.UUID
	BoxNumber int
	Barcode   string
	Status    packaging.CartonStatus
}

type AddCartonCommandHandler struct {
	uowFactory  SessionUoWFactory
	catalog     ports.BoxCatalog
	invalidator ports.CacheInvalidator
}

func NewAddCartonCommandHandler(
	uowFactory SessionUoWFactory,
	catalog ports.BoxCatalog,
	invalidator ports.CacheInvalidator,
) AddCartonCommandHandler {
	return AddCartonCommandHandler{
		uowFactory:  uowFactory,
		catalog:     catalog,
		invalidator: invalidator,
	}
}

func (h AddCartonCommandHandler) Handle(ctx context.Context, cmd AddCartonCommand) (AddCartonResponse, error) {
	if err := cmd.Validate(); err != nil {
		return AddCartonResponse{}, err
	}

	box := cmd.Box()
	if h.catalog != nil {
		if preset, ok := h.catalog.Preset(box.BoxType()); ok {
			box = box.WithPreset(preset.Size, preset.EstimatedWeight)
		}
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AddCartonResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sessionRepo := uow.SessionRepository()

	session, err := sessionRepo.GetForUpdate(ctx, cmd.SessionID())
	if err != nil {
		return AddCartonResponse{}, err
	}

	carton, err := session.AddCarton(box, now())
	if err != nil {
		return AddCartonResponse{}, err
	}

	if err = sessionRepo.Update(ctx, session); err != nil {
		return AddCartonResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AddCartonResponse{}, err
	}

	h.invalidator.Invalidate(ctx)
	return AddCartonResponse{
		CartonID:  carton.ID(),
		BoxNumber: carton.BoxNumber(),
		Barcode:   carton.Barcode(),
		Status:    carton.Status(),
	}, nil
}
