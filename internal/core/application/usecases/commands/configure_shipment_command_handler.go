package commands

import (
	"context"

	"packing/internal/core/domain/model/shipment"
	"packing/internal/core/ports"
)

type ConfigureShipmentCommandHandler struct {
	uowFactory  ShipmentUoWFactory
	invalidator ports.CacheInvalidator
}

func NewConfigureShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	invalidator ports.CacheInvalidator,
) ConfigureShipmentCommandHandler {
	return ConfigureShipmentCommandHandler{
		uowFactory:  uowFactory,
		invalidator: invalidator,
	}
}

// Handle sets the dispatch configuration and returns the new status.
func (h ConfigureShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd ConfigureShipmentCommand,
) (shipment.Status, error) {
	if err := cmd.Validate(); err != nil {
		return shipment.UnknownStatus, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return shipment.UnknownStatus, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()

	s, err := shipmentRepo.GetForUpdate(ctx, cmd.ShipmentID())
	if err != nil {
		return shipment.UnknownStatus, err
	}

	if cmd.MultiOnly() {
		err = s.ConfigureMulti(cmd.Params(), now())
	} else {
		err = s.Configure(cmd.Params(), now())
	}
	if err != nil {
		return shipment.UnknownStatus, err
	}

	if err = shipmentRepo.Update(ctx, s); err != nil {
		return shipment.UnknownStatus, err
	}

	if err = uow.Commit(ctx); err != nil {
		return shipment.UnknownStatus, err
	}

	h.invalidator.Invalidate(ctx)
	return s.Status(), nil
}
