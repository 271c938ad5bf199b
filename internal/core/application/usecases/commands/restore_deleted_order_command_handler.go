package commands

import (
	"context"

	"packing/internal/core/ports"
)

type RestoreDeletedOrderCommandHandler struct {
	uowFactory  PackingUoWFactory
	invalidator ports.CacheInvalidator
}

func NewRestoreDeletedOrderCommandHandler(
	uowFactory PackingUoWFactory,
	invalidator ports.CacheInvalidator,
) RestoreDeletedOrderCommandHandler {
	return RestoreDeletedOrderCommandHandler{
		uowFactory:  uowFactory,
		invalidator: invalidator,
	}
}

// Handle clears the order's packaging-deleted flag so it can return to
// intake. Deleted sessions and cartons stay deleted.
func (h RestoreDeletedOrderCommandHandler) Handle(ctx context.Context, cmd RestoreDeletedOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.RestorePackaging(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.invalidator.Invalidate(ctx)
	return nil
}
