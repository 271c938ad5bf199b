package commands

import (
	"context"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/ports"
)

// AddItemToCartonResponse reports the merged ledger entry and what is left
// to pack of the line in this session.
type AddItemToCartonResponse struct {
	EntryID          kernel.UUID
	EntryQuantity    int
	CartonItemsCount int
	PackedInSession  int
	Remaining        int
}

type AddItemToCartonCommandHandler struct {
	uowFactory  PackingUoWFactory
	invalidator ports.CacheInvalidator
	metrics     ports.PackingMetrics
}

func NewAddItemToCartonCommandHandler(
	uowFactory PackingUoWFactory,
	invalidator ports.CacheInvalidator,
	metrics ports.PackingMetrics,
) AddItemToCartonCommandHandler {
	return AddItemToCartonCommandHandler{
		uowFactory:  uowFactory,
		invalidator: invalidator,
		metrics:     metrics,
	}
}

// Handle packs units of an order line into a carton. The session row stays
// locked from reading the ledger to writing the entry, so two terminals
// cannot both pass the remaining-quantity check for the same units.
func (h AddItemToCartonCommandHandler) Handle(
	ctx context.Context,
	cmd AddItemToCartonCommand,
) (AddItemToCartonResponse, error) {
	if err := cmd.Validate(); err != nil {
		return AddItemToCartonResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AddItemToCartonResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sessionRepo := uow.SessionRepository()
	orderRepo := uow.OrderRepository()

	session, err := sessionRepo.GetForUpdate(ctx, cmd.SessionID())
	if err != nil {
		return AddItemToCartonResponse{}, err
	}

	line, err := orderRepo.GetLine(ctx, cmd.LineID())
	if err != nil {
		return AddItemToCartonResponse{}, err
	}

	entry, err := session.AddItem(cmd.CartonID(), line, cmd.Quantity(), cmd.Operator(), now())
	if err != nil {
		return AddItemToCartonResponse{}, err
	}

	if err = sessionRepo.Update(ctx, session); err != nil {
		return AddItemToCartonResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AddItemToCartonResponse{}, err
	}

	h.invalidator.Invalidate(ctx)
	h.metrics.ItemsPacked(ctx, cmd.Quantity())

	carton, err := session.Carton(cmd.CartonID())
	if err != nil {
		return AddItemToCartonResponse{}, err
	}
	return AddItemToCartonResponse{
		EntryID:          entry.ID(),
		EntryQuantity:    entry.Quantity(),
		CartonItemsCount: carton.ItemsCount(),
		PackedInSession:  session.PackedQuantity(line.ID()),
		Remaining:        session.Remaining(line),
	}, nil
}
