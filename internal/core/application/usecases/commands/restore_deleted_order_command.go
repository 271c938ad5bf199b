package commands

import (
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/guard"
)

var ErrRestoreDeletedOrderCommandIsNotConstructed = errors.New(
	"RestoreDeletedOrderCommand must be created via NewRestoreDeletedOrderCommand constructor",
)

type RestoreDeletedOrderCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRestoreDeletedOrderCommand(orderID kernel.UUID) (RestoreDeletedOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RestoreDeletedOrderCommand{}, err
	}
	return RestoreDeletedOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RestoreDeletedOrderCommand) Validate() error {
	return c.guard.Validate(ErrRestoreDeletedOrderCommandIsNotConstructed)
}

func (c RestoreDeletedOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
