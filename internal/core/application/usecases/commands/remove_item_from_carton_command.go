package commands

import (
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/guard"
)

var ErrRemoveItemFromCartonCommandIsNotConstructed = errors.New(
	"RemoveItemFromCartonCommand must be created via NewRemoveItemFromCartonCommand constructor",
)

type RemoveItemFromCartonCommand struct {
	entryID  kernel.UUID
	cartonID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveItemFromCartonCommand(entryID, cartonID kernel.UUID) (RemoveItemFromCartonCommand, error) {
	if err := errors.Join(entryID.Validate(), cartonID.Validate()); err != nil {
		return RemoveItemFromCartonCommand{}, err
	}
	return RemoveItemFromCartonCommand{
		entryID:  entryID,
		cartonID: cartonID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveItemFromCartonCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemFromCartonCommandIsNotConstructed)
}

func (c RemoveItemFromCartonCommand) EntryID() kernel.UUID {
	return c.entryID
}

func (c RemoveItemFromCartonCommand) CartonID() kernel.UUID {
	return c.cartonID
}
