package commands

import (
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/guard"
)

var ErrDeleteCartonCommandIsNotConstructed = errors.New(
	"DeleteCartonCommand must be created via NewDeleteCartonCommand constructor",
)

type DeleteCartonCommand struct {
	cartonID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteCartonCommand(cartonID kernel.UUID) (DeleteCartonCommand, error) {
	if err := cartonID.Validate(); err != nil {
		return DeleteCartonCommand{}, err
	}
	return DeleteCartonCommand{
		cartonID: cartonID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteCartonCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCartonCommandIsNotConstructed)
}

func (c DeleteCartonCommand) CartonID() kernel.UUID {
	return c.cartonID
}
