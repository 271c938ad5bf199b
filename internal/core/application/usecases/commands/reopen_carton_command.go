package commands

import (
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/guard"
)

var ErrReopenCartonCommandIsNotConstructed = errors.New(
	"ReopenCartonCommand must be created via NewReopenCartonCommand constructor",
)

type ReopenCartonCommand struct {
	cartonID kernel.UUID

	guard guard.ConstructorGuard
}

func NewReopenCartonCommand(cartonID kernel.UUID) (ReopenCartonCommand, error) {
	if err := cartonID.Validate(); err != nil {
		return ReopenCartonCommand{}, err
	}
	return ReopenCartonCommand{
		cartonID: cartonID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ReopenCartonCommand) Validate() error {
	return c.guard.Validate(ErrReopenCartonCommandIsNotConstructed)
}

func (c ReopenCartonCommand) CartonID() kernel.UUID {
	return c.cartonID
}
