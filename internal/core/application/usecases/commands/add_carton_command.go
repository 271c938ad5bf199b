package commands

import (
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/packaging"
	"packing/internal/pkg/guard"
)

var ErrAddCartonCommandIsNotConstructed = errors.New(
	"AddCartonCommand must be created via NewAddCartonCommand constructor",
)

type AddCartonCommand struct {
	sessionID kernel.UUID
	box       packaging.BoxConfig

	guard guard.ConstructorGuard
}

func NewAddCartonCommand(sessionID kernel.UUID, box packaging.BoxConfig) (AddCartonCommand, error) {
	if err := errors.Join(sessionID.Validate(), box.Validate()); err != nil {
		return AddCartonCommand{}, err
	}
	return AddCartonCommand{
		sessionID: sessionID,
		box:       box,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AddCartonCommand) Validate() error {
	return c.guard.Validate(ErrAddCartonCommandIsNotConstructed)
}

func (c AddCartonCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c AddCartonCommand) Box() packaging.BoxConfig {
	return c.box
}
