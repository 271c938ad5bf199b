package commands

import (
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/guard"
)

var ErrOpenNextCartonCommandIsNotConstructed = errors.New(
	"OpenNextCartonCommand must be created via NewOpenNextCartonCommand constructor",
)

type OpenNextCartonCommand struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewOpenNextCartonCommand(sessionID kernel.UUID) (OpenNextCartonCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return OpenNextCartonCommand{}, err
	}
	return OpenNextCartonCommand{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c OpenNextCartonCommand) Validate() error {
	return c.guard.Validate(ErrOpenNextCartonCommandIsNotConstructed)
}

func (c OpenNextCartonCommand) SessionID() kernel.UUID {
	return c.sessionID
}
