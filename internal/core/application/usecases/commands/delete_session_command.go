package commands

import (
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/guard"
)

var ErrDeleteSessionCommandIsNotConstructed = errors.New(
	"DeleteSessionCommand must be created via NewDeleteSessionCommand constructor",
)

type DeleteSessionCommand struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteSessionCommand(sessionID kernel.UUID) (DeleteSessionCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return DeleteSessionCommand{}, err
	}
	return DeleteSessionCommand{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteSessionCommand) Validate() error {
	return c.guard.Validate(ErrDeleteSessionCommandIsNotConstructed)
}

func (c DeleteSessionCommand) SessionID() kernel.UUID {
	return c.sessionID
}
