package commands

import (
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/guard"
)

var ErrCompleteSessionCommandIsNotConstructed = errors.New(
	"CompleteSessionCommand must be created via NewCompleteSessionCommand constructor",
)

type CompleteSessionCommand struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCompleteSessionCommand(sessionID kernel.UUID) (CompleteSessionCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return CompleteSessionCommand{}, err
	}
	return CompleteSessionCommand{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteSessionCommand) Validate() error {
	return c.guard.Validate(ErrCompleteSessionCommandIsNotConstructed)
}

func (c CompleteSessionCommand) SessionID() kernel.UUID {
	return c.sessionID
}
