package commands

import (
	"errors"
	"strings"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/packaging"
	"packing/internal/pkg/guard"
)

var ErrSealCartonCommandIsNotConstructed = errors.New(
	"SealCartonCommand must be created via NewSealCartonCommand constructor",
)

type SealCartonCommand struct { //nolint:recvcheck //using for validation
	cartonID     kernel.UUID
	actualWeight kernel.Weight
	operator     string

	guard guard.ConstructorGuard
}

func NewSealCartonCommand(cartonID kernel.UUID, actualWeight kernel.Weight, operator string) (SealCartonCommand, error) {
	cmd := SealCartonCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCartonID(cartonID),
		cmd.setActualWeight(actualWeight),
		cmd.setOperator(operator),
	); err != nil {
		return SealCartonCommand{}, err
	}

	return cmd, nil
}

func (c SealCartonCommand) Validate() error {
	return c.guard.Validate(ErrSealCartonCommandIsNotConstructed)
}

func (c SealCartonCommand) CartonID() kernel.UUID {
	return c.cartonID
}

func (c SealCartonCommand) ActualWeight() kernel.Weight {
	return c.actualWeight
}

func (c SealCartonCommand) Operator() string {
	return c.operator
}

func (c *SealCartonCommand) setCartonID(cartonID kernel.UUID) error {
	if err := cartonID.Validate(); err != nil {
		return err
	}
	c.cartonID = cartonID
	return nil
}

func (c *SealCartonCommand) setActualWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	c.actualWeight = weight
	return nil
}

func (c *SealCartonCommand) setOperator(operator string) error {
	operator = strings.TrimSpace(operator)
	if operator == "" {
		return packaging.ErrOperatorIsRequired
	}
	c.operator = operator
	return nil
}
