package commands

import (
	"errors"
	"fmt"
	"strings"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/packaging"
	"packing/internal/pkg/errs"
	"packing/internal/pkg/guard"
)

var ErrAddItemToCartonCommandIsNotConstructed = errors.New(
	"AddItemToCartonCommand must be created via NewAddItemToCartonCommand constructor",
)

type AddItemToCartonCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	cartonID  kernel.UUID
	lineID    kernel.UUID
	quantity  int
	operator  string

	guard guard.ConstructorGuard
}

func NewAddItemToCartonCommand(
	sessionID, cartonID, lineID kernel.UUID,
	quantity int,
	operator string,
) (AddItemToCartonCommand, error) {
	cmd := AddItemToCartonCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIDs(sessionID, cartonID, lineID),
		cmd.setQuantity(quantity),
		cmd.setOperator(operator),
	); err != nil {
		return AddItemToCartonCommand{}, err
	}

	return cmd, nil
}

func (c AddItemToCartonCommand) Validate() error {
	return c.guard.Validate(ErrAddItemToCartonCommandIsNotConstructed)
}

func (c AddItemToCartonCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c AddItemToCartonCommand) CartonID() kernel.UUID {
	return c.cartonID
}

func (c AddItemToCartonCommand) LineID() kernel.UUID {
	return c.lineID
}

func (c AddItemToCartonCommand) Quantity() int {
	return c.quantity
}

func (c AddItemToCartonCommand) Operator() string {
	return c.operator
}

func (c *AddItemToCartonCommand) setIDs(sessionID, cartonID, lineID kernel.UUID) error {
	if err := errors.Join(sessionID.Validate(), cartonID.Validate(), lineID.Validate()); err != nil {
		return err
	}
	c.sessionID = sessionID
	c.cartonID = cartonID
	c.lineID = lineID
	return nil
}

func (c *AddItemToCartonCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	c.quantity = quantity
	return nil
}

func (c *AddItemToCartonCommand) setOperator(operator string) error {
	operator = strings.TrimSpace(operator)
	if operator == "" {
		return packaging.ErrOperatorIsRequired
	}
	c.operator = operator
	return nil
}
