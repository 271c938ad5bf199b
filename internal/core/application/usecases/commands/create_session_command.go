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

var ErrCreateSessionCommandIsNotConstructed = errors.New(
	"CreateSessionCommand must be created via NewCreateSessionCommand constructor",
)

type CreateSessionCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	operator   string
	boxes      []packaging.BoxConfig
	totalItems *int

	guard guard.ConstructorGuard
}

// NewCreateSessionCommand builds the command. totalItems may be nil, in which
// case the order's own item count is declared.
func NewCreateSessionCommand(
	orderID kernel.UUID,
	operator string,
	boxes []packaging.BoxConfig,
	totalItems *int,
) (CreateSessionCommand, error) {
	cmd := CreateSessionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOperator(operator),
		cmd.setBoxes(boxes),
		cmd.setTotalItems(totalItems),
	); err != nil {
		return CreateSessionCommand{}, err
	}

	return cmd, nil
}

func (c CreateSessionCommand) Validate() error {
	return c.guard.Validate(ErrCreateSessionCommandIsNotConstructed)
}

func (c CreateSessionCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateSessionCommand) Operator() string {
	return c.operator
}

func (c CreateSessionCommand) Boxes() []packaging.BoxConfig {
	return append([]packaging.BoxConfig(nil), c.boxes...)
}

func (c CreateSessionCommand) TotalItems() *int {
	return c.totalItems
}

func (c *CreateSessionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateSessionCommand) setOperator(operator string) error {
	operator = strings.TrimSpace(operator)
	if operator == "" {
		return packaging.ErrOperatorIsRequired
	}
	c.operator = operator
	return nil
}

func (c *CreateSessionCommand) setBoxes(boxes []packaging.BoxConfig) error {
	if len(boxes) == 0 {
		return packaging.ErrBoxesAreRequired
	}
	for _, b := range boxes {
		if err := b.Validate(); err != nil {
			return err
		}
	}
	c.boxes = append([]packaging.BoxConfig(nil), boxes...)
	return nil
}

func (c *CreateSessionCommand) setTotalItems(totalItems *int) error {
	if totalItems == nil {
		return nil
	}
	if *totalItems < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total items", fmt.Errorf("%d is negative", *totalItems))
	}
	v := *totalItems
	c.totalItems = &v
	return nil
}
