package queries

import (
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/guard"
)

var ErrGetLedgerViewQueryIsNotConstructed = errors.New(
	"GetLedgerViewQuery must be created via NewGetLedgerViewQuery constructor",
)

// GetLedgerViewQuery asks for the packing progress of every line of an order
// within one session.
type GetLedgerViewQuery struct {
	orderID   kernel.UUID
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetLedgerViewQuery(orderID, sessionID kernel.UUID) (GetLedgerViewQuery, error) {
	if err := errors.Join(orderID.Validate(), sessionID.Validate()); err != nil {
		return GetLedgerViewQuery{}, err
	}
	return GetLedgerViewQuery{
		orderID:   orderID,
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetLedgerViewQuery) Validate() error {
	return q.guard.Validate(ErrGetLedgerViewQueryIsNotConstructed)
}

func (q GetLedgerViewQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetLedgerViewQuery) SessionID() kernel.UUID {
	return q.sessionID
}
