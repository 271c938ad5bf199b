package queries

import (
	"errors"
	"time"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/guard"
)

var ErrGetSessionQueryIsNotConstructed = errors.New(
	"GetSessionQuery must be created via NewGetSessionQuery constructor",
)

type GetSessionQuery struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetSessionQuery(sessionID kernel.UUID) (GetSessionQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return GetSessionQuery{}, err
	}
	return GetSessionQuery{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetSessionQuery) Validate() error {
	return q.guard.Validate(ErrGetSessionQueryIsNotConstructed)
}

func (q GetSessionQuery) SessionID() kernel.UUID {
	return q.sessionID
}

// GetSessionQueryResponse is a packaging session with its cartons, in box
// number order, and their ledger entries.
type GetSessionQueryResponse struct {
	ID              kernel.UUID
	Token           string
	OrderID         kernel.UUID
	Operator        string
	Status          string
	TotalItems      int
	TotalCartons    int
	ItemsPacked     int
	StartedAt       time.Time
	CompletedAt     *time.Time
	ShipmentCreated bool
	ShipmentID      *kernel.UUID
	Cartons         []CartonView
}

type CartonView struct {
	ID              kernel.UUID
	BoxNumber       int
	Barcode         string
	BoxType         string
	BoxSize         string
	EstimatedWeight string
	ActualWeight    string
	Status          string
	ItemsCount      int
	SealedAt        *time.Time
	SealedBy        string
	CreatedAt       time.Time
	Entries         []LedgerEntryView
}

type LedgerEntryView struct {
	ID       kernel.UUID
	LineID   kernel.UUID
	Quantity int
	Operator string
	AddedAt  time.Time
}
