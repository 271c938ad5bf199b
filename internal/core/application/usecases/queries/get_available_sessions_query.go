package queries

import (
	"errors"
	"time"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/guard"
)

var ErrGetAvailableSessionsQueryIsNotConstructed = errors.New(
	"GetAvailableSessionsQuery must be created via NewGetAvailableSessionsQuery constructor",
)

// GetAvailableSessionsQuery lists completed sessions that are not part of a
// shipment yet.
type GetAvailableSessionsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAvailableSessionsQuery() GetAvailableSessionsQuery {
	return GetAvailableSessionsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAvailableSessionsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableSessionsQueryIsNotConstructed)
}

type AvailableSession struct {
	SessionID     kernel.UUID
	SessionToken  string
	OrderID       kernel.UUID
	OrderNumber   string
	CustomerName  string
	TotalCartons  int
	SealedCartons int
	CompletedAt   *time.Time
}
