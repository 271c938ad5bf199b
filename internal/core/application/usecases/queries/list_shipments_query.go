package queries

import (
	"errors"
	"time"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/shipment"
	"packing/internal/pkg/guard"
)

var ErrListShipmentsQueryIsNotConstructed = errors.New(
	"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
)

// ListShipmentsQuery lists shipment summaries, newest first. An empty status
// lists every shipment.
type ListShipmentsQuery struct {
	status string
	limit  int

	guard guard.ConstructorGuard
}

func NewListShipmentsQuery(status string, limit int) (ListShipmentsQuery, error) {
	if status != "" {
		parsed, err := shipment.ParseStatus(status)
		if err != nil {
			return ListShipmentsQuery{}, err
		}
		status = parsed.String()
	}
	limit, err := resolveLimit(limit)
	if err != nil {
		return ListShipmentsQuery{}, err
	}

	return ListShipmentsQuery{
		status: status,
		limit:  limit,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

func (q ListShipmentsQuery) Status() string {
	return q.status
}

func (q ListShipmentsQuery) Limit() int {
	return q.limit
}

type ShipmentSummary struct {
	ID           kernel.UUID
	Number       string
	OrderType    string
	Status       string
	TotalCartons int
	Destination  string
	CreatedAt    time.Time
}
