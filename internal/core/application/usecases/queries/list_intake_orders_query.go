package queries

import (
	"errors"
	"fmt"
	"strings"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/errs"
	"packing/internal/pkg/guard"
)

var ErrListIntakeOrdersQueryIsNotConstructed = errors.New(
	"ListIntakeOrdersQuery must be created via NewListIntakeOrdersQuery constructor",
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 500
)

// ListIntakeOrdersQuery lists the orders waiting to be packed, optionally
// narrowed by a case-insensitive search on order number or customer name.
type ListIntakeOrdersQuery struct {
	search string
	limit  int

	guard guard.ConstructorGuard
}

// NewListIntakeOrdersQuery uses DefaultListLimit when limit is zero.
func NewListIntakeOrdersQuery(search string, limit int) (ListIntakeOrdersQuery, error) {
	limit, err := resolveLimit(limit)
	if err != nil {
		return ListIntakeOrdersQuery{}, err
	}
	return ListIntakeOrdersQuery{
		search: strings.TrimSpace(search),
		limit:  limit,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListIntakeOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListIntakeOrdersQueryIsNotConstructed)
}

func (q ListIntakeOrdersQuery) Search() string {
	return q.search
}

func (q ListIntakeOrdersQuery) Limit() int {
	return q.limit
}

type IntakeOrder struct {
	ID           kernel.UUID
	OrderNumber  string
	CustomerName string
	TotalItems   int
}

func resolveLimit(limit int) (int, error) {
	switch {
	case limit == 0:
		return DefaultListLimit, nil
	case limit < 0 || limit > MaxListLimit:
		return 0, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxListLimit)
	default:
		return limit, nil
	}
}

func likePattern(search string) string {
	return fmt.Sprintf("%%%s%%", strings.ToLower(search))
}
