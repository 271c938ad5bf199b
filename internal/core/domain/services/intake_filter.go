package services

import (
	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/order"
	"packing/internal/core/domain/model/packaging"
)

// IntakeBlockingStatuses are the session statuses that keep an order out of
// the intake queue.
var IntakeBlockingStatuses = []packaging.SessionStatus{packaging.SessionInProgress, packaging.SessionCompleted}

// IntakeFilter decides which orders are offered for packaging.
type IntakeFilter struct{}

func NewIntakeFilter() IntakeFilter {
	return IntakeFilter{}
}

// Filter keeps completed orders that are neither packaging-deleted nor
// covered by a session in an IntakeBlockingStatuses state. ordersWithSession
// holds the ids of orders with such a session. Both exclusions apply: the
// deleted flag still guards an order whose session row is gone.
func (f IntakeFilter) Filter(orders []*order.Order, ordersWithSession map[kernel.UUID]struct{}) []*order.Order {
	eligible := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if f.IsEligible(o, ordersWithSession) {
			eligible = append(eligible, o)
		}
	}
	return eligible
}

func (f IntakeFilter) IsEligible(o *order.Order, ordersWithSession map[kernel.UUID]struct{}) bool {
	if o.Validate() != nil || o.Status() != order.Completed || o.IsPackagingDeleted() {
		return false
	}
	_, blocked := ordersWithSession[o.ID()]
	return !blocked
}
