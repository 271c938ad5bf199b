package services_test

import (
	"testing"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/order"
	"packing/internal/core/domain/model/packaging"
	"packing/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntakeFilter_Filter(t *testing.T) {
	// given
	eligible := newOrder(t, "Eligible")
	withSession := newOrder(t, "WithSession")
	deleted := newOrder(t, "Deleted")
	deleted.MarkPackagingDeleted()
	pending, err := order.NewOrder(kernel.NewUUID(), "SO-P", "Pending", 1, order.Pending)
	require.NoError(t, err)

	ordersWithSession := map[kernel.UUID]struct{}{withSession.ID(): {}}

	// when
	result := services.NewIntakeFilter().Filter(
		[]*order.Order{eligible, withSession, deleted, pending}, ordersWithSession)

	// then
	require.Len(t, result, 1)
	assert.True(t, result[0].IsEqual(eligible))
}

func TestIntakeFilter_DeletedStaysOutUntilRestored(t *testing.T) {
	filter := services.NewIntakeFilter()
	o := newOrder(t, "Acme")
	none := map[kernel.UUID]struct{}{}

	// the session row is gone after deletion, only the flag keeps the order out
	o.MarkPackagingDeleted()
	assert.False(t, filter.IsEligible(o, none))

	require.NoError(t, o.RestorePackaging())
	assert.True(t, filter.IsEligible(o, none))
}

func TestIntakeBlockingStatuses(t *testing.T) {
	assert.ElementsMatch(t,
		[]packaging.SessionStatus{packaging.SessionInProgress, packaging.SessionCompleted},
		services.IntakeBlockingStatuses)
}
