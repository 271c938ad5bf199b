package services_test

import (
	"testing"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/packaging"
	"packing/internal/core/domain/model/shipment"
	"packing/internal/core/domain/services"
	"packing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Two completed sessions, A with two sealed cartons and B with one, become
// one multi shipment; a second attempt with A is rejected.
func TestConsolidator_MultiScenario(t *testing.T) {
	// given
	customerA, customerB := newOrder(t, "A"), newOrder(t, "B")
	s1 := completedSession(t, customerA, 2, 2)
	s2 := completedSession(t, customerB, 2, 1)
	consolidator := services.NewConsolidator()

	// when
	created, err := consolidator.Consolidate(kernel.NewUUID(), shipment.Multi,
		[]kernel.UUID{s1.ID(), s2.ID()},
		[]services.SessionWithOrder{{Session: s1, Order: customerA}, {Session: s2, Order: customerB}},
		now)

	// then
	require.NoError(t, err)
	assert.Equal(t, 3, created.TotalCartons())
	assert.Equal(t, shipment.Draft, created.Status())
	assert.Equal(t, shipment.MultipleDestinations, created.Destination())
	assert.Regexp(t, `^MSO-`, created.Number())

	links := created.Links()
	require.Len(t, links, 2)
	assert.Equal(t, "A", links[0].CustomerName)
	assert.Equal(t, 2, links[0].CartonCount)
	assert.Equal(t, "SO-B", links[1].OrderNumber)
	assert.Equal(t, 1, links[1].CartonCount)

	customers := map[string]int{}
	for _, c := range created.Cartons() {
		customers[c.CustomerName]++
		assert.False(t, c.IsLoaded)
	}
	assert.Equal(t, map[string]int{"A": 2, "B": 1}, customers)

	for _, s := range []*packaging.Session{s1, s2} {
		assert.True(t, s.ShipmentCreated())
		assert.True(t, s.ShipmentID().IsEqual(created.ID()))
	}

	// and a second consolidation overlapping S1 fails
	s3 := completedSession(t, newOrder(t, "C"), 1, 1)
	again, err := consolidator.Consolidate(kernel.NewUUID(), shipment.Multi,
		[]kernel.UUID{s1.ID(), s3.ID()},
		[]services.SessionWithOrder{{Session: s1, Order: customerA}, {Session: s3, Order: newOrderFor(t, s3)}},
		now)

	require.ErrorIs(t, err, packaging.ErrAlreadyShipped)
	assert.Nil(t, again)
	assert.Contains(t, err.Error(), s1.Token())
	assert.NotContains(t, err.Error(), s3.Token())
	assert.False(t, s3.ShipmentCreated(), "nothing changes when a check fails")
}

func TestConsolidator_Single(t *testing.T) {
	o := newOrder(t, "Acme")
	s := completedSession(t, o, 3, 2)

	created, err := services.NewConsolidator().Consolidate(kernel.NewUUID(), shipment.Single,
		[]kernel.UUID{s.ID()}, []services.SessionWithOrder{{Session: s, Order: o}}, now)

	require.NoError(t, err)
	assert.Equal(t, 2, created.TotalCartons(), "only sealed cartons are shipped")
	assert.Equal(t, "Acme", created.Destination())
	assert.Regexp(t, `^SHP-`, created.Number())
}

func TestConsolidator_Failures(t *testing.T) {
	consolidator := services.NewConsolidator()

	t.Run("missing session fails the whole set", func(t *testing.T) {
		o := newOrder(t, "A")
		s := completedSession(t, o, 1, 1)
		missing := kernel.NewUUID()

		_, err := consolidator.Consolidate(kernel.NewUUID(), shipment.Multi,
			[]kernel.UUID{s.ID(), missing}, []services.SessionWithOrder{{Session: s, Order: o}}, now)

		require.ErrorIs(t, err, shipment.ErrIncompleteSessionSet)
		assert.Contains(t, err.Error(), missing.String())
		assert.False(t, s.ShipmentCreated())
	})

	t.Run("in-progress session", func(t *testing.T) {
		a, b := newOrder(t, "A"), newOrder(t, "B")
		done := completedSession(t, a, 1, 1)
		open := newSession(t, b.ID(), 1)

		_, err := consolidator.Consolidate(kernel.NewUUID(), shipment.Multi,
			[]kernel.UUID{done.ID(), open.ID()},
			[]services.SessionWithOrder{{Session: done, Order: a}, {Session: open, Order: b}}, now)

		require.ErrorIs(t, err, packaging.ErrSessionNotCompleted)
		assert.False(t, done.ShipmentCreated())
	})

	t.Run("no sealed cartons", func(t *testing.T) {
		a, b := newOrder(t, "A"), newOrder(t, "B")
		s1, s2 := completedSession(t, a, 1, 0), completedSession(t, b, 2, 0)

		_, err := consolidator.Consolidate(kernel.NewUUID(), shipment.Multi,
			[]kernel.UUID{s1.ID(), s2.ID()},
			[]services.SessionWithOrder{{Session: s1, Order: a}, {Session: s2, Order: b}}, now)

		require.ErrorIs(t, err, shipment.ErrNoSealedCartons)
		assert.False(t, s1.ShipmentCreated())
	})

	t.Run("multi needs two sessions", func(t *testing.T) {
		o := newOrder(t, "A")
		s := completedSession(t, o, 1, 1)

		_, err := consolidator.Consolidate(kernel.NewUUID(), shipment.Multi,
			[]kernel.UUID{s.ID()}, []services.SessionWithOrder{{Session: s, Order: o}}, now)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("order must belong to the session", func(t *testing.T) {
		o := newOrder(t, "A")
		s := completedSession(t, o, 1, 1)

		_, err := consolidator.Consolidate(kernel.NewUUID(), shipment.Single,
			[]kernel.UUID{s.ID()}, []services.SessionWithOrder{{Session: s, Order: newOrder(t, "B")}}, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
