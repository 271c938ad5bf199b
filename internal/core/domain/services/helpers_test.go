package services_test

import (
	"testing"
	"time"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/order"
	"packing/internal/core/domain/model/packaging"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

func newOrder(t *testing.T, customer string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "SO-"+customer, customer, 5, order.Completed)
	require.NoError(t, err)
	return o
}

func newLine(t *testing.T, orderID kernel.UUID, sku, barcode string, picked int) *order.Line {
	t.Helper()
	l, err := order.NewLine(kernel.NewUUID(), orderID, sku, sku+" name", barcode, picked)
	require.NoError(t, err)
	return l
}

func newSession(t *testing.T, orderID kernel.UUID, boxes int) *packaging.Session {
	t.Helper()
	cfg, err := packaging.NewBoxConfig("standard", "M", nil)
	require.NoError(t, err)
	configs := make([]packaging.BoxConfig, boxes)
	for i := range configs {
		configs[i] = cfg
	}
	s, err := packaging.NewSession(kernel.NewUUID(), orderID, packaging.NewSessionToken(now), "alice", 5, configs, now)
	require.NoError(t, err)
	return s
}

// completedSession packs one unit per carton, seals sealedBoxes of them and
// completes the session.
func completedSession(t *testing.T, o *order.Order, boxes, sealedBoxes int) *packaging.Session {
	t.Helper()
	s := newSession(t, o.ID(), boxes)
	line := newLine(t, o.ID(), "SKU-1", "111", boxes)
	w, err := kernel.NewWeight(decimal.NewFromInt(1))
	require.NoError(t, err)

	for i := range sealedBoxes {
		open := s.OpenCarton()
		if open == nil {
			open, _, err = s.OpenNextCarton()
			require.NoError(t, err)
		}
		_, err = s.AddItem(open.ID(), line, 1, "alice", now)
		require.NoError(t, err)
		require.NoError(t, s.SealCarton(open.ID(), w, "alice", now), "box %d", i+1)
	}
	require.NoError(t, s.Complete(now))
	return s
}

// newOrderFor returns an order whose id matches the session's order.
func newOrderFor(t *testing.T, s *packaging.Session) *order.Order {
	t.Helper()
	o, err := order.NewOrder(s.OrderID(), "SO-"+s.Token(), "Customer "+s.Token(), 1, order.Completed)
	require.NoError(t, err)
	return o
}
