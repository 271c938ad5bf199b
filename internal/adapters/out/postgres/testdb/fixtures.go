package testdb

import (
	"context"
	"fmt"
	"testing"

	"packing/internal/adapters/out/postgres/orderrepo"
	"packing/internal/adapters/out/postgres/sessionrepo"
	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/order"
	"packing/internal/core/domain/model/packaging"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NopTracker discards tracked aggregates.
type NopTracker struct{}

func (NopTracker) TrackAggregate(kernel.UUID, any) {}

// SeedOrder stores a completed order with one line per picked quantity.
// Lines are named SKU-1, SKU-2, ... with barcodes 400000000000N.
func SeedOrder(t testing.TB, db *gorm.DB, number, customer string, picked ...int) (*order.Order, []*order.Line) {
	t.Helper()

	total := 0
	for _, p := range picked {
		total += p
	}
	o, err := order.NewOrder(kernel.NewUUID(), number, customer, total, order.Completed)
	require.NoError(t, err)

	lines := make([]*order.Line, 0, len(picked))
	for i, p := range picked {
		line, lineErr := order.NewLine(kernel.NewUUID(), o.ID(),
			fmt.Sprintf("SKU-%d", i+1), fmt.Sprintf("Item %d", i+1), fmt.Sprintf("400000000000%d", i+1), p)
		require.NoError(t, lineErr)
		lines = append(lines, line)
	}

	require.NoError(t, orderrepo.NewGormOrderRepository(db, NopTracker{}).Add(context.Background(), o, lines))
	return o, lines
}

// SeedSession stores an in-progress session for o with one carton per box type.
func SeedSession(t testing.TB, db *gorm.DB, o *order.Order, boxTypes ...string) *packaging.Session {
	t.Helper()

	boxes := make([]packaging.BoxConfig, 0, len(boxTypes))
	for _, bt := range boxTypes {
		cfg, err := packaging.NewBoxConfig(bt, "", nil)
		require.NoError(t, err)
		boxes = append(boxes, cfg)
	}
	s, err := packaging.NewSession(kernel.NewUUID(), o.ID(), packaging.NewSessionToken(Now()),
		"operator-1", o.TotalItems(), boxes, Now())
	require.NoError(t, err)

	require.NoError(t, sessionrepo.NewGormSessionRepository(db, NopTracker{}).Add(context.Background(), s))
	return s
}
