package ports

import (
	"context"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/order"
)

// OrderRepository reads orders and their picked lines, and persists the one
// field this service owns on an order: the packaging-deleted flag.
type OrderRepository interface {
	// Add stores an order with its lines. The order subsystem normally owns
	// these rows; Add exists for seeding and tests.
	Add(ctx context.Context, aggregate *order.Order, lines []*order.Line) error

	// Update persists the packaging-deleted flag.
	Update(ctx context.Context, aggregate *order.Order) error

	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate reads the order and locks its row until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	GetLines(ctx context.Context, orderID kernel.UUID) ([]*order.Line, error)

	GetLine(ctx context.Context, lineID kernel.UUID) (*order.Line, error)
}
