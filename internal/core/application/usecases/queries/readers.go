// Package queries contains the read projections of the packing service.
//
// Projections built from aggregates (scan validation, ledger view, session
// and shipment details) read through repository ports. Listings run plain SQL
// on the connection pool, and a listing whose backing store fails logs the
// failure and returns an empty result.
package queries

import (
	"context"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/order"
	"packing/internal/core/domain/model/packaging"
	"packing/internal/core/domain/model/shipment"
)

// Repository ports narrowed to their read methods.
type (
	OrderReader interface {
		Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
		GetLines(ctx context.Context, orderID kernel.UUID) ([]*order.Line, error)
	}

	SessionReader interface {
		Get(ctx context.Context, id kernel.UUID) (*packaging.Session, error)
	}

	ShipmentReader interface {
		Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)
	}
)
