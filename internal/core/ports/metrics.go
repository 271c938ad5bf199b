package ports

import "context"

// PackingMetrics records business events of the packing service.
type PackingMetrics interface {
	SessionCreated(ctx context.Context, cartons int)
	SessionCompleted(ctx context.Context)
	SessionDeleted(ctx context.Context)
	ItemsPacked(ctx context.Context, quantity int)
	CartonSealed(ctx context.Context)
	ShipmentConsolidated(ctx context.Context, orderType string, cartons int)
}
