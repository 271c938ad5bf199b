package ports

import (
	"context"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/shipment"
)

// ShipmentRepository persists shipment records with their session links and
// carton references.
type ShipmentRepository interface {
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists status and dispatch configuration. Links and carton
	// references never change after Add.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	GetForUpdate(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)
}
