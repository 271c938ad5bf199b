package shipmentrepo

import (
	"context"
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/shipment"
	"packing/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormShipmentRepository implements ports.ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("shipment_exists",
				"a shipment with this number or session already exists", err)
		}
		return errs.NewBackingStoreError("add shipment", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the status and dispatch configuration. Session links and
// carton references never change after consolidation.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{ID: dto.ID}).
		Select("status", "dispatch_type", "loading_strategy",
			"truck_plate_number", "truck_driver_name", "truck_driver_phone",
			"courier_company", "courier_tracking_number", "courier_contact_phone",
			"instructions", "dispatch_time", "configured_at", "updated_at").
		Omit(clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return errs.NewBackingStoreError("update shipment", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipment", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate locks the shipment row with SELECT ... FOR UPDATE.
func (r *GormShipmentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormShipmentRepository) get(db *gorm.DB, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := db.
		Preload("Sessions", func(tx *gorm.DB) *gorm.DB { return tx.Order("position") }).
		Preload("Cartons", func(tx *gorm.DB) *gorm.DB { return tx.Order("position") }).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, errs.NewBackingStoreError("get shipment", err)
	}

	return toDomain(dto)
}
