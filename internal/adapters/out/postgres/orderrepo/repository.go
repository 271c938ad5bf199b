package orderrepo

import (
	"context"
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/order"
	"packing/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves an order together with its lines.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order, lines []*order.Line) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return err
		}
		if !l.OrderID().IsEqual(aggregate.ID()) {
			return errs.NewValueIsInvalidError("order line " + l.ID().String())
		}
	}

	dto := fromDomain(aggregate, lines)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewBackingStoreError("add order", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the packaging-deleted flag, the only order column owned by
// the packing service.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Update("packaging_deleted", aggregate.IsPackagingDeleted())
	if result.Error != nil {
		return errs.NewBackingStoreError("update order", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate reads the order with SELECT ... FOR UPDATE.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormOrderRepository) get(db *gorm.DB, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, errs.NewBackingStoreError("get order", err)
	}

	return toDomain(dto)
}

// GetLines returns the lines of an order ordered by SKU.
func (r *GormOrderRepository) GetLines(ctx context.Context, orderID kernel.UUID) ([]*order.Line, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LineDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("sku").
		Find(&dtos).Error; err != nil {
		return nil, errs.NewBackingStoreError("get order lines", err)
	}

	lines := make([]*order.Line, 0, len(dtos))
	for _, dto := range dtos {
		l, err := lineToDomain(dto)
		if err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, nil
}

func (r *GormOrderRepository) GetLine(ctx context.Context, lineID kernel.UUID) (*order.Line, error) {
	if err := lineID.Validate(); err != nil {
		return nil, err
	}

	var dto LineDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", lineID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order line", lineID.String())
		}
		return nil, errs.NewBackingStoreError("get order line", err)
	}

	return lineToDomain(dto)
}
