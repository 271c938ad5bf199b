package sessionrepo

import (
	"context"
	"errors"
	"fmt"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/packaging"
	"packing/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSessionRepository implements ports.SessionRepository using GORM.
type GormSessionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormSessionRepository(db *gorm.DB, tracker aggregateTracker) *GormSessionRepository {
	return &GormSessionRepository{
		db:      db,
		tracker: tracker,
	}
}

// ErrDuplicateSessionKey is returned by Add when the session id, its token or
// one of its carton barcodes is already stored.
var ErrDuplicateSessionKey = errs.NewConflictError(
	"duplicate_key", "session token or carton barcode is already in use")

// Add inserts the session with its cartons and entries. A second in-progress
// session for the same order violates InProgressIndex and is reported as a
// *packaging.SessionAlreadyActiveError naming the active session. The insert
// runs under a savepoint so the enclosing transaction stays usable.
func (r *GormSessionRepository) Add(ctx context.Context, aggregate *packaging.Session) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&dto).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.duplicateKeyError(ctx, aggregate, err)
		}
		return errs.NewBackingStoreError("add session", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormSessionRepository) duplicateKeyError(ctx context.Context, aggregate *packaging.Session, cause error) error {
	if aggregate.Status() == packaging.SessionInProgress {
		active, err := r.FindInProgressByOrder(ctx, aggregate.OrderID())
		if err == nil && !active.ID().IsEqual(aggregate.ID()) {
			return packaging.NewSessionAlreadyActiveError(active.ID(), active.Token())
		}
	}
	return errs.NewConflictErrorWithCause(ErrDuplicateSessionKey.Code, ErrDuplicateSessionKey.Reason, cause)
}

// Update writes the session row, removes the cartons and entries that are no
// longer part of the aggregate, and upserts the rest.
func (r *GormSessionRepository) Update(ctx context.Context, aggregate *packaging.Session) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&SessionDTO{ID: dto.ID}).
		Select("operator", "status", "total_items", "total_cartons", "last_box_number",
			"completed_at", "shipment_created", "shipment_id").
		Omit(clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return errs.NewBackingStoreError("update session", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("session", aggregate.ID().String())
	}

	cartonIDs := make([]uuid.UUID, 0, len(dto.Cartons))
	var entries []LedgerEntryDTO
	for _, c := range dto.Cartons {
		cartonIDs = append(cartonIDs, c.ID)
		entries = append(entries, c.Entries...)
	}
	entryIDs := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		entryIDs = append(entryIDs, e.ID)
	}

	staleEntries := db.Where("carton_id IN (?)", db.Model(&CartonDTO{}).Select("id").Where("session_id = ?", dto.ID))
	if len(entryIDs) > 0 {
		staleEntries = staleEntries.Where("id NOT IN ?", entryIDs)
	}
	if err := staleEntries.Delete(&LedgerEntryDTO{}).Error; err != nil {
		return errs.NewBackingStoreError("delete ledger entries", err)
	}

	staleCartons := db.Where("session_id = ?", dto.ID)
	if len(cartonIDs) > 0 {
		staleCartons = staleCartons.Where("id NOT IN ?", cartonIDs)
	}
	if err := staleCartons.Delete(&CartonDTO{}).Error; err != nil {
		return errs.NewBackingStoreError("delete cartons", err)
	}

	upsert := clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}
	if len(dto.Cartons) > 0 {
		if err := db.Omit(clause.Associations).Clauses(upsert).Create(&dto.Cartons).Error; err != nil {
			return errs.NewBackingStoreError("save cartons", err)
		}
	}
	if len(entries) > 0 {
		if err := db.Clauses(upsert).Create(&entries).Error; err != nil {
			return errs.NewBackingStoreError("save ledger entries", err)
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormSessionRepository) Get(ctx context.Context, id kernel.UUID) (*packaging.Session, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate locks the session row with SELECT ... FOR UPDATE.
func (r *GormSessionRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*packaging.Session, error) {
	return r.get(r.db.WithContext(ctx).Clauses(forUpdate()), id)
}

func (r *GormSessionRepository) GetByCartonForUpdate(
	ctx context.Context,
	cartonID kernel.UUID,
) (*packaging.Session, error) {
	if err := cartonID.Validate(); err != nil {
		return nil, err
	}

	var carton CartonDTO
	if err := r.db.WithContext(ctx).
		Select("id", "session_id").
		First(&carton, "id = ?", cartonID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("carton", cartonID.String())
		}
		return nil, errs.NewBackingStoreError("get carton", err)
	}

	sessionID, err := kernel.UUIDFromBytes(carton.SessionID[:])
	if err != nil {
		return nil, err
	}
	return r.GetForUpdate(ctx, sessionID)
}

// GetManyForUpdate locks the existing sessions among ids in primary key order,
// so concurrent consolidations acquire locks in the same order.
func (r *GormSessionRepository) GetManyForUpdate(
	ctx context.Context,
	ids []kernel.UUID,
) ([]*packaging.Session, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []SessionDTO
	if err := preloadCartons(r.db.WithContext(ctx)).
		Clauses(forUpdate()).
		Where("id IN ?", raw).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, errs.NewBackingStoreError("get sessions", err)
	}

	sessions := make([]*packaging.Session, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

func (r *GormSessionRepository) FindInProgressByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (*packaging.Session, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto SessionDTO
	if err := preloadCartons(r.db.WithContext(ctx)).
		Where("order_id = ? AND status = ?", orderID.Bytes(), packaging.SessionInProgress.String()).
		First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("in-progress session of order", orderID.String())
		}
		return nil, errs.NewBackingStoreError("find in-progress session", err)
	}

	return toDomain(dto)
}

// Delete removes ledger entries, cartons and the session, in that order.
func (r *GormSessionRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	cartons := db.Model(&CartonDTO{}).Select("id").Where("session_id = ?", id.Bytes())
	if err := db.Where("carton_id IN (?)", cartons).Delete(&LedgerEntryDTO{}).Error; err != nil {
		return errs.NewBackingStoreError("delete ledger entries", err)
	}
	if err := db.Where("session_id = ?", id.Bytes()).Delete(&CartonDTO{}).Error; err != nil {
		return errs.NewBackingStoreError("delete cartons", err)
	}

	result := db.Where("id = ?", id.Bytes()).Delete(&SessionDTO{})
	if result.Error != nil {
		return errs.NewBackingStoreError("delete session", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("session", id.String())
	}
	return nil
}

// MarkShipped flags the sessions with a compare-and-set update. Fewer affected
// rows than ids means another consolidation got there first.
func (r *GormSessionRepository) MarkShipped(
	ctx context.Context,
	sessionIDs []kernel.UUID,
	shipmentID kernel.UUID,
) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	raw := make([]uuid.UUID, 0, len(sessionIDs))
	for _, id := range sessionIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		raw = append(raw, id.Bytes())
	}
	if len(raw) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&SessionDTO{}).
		Where("id IN ? AND shipment_created = ?", raw, false).
		Updates(map[string]any{
			"shipment_created": true,
			"shipment_id":      shipmentID.Bytes(),
		})
	if result.Error != nil {
		return errs.NewBackingStoreError("mark sessions shipped", result.Error)
	}
	if result.RowsAffected != int64(len(raw)) {
		return errs.NewConflictError(packaging.ErrAlreadyShipped.Code,
			fmt.Sprintf("%d of %d sessions were already consolidated into a shipment",
				int64(len(raw))-result.RowsAffected, len(raw)))
	}
	return nil
}

func (r *GormSessionRepository) get(db *gorm.DB, id kernel.UUID) (*packaging.Session, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SessionDTO
	if err := preloadCartons(db).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("session", id.String())
		}
		return nil, errs.NewBackingStoreError("get session", err)
	}

	return toDomain(dto)
}

func preloadCartons(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Cartons", func(tx *gorm.DB) *gorm.DB { return tx.Order("box_number") }).
		Preload("Cartons.Entries", func(tx *gorm.DB) *gorm.DB { return tx.Order("added_at") })
}

func forUpdate() clause.Locking {
	return clause.Locking{Strength: "UPDATE"}
}
