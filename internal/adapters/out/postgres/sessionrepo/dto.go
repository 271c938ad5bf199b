// Package sessionrepo persists the packaging session aggregate: the session
// row, its cartons and the ledger entries inside each carton.
package sessionrepo

import (
	"time"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/packaging"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InProgressIndex is the partial unique index that allows one in-progress
// session per order.
const InProgressIndex = "ux_packaging_sessions_order_in_progress"

type SessionDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	SessionToken    string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	OrderID         uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:ux_packaging_sessions_order_in_progress,where:status = 'in_progress'"`
	Operator        string    `gorm:"type:varchar(128);not null"`
	Status          string    `gorm:"type:varchar(16);not null;index"`
	TotalItems      int       `gorm:"not null"`
	TotalCartons    int       `gorm:"not null"`
	LastBoxNumber   int       `gorm:"not null"`
	StartedAt       time.Time `gorm:"not null"`
	CompletedAt     *time.Time
	ShipmentCreated bool        `gorm:"not null;default:false"`
	ShipmentID      *uuid.UUID  `gorm:"type:uuid;index"`
	Cartons         []CartonDTO `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
}

func (SessionDTO) TableName() string {
	return "packaging_sessions"
}

type CartonDTO struct {
	ID              uuid.UUID           `gorm:"type:uuid;primaryKey"`
	SessionID       uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:ux_cartons_session_box"`
	BoxNumber       int                 `gorm:"not null;uniqueIndex:ux_cartons_session_box"`
	Barcode         string              `gorm:"type:varchar(64);not null;uniqueIndex"`
	BoxType         string              `gorm:"type:varchar(64);not null"`
	BoxSize         string              `gorm:"type:varchar(64);not null;default:''"`
	EstimatedWeight decimal.NullDecimal `gorm:"type:numeric(10,3)"`
	ActualWeight    decimal.NullDecimal `gorm:"type:numeric(10,3)"`
	Status          string              `gorm:"type:varchar(16);not null"`
	ItemsCount      int                 `gorm:"not null;default:0"`
	SealedAt        *time.Time
	SealedBy        string           `gorm:"type:varchar(128);not null;default:''"`
	CreatedAt       time.Time        `gorm:"not null;autoCreateTime:false"`
	Entries         []LedgerEntryDTO `gorm:"foreignKey:CartonID;constraint:OnDelete:CASCADE"`
}

func (CartonDTO) TableName() string {
	return "cartons"
}

type LedgerEntryDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	CartonID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_ledger_entries_carton_line"`
	LineID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:ux_ledger_entries_carton_line"`
	Quantity int       `gorm:"not null"`
	Operator string    `gorm:"type:varchar(128);not null"`
	AddedAt  time.Time `gorm:"not null"`
}

func (LedgerEntryDTO) TableName() string {
	return "ledger_entries"
}

func fromDomain(s *packaging.Session) SessionDTO {
	dto := SessionDTO{
		ID:              s.ID().Bytes(),
		SessionToken:    s.Token(),
		OrderID:         s.OrderID().Bytes(),
		Operator:        s.Operator(),
		Status:          s.Status().String(),
		TotalItems:      s.TotalItems(),
		TotalCartons:    s.TotalCartons(),
		LastBoxNumber:   s.LastBoxNumber(),
		StartedAt:       s.StartedAt(),
		CompletedAt:     s.CompletedAt(),
		ShipmentCreated: s.ShipmentCreated(),
	}
	if id := s.ShipmentID(); id != nil {
		raw := id.Bytes()
		dto.ShipmentID = &raw
	}

	cartons := s.Cartons()
	dto.Cartons = make([]CartonDTO, 0, len(cartons))
	for _, c := range cartons {
		dto.Cartons = append(dto.Cartons, cartonFromDomain(c))
	}
	return dto
}

func cartonFromDomain(c *packaging.Carton) CartonDTO {
	entries := c.Entries()
	dto := CartonDTO{
		ID:              c.ID().Bytes(),
		SessionID:       c.SessionID().Bytes(),
		BoxNumber:       c.BoxNumber(),
		Barcode:         c.Barcode(),
		BoxType:         c.BoxType(),
		BoxSize:         c.BoxSize(),
		EstimatedWeight: weightToNull(c.EstimatedWeight()),
		ActualWeight:    weightToNull(c.ActualWeight()),
		Status:          c.Status().String(),
		ItemsCount:      c.ItemsCount(),
		SealedAt:        c.SealedAt(),
		SealedBy:        c.SealedBy(),
		CreatedAt:       c.CreatedAt(),
		Entries:         make([]LedgerEntryDTO, 0, len(entries)),
	}
	for _, e := range entries {
		dto.Entries = append(dto.Entries, LedgerEntryDTO{
			ID:       e.ID().Bytes(),
			CartonID: e.CartonID().Bytes(),
			LineID:   e.LineID().Bytes(),
			Quantity: e.Quantity(),
			Operator: e.Operator(),
			AddedAt:  e.AddedAt(),
		})
	}
	return dto
}

func toDomain(dto SessionDTO) (*packaging.Session, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	status, err := packaging.ParseSessionStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var shipmentID *kernel.UUID
	if dto.ShipmentID != nil {
		sID, shipmentErr := kernel.UUIDFromBytes((*dto.ShipmentID)[:])
		if shipmentErr != nil {
			return nil, shipmentErr
		}
		shipmentID = &sID
	}

	cartons := make([]*packaging.Carton, 0, len(dto.Cartons))
	for _, cDto := range dto.Cartons {
		c, cartonErr := cartonToDomain(cDto)
		if cartonErr != nil {
			return nil, cartonErr
		}
		cartons = append(cartons, c)
	}

	return packaging.RestoreSession(packaging.SessionState{
		ID:              id,
		OrderID:         orderID,
		Token:           dto.SessionToken,
		Operator:        dto.Operator,
		Status:          status,
		TotalItems:      dto.TotalItems,
		TotalCartons:    dto.TotalCartons,
		LastBoxNumber:   dto.LastBoxNumber,
		StartedAt:       dto.StartedAt,
		CompletedAt:     dto.CompletedAt,
		ShipmentCreated: dto.ShipmentCreated,
		ShipmentID:      shipmentID,
		Cartons:         cartons,
	})
}

func cartonToDomain(dto CartonDTO) (*packaging.Carton, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	sessionID, err := kernel.UUIDFromBytes(dto.SessionID[:])
	if err != nil {
		return nil, err
	}
	status, err := packaging.ParseCartonStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	estimated, err := nullToWeight(dto.EstimatedWeight)
	if err != nil {
		return nil, err
	}
	actual, err := nullToWeight(dto.ActualWeight)
	if err != nil {
		return nil, err
	}

	entries := make([]*packaging.LedgerEntry, 0, len(dto.Entries))
	for _, eDto := range dto.Entries {
		e, entryErr := entryToDomain(eDto)
		if entryErr != nil {
			return nil, entryErr
		}
		entries = append(entries, e)
	}

	return packaging.RestoreCarton(packaging.CartonState{
		ID:              id,
		SessionID:       sessionID,
		BoxNumber:       dto.BoxNumber,
		Barcode:         dto.Barcode,
		BoxType:         dto.BoxType,
		BoxSize:         dto.BoxSize,
		EstimatedWeight: estimated,
		ActualWeight:    actual,
		Status:          status,
		SealedAt:        dto.SealedAt,
		SealedBy:        dto.SealedBy,
		CreatedAt:       dto.CreatedAt,
		Entries:         entries,
	})
}

func entryToDomain(dto LedgerEntryDTO) (*packaging.LedgerEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	cartonID, err := kernel.UUIDFromBytes(dto.CartonID[:])
	if err != nil {
		return nil, err
	}
	lineID, err := kernel.UUIDFromBytes(dto.LineID[:])
	if err != nil {
		return nil, err
	}
	return packaging.RestoreLedgerEntry(id, cartonID, lineID, dto.Quantity, dto.Operator, dto.AddedAt)
}

func weightToNull(w *kernel.Weight) decimal.NullDecimal {
	if w == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(w.Kilograms())
}

func nullToWeight(v decimal.NullDecimal) (*kernel.Weight, error) {
	if !v.Valid {
		return nil, nil //nolint:nilnil // absent weight
	}
	w, err := kernel.NewWeight(v.Decimal)
	if err != nil {
		return nil, err
	}
	return &w, nil
}
