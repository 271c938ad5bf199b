// Package shipmentrepo persists shipment records with their session links
// and carton references.
package shipmentrepo

import (
	"time"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

type ShipmentDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ShipmentNumber  string     `gorm:"type:varchar(32);not null;uniqueIndex"`
	OrderType       string     `gorm:"type:varchar(16);not null"`
	Status          string     `gorm:"type:varchar(32);not null;index"`
	TotalCartons    int        `gorm:"not null"`
	Destination     string     `gorm:"type:varchar(255);not null"`
	DispatchType    string     `gorm:"type:varchar(16);not null;default:''"`
	LoadingStrategy string     `gorm:"type:varchar(16);not null;default:''"`
	Truck           TruckDTO   `gorm:"embedded;embeddedPrefix:truck_"`
	Courier         CourierDTO `gorm:"embedded;embeddedPrefix:courier_"`
	Instructions    string     `gorm:"type:text;not null;default:''"`
	DispatchTime    *time.Time
	ConfiguredAt    *time.Time
	CreatedAt       time.Time            `gorm:"not null;autoCreateTime:false"`
	UpdatedAt       time.Time            `gorm:"not null;autoUpdateTime:false"`
	Sessions        []ShipmentSessionDTO `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
	Cartons         []ShipmentCartonDTO  `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
}

func (ShipmentDTO) TableName() string {
	return "shipments"
}

type TruckDTO struct {
	PlateNumber string `gorm:"type:varchar(32);not null;default:''"`
	DriverName  string `gorm:"type:varchar(128);not null;default:''"`
	DriverPhone string `gorm:"type:varchar(32);not null;default:''"`
}

type CourierDTO struct {
	Company        string `gorm:"type:varchar(128);not null;default:''"`
	TrackingNumber string `gorm:"type:varchar(64);not null;default:''"`
	ContactPhone   string `gorm:"type:varchar(32);not null;default:''"`
}

// ShipmentSessionDTO links a consolidated session to its shipment. A session
// appears in at most one shipment.
type ShipmentSessionDTO struct {
	ShipmentID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	SessionID    uuid.UUID `gorm:"type:uuid;primaryKey;uniqueIndex"`
	OrderID      uuid.UUID `gorm:"type:uuid;not null"`
	OrderNumber  string    `gorm:"type:varchar(64);not null"`
	CustomerName string    `gorm:"type:varchar(255);not null"`
	CartonCount  int       `gorm:"not null"`
	Position     int       `gorm:"not null"`
}

func (ShipmentSessionDTO) TableName() string {
	return "shipment_sessions"
}

type ShipmentCartonDTO struct {
	ShipmentID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	CartonID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	SessionID    uuid.UUID `gorm:"type:uuid;not null"`
	Barcode      string    `gorm:"type:varchar(64);not null"`
	CustomerName string    `gorm:"type:varchar(255);not null"`
	IsLoaded     bool      `gorm:"not null;default:false"`
	Position     int       `gorm:"not null"`
}

func (ShipmentCartonDTO) TableName() string {
	return "shipment_cartons"
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	dto := ShipmentDTO{
		ID:             s.ID().Bytes(),
		ShipmentNumber: s.Number(),
		OrderType:      s.OrderType().String(),
		Status:         s.Status().String(),
		TotalCartons:   s.TotalCartons(),
		Destination:    s.Destination(),
		CreatedAt:      s.CreatedAt(),
		UpdatedAt:      s.UpdatedAt(),
	}
	applyConfiguration(&dto, s.Configuration())

	for i, l := range s.Links() {
		dto.Sessions = append(dto.Sessions, ShipmentSessionDTO{
			ShipmentID:   dto.ID,
			SessionID:    l.SessionID.Bytes(),
			OrderID:      l.OrderID.Bytes(),
			OrderNumber:  l.OrderNumber,
			CustomerName: l.CustomerName,
			CartonCount:  l.CartonCount,
			Position:     i,
		})
	}
	for i, c := range s.Cartons() {
		dto.Cartons = append(dto.Cartons, ShipmentCartonDTO{
			ShipmentID:   dto.ID,
			CartonID:     c.CartonID.Bytes(),
			SessionID:    c.SessionID.Bytes(),
			Barcode:      c.Barcode,
			CustomerName: c.CustomerName,
			IsLoaded:     c.IsLoaded,
			Position:     i,
		})
	}
	return dto
}

func applyConfiguration(dto *ShipmentDTO, cfg *shipment.Configuration) {
	if cfg == nil {
		return
	}
	dto.DispatchType = cfg.DispatchType.String()
	dto.LoadingStrategy = cfg.LoadingStrategy.OrDefault().String()
	dto.Instructions = cfg.Instructions
	dto.DispatchTime = cfg.DispatchTime
	configuredAt := cfg.ConfiguredAt
	dto.ConfiguredAt = &configuredAt
	if cfg.Truck != nil {
		dto.Truck = TruckDTO{
			PlateNumber: cfg.Truck.PlateNumber,
			DriverName:  cfg.Truck.DriverName,
			DriverPhone: cfg.Truck.DriverPhone,
		}
	}
	if cfg.Courier != nil {
		dto.Courier = CourierDTO{
			Company:        cfg.Courier.Company,
			TrackingNumber: cfg.Courier.TrackingNumber,
			ContactPhone:   cfg.Courier.ContactPhone,
		}
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderType, err := shipment.ParseOrderType(dto.OrderType)
	if err != nil {
		return nil, err
	}
	status, err := shipment.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	cfg, err := configurationToDomain(dto)
	if err != nil {
		return nil, err
	}

	links := make([]shipment.SessionLink, 0, len(dto.Sessions))
	for _, l := range dto.Sessions {
		sessionID, linkErr := kernel.UUIDFromBytes(l.SessionID[:])
		if linkErr != nil {
			return nil, linkErr
		}
		orderID, linkErr := kernel.UUIDFromBytes(l.OrderID[:])
		if linkErr != nil {
			return nil, linkErr
		}
		links = append(links, shipment.SessionLink{
			SessionID:    sessionID,
			OrderID:      orderID,
			OrderNumber:  l.OrderNumber,
			CustomerName: l.CustomerName,
			CartonCount:  l.CartonCount,
		})
	}

	cartons := make([]shipment.CartonRef, 0, len(dto.Cartons))
	for _, c := range dto.Cartons {
		cartonID, refErr := kernel.UUIDFromBytes(c.CartonID[:])
		if refErr != nil {
			return nil, refErr
		}
		sessionID, refErr := kernel.UUIDFromBytes(c.SessionID[:])
		if refErr != nil {
			return nil, refErr
		}
		cartons = append(cartons, shipment.CartonRef{
			CartonID:     cartonID,
			SessionID:    sessionID,
			Barcode:      c.Barcode,
			CustomerName: c.CustomerName,
			IsLoaded:     c.IsLoaded,
		})
	}

	return shipment.RestoreShipment(shipment.ShipmentState{
		ID:            id,
		Number:        dto.ShipmentNumber,
		OrderType:     orderType,
		Status:        status,
		Destination:   dto.Destination,
		Links:         links,
		Cartons:       cartons,
		Configuration: cfg,
		CreatedAt:     dto.CreatedAt,
		UpdatedAt:     dto.UpdatedAt,
	})
}

func configurationToDomain(dto ShipmentDTO) (*shipment.Configuration, error) {
	if dto.DispatchType == "" || dto.ConfiguredAt == nil {
		return nil, nil //nolint:nilnil // not configured yet
	}
	dispatchType, err := shipment.ParseDispatchType(dto.DispatchType)
	if err != nil {
		return nil, err
	}
	strategy, err := shipment.ParseLoadingStrategy(dto.LoadingStrategy)
	if err != nil {
		return nil, err
	}

	cfg := &shipment.Configuration{
		DispatchType:    dispatchType,
		LoadingStrategy: strategy,
		Instructions:    dto.Instructions,
		DispatchTime:    dto.DispatchTime,
		ConfiguredAt:    *dto.ConfiguredAt,
	}
	switch dispatchType {
	case shipment.Truck:
		cfg.Truck = &shipment.TruckDetails{
			PlateNumber: dto.Truck.PlateNumber,
			DriverName:  dto.Truck.DriverName,
			DriverPhone: dto.Truck.DriverPhone,
		}
	case shipment.Courier:
		cfg.Courier = &shipment.CourierDetails{
			Company:        dto.Courier.Company,
			TrackingNumber: dto.Courier.TrackingNumber,
			ContactPhone:   dto.Courier.ContactPhone,
		}
	}
	return cfg, nil
}
