// Package orderrepo maps orders and their picked lines to the orders and
// order_lines tables. The order subsystem owns these rows; this service only
// writes the packaging_deleted flag.
package orderrepo

import (
	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the orders row.
type OrderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber      string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	CustomerName     string    `gorm:"type:varchar(255);not null"`
	TotalItems       int       `gorm:"not null"`
	OrderStatus      string    `gorm:"type:varchar(32);not null;index"`
	PackagingDeleted bool      `gorm:"not null;default:false"`
	Lines            []LineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO is one picklist line of an order.
type LineDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;not null;index"`
	SKU            string    `gorm:"column:sku;type:varchar(64);not null"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Barcode        string    `gorm:"type:varchar(128);not null;default:''"`
	QuantityPicked int       `gorm:"not null;default:0"`
}

func (LineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(o *order.Order, lines []*order.Line) OrderDTO {
	dto := OrderDTO{
		ID:               o.ID().Bytes(),
		OrderNumber:      o.Number(),
		CustomerName:     o.CustomerName(),
		TotalItems:       o.TotalItems(),
		OrderStatus:      string(o.Status()),
		PackagingDeleted: o.IsPackagingDeleted(),
		Lines:            make([]LineDTO, 0, len(lines)),
	}
	for _, l := range lines {
		dto.Lines = append(dto.Lines, lineFromDomain(l))
	}
	return dto
}

func lineFromDomain(l *order.Line) LineDTO {
	return LineDTO{
		ID:             l.ID().Bytes(),
		OrderID:        l.OrderID().Bytes(),
		SKU:            l.SKU(),
		Name:           l.Name(),
		Barcode:        l.Barcode(),
		QuantityPicked: l.QuantityPicked(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return order.RestoreOrder(id, dto.OrderNumber, dto.CustomerName, dto.TotalItems,
		order.Status(dto.OrderStatus), dto.PackagingDeleted)
}

func lineToDomain(dto LineDTO) (*order.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	return order.NewLine(id, orderID, dto.SKU, dto.Name, dto.Barcode, dto.QuantityPicked)
}
