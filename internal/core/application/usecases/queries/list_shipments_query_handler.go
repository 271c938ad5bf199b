package queries

import (
	"context"
	"strings"
	"time"

	"packing/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ListShipmentsQueryHandler struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewListShipmentsQueryHandler(db *gorm.DB, logger *zap.Logger) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{
		db:     db,
		logger: logger.With(zap.String("query", "list_shipments")),
	}
}

// Handle returns shipment summaries newest first. A failing backing store
// yields an empty list.
func (h ListShipmentsQueryHandler) Handle(ctx context.Context, query ListShipmentsQuery) ([]ShipmentSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments, err := h.load(ctx, query)
	if err != nil {
		h.logger.Error("failed to list shipments", zap.Error(err), zap.String("status", query.Status()))
		return []ShipmentSummary{}, nil
	}
	return shipments, nil
}

func (h ListShipmentsQueryHandler) load(ctx context.Context, query ListShipmentsQuery) ([]ShipmentSummary, error) {
	var sql strings.Builder
	args := make([]any, 0, 2)
	sql.WriteString(`
		SELECT id, shipment_number, order_type, status, total_cartons, destination, created_at
		FROM shipments`)
	if query.Status() != "" {
		sql.WriteString(` WHERE status = ?`)
		args = append(args, query.Status())
	}
	sql.WriteString(` ORDER BY created_at DESC, shipment_number DESC LIMIT ?`)
	args = append(args, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(sql.String(), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]ShipmentSummary, 0)
	for rows.Next() {
		var (
			id   uuid.UUID
			item ShipmentSummary
		)
		if err = rows.Scan(
			&id,
			&item.Number,
			&item.OrderType,
			&item.Status,
			&item.TotalCartons,
			&item.Destination,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}
		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		item.CreatedAt = item.CreatedAt.In(time.UTC)
		result = append(result, item)
	}

	return result, rows.Err()
}
