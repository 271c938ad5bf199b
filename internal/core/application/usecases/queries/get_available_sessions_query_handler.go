package queries

import (
	"context"
	"database/sql"
	"time"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/packaging"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type GetAvailableSessionsQueryHandler struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewGetAvailableSessionsQueryHandler(db *gorm.DB, logger *zap.Logger) GetAvailableSessionsQueryHandler {
	return GetAvailableSessionsQueryHandler{
		db:     db,
		logger: logger.With(zap.String("query", "get_available_sessions")),
	}
}

// Handle returns the sessions oldest completion first. A failing backing
// store yields an empty list.
func (h GetAvailableSessionsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableSessionsQuery,
) ([]AvailableSession, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sessions, err := h.load(ctx)
	if err != nil {
		h.logger.Error("failed to load available sessions", zap.Error(err))
		return []AvailableSession{}, nil
	}
	return sessions, nil
}

func (h GetAvailableSessionsQueryHandler) load(ctx context.Context) ([]AvailableSession, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.session_token,
			s.order_id,
			o.order_number,
			o.customer_name,
			s.total_cartons,
			(SELECT COUNT(*) FROM cartons c WHERE c.session_id = s.id AND c.status = ?) AS sealed_cartons,
			s.completed_at
		FROM packaging_sessions s
		JOIN orders o ON o.id = s.order_id
		WHERE s.status = ? AND s.shipment_created = ?
		ORDER BY s.completed_at, s.session_token
	`, packaging.CartonSealed.String(), packaging.SessionCompleted.String(), false).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]AvailableSession, 0)
	for rows.Next() {
		var (
			sessionID, orderID uuid.UUID
			completedAt        sql.NullTime
			item               AvailableSession
		)
		if err = rows.Scan(
			&sessionID,
			&item.SessionToken,
			&orderID,
			&item.OrderNumber,
			&item.CustomerName,
			&item.TotalCartons,
			&item.SealedCartons,
			&completedAt,
		); err != nil {
			return nil, err
		}

		if item.SessionID, err = kernel.UUIDFromBytes(sessionID[:]); err != nil {
			return nil, err
		}
		if item.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if completedAt.Valid {
			at := completedAt.Time.In(time.UTC)
			item.CompletedAt = &at
		}
		result = append(result, item)
	}

	return result, rows.Err()
}
