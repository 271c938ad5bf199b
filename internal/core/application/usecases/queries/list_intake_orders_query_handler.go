package queries

import (
	"context"
	"strings"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/order"
	"packing/internal/core/domain/services"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ListIntakeOrdersQueryHandler lists completed orders that are not
// packaging-deleted and have no in-progress or completed session.
type ListIntakeOrdersQueryHandler struct {
	db     *gorm.DB
	filter services.IntakeFilter
	logger *zap.Logger
}

func NewListIntakeOrdersQueryHandler(db *gorm.DB, logger *zap.Logger) ListIntakeOrdersQueryHandler {
	return ListIntakeOrdersQueryHandler{
		db:     db,
		filter: services.NewIntakeFilter(),
		logger: logger.With(zap.String("query", "list_intake_orders")),
	}
}

// Handle returns the intake queue ordered by order number. A failing backing
// store yields an empty list.
func (h ListIntakeOrdersQueryHandler) Handle(ctx context.Context, query ListIntakeOrdersQuery) ([]IntakeOrder, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.load(ctx, query)
	if err != nil {
		h.logger.Error("failed to load intake orders", zap.Error(err))
		return []IntakeOrder{}, nil
	}

	eligible := h.filter.Filter(orders, nil)
	result := make([]IntakeOrder, 0, len(eligible))
	for _, o := range eligible {
		result = append(result, IntakeOrder{
			ID:           o.ID(),
			OrderNumber:  o.Number(),
			CustomerName: o.CustomerName(),
			TotalItems:   o.TotalItems(),
		})
	}
	return result, nil
}

func (h ListIntakeOrdersQueryHandler) load(ctx context.Context, query ListIntakeOrdersQuery) ([]*order.Order, error) {
	blocking := make([]string, 0, len(services.IntakeBlockingStatuses))
	for _, s := range services.IntakeBlockingStatuses {
		blocking = append(blocking, s.String())
	}

	var sql strings.Builder
	args := []any{order.Completed.String(), false, blocking}
	sql.WriteString(`
		SELECT o.id, o.order_number, o.customer_name, o.total_items, o.order_status, o.packaging_deleted
		FROM orders o
		WHERE o.order_status = ?
			AND o.packaging_deleted = ?
			AND NOT EXISTS (
				SELECT 1 FROM packaging_sessions s
				WHERE s.order_id = o.id AND s.status IN ?
			)`)
	if query.Search() != "" {
		sql.WriteString(` AND (LOWER(o.order_number) LIKE ? OR LOWER(o.customer_name) LIKE ?)`)
		pattern := likePattern(query.Search())
		args = append(args, pattern, pattern)
	}
	sql.WriteString(` ORDER BY o.order_number LIMIT ?`)
	args = append(args, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(sql.String(), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]*order.Order, 0)
	for rows.Next() {
		var (
			id                       uuid.UUID
			number, customer, status string
			totalItems               int
			deleted                  bool
		)
		if err = rows.Scan(&id, &number, &customer, &totalItems, &status, &deleted); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		o, restoreErr := order.RestoreOrder(orderID, number, customer, totalItems, order.Status(status), deleted)
		if restoreErr != nil {
			return nil, restoreErr
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}
