package queries

import (
	"context"

	"packing/internal/core/ports"
)

// GetLedgerViewQueryHandler serves ledger views from the result cache and
// builds them from the session and the order's lines on a miss.
type GetLedgerViewQueryHandler struct {
	orders   OrderReader
	sessions SessionReader
	cache    ports.LedgerViewCache
}

func NewGetLedgerViewQueryHandler(
	orders OrderReader,
	sessions SessionReader,
	cache ports.LedgerViewCache,
) GetLedgerViewQueryHandler {
	return GetLedgerViewQueryHandler{
		orders:   orders,
		sessions: sessions,
		cache:    cache,
	}
}

func (h GetLedgerViewQueryHandler) Handle(ctx context.Context, query GetLedgerViewQuery) (ports.LedgerView, error) {
	if err := query.Validate(); err != nil {
		return ports.LedgerView{}, err
	}

	key := ports.LedgerViewKey{OrderID: query.OrderID(), SessionID: query.SessionID()}
	if view, ok := h.cache.Get(key); ok {
		return view, nil
	}
	generation := h.cache.Generation()

	session, err := loadSessionOfOrder(ctx, h.sessions, query.SessionID(), query.OrderID())
	if err != nil {
		return ports.LedgerView{}, err
	}
	lines, err := h.orders.GetLines(ctx, query.OrderID())
	if err != nil {
		return ports.LedgerView{}, err
	}

	view := ports.LedgerView{
		SessionID:    session.ID(),
		SessionToken: session.Token(),
		OrderID:      session.OrderID(),
		Lines:        make([]ports.LedgerLine, 0, len(lines)),
		TotalPacked:  session.ItemsPacked(),
		TotalCartons: len(session.Cartons()),
		SealedCount:  len(session.SealedCartons()),
	}
	for _, l := range lines {
		packed := session.PackedQuantity(l.ID())
		view.Lines = append(view.Lines, ports.LedgerLine{
			LineID:         l.ID(),
			SKU:            l.SKU(),
			Name:           l.Name(),
			Barcode:        l.Barcode(),
			QuantityPicked: l.QuantityPicked(),
			PackedQuantity: packed,
			Remaining:      max(l.QuantityPicked()-packed, 0),
		})
		view.TotalPicked += l.QuantityPicked()
	}

	h.cache.SetIfGeneration(key, view, generation)
	return view, nil
}
