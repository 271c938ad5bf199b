package queries

import (
	"context"

	"packing/internal/core/domain/model/packaging"
)

type GetSessionQueryHandler struct {
	sessions SessionReader
}

func NewGetSessionQueryHandler(sessions SessionReader) GetSessionQueryHandler {
	return GetSessionQueryHandler{sessions: sessions}
}

func (h GetSessionQueryHandler) Handle(ctx context.Context, query GetSessionQuery) (GetSessionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSessionQueryResponse{}, err
	}

	session, err := h.sessions.Get(ctx, query.SessionID())
	if err != nil {
		return GetSessionQueryResponse{}, err
	}

	resp := GetSessionQueryResponse{
		ID:              session.ID(),
		Token:           session.Token(),
		OrderID:         session.OrderID(),
		Operator:        session.Operator(),
		Status:          session.Status().String(),
		TotalItems:      session.TotalItems(),
		TotalCartons:    session.TotalCartons(),
		ItemsPacked:     session.ItemsPacked(),
		StartedAt:       session.StartedAt(),
		CompletedAt:     session.CompletedAt(),
		ShipmentCreated: session.ShipmentCreated(),
		ShipmentID:      session.ShipmentID(),
		Cartons:         make([]CartonView, 0, len(session.Cartons())),
	}
	for _, c := range session.Cartons() {
		resp.Cartons = append(resp.Cartons, cartonView(c))
	}
	return resp, nil
}

func cartonView(c *packaging.Carton) CartonView {
	view := CartonView{
		ID:         c.ID(),
		BoxNumber:  c.BoxNumber(),
		Barcode:    c.Barcode(),
		BoxType:    c.BoxType(),
		BoxSize:    c.BoxSize(),
		Status:     c.Status().String(),
		ItemsCount: c.ItemsCount(),
		SealedAt:   c.SealedAt(),
		SealedBy:   c.SealedBy(),
		CreatedAt:  c.CreatedAt(),
		Entries:    make([]LedgerEntryView, 0, len(c.Entries())),
	}
	if w := c.EstimatedWeight(); w != nil {
		view.EstimatedWeight = w.String()
	}
	if w := c.ActualWeight(); w != nil {
		view.ActualWeight = w.String()
	}
	for _, e := range c.Entries() {
		view.Entries = append(view.Entries, LedgerEntryView{
			ID:       e.ID(),
			LineID:   e.LineID(),
			Quantity: e.Quantity(),
			Operator: e.Operator(),
			AddedAt:  e.AddedAt(),
		})
	}
	return view
}

