package commands

import (
	"context"
	"errors"
	"time"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/services"
	"packing/internal/core/ports"
	"packing/internal/pkg/errs"
)

const DefaultConsolidationTimeout = 10 * time.Second

// ConsolidateShipmentResponse identifies the created shipment record.
type ConsolidateShipmentResponse struct {
	ShipmentID     kernel.UUID
	ShipmentNumber string
	TotalCartons   int
	Destination    string
}

type ConsolidateShipmentCommandHandler struct {
	uowFactory   ShipmentUoWFactory
	consolidator services.Consolidator
	invalidator  ports.CacheInvalidator
	metrics      ports.PackingMetrics
	timeout      time.Duration
}

// NewConsolidateShipmentCommandHandler creates the handler. A non-positive
// timeout falls back to DefaultConsolidationTimeout.
func NewConsolidateShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	invalidator ports.CacheInvalidator,
	metrics ports.PackingMetrics,
	timeout time.Duration,
) ConsolidateShipmentCommandHandler {
	if timeout <= 0 {
		timeout = DefaultConsolidationTimeout
	}
	return ConsolidateShipmentCommandHandler{
		uowFactory:   uowFactory,
		consolidator: services.NewConsolidator(),
		invalidator:  invalidator,
		metrics:      metrics,
		timeout:      timeout,
	}
}

// Handle consolidates the sealed cartons of the requested sessions into one
// draft shipment. Sessions are locked for the whole transaction and flagged
// with a compare-and-set update, so a session ends up in at most one
// shipment even under concurrent requests. The call is bounded by the
// handler timeout and fails with a Timeout error when it is exceeded.
func (h ConsolidateShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd ConsolidateShipmentCommand,
) (ConsolidateShipmentResponse, error) {
	if err := cmd.Validate(); err != nil {
		return ConsolidateShipmentResponse{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	resp, err := h.consolidate(ctx, cmd)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return ConsolidateShipmentResponse{}, errs.NewTimeoutError("consolidate shipment", err)
		}
		return ConsolidateShipmentResponse{}, err
	}
	return resp, nil
}

func (h ConsolidateShipmentCommandHandler) consolidate(
	ctx context.Context,
	cmd ConsolidateShipmentCommand,
) (ConsolidateShipmentResponse, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ConsolidateShipmentResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(context.WithoutCancel(ctx))
	}()

	sessionRepo := uow.SessionRepository()
	orderRepo := uow.OrderRepository()
	shipmentRepo := uow.ShipmentRepository()

	sessions, err := sessionRepo.GetManyForUpdate(ctx, cmd.SessionIDs())
	if err != nil {
		return ConsolidateShipmentResponse{}, err
	}

	found := make([]services.SessionWithOrder, 0, len(sessions))
	for _, session := range sessions {
		o, err := orderRepo.Get(ctx, session.OrderID())
		if err != nil {
			return ConsolidateShipmentResponse{}, err
		}
		found = append(found, services.SessionWithOrder{Session: session, Order: o})
	}

	created, err := h.consolidator.Consolidate(kernel.NewUUID(), cmd.OrderType(), cmd.SessionIDs(), found, now())
	if err != nil {
		return ConsolidateShipmentResponse{}, err
	}

	if err = shipmentRepo.Add(ctx, created); err != nil {
		return ConsolidateShipmentResponse{}, err
	}

	sessionIDs := make([]kernel.UUID, 0, len(sessions))
	for _, session := range sessions {
		sessionIDs = append(sessionIDs, session.ID())
	}
	if err = sessionRepo.MarkShipped(ctx, sessionIDs, created.ID()); err != nil {
		return ConsolidateShipmentResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ConsolidateShipmentResponse{}, err
	}

	h.invalidator.Invalidate(ctx)
	h.metrics.ShipmentConsolidated(ctx, created.OrderType().String(), created.TotalCartons())

	return ConsolidateShipmentResponse{
		ShipmentID:     created.ID(),
		ShipmentNumber: created.Number(),
		TotalCartons:   created.TotalCartons(),
		Destination:    created.Destination(),
	}, nil
}
