package commands

import (
	"context"
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/packaging"
	"packing/internal/core/ports"
	"packing/internal/pkg/errs"
)

// CreateSessionResponse identifies the session that was started.
type CreateSessionResponse struct {
	SessionID kernel.UUID
	Token     string
	CartonIDs []kernel.UUID
}

type CreateSessionCommandHandler struct {
	uowFactory  PackingUoWFactory
	catalog     ports.BoxCatalog
	invalidator ports.CacheInvalidator
	metrics     ports.PackingMetrics
}

func NewCreateSessionCommandHandler(
	uowFactory PackingUoWFactory,
	catalog ports.BoxCatalog,
	invalidator ports.CacheInvalidator,
	metrics ports.PackingMetrics,
) CreateSessionCommandHandler {
	return CreateSessionCommandHandler{
		uowFactory:  uowFactory,
		catalog:     catalog,
		invalidator: invalidator,
		metrics:     metrics,
	}
}

// Handle starts a packaging session for the order. The order row is locked
// so two terminals cannot both pass the "no session in progress" check.
// Returns a *packaging.SessionAlreadyActiveError carrying the existing token
// when the order already has a session in progress.
func (h CreateSessionCommandHandler) Handle(ctx context.Context, cmd CreateSessionCommand) (CreateSessionResponse, error) {
	if err := cmd.Validate(); err != nil {
		return CreateSessionResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateSessionResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	sessionRepo := uow.SessionRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return CreateSessionResponse{}, err
	}
	if err = o.ValidateCanStartPackaging(); err != nil {
		return CreateSessionResponse{}, err
	}

	active, err := sessionRepo.FindInProgressByOrder(ctx, o.ID())
	switch {
	case err == nil:
		return CreateSessionResponse{}, packaging.NewSessionAlreadyActiveError(active.ID(), active.Token())
	case !errors.Is(err, errs.ErrObjectNotFound):
		return CreateSessionResponse{}, err
	}

	totalItems := o.TotalItems()
	if cmd.TotalItems() != nil {
		totalItems = *cmd.TotalItems()
	}

	startedAt := now()
	session, err := packaging.NewSession(kernel.NewUUID(), o.ID(), packaging.NewSessionToken(startedAt),
		cmd.Operator(), totalItems, h.applyPresets(cmd.Boxes()), startedAt)
	if err != nil {
		return CreateSessionResponse{}, err
	}

	if err = sessionRepo.Add(ctx, session); err != nil {
		return CreateSessionResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateSessionResponse{}, err
	}

	h.invalidator.Invalidate(ctx)
	h.metrics.SessionCreated(ctx, session.TotalCartons())

	cartonIDs := make([]kernel.UUID, 0, session.TotalCartons())
	for _, c := range session.Cartons() {
		cartonIDs = append(cartonIDs, c.ID())
	}
	return CreateSessionResponse{SessionID: session.ID(), Token: session.Token(), CartonIDs: cartonIDs}, nil
}

func (h CreateSessionCommandHandler) applyPresets(boxes []packaging.BoxConfig) []packaging.BoxConfig {
	if h.catalog == nil {
		return boxes
	}
	for i, b := range boxes {
		if preset, ok := h.catalog.Preset(b.BoxType()); ok {
			boxes[i] = b.WithPreset(preset.Size, preset.EstimatedWeight)
		}
	}
	return boxes
}
