package http

import (
	"net/http"

	"packing/internal/core/application/usecases/commands"
	"packing/internal/core/application/usecases/queries"
	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/packaging"
	"packing/internal/core/domain/model/shipment"
	"packing/internal/generated/servers"
	"packing/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

var _ servers.ServerInterface = (*Server)(nil)

// CommandHandlers groups the mutating use cases served over HTTP.
type CommandHandlers struct {
	CreateSession       commands.CreateSessionCommandHandler
	CompleteSession     commands.CompleteSessionCommandHandler
	DeleteSession       commands.DeleteSessionCommandHandler
	RestoreDeletedOrder commands.RestoreDeletedOrderCommandHandler
	AddCarton           commands.AddCartonCommandHandler
	OpenNextCarton      commands.OpenNextCartonCommandHandler
	DeleteCarton        commands.DeleteCartonCommandHandler
	SealCarton          commands.SealCartonCommandHandler
	ReopenCarton        commands.ReopenCartonCommandHandler
	AddItemToCarton     commands.AddItemToCartonCommandHandler
	RemoveItem          commands.RemoveItemFromCartonCommandHandler
	ConsolidateShipment commands.ConsolidateShipmentCommandHandler
	ConfigureShipment   commands.ConfigureShipmentCommandHandler
}

// QueryHandlers groups the read projections served over HTTP.
type QueryHandlers struct {
	ListIntakeOrders     queries.ListIntakeOrdersQueryHandler
	ValidateScan         queries.ValidateScanQueryHandler
	GetLedgerView        queries.GetLedgerViewQueryHandler
	GetSession           queries.GetSessionQueryHandler
	GetAvailableSessions queries.GetAvailableSessionsQueryHandler
	ListShipments        queries.ListShipmentsQueryHandler
	GetShipmentDetails   queries.GetShipmentDetailsQueryHandler
}

// Server implements the generated ServerInterface on top of the use cases.
// Failures are returned as errors and rendered by ErrorHandler.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
}

func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
	}
}

// ListIntakeOrders handles GET /api/v1/orders/intake.
func (s *Server) ListIntakeOrders(ctx echo.Context, params servers.ListIntakeOrdersParams) error {
	query, err := queries.NewListIntakeOrdersQuery(deref(params.Search), deref(params.Limit))
	if err != nil {
		return err
	}

	orders, err := s.queries.ListIntakeOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.IntakeOrder, len(orders))
	for i, o := range orders {
		response[i] = servers.IntakeOrder{
			Id:           o.ID.Bytes(),
			OrderNumber:  o.OrderNumber,
			CustomerName: o.CustomerName,
			TotalItems:   o.TotalItems,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// RestoreDeletedOrder handles POST /api/v1/orders/{orderId}/restore.
func (s *Server) RestoreDeletedOrder(ctx echo.Context, orderID servers.OrderId) error {
	id, err := toKernelUUID("orderId", orderID)
	if err != nil {
		return err
	}
	cmd, err := commands.NewRestoreDeletedOrderCommand(id)
	if err != nil {
		return err
	}
	if err := s.commands.RestoreDeletedOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetLedgerView handles GET /api/v1/orders/{orderId}/sessions/{sessionId}/ledger.
func (s *Server) GetLedgerView(ctx echo.Context, orderID servers.OrderId, sessionID servers.SessionId) error {
	oid, err := toKernelUUID("orderId", orderID)
	if err != nil {
		return err
	}
	sid, err := toKernelUUID("sessionId", sessionID)
	if err != nil {
		return err
	}
	query, err := queries.NewGetLedgerViewQuery(oid, sid)
	if err != nil {
		return err
	}

	view, err := s.queries.GetLedgerView.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	lines := make([]servers.LedgerLine, len(view.Lines))
	for i, l := range view.Lines {
		lines[i] = servers.LedgerLine{
			LineId:         l.LineID.Bytes(),
			Sku:            l.SKU,
			Name:           l.Name,
			Barcode:        l.Barcode,
			QuantityPicked: l.QuantityPicked,
			PackedQuantity: l.PackedQuantity,
			Remaining:      l.Remaining,
		}
	}
	return ctx.JSON(http.StatusOK, servers.LedgerView{
		SessionId:    view.SessionID.Bytes(),
		SessionToken: view.SessionToken,
		OrderId:      view.OrderID.Bytes(),
		Lines:        lines,
		TotalPicked:  view.TotalPicked,
		TotalPacked:  view.TotalPacked,
		TotalCartons: view.TotalCartons,
		SealedCount:  view.SealedCount,
	})
}

// ValidateScan handles GET /api/v1/orders/{orderId}/sessions/{sessionId}/scan.
func (s *Server) ValidateScan(
	ctx echo.Context,
	orderID servers.OrderId,
	sessionID servers.SessionId,
	params servers.ValidateScanParams,
) error {
	oid, err := toKernelUUID("orderId", orderID)
	if err != nil {
		return err
	}
	sid, err := toKernelUUID("sessionId", sessionID)
	if err != nil {
		return err
	}
	query, err := queries.NewValidateScanQuery(oid, sid, params.Barcode)
	if err != nil {
		return err
	}

	result, err := s.queries.ValidateScan.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, servers.ScanResult{
		LineId:         result.LineID.Bytes(),
		Sku:            result.SKU,
		Name:           result.Name,
		Barcode:        result.Barcode,
		QuantityPicked: result.QuantityPicked,
		AlreadyPacked:  result.AlreadyPacked,
		Remaining:      result.Remaining,
	})
}

// CreateSession handles POST /api/v1/sessions.
func (s *Server) CreateSession(ctx echo.Context) error {
	var body servers.CreateSessionJSONRequestBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	orderID, err := toKernelUUID("orderId", body.OrderId)
	if err != nil {
		return err
	}
	boxes := make([]packaging.BoxConfig, len(body.Boxes))
	for i, b := range body.Boxes {
		if boxes[i], err = toBoxConfig(b); err != nil {
			return err
		}
	}
	cmd, err := commands.NewCreateSessionCommand(orderID, body.Operator, boxes, body.TotalItems)
	if err != nil {
		return err
	}

	created, err := s.commands.CreateSession.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	cartonIDs := make([]openapi_types.UUID, len(created.CartonIDs))
	for i, id := range created.CartonIDs {
		cartonIDs[i] = id.Bytes()
	}
	return ctx.JSON(http.StatusCreated, servers.CreatedSession{
		SessionId: created.SessionID.Bytes(),
		Token:     created.Token,
		CartonIds: cartonIDs,
	})
}

// GetAvailableSessions handles GET /api/v1/sessions/available.
func (s *Server) GetAvailableSessions(ctx echo.Context) error {
	sessions, err := s.queries.GetAvailableSessions.Handle(ctx.Request().Context(), queries.NewGetAvailableSessionsQuery())
	if err != nil {
		return err
	}

	response := make([]servers.AvailableSession, len(sessions))
	for i, a := range sessions {
		response[i] = servers.AvailableSession{
			SessionId:     a.SessionID.Bytes(),
			SessionToken:  a.SessionToken,
			OrderId:       a.OrderID.Bytes(),
			OrderNumber:   a.OrderNumber,
			CustomerName:  a.CustomerName,
			TotalCartons:  a.TotalCartons,
			SealedCartons: a.SealedCartons,
			CompletedAt:   a.CompletedAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetSession handles GET /api/v1/sessions/{sessionId}.
func (s *Server) GetSession(ctx echo.Context, sessionID servers.SessionId) error {
	id, err := toKernelUUID("sessionId", sessionID)
	if err != nil {
		return err
	}
	query, err := queries.NewGetSessionQuery(id)
	if err != nil {
		return err
	}

	session, err := s.queries.GetSession.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toSessionResponse(session))
}

// DeleteSession handles DELETE /api/v1/sessions/{sessionId}.
func (s *Server) DeleteSession(ctx echo.Context, sessionID servers.SessionId) error {
	id, err := toKernelUUID("sessionId", sessionID)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteSessionCommand(id)
	if err != nil {
		return err
	}
	if err := s.commands.DeleteSession.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CompleteSession handles POST /api/v1/sessions/{sessionId}/complete.
func (s *Server) CompleteSession(ctx echo.Context, sessionID servers.SessionId) error {
	id, err := toKernelUUID("sessionId", sessionID)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCompleteSessionCommand(id)
	if err != nil {
		return err
	}
	if err := s.commands.CompleteSession.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AddCarton handles POST /api/v1/sessions/{sessionId}/cartons.
func (s *Server) AddCarton(ctx echo.Context, sessionID servers.SessionId) error {
	var body servers.AddCartonJSONRequestBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	id, err := toKernelUUID("sessionId", sessionID)
	if err != nil {
		return err
	}
	box, err := toBoxConfig(body)
	if err != nil {
		return err
	}
	cmd, err := commands.NewAddCartonCommand(id, box)
	if err != nil {
		return err
	}

	created, err := s.commands.AddCarton.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, servers.CreatedCarton{
		CartonId:  created.CartonID.Bytes(),
		BoxNumber: created.BoxNumber,
		Barcode:   created.Barcode,
		Status:    created.Status.String(),
	})
}

// OpenNextCarton handles POST /api/v1/sessions/{sessionId}/cartons/next.
func (s *Server) OpenNextCarton(ctx echo.Context, sessionID servers.SessionId) error {
	id, err := toKernelUUID("sessionId", sessionID)
	if err != nil {
		return err
	}
	cmd, err := commands.NewOpenNextCartonCommand(id)
	if err != nil {
		return err
	}

	result, err := s.commands.OpenNextCarton.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	response := servers.OpenedCarton{Opened: result.Opened}
	if result.Opened {
		cartonID := openapi_types.UUID(result.CartonID.Bytes())
		response.CartonId = &cartonID
		response.BoxNumber = &result.BoxNumber
	}
	return ctx.JSON(http.StatusOK, response)
}

// AddItemToCarton handles POST /api/v1/sessions/{sessionId}/cartons/{cartonId}/items.
func (s *Server) AddItemToCarton(ctx echo.Context, sessionID servers.SessionId, cartonID servers.CartonId) error {
	var body servers.AddItemToCartonJSONRequestBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	sid, err := toKernelUUID("sessionId", sessionID)
	if err != nil {
		return err
	}
	cid, err := toKernelUUID("cartonId", cartonID)
	if err != nil {
		return err
	}
	lineID, err := toKernelUUID("lineId", body.LineId)
	if err != nil {
		return err
	}
	cmd, err := commands.NewAddItemToCartonCommand(sid, cid, lineID, body.Quantity, body.Operator)
	if err != nil {
		return err
	}

	added, err := s.commands.AddItemToCarton.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, servers.AddedItem{
		EntryId:          added.EntryID.Bytes(),
		EntryQuantity:    added.EntryQuantity,
		CartonItemsCount: added.CartonItemsCount,
		PackedInSession:  added.PackedInSession,
		Remaining:        added.Remaining,
	})
}

// DeleteCarton handles DELETE /api/v1/cartons/{cartonId}.
func (s *Server) DeleteCarton(ctx echo.Context, cartonID servers.CartonId) error {
	id, err := toKernelUUID("cartonId", cartonID)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteCartonCommand(id)
	if err != nil {
		return err
	}
	if err := s.commands.DeleteCarton.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RemoveItemFromCarton handles DELETE /api/v1/cartons/{cartonId}/items/{entryId}.
func (s *Server) RemoveItemFromCarton(ctx echo.Context, cartonID servers.CartonId, entryID openapi_types.UUID) error {
	cid, err := toKernelUUID("cartonId", cartonID)
	if err != nil {
		return err
	}
	eid, err := toKernelUUID("entryId", entryID)
	if err != nil {
		return err
	}
	cmd, err := commands.NewRemoveItemFromCartonCommand(eid, cid)
	if err != nil {
		return err
	}
	if err := s.commands.RemoveItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ReopenCarton handles POST /api/v1/cartons/{cartonId}/reopen.
func (s *Server) ReopenCarton(ctx echo.Context, cartonID servers.CartonId) error {
	id, err := toKernelUUID("cartonId", cartonID)
	if err != nil {
		return err
	}
	cmd, err := commands.NewReopenCartonCommand(id)
	if err != nil {
		return err
	}
	if err := s.commands.ReopenCarton.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// SealCarton handles POST /api/v1/cartons/{cartonId}/seal.
func (s *Server) SealCarton(ctx echo.Context, cartonID servers.CartonId) error {
	var body servers.SealCartonJSONRequestBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	id, err := toKernelUUID("cartonId", cartonID)
	if err != nil {
		return err
	}
	weight, err := kernel.WeightFromString(body.ActualWeight)
	if err != nil {
		return err
	}
	cmd, err := commands.NewSealCartonCommand(id, weight, body.Operator)
	if err != nil {
		return err
	}
	if err := s.commands.SealCarton.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ListShipments handles GET /api/v1/shipments.
func (s *Server) ListShipments(ctx echo.Context, params servers.ListShipmentsParams) error {
	var status string
	if params.Status != nil {
		status = string(*params.Status)
	}
	query, err := queries.NewListShipmentsQuery(status, deref(params.Limit))
	if err != nil {
		return err
	}

	shipments, err := s.queries.ListShipments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.ShipmentSummary, len(shipments))
	for i, sh := range shipments {
		response[i] = servers.ShipmentSummary{
			Id:           sh.ID.Bytes(),
			Number:       sh.Number,
			OrderType:    sh.OrderType,
			Status:       sh.Status,
			TotalCartons: sh.TotalCartons,
			Destination:  sh.Destination,
			CreatedAt:    sh.CreatedAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// ConsolidateShipment handles POST /api/v1/shipments.
func (s *Server) ConsolidateShipment(ctx echo.Context) error {
	var body servers.ConsolidateShipmentJSONRequestBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	orderType, err := shipment.ParseOrderType(string(body.OrderType))
	if err != nil {
		return err
	}
	sessionIDs := make([]kernel.UUID, len(body.SessionIds))
	for i, id := range body.SessionIds {
		if sessionIDs[i], err = toKernelUUID("sessionIds", id); err != nil {
			return err
		}
	}
	cmd, err := commands.NewConsolidateShipmentCommand(orderType, sessionIDs)
	if err != nil {
		return err
	}

	created, err := s.commands.ConsolidateShipment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, servers.CreatedShipment{
		ShipmentId:     created.ShipmentID.Bytes(),
		ShipmentNumber: created.ShipmentNumber,
		TotalCartons:   created.TotalCartons,
		Destination:    created.Destination,
	})
}

// GetShipmentDetails handles GET /api/v1/shipments/{shipmentId}.
func (s *Server) GetShipmentDetails(ctx echo.Context, shipmentID servers.ShipmentId) error {
	id, err := toKernelUUID("shipmentId", shipmentID)
	if err != nil {
		return err
	}
	query, err := queries.NewGetShipmentDetailsQuery(id)
	if err != nil {
		return err
	}

	details, err := s.queries.GetShipmentDetails.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toShipmentDetailsResponse(details))
}

// ConfigureShipment handles PUT /api/v1/shipments/{shipmentId}/configuration.
func (s *Server) ConfigureShipment(ctx echo.Context, shipmentID servers.ShipmentId) error {
	return s.configure(ctx, shipmentID, false)
}

// ConfigureMultiShipment handles PUT /api/v1/multi-shipments/{shipmentId}/configuration.
func (s *Server) ConfigureMultiShipment(ctx echo.Context, shipmentID servers.ShipmentId) error {
	return s.configure(ctx, shipmentID, true)
}

func (s *Server) configure(ctx echo.Context, shipmentID servers.ShipmentId, multiOnly bool) error {
	var body servers.ShipmentConfiguration
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	id, err := toKernelUUID("shipmentId", shipmentID)
	if err != nil {
		return err
	}
	params, err := toConfigureParams(body)
	if err != nil {
		return err
	}
	cmd, err := commands.NewConfigureShipmentCommand(id, multiOnly, params)
	if err != nil {
		return err
	}

	status, err := s.commands.ConfigureShipment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, servers.ShipmentStatus{Status: status.String()})
}

func bindAndValidate(ctx echo.Context, body any) error {
	if err := ctx.Bind(body); err != nil {
		return err
	}
	if err := ctx.Validate(body); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	return nil
}
