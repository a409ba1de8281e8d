// Package http exposes the settlement operations over an echo HTTP API.
// Handlers translate requests into commands and queries, and map the error
// taxonomy onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"fuelsettlement/internal/core/application/usecases/commands"
	"fuelsettlement/internal/core/application/usecases/queries"
	"fuelsettlement/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// accountHeader carries the caller's identity on every authenticated call.
const accountHeader = "X-Account-ID"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler     commands.CreateOrderCommandHandler
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler
	declineOrderHandler    commands.DeclineOrderCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler
	settleOrderHandler     commands.SettleOrderCommandHandler

	getAllOrdersHandler   queries.GetAllOrdersQueryHandler
	getOrderEventsHandler queries.GetOrderEventsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	declineOrderHandler commands.DeclineOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	settleOrderHandler commands.SettleOrderCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderEventsHandler queries.GetOrderEventsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		confirmDeliveryHandler: confirmDeliveryHandler,
		declineOrderHandler:    declineOrderHandler,
		cancelOrderHandler:     cancelOrderHandler,
		settleOrderHandler:     settleOrderHandler,
		getAllOrdersHandler:    getAllOrdersHandler,
		getOrderEventsHandler:  getOrderEventsHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/confirm", s.ConfirmDelivery)
	api.POST("/orders/:id/decline", s.DeclineOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/settle", s.SettleOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id/events", s.GetOrderEvents)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders.
// The caller becomes the order's buyer; the payment is held in escrow.
func (s *Server) CreateOrder(ctx echo.Context) error {
	caller, err := callerID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req CreateOrderRequest
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return badRequest(ctx, "invalid request body")
	}

	supplier, err := kernel.UUIDFromString(req.SupplierID)
	if err != nil {
		return badRequest(ctx, "invalid supplier_id")
	}

	price, err := kernel.NewMoney(req.PricePerLitre)
	if err != nil {
		return badRequest(ctx, "invalid price_per_litre")
	}

	payment, err := kernel.NewMoney(req.Payment)
	if err != nil {
		return badRequest(ctx, "invalid payment")
	}

	cmd, err := commands.NewCreateOrderCommand(caller, supplier, req.QuantityLitres, price, payment)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{OrderID: orderID})
}

// ConfirmDelivery handles POST /api/v1/orders/:id/confirm.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	caller, err := callerID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewConfirmDeliveryCommand(orderID, caller)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeclineOrder handles POST /api/v1/orders/:id/decline.
func (s *Server) DeclineOrder(ctx echo.Context) error {
	caller, err := callerID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewDeclineOrderCommand(orderID, caller)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.declineOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	caller, err := callerID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, caller)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SettleOrder handles POST /api/v1/orders/:id/settle.
func (s *Server) SettleOrder(ctx echo.Context) error {
	caller, err := callerID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewSettleOrderCommand(orderID, caller)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.settleOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderResponse{
			OrderID:           o.ID,
			BuyerID:           o.Buyer.String(),
			SupplierID:        o.Supplier.String(),
			QuantityLitres:    o.QuantityLitres,
			PricePerLitre:     o.PricePerLitre,
			TotalAmount:       o.TotalAmount,
			Status:            o.StatusCode,
			StatusName:        o.Status,
			DeliveryConfirmed: o.DeliveryConfirmed,
			CreatedAt:         o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderEvents handles GET /api/v1/orders/:id/events.
// The optional "after" query parameter resumes reading past the given
// event sequence number.
func (s *Server) GetOrderEvents(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var afterSeq int64
	if after := ctx.QueryParam("after"); after != "" {
		afterSeq, err = strconv.ParseInt(after, 10, 64)
		if err != nil || afterSeq < 0 {
			return badRequest(ctx, "invalid after cursor")
		}
	}

	query, err := queries.NewGetOrderEventsQuery(orderID, afterSeq)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	events, err := s.getOrderEventsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderEventResponse, len(events))
	for i, e := range events {
		var actor *string
		if e.Actor != nil {
			raw := e.Actor.String()
			actor = &raw
		}

		response[i] = OrderEventResponse{
			Seq:        e.Seq,
			EventID:    e.ID.String(),
			OrderID:    e.OrderID,
			FromStatus: e.FromStatusCode,
			ToStatus:   e.ToStatusCode,
			Actor:      actor,
			OccurredAt: e.OccurredAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// callerID extracts and validates the caller identity header.
func callerID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(accountHeader)
	if raw == "" {
		return kernel.UUID{}, errors.New(accountHeader + " header is required")
	}

	caller, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errors.New("invalid " + accountHeader + " header")
	}

	return caller, nil
}

// orderIDParam extracts the order ID path parameter.
func orderIDParam(ctx echo.Context) (int64, error) {
	orderID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || orderID <= 0 {
		return 0, errors.New("invalid order id")
	}

	return orderID, nil
}
