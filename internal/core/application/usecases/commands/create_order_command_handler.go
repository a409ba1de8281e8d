package commands

import (
	"context"
	"log/slog"
	"time"

	"fuelsettlement/internal/core/domain/model/escrow"
	"fuelsettlement/internal/core/domain/model/order"
	"fuelsettlement/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Opens a new order, holds the full order total in escrow and captures
// the buyer's funds, all within a single transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, eventLog, logger)
//	cmd, _ := NewCreateOrderCommand(buyer, supplier, 5000, price, payment)
//
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order exists in "created" status with its total held in escrow
type CreateOrderCommandHandler struct {
	uowFactory SettlementUoWFactory
	eventLog   ports.EventLog
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a SettlementUoWFactory because creation both persists the order
// and moves the buyer's funds into escrow.
func NewCreateOrderCommandHandler(
	uowFactory SettlementUoWFactory,
	eventLog ports.EventLog,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		eventLog:   eventLog,
		logger:     logger,
	}
}

// Handle processes the order creation command and returns the new order ID.
// If the offered payment does not cover quantity times unit price the whole
// transaction rolls back and no order is created.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	newOrder, err := order.NewOrder(
		cmd.Buyer(),
		cmd.Supplier(),
		cmd.QuantityLitres(),
		cmd.PricePerLitre(),
		time.Now().UTC(),
	)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return 0, err
	}

	deposit, err := escrow.NewEscrow(newOrder.ID(), newOrder.TotalAmount(), cmd.Payment())
	if err != nil {
		return 0, err
	}

	if err = uow.EscrowRepository().Add(ctx, deposit); err != nil {
		return 0, err
	}

	if err = uow.FundGateway().Capture(ctx, newOrder.ID(), newOrder.Buyer(), deposit.Held()); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	buyer := cmd.Buyer()
	recordTransition(ctx, h.eventLog, h.logger, newOrder.ID(), order.Unknown, order.Created, &buyer)

	return newOrder.ID(), nil
}
