package commands

import (
	"context"
	"log/slog"

	"fuelsettlement/internal/core/domain/model/kernel"
	"fuelsettlement/internal/core/domain/services"
	"fuelsettlement/internal/core/ports"
)

// SettleOrderCommandHandler finalizes delivered orders.
// Settlement is a bookkeeping transition: the payout already happened on
// delivery confirmation, so only the order row changes.
type SettleOrderCommandHandler struct {
	uowFactory    OrderUoWFactory
	accessControl services.AccessControl
	eventLog      ports.EventLog
	logger        *slog.Logger
}

// NewSettleOrderCommandHandler creates a handler for order settlement.
// Uses the order-only unit of work because settlement never touches escrow.
func NewSettleOrderCommandHandler(
	uowFactory OrderUoWFactory,
	accessControl services.AccessControl,
	eventLog ports.EventLog,
	logger *slog.Logger,
) SettleOrderCommandHandler {
	return SettleOrderCommandHandler{
		uowFactory:    uowFactory,
		accessControl: accessControl,
		eventLog:      eventLog,
		logger:        logger,
	}
}

// Handle processes the settle command.
// Automated commands skip the supplier check and log a nil actor.
func (h *SettleOrderCommandHandler) Handle(ctx context.Context, cmd SettleOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	settledOrder, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !cmd.IsAutomated() {
		if err = h.accessControl.Authorize(cmd.Caller(), settledOrder, services.ActionSettle); err != nil {
			return err
		}
	}

	fromStatus := settledOrder.Status()
	if err = settledOrder.Settle(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, settledOrder, fromStatus); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	var actor *kernel.UUID
	if !cmd.IsAutomated() {
		caller := cmd.Caller()
		actor = &caller
	}
	recordTransition(ctx, h.eventLog, h.logger, cmd.OrderID(), fromStatus, settledOrder.Status(), actor)

	return nil
}
