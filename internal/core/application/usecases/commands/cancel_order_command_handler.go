package commands

import (
	"context"
	"log/slog"

	"fuelsettlement/internal/core/domain/model/escrow"
	"fuelsettlement/internal/core/domain/services"
	"fuelsettlement/internal/core/ports"
)

// CancelOrderCommandHandler handles order withdrawal by the buyer.
// Moves the order to "cancelled" and refunds the escrowed funds to the buyer
// in the same transaction. Only orders still awaiting delivery can be
// cancelled.
type CancelOrderCommandHandler struct {
	uowFactory    SettlementUoWFactory
	accessControl services.AccessControl
	eventLog      ports.EventLog
	logger        *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellations.
func NewCancelOrderCommandHandler(
	uowFactory SettlementUoWFactory,
	accessControl services.AccessControl,
	eventLog ports.EventLog,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory:    uowFactory,
		accessControl: accessControl,
		eventLog:      eventLog,
		logger:        logger,
	}
}

// Handle processes the cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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
	cancelledOrder, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.accessControl.Authorize(cmd.Caller(), cancelledOrder, services.ActionCancel); err != nil {
		return err
	}

	fromStatus := cancelledOrder.Status()
	if err = cancelledOrder.Cancel(); err != nil {
		return err
	}

	escrowRepo := uow.EscrowRepository()
	deposit, err := escrowRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = deposit.CheckConservation(cancelledOrder.TotalAmount()); err != nil {
		return err
	}

	refund, err := deposit.Release(escrow.ToBuyer)
	if err != nil {
		return err
	}

	if err = uow.FundGateway().Refund(ctx, cmd.OrderID(), cancelledOrder.Buyer(), refund); err != nil {
		return err
	}

	if err = escrowRepo.Update(ctx, deposit); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, cancelledOrder, fromStatus); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	caller := cmd.Caller()
	recordTransition(ctx, h.eventLog, h.logger, cmd.OrderID(), fromStatus, cancelledOrder.Status(), &caller)

	return nil
}
