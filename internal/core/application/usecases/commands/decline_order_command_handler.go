package commands

import (
	"context"
	"log/slog"

	"fuelsettlement/internal/core/domain/model/escrow"
	"fuelsettlement/internal/core/domain/services"
	"fuelsettlement/internal/core/ports"
)

// DeclineOrderCommandHandler handles order refusal by the supplier.
// Moves the order to "declined" and refunds the escrowed funds to the buyer
// in the same transaction.
type DeclineOrderCommandHandler struct {
	uowFactory    SettlementUoWFactory
	accessControl services.AccessControl
	eventLog      ports.EventLog
	logger        *slog.Logger
}

// NewDeclineOrderCommandHandler creates a handler for order declines.
func NewDeclineOrderCommandHandler(
	uowFactory SettlementUoWFactory,
	accessControl services.AccessControl,
	eventLog ports.EventLog,
	logger *slog.Logger,
) DeclineOrderCommandHandler {
	return DeclineOrderCommandHandler{
		uowFactory:    uowFactory,
		accessControl: accessControl,
		eventLog:      eventLog,
		logger:        logger,
	}
}

// Handle processes the decline command.
func (h *DeclineOrderCommandHandler) Handle(ctx context.Context, cmd DeclineOrderCommand) error {
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
	declinedOrder, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.accessControl.Authorize(cmd.Caller(), declinedOrder, services.ActionDecline); err != nil {
		return err
	}

	fromStatus := declinedOrder.Status()
	if err = declinedOrder.Decline(); err != nil {
		return err
	}

	escrowRepo := uow.EscrowRepository()
	deposit, err := escrowRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = deposit.CheckConservation(declinedOrder.TotalAmount()); err != nil {
		return err
	}

	refund, err := deposit.Release(escrow.ToBuyer)
	if err != nil {
		return err
	}

	if err = uow.FundGateway().Refund(ctx, cmd.OrderID(), declinedOrder.Buyer(), refund); err != nil {
		return err
	}

	if err = escrowRepo.Update(ctx, deposit); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, declinedOrder, fromStatus); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	caller := cmd.Caller()
	recordTransition(ctx, h.eventLog, h.logger, cmd.OrderID(), fromStatus, declinedOrder.Status(), &caller)

	return nil
}
