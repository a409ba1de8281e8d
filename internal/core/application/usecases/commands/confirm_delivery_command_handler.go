package commands

import (
	"context"
	"log/slog"

	"fuelsettlement/internal/core/domain/model/escrow"
	"fuelsettlement/internal/core/domain/services"
	"fuelsettlement/internal/core/ports"
)

// ConfirmDeliveryCommandHandler handles delivery confirmation by the supplier.
// Moves the order to "delivered" and pays the escrowed funds out to the
// supplier in the same transaction.
type ConfirmDeliveryCommandHandler struct {
	uowFactory    SettlementUoWFactory
	accessControl services.AccessControl
	eventLog      ports.EventLog
	logger        *slog.Logger
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery confirmations.
func NewConfirmDeliveryCommandHandler(
	uowFactory SettlementUoWFactory,
	accessControl services.AccessControl,
	eventLog ports.EventLog,
	logger *slog.Logger,
) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory:    uowFactory,
		accessControl: accessControl,
		eventLog:      eventLog,
		logger:        logger,
	}
}

// Handle processes the confirmation command.
// The order row is locked for the duration of the transaction, so concurrent
// confirm, cancel and decline attempts on the same order serialize and all
// but the first fail with an invalid transition error.
func (h *ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
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
	confirmedOrder, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.accessControl.Authorize(cmd.Caller(), confirmedOrder, services.ActionConfirmDelivery); err != nil {
		return err
	}

	fromStatus := confirmedOrder.Status()
	if err = confirmedOrder.ConfirmDelivery(); err != nil {
		return err
	}

	escrowRepo := uow.EscrowRepository()
	deposit, err := escrowRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = deposit.CheckConservation(confirmedOrder.TotalAmount()); err != nil {
		return err
	}

	payout, err := deposit.Release(escrow.ToSupplier)
	if err != nil {
		return err
	}

	if err = uow.FundGateway().Payout(ctx, cmd.OrderID(), confirmedOrder.Supplier(), payout); err != nil {
		return err
	}

	if err = escrowRepo.Update(ctx, deposit); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, confirmedOrder, fromStatus); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	caller := cmd.Caller()
	recordTransition(ctx, h.eventLog, h.logger, cmd.OrderID(), fromStatus, confirmedOrder.Status(), &caller)

	return nil
}
