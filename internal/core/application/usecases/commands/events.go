package commands

import (
	"context"
	"log/slog"
	"time"

	"fuelsettlement/internal/core/domain/model/kernel"
	"fuelsettlement/internal/core/domain/model/order"
	"fuelsettlement/internal/core/ports"
)

// recordTransition appends a status change to the event log after commit.
// Append failures are logged and swallowed: the log is an audit trail,
// not the source of truth for order state.
func recordTransition(
	ctx context.Context,
	eventLog ports.EventLog,
	logger *slog.Logger,
	orderID int64,
	from, to order.Status,
	actor *kernel.UUID,
) {
	if eventLog == nil {
		return
	}

	event := ports.OrderEvent{
		ID:         kernel.NewUUID(),
		OrderID:    orderID,
		FromStatus: from,
		ToStatus:   to,
		Actor:      actor,
		OccurredAt: time.Now().UTC(),
	}

	if err := eventLog.Append(ctx, event); err != nil && logger != nil {
		logger.WarnContext(ctx, "failed to append order event",
			"order_id", orderID,
			"from", from.String(),
			"to", to.String(),
			"error", err)
	}
}
