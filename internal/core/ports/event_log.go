package ports

import (
	"context"
	"time"

	"fuelsettlement/internal/core/domain/model/kernel"
	"fuelsettlement/internal/core/domain/model/order"
)

// OrderEvent records one committed settlement transition.
// Actor is nil when the transition was applied by the automated
// finalization trigger rather than a caller.
type OrderEvent struct {
	ID         kernel.UUID
	OrderID    int64
	FromStatus order.Status
	ToStatus   order.Status
	Actor      *kernel.UUID
	OccurredAt time.Time
}

// EventLog is the append-only record of committed transitions, consumed by
// UI and reporting collaborators through the event queries.
//
// Appending is best-effort instrumentation: a failure must never block or
// roll back the settlement transition it describes, so handlers append after
// commit and only log errors. Reads are served by the query side with an
// ordered, restartable cursor.
type EventLog interface {
	// Append stores one transition record. Never rejects a well-formed event
	// for business reasons; any error is infrastructure failure.
	Append(ctx context.Context, event OrderEvent) error
}
