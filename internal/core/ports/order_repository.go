// Package ports defines the contracts between the settlement core and its
// infrastructure adapters. These interfaces enable dependency inversion and
// testability: command handlers depend on ports, never on concrete storage.
package ports

import (
	"context"
	"errors"

	"fuelsettlement/internal/core/domain/model/order"
)

// ErrConcurrentUpdate is returned when a guarded status update matched no row,
// meaning another transaction moved the order first. Callers treat the whole
// transition as failed; nothing was applied.
var ErrConcurrentUpdate = errors.New("order was modified concurrently")

// OrderRepository defines the persistence contract for order aggregates.
// The repository is the sole source of truth for order existence and current
// status. Orders are never deleted; terminal orders remain queryable as the
// audit trail.
type OrderRepository interface {
	// Add persists a new order aggregate and assigns its sequential
	// identifier. Identifiers are unique and monotonically increasing for
	// the life of the store.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the aggregate's current state using a status-guarded
	// write: the row is only touched while it still carries fromStatus.
	// Returns ErrConcurrentUpdate if no row matched.
	Update(ctx context.Context, aggregate *order.Order, fromStatus order.Status) error

	// Get retrieves an order aggregate by its identifier.
	// Returns errs.ErrObjectNotFound for unknown identifiers.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row for the duration of
	// the surrounding transaction, serializing concurrent mutations of the
	// same order. Requests against different orders proceed in parallel.
	GetForUpdate(ctx context.Context, id int64) (*order.Order, error)

	// GetAllInDeliveredStatus retrieves all orders awaiting settlement
	// finalization. Used by the automated follow-up trigger.
	GetAllInDeliveredStatus(ctx context.Context) ([]*order.Order, error)
}
