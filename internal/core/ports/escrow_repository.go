package ports

import (
	"context"

	"fuelsettlement/internal/core/domain/model/escrow"
)

// EscrowRepository defines the persistence contract for escrow aggregates.
// Escrow records are keyed 1:1 by order identifier; the vault never holds
// value not attributable to exactly one order.
type EscrowRepository interface {
	// Add persists a newly captured escrow record.
	Add(ctx context.Context, aggregate *escrow.Escrow) error

	// Update persists the state of an existing escrow record.
	Update(ctx context.Context, aggregate *escrow.Escrow) error

	// Get retrieves the escrow record for an order.
	// Returns errs.ErrObjectNotFound if no record exists for the identifier.
	Get(ctx context.Context, orderID int64) (*escrow.Escrow, error)

	// GetForUpdate retrieves the escrow record and locks its row for the
	// duration of the surrounding transaction.
	GetForUpdate(ctx context.Context, orderID int64) (*escrow.Escrow, error)
}
