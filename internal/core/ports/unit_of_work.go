package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a settlement transaction boundary. A status commit,
// the matching escrow mutation, and the fund transfer record are applied as
// one atomic unit: observers see all of a transition or none of it.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// EscrowRepository returns an EscrowRepository bound to the current transaction.
	EscrowRepository() EscrowRepository

	// FundGateway returns a FundGateway bound to the current transaction.
	FundGateway() FundGateway
}
