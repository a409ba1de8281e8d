// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fuelsettlement/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// EscrowRepoFactory provides access to escrow repository within a transaction.
	EscrowRepoFactory interface {
		EscrowRepository() ports.EscrowRepository
	}

	// FundGatewayFactory provides access to the fund gateway within a transaction.
	FundGatewayFactory interface {
		FundGateway() ports.FundGateway
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands change order state without moving funds.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// SettlementUoW manages transactions for operations that move escrowed funds.
	// Order state, escrow balances and fund transfers change atomically.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   escrowRepo := uow.EscrowRepository()
	//   funds := uow.FundGateway()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	SettlementUoW interface {
		TxManager
		OrderRepoFactory
		EscrowRepoFactory
		FundGatewayFactory
	}

	// SettlementUoWFactory creates new unit of work instances for fund-moving operations.
	SettlementUoWFactory interface {
		Create() SettlementUoW
	}
)
