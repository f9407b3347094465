// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/ports"
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

	// CustomerRepoFactory provides access to customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CustomerUoW manages transactions for customer-only operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// UoW manages transactions across both order and customer aggregates.
	// Used for commands that change an order together with its customer,
	// such as payment crediting loyalty points.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   customerRepo := uow.CustomerRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		CustomerRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}

	// OrderNumbers hands out order numbers; *kernel.OrderNumberSequence satisfies it.
	OrderNumbers interface {
		Next() kernel.OrderNumber
	}
)
