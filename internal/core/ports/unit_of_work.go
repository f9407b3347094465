package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per command or query.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork spans one transaction over customers and orders.
// Within it, an order and its customer are the same in-memory objects.
type UnitOfWork interface {
	// Begin opens the transaction. Begin on an open transaction is a no-op.
	Begin(ctx context.Context) error
	// Commit and Rollback fail when no transaction is open.
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	CustomerRepository() CustomerRepository
	// OrderRepository restores orders whose customer is shared with
	// CustomerRepository of the same unit of work.
	OrderRepository() OrderRepository
}
