// Package ports defines the contracts between the pizzeria domain and its
// infrastructure: persistence of orders and customers, the menu and the
// promotion registry.
package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Restored orders carry their customer, pizzas, pricing breakdown, payment
// record, feedback and status history.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its order number.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.OrderNumber) (*order.Order, error)

	// GetAll retrieves every order, oldest first.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllInProgress retrieves paid orders that have not reached a terminal
	// state. These are the orders the kitchen is working on.
	//
	// Example:
	//   orders, err := repo.GetAllInProgress(ctx)
	//   if err != nil {
	//       return err
	//   }
	//   for _, o := range orders {
	//       o.Next()
	//   }
	GetAllInProgress(ctx context.Context) ([]*order.Order, error)

	// LastOrderNumber returns the highest order counter ever stored, or zero
	// for an empty store. Used to seed the order number sequence at startup.
	LastOrderNumber(ctx context.Context) (int64, error)
}
