package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/customer"
)

// CustomerRepository defines the persistence contract for customers,
// including their loyalty balance, order history and saved pizzas.
type CustomerRepository interface {
	// Add persists a new customer.
	// Returns errs.ValueIsInvalidError when the id is already taken.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists loyalty points, order history and saved pizzas.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by id.
	// Returns errs.ObjectNotFoundError when no such customer exists.
	Get(ctx context.Context, id string) (*customer.Customer, error)

	// GetAll retrieves every customer ordered by id.
	GetAll(ctx context.Context) ([]*customer.Customer, error)
}
