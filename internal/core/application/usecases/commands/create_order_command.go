package commands

import (
	"errors"
	"strings"

	"pizzeria/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to open a new order for a
// registered customer. The order starts empty, PLACED and PENDING_PAYMENT.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("C1")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, sequence, menu, logger)
//	id, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s created", id)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open an order for customerID.
func NewCreateOrderCommand(customerID string) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCustomerID(customerID); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the id of the ordering customer.
func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

func (c *CreateOrderCommand) setCustomerID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrCustomerIDIsRequired
	}

	c.customerID = id
	return nil
}
