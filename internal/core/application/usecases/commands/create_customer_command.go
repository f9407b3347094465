package commands

import (
	"errors"
	"strings"

	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrCreateCustomerCommandIsNotConstructed = errors.New(
		"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
	)
	ErrCustomerIDIsRequired   = errs.NewValueIsRequiredError("customerID")
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("name")
)

// CreateCustomerCommand represents a request to register a new customer.
//
// Example:
//
//	cmd, err := NewCreateCustomerCommand("C1", "Nimal Perera", customer.Contact{
//	    Address: "12 Galle Road", Phone: "0771234567", Email: "nimal@example.com",
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid customer data: %w", err)
//	}
//
//	handler := NewCreateCustomerCommandHandler(uowFactory, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register customer: %w", err)
//	}
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID string
	name       string
	contact    customer.Contact

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a customer.
// Validates that id and name are not blank.
func NewCreateCustomerCommand(customerID, name string, contact customer.Contact) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{
		contact: contact,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setName(name),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) CustomerID() string {
	return c.customerID
}

func (c CreateCustomerCommand) Name() string {
	return c.name
}

func (c CreateCustomerCommand) Contact() customer.Contact {
	return c.contact
}

func (c *CreateCustomerCommand) setCustomerID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrCustomerIDIsRequired
	}

	c.customerID = id
	return nil
}

func (c *CreateCustomerCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrCustomerNameIsRequired
	}

	c.name = name
	return nil
}
