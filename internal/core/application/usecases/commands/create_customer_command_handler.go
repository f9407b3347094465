package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/customer"

	"go.uber.org/zap"
)

// CreateCustomerCommandHandler registers customers. Duplicate ids are
// rejected by the repository.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	logger     *zap.Logger
}

// NewCreateCustomerCommandHandler creates a handler for customer registration.
// logger is attached to every created customer for its notifications.
func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory, logger *zap.Logger) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
		logger:     loggerOrNop(logger),
	}
}

// Handle creates the customer with zero loyalty points and persists it.
func (h *CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, err := customer.NewCustomer(cmd.CustomerID(), cmd.Name(), cmd.Contact(), h.logger)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CustomerRepository().Add(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func loggerOrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
