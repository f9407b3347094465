package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"

	"go.uber.org/zap"
)

// CreateOrderCommandHandler opens orders. The order number is drawn from the
// process wide sequence and recorded in the customer's order history in the
// same transaction as the order itself.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, sequence, menu, logger)
//	cmd, _ := NewCreateOrderCommand("C1")
//
//	id, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	numbers    OrderNumbers
	menu       ports.Menu
	logger     *zap.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	numbers OrderNumbers,
	menu ports.Menu,
	logger *zap.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		numbers:    numbers,
		menu:       menu,
		logger:     loggerOrNop(logger),
	}
}

// Handle processes the order creation command and returns the new order number.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.OrderNumber, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.OrderNumber{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.OrderNumber{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()
	c, err := customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return kernel.OrderNumber{}, err
	}

	o, err := order.NewOrder(h.numbers.Next(), c, h.menu.Catalog(), order.WithLogger(h.logger))
	if err != nil {
		return kernel.OrderNumber{}, err
	}
	c.AddOrder(o.ID().String())

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return kernel.OrderNumber{}, err
	}

	if err = customerRepo.Update(ctx, c); err != nil {
		return kernel.OrderNumber{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.OrderNumber{}, err
	}

	return o.ID(), nil
}
