package commands

import (
	"context"

	"pizzeria/internal/core/domain/services"

	"go.uber.org/zap"
)

// AdvanceKitchenOrdersCommandHandler progresses the orders the kitchen is
// working on: PLACED to PREPARING to OUT_FOR_DELIVERY to DELIVERED, one step
// per run. Each order must pass the validator first; orders that fail it are
// logged and left alone.
type AdvanceKitchenOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	validator  services.OrderValidator
	logger     *zap.Logger
}

// NewAdvanceKitchenOrdersCommandHandler creates the handler. A nil validator
// selects services.NewFulfillmentChain.
func NewAdvanceKitchenOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	validator services.OrderValidator,
	logger *zap.Logger,
) AdvanceKitchenOrdersCommandHandler {
	if validator == nil {
		validator = services.NewFulfillmentChain()
	}
	return AdvanceKitchenOrdersCommandHandler{
		uowFactory: uowFactory,
		validator:  validator,
		logger:     loggerOrNop(logger),
	}
}

// Handle returns the number of orders that moved.
func (h *AdvanceKitchenOrdersCommandHandler) Handle(ctx context.Context, cmd AdvanceKitchenOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetAllInProgress(ctx)
	if err != nil {
		return 0, err
	}

	advanced := 0
	for _, o := range orders {
		if validationErr := h.validator.Validate(o); validationErr != nil {
			h.logger.Warn("order skipped by kitchen",
				zap.String("order_id", o.ID().String()),
				zap.Error(validationErr),
			)
			continue
		}

		if !o.Next() {
			continue
		}

		if err = orderRepo.Update(ctx, o); err != nil {
			return 0, err
		}
		advanced++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return advanced, nil
}
