package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/payment"

	"go.uber.org/zap"
)

// PayOrderCommandHandler pays orders. The order and the customer's loyalty
// balance are saved in one transaction, so points are credited exactly when
// the payment is recorded.
type PayOrderCommandHandler struct {
	uowFactory UoWFactory
	logger     *zap.Logger
}

func NewPayOrderCommandHandler(uowFactory UoWFactory, logger *zap.Logger) PayOrderCommandHandler {
	return PayOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     loggerOrNop(logger),
	}
}

// Handle returns (false, nil) for an order that is already paid or
// cancelled; the payment method is not charged in that case.
func (h *PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	method, err := payment.NewMethod(cmd.Details(), h.logger)
	if err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return false, err
	}

	paid, err := o.Pay(ctx, method)
	if err != nil || !paid {
		return false, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return false, err
	}

	if c := o.Customer(); c != nil {
		if err = uow.CustomerRepository().Update(ctx, c); err != nil {
			return false, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	h.logger.Info("order paid",
		zap.String("order_id", o.ID().String()),
		zap.String("method", method.Description()),
		zap.Float64("amount", o.Total()),
		zap.Int("points_earned", o.PointsEarned()),
	)
	return true, nil
}
