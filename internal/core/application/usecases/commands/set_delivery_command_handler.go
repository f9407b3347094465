package commands

import (
	"context"
)

// SetDeliveryCommandHandler applies a delivery choice and reprices the order.
type SetDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewSetDeliveryCommandHandler(uowFactory OrderUoWFactory) SetDeliveryCommandHandler {
	return SetDeliveryCommandHandler{uowFactory: uowFactory}
}

// Handle returns false without saving when the order is already paid or
// cancelled.
func (h *SetDeliveryCommandHandler) Handle(ctx context.Context, cmd SetDeliveryCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
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

	changed, err := o.SetDelivery(cmd.DeliveryType(), cmd.Charge())
	if err != nil || !changed {
		return false, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
