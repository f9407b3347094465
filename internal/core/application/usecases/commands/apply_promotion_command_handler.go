package commands

import (
	"context"

	"pizzeria/internal/core/ports"
)

// ApplyPromotionCommandHandler looks up promotion codes and applies them.
// An unknown code is an error; a known code that is expired, inactive or
// applied to a paid order is reported as false.
type ApplyPromotionCommandHandler struct {
	uowFactory OrderUoWFactory
	promotions ports.PromotionRepository
}

func NewApplyPromotionCommandHandler(
	uowFactory OrderUoWFactory,
	promotions ports.PromotionRepository,
) ApplyPromotionCommandHandler {
	return ApplyPromotionCommandHandler{
		uowFactory: uowFactory,
		promotions: promotions,
	}
}

func (h *ApplyPromotionCommandHandler) Handle(ctx context.Context, cmd ApplyPromotionCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	promo, err := h.promotions.Get(ctx, cmd.Code())
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

	applied, err := o.ApplyPromotion(promo)
	if err != nil || !applied {
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
