package commands

import (
	"context"
)

// RedeemPointsCommandHandler deducts loyalty points. Redeeming more than the
// balance is reported as false and changes nothing.
type RedeemPointsCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewRedeemPointsCommandHandler(uowFactory CustomerUoWFactory) RedeemPointsCommandHandler {
	return RedeemPointsCommandHandler{uowFactory: uowFactory}
}

func (h *RedeemPointsCommandHandler) Handle(ctx context.Context, cmd RedeemPointsCommand) (bool, error) {
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

	customerRepo := uow.CustomerRepository()
	c, err := customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return false, err
	}

	if !c.RedeemPoints(cmd.Points()) {
		return false, nil
	}

	if err = customerRepo.Update(ctx, c); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
