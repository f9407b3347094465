package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler applies lifecycle transitions. Moves
// without a neighbour state (next from DELIVERED, prev from PLACED, cancel
// of a terminal order) are reported as false and leave the order unsaved.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{uowFactory: uowFactory}
}

func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (bool, error) {
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

	changed, err := apply(o, cmd)
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

func apply(o *order.Order, cmd ChangeOrderStatusCommand) (bool, error) {
	switch cmd.Action() {
	case ActionNext:
		return o.Next(), nil
	case ActionPrev:
		return o.Prev(), nil
	case ActionCancel:
		return o.Cancel(), nil
	default:
		if err := o.UpdateStatus(cmd.Label()); err != nil {
			return false, err
		}
		return true, nil
	}
}
