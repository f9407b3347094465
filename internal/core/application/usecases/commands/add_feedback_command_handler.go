package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
)

// AddFeedbackCommandHandler stores feedback on an order. Later feedback
// replaces earlier feedback.
type AddFeedbackCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAddFeedbackCommandHandler(uowFactory OrderUoWFactory) AddFeedbackCommandHandler {
	return AddFeedbackCommandHandler{uowFactory: uowFactory}
}

func (h *AddFeedbackCommandHandler) Handle(ctx context.Context, cmd AddFeedbackCommand) (order.Feedback, error) {
	if err := cmd.Validate(); err != nil {
		return order.Feedback{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Feedback{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return order.Feedback{}, err
	}

	feedback, err := o.AddFeedback(cmd.Rating(), cmd.Comment())
	if err != nil {
		return order.Feedback{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return order.Feedback{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Feedback{}, err
	}

	return feedback, nil
}
