package queries

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
)

// GetOrderSummaryQueryHandler restores the order and renders its receipt.
// The summary needs the priced lines and the live customer balance, so it
// reads through the repositories instead of plain SQL.
type GetOrderSummaryQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetOrderSummaryQueryHandler(uowFactory ports.UnitOfWorkFactory) GetOrderSummaryQueryHandler {
	return GetOrderSummaryQueryHandler{uowFactory: uowFactory}
}

// Handle returns errs.ObjectNotFoundError for an unknown order.
func (h GetOrderSummaryQueryHandler) Handle(ctx context.Context, query GetOrderSummaryQuery) (order.Summary, error) {
	if err := query.Validate(); err != nil {
		return order.Summary{}, err
	}

	o, err := h.uowFactory.Create().OrderRepository().Get(ctx, query.OrderID())
	if err != nil {
		return order.Summary{}, err
	}
	return o.Summary(), nil
}
