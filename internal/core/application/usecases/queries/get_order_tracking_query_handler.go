package queries

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
)

// GetOrderTrackingQueryHandler returns the current label, estimate and
// status history of an order.
type GetOrderTrackingQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetOrderTrackingQueryHandler(uowFactory ports.UnitOfWorkFactory) GetOrderTrackingQueryHandler {
	return GetOrderTrackingQueryHandler{uowFactory: uowFactory}
}

func (h GetOrderTrackingQueryHandler) Handle(ctx context.Context, query GetOrderTrackingQuery) (order.Tracking, error) {
	if err := query.Validate(); err != nil {
		return order.Tracking{}, err
	}

	o, err := h.uowFactory.Create().OrderRepository().Get(ctx, query.OrderID())
	if err != nil {
		return order.Tracking{}, err
	}
	return o.Tracking(), nil
}
