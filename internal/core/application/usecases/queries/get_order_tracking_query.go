package queries

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var ErrGetOrderTrackingQueryIsNotConstructed = errors.New(
	"GetOrderTrackingQuery must be created via NewGetOrderTrackingQuery constructor",
)

// GetOrderTrackingQuery asks for the status history of one order.
type GetOrderTrackingQuery struct {
	orderID kernel.OrderNumber
	guard   guard.ConstructorGuard
}

func NewGetOrderTrackingQuery(orderID string) (GetOrderTrackingQuery, error) {
	id, err := kernel.ParseOrderNumber(orderID)
	if err != nil {
		return GetOrderTrackingQuery{}, err
	}
	return GetOrderTrackingQuery{orderID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderTrackingQuery) OrderID() kernel.OrderNumber {
	return q.orderID
}

func (q GetOrderTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTrackingQueryIsNotConstructed)
}
