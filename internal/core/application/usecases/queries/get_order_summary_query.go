// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models for specific use cases.
package queries

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var ErrGetOrderSummaryQueryIsNotConstructed = errors.New(
	"GetOrderSummaryQuery must be created via NewGetOrderSummaryQuery constructor",
)

// GetOrderSummaryQuery asks for the receipt of one order.
//
// Example:
//
//	query, err := NewGetOrderSummaryQuery("ORD1001")
//	if err != nil {
//	    return err
//	}
//	summary, err := handler.Handle(ctx, query)
type GetOrderSummaryQuery struct {
	orderID kernel.OrderNumber
	guard   guard.ConstructorGuard
}

func NewGetOrderSummaryQuery(orderID string) (GetOrderSummaryQuery, error) {
	id, err := kernel.ParseOrderNumber(orderID)
	if err != nil {
		return GetOrderSummaryQuery{}, err
	}
	return GetOrderSummaryQuery{orderID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderSummaryQuery) OrderID() kernel.OrderNumber {
	return q.orderID
}

func (q GetOrderSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSummaryQueryIsNotConstructed)
}
