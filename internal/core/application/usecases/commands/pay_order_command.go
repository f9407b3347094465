package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/payment"
	"pizzeria/internal/pkg/guard"
)

var ErrPayOrderCommandIsNotConstructed = errors.New(
	"PayOrderCommand must be created via NewPayOrderCommand constructor",
)

// PayOrderCommand settles an order's total with the payment described by
// details. The details may carry secrets (a wallet credential); they are
// never logged and only the method description is stored.
//
// Example:
//
//	cmd, err := NewPayOrderCommand(orderID, payment.Details{
//	    Kind:            payment.KindCash,
//	    CollectionPoint: payment.OnDelivery,
//	})
//	paid, err := handler.Handle(ctx, cmd)
type PayOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderNumber
	details payment.Details

	guard guard.ConstructorGuard
}

// NewPayOrderCommand validates the order number and the payment kind.
// Kind specific fields are checked when the method is created.
func NewPayOrderCommand(orderID kernel.OrderNumber, details payment.Details) (PayOrderCommand, error) {
	kind, kindErr := payment.ParseKind(string(details.Kind))
	if err := errors.Join(orderID.Validate(), kindErr); err != nil {
		return PayOrderCommand{}, err
	}
	details.Kind = kind

	return PayOrderCommand{
		orderID: orderID,
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c PayOrderCommand) Validate() error {
	return c.guard.Validate(ErrPayOrderCommandIsNotConstructed)
}

func (c PayOrderCommand) OrderID() kernel.OrderNumber {
	return c.orderID
}

func (c PayOrderCommand) Details() payment.Details {
	return c.details
}
