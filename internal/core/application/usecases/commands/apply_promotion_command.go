package commands

import (
	"errors"
	"strings"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrApplyPromotionCommandIsNotConstructed = errors.New(
		"ApplyPromotionCommand must be created via NewApplyPromotionCommand constructor",
	)
	ErrPromotionCodeIsRequired = errs.NewValueIsRequiredError("promotionCode")
)

// ApplyPromotionCommand applies a promotion code to an unpaid order.
type ApplyPromotionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderNumber
	code    string

	guard guard.ConstructorGuard
}

func NewApplyPromotionCommand(orderID kernel.OrderNumber, code string) (ApplyPromotionCommand, error) {
	cmd := ApplyPromotionCommand{
		code:  strings.TrimSpace(code),
		guard: guard.NewConstructorGuard(),
	}

	var codeErr error
	if cmd.code == "" {
		codeErr = ErrPromotionCodeIsRequired
	}
	if err := errors.Join(orderID.Validate(), codeErr); err != nil {
		return ApplyPromotionCommand{}, err
	}
	cmd.orderID = orderID

	return cmd, nil
}

func (c ApplyPromotionCommand) Validate() error {
	return c.guard.Validate(ErrApplyPromotionCommandIsNotConstructed)
}

func (c ApplyPromotionCommand) OrderID() kernel.OrderNumber {
	return c.orderID
}

func (c ApplyPromotionCommand) Code() string {
	return c.code
}
