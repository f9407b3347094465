package commands

import (
	"errors"
	"fmt"
	"strings"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// StatusAction is the kind of status change requested.
type StatusAction string

const (
	// ActionNext advances the formal state.
	ActionNext StatusAction = "NEXT"
	// ActionPrev moves the formal state back.
	ActionPrev StatusAction = "PREV"
	// ActionCancel cancels a non-terminal order.
	ActionCancel StatusAction = "CANCEL"
	// ActionLabel publishes a free-form label without a state change.
	ActionLabel StatusAction = "LABEL"
)

// ParseStatusAction accepts NEXT, PREV, CANCEL or LABEL in any case.
func ParseStatusAction(s string) (StatusAction, error) {
	switch a := StatusAction(strings.ToUpper(strings.TrimSpace(s))); a {
	case ActionNext, ActionPrev, ActionCancel, ActionLabel:
		return a, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%q is not a status action", s))
	}
}

// ChangeOrderStatusCommand moves an order through its lifecycle or
// publishes a free-form label such as "IN_OVEN".
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderNumber
	action  StatusAction
	label   string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates the command. label is required for
// ActionLabel and ignored otherwise.
func NewChangeOrderStatusCommand(orderID kernel.OrderNumber, action string, label string) (ChangeOrderStatusCommand, error) {
	a, actionErr := ParseStatusAction(action)
	label = strings.TrimSpace(label)

	var labelErr error
	if a == ActionLabel && label == "" {
		labelErr = order.ErrStatusLabelIsRequired
	}
	if err := errors.Join(orderID.Validate(), actionErr, labelErr); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		orderID: orderID,
		action:  a,
		label:   label,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() kernel.OrderNumber {
	return c.orderID
}

func (c ChangeOrderStatusCommand) Action() StatusAction {
	return c.action
}

func (c ChangeOrderStatusCommand) Label() string {
	return c.label
}
