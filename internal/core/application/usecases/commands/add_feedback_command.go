package commands

import (
	"errors"
	"strings"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrAddFeedbackCommandIsNotConstructed = errors.New(
	"AddFeedbackCommand must be created via NewAddFeedbackCommand constructor",
)

// AddFeedbackCommand rates an order from 1 to 5 stars with an optional comment.
type AddFeedbackCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderNumber
	rating  int
	comment string

	guard guard.ConstructorGuard
}

func NewAddFeedbackCommand(orderID kernel.OrderNumber, rating int, comment string) (AddFeedbackCommand, error) {
	var ratingErr error
	if rating < order.MinRating || rating > order.MaxRating {
		ratingErr = errs.NewValueIsOutOfRangeError("rating", rating, order.MinRating, order.MaxRating)
	}
	if err := errors.Join(orderID.Validate(), ratingErr); err != nil {
		return AddFeedbackCommand{}, err
	}

	return AddFeedbackCommand{
		orderID: orderID,
		rating:  rating,
		comment: strings.TrimSpace(comment),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AddFeedbackCommand) Validate() error {
	return c.guard.Validate(ErrAddFeedbackCommandIsNotConstructed)
}

func (c AddFeedbackCommand) OrderID() kernel.OrderNumber {
	return c.orderID
}

func (c AddFeedbackCommand) Rating() int {
	return c.rating
}

func (c AddFeedbackCommand) Comment() string {
	return c.comment
}
