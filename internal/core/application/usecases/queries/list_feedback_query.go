package queries

import (
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var ErrListFeedbackQueryIsNotConstructed = errors.New(
	"ListFeedbackQuery must be created via NewListFeedbackQuery constructor",
)

// ListFeedbackQuery lists all order ratings, oldest first.
type ListFeedbackQuery struct {
	guard guard.ConstructorGuard
}

func NewListFeedbackQuery() ListFeedbackQuery {
	return ListFeedbackQuery{guard: guard.NewConstructorGuard()}
}

func (q ListFeedbackQuery) Validate() error {
	return q.guard.Validate(ErrListFeedbackQueryIsNotConstructed)
}

// ListFeedbackQueryResponse is one rating with the order it belongs to.
type ListFeedbackQueryResponse struct {
	ID           kernel.UUID
	OrderID      string
	CustomerName string
	Rating       int
	Comment      string
	SubmittedAt  time.Time
}
