package order

import (
	"errors"
	"strings"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

const (
	MinRating = 1
	MaxRating = 5
)

// ErrFeedbackIsNotConstructed is returned when Feedback was not created via NewFeedback.
var ErrFeedbackIsNotConstructed = errors.New("Feedback must be created via NewFeedback constructor")

// Feedback is the customer's rating of an order.
type Feedback struct {
	id          kernel.UUID
	rating      int
	comment     string
	submittedAt time.Time
	guard       guard.ConstructorGuard
}

// NewFeedback validates the rating (1 to 5) and stamps the submission time.
func NewFeedback(rating int, comment string, submittedAt time.Time) (Feedback, error) {
	return RestoreFeedback(kernel.NewUUID(), rating, comment, submittedAt)
}

// RestoreFeedback rebuilds persisted feedback.
func RestoreFeedback(id kernel.UUID, rating int, comment string, submittedAt time.Time) (Feedback, error) {
	if err := id.Validate(); err != nil {
		return Feedback{}, err
	}
	if rating < MinRating || rating > MaxRating {
		return Feedback{}, errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	return Feedback{
		id:          id,
		rating:      rating,
		comment:     strings.TrimSpace(comment),
		submittedAt: submittedAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (f Feedback) Validate() error {
	return f.guard.Validate(ErrFeedbackIsNotConstructed)
}

func (f Feedback) ID() kernel.UUID {
	return f.id
}

func (f Feedback) Rating() int {
	return f.rating
}

func (f Feedback) Comment() string {
	return f.comment
}

func (f Feedback) SubmittedAt() time.Time {
	return f.submittedAt
}

// Stars renders the rating as asterisks, e.g. "****".
func (f Feedback) Stars() string {
	return StarsFor(f.rating)
}

// StarsFor renders a stored rating the way Stars does.
func StarsFor(rating int) string {
	if rating < 0 {
		return ""
	}
	return strings.Repeat("*", rating)
}
