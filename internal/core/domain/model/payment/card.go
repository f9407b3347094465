package payment

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"pizzeria/internal/pkg/errs"

	"go.uber.org/zap"
)

// ErrCardNumberIsRequired is returned for an empty card number.
var ErrCardNumberIsRequired = errs.NewValueIsRequiredError("cardNumber")

// Card charges a credit card. The number is treated as opaque: only spaces and
// dashes are stripped, and only the last four characters are ever shown.
type Card struct {
	number string
	logger *zap.Logger
}

// NewCard creates a card payment. logger may be nil.
func NewCard(number string, logger *zap.Logger) (*Card, error) {
	number = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' {
			return -1
		}
		return r
	}, number)
	if number == "" {
		return nil, ErrCardNumberIsRequired
	}
	return &Card{number: number, logger: loggerOrNop(logger)}, nil
}

func (c *Card) Kind() Kind {
	return KindCard
}

// Masked returns the number with all but the last four characters hidden.
func (c *Card) Masked() string {
	if len(c.number) <= 4 {
		return strings.Repeat("*", len(c.number))
	}
	return strings.Repeat("*", len(c.number)-4) + c.number[len(c.number)-4:]
}

func (c *Card) Description() string {
	return "Credit Card " + c.Masked()
}

func (c *Card) Pay(ctx context.Context, amount float64) (Receipt, error) {
	if err := checkAmount(ctx, amount); err != nil {
		return Receipt{}, err
	}

	r := receipt(KindCard, amount, fmt.Sprintf("Paid %.2f using Credit Card: %s", amount, c.Masked()))

	c.logger.Info("card payment completed",
		zap.String("reference", r.Reference.String()),
		zap.Float64("amount", amount),
		zap.String("card", c.Masked()))
	return r, nil
}
