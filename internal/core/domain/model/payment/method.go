// Package payment provides the ways an order can be paid.
//
// Every variant implements Method. A Method only completes a payment; the
// order that calls it is responsible for never paying twice.
package payment

import (
	"context"
	"fmt"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"go.uber.org/zap"
)

// Kind names a payment variant.
type Kind string

const (
	KindCash   Kind = "CASH"
	KindCard   Kind = "CARD"
	KindWallet Kind = "WALLET"
)

// Method completes a payment of a given amount.
type Method interface {
	// Pay settles amount and returns a receipt. amount must be positive.
	Pay(ctx context.Context, amount float64) (Receipt, error)
	// Kind identifies the variant.
	Kind() Kind
	// Description is safe to show and to store: it never contains secrets.
	Description() string
}

// Receipt is the confirmation of a completed payment.
type Receipt struct {
	Reference kernel.UUID
	Kind      Kind
	Amount    float64
	Message   string
	PaidAt    time.Time
}

func checkAmount(ctx context.Context, amount float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%.2f is not positive", amount))
	}
	return nil
}

func receipt(kind Kind, amount float64, message string) Receipt {
	return Receipt{
		Reference: kernel.NewUUID(),
		Kind:      kind,
		Amount:    amount,
		Message:   message,
		PaidAt:    time.Now(),
	}
}

func loggerOrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
