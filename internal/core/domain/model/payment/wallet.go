package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pizzeria/internal/pkg/errs"

	"go.uber.org/zap"
)

var (
	// ErrAccountIsRequired is returned for a wallet without an account.
	ErrAccountIsRequired = errs.NewValueIsRequiredError("account")
	// ErrCredentialIsRequired is returned for a wallet without a credential.
	ErrCredentialIsRequired = errs.NewValueIsRequiredError("credential")
)

// Wallet pays through an online wallet account (e.g. a PayPal-style email
// login). The credential is held only for the duration of the payment and is
// never logged or described.
type Wallet struct {
	account    string
	credential string
	logger     *zap.Logger
}

// NewWallet creates a wallet payment. logger may be nil.
func NewWallet(account, credential string, logger *zap.Logger) (*Wallet, error) {
	w := &Wallet{
		account:    strings.TrimSpace(account),
		credential: credential,
		logger:     loggerOrNop(logger),
	}

	var err error
	if w.account == "" {
		err = errors.Join(err, ErrAccountIsRequired)
	}
	if w.credential == "" {
		err = errors.Join(err, ErrCredentialIsRequired)
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (w *Wallet) Kind() Kind {
	return KindWallet
}

// Account returns the wallet account identifier.
func (w *Wallet) Account() string {
	return w.account
}

func (w *Wallet) Description() string {
	return "Wallet " + w.account
}

func (w *Wallet) Pay(ctx context.Context, amount float64) (Receipt, error) {
	if err := checkAmount(ctx, amount); err != nil {
		return Receipt{}, err
	}

	r := receipt(KindWallet, amount, fmt.Sprintf("Paid %.2f using wallet account: %s", amount, w.account))

	w.logger.Info("wallet payment completed",
		zap.String("reference", r.Reference.String()),
		zap.Float64("amount", amount),
		zap.String("account", w.account))
	return r, nil
}
