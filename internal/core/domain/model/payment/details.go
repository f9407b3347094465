package payment

import (
	"fmt"
	"strings"

	"pizzeria/internal/pkg/errs"

	"go.uber.org/zap"
)

// ParseKind accepts CASH, CARD or WALLET in any case.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToUpper(strings.TrimSpace(s))); k {
	case KindCash, KindCard, KindWallet:
		return k, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("paymentKind", fmt.Errorf("%q is not a payment method", s))
	}
}

// Details is what a customer hands over to pay. Only the fields of the
// chosen Kind are read.
type Details struct {
	Kind            Kind
	CollectionPoint CollectionPoint
	CardNumber      string
	Account         string
	Credential      string
}

// NewMethod creates the Method described by d. logger may be nil.
//
// Example:
//
//	m, err := payment.NewMethod(payment.Details{Kind: payment.KindCard, CardNumber: "4111 1111 1111 1234"}, logger)
func NewMethod(d Details, logger *zap.Logger) (Method, error) {
	kind, err := ParseKind(string(d.Kind))
	if err != nil {
		return nil, err
	}

	var (
		m         Method
		methodErr error
	)
	switch kind {
	case KindCash:
		m, methodErr = NewCash(d.CollectionPoint, logger)
	case KindCard:
		m, methodErr = NewCard(d.CardNumber, logger)
	default:
		m, methodErr = NewWallet(d.Account, d.Credential, logger)
	}
	if methodErr != nil {
		return nil, methodErr
	}
	return m, nil
}
