package commands

import (
	"errors"
	"strings"

	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrRedeemPointsCommandIsNotConstructed = errors.New(
		"RedeemPointsCommand must be created via NewRedeemPointsCommand constructor",
	)
	ErrPointsMustBePositive = errs.NewValueIsInvalidError("points")
)

// RedeemPointsCommand spends loyalty points of a customer.
type RedeemPointsCommand struct { //nolint:recvcheck //using for validation
	customerID string
	points     int

	guard guard.ConstructorGuard
}

func NewRedeemPointsCommand(customerID string, points int) (RedeemPointsCommand, error) {
	customerID = strings.TrimSpace(customerID)

	var idErr, pointsErr error
	if customerID == "" {
		idErr = ErrCustomerIDIsRequired
	}
	if points <= 0 {
		pointsErr = ErrPointsMustBePositive
	}
	if err := errors.Join(idErr, pointsErr); err != nil {
		return RedeemPointsCommand{}, err
	}

	return RedeemPointsCommand{
		customerID: customerID,
		points:     points,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RedeemPointsCommand) Validate() error {
	return c.guard.Validate(ErrRedeemPointsCommandIsNotConstructed)
}

func (c RedeemPointsCommand) CustomerID() string {
	return c.customerID
}

func (c RedeemPointsCommand) Points() int {
	return c.points
}
