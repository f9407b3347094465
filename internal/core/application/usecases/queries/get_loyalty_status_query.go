package queries

import (
	"errors"
	"strings"

	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrGetLoyaltyStatusQueryIsNotConstructed = errors.New(
	"GetLoyaltyStatusQuery must be created via NewGetLoyaltyStatusQuery constructor",
)

// GetLoyaltyStatusQuery asks for a customer's points and tier.
type GetLoyaltyStatusQuery struct {
	customerID string
	guard      guard.ConstructorGuard
}

func NewGetLoyaltyStatusQuery(customerID string) (GetLoyaltyStatusQuery, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return GetLoyaltyStatusQuery{}, errs.NewValueIsRequiredError("customerID")
	}
	return GetLoyaltyStatusQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetLoyaltyStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetLoyaltyStatusQueryIsNotConstructed)
}

// GetLoyaltyStatusQueryResponse describes the customer's standing. NextTier
// is nil at the top tier.
type GetLoyaltyStatusQueryResponse struct {
	CustomerID   string
	Name         string
	Points       int
	Tier         customer.Tier
	NextTier     *customer.Tier
	PointsToNext int
	OrderCount   int
}
