package queries

import (
	"errors"
	"strings"
	"time"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists stored orders, optionally narrowed to one formal state
// and one customer.
//
// Example:
//
//	query, err := NewGetOrdersQuery("PREPARING", "")
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	state      order.Status
	customerID string
	guard      guard.ConstructorGuard
}

// NewGetOrdersQuery accepts an empty state and an empty customer id as
// "any".
func NewGetOrdersQuery(state, customerID string) (GetOrdersQuery, error) {
	q := GetOrdersQuery{customerID: strings.TrimSpace(customerID), guard: guard.NewConstructorGuard()}
	if strings.TrimSpace(state) != "" {
		s, err := order.ParseStatus(state)
		if err != nil {
			return GetOrdersQuery{}, err
		}
		q.state = s
	}
	return q, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// State is the requested formal state; order.Unknown means any.
func (q GetOrdersQuery) State() order.Status {
	return q.state
}

func (q GetOrdersQuery) CustomerID() string {
	return q.customerID
}

// GetOrdersQueryResponse is one row of the order list.
type GetOrdersQueryResponse struct {
	ID           string
	CustomerID   string
	OrderTime    time.Time
	State        order.Status
	Status       string
	DeliveryType order.DeliveryType
	Total        float64
	IsPaid       bool
}
