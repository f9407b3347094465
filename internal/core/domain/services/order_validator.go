package services

import (
	"errors"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
)

var (
	// ErrCustomerIsMissing is reported when an order has no customer.
	ErrCustomerIsMissing = errs.NewValueIsRequiredError("customer")
	// ErrPaymentIsNotCompleted is reported when an order is not paid yet.
	ErrPaymentIsNotCompleted = errs.NewValueIsInvalidErrorWithCause("payment", errors.New("not completed"))
	// ErrOrderHasNoPizzas is reported when an order contains no pizza.
	ErrOrderHasNoPizzas = errs.NewValueIsRequiredError("pizzas")
)

// OrderValidator is one link of a chain of order preconditions.
//
// Validate returns the first failing precondition of the chain starting at
// this link, or nil when every link passed. A link without successor ends
// the chain successfully. SetNext links a successor and returns it, so
// chains read left to right:
//
//	head := services.NewCustomerValidator()
//	head.SetNext(services.NewPaymentValidator()).SetNext(services.NewPizzaValidator())
//	if err := head.Validate(o); err != nil {
//	    // err tells which precondition failed
//	}
type OrderValidator interface {
	Validate(o *order.Order) error
	SetNext(next OrderValidator) OrderValidator
}

// NewValidationChain links validators in the given order and returns the
// head. An empty chain accepts every order.
func NewValidationChain(validators ...OrderValidator) OrderValidator {
	if len(validators) == 0 {
		return &link{check: func(*order.Order) error { return nil }}
	}
	for i := 0; i < len(validators)-1; i++ {
		validators[i].SetNext(validators[i+1])
	}
	return validators[0]
}

// link holds the successor handling shared by all validators.
type link struct {
	next  OrderValidator
	check func(o *order.Order) error
}

func (l *link) SetNext(next OrderValidator) OrderValidator {
	l.next = next
	return next
}

func (l *link) Validate(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := l.check(o); err != nil {
		return err
	}
	if l.next == nil {
		return nil
	}
	return l.next.Validate(o)
}

// CustomerValidator requires a customer on the order.
type CustomerValidator struct {
	link
}

func NewCustomerValidator() *CustomerValidator {
	v := &CustomerValidator{}
	v.check = func(o *order.Order) error {
		if o.Customer() == nil {
			return ErrCustomerIsMissing
		}
		return nil
	}
	return v
}

// PaymentValidator requires a completed payment.
type PaymentValidator struct {
	link
}

func NewPaymentValidator() *PaymentValidator {
	v := &PaymentValidator{}
	v.check = func(o *order.Order) error {
		if !o.IsPaid() {
			return ErrPaymentIsNotCompleted
		}
		return nil
	}
	return v
}

// PizzaValidator requires at least one pizza.
type PizzaValidator struct {
	link
}

func NewPizzaValidator() *PizzaValidator {
	v := &PizzaValidator{}
	v.check = func(o *order.Order) error {
		if len(o.Pizzas()) == 0 {
			return ErrOrderHasNoPizzas
		}
		return nil
	}
	return v
}

// NewFulfillmentChain is the chain the kitchen uses before working on an
// order: customer, then payment, then pizzas.
func NewFulfillmentChain() OrderValidator {
	return NewValidationChain(NewCustomerValidator(), NewPaymentValidator(), NewPizzaValidator())
}
