package order

import (
	"errors"
	"slices"
	"time"

	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/pizza"
	"pizzeria/internal/core/domain/model/promotion"
	"pizzeria/internal/pkg/guard"

	"go.uber.org/zap"
)

// Snapshot carries the persisted form of an order. Pricing figures are taken
// as stored: a restored order keeps the amounts it was saved with until it
// is changed again.
type Snapshot struct {
	ID                kernel.OrderNumber
	Customer          *customer.Customer
	Pizzas            []*pizza.Pizza
	OrderTime         time.Time
	StatusLabel       string
	State             Status
	DeliveryType      DeliveryType
	DeliveryCharge    float64
	Lines             []Line
	Subtotal          float64
	DeliveryFee       float64
	Total             float64
	Promotion         *promotion.Promotion
	IsPaid            bool
	Payment           *PaymentInfo
	PointsEarned      int
	Feedback          *Feedback
	History           []HistoryEntry
	EstimatedDelivery *time.Time
}

// RestoreOrder rebuilds an order from storage without publishing anything.
// The customer, if any, is subscribed again as first observer.
func RestoreOrder(s Snapshot, menu Menu, opts ...Option) (*Order, error) {
	o := &Order{
		now:    time.Now,
		logger: zap.NewNop(),
		guard:  guard.NewConstructorGuard(),
	}
	for _, opt := range opts {
		opt(o)
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setCustomer(s.Customer),
		o.setMenu(menu),
		s.State.Validate(),
	); err != nil {
		return nil, err
	}
	deliveryType, err := ParseDeliveryType(string(s.DeliveryType))
	if err != nil {
		return nil, err
	}

	o.pizzas = slices.Clone(s.Pizzas)
	if o.pizzas == nil {
		o.pizzas = []*pizza.Pizza{}
	}
	o.orderTime = s.OrderTime
	o.statusLabel = s.StatusLabel
	o.state = s.State
	o.deliveryType = deliveryType
	o.deliveryCharge = s.DeliveryCharge
	o.pricing = pricing{
		lines:       slices.Clone(s.Lines),
		subtotal:    s.Subtotal,
		deliveryFee: s.DeliveryFee,
		total:       s.Total,
	}
	o.promotion = s.Promotion
	o.isPaid = s.IsPaid
	o.payment = s.Payment
	o.pointsEarned = s.PointsEarned
	o.feedback = s.Feedback

	o.tracker = newTracker(o.logger)
	o.tracker.history = append(o.tracker.history, s.History...)
	o.tracker.estimatedDelivery = s.EstimatedDelivery
	if o.customer != nil {
		o.tracker.subscribe(o.customer)
	}
	return o, nil
}

// Snapshot returns the persisted form of the order.
func (o *Order) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()

	s := Snapshot{
		ID:             o.id,
		Customer:       o.customer,
		Pizzas:         slices.Clone(o.pizzas),
		OrderTime:      o.orderTime,
		StatusLabel:    o.statusLabel,
		State:          o.state,
		DeliveryType:   o.deliveryType,
		DeliveryCharge: o.deliveryCharge,
		Lines:          slices.Clone(o.pricing.lines),
		Subtotal:       o.pricing.subtotal,
		DeliveryFee:    o.pricing.deliveryFee,
		Total:          o.pricing.total,
		Promotion:      o.promotion,
		IsPaid:         o.isPaid,
		PointsEarned:   o.pointsEarned,
		History:        o.tracker.entries(),
	}
	if o.payment != nil {
		p := *o.payment
		s.Payment = &p
	}
	if o.feedback != nil {
		f := *o.feedback
		s.Feedback = &f
	}
	if o.tracker.estimatedDelivery != nil {
		at := *o.tracker.estimatedDelivery
		s.EstimatedDelivery = &at
	}
	return s
}
