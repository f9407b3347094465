package order

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/payment"
	"pizzeria/internal/core/domain/model/pizza"
	"pizzeria/internal/core/domain/model/promotion"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"

	"go.uber.org/zap"
)

const (
	// PendingPaymentLabel is the status label of a freshly created order.
	PendingPaymentLabel = "PENDING_PAYMENT"
	// PaymentReceivedLabel is published once an order is paid.
	PaymentReceivedLabel = "Payment received - Order is being prepared"

	// DefaultPreparationTime is added to the payment time to estimate readiness.
	DefaultPreparationTime = 30 * time.Minute
	// DefaultDeliveryTime is added on top of preparation for delivered orders.
	DefaultDeliveryTime = 20 * time.Minute
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method or restored through RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrMenuIsRequired is returned when an order has no catalog to price against.
	ErrMenuIsRequired = errs.NewValueIsRequiredError("menu")
	// ErrPizzaIsRequired is returned by AddPizza for a nil or unconstructed pizza.
	ErrPizzaIsRequired = errs.NewValueIsRequiredError("pizza")
	// ErrPromotionIsRequired is returned by ApplyPromotion for a nil promotion.
	ErrPromotionIsRequired = errs.NewValueIsRequiredError("promotion")
	// ErrPaymentMethodIsRequired is returned by Pay for a nil method.
	ErrPaymentMethodIsRequired = errs.NewValueIsRequiredError("paymentMethod")
	// ErrObserverIsRequired is returned by Subscribe for a nil observer.
	ErrObserverIsRequired = errs.NewValueIsRequiredError("observer")
	// ErrStatusLabelIsRequired is returned by UpdateStatus for a blank label.
	ErrStatusLabelIsRequired = errs.NewValueIsRequiredError("status")
)

// Menu supplies the catalog snapshot an order is priced against.
// *catalog.Catalog satisfies it.
type Menu interface {
	Snapshot() *catalog.Snapshot
}

// PaymentInfo records how an order was paid. Secrets of the payment method
// are never part of it.
type PaymentInfo struct {
	Kind        payment.Kind
	Description string
	Reference   kernel.UUID
	Amount      float64
	PaidAt      time.Time
}

// Option customises a new order.
type Option func(*Order)

// WithClock replaces time.Now, used for order time, history timestamps and
// promotion validity.
func WithClock(now func() time.Time) Option {
	return func(o *Order) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLogger sets the logger used to report failing observers.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Order) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Order is the aggregate root of the pizzeria. It owns the pizzas, pricing,
// payment, formal lifecycle state and status history of one customer order.
//
// Order follows these invariants:
//   - id is assigned once at construction and never changes
//   - total is recomputed in full after every change of pizzas, delivery or promotion
//   - payment happens at most once; after it the composition is locked
//   - every state change and every free-form label appends exactly one
//     history entry and notifies every observer, all under the order lock
//
// All methods are safe for concurrent use.
type Order struct {
	mu sync.Mutex

	// id is the human readable order number, e.g. "ORD1001"
	id kernel.OrderNumber

	// customer placed the order; nil is tolerated and caught by validation
	customer *customer.Customer

	// menu is the catalog prices are resolved from
	menu Menu

	// pizzas in the order they were added
	pizzas []*pizza.Pizza

	orderTime time.Time

	// statusLabel is the last published label (formal state name or free-form text)
	statusLabel string

	// state is the formal lifecycle state
	state Status

	deliveryType   DeliveryType
	deliveryCharge float64

	// pricing is the breakdown computed by the last recompute
	pricing pricing

	promotion *promotion.Promotion

	isPaid       bool
	payment      *PaymentInfo
	pointsEarned int

	feedback *Feedback

	tracker *Tracker

	now    func() time.Time
	logger *zap.Logger
	guard  guard.ConstructorGuard
}

// NewOrder creates an order in state PLACED with status label PENDING_PAYMENT,
// no pizzas, PICKUP delivery and a zero total.
//
// Parameters:
//   - id: order number drawn from a kernel.OrderNumberSequence
//   - c: the ordering customer; subscribed as first observer when not nil
//   - menu: the catalog pizzas are priced against
//   - opts: optional clock and logger
//
// Returns:
//   - *Order: the created order
//   - error: validation error if id or menu is missing, or c was not constructed
//
// Example:
//
//	seq := kernel.NewOrderNumberSequence("ORD", 1000)
//	o, err := order.NewOrder(seq.Next(), c, menu, order.WithLogger(logger))
func NewOrder(id kernel.OrderNumber, c *customer.Customer, menu Menu, opts ...Option) (*Order, error) {
	o := &Order{
		pizzas:       []*pizza.Pizza{},
		statusLabel:  PendingPaymentLabel,
		state:        Placed,
		deliveryType: Pickup,
		now:          time.Now,
		logger:       zap.NewNop(),
		guard:        guard.NewConstructorGuard(),
	}
	for _, opt := range opts {
		opt(o)
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(c),
		o.setMenu(menu),
	); err != nil {
		return nil, err
	}

	o.orderTime = o.now()
	o.tracker = newTracker(o.logger)
	if o.customer != nil {
		o.tracker.subscribe(o.customer)
	}
	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order number.
func (o *Order) ID() kernel.OrderNumber {
	return o.id
}

// Customer returns the ordering customer, possibly nil.
func (o *Order) Customer() *customer.Customer {
	return o.customer
}

// OrderTime returns the creation time.
func (o *Order) OrderTime() time.Time {
	return o.orderTime
}

// Pizzas returns clones of the ordered pizzas.
func (o *Order) Pizzas() []*pizza.Pizza {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]*pizza.Pizza, 0, len(o.pizzas))
	for _, p := range o.pizzas {
		out = append(out, p.Clone())
	}
	return out
}

// StatusLabel returns the last published status label.
func (o *Order) StatusLabel() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.statusLabel
}

// State returns the formal lifecycle state.
func (o *Order) State() Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// DeliveryType returns PICKUP or DELIVERY.
func (o *Order) DeliveryType() DeliveryType {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.deliveryType
}

// DeliveryCharge returns the configured delivery surcharge. It only counts
// towards the total for DELIVERY orders.
func (o *Order) DeliveryCharge() float64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.deliveryCharge
}

// Total returns the amount due.
func (o *Order) Total() float64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.pricing.total
}

// Promotion returns the applied promotion, nil when none.
func (o *Order) Promotion() *promotion.Promotion {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.promotion
}

// IsPaid reports whether the payment went through.
func (o *Order) IsPaid() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.isPaid
}

// Payment returns the payment record of a paid order.
func (o *Order) Payment() (PaymentInfo, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.payment == nil {
		return PaymentInfo{}, false
	}
	return *o.payment, true
}

// PointsEarned returns the loyalty points awarded on payment.
func (o *Order) PointsEarned() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.pointsEarned
}

// Feedback returns the customer's rating, if any.
func (o *Order) Feedback() (Feedback, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.feedback == nil {
		return Feedback{}, false
	}
	return *o.feedback, true
}

// History returns the status history, oldest first.
func (o *Order) History() []HistoryEntry {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.tracker.entries()
}

// EstimatedDelivery returns the estimated ready or delivery time, if known.
func (o *Order) EstimatedDelivery() (time.Time, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.tracker.estimatedDelivery == nil {
		return time.Time{}, false
	}
	return *o.tracker.estimatedDelivery, true
}

// IsLocked reports whether composition, delivery and promotion are frozen:
// the order is paid or cancelled.
func (o *Order) IsLocked() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.isLocked()
}

// AddPizza appends a copy of p and recomputes the total. Later changes to p
// do not reach the order.
//
// Returns:
//   - (true, nil) when the pizza was added
//   - (false, nil) when the order is locked (paid or cancelled)
//   - (false, error) for a nil pizza or one referencing unknown catalog items;
//     nothing is changed in that case
func (o *Order) AddPizza(p *pizza.Pizza) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, ErrPizzaIsRequired
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.isLocked() {
		return false, nil
	}

	pizzas := append(slices.Clone(o.pizzas), p.Clone())
	if err := o.reprice(pizzas, o.deliveryType, o.deliveryCharge, o.promotion); err != nil {
		return false, err
	}
	o.pizzas = pizzas
	return true, nil
}

// SetDelivery changes how the order is handed over and recomputes the total.
// charge must not be negative; it only counts for DELIVERY.
func (o *Order) SetDelivery(deliveryType DeliveryType, charge float64) (bool, error) {
	deliveryType, err := ParseDeliveryType(string(deliveryType))
	if err != nil {
		return false, err
	}
	if charge < 0 {
		return false, errs.NewValueIsInvalidErrorWithCause("deliveryCharge", fmt.Errorf("%.2f is negative", charge))
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.isLocked() {
		return false, nil
	}
	if err := o.reprice(o.pizzas, deliveryType, charge, o.promotion); err != nil {
		return false, err
	}
	o.deliveryType, o.deliveryCharge = deliveryType, charge
	return true, nil
}

// ApplyPromotion attaches p and recomputes the total. A promotion that is
// not valid today, or a locked order, makes this a no-op returning false.
//
// The promotion is checked again on every later recompute, so a promotion
// that expires stops discounting the next time the order changes.
func (o *Order) ApplyPromotion(p *promotion.Promotion) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, ErrPromotionIsRequired
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.isLocked() || !p.IsValid(o.now()) {
		return false, nil
	}
	if err := o.reprice(o.pizzas, o.deliveryType, o.deliveryCharge, p); err != nil {
		return false, err
	}
	o.promotion = p
	return true, nil
}

// Pay settles the total with method exactly once.
//
// On success the order is marked paid, the label PaymentReceivedLabel is
// published, and floor(total/100) loyalty points are credited to the customer.
// Payment does not move the formal state.
//
// Returns:
//   - (true, nil) when the payment went through
//   - (false, nil) when the order is already paid or cancelled; method is not invoked
//   - (false, error) when method is nil or the provider refused; the order stays unpaid
func (o *Order) Pay(ctx context.Context, method payment.Method) (bool, error) {
	if method == nil {
		return false, ErrPaymentMethodIsRequired
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.isPaid || o.state == Cancelled {
		return false, nil
	}

	receipt, err := method.Pay(ctx, o.pricing.total)
	if err != nil {
		return false, err
	}

	o.isPaid = true
	o.payment = &PaymentInfo{
		Kind:        method.Kind(),
		Description: method.Description(),
		Reference:   receipt.Reference,
		Amount:      receipt.Amount,
		PaidAt:      receipt.PaidAt,
	}

	ready := o.now().Add(DefaultPreparationTime)
	if o.deliveryType == Delivery {
		ready = ready.Add(DefaultDeliveryTime)
	}
	o.tracker.estimatedDelivery = &ready

	o.publish(PaymentReceivedLabel)

	o.pointsEarned = customer.PointsFor(o.pricing.total)
	if o.customer != nil {
		o.customer.AddLoyaltyPoints(o.pointsEarned)
	}
	return true, nil
}

// Next advances the formal state one step. It returns false, without any
// history entry, when the state has no successor.
func (o *Order) Next() bool {
	return o.transition(Status.Next)
}

// Prev moves the formal state one step back. It returns false, without any
// history entry, from PLACED and CANCELLED.
func (o *Order) Prev() bool {
	return o.transition(Status.Prev)
}

// Cancel moves a non-terminal order to CANCELLED.
func (o *Order) Cancel() bool {
	return o.transition(Status.Cancel)
}

// UpdateStatus publishes a free-form label such as "IN_OVEN". The label is
// recorded and broadcast like a state change, but the formal state is left
// untouched.
func (o *Order) UpdateStatus(label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return ErrStatusLabelIsRequired
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	o.publish(label)
	return nil
}

// Subscribe registers an observer after the existing ones. Registering the
// same observer twice yields two notifications per change.
func (o *Order) Subscribe(observer Observer) error {
	if observer == nil {
		return ErrObserverIsRequired
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	o.tracker.subscribe(observer)
	return nil
}

// ObserverCount returns the number of registered observers.
func (o *Order) ObserverCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.tracker.observerCount()
}

// AddFeedback rates the order; later feedback replaces earlier feedback.
func (o *Order) AddFeedback(rating int, comment string) (Feedback, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	f, err := NewFeedback(rating, comment, o.now())
	if err != nil {
		return Feedback{}, err
	}
	o.feedback = &f
	return f, nil
}

func (o *Order) transition(step func(Status) (Status, bool)) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	next, ok := step(o.state)
	if !ok {
		return false
	}
	o.state = next
	o.publish(next.String())
	return true
}

// publish must be called with o.mu held.
func (o *Order) publish(label string) {
	o.statusLabel = label
	o.tracker.publish(o.id.String(), label, o.now())
}

func (o *Order) isLocked() bool {
	return o.isPaid || o.state == Cancelled
}

func (o *Order) setID(id kernel.OrderNumber) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(c *customer.Customer) error {
	if c == nil {
		return nil
	}
	if err := c.Validate(); err != nil {
		return err
	}
	o.customer = c
	return nil
}

func (o *Order) setMenu(menu Menu) error {
	if menu == nil {
		return ErrMenuIsRequired
	}
	o.menu = menu
	return nil
}
