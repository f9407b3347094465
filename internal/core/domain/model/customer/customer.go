package customer

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"pizzeria/internal/core/domain/model/pizza"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"

	"go.uber.org/zap"
)

var (
	// ErrCustomerIsNotConstructed is returned when a Customer was not created via NewCustomer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
	// ErrIDIsRequired is returned for customers without an id.
	ErrIDIsRequired = errs.NewValueIsRequiredError("id")
	// ErrNameIsRequired is returned for customers without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Contact is the customer's address book entry.
type Contact struct {
	Address string
	Phone   string
	Email   string
}

// Notification is a status update received for one of the customer's orders.
type Notification struct {
	OrderID    string
	Status     string
	ReceivedAt time.Time
}

// Customer is a registered pizzeria customer.
//
// Invariants:
//   - id and name are never empty
//   - loyalty points never go negative through RedeemPoints
//   - saved pizzas are private clones and are not affected by later edits of the original
type Customer struct {
	id      string
	name    string
	contact Contact

	mu            sync.Mutex
	points        int
	orderHistory  []string
	savedPizzas   []*pizza.Pizza
	notifications []Notification

	logger *zap.Logger
	guard  guard.ConstructorGuard
}

// NewCustomer registers a customer with zero points.
//
// Example:
//
//	c, err := customer.NewCustomer("C1", "Nimal", customer.Contact{Email: "nimal@example.com"}, logger)
func NewCustomer(id, name string, contact Contact, logger *zap.Logger) (*Customer, error) {
	c := &Customer{
		contact:      trimContact(contact),
		orderHistory: []string{},
		savedPizzas:  []*pizza.Pizza{},
		guard:        guard.NewConstructorGuard(),
	}
	if err := errors.Join(c.setID(id), c.setName(name)); err != nil {
		return nil, err
	}
	c.SetLogger(logger)
	return c, nil
}

// RestoreCustomer rebuilds a customer from storage.
func RestoreCustomer(id, name string, contact Contact, points int, orderHistory []string, saved []*pizza.Pizza) (*Customer, error) {
	c, err := NewCustomer(id, name, contact, nil)
	if err != nil {
		return nil, err
	}
	c.points = points
	c.orderHistory = append(c.orderHistory, orderHistory...)
	c.savedPizzas = append(c.savedPizzas, saved...)
	return c, nil
}

// SetLogger replaces the logger used for notifications; nil disables logging.
func (c *Customer) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c.logger = logger.With(zap.String("customer_id", c.id))
}

// Validate reports whether the customer was constructed via NewCustomer.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the customer identifier.
func (c *Customer) ID() string {
	return c.id
}

// Name returns the customer name.
func (c *Customer) Name() string {
	return c.name
}

// Contact returns address, phone and email.
func (c *Customer) Contact() Contact {
	return c.contact
}

// LoyaltyPoints returns the current balance.
func (c *Customer) LoyaltyPoints() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.points
}

// Tier returns the loyalty tier for the current balance.
func (c *Customer) Tier() Tier {
	return TierFor(c.LoyaltyPoints())
}

// AddLoyaltyPoints credits points. Non-positive values are ignored.
func (c *Customer) AddLoyaltyPoints(points int) {
	if points <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.points += points
}

// CanRedeem reports whether the balance covers points.
func (c *Customer) CanRedeem(points int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return points > 0 && c.points >= points
}

// RedeemPoints debits points when the balance covers them and reports
// whether it did.
func (c *Customer) RedeemPoints(points int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if points <= 0 || c.points < points {
		return false
	}
	c.points -= points
	return true
}

// AddOrder appends an order id to the history. Points are awarded by the
// order on payment, not here.
func (c *Customer) AddOrder(orderID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.orderHistory = append(c.orderHistory, orderID)
}

// OrderHistory returns the ids of the customer's orders, oldest first.
func (c *Customer) OrderHistory() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.orderHistory)
}

// SaveCustomPizza stores a clone of p under name (the pizza's own name when
// name is empty).
func (c *Customer) SaveCustomPizza(p *pizza.Pizza, name string) (*pizza.Pizza, error) {
	if err := p.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("pizza", err)
	}
	saved := p.Clone()
	if strings.TrimSpace(name) != "" {
		if err := saved.SetName(name); err != nil {
			return nil, err
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.savedPizzas = append(c.savedPizzas, saved)
	return saved.Clone(), nil
}

// SavedPizzas returns clones of the saved pizzas, so callers can put them in
// an order and customise them without touching the saved recipe.
func (c *Customer) SavedPizzas() []*pizza.Pizza {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*pizza.Pizza, 0, len(c.savedPizzas))
	for _, p := range c.savedPizzas {
		out = append(out, p.Clone())
	}
	return out
}

// Update receives a status change for one of the customer's orders.
func (c *Customer) Update(status, orderID string) {
	c.mu.Lock()
	c.notifications = append(c.notifications, Notification{
		OrderID:    orderID,
		Status:     status,
		ReceivedAt: time.Now(),
	})
	c.mu.Unlock()

	c.logger.Info("order notification",
		zap.String("order_id", orderID),
		zap.String("status", status))
}

// Notifications returns the updates received so far, oldest first.
func (c *Customer) Notifications() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.notifications)
}

func (c *Customer) setID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrIDIsRequired
	}
	if strings.ContainsAny(id, " \t\n/") {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%q contains whitespace or '/'", id))
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func trimContact(contact Contact) Contact {
	return Contact{
		Address: strings.TrimSpace(contact.Address),
		Phone:   strings.TrimSpace(contact.Phone),
		Email:   strings.TrimSpace(contact.Email),
	}
}
