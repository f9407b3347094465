package order_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/payment"
	"pizzeria/internal/core/domain/model/pizza"
	"pizzeria/internal/core/domain/model/promotion"
	"pizzeria/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var fixedNow = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

type fixture struct {
	t       *testing.T
	menu    *catalog.Catalog
	seq     *kernel.OrderNumberSequence
	cust    *customer.Customer
	welcome *promotion.Promotion
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	menu, err := catalog.NewCatalog()
	require.NoError(t, err)
	for _, it := range []struct {
		name     string
		category catalog.Category
		price    float64
	}{
		{"Thin Italian", catalog.Crust, 0},
		{"Stuffed Crust", catalog.Crust, 100},
		{"Tomato", catalog.Sauce, 0},
		{"Pepperoni", catalog.Topping, 200},
		{"Ham", catalog.Topping, 200},
	} {
		item, err := catalog.NewItem(it.name, it.category, it.price, "")
		require.NoError(t, err)
		_, err = menu.Add(item)
		require.NoError(t, err)
	}

	c, err := customer.NewCustomer("C1", "Nimal", customer.Contact{}, nil)
	require.NoError(t, err)

	welcome, err := promotion.NewPromotion("WELCOME", "Welcome Discount", 10, fixedNow, fixedNow.AddDate(0, 1, 0))
	require.NoError(t, err)

	return &fixture{
		t:       t,
		menu:    menu,
		seq:     kernel.NewOrderNumberSequence("ORD", 1000),
		cust:    c,
		welcome: welcome,
	}
}

func (f *fixture) item(name string, category catalog.Category) catalog.Item {
	f.t.Helper()
	item, err := f.menu.Lookup(name, category)
	require.NoError(f.t, err)
	return item
}

func (f *fixture) pizza(name string, base float64) *pizza.Pizza {
	f.t.Helper()
	p, err := pizza.NewPizza(name, f.item("Thin Italian", catalog.Crust), f.item("Tomato", catalog.Sauce), base)
	require.NoError(f.t, err)
	return p
}

func (f *fixture) order(opts ...order.Option) *order.Order {
	f.t.Helper()
	o, err := order.NewOrder(f.seq.Next(), f.cust, f.menu, append([]order.Option{order.WithClock(clock)}, opts...)...)
	require.NoError(f.t, err)
	return o
}

func (f *fixture) cash() payment.Method {
	f.t.Helper()
	m, err := payment.NewCash(payment.OnDelivery, nil)
	require.NoError(f.t, err)
	return m
}

type countingMethod struct {
	calls int
	err   error
}

func (m *countingMethod) Pay(_ context.Context, amount float64) (payment.Receipt, error) {
	m.calls++
	if m.err != nil {
		return payment.Receipt{}, m.err
	}
	return payment.Receipt{Reference: kernel.NewUUID(), Kind: payment.KindCard, Amount: amount, PaidAt: fixedNow}, nil
}

func (m *countingMethod) Kind() payment.Kind  { return payment.KindCard }
func (m *countingMethod) Description() string { return "Test card" }

type recorder struct {
	name  string
	calls *[]string
}

func (r recorder) Update(status, orderID string) {
	*r.calls = append(*r.calls, r.name+":"+orderID+":"+status)
}

func TestNewOrder(t *testing.T) {
	t.Run("should start placed and pending payment", func(t *testing.T) {
		f := newFixture(t)

		o := f.order()

		require.NoError(t, o.Validate())
		assert.Equal(t, "ORD1001", o.ID().String())
		assert.Equal(t, order.Placed, o.State())
		assert.Equal(t, order.PendingPaymentLabel, o.StatusLabel())
		assert.Equal(t, order.Pickup, o.DeliveryType())
		assert.Empty(t, o.Pizzas())
		assert.Zero(t, o.Total())
		assert.False(t, o.IsPaid())
		assert.Empty(t, o.History())
		assert.Equal(t, fixedNow, o.OrderTime())
		assert.Equal(t, 1, o.ObserverCount())
	})

	t.Run("should allow a missing customer", func(t *testing.T) {
		f := newFixture(t)

		o, err := order.NewOrder(f.seq.Next(), nil, f.menu)

		require.NoError(t, err)
		assert.Nil(t, o.Customer())
		assert.Zero(t, o.ObserverCount())
	})

	t.Run("should require id and menu", func(t *testing.T) {
		o, err := order.NewOrder(kernel.OrderNumber{}, nil, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, kernel.ErrOrderNumberIsNotConstructed)
		assert.ErrorIs(t, err, order.ErrMenuIsRequired)
	})

	t.Run("nil order is not constructed", func(t *testing.T) {
		var o *order.Order

		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Pricing(t *testing.T) {
	t.Run("should recompute after each mutation", func(t *testing.T) {
		f := newFixture(t)
		o := f.order()

		added, err := o.AddPizza(f.pizza("Cheese Blast", 1200))
		require.NoError(t, err)
		require.True(t, added)
		assert.InDelta(t, 1200.0, o.Total(), 1e-9)

		_, err = o.AddPizza(f.pizza("Pepperoni Supreme", 1500))
		require.NoError(t, err)
		assert.InDelta(t, 2700.0, o.Total(), 1e-9)

		ok, err := o.SetDelivery(order.Delivery, 500)
		require.NoError(t, err)
		require.True(t, ok)
		assert.InDelta(t, 3200.0, o.Total(), 1e-9)

		ok, err = o.ApplyPromotion(f.welcome)
		require.NoError(t, err)
		require.True(t, ok)
		assert.InDelta(t, 2880.0, o.Total(), 1e-9)

		ok, err = o.SetDelivery(order.Pickup, 500)
		require.NoError(t, err)
		require.True(t, ok)
		assert.InDelta(t, 2430.0, o.Total(), 1e-9)
		assert.Equal(t, 500.0, o.DeliveryCharge())
	})

	t.Run("delivery type is accepted in any case", func(t *testing.T) {
		f := newFixture(t)
		o := f.order()
		_, err := o.AddPizza(f.pizza("Cheese Blast", 1000))
		require.NoError(t, err)

		ok, err := o.SetDelivery(" delivery ", 500)

		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, order.Delivery, o.DeliveryType())
		assert.InDelta(t, 1500.0, o.Total(), 1e-9)
		assert.InDelta(t, 500.0, o.Summary().DeliveryFee, 1e-9)
	})

	t.Run("the order keeps its own copy of an added pizza", func(t *testing.T) {
		f := newFixture(t)
		o := f.order()
		p := f.pizza("Cheese Blast", 1000)
		_, err := o.AddPizza(p)
		require.NoError(t, err)
		paid, err := o.Pay(context.Background(), f.cash())
		require.NoError(t, err)
		require.True(t, paid)

		require.True(t, p.AddTopping(f.item("Ham", catalog.Topping)))

		assert.InDelta(t, 1000.0, o.Total(), 1e-9)
		pizzas := o.Pizzas()
		require.Len(t, pizzas, 1)
		assert.Empty(t, pizzas[0].Toppings())
		assert.False(t, pizzas[0].IsCustom())
		price, err := pizzas[0].Total(f.menu.Snapshot())
		require.NoError(t, err)
		assert.InDelta(t, o.Total(), price, 1e-9)
	})

	t.Run("should reject a pizza with unknown references without mutation", func(t *testing.T) {
		f := newFixture(t)
		o := f.order()
		_, err := o.AddPizza(f.pizza("Cheese Blast", 1200))
		require.NoError(t, err)

		ghost := pizza.RestorePizza("Ghost", 1, 3, 1000, []catalog.Ref{77}, true)
		added, err := o.AddPizza(ghost)

		assert.False(t, added)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Len(t, o.Pizzas(), 1)
		assert.InDelta(t, 1200.0, o.Total(), 1e-9)
	})

	t.Run("should reject invalid input", func(t *testing.T) {
		f := newFixture(t)
		o := f.order()

		_, err := o.AddPizza(nil)
		assert.ErrorIs(t, err, order.ErrPizzaIsRequired)

		_, err = o.SetDelivery("DRONE", 10)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = o.SetDelivery(order.Delivery, -1)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = o.ApplyPromotion(nil)
		assert.ErrorIs(t, err, order.ErrPromotionIsRequired)
	})

	t.Run("invalid promotion is a no-op", func(t *testing.T) {
		f := newFixture(t)
		o := f.order()
		_, err := o.AddPizza(f.pizza("Cheese Blast", 1000))
		require.NoError(t, err)
		expired, err := promotion.NewPromotion("OLD", "", 50, fixedNow.AddDate(0, -2, 0), fixedNow.AddDate(0, -1, 0))
		require.NoError(t, err)

		ok, err := o.ApplyPromotion(expired)

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, o.Promotion())
		assert.InDelta(t, 1000.0, o.Total(), 1e-9)
	})

	t.Run("expired promotion stops discounting on the next recompute", func(t *testing.T) {
		f := newFixture(t)
		now := fixedNow
		o, err := order.NewOrder(f.seq.Next(), f.cust, f.menu, order.WithClock(func() time.Time { return now }))
		require.NoError(t, err)
		_, err = o.AddPizza(f.pizza("Cheese Blast", 1000))
		require.NoError(t, err)
		ok, err := o.ApplyPromotion(f.welcome)
		require.NoError(t, err)
		require.True(t, ok)
		require.InDelta(t, 900.0, o.Total(), 1e-9)

		now = fixedNow.AddDate(0, 2, 0)
		assert.InDelta(t, 900.0, o.Total(), 1e-9)

		_, err = o.AddPizza(f.pizza("Cheese Blast", 1000))
		require.NoError(t, err)
		assert.InDelta(t, 2000.0, o.Total(), 1e-9)
	})

	t.Run("catalog edits apply on the next recompute only", func(t *testing.T) {
		f := newFixture(t)
		o := f.order()
		p := f.pizza("Pepperoni", 1000)
		require.True(t, p.AddTopping(f.item("Pepperoni", catalog.Topping)))
		_, err := o.AddPizza(p)
		require.NoError(t, err)

		require.NoError(t, f.menu.SetPrice(f.item("Pepperoni", catalog.Topping).Ref(), 400))
		assert.InDelta(t, 1200.0, o.Total(), 1e-9)

		_, err = o.SetDelivery(order.Pickup, 0)
		require.NoError(t, err)
		assert.InDelta(t, 1400.0, o.Total(), 1e-9)
	})
}

func TestOrder_Pay(t *testing.T) {
	t.Run("should pay once and award points once", func(t *testing.T) {
		f := newFixture(t)
		o := f.order()
		_, err := o.AddPizza(f.pizza("Cheese Blast", 1250))
		require.NoError(t, err)
		method := &countingMethod{}

		paid, err := o.Pay(context.Background(), method)
		require.NoError(t, err)
		require.True(t, paid)

		again, err := o.Pay(context.Background(), method)
		require.NoError(t, err)

		assert.False(t, again)
		assert.Equal(t, 1, method.calls)
		assert.Equal(t, 12, o.PointsEarned())
		assert.Equal(t, 12, f.cust.LoyaltyPoints())
		assert.True(t, o.IsPaid())
		assert.Equal(t, order.PaymentReceivedLabel, o.StatusLabel())
		assert.Equal(t, order.Placed, o.State())

		info, ok := o.Payment()
		require.True(t, ok)
		assert.Equal(t, "Test card", info.Description)
		assert.Equal(t, 1250.0, info.Amount)

		eta, ok := o.EstimatedDelivery()
		require.True(t, ok)
		assert.Equal(t, fixedNow.Add(order.DefaultPreparationTime), eta)
	})

	t.Run("should lock composition after payment", func(t *testing.T) {
		f := newFixture(t)
		o := f.order()
		_, err := o.AddPizza(f.pizza("Cheese Blast", 1000))
		require.NoError(t, err)
		_, err = o.Pay(context.Background(), f.cash())
		require.NoError(t, err)

		added, err := o.AddPizza(f.pizza("Another", 1000))
		require.NoError(t, err)
		delivered, err := o.SetDelivery(order.Delivery, 500)
		require.NoError(t, err)
		promoted, err := o.ApplyPromotion(f.welcome)
		require.NoError(t, err)

		assert.False(t, added)
		assert.False(t, delivered)
		assert.False(t, promoted)
		assert.True(t, o.IsLocked())
		assert.Len(t, o.Pizzas(), 1)
		assert.InDelta(t, 1000.0, o.Total(), 1e-9)
	})

	t.Run("failed payment leaves the order unpaid", func(t *testing.T) {
		f := newFixture(t)
		o := f.order()
		_, err := o.AddPizza(f.pizza("Cheese Blast", 1000))
		require.NoError(t, err)
		method := &countingMethod{err: errors.New("declined")}

		paid, err := o.Pay(context.Background(), method)

		assert.False(t, paid)
		assert.EqualError(t, err, "declined")
		assert.False(t, o.IsPaid())
		assert.Empty(t, o.History())
		assert.Zero(t, f.cust.LoyaltyPoints())
	})

	t.Run("empty order cannot be paid", func(t *testing.T) {
		f := newFixture(t)
		o := f.order()

		paid, err := o.Pay(context.Background(), f.cash())

		assert.False(t, paid)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("cancelled order is not charged", func(t *testing.T) {
		f := newFixture(t)
		o := f.order()
		_, err := o.AddPizza(f.pizza("Cheese Blast", 1000))
		require.NoError(t, err)
		require.True(t, o.Cancel())
		method := &countingMethod{}

		paid, err := o.Pay(context.Background(), method)

		require.NoError(t, err)
		assert.False(t, paid)
		assert.Zero(t, method.calls)
	})

	t.Run("nil method is rejected", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.order().Pay(context.Background(), nil)

		assert.ErrorIs(t, err, order.ErrPaymentMethodIsRequired)
	})

	t.Run("delivery orders get a later estimate", func(t *testing.T) {
		f := newFixture(t)
		o := f.order()
		_, err := o.AddPizza(f.pizza("Cheese Blast", 1000))
		require.NoError(t, err)
		_, err = o.SetDelivery(order.Delivery, 200)
		require.NoError(t, err)

		_, err = o.Pay(context.Background(), f.cash())
		require.NoError(t, err)

		eta, ok := o.EstimatedDelivery()
		require.True(t, ok)
		assert.Equal(t, fixedNow.Add(order.DefaultPreparationTime+order.DefaultDeliveryTime), eta)
	})
}

func TestOrder_StateMachine(t *testing.T) {
	t.Run("should walk forward and back with one entry per step", func(t *testing.T) {
		f := newFixture(t)
		o := f.order()

		assert.False(t, o.Prev())
		assert.True(t, o.Next())
		assert.True(t, o.Next())
		assert.True(t, o.Next())
		assert.Equal(t, order.Delivered, o.State())
		assert.False(t, o.Next())
		assert.True(t, o.Prev())
		assert.Equal(t, order.OutForDelivery, o.State())

		labels := []string{}
		for _, e := range o.History() {
			labels = append(labels, e.Label)
		}
		assert.Equal(t, []string{"PREPARING", "OUT_FOR_DELIVERY", "DELIVERED", "OUT_FOR_DELIVERY"}, labels)
		assert.Equal(t, "OUT_FOR_DELIVERY", o.StatusLabel())
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		f := newFixture(t)
		o := f.order()
		require.True(t, o.Next())

		assert.True(t, o.Cancel())
		assert.False(t, o.Cancel())
		assert.False(t, o.Next())
		assert.False(t, o.Prev())
		assert.Equal(t, order.Cancelled, o.State())
		assert.Len(t, o.History(), 2)
		assert.True(t, o.IsLocked())
	})

	t.Run("delivered cannot be cancelled", func(t *testing.T) {
		f := newFixture(t)
		o := f.order()
		for range 3 {
			require.True(t, o.Next())
		}

		assert.False(t, o.Cancel())
		assert.Equal(t, order.Delivered, o.State())
	})

	t.Run("free-form labels leave the state alone", func(t *testing.T) {
		f := newFixture(t)
		o := f.order()
		require.True(t, o.Next())

		require.NoError(t, o.UpdateStatus("IN_OVEN"))
		require.NoError(t, o.UpdateStatus(" READY_FOR_DELIVERY "))

		assert.Equal(t, order.Preparing, o.State())
		assert.Equal(t, "READY_FOR_DELIVERY", o.StatusLabel())
		assert.Len(t, o.History(), 3)
		assert.ErrorIs(t, o.UpdateStatus(" "), order.ErrStatusLabelIsRequired)
	})
}

func TestOrder_Notifications(t *testing.T) {
	t.Run("each publish notifies every observer once in order", func(t *testing.T) {
		f := newFixture(t)
		o := f.order()
		var calls []string
		require.NoError(t, o.Subscribe(recorder{name: "kitchen", calls: &calls}))
		require.NoError(t, o.Subscribe(recorder{name: "dashboard", calls: &calls}))

		require.True(t, o.Next())
		require.NoError(t, o.UpdateStatus("IN_OVEN"))

		assert.Equal(t, []string{
			"kitchen:ORD1001:PREPARING",
			"dashboard:ORD1001:PREPARING",
			"kitchen:ORD1001:IN_OVEN",
			"dashboard:ORD1001:IN_OVEN",
		}, calls)
		assert.Len(t, o.History(), 2)

		notes := f.cust.Notifications()
		require.Len(t, notes, 2)
		assert.Equal(t, "PREPARING", notes[0].Status)
	})

	t.Run("duplicate registration yields duplicate notifications", func(t *testing.T) {
		f := newFixture(t)
		o := f.order()
		var calls []string
		r := recorder{name: "dup", calls: &calls}
		require.NoError(t, o.Subscribe(r))
		require.NoError(t, o.Subscribe(r))

		require.True(t, o.Next())

		assert.Len(t, calls, 2)
	})

	t.Run("observer sees its own history entry", func(t *testing.T) {
		f := newFixture(t)
		o := f.order()
		var seen int
		require.NoError(t, o.Subscribe(order.ObserverFunc(func(status, _ string) {
			seen++
		})))

		require.True(t, o.Next())
		require.True(t, o.Next())

		assert.Equal(t, 2, seen)
		assert.Len(t, o.History(), seen)
	})

	t.Run("a panicking observer does not stop the broadcast", func(t *testing.T) {
		core, logs := observer.New(zap.ErrorLevel)
		f := newFixture(t)
		o := f.order(order.WithLogger(zap.New(core)))
		var calls []string
		require.NoError(t, o.Subscribe(order.ObserverFunc(func(string, string) { panic("boom") })))
		require.NoError(t, o.Subscribe(recorder{name: "after", calls: &calls}))

		require.True(t, o.Next())

		assert.Equal(t, []string{"after:ORD1001:PREPARING"}, calls)
		assert.Equal(t, 1, logs.FilterMessage("order observer failed").Len())
		assert.Len(t, f.cust.Notifications(), 1)
	})

	t.Run("nil observer is rejected", func(t *testing.T) {
		f := newFixture(t)

		assert.ErrorIs(t, f.order().Subscribe(nil), order.ErrObserverIsRequired)
	})

	t.Run("history entries render with a clock time", func(t *testing.T) {
		f := newFixture(t)
		o := f.order()
		require.True(t, o.Next())

		assert.Equal(t, "12:00:00 - PREPARING", o.History()[0].String())
	})
}

func TestOrder_Feedback(t *testing.T) {
	f := newFixture(t)
	o := f.order()

	_, err := o.AddFeedback(6, "too good")
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	_, ok := o.Feedback()
	assert.False(t, ok)

	fb, err := o.AddFeedback(4, " Tasty ")
	require.NoError(t, err)

	stored, ok := o.Feedback()
	require.True(t, ok)
	assert.True(t, stored.ID().IsEqual(fb.ID()))
	assert.Equal(t, 4, stored.Rating())
	assert.Equal(t, "Tasty", stored.Comment())
	assert.Equal(t, "****", stored.Stars())
	assert.Equal(t, fixedNow, stored.SubmittedAt())
}

func TestOrder_EndToEnd(t *testing.T) {
	f := newFixture(t)
	special, err := promotion.NewPromotion("SPECIAL", "Weekend Special", 15, fixedNow, fixedNow.AddDate(0, 0, 7))
	require.NoError(t, err)
	o := f.order()

	_, err = o.AddPizza(f.pizza("Cheese Blast", 1200))
	require.NoError(t, err)
	_, err = o.SetDelivery(order.Delivery, 500)
	require.NoError(t, err)
	applied, err := o.ApplyPromotion(special)
	require.NoError(t, err)
	require.True(t, applied)
	paid, err := o.Pay(context.Background(), f.cash())
	require.NoError(t, err)
	require.True(t, paid)

	want := order.Summary{
		OrderID:      "ORD1001",
		CustomerID:   "C1",
		CustomerName: "Nimal",
		OrderTime:    fixedNow,
		DeliveryType: order.Delivery,
		Lines: []order.Line{{
			Name:        "Cheese Blast",
			Description: "Crust: Thin Italian (+0.00); Sauce: Tomato (+0.00)",
			Price:       1200,
		}},
		Subtotal:       1200,
		DeliveryFee:    500,
		PromotionCode:  "SPECIAL",
		PromotionText:  "Weekend Special",
		Discount:       255,
		Total:          1445,
		Status:         order.PaymentReceivedLabel,
		State:          order.Placed,
		IsPaid:         true,
		PaymentMethod:  "Cash ON_DELIVERY",
		PointsEarned:   14,
		CustomerPoints: 14,
	}
	if diff := cmp.Diff(want, o.Summary(), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}

	tracking := o.Tracking()
	assert.Equal(t, "ORD1001", tracking.OrderID)
	require.Len(t, tracking.History, 1)
	assert.Equal(t, order.PaymentReceivedLabel, tracking.History[0].Label)
	assert.NotNil(t, tracking.EstimatedDelivery)
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should round trip through a snapshot without publishing", func(t *testing.T) {
		f := newFixture(t)
		o := f.order()
		_, err := o.AddPizza(f.pizza("Cheese Blast", 1200))
		require.NoError(t, err)
		_, err = o.ApplyPromotion(f.welcome)
		require.NoError(t, err)
		_, err = o.Pay(context.Background(), f.cash())
		require.NoError(t, err)
		require.True(t, o.Next())
		notesBefore := len(f.cust.Notifications())

		restored, err := order.RestoreOrder(o.Snapshot(), f.menu, order.WithClock(clock))

		require.NoError(t, err)
		assert.Len(t, f.cust.Notifications(), notesBefore)
		if diff := cmp.Diff(o.Summary(), restored.Summary()); diff != "" {
			t.Errorf("summary mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, o.History(), restored.History())
		assert.True(t, restored.IsLocked())
		assert.Equal(t, 1, restored.ObserverCount())

		require.True(t, restored.Next())
		assert.Len(t, f.cust.Notifications(), notesBefore+1)
	})

	t.Run("should reject an invalid state", func(t *testing.T) {
		f := newFixture(t)
		s := f.order().Snapshot()
		s.State = order.Unknown

		_, err := order.RestoreOrder(s, f.menu)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
