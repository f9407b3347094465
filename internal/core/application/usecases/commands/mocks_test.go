package commands_test

import (
	"context"
	"strings"
	"testing"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/pizza"
	"pizzeria/internal/core/domain/model/promotion"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.OrderNumber) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInProgress(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) LastOrderNumber(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id string) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*customer.Customer); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerRepository) GetAll(ctx context.Context) ([]*customer.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*customer.Customer), args.Error(1)
}

// MockUoW serves every narrowed unit of work interface of the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCustomerUoWFactory struct{ mock.Mock }

func (m *MockCustomerUoWFactory) Create() commands.CustomerUoW {
	args := m.Called()
	return args.Get(0).(commands.CustomerUoW)
}

type MockPromotionRepository struct{ mock.Mock }

func (m *MockPromotionRepository) Get(ctx context.Context, code string) (*promotion.Promotion, error) {
	args := m.Called(ctx, code)
	if p, ok := args.Get(0).(*promotion.Promotion); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPromotionRepository) GetAll(ctx context.Context) ([]*promotion.Promotion, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*promotion.Promotion), args.Error(1)
}

// stubMenu is a small in-memory ports.Menu.
type stubMenu struct {
	catalog *catalog.Catalog
	pizzas  []*pizza.Pizza
}

func (m *stubMenu) Catalog() *catalog.Catalog {
	return m.catalog
}

func (m *stubMenu) Pizza(name string) (*pizza.Pizza, error) {
	for _, p := range m.pizzas {
		if strings.EqualFold(p.Name(), name) {
			return p.Clone(), nil
		}
	}
	return nil, errs.NewObjectNotFoundError("pizza", name)
}

func (m *stubMenu) Pizzas() []*pizza.Pizza {
	out := make([]*pizza.Pizza, 0, len(m.pizzas))
	for _, p := range m.pizzas {
		out = append(out, p.Clone())
	}
	return out
}

func newStubMenu(t *testing.T) *stubMenu {
	t.Helper()

	item := func(name string, category catalog.Category, price float64) catalog.Item {
		i, err := catalog.NewItem(name, category, price, "")
		require.NoError(t, err)
		return i
	}

	c, err := catalog.NewCatalog(
		item("Thin Italian", catalog.Crust, 0),
		item("Deep Pan", catalog.Crust, 50),
		item("Tomato", catalog.Sauce, 0),
		item("BBQ", catalog.Sauce, 30),
		item("Pepperoni", catalog.Topping, 200),
		item("Extra Cheese", catalog.Topping, 180),
		item("Pineapple", catalog.Topping, 150),
	)
	require.NoError(t, err)

	thin, _ := c.Lookup("Thin Italian", catalog.Crust)
	tomato, _ := c.Lookup("Tomato", catalog.Sauce)
	cheese, err := pizza.NewPizza("Cheese Blast", thin, tomato, 1200)
	require.NoError(t, err)

	return &stubMenu{catalog: c, pizzas: []*pizza.Pizza{cheese}}
}

// fixture builds domain objects shared by the handler tests.
type fixture struct {
	t    *testing.T
	menu *stubMenu
	seq  *kernel.OrderNumberSequence
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	return fixture{t: t, menu: newStubMenu(t), seq: kernel.NewOrderNumberSequence("ORD", 1000)}
}

func (f fixture) customer() *customer.Customer {
	f.t.Helper()
	c, err := customer.NewCustomer("C1", "Nimal", customer.Contact{Phone: "0771234567"}, nil)
	require.NoError(f.t, err)
	return c
}

func (f fixture) order(c *customer.Customer) *order.Order {
	f.t.Helper()
	o, err := order.NewOrder(f.seq.Next(), c, f.menu.catalog)
	require.NoError(f.t, err)
	return o
}

func (f fixture) orderWithPizza(c *customer.Customer) *order.Order {
	f.t.Helper()
	o := f.order(c)
	p, err := f.menu.Pizza("Cheese Blast")
	require.NoError(f.t, err)
	added, err := o.AddPizza(p)
	require.NoError(f.t, err)
	require.True(f.t, added)
	return o
}

func orderNumber(t *testing.T, s string) kernel.OrderNumber {
	t.Helper()
	id, err := kernel.ParseOrderNumber(s)
	require.NoError(t, err)
	return id
}
