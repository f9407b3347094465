package postgres_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	postgres_adapter "pizzeria/internal/adapters/out/postgres"
	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/payment"
	"pizzeria/internal/core/domain/model/pizza"
	"pizzeria/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite runs the GORM unit of work against a real
// PostgreSQL container.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
	menu      *catalog.Catalog
	seq       *kernel.OrderNumberSequence
	labels    []string
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))

	crust, err := catalog.NewItem("Thin Italian", catalog.Crust, 0, "thin")
	suite.Require().NoError(err)
	sauce, err := catalog.NewItem("Tomato", catalog.Sauce, 0, "")
	suite.Require().NoError(err)
	suite.menu, err = catalog.NewCatalog(crust, sauce)
	suite.Require().NoError(err)

	observer := order.ObserverFunc(func(status, _ string) {
		suite.labels = append(suite.labels, status)
	})
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db, suite.menu, nil, observer)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, order_pizzas, order_history, order_feedback, customers, saved_pizzas").Error
	suite.Require().NoError(err)
	suite.seq = kernel.NewOrderNumberSequence(kernel.DefaultOrderNumberPrefix, kernel.DefaultOrderNumberOffset)
	suite.labels = nil
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.CustomerRepository())
	suite.NotNil(uow2.OrderRepository())
	suite.NotNil(uow2.CustomerRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().Error(uow.Commit(ctx), "Should error when committing without active transaction")
	suite.Require().Error(uow.Rollback(ctx), "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderAndCustomerCommitTogether() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	c := suite.createCustomer()
	o := suite.createOrder(c)
	c.AddOrder(o.ID().String())
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, c))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	reader := suite.factory.Create()
	got, err := reader.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(c.ID(), got.Customer().ID())
	suite.Equal([]string{o.ID().String()}, got.Customer().OrderHistory())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SharesCustomerBetweenRepositories() {
	ctx := context.Background()
	c := suite.createCustomer()
	o := suite.createOrder(c)
	suite.addPizza(o)
	suite.seed(ctx, c, o)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	loaded, err := uow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	owner, err := uow.CustomerRepository().Get(ctx, c.ID())
	suite.Require().NoError(err)

	suite.Same(owner, loaded.Customer())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PaymentCreditsCustomerPoints() {
	ctx := context.Background()
	c := suite.createCustomer()
	o := suite.createOrder(c)
	suite.addPizza(o)
	suite.seed(ctx, c, o)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	loaded, err := uow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	cash, err := payment.NewCash(payment.OnDelivery, nil)
	suite.Require().NoError(err)
	paid, err := loaded.Pay(ctx, cash)
	suite.Require().NoError(err)
	suite.Require().True(paid)
	suite.Require().NoError(uow.OrderRepository().Update(ctx, loaded))
	suite.Require().NoError(uow.CustomerRepository().Update(ctx, loaded.Customer()))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal([]string{order.PaymentReceivedLabel}, suite.labels)

	reader := suite.factory.Create()
	owner, err := reader.CustomerRepository().Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal(loaded.PointsEarned(), owner.LoyaltyPoints())
	suite.Positive(owner.LoyaltyPoints())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentPaymentsChargeOnce() {
	ctx := context.Background()
	c := suite.createCustomer()
	o := suite.createOrder(c)
	suite.addPizza(o)
	suite.seed(ctx, c, o)
	method := &countingMethod{}

	first := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))
	defer func() { _ = first.Rollback(ctx) }()
	loaded, err := first.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)

	second := make(chan payResult, 1)
	go func() {
		paid, payErr := suite.pay(ctx, o.ID(), method)
		second <- payResult{paid: paid, err: payErr}
	}()

	select {
	case r := <-second:
		suite.FailNow("second payment did not wait for the order lock", "%+v", r)
	case <-time.After(300 * time.Millisecond):
	}

	paid, err := loaded.Pay(ctx, method)
	suite.Require().NoError(err)
	suite.Require().True(paid)
	suite.Require().NoError(first.OrderRepository().Update(ctx, loaded))
	suite.Require().NoError(first.CustomerRepository().Update(ctx, loaded.Customer()))
	suite.Require().NoError(first.Commit(ctx))

	r := <-second
	suite.Require().NoError(r.err)
	suite.False(r.paid)
	suite.Equal(int32(1), method.calls.Load())

	owner, err := suite.factory.Create().CustomerRepository().Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal(loaded.PointsEarned(), owner.LoyaltyPoints())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentPointUpdatesAreNotLost() {
	ctx := context.Background()
	c := suite.createCustomer()
	suite.seed(ctx, c, suite.createOrder(c))

	first := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))
	defer func() { _ = first.Rollback(ctx) }()
	owner, err := first.CustomerRepository().Get(ctx, c.ID())
	suite.Require().NoError(err)

	done := make(chan error, 1)
	go func() {
		uow := suite.factory.Create()
		if beginErr := uow.Begin(ctx); beginErr != nil {
			done <- beginErr
			return
		}
		defer func() { _ = uow.Rollback(ctx) }()
		same, getErr := uow.CustomerRepository().Get(ctx, c.ID())
		if getErr != nil {
			done <- getErr
			return
		}
		same.AddLoyaltyPoints(5)
		if updateErr := uow.CustomerRepository().Update(ctx, same); updateErr != nil {
			done <- updateErr
			return
		}
		done <- uow.Commit(ctx)
	}()

	select {
	case err = <-done:
		suite.FailNow("second update did not wait for the customer lock", "%v", err)
	case <-time.After(300 * time.Millisecond):
	}

	owner.AddLoyaltyPoints(10)
	suite.Require().NoError(first.CustomerRepository().Update(ctx, owner))
	suite.Require().NoError(first.Commit(ctx))
	suite.Require().NoError(<-done)

	got, err := suite.factory.Create().CustomerRepository().Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal(15, got.LoyaltyPoints())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	c := suite.createCustomer()
	o := suite.createOrder(c)
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, c))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	_, err := uow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Rollback(ctx))

	reader := suite.factory.Create()
	_, err = reader.OrderRepository().Get(ctx, o.ID())
	suite.Require().Error(err, "Order should not exist after rollback")
	_, err = reader.CustomerRepository().Get(ctx, c.ID())
	suite.Require().Error(err, "Customer should not exist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	order1 := suite.createOrder(nil)
	order2 := suite.createOrder(nil)

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	suite.Require().NoError(uow1.OrderRepository().Add(ctx, order1))
	suite.Require().NoError(uow2.OrderRepository().Add(ctx, order2))

	_, err := uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")
	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "UOW2 should not see order1")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	reader := suite.factory.Create()
	_, err = reader.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")
	_, err = reader.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()
	o := suite.createOrder(nil)

	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	got, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(o.ID(), got.ID())
}

type payResult struct {
	paid bool
	err  error
}

// pay runs one payment in its own unit of work. It reports errors instead of
// failing the suite so it can run on another goroutine.
func (suite *UnitOfWorkIntegrationTestSuite) pay(ctx context.Context, id kernel.OrderNumber, method payment.Method) (bool, error) {
	uow := suite.factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	o, err := uow.OrderRepository().Get(ctx, id)
	if err != nil {
		return false, err
	}
	paid, err := o.Pay(ctx, method)
	if err != nil || !paid {
		return false, err
	}
	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return false, err
	}
	if err = uow.CustomerRepository().Update(ctx, o.Customer()); err != nil {
		return false, err
	}
	return true, uow.Commit(ctx)
}

type countingMethod struct {
	calls atomic.Int32
}

func (m *countingMethod) Pay(_ context.Context, amount float64) (payment.Receipt, error) {
	m.calls.Add(1)
	return payment.Receipt{Reference: kernel.NewUUID(), Kind: payment.KindCard, Amount: amount, PaidAt: time.Now()}, nil
}

func (m *countingMethod) Kind() payment.Kind  { return payment.KindCard }
func (m *countingMethod) Description() string { return "Test card" }

func (suite *UnitOfWorkIntegrationTestSuite) seed(ctx context.Context, c *customer.Customer, o *order.Order) {
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, c))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) createCustomer() *customer.Customer {
	c, err := customer.NewCustomer("C1", "Nimal", customer.Contact{}, nil)
	suite.Require().NoError(err)
	return c
}

func (suite *UnitOfWorkIntegrationTestSuite) createOrder(c *customer.Customer) *order.Order {
	o, err := order.NewOrder(suite.seq.Next(), c, suite.menu)
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) addPizza(o *order.Order) {
	crust, err := suite.menu.Lookup("Thin Italian", catalog.Crust)
	suite.Require().NoError(err)
	sauce, err := suite.menu.Lookup("Tomato", catalog.Sauce)
	suite.Require().NoError(err)
	p, err := pizza.NewPizza("Cheese Blast", crust, sauce, 1200)
	suite.Require().NoError(err)
	added, err := o.AddPizza(p)
	suite.Require().NoError(err)
	suite.Require().True(added)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
