// Package postgres provides the GORM-based Unit of Work of the pizzeria.
//
// A unit of work wraps one database transaction and hands out the customer
// and order repositories bound to it. Within one unit of work every
// aggregate is loaded at most once: an order and the customer it belongs to
// share the same *customer.Customer, so loyalty points credited by a payment
// are saved with the customer.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, menu, logger)
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	o, err := uow.OrderRepository().Get(ctx, id)
//	if err != nil {
//	    return err
//	}
//	// change o, then save both aggregates
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	if err := uow.CustomerRepository().Update(ctx, o.Customer()); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Each goroutine must use its own UnitOfWork.
package postgres

import (
	"context"
	"sync"

	"pizzeria/internal/adapters/out/postgres/customerrepo"
	"pizzeria/internal/adapters/out/postgres/orderrepo"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        string
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	menu      order.Menu
	logger    *zap.Logger
	observers []order.Observer
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. Orders restored through it price against menu and notify
// observers after their customer.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    return err
//	}
//	factory := NewGormUnitOfWorkFactory(db, menu.Catalog(), logger, notify.NewStatusLogger(logger))
func NewGormUnitOfWorkFactory(db *gorm.DB, menu order.Menu, logger *zap.Logger, observers ...order.Observer) *GormUnitOfWorkFactory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GormUnitOfWorkFactory{
		db:        db,
		menu:      menu,
		logger:    logger,
		observers: observers,
	}
}

// Create produces a new UnitOfWork with its own transaction state and
// identity map.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		menu:              f.menu,
		logger:            f.logger,
		observers:         f.observers,
		trackedAggregates: make([]trackedAggregate, 0),
		identities:        make(map[string]any),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the
// aggregates saved during it.
type GormUnitOfWork struct {
	db        *gorm.DB
	tx        *gorm.DB
	menu      order.Menu
	logger    *zap.Logger
	observers []order.Observer

	mu                sync.Mutex
	trackedAggregates []trackedAggregate
	identities        map[string]any
}

// Begin initiates a new database transaction. Calling Begin while a
// transaction is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the current transaction. It fails when no transaction
// is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err == nil {
		uow.logTracked()
	}
	return err
}

// Rollback discards the current transaction together with the loaded
// aggregates. It fails when no transaction is open.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil

	uow.mu.Lock()
	uow.trackedAggregates = uow.trackedAggregates[:0]
	clear(uow.identities)
	uow.mu.Unlock()
	return err
}

// CustomerRepository returns a customer repository bound to the current
// transaction, or to the plain connection when none is open.
func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return uow.customerRepository()
}

// OrderRepository returns an order repository bound to the current
// transaction, or to the plain connection when none is open. Customers of
// loaded orders come from CustomerRepository of the same unit of work.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(
		uow.conn(), uow, uow.customerRepository(), uow.menu, uow.logger, uow.observers...)
}

// TrackAggregate registers an aggregate saved within this unit of work.
func (uow *GormUnitOfWork) TrackAggregate(id string, aggregate any) {
	uow.mu.Lock()
	defer uow.mu.Unlock()
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// LocksRows reports whether repositories lock the rows they read: true while
// a transaction is open.
func (uow *GormUnitOfWork) LocksRows() bool {
	return uow.tx != nil
}

// Lookup returns the aggregate loaded under key, if any.
func (uow *GormUnitOfWork) Lookup(key string) (any, bool) {
	uow.mu.Lock()
	defer uow.mu.Unlock()
	aggregate, ok := uow.identities[key]
	return aggregate, ok
}

// Remember records the instance loaded under key.
func (uow *GormUnitOfWork) Remember(key string, aggregate any) {
	uow.mu.Lock()
	defer uow.mu.Unlock()
	uow.identities[key] = aggregate
}

func (uow *GormUnitOfWork) customerRepository() *customerrepo.GormCustomerRepository {
	return customerrepo.NewGormCustomerRepository(uow.conn(), uow, uow.logger)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) logTracked() {
	uow.mu.Lock()
	defer uow.mu.Unlock()
	for _, tracked := range uow.trackedAggregates {
		uow.logger.Debug("aggregate saved", zap.String("id", tracked.ID))
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]
}
