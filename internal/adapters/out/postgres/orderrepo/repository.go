package orderrepo

import (
	"context"
	"errors"

	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db        *gorm.DB
	tracker   aggregateTracker
	customers customerLoader
	menu      order.Menu
	logger    *zap.Logger
	observers []order.Observer
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// rowLocker is implemented by trackers that hold an open transaction; rows
// read through the repository stay locked until it ends.
type rowLocker interface {
	LocksRows() bool
}

// customerLoader resolves the customer an order belongs to.
type customerLoader interface {
	Get(ctx context.Context, id string) (*customer.Customer, error)
}

// NewGormOrderRepository creates a new GORM order repository. Restored orders
// price against menu and get observers subscribed after their customer.
func NewGormOrderRepository(
	db *gorm.DB,
	tracker aggregateTracker,
	customers customerLoader,
	menu order.Menu,
	logger *zap.Logger,
	observers ...order.Observer,
) *GormOrderRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GormOrderRepository{
		db:        db,
		tracker:   tracker,
		customers: customers,
		menu:      menu,
		logger:    logger,
		observers: observers,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Update saves an existing order with its pizzas, history and feedback.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Get retrieves an order by its number. Inside a transaction the order row
// is locked until commit or rollback, so a concurrent unit of work waits and
// then reads the committed state.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.OrderNumber) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.forUpdate(r.preload(ctx)).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return r.toDomain(ctx, dto)
}

// GetAll retrieves every order, oldest first.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.preload(ctx).Order("counter").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return r.toDomainAll(ctx, dtos)
}

// GetAllInProgress retrieves paid orders the kitchen has not finished yet:
// neither delivered nor cancelled. The rows are locked like in Get.
func (r *GormOrderRepository) GetAllInProgress(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.forUpdate(r.preload(ctx)).
		Where("is_paid = ? AND state NOT IN ?", true, []int{int(order.Delivered), int(order.Cancelled)}).
		Order("counter").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return r.toDomainAll(ctx, dtos)
}

// LastOrderNumber returns the highest stored order counter, or 0 when no
// order was stored yet.
func (r *GormOrderRepository) LastOrderNumber(ctx context.Context) (int64, error) {
	var last int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Select("COALESCE(MAX(counter), 0)").Scan(&last).Error; err != nil {
		return 0, err
	}
	return last, nil
}

func (r *GormOrderRepository) preload(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Pizzas", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("History", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		Preload("Feedback")
}

func (r *GormOrderRepository) forUpdate(db *gorm.DB) *gorm.DB {
	if locker, ok := r.tracker.(rowLocker); ok && locker.LocksRows() {
		return db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return db
}

func (r *GormOrderRepository) toDomainAll(ctx context.Context, dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := r.toDomain(ctx, dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormOrderRepository) toDomain(ctx context.Context, dto OrderDTO) (*order.Order, error) {
	var c *customer.Customer
	if dto.CustomerID != nil {
		var err error
		if c, err = r.customers.Get(ctx, *dto.CustomerID); err != nil {
			return nil, err
		}
	}

	snapshot, err := toSnapshot(dto, c)
	if err != nil {
		return nil, err
	}

	o, err := order.RestoreOrder(snapshot, r.menu, order.WithLogger(r.logger))
	if err != nil {
		return nil, err
	}
	for _, observer := range r.observers {
		if err := o.Subscribe(observer); err != nil {
			return nil, err
		}
	}
	return o, nil
}
