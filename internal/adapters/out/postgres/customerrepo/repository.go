package customerrepo

import (
	"context"
	"errors"
	"strings"

	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/pkg/errs"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
	logger  *zap.Logger
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// identityMap is implemented by trackers that hand out one instance per
// aggregate key for the lifetime of a unit of work.
type identityMap interface {
	Lookup(key string) (any, bool)
	Remember(key string, aggregate any)
}

// rowLocker is implemented by trackers that hold an open transaction.
type rowLocker interface {
	LocksRows() bool
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB, tracker aggregateTracker, logger *zap.Logger) *GormCustomerRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GormCustomerRepository{
		db:      db,
		tracker: tracker,
		logger:  logger,
	}
}

// Add saves a new customer. An id already in use is rejected.
func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&CustomerDTO{}).Where("id = ?", aggregate.ID()).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errs.NewValueIsInvalidErrorWithCause("customer id", errors.New("already registered"))
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.remember(aggregate)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing customer together with its saved pizzas.
func (r *GormCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
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

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a customer by id. Inside a transaction the customer row is
// locked until it ends, so loyalty balances are never updated from a stale
// read.
func (r *GormCustomerRepository) Get(ctx context.Context, id string) (*customer.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errs.NewValueIsRequiredError("customer id")
	}
	if c, ok := r.lookup(id); ok {
		return c, nil
	}

	var dto CustomerDTO
	if err := r.forUpdate(r.preload(ctx)).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id)
		}
		return nil, err
	}

	return r.restore(dto)
}

// GetAll retrieves every customer ordered by id.
func (r *GormCustomerRepository) GetAll(ctx context.Context) ([]*customer.Customer, error) {
	var dtos []CustomerDTO
	if err := r.preload(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	customers := make([]*customer.Customer, 0, len(dtos))
	for _, dto := range dtos {
		if c, ok := r.lookup(dto.ID); ok {
			customers = append(customers, c)
			continue
		}
		c, err := r.restore(dto)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	return customers, nil
}

func (r *GormCustomerRepository) preload(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("SavedPizzas", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

func (r *GormCustomerRepository) forUpdate(db *gorm.DB) *gorm.DB {
	if locker, ok := r.tracker.(rowLocker); ok && locker.LocksRows() {
		return db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return db
}

func (r *GormCustomerRepository) restore(dto CustomerDTO) (*customer.Customer, error) {
	c, err := toDomain(dto)
	if err != nil {
		return nil, err
	}
	c.SetLogger(r.logger)
	r.remember(c)
	return c, nil
}

func (r *GormCustomerRepository) lookup(id string) (*customer.Customer, bool) {
	identities, ok := r.tracker.(identityMap)
	if !ok {
		return nil, false
	}
	aggregate, found := identities.Lookup(identityKey(id))
	if !found {
		return nil, false
	}
	c, ok := aggregate.(*customer.Customer)
	return c, ok
}

func (r *GormCustomerRepository) remember(c *customer.Customer) {
	if identities, ok := r.tracker.(identityMap); ok {
		identities.Remember(identityKey(c.ID()), c)
	}
}

func identityKey(id string) string {
	return "customer:" + id
}
