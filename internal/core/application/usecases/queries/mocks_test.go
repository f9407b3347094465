package queries_test

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/promotion"
	"pizzeria/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct {
	mock.Mock
	ports.OrderRepository
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.OrderNumber) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockUnitOfWork struct {
	mock.Mock
	ports.UnitOfWork
}

func (m *MockUnitOfWork) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockUnitOfWorkFactory struct{ mock.Mock }

func (m *MockUnitOfWorkFactory) Create() ports.UnitOfWork {
	args := m.Called()
	return args.Get(0).(ports.UnitOfWork)
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
	if ps, ok := args.Get(0).([]*promotion.Promotion); ok {
		return ps, args.Error(1)
	}
	return nil, args.Error(1)
}

// readerFor wires a factory whose unit of work serves repo.
func readerFor(repo ports.OrderRepository) *MockUnitOfWorkFactory {
	uow := &MockUnitOfWork{}
	uow.On("OrderRepository").Return(repo).Once()
	factory := &MockUnitOfWorkFactory{}
	factory.On("Create").Return(uow).Once()
	return factory
}
