package commands_test

import (
	"errors"
	"testing"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateCustomerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateCustomerCommand("C1", "Nimal", customer.Contact{})

	repo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(c *customer.Customer) bool {
			return c.ID() == "C1" && c.LoyaltyPoints() == 0
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCustomerCommandHandler(factory, nil)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateCustomerCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockCustomerUoWFactory)
	h := commands.NewCreateCustomerCommandHandler(factory, nil)

	err := h.Handle(t.Context(), commands.CreateCustomerCommand{})
	require.ErrorIs(t, err, commands.ErrCreateCustomerCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateCustomerCommandHandler_Handle_InvalidCustomerID(t *testing.T) {
	cmd, err := commands.NewCreateCustomerCommand("C 1", "Nimal", customer.Contact{})
	require.NoError(t, err)

	factory := new(MockCustomerUoWFactory)
	h := commands.NewCreateCustomerCommandHandler(factory, nil)

	err = h.Handle(t.Context(), cmd)
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateCustomerCommandHandler_Handle_DuplicateID(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateCustomerCommand("C1", "Nimal", customer.Contact{})

	repo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*customer.Customer")).
			Return(errs.NewValueIsInvalidErrorWithCause("customerID", errors.New("C1 already exists"))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCustomerCommandHandler(factory, nil)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}
