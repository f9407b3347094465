package commands

import (
	"context"
	"strings"

	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/core/domain/model/pizza"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/pkg/errs"
)

// AddPizzaCommandHandler adds pizzas to orders. Unknown menu, saved or
// component names are errors; unavailable toppings are silently left out.
// Adding to a paid or cancelled order is a no-op reported as false.
type AddPizzaCommandHandler struct {
	uowFactory UoWFactory
	menu       ports.Menu
}

func NewAddPizzaCommandHandler(uowFactory UoWFactory, menu ports.Menu) AddPizzaCommandHandler {
	return AddPizzaCommandHandler{
		uowFactory: uowFactory,
		menu:       menu,
	}
}

// Handle resolves the pizza, adds it and persists the order. A recipe with
// SaveAs is also stored in the customer's favourites once added.
func (h *AddPizzaCommandHandler) Handle(ctx context.Context, cmd AddPizzaCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return false, err
	}

	p, err := h.resolve(cmd, o.Customer())
	if err != nil {
		return false, err
	}

	added, err := o.AddPizza(p)
	if err != nil || !added {
		return false, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return false, err
	}

	if cmd.Source() == FromRecipe && cmd.SaveAs() != "" {
		if _, err = o.Customer().SaveCustomPizza(p, cmd.SaveAs()); err != nil {
			return false, err
		}
		if err = uow.CustomerRepository().Update(ctx, o.Customer()); err != nil {
			return false, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}

func (h *AddPizzaCommandHandler) resolve(cmd AddPizzaCommand, c *customer.Customer) (*pizza.Pizza, error) {
	switch cmd.Source() {
	case FromMenu:
		return h.menu.Pizza(cmd.Name())
	case FromSaved:
		if c == nil {
			return nil, services.ErrCustomerIsMissing
		}
		for _, saved := range c.SavedPizzas() {
			if strings.EqualFold(saved.Name(), cmd.Name()) {
				return saved, nil
			}
		}
		return nil, errs.NewObjectNotFoundError("savedPizza", cmd.Name())
	default:
		if cmd.SaveAs() != "" && c == nil {
			return nil, services.ErrCustomerIsMissing
		}
		return h.build(cmd.Recipe())
	}
}

func (h *AddPizzaCommandHandler) build(recipe Recipe) (*pizza.Pizza, error) {
	snap := h.menu.Catalog().Snapshot()

	crust, err := snap.Lookup(recipe.Crust, catalog.Crust)
	if err != nil {
		return nil, err
	}
	sauce, err := snap.Lookup(recipe.Sauce, catalog.Sauce)
	if err != nil {
		return nil, err
	}

	b := pizza.NewBuilder(recipe.Name).Crust(crust).Sauce(sauce).Custom(true)
	for _, name := range recipe.Toppings {
		topping, lookupErr := snap.Lookup(name, catalog.Topping)
		if lookupErr != nil {
			return nil, lookupErr
		}
		b.Topping(topping)
	}

	return b.Build()
}
