package commands

import (
	"errors"
	"strings"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrAddPizzaCommandIsNotConstructed = errors.New(
		"AddPizzaCommand must be created via one of the NewAdd*PizzaCommand constructors",
	)
	ErrPizzaNameIsRequired = errs.NewValueIsRequiredError("pizzaName")
	ErrCrustIsRequired     = errs.NewValueIsRequiredError("crust")
	ErrSauceIsRequired     = errs.NewValueIsRequiredError("sauce")
)

// DefaultCustomPizzaName names custom pizzas submitted without a name.
const DefaultCustomPizzaName = "Custom Pizza"

// PizzaSource tells where the pizza of an AddPizzaCommand comes from.
type PizzaSource int

const (
	FromMenu PizzaSource = iota + 1
	FromRecipe
	FromSaved
)

// Recipe describes a custom pizza by the catalog names of its components.
type Recipe struct {
	Name     string
	Crust    string
	Sauce    string
	Toppings []string
}

// AddPizzaCommand adds one pizza to an unpaid order: a predefined pizza from
// the menu, a custom recipe, or a pizza the customer saved earlier.
//
// Example:
//
//	cmd, err := NewAddCustomPizzaCommand(orderID, Recipe{
//	    Name:     "Friday Special",
//	    Crust:    "Deep Pan",
//	    Sauce:    "BBQ",
//	    Toppings: []string{"Pepperoni", "Extra Cheese"},
//	}, "my friday")
//	added, err := handler.Handle(ctx, cmd)
type AddPizzaCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderNumber
	source  PizzaSource
	name    string
	recipe  Recipe
	saveAs  string

	guard guard.ConstructorGuard
}

// NewAddMenuPizzaCommand adds the predefined pizza called name.
func NewAddMenuPizzaCommand(orderID kernel.OrderNumber, name string) (AddPizzaCommand, error) {
	cmd := AddPizzaCommand{source: FromMenu, guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setName(name),
	); err != nil {
		return AddPizzaCommand{}, err
	}

	return cmd, nil
}

// NewAddSavedPizzaCommand adds the customer's saved pizza called name.
func NewAddSavedPizzaCommand(orderID kernel.OrderNumber, name string) (AddPizzaCommand, error) {
	cmd := AddPizzaCommand{source: FromSaved, guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setName(name),
	); err != nil {
		return AddPizzaCommand{}, err
	}

	return cmd, nil
}

// NewAddCustomPizzaCommand adds a custom pizza built from recipe. A non-blank
// saveAs also stores the pizza in the customer's favourites under that name.
func NewAddCustomPizzaCommand(orderID kernel.OrderNumber, recipe Recipe, saveAs string) (AddPizzaCommand, error) {
	cmd := AddPizzaCommand{
		source: FromRecipe,
		saveAs: strings.TrimSpace(saveAs),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRecipe(recipe),
	); err != nil {
		return AddPizzaCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through a constructor.
func (c AddPizzaCommand) Validate() error {
	return c.guard.Validate(ErrAddPizzaCommandIsNotConstructed)
}

func (c AddPizzaCommand) OrderID() kernel.OrderNumber {
	return c.orderID
}

func (c AddPizzaCommand) Source() PizzaSource {
	return c.source
}

// Name is the menu or saved pizza name; empty for recipes.
func (c AddPizzaCommand) Name() string {
	return c.name
}

func (c AddPizzaCommand) Recipe() Recipe {
	recipe := c.recipe
	recipe.Toppings = append([]string(nil), c.recipe.Toppings...)
	return recipe
}

func (c AddPizzaCommand) SaveAs() string {
	return c.saveAs
}

func (c *AddPizzaCommand) setOrderID(id kernel.OrderNumber) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *AddPizzaCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrPizzaNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddPizzaCommand) setRecipe(recipe Recipe) error {
	recipe.Name = strings.TrimSpace(recipe.Name)
	if recipe.Name == "" {
		recipe.Name = DefaultCustomPizzaName
	}
	recipe.Crust = strings.TrimSpace(recipe.Crust)
	recipe.Sauce = strings.TrimSpace(recipe.Sauce)

	var err error
	if recipe.Crust == "" {
		err = errors.Join(err, ErrCrustIsRequired)
	}
	if recipe.Sauce == "" {
		err = errors.Join(err, ErrSauceIsRequired)
	}
	if err != nil {
		return err
	}

	toppings := make([]string, 0, len(recipe.Toppings))
	for _, t := range recipe.Toppings {
		if t = strings.TrimSpace(t); t != "" {
			toppings = append(toppings, t)
		}
	}
	recipe.Toppings = toppings

	c.recipe = recipe
	return nil
}
