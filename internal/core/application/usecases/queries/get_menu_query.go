package queries

import (
	"errors"

	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/guard"
)

var ErrGetMenuQueryIsNotConstructed = errors.New(
	"GetMenuQuery must be created via NewGetMenuQuery constructor",
)

// GetMenuQuery asks for everything a customer can order.
type GetMenuQuery struct {
	guard guard.ConstructorGuard
}

func NewGetMenuQuery() GetMenuQuery {
	return GetMenuQuery{guard: guard.NewConstructorGuard()}
}

func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// GetMenuQueryResponse is the menu as of one catalog snapshot.
type GetMenuQueryResponse struct {
	Crusts     []MenuItem
	Sauces     []MenuItem
	Toppings   []MenuItem
	Pizzas     []MenuPizza
	Zones      []order.Zone
	Promotions []MenuPromotion
}

// MenuItem is one customization item.
type MenuItem struct {
	Name      string
	Category  catalog.Category
	Price     float64
	Thickness string
	Available bool
}

// MenuPizza is a predefined pizza priced against the current catalog.
type MenuPizza struct {
	Name        string
	Description string
	Price       float64
}

// MenuPromotion is a promotion code with its validity for today.
type MenuPromotion struct {
	Code        string
	Description string
	Percentage  float64
	ValidToday  bool
}
