package queries

import (
	"context"
	"time"

	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
)

// GetMenuQueryHandler renders the catalog, the predefined pizzas and the
// promotions.
type GetMenuQueryHandler struct {
	menu       ports.Menu
	promotions ports.PromotionRepository
	now        func() time.Time
}

// NewGetMenuQueryHandler creates the handler. now may be nil for time.Now.
func NewGetMenuQueryHandler(menu ports.Menu, promotions ports.PromotionRepository, now func() time.Time) GetMenuQueryHandler {
	if now == nil {
		now = time.Now
	}
	return GetMenuQueryHandler{menu: menu, promotions: promotions, now: now}
}

// Handle prices every predefined pizza against one snapshot of the catalog.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) (GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMenuQueryResponse{}, err
	}

	snapshot := h.menu.Catalog().Snapshot()
	resp := GetMenuQueryResponse{
		Crusts:     menuItems(snapshot.ItemsIn(catalog.Crust)),
		Sauces:     menuItems(snapshot.ItemsIn(catalog.Sauce)),
		Toppings:   menuItems(snapshot.ItemsIn(catalog.Topping)),
		Pizzas:     make([]MenuPizza, 0),
		Zones:      order.Zones(),
		Promotions: make([]MenuPromotion, 0),
	}

	for _, p := range h.menu.Pizzas() {
		price, err := p.Total(snapshot)
		if err != nil {
			return GetMenuQueryResponse{}, err
		}
		description, err := p.Describe(snapshot)
		if err != nil {
			return GetMenuQueryResponse{}, err
		}
		resp.Pizzas = append(resp.Pizzas, MenuPizza{Name: p.Name(), Description: description, Price: price})
	}

	promotions, err := h.promotions.GetAll(ctx)
	if err != nil {
		return GetMenuQueryResponse{}, err
	}
	today := h.now()
	for _, p := range promotions {
		resp.Promotions = append(resp.Promotions, MenuPromotion{
			Code:        p.Code(),
			Description: p.Description(),
			Percentage:  p.Percentage(),
			ValidToday:  p.IsValid(today),
		})
	}

	return resp, nil
}

func menuItems(items []catalog.Item) []MenuItem {
	out := make([]MenuItem, 0, len(items))
	for _, item := range items {
		out = append(out, MenuItem{
			Name:      item.Name(),
			Category:  item.Category(),
			Price:     item.Price(),
			Thickness: item.Thickness(),
			Available: item.IsAvailable(),
		})
	}
	return out
}
