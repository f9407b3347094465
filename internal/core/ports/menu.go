package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/model/pizza"
	"pizzeria/internal/core/domain/model/promotion"
)

// Menu exposes the customization catalog and the predefined pizzas.
type Menu interface {
	// Catalog returns the live catalog orders are priced against.
	Catalog() *catalog.Catalog

	// Pizza returns a fresh copy of the predefined pizza with the given name.
	// Returns errs.ObjectNotFoundError for an unknown name.
	Pizza(name string) (*pizza.Pizza, error)

	// Pizzas returns copies of all predefined pizzas in menu order.
	Pizzas() []*pizza.Pizza
}

// PromotionRepository looks up promotion codes.
type PromotionRepository interface {
	// Get returns the promotion with the given code, case insensitive.
	// Returns errs.ObjectNotFoundError for an unknown code.
	Get(ctx context.Context, code string) (*promotion.Promotion, error)

	// GetAll returns every known promotion, valid or not.
	GetAll(ctx context.Context) ([]*promotion.Promotion, error)
}
