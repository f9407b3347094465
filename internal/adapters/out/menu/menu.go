// Package menu loads the pizzeria menu from YAML: the customization catalog,
// the predefined pizzas and the promotion codes. A Menu serves both
// ports.Menu and ports.PromotionRepository from memory.
package menu

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/model/pizza"
	"pizzeria/internal/core/domain/model/promotion"
	"pizzeria/internal/pkg/errs"
)

const dateLayout = "2006-01-02"

// Menu is an in-memory menu built from a File.
type Menu struct {
	catalog    *catalog.Catalog
	pizzas     []*pizza.Pizza
	promotions []*promotion.Promotion
}

// Load reads the menu at path (the built-in one when empty) and builds it
// with promotion windows relative to today.
func Load(path string, today time.Time) (*Menu, error) {
	f, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return New(f, today)
}

// New builds a menu from a parsed File.
func New(f *File, today time.Time) (*Menu, error) {
	c, err := catalog.NewCatalog()
	if err != nil {
		return nil, err
	}

	for _, group := range []struct {
		category catalog.Category
		specs    []ItemSpec
	}{
		{catalog.Crust, f.Crusts},
		{catalog.Sauce, f.Sauces},
		{catalog.Topping, f.Toppings},
	} {
		for _, spec := range group.specs {
			if err = addItem(c, group.category, spec); err != nil {
				return nil, err
			}
		}
	}

	m := &Menu{catalog: c}
	for _, spec := range f.Pizzas {
		p, pizzaErr := buildPizza(c, spec)
		if pizzaErr != nil {
			return nil, fmt.Errorf("pizza %q: %w", spec.Name, pizzaErr)
		}
		m.pizzas = append(m.pizzas, p)
	}

	seen := make(map[string]bool, len(f.Promotions))
	for _, spec := range f.Promotions {
		p, promoErr := buildPromotion(spec, today)
		if promoErr != nil {
			return nil, fmt.Errorf("promotion %q: %w", spec.Code, promoErr)
		}
		if seen[p.Code()] {
			return nil, errs.NewValueIsInvalidErrorWithCause("code",
				fmt.Errorf("promotion %q is listed twice", p.Code()))
		}
		seen[p.Code()] = true
		m.promotions = append(m.promotions, p)
	}

	return m, nil
}

func addItem(c *catalog.Catalog, category catalog.Category, spec ItemSpec) error {
	item, err := catalog.NewItem(spec.Name, category, spec.Price, spec.Thickness)
	if err != nil {
		return fmt.Errorf("%s %q: %w", category, spec.Name, err)
	}
	ref, err := c.Add(item)
	if err != nil {
		return err
	}
	if spec.Unavailable {
		return c.SetAvailable(ref, false)
	}
	return nil
}

func buildPizza(c *catalog.Catalog, spec PizzaSpec) (*pizza.Pizza, error) {
	crust, err := c.Lookup(spec.Crust, catalog.Crust)
	if err != nil {
		return nil, err
	}
	sauce, err := c.Lookup(spec.Sauce, catalog.Sauce)
	if err != nil {
		return nil, err
	}

	b := pizza.NewBuilder(spec.Name).Crust(crust).Sauce(sauce).BasePrice(spec.BasePrice)
	for _, name := range spec.Toppings {
		topping, lookupErr := c.Lookup(name, catalog.Topping)
		if lookupErr != nil {
			return nil, lookupErr
		}
		b.Topping(topping)
	}
	return b.Build()
}

func buildPromotion(spec PromotionSpec, today time.Time) (*promotion.Promotion, error) {
	start, end := today, today
	if spec.Start != "" {
		t, err := time.Parse(dateLayout, spec.Start)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("start", err)
		}
		start, end = t, t
	}
	if spec.End != "" {
		t, err := time.Parse(dateLayout, spec.End)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("end", err)
		}
		end = t
	} else {
		end = start.AddDate(0, spec.ValidMonths, spec.ValidDays)
	}

	return promotion.RestorePromotion(spec.Code, spec.Description, spec.Percentage, start, end, !spec.Inactive)
}

// Catalog returns the live customization catalog.
func (m *Menu) Catalog() *catalog.Catalog {
	return m.catalog
}

// Pizza returns a fresh copy of the predefined pizza with the given name.
func (m *Menu) Pizza(name string) (*pizza.Pizza, error) {
	for _, p := range m.pizzas {
		if strings.EqualFold(p.Name(), strings.TrimSpace(name)) {
			return p.Clone(), nil
		}
	}
	return nil, errs.NewObjectNotFoundError("pizza", name)
}

// Pizzas returns copies of all predefined pizzas in menu order.
func (m *Menu) Pizzas() []*pizza.Pizza {
	result := make([]*pizza.Pizza, 0, len(m.pizzas))
	for _, p := range m.pizzas {
		result = append(result, p.Clone())
	}
	return result
}

// Get returns the promotion with the given code, case insensitive.
func (m *Menu) Get(_ context.Context, code string) (*promotion.Promotion, error) {
	wanted := strings.ToUpper(strings.TrimSpace(code))
	for _, p := range m.promotions {
		if p.Code() == wanted {
			return p, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("promotion", code)
}

// GetAll returns every promotion in menu order.
func (m *Menu) GetAll(_ context.Context) ([]*promotion.Promotion, error) {
	return append([]*promotion.Promotion(nil), m.promotions...), nil
}
