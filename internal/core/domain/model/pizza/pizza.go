package pizza

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var (
	// ErrPizzaIsNotConstructed is returned when a Pizza was not created via NewPizza.
	ErrPizzaIsNotConstructed = errors.New("Pizza must be created via NewPizza constructor")
	// ErrNameIsRequired is returned for pizzas without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// PriceSource resolves catalog references to items. *catalog.Snapshot and
// *catalog.Catalog both satisfy it; pricing a whole order should use a single
// snapshot so that every line sees the same prices.
type PriceSource interface {
	Item(ref catalog.Ref) (catalog.Item, error)
}

// Pizza is a pizza on the menu or in an order.
//
// Invariants:
//   - crust and sauce always reference items of the right category
//   - basePrice is never negative
//   - isCustom never goes back to false once set by a component change
type Pizza struct {
	// name is the display name, e.g. "Pepperoni Supreme"
	name string

	// crust references a CRUST item in the catalog
	crust catalog.Ref

	// sauce references a SAUCE item in the catalog
	sauce catalog.Ref

	// basePrice is the price of the dough before any component surcharge
	basePrice float64

	// toppings references TOPPING items in the order they were added
	toppings []catalog.Ref

	// isCustom is set when the composition departs from the construction defaults
	isCustom bool

	guard guard.ConstructorGuard
}

// NewPizza creates a pizza from a crust and a sauce taken from the catalog.
//
// Parameters:
//   - name: display name (required)
//   - crust: a catalog item of category CRUST that has been added to a catalog
//   - sauce: a catalog item of category SAUCE that has been added to a catalog
//   - basePrice: non-negative dough price
//
// Availability is not checked here: predefined pizzas keep their recipe even
// while one of its components is sold out.
//
// Example:
//
//	thin, _ := menu.Lookup("Thin Italian", catalog.Crust)
//	tomato, _ := menu.Lookup("Tomato", catalog.Sauce)
//	p, err := pizza.NewPizza("Margherita", thin, tomato, pizza.DefaultBasePrice)
func NewPizza(name string, crust, sauce catalog.Item, basePrice float64) (*Pizza, error) {
	p := &Pizza{
		toppings: []catalog.Ref{},
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setName(name),
		p.setComponent(&p.crust, "crust", crust, catalog.Crust),
		p.setComponent(&p.sauce, "sauce", sauce, catalog.Sauce),
		p.setBasePrice(basePrice),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePizza rebuilds a pizza from persisted references without checking
// them against a catalog. Unknown references surface later as pricing errors.
func RestorePizza(name string, crust, sauce catalog.Ref, basePrice float64, toppings []catalog.Ref, isCustom bool) *Pizza {
	return &Pizza{
		name:      name,
		crust:     crust,
		sauce:     sauce,
		basePrice: basePrice,
		toppings:  slices.Clone(toppings),
		isCustom:  isCustom,
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate reports whether the pizza was constructed via NewPizza or RestorePizza.
func (p *Pizza) Validate() error {
	if p == nil {
		return ErrPizzaIsNotConstructed
	}
	return p.guard.Validate(ErrPizzaIsNotConstructed)
}

// Name returns the display name.
func (p *Pizza) Name() string {
	return p.name
}

// Crust returns the crust reference.
func (p *Pizza) Crust() catalog.Ref {
	return p.crust
}

// Sauce returns the sauce reference.
func (p *Pizza) Sauce() catalog.Ref {
	return p.sauce
}

// BasePrice returns the dough price.
func (p *Pizza) BasePrice() float64 {
	return p.basePrice
}

// Toppings returns a copy of the topping references in insertion order.
func (p *Pizza) Toppings() []catalog.Ref {
	return slices.Clone(p.toppings)
}

// IsCustom reports whether the composition departs from its construction defaults.
func (p *Pizza) IsCustom() bool {
	return p.isCustom
}

// SetName renames the pizza, used when a customer saves a custom recipe.
func (p *Pizza) SetName(name string) error {
	return p.setName(name)
}

// AddTopping appends a topping. It returns false and leaves the pizza untouched
// when the item is unavailable, is not a topping, or is not part of a catalog.
func (p *Pizza) AddTopping(topping catalog.Item) bool {
	if !accepts(topping, catalog.Topping) {
		return false
	}
	p.toppings = append(p.toppings, topping.Ref())
	p.isCustom = true
	return true
}

// SetCrust swaps the crust under the same rules as AddTopping.
func (p *Pizza) SetCrust(crust catalog.Item) bool {
	if !accepts(crust, catalog.Crust) {
		return false
	}
	p.crust = crust.Ref()
	p.isCustom = true
	return true
}

// SetSauce swaps the sauce under the same rules as AddTopping.
func (p *Pizza) SetSauce(sauce catalog.Item) bool {
	if !accepts(sauce, catalog.Sauce) {
		return false
	}
	p.sauce = sauce.Ref()
	p.isCustom = true
	return true
}

// Total computes basePrice + crust + sauce + every topping, with all prices
// resolved from src.
//
// Returns:
//   - the pizza price
//   - ObjectNotFoundError if any reference is unknown to src
func (p *Pizza) Total(src PriceSource) (float64, error) {
	components, err := p.Components(src)
	if err != nil {
		return 0, err
	}

	total := p.basePrice
	for _, item := range components {
		total += item.Price()
	}
	return total, nil
}

// Components resolves crust, sauce and toppings (in that order) from src.
func (p *Pizza) Components(src PriceSource) ([]catalog.Item, error) {
	refs := make([]catalog.Ref, 0, len(p.toppings)+2)
	refs = append(refs, p.crust, p.sauce)
	refs = append(refs, p.toppings...)

	items := make([]catalog.Item, 0, len(refs))
	for _, ref := range refs {
		item, err := src.Item(ref)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Describe renders the composition for receipts, e.g.
// "Crust: Thin Italian (thin) (+0.00); Sauce: Tomato (+0.00); Topping: Ham (+200.00)".
func (p *Pizza) Describe(src PriceSource) (string, error) {
	components, err := p.Components(src)
	if err != nil {
		return "", err
	}
	parts := make([]string, 0, len(components))
	for _, item := range components {
		parts = append(parts, item.Description())
	}
	return strings.Join(parts, "; "), nil
}

// Clone returns an independent pizza sharing the same catalog references.
func (p *Pizza) Clone() *Pizza {
	return &Pizza{
		name:      p.name,
		crust:     p.crust,
		sauce:     p.sauce,
		basePrice: p.basePrice,
		toppings:  slices.Clone(p.toppings),
		isCustom:  p.isCustom,
		guard:     p.guard,
	}
}

func accepts(item catalog.Item, category catalog.Category) bool {
	return item.Validate() == nil &&
		!item.Ref().IsZero() &&
		item.Category() == category &&
		item.IsAvailable()
}

func (p *Pizza) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Pizza) setComponent(dst *catalog.Ref, param string, item catalog.Item, category catalog.Category) error {
	if err := item.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(param, err)
	}
	if item.Ref().IsZero() {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%q is not part of a catalog", item.Name()))
	}
	if item.Category() != category {
		return errs.NewValueIsInvalidErrorWithCause(param,
			fmt.Errorf("%q is a %s, not a %s", item.Name(), item.Category(), category))
	}
	*dst = item.Ref()
	return nil
}

func (p *Pizza) setBasePrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("basePrice", fmt.Errorf("%.2f is negative", price))
	}
	p.basePrice = price
	return nil
}
