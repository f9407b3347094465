package pizza

import "pizzeria/internal/core/domain/model/catalog"

// DefaultBasePrice is the dough price used when a recipe does not set one.
const DefaultBasePrice = 1000.0

// Builder assembles a Pizza step by step.
//
//	p, err := pizza.NewBuilder("Hawaiian").
//		Crust(thin).
//		Sauce(tomato).
//		Topping(ham).
//		Topping(pineapple).
//		BasePrice(1400).
//		Build()
type Builder struct {
	name      string
	crust     catalog.Item
	sauce     catalog.Item
	basePrice float64
	toppings  []catalog.Item
	custom    bool
}

// NewBuilder starts a recipe with the default base price.
func NewBuilder(name string) *Builder {
	return &Builder{name: name, basePrice: DefaultBasePrice}
}

func (b *Builder) Crust(crust catalog.Item) *Builder {
	b.crust = crust
	return b
}

func (b *Builder) Sauce(sauce catalog.Item) *Builder {
	b.sauce = sauce
	return b
}

func (b *Builder) Topping(topping catalog.Item) *Builder {
	b.toppings = append(b.toppings, topping)
	return b
}

func (b *Builder) BasePrice(price float64) *Builder {
	b.basePrice = price
	return b
}

// Custom marks the result as a custom pizza.
func (b *Builder) Custom(custom bool) *Builder {
	b.custom = custom
	return b
}

// Build creates the pizza. Toppings given to the builder are part of the
// recipe, so they do not make the pizza custom; unavailable ones are skipped.
func (b *Builder) Build() (*Pizza, error) {
	p, err := NewPizza(b.name, b.crust, b.sauce, b.basePrice)
	if err != nil {
		return nil, err
	}
	for _, topping := range b.toppings {
		if accepts(topping, catalog.Topping) {
			p.toppings = append(p.toppings, topping.Ref())
		}
	}
	p.isCustom = b.custom
	return p, nil
}
