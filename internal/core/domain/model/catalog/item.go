package catalog

import (
	"errors"
	"fmt"
	"strings"

	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var (
	// ErrItemIsNotConstructed is returned when using an Item that was not built via NewItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
	// ErrNameIsRequired is returned for items without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Ref identifies an item inside a Catalog. The zero Ref points nowhere.
type Ref uint32

// IsZero reports whether the ref is unset.
func (r Ref) IsZero() bool {
	return r == 0
}

// Item is a priced customization option. Items are values: a copy taken from a
// Snapshot describes the option as it was when the snapshot was published.
type Item struct {
	ref       Ref
	name      string
	category  Category
	price     float64
	available bool
	thickness string
	guard     guard.ConstructorGuard
}

// NewItem creates an available item. Thickness only applies to crusts and is
// ignored for other categories.
//
// Example:
//
//	deepPan, err := catalog.NewItem("Deep Pan", catalog.Crust, 50, "thick")
func NewItem(name string, category Category, price float64, thickness string) (Item, error) {
	item := Item{
		available: true,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setName(name),
		item.setCategory(category),
		item.setPrice(price),
	); err != nil {
		return Item{}, err
	}

	if category == Crust {
		item.thickness = strings.TrimSpace(thickness)
	}

	return item, nil
}

// Validate reports whether the item was constructed via NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Ref returns the catalog index of the item; zero until the item is added to a Catalog.
func (i Item) Ref() Ref {
	return i.ref
}

// Name returns the item name.
func (i Item) Name() string {
	return i.name
}

// Category returns the item category.
func (i Item) Category() Category {
	return i.category
}

// Price returns the item surcharge.
func (i Item) Price() float64 {
	return i.price
}

// IsAvailable reports whether the item can currently be put on a pizza.
func (i Item) IsAvailable() bool {
	return i.available
}

// Thickness returns the crust thickness, empty for sauces and toppings.
func (i Item) Thickness() string {
	return i.thickness
}

// Description renders the item the way it is printed on receipts.
func (i Item) Description() string {
	label := strings.ToUpper(i.category.String()[:1]) + strings.ToLower(i.category.String()[1:])
	if i.thickness != "" {
		return fmt.Sprintf("%s: %s (%s) (+%.2f)", label, i.name, i.thickness, i.price)
	}
	return fmt.Sprintf("%s: %s (+%.2f)", label, i.name, i.price)
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	i.name = name
	return nil
}

func (i *Item) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	i.category = category
	return nil
}

func (i *Item) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%.2f is negative", price))
	}
	i.price = price
	return nil
}
