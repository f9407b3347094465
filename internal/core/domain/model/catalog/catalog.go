package catalog

import (
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"pizzeria/internal/pkg/errs"
)

type itemKey struct {
	name     string
	category Category
}

// Snapshot is an immutable view of the catalog table at one version.
// It is safe to share between goroutines.
type Snapshot struct {
	version uint64
	items   []Item
	byKey   map[itemKey]Ref
}

// Version increases by one with every published change.
func (s *Snapshot) Version() uint64 {
	return s.version
}

// Item resolves a ref. Unknown refs yield an ObjectNotFoundError.
func (s *Snapshot) Item(ref Ref) (Item, error) {
	if ref.IsZero() || int(ref) > len(s.items) {
		return Item{}, errs.NewObjectNotFoundError("catalog item", uint32(ref))
	}
	return s.items[ref-1], nil
}

// Lookup finds an item by exact name and category.
func (s *Snapshot) Lookup(name string, category Category) (Item, error) {
	ref, ok := s.byKey[itemKey{name: name, category: category}]
	if !ok {
		return Item{}, errs.NewObjectNotFoundError(category.String(), name)
	}
	return s.items[ref-1], nil
}

// Items returns a copy of all items in insertion order.
func (s *Snapshot) Items() []Item {
	return slices.Clone(s.items)
}

// ItemsIn returns the items of one category in insertion order.
func (s *Snapshot) ItemsIn(category Category) []Item {
	result := make([]Item, 0, len(s.items))
	for _, item := range s.items {
		if item.category == category {
			result = append(result, item)
		}
	}
	return result
}

// Catalog owns the customization table shared by all pizzas and orders.
// Reads go through the current Snapshot without locking; writes are serialized
// and publish a new Snapshot (copy-on-write).
type Catalog struct {
	mu      sync.Mutex
	current atomic.Pointer[Snapshot]
}

// NewCatalog creates a catalog holding items in the given order.
//
// Example:
//
//	thin, _ := catalog.NewItem("Thin Italian", catalog.Crust, 0, "thin")
//	tomato, _ := catalog.NewItem("Tomato", catalog.Sauce, 0, "")
//	c, err := catalog.NewCatalog(thin, tomato)
func NewCatalog(items ...Item) (*Catalog, error) {
	c := &Catalog{}
	c.current.Store(&Snapshot{byKey: map[itemKey]Ref{}})

	for _, item := range items {
		if _, err := c.Add(item); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Snapshot returns the current immutable view.
func (c *Catalog) Snapshot() *Snapshot {
	return c.current.Load()
}

// Lookup finds an item by name and category in the current snapshot.
func (c *Catalog) Lookup(name string, category Category) (Item, error) {
	return c.Snapshot().Lookup(name, category)
}

// Item resolves a ref in the current snapshot.
func (c *Catalog) Item(ref Ref) (Item, error) {
	return c.Snapshot().Item(ref)
}

// Add appends an item and returns its ref. Names are unique per category.
func (c *Catalog) Add(item Item) (Ref, error) {
	if err := item.Validate(); err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.current.Load()
	key := itemKey{name: item.name, category: item.category}
	if _, exists := old.byKey[key]; exists {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"name", fmt.Errorf("%s %q already exists", item.category, item.name))
	}

	next := old.clone()
	item.ref = Ref(len(next.items) + 1)
	next.items = append(next.items, item)
	next.byKey[key] = item.ref
	c.current.Store(next)

	return item.ref, nil
}

// SetPrice changes the surcharge of an item.
func (c *Catalog) SetPrice(ref Ref, price float64) error {
	return c.update(ref, func(item *Item) error {
		return item.setPrice(price)
	})
}

// SetAvailable toggles whether an item may be put on pizzas.
func (c *Catalog) SetAvailable(ref Ref, available bool) error {
	return c.update(ref, func(item *Item) error {
		item.available = available
		return nil
	})
}

func (c *Catalog) update(ref Ref, mutate func(item *Item) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.current.Load()
	item, err := old.Item(ref)
	if err != nil {
		return err
	}
	if err = mutate(&item); err != nil {
		return err
	}

	next := old.clone()
	next.items[ref-1] = item
	c.current.Store(next)
	return nil
}

func (s *Snapshot) clone() *Snapshot {
	byKey := make(map[itemKey]Ref, len(s.byKey)+1)
	for k, v := range s.byKey {
		byKey[k] = v
	}
	return &Snapshot{
		version: s.version + 1,
		items:   slices.Clone(s.items),
		byKey:   byKey,
	}
}
