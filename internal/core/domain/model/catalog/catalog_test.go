package catalog_test

import (
	"testing"

	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, name string, category catalog.Category, price float64, thickness string) catalog.Item {
	t.Helper()
	item, err := catalog.NewItem(name, category, price, thickness)
	require.NoError(t, err)
	return item
}

func TestNewItem(t *testing.T) {
	t.Run("should create crust with thickness", func(t *testing.T) {
		item, err := catalog.NewItem("Deep Pan", catalog.Crust, 50, "thick")

		require.NoError(t, err)
		assert.Equal(t, "Deep Pan", item.Name())
		assert.Equal(t, catalog.Crust, item.Category())
		assert.Equal(t, 50.0, item.Price())
		assert.Equal(t, "thick", item.Thickness())
		assert.True(t, item.IsAvailable())
		assert.True(t, item.Ref().IsZero())
		assert.Equal(t, "Crust: Deep Pan (thick) (+50.00)", item.Description())
	})

	t.Run("should drop thickness for non crusts", func(t *testing.T) {
		item, err := catalog.NewItem("BBQ", catalog.Sauce, 30, "thick")

		require.NoError(t, err)
		assert.Empty(t, item.Thickness())
		assert.Equal(t, "Sauce: BBQ (+30.00)", item.Description())
	})

	t.Run("should join all validation errors", func(t *testing.T) {
		_, err := catalog.NewItem(" ", catalog.UnknownCategory, -1, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var item catalog.Item

		assert.ErrorIs(t, item.Validate(), catalog.ErrItemIsNotConstructed)
	})
}

func TestParseCategory(t *testing.T) {
	c, err := catalog.ParseCategory(" topping ")
	require.NoError(t, err)
	assert.Equal(t, catalog.Topping, c)

	_, err = catalog.ParseCategory("dessert")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = catalog.ParseCategory("unknown")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCatalog(t *testing.T) {
	newCatalog := func(t *testing.T) *catalog.Catalog {
		c, err := catalog.NewCatalog(
			mustItem(t, "Thin Italian", catalog.Crust, 0, "thin"),
			mustItem(t, "Tomato", catalog.Sauce, 0, ""),
			mustItem(t, "Pepperoni", catalog.Topping, 200, ""),
			mustItem(t, "Mushrooms", catalog.Topping, 150, ""),
		)
		require.NoError(t, err)
		return c
	}

	t.Run("should assign refs in insertion order", func(t *testing.T) {
		c := newCatalog(t)

		pepperoni, err := c.Lookup("Pepperoni", catalog.Topping)
		require.NoError(t, err)
		assert.Equal(t, catalog.Ref(3), pepperoni.Ref())

		byRef, err := c.Item(pepperoni.Ref())
		require.NoError(t, err)
		assert.Equal(t, "Pepperoni", byRef.Name())

		assert.Len(t, c.Snapshot().Items(), 4)
		assert.Len(t, c.Snapshot().ItemsIn(catalog.Topping), 2)
	})

	t.Run("lookup is category scoped", func(t *testing.T) {
		c := newCatalog(t)

		_, err := c.Lookup("Pepperoni", catalog.Sauce)

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject duplicate name in category", func(t *testing.T) {
		c := newCatalog(t)

		_, err := c.Add(mustItem(t, "Tomato", catalog.Sauce, 10, ""))
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

		ref, err := c.Add(mustItem(t, "Tomato", catalog.Topping, 90, ""))
		require.NoError(t, err)
		assert.Equal(t, catalog.Ref(5), ref)
	})

	t.Run("should reject unconstructed item", func(t *testing.T) {
		c := newCatalog(t)

		_, err := c.Add(catalog.Item{})

		assert.ErrorIs(t, err, catalog.ErrItemIsNotConstructed)
	})

	t.Run("unknown refs are not found", func(t *testing.T) {
		c := newCatalog(t)

		_, err := c.Item(0)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)

		_, err = c.Item(99)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)

		assert.ErrorIs(t, c.SetPrice(99, 1), errs.ErrObjectNotFound)
	})

	t.Run("edits publish a new snapshot and keep the old one intact", func(t *testing.T) {
		c := newCatalog(t)
		before := c.Snapshot()

		require.NoError(t, c.SetPrice(3, 250))
		require.NoError(t, c.SetAvailable(4, false))

		after := c.Snapshot()
		assert.Equal(t, before.Version()+2, after.Version())

		old, err := before.Item(3)
		require.NoError(t, err)
		assert.Equal(t, 200.0, old.Price())

		current, err := after.Item(3)
		require.NoError(t, err)
		assert.Equal(t, 250.0, current.Price())

		mushrooms, err := after.Item(4)
		require.NoError(t, err)
		assert.False(t, mushrooms.IsAvailable())
	})

	t.Run("negative price is rejected without a new snapshot", func(t *testing.T) {
		c := newCatalog(t)
		version := c.Snapshot().Version()

		err := c.SetPrice(3, -5)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, version, c.Snapshot().Version())
	})
}
