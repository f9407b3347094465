// Package catalog provides the customization options of the pizzeria menu:
// crusts, sauces and toppings, together with the shared Catalog that owns them.
//
// The package includes:
//   - Category: the closed set of option kinds (CRUST, SAUCE, TOPPING)
//   - Item: a priced option with an availability flag
//   - Ref: a stable index of an item inside the catalog table
//   - Snapshot: an immutable, versioned view of the whole table
//   - Catalog: the copy-on-write owner of the table
//
// Key business rules:
//   - Name and category of an item never change; price and availability are admin-mutable
//   - Prices are never negative
//   - Name is unique per category
//   - Pizzas keep Refs, never copies of items, so admin edits are visible to later pricing
//   - Every admin edit publishes a new Snapshot; readers holding an older snapshot are unaffected
package catalog
