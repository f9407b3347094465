// Package pizza provides the Pizza entity and its pricing.
//
// A Pizza references its crust, sauce and toppings by catalog.Ref and never
// holds copies of catalog items, so price and availability edits made in the
// catalog show up in every later price calculation. The package includes:
//   - Pizza: the entity with its composition rules
//   - Builder: step-by-step construction with the house default base price
//   - PriceSource: the read side of the catalog used for pricing
//
// Key business rules:
//   - total = basePrice + crust + sauce + sum of toppings, independent of topping order
//   - unavailable or wrong-category items are silently ignored by component changes
//   - a pizza becomes custom on the first successful component change and stays custom
//   - Clone copies references, not catalog items
//
// A Pizza is not safe for concurrent mutation; the owning order serializes access.
package pizza
