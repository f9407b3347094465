package order

import (
	"pizzeria/internal/core/domain/model/pizza"
	"pizzeria/internal/core/domain/model/promotion"
)

// Line is one priced pizza of an order.
type Line struct {
	Name        string
	Description string
	Custom      bool
	Price       float64
}

type pricing struct {
	lines       []Line
	subtotal    float64
	deliveryFee float64
	total       float64
}

// reprice computes the full breakdown from one catalog snapshot and commits
// it only when every pizza could be priced. Must be called with o.mu held.
//
//	subtotal = Σ pizza totals
//	total    = subtotal + fee (DELIVERY only), then the promotion discount if still valid
func (o *Order) reprice(pizzas []*pizza.Pizza, deliveryType DeliveryType, charge float64, promo *promotion.Promotion) error {
	snapshot := o.menu.Snapshot()

	lines := make([]Line, 0, len(pizzas))
	var subtotal float64
	for _, p := range pizzas {
		price, err := p.Total(snapshot)
		if err != nil {
			return err
		}
		description, err := p.Describe(snapshot)
		if err != nil {
			return err
		}
		lines = append(lines, Line{
			Name:        p.Name(),
			Description: description,
			Custom:      p.IsCustom(),
			Price:       price,
		})
		subtotal += price
	}

	var fee float64
	if deliveryType == Delivery {
		fee = charge
	}

	total := subtotal + fee
	if promo != nil {
		total = promo.ApplyDiscount(total, o.now())
	}

	o.pricing = pricing{
		lines:       lines,
		subtotal:    subtotal,
		deliveryFee: fee,
		total:       total,
	}
	return nil
}
