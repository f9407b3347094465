// Package recipe holds the column layout of a pizza shared by the order and
// customer tables.
package recipe

import (
	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/model/pizza"
)

// DTO stores a pizza by catalog refs. It is embedded into owning rows.
type DTO struct {
	Name      string   `gorm:"type:varchar(255);not null"`
	Crust     uint32   `gorm:"type:int;not null"`
	Sauce     uint32   `gorm:"type:int;not null"`
	BasePrice float64  `gorm:"not null"`
	Toppings  []uint32 `gorm:"type:jsonb;serializer:json"`
	IsCustom  bool     `gorm:"not null;default:false"`
}

// FromDomain converts a pizza into its stored form.
func FromDomain(p *pizza.Pizza) DTO {
	toppings := make([]uint32, 0, len(p.Toppings()))
	for _, ref := range p.Toppings() {
		toppings = append(toppings, uint32(ref))
	}

	return DTO{
		Name:      p.Name(),
		Crust:     uint32(p.Crust()),
		Sauce:     uint32(p.Sauce()),
		BasePrice: p.BasePrice(),
		Toppings:  toppings,
		IsCustom:  p.IsCustom(),
	}
}

// ToDomain rebuilds the pizza. Refs are not checked against the catalog here;
// pricing reports refs that no longer resolve.
func (d DTO) ToDomain() *pizza.Pizza {
	toppings := make([]catalog.Ref, 0, len(d.Toppings))
	for _, ref := range d.Toppings {
		toppings = append(toppings, catalog.Ref(ref))
	}

	return pizza.RestorePizza(d.Name, catalog.Ref(d.Crust), catalog.Ref(d.Sauce), d.BasePrice, toppings, d.IsCustom)
}
