// Package customerrepo maps the customer aggregate onto the customers and
// saved_pizzas tables.
package customerrepo

import (
	"pizzeria/internal/adapters/out/postgres/recipe"
	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/core/domain/model/pizza"
)

// CustomerDTO is the row of the customers table. Order history is kept as a
// JSON array of order numbers.
type CustomerDTO struct {
	ID            string          `gorm:"type:varchar(64);primaryKey"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Contact       ContactDTO      `gorm:"embedded;embeddedPrefix:contact_"`
	LoyaltyPoints int             `gorm:"type:int;not null;default:0"`
	OrderHistory  []string        `gorm:"type:jsonb;serializer:json"`
	SavedPizzas   []SavedPizzaDTO `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

// ContactDTO is embedded into the customers table.
type ContactDTO struct {
	Address string `gorm:"type:varchar(255)"`
	Phone   string `gorm:"type:varchar(32)"`
	Email   string `gorm:"type:varchar(255)"`
}

// SavedPizzaDTO is one favourite pizza. Position keeps the saving order.
type SavedPizzaDTO struct {
	CustomerID string `gorm:"type:varchar(64);primaryKey"`
	Position   int    `gorm:"primaryKey;autoIncrement:false"`
	recipe.DTO `gorm:"embedded"`
}

func (SavedPizzaDTO) TableName() string {
	return "saved_pizzas"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	saved := c.SavedPizzas()
	pizzas := make([]SavedPizzaDTO, 0, len(saved))
	for i, p := range saved {
		pizzas = append(pizzas, SavedPizzaDTO{
			CustomerID: c.ID(),
			Position:   i,
			DTO:        recipe.FromDomain(p),
		})
	}

	contact := c.Contact()
	return CustomerDTO{
		ID:   c.ID(),
		Name: c.Name(),
		Contact: ContactDTO{
			Address: contact.Address,
			Phone:   contact.Phone,
			Email:   contact.Email,
		},
		LoyaltyPoints: c.LoyaltyPoints(),
		OrderHistory:  c.OrderHistory(),
		SavedPizzas:   pizzas,
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	saved := make([]*pizza.Pizza, 0, len(dto.SavedPizzas))
	for _, sp := range dto.SavedPizzas {
		saved = append(saved, sp.ToDomain())
	}

	return customer.RestoreCustomer(
		dto.ID,
		dto.Name,
		customer.Contact{
			Address: dto.Contact.Address,
			Phone:   dto.Contact.Phone,
			Email:   dto.Contact.Email,
		},
		dto.LoyaltyPoints,
		dto.OrderHistory,
		saved,
	)
}
