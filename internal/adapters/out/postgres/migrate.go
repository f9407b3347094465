package postgres

import (
	"pizzeria/internal/adapters/out/postgres/customerrepo"
	"pizzeria/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables of customers and orders.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&customerrepo.CustomerDTO{}, &customerrepo.SavedPizzaDTO{},
		&orderrepo.OrderDTO{}, &orderrepo.OrderPizzaDTO{}, &orderrepo.HistoryEntryDTO{}, &orderrepo.FeedbackDTO{},
	)
}
