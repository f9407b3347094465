package queries

import (
	"context"

	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetLoyaltyStatusQueryHandler reads the balance from the customers table and
// places it in the tier table.
type GetLoyaltyStatusQueryHandler struct {
	db *gorm.DB
}

func NewGetLoyaltyStatusQueryHandler(db *gorm.DB) GetLoyaltyStatusQueryHandler {
	return GetLoyaltyStatusQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError for an unknown customer.
func (h GetLoyaltyStatusQueryHandler) Handle(
	ctx context.Context,
	query GetLoyaltyStatusQuery,
) (GetLoyaltyStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetLoyaltyStatusQueryResponse{}, err
	}

	var row struct {
		ID            string
		Name          string
		LoyaltyPoints int
		OrderCount    int
	}
	result := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			loyalty_points,
			COALESCE(jsonb_array_length(order_history), 0) AS order_count
		FROM customers
		WHERE id = ?
	`, query.customerID).Scan(&row)
	if result.Error != nil {
		return GetLoyaltyStatusQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetLoyaltyStatusQueryResponse{}, errs.NewObjectNotFoundError("customer", query.customerID)
	}

	status := GetLoyaltyStatusQueryResponse{
		CustomerID: row.ID,
		Name:       row.Name,
		Points:     row.LoyaltyPoints,
		Tier:       customer.TierFor(row.LoyaltyPoints),
		OrderCount: row.OrderCount,
	}
	if next, ok := customer.NextTier(row.LoyaltyPoints); ok {
		status.NextTier = &next
		status.PointsToNext = next.MinPoints - row.LoyaltyPoints
	}
	return status, nil
}
