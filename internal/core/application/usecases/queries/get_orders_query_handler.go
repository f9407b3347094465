package queries

import (
	"context"
	"database/sql"

	"pizzeria/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders straight from the orders table.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle returns the matching orders, oldest first.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			order_time,
			state,
			status_label,
			delivery_type,
			total,
			is_paid
		FROM orders
		WHERE (@state = 0 OR state = @state)
		  AND (@customer = '' OR customer_id = @customer)
		ORDER BY counter
	`, sql.Named("state", int(query.state)), sql.Named("customer", query.customerID)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			o            GetOrdersQueryResponse
			customerID   sql.NullString
			state        int
			deliveryType string
		)
		err = rows.Scan(
			&o.ID,
			&customerID,
			&o.OrderTime,
			&state,
			&o.Status,
			&deliveryType,
			&o.Total,
			&o.IsPaid,
		)
		if err != nil {
			return nil, err
		}

		o.CustomerID = customerID.String
		o.State = order.Status(state)
		o.DeliveryType = order.DeliveryType(deliveryType)
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
