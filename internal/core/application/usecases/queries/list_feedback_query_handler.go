package queries

import (
	"context"
	"database/sql"

	"pizzeria/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListFeedbackQueryHandler reads order_feedback joined with the orders and
// customers it refers to.
type ListFeedbackQueryHandler struct {
	db *gorm.DB
}

func NewListFeedbackQueryHandler(db *gorm.DB) ListFeedbackQueryHandler {
	return ListFeedbackQueryHandler{db: db}
}

func (h ListFeedbackQueryHandler) Handle(ctx context.Context, query ListFeedbackQuery) ([]ListFeedbackQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	feedback := make([]ListFeedbackQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			f.id,
			f.order_id,
			c.name,
			f.rating,
			f.comment,
			f.submitted_at
		FROM order_feedback f
		JOIN orders o ON o.id = f.order_id
		LEFT JOIN customers c ON c.id = o.customer_id
		ORDER BY f.submitted_at, f.order_id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			f            ListFeedbackQueryResponse
			id           uuid.UUID
			customerName sql.NullString
		)
		err = rows.Scan(
			&id,
			&f.OrderID,
			&customerName,
			&f.Rating,
			&f.Comment,
			&f.SubmittedAt,
		)
		if err != nil {
			return nil, err
		}

		feedbackID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		f.ID = feedbackID
		f.CustomerName = customerName.String
		feedback = append(feedback, f)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return feedback, nil
}
