// Package orderrepo maps the order aggregate onto the orders table and its
// child tables: order_pizzas, order_history and order_feedback.
package orderrepo

import (
	"time"

	"pizzeria/internal/adapters/out/postgres/recipe"
	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/payment"
	"pizzeria/internal/core/domain/model/pizza"
	"pizzeria/internal/core/domain/model/promotion"

	"github.com/google/uuid"
)

// OrderDTO is the row of the orders table. Pricing is stored as computed, so
// a restored order keeps the amounts it was saved with.
type OrderDTO struct {
	ID                string            `gorm:"type:varchar(32);primaryKey"`
	Counter           int64             `gorm:"not null;index"`
	CustomerID        *string           `gorm:"type:varchar(64);index"`
	OrderTime         time.Time         `gorm:"not null"`
	StatusLabel       string            `gorm:"type:varchar(255);not null"`
	State             int               `gorm:"type:smallint;not null;index"`
	IsPaid            bool              `gorm:"not null;index"`
	DeliveryType      string            `gorm:"type:varchar(16);not null"`
	DeliveryCharge    float64           `gorm:"not null"`
	Lines             []LineDTO         `gorm:"type:jsonb;serializer:json"`
	Subtotal          float64           `gorm:"not null"`
	DeliveryFee       float64           `gorm:"not null"`
	Total             float64           `gorm:"not null"`
	Promotion         PromotionDTO      `gorm:"embedded;embeddedPrefix:promotion_"`
	Payment           PaymentDTO        `gorm:"embedded;embeddedPrefix:payment_"`
	PointsEarned      int               `gorm:"type:int;not null;default:0"`
	EstimatedDelivery *time.Time
	Pizzas            []OrderPizzaDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	History           []HistoryEntryDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Feedback          *FeedbackDTO      `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO is one priced pizza line inside the lines JSON column.
type LineDTO struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Custom      bool    `json:"custom"`
	Price       float64 `json:"price"`
}

// PromotionDTO keeps a copy of the applied promotion. A nil Code means none.
type PromotionDTO struct {
	Code        *string `gorm:"type:varchar(32)"`
	Description string  `gorm:"type:varchar(255)"`
	Percentage  float64
	Start       *time.Time
	End         *time.Time
	Active      bool
}

// PaymentDTO is the payment record. A nil Kind means the order is unpaid.
type PaymentDTO struct {
	Kind        *string    `gorm:"type:varchar(16)"`
	Description string     `gorm:"type:varchar(255)"`
	Reference   *uuid.UUID `gorm:"type:uuid"`
	Amount      float64
	PaidAt      *time.Time
}

// OrderPizzaDTO is one pizza of an order. Position keeps the adding order.
type OrderPizzaDTO struct {
	OrderID    string `gorm:"type:varchar(32);primaryKey"`
	Position   int    `gorm:"primaryKey;autoIncrement:false"`
	recipe.DTO `gorm:"embedded"`
}

func (OrderPizzaDTO) TableName() string {
	return "order_pizzas"
}

// HistoryEntryDTO is one published status label.
type HistoryEntryDTO struct {
	OrderID string    `gorm:"type:varchar(32);primaryKey"`
	Seq     int       `gorm:"primaryKey;autoIncrement:false"`
	At      time.Time `gorm:"not null"`
	Label   string    `gorm:"type:varchar(255);not null"`
}

func (HistoryEntryDTO) TableName() string {
	return "order_history"
}

// FeedbackDTO is the rating left for an order, at most one per order.
type FeedbackDTO struct {
	OrderID     string    `gorm:"type:varchar(32);primaryKey"`
	ID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Rating      int       `gorm:"type:smallint;not null"`
	Comment     string    `gorm:"type:text"`
	SubmittedAt time.Time `gorm:"not null;index"`
}

func (FeedbackDTO) TableName() string {
	return "order_feedback"
}

func fromDomain(o *order.Order) OrderDTO {
	s := o.Snapshot()
	id := s.ID.String()

	dto := OrderDTO{
		ID:             id,
		Counter:        s.ID.Counter(),
		OrderTime:      s.OrderTime,
		StatusLabel:    s.StatusLabel,
		State:          int(s.State),
		IsPaid:         s.IsPaid,
		DeliveryType:   string(s.DeliveryType),
		DeliveryCharge: s.DeliveryCharge,
		Subtotal:       s.Subtotal,
		DeliveryFee:    s.DeliveryFee,
		Total:          s.Total,
		PointsEarned:   s.PointsEarned,
		Pizzas:         make([]OrderPizzaDTO, 0, len(s.Pizzas)),
		History:        make([]HistoryEntryDTO, 0, len(s.History)),
		Lines:          make([]LineDTO, 0, len(s.Lines)),
	}
	if s.Customer != nil {
		customerID := s.Customer.ID()
		dto.CustomerID = &customerID
	}
	for i, p := range s.Pizzas {
		dto.Pizzas = append(dto.Pizzas, OrderPizzaDTO{OrderID: id, Position: i, DTO: recipe.FromDomain(p)})
	}
	for i, e := range s.History {
		dto.History = append(dto.History, HistoryEntryDTO{OrderID: id, Seq: i, At: e.At, Label: e.Label})
	}
	for _, l := range s.Lines {
		dto.Lines = append(dto.Lines, LineDTO{Name: l.Name, Description: l.Description, Custom: l.Custom, Price: l.Price})
	}
	if p := s.Promotion; p != nil {
		code := p.Code()
		start, end := p.Start(), p.End()
		dto.Promotion = PromotionDTO{
			Code:        &code,
			Description: p.Description(),
			Percentage:  p.Percentage(),
			Start:       &start,
			End:         &end,
			Active:      p.IsActive(),
		}
	}
	if p := s.Payment; p != nil {
		kind := string(p.Kind)
		ref := p.Reference.Bytes()
		paidAt := p.PaidAt
		dto.Payment = PaymentDTO{
			Kind:        &kind,
			Description: p.Description,
			Reference:   &ref,
			Amount:      p.Amount,
			PaidAt:      &paidAt,
		}
	}
	if f := s.Feedback; f != nil {
		dto.Feedback = &FeedbackDTO{
			OrderID:     id,
			ID:          f.ID().Bytes(),
			Rating:      f.Rating(),
			Comment:     f.Comment(),
			SubmittedAt: f.SubmittedAt(),
		}
	}
	if s.EstimatedDelivery != nil {
		at := *s.EstimatedDelivery
		dto.EstimatedDelivery = &at
	}

	return dto
}

// toSnapshot converts a row into the persisted form of an order. The
// customer is resolved by the caller.
func toSnapshot(dto OrderDTO, c *customer.Customer) (order.Snapshot, error) {
	id, err := kernel.ParseOrderNumber(dto.ID)
	if err != nil {
		return order.Snapshot{}, err
	}

	s := order.Snapshot{
		ID:             id,
		Customer:       c,
		Pizzas:         make([]*pizza.Pizza, 0, len(dto.Pizzas)),
		OrderTime:      dto.OrderTime,
		StatusLabel:    dto.StatusLabel,
		State:          order.Status(dto.State),
		DeliveryType:   order.DeliveryType(dto.DeliveryType),
		DeliveryCharge: dto.DeliveryCharge,
		Lines:          make([]order.Line, 0, len(dto.Lines)),
		Subtotal:       dto.Subtotal,
		DeliveryFee:    dto.DeliveryFee,
		Total:          dto.Total,
		IsPaid:         dto.IsPaid,
		PointsEarned:   dto.PointsEarned,
		History:        make([]order.HistoryEntry, 0, len(dto.History)),
	}
	for _, p := range dto.Pizzas {
		s.Pizzas = append(s.Pizzas, p.ToDomain())
	}
	for _, e := range dto.History {
		s.History = append(s.History, order.HistoryEntry{At: e.At, Label: e.Label})
	}
	for _, l := range dto.Lines {
		s.Lines = append(s.Lines, order.Line{Name: l.Name, Description: l.Description, Custom: l.Custom, Price: l.Price})
	}

	if p := dto.Promotion; p.Code != nil && p.Start != nil && p.End != nil {
		promo, promoErr := promotion.RestorePromotion(*p.Code, p.Description, p.Percentage, *p.Start, *p.End, p.Active)
		if promoErr != nil {
			return order.Snapshot{}, promoErr
		}
		s.Promotion = promo
	}

	if p := dto.Payment; p.Kind != nil && p.Reference != nil {
		kind, kindErr := payment.ParseKind(*p.Kind)
		if kindErr != nil {
			return order.Snapshot{}, kindErr
		}
		ref, refErr := kernel.UUIDFromBytes(p.Reference[:])
		if refErr != nil {
			return order.Snapshot{}, refErr
		}
		info := order.PaymentInfo{
			Kind:        kind,
			Description: p.Description,
			Reference:   ref,
			Amount:      p.Amount,
		}
		if p.PaidAt != nil {
			info.PaidAt = *p.PaidAt
		}
		s.Payment = &info
	}

	if f := dto.Feedback; f != nil {
		feedbackID, idErr := kernel.UUIDFromBytes(f.ID[:])
		if idErr != nil {
			return order.Snapshot{}, idErr
		}
		feedback, feedbackErr := order.RestoreFeedback(feedbackID, f.Rating, f.Comment, f.SubmittedAt)
		if feedbackErr != nil {
			return order.Snapshot{}, feedbackErr
		}
		s.Feedback = &feedback
	}

	if dto.EstimatedDelivery != nil {
		at := *dto.EstimatedDelivery
		s.EstimatedDelivery = &at
	}

	return s, nil
}
