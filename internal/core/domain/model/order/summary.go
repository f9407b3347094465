package order

import (
	"slices"
	"time"
)

// Summary is the structured receipt of an order for presentation layers.
type Summary struct {
	OrderID        string
	CustomerID     string
	CustomerName   string
	OrderTime      time.Time
	DeliveryType   DeliveryType
	Lines          []Line
	Subtotal       float64
	DeliveryFee    float64
	PromotionCode  string
	PromotionText  string
	Discount       float64
	Total          float64
	Status         string
	State          Status
	IsPaid         bool
	PaymentMethod  string
	PointsEarned   int
	CustomerPoints int
}

// Tracking is the status history of an order for presentation layers.
type Tracking struct {
	OrderID           string
	Status            string
	State             Status
	EstimatedDelivery *time.Time
	History           []HistoryEntry
}

// Summary returns the receipt as of the last recompute.
// Discount is what the promotion took off: subtotal + delivery fee − total.
func (o *Order) Summary() Summary {
	o.mu.Lock()
	defer o.mu.Unlock()

	s := Summary{
		OrderID:      o.id.String(),
		OrderTime:    o.orderTime,
		DeliveryType: o.deliveryType,
		Lines:        slices.Clone(o.pricing.lines),
		Subtotal:     o.pricing.subtotal,
		DeliveryFee:  o.pricing.deliveryFee,
		Discount:     o.pricing.subtotal + o.pricing.deliveryFee - o.pricing.total,
		Total:        o.pricing.total,
		Status:       o.statusLabel,
		State:        o.state,
		IsPaid:       o.isPaid,
		PointsEarned: o.pointsEarned,
	}
	if s.Lines == nil {
		s.Lines = []Line{}
	}
	if o.customer != nil {
		s.CustomerID = o.customer.ID()
		s.CustomerName = o.customer.Name()
		s.CustomerPoints = o.customer.LoyaltyPoints()
	}
	if o.promotion != nil {
		s.PromotionCode = o.promotion.Code()
		s.PromotionText = o.promotion.Description()
	}
	if o.payment != nil {
		s.PaymentMethod = o.payment.Description
	}
	return s
}

// Tracking returns the current label, formal state, estimate and history.
func (o *Order) Tracking() Tracking {
	o.mu.Lock()
	defer o.mu.Unlock()

	t := Tracking{
		OrderID: o.id.String(),
		Status:  o.statusLabel,
		State:   o.state,
		History: o.tracker.entries(),
	}
	if o.tracker.estimatedDelivery != nil {
		at := *o.tracker.estimatedDelivery
		t.EstimatedDelivery = &at
	}
	return t
}
