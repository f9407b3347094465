package http

import (
	"math"
	"time"

	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/core/domain/model/order"
)

// Wire types of api/openapi.yaml.

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Result struct {
	Applied bool `json:"applied"`
}

type MenuItem struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	Thickness string  `json:"thickness,omitempty"`
	Available bool    `json:"available"`
}

type MenuPizza struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type Zone struct {
	Zone   int     `json:"zone"`
	Name   string  `json:"name"`
	Charge float64 `json:"charge"`
}

type MenuPromotion struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Percentage  float64 `json:"percentage"`
	ValidToday  bool    `json:"validToday"`
}

type Menu struct {
	Crusts     []MenuItem      `json:"crusts"`
	Sauces     []MenuItem      `json:"sauces"`
	Toppings   []MenuItem      `json:"toppings"`
	Pizzas     []MenuPizza     `json:"pizzas"`
	Zones      []Zone          `json:"zones"`
	Promotions []MenuPromotion `json:"promotions"`
}

type Contact struct {
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

type NewCustomer struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Contact Contact `json:"contact"`
}

type CustomerCreated struct {
	ID string `json:"id"`
}

type Tier struct {
	Name               string `json:"name"`
	MinPoints          int    `json:"minPoints"`
	DiscountPercentage int    `json:"discountPercentage"`
}

type LoyaltyStatus struct {
	CustomerID   string `json:"customerId"`
	Name         string `json:"name"`
	Points       int    `json:"points"`
	Tier         Tier   `json:"tier"`
	NextTier     *Tier  `json:"nextTier,omitempty"`
	PointsToNext int    `json:"pointsToNext"`
	OrderCount   int    `json:"orderCount"`
}

type Redeem struct {
	Points int `json:"points"`
}

type NewOrder struct {
	CustomerID string `json:"customerId"`
}

type OrderCreated struct {
	OrderID string `json:"orderId"`
}

type OrderListItem struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customerId,omitempty"`
	OrderTime    time.Time `json:"orderTime"`
	State        string    `json:"state"`
	Status       string    `json:"status"`
	DeliveryType string    `json:"deliveryType"`
	Total        float64   `json:"total"`
	IsPaid       bool      `json:"isPaid"`
}

type Line struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Custom      bool    `json:"custom"`
	Price       float64 `json:"price"`
}

type OrderSummary struct {
	OrderID        string    `json:"orderId"`
	CustomerID     string    `json:"customerId,omitempty"`
	CustomerName   string    `json:"customerName,omitempty"`
	CustomerPoints int       `json:"customerPoints"`
	OrderTime      time.Time `json:"orderTime"`
	DeliveryType   string    `json:"deliveryType"`
	Lines          []Line    `json:"lines"`
	Subtotal       float64   `json:"subtotal"`
	DeliveryFee    float64   `json:"deliveryFee"`
	PromotionCode  string    `json:"promotionCode,omitempty"`
	PromotionText  string    `json:"promotionText,omitempty"`
	Discount       float64   `json:"discount"`
	Total          float64   `json:"total"`
	Status         string    `json:"status"`
	State          string    `json:"state"`
	IsPaid         bool      `json:"isPaid"`
	PaymentMethod  string    `json:"paymentMethod,omitempty"`
	PointsEarned   int       `json:"pointsEarned"`
}

type HistoryEntry struct {
	At    time.Time `json:"at"`
	Label string    `json:"label"`
}

type Tracking struct {
	OrderID           string         `json:"orderId"`
	Status            string         `json:"status"`
	State             string         `json:"state"`
	EstimatedDelivery *time.Time     `json:"estimatedDelivery,omitempty"`
	History           []HistoryEntry `json:"history"`
}

type CustomPizza struct {
	Name     string   `json:"name"`
	Crust    string   `json:"crust"`
	Sauce    string   `json:"sauce"`
	Toppings []string `json:"toppings"`
}

type NewPizza struct {
	MenuPizza  string       `json:"menuPizza,omitempty"`
	SavedPizza string       `json:"savedPizza,omitempty"`
	Custom     *CustomPizza `json:"custom,omitempty"`
	SaveAs     string       `json:"saveAs,omitempty"`
}

type DeliveryChoice struct {
	Type string `json:"type"`
	Zone int    `json:"zone"`
}

type PromotionCode struct {
	Code string `json:"code"`
}

type Payment struct {
	Kind            string `json:"kind"`
	CollectionPoint string `json:"collectionPoint,omitempty"`
	CardNumber      string `json:"cardNumber,omitempty"`
	Account         string `json:"account,omitempty"`
	Credential      string `json:"credential,omitempty"`
}

type StatusChange struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
}

type NewFeedback struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

type Feedback struct {
	ID           string    `json:"id"`
	OrderID      string    `json:"orderId"`
	CustomerName string    `json:"customerName,omitempty"`
	Rating       int       `json:"rating"`
	Stars        string    `json:"stars"`
	Comment      string    `json:"comment,omitempty"`
	SubmittedAt  time.Time `json:"submittedAt"`
}

// money rounds an amount to cents for display.
func money(v float64) float64 {
	return math.Round(v*100) / 100
}

func toMenu(m queries.GetMenuQueryResponse) Menu {
	out := Menu{
		Crusts:     toMenuItems(m.Crusts),
		Sauces:     toMenuItems(m.Sauces),
		Toppings:   toMenuItems(m.Toppings),
		Pizzas:     make([]MenuPizza, len(m.Pizzas)),
		Zones:      make([]Zone, len(m.Zones)),
		Promotions: make([]MenuPromotion, len(m.Promotions)),
	}
	for i, p := range m.Pizzas {
		out.Pizzas[i] = MenuPizza{Name: p.Name, Description: p.Description, Price: money(p.Price)}
	}
	for i, z := range m.Zones {
		out.Zones[i] = Zone{Zone: i + 1, Name: z.Name, Charge: money(z.Charge)}
	}
	for i, p := range m.Promotions {
		out.Promotions[i] = MenuPromotion{
			Code:        p.Code,
			Description: p.Description,
			Percentage:  p.Percentage,
			ValidToday:  p.ValidToday,
		}
	}
	return out
}

func toMenuItems(items []queries.MenuItem) []MenuItem {
	out := make([]MenuItem, len(items))
	for i, it := range items {
		out[i] = MenuItem{
			Name:      it.Name,
			Category:  it.Category.String(),
			Price:     money(it.Price),
			Thickness: it.Thickness,
			Available: it.Available,
		}
	}
	return out
}

func toTier(t customer.Tier) Tier {
	return Tier{Name: t.Name, MinPoints: t.MinPoints, DiscountPercentage: t.DiscountPercentage}
}

func toLoyaltyStatus(s queries.GetLoyaltyStatusQueryResponse) LoyaltyStatus {
	out := LoyaltyStatus{
		CustomerID:   s.CustomerID,
		Name:         s.Name,
		Points:       s.Points,
		Tier:         toTier(s.Tier),
		PointsToNext: s.PointsToNext,
		OrderCount:   s.OrderCount,
	}
	if s.NextTier != nil {
		next := toTier(*s.NextTier)
		out.NextTier = &next
	}
	return out
}

func toOrderList(orders []queries.GetOrdersQueryResponse) []OrderListItem {
	out := make([]OrderListItem, len(orders))
	for i, o := range orders {
		out[i] = OrderListItem{
			ID:           o.ID,
			CustomerID:   o.CustomerID,
			OrderTime:    o.OrderTime,
			State:        o.State.String(),
			Status:       o.Status,
			DeliveryType: string(o.DeliveryType),
			Total:        money(o.Total),
			IsPaid:       o.IsPaid,
		}
	}
	return out
}

func toOrderSummary(s order.Summary) OrderSummary {
	out := OrderSummary{
		OrderID:        s.OrderID,
		CustomerID:     s.CustomerID,
		CustomerName:   s.CustomerName,
		CustomerPoints: s.CustomerPoints,
		OrderTime:      s.OrderTime,
		DeliveryType:   string(s.DeliveryType),
		Lines:          make([]Line, len(s.Lines)),
		Subtotal:       money(s.Subtotal),
		DeliveryFee:    money(s.DeliveryFee),
		PromotionCode:  s.PromotionCode,
		PromotionText:  s.PromotionText,
		Discount:       money(s.Discount),
		Total:          money(s.Total),
		Status:         s.Status,
		State:          s.State.String(),
		IsPaid:         s.IsPaid,
		PaymentMethod:  s.PaymentMethod,
		PointsEarned:   s.PointsEarned,
	}
	for i, l := range s.Lines {
		out.Lines[i] = Line{Name: l.Name, Description: l.Description, Custom: l.Custom, Price: money(l.Price)}
	}
	return out
}

func toTracking(t order.Tracking) Tracking {
	out := Tracking{
		OrderID:           t.OrderID,
		Status:            t.Status,
		State:             t.State.String(),
		EstimatedDelivery: t.EstimatedDelivery,
		History:           make([]HistoryEntry, len(t.History)),
	}
	for i, h := range t.History {
		out.History[i] = HistoryEntry{At: h.At, Label: h.Label}
	}
	return out
}

func toFeedback(orderID string, f order.Feedback) Feedback {
	return Feedback{
		ID:          f.ID().String(),
		OrderID:     orderID,
		Rating:      f.Rating(),
		Stars:       f.Stars(),
		Comment:     f.Comment(),
		SubmittedAt: f.SubmittedAt(),
	}
}

func toFeedbackList(items []queries.ListFeedbackQueryResponse) []Feedback {
	out := make([]Feedback, len(items))
	for i, f := range items {
		out[i] = Feedback{
			ID:           f.ID.String(),
			OrderID:      f.OrderID,
			CustomerName: f.CustomerName,
			Rating:       f.Rating,
			Stars:        order.StarsFor(f.Rating),
			Comment:      f.Comment,
			SubmittedAt:  f.SubmittedAt,
		}
	}
	return out
}
