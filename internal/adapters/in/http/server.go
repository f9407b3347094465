package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/payment"
	"pizzeria/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ErrPizzaSourceIsAmbiguous is returned when a pizza request names no source
// or more than one.
var ErrPizzaSourceIsAmbiguous = errs.NewValueIsInvalidErrorWithCause(
	"pizza", errors.New("exactly one of menuPizza, savedPizza and custom is required"),
)

// Use case contracts the server depends on. The command handlers of package
// commands satisfy them through their pointer receivers.
type (
	CreateCustomerHandler interface {
		Handle(ctx context.Context, cmd commands.CreateCustomerCommand) error
	}
	RedeemPointsHandler interface {
		Handle(ctx context.Context, cmd commands.RedeemPointsCommand) (bool, error)
	}
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (kernel.OrderNumber, error)
	}
	AddPizzaHandler interface {
		Handle(ctx context.Context, cmd commands.AddPizzaCommand) (bool, error)
	}
	SetDeliveryHandler interface {
		Handle(ctx context.Context, cmd commands.SetDeliveryCommand) (bool, error)
	}
	ApplyPromotionHandler interface {
		Handle(ctx context.Context, cmd commands.ApplyPromotionCommand) (bool, error)
	}
	PayOrderHandler interface {
		Handle(ctx context.Context, cmd commands.PayOrderCommand) (bool, error)
	}
	ChangeOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (bool, error)
	}
	AddFeedbackHandler interface {
		Handle(ctx context.Context, cmd commands.AddFeedbackCommand) (order.Feedback, error)
	}

	GetMenuHandler interface {
		Handle(ctx context.Context, query queries.GetMenuQuery) (queries.GetMenuQueryResponse, error)
	}
	GetLoyaltyStatusHandler interface {
		Handle(ctx context.Context, query queries.GetLoyaltyStatusQuery) (queries.GetLoyaltyStatusQueryResponse, error)
	}
	GetOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetOrdersQuery) ([]queries.GetOrdersQueryResponse, error)
	}
	GetOrderSummaryHandler interface {
		Handle(ctx context.Context, query queries.GetOrderSummaryQuery) (order.Summary, error)
	}
	GetOrderTrackingHandler interface {
		Handle(ctx context.Context, query queries.GetOrderTrackingQuery) (order.Tracking, error)
	}
	ListFeedbackHandler interface {
		Handle(ctx context.Context, query queries.ListFeedbackQuery) ([]queries.ListFeedbackQueryResponse, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	CreateCustomer    CreateCustomerHandler
	RedeemPoints      RedeemPointsHandler
	CreateOrder       CreateOrderHandler
	AddPizza          AddPizzaHandler
	SetDelivery       SetDeliveryHandler
	ApplyPromotion    ApplyPromotionHandler
	PayOrder          PayOrderHandler
	ChangeOrderStatus ChangeOrderStatusHandler
	AddFeedback       AddFeedbackHandler

	// Query handlers
	GetMenu          GetMenuHandler
	GetLoyaltyStatus GetLoyaltyStatusHandler
	GetOrders        GetOrdersHandler
	GetOrderSummary  GetOrderSummaryHandler
	GetOrderTracking GetOrderTrackingHandler
	ListFeedback     ListFeedbackHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	h      Handlers
	logger *zap.Logger
}

var _ ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{h: handlers, logger: logger.Named("http")}
}

// GetMenu handles GET /api/v1/menu.
func (s *Server) GetMenu(ctx echo.Context) error {
	menu, err := s.h.GetMenu.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve menu")
	}
	return ctx.JSON(http.StatusOK, toMenu(menu))
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var body NewCustomer
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewCreateCustomerCommand(body.ID, body.Name, customer.Contact{
		Address: body.Contact.Address,
		Phone:   body.Contact.Phone,
		Email:   body.Contact.Email,
	})
	if err != nil {
		return s.fail(ctx, err, "Invalid customer data")
	}

	if err = s.h.CreateCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to register customer")
	}

	return ctx.JSON(http.StatusCreated, CustomerCreated{ID: strings.TrimSpace(body.ID)})
}

// GetLoyaltyStatus handles GET /api/v1/customers/{customerId}/loyalty.
func (s *Server) GetLoyaltyStatus(ctx echo.Context, customerID string) error {
	query, err := queries.NewGetLoyaltyStatusQuery(customerID)
	if err != nil {
		return s.fail(ctx, err, "Invalid customer id")
	}

	status, err := s.h.GetLoyaltyStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve loyalty status")
	}
	return ctx.JSON(http.StatusOK, toLoyaltyStatus(status))
}

// RedeemPoints handles POST /api/v1/customers/{customerId}/loyalty/redeem.
func (s *Server) RedeemPoints(ctx echo.Context, customerID string) error {
	var body Redeem
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewRedeemPointsCommand(customerID, body.Points)
	if err != nil {
		return s.fail(ctx, err, "Invalid redemption")
	}

	redeemed, err := s.h.RedeemPoints.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to redeem points")
	}
	return ctx.JSON(http.StatusOK, Result{Applied: redeemed})
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context, params GetOrdersParams) error {
	var state, customerID string
	if params.State != nil {
		state = *params.State
	}
	if params.CustomerID != nil {
		customerID = *params.CustomerID
	}

	query, err := queries.NewGetOrdersQuery(state, customerID)
	if err != nil {
		return s.fail(ctx, err, "Invalid order filter")
	}

	orders, err := s.h.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve orders")
	}
	return ctx.JSON(http.StatusOK, toOrderList(orders))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewCreateOrderCommand(body.CustomerID)
	if err != nil {
		return s.fail(ctx, err, "Invalid order data")
	}

	id, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to create order")
	}
	return ctx.JSON(http.StatusCreated, OrderCreated{OrderID: id.String()})
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID string) error {
	query, err := queries.NewGetOrderSummaryQuery(orderID)
	if err != nil {
		return s.fail(ctx, err, "Invalid order id")
	}

	summary, err := s.h.GetOrderSummary.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve order")
	}
	return ctx.JSON(http.StatusOK, toOrderSummary(summary))
}

// GetOrderTracking handles GET /api/v1/orders/{orderId}/tracking.
func (s *Server) GetOrderTracking(ctx echo.Context, orderID string) error {
	query, err := queries.NewGetOrderTrackingQuery(orderID)
	if err != nil {
		return s.fail(ctx, err, "Invalid order id")
	}

	tracking, err := s.h.GetOrderTracking.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve tracking")
	}
	return ctx.JSON(http.StatusOK, toTracking(tracking))
}

// AddPizza handles POST /api/v1/orders/{orderId}/pizzas.
func (s *Server) AddPizza(ctx echo.Context, orderID string) error {
	var body NewPizza
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	id, err := kernel.ParseOrderNumber(orderID)
	if err != nil {
		return s.fail(ctx, err, "Invalid order id")
	}

	cmd, err := addPizzaCommand(id, body)
	if err != nil {
		return s.fail(ctx, err, "Invalid pizza")
	}

	added, err := s.h.AddPizza.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to add pizza")
	}
	return ctx.JSON(http.StatusOK, Result{Applied: added})
}

func addPizzaCommand(id kernel.OrderNumber, body NewPizza) (commands.AddPizzaCommand, error) {
	sources := 0
	for _, set := range []bool{body.MenuPizza != "", body.SavedPizza != "", body.Custom != nil} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return commands.AddPizzaCommand{}, ErrPizzaSourceIsAmbiguous
	}

	switch {
	case body.MenuPizza != "":
		return commands.NewAddMenuPizzaCommand(id, body.MenuPizza)
	case body.SavedPizza != "":
		return commands.NewAddSavedPizzaCommand(id, body.SavedPizza)
	default:
		return commands.NewAddCustomPizzaCommand(id, commands.Recipe{
			Name:     body.Custom.Name,
			Crust:    body.Custom.Crust,
			Sauce:    body.Custom.Sauce,
			Toppings: body.Custom.Toppings,
		}, body.SaveAs)
	}
}

// SetDelivery handles PUT /api/v1/orders/{orderId}/delivery.
func (s *Server) SetDelivery(ctx echo.Context, orderID string) error {
	var body DeliveryChoice
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	id, err := kernel.ParseOrderNumber(orderID)
	if err != nil {
		return s.fail(ctx, err, "Invalid order id")
	}

	cmd, err := commands.NewSetDeliveryCommand(id, body.Type, body.Zone)
	if err != nil {
		return s.fail(ctx, err, "Invalid delivery choice")
	}

	applied, err := s.h.SetDelivery.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to set delivery")
	}
	return ctx.JSON(http.StatusOK, Result{Applied: applied})
}

// ApplyPromotion handles POST /api/v1/orders/{orderId}/promotion.
func (s *Server) ApplyPromotion(ctx echo.Context, orderID string) error {
	var body PromotionCode
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	id, err := kernel.ParseOrderNumber(orderID)
	if err != nil {
		return s.fail(ctx, err, "Invalid order id")
	}

	cmd, err := commands.NewApplyPromotionCommand(id, body.Code)
	if err != nil {
		return s.fail(ctx, err, "Invalid promotion code")
	}

	applied, err := s.h.ApplyPromotion.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to apply promotion")
	}
	return ctx.JSON(http.StatusOK, Result{Applied: applied})
}

// PayOrder handles POST /api/v1/orders/{orderId}/payment.
func (s *Server) PayOrder(ctx echo.Context, orderID string) error {
	var body Payment
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	id, err := kernel.ParseOrderNumber(orderID)
	if err != nil {
		return s.fail(ctx, err, "Invalid order id")
	}

	cmd, err := commands.NewPayOrderCommand(id, payment.Details{
		Kind:            payment.Kind(body.Kind),
		CollectionPoint: payment.CollectionPoint(body.CollectionPoint),
		CardNumber:      body.CardNumber,
		Account:         body.Account,
		Credential:      body.Credential,
	})
	if err != nil {
		return s.fail(ctx, err, "Invalid payment")
	}

	paid, err := s.h.PayOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to pay order")
	}
	return ctx.JSON(http.StatusOK, Result{Applied: paid})
}

// ChangeOrderStatus handles POST /api/v1/orders/{orderId}/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderID string) error {
	var body StatusChange
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	id, err := kernel.ParseOrderNumber(orderID)
	if err != nil {
		return s.fail(ctx, err, "Invalid order id")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, body.Action, body.Label)
	if err != nil {
		return s.fail(ctx, err, "Invalid status change")
	}

	changed, err := s.h.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to change status")
	}
	return ctx.JSON(http.StatusOK, Result{Applied: changed})
}

// AddFeedback handles POST /api/v1/orders/{orderId}/feedback.
func (s *Server) AddFeedback(ctx echo.Context, orderID string) error {
	var body NewFeedback
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	id, err := kernel.ParseOrderNumber(orderID)
	if err != nil {
		return s.fail(ctx, err, "Invalid order id")
	}

	cmd, err := commands.NewAddFeedbackCommand(id, body.Rating, body.Comment)
	if err != nil {
		return s.fail(ctx, err, "Invalid feedback")
	}

	feedback, err := s.h.AddFeedback.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to record feedback")
	}
	return ctx.JSON(http.StatusCreated, toFeedback(id.String(), feedback))
}

// ListFeedback handles GET /api/v1/feedback.
func (s *Server) ListFeedback(ctx echo.Context) error {
	items, err := s.h.ListFeedback.Handle(ctx.Request().Context(), queries.NewListFeedbackQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve feedback")
	}
	return ctx.JSON(http.StatusOK, toFeedbackList(items))
}
