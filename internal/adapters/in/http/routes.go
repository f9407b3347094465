package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers of api/openapi.yaml.
type ServerInterface interface {
	// GetMenu (GET /api/v1/menu)
	GetMenu(ctx echo.Context) error
	// CreateCustomer (POST /api/v1/customers)
	CreateCustomer(ctx echo.Context) error
	// GetLoyaltyStatus (GET /api/v1/customers/{customerId}/loyalty)
	GetLoyaltyStatus(ctx echo.Context, customerID string) error
	// RedeemPoints (POST /api/v1/customers/{customerId}/loyalty/redeem)
	RedeemPoints(ctx echo.Context, customerID string) error
	// GetOrders (GET /api/v1/orders)
	GetOrders(ctx echo.Context, params GetOrdersParams) error
	// CreateOrder (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// GetOrder (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderID string) error
	// GetOrderTracking (GET /api/v1/orders/{orderId}/tracking)
	GetOrderTracking(ctx echo.Context, orderID string) error
	// AddPizza (POST /api/v1/orders/{orderId}/pizzas)
	AddPizza(ctx echo.Context, orderID string) error
	// SetDelivery (PUT /api/v1/orders/{orderId}/delivery)
	SetDelivery(ctx echo.Context, orderID string) error
	// ApplyPromotion (POST /api/v1/orders/{orderId}/promotion)
	ApplyPromotion(ctx echo.Context, orderID string) error
	// PayOrder (POST /api/v1/orders/{orderId}/payment)
	PayOrder(ctx echo.Context, orderID string) error
	// ChangeOrderStatus (POST /api/v1/orders/{orderId}/status)
	ChangeOrderStatus(ctx echo.Context, orderID string) error
	// AddFeedback (POST /api/v1/orders/{orderId}/feedback)
	AddFeedback(ctx echo.Context, orderID string) error
	// ListFeedback (GET /api/v1/feedback)
	ListFeedback(ctx echo.Context) error
}

// GetOrdersParams defines parameters for GetOrders.
type GetOrdersParams struct {
	State      *string `form:"state,omitempty" json:"state,omitempty"`
	CustomerID *string `form:"customerId,omitempty" json:"customerId,omitempty"`
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetMenu(ctx echo.Context) error {
	return w.Handler.GetMenu(ctx)
}

func (w *ServerInterfaceWrapper) CreateCustomer(ctx echo.Context) error {
	return w.Handler.CreateCustomer(ctx)
}

func (w *ServerInterfaceWrapper) GetLoyaltyStatus(ctx echo.Context) error {
	customerID, err := pathParam(ctx, "customerId")
	if err != nil {
		return err
	}
	return w.Handler.GetLoyaltyStatus(ctx, customerID)
}

func (w *ServerInterfaceWrapper) RedeemPoints(ctx echo.Context) error {
	customerID, err := pathParam(ctx, "customerId")
	if err != nil {
		return err
	}
	return w.Handler.RedeemPoints(ctx, customerID)
}

func (w *ServerInterfaceWrapper) GetOrders(ctx echo.Context) error {
	var params GetOrdersParams

	err := runtime.BindQueryParameter("form", true, false, "state", ctx.QueryParams(), &params.State)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter state: %s", err))
	}
	err = runtime.BindQueryParameter("form", true, false, "customerId", ctx.QueryParams(), &params.CustomerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter customerId: %s", err))
	}

	return w.Handler.GetOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderID, err := pathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) GetOrderTracking(ctx echo.Context) error {
	orderID, err := pathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetOrderTracking(ctx, orderID)
}

func (w *ServerInterfaceWrapper) AddPizza(ctx echo.Context) error {
	orderID, err := pathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.AddPizza(ctx, orderID)
}

func (w *ServerInterfaceWrapper) SetDelivery(ctx echo.Context) error {
	orderID, err := pathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.SetDelivery(ctx, orderID)
}

func (w *ServerInterfaceWrapper) ApplyPromotion(ctx echo.Context) error {
	orderID, err := pathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.ApplyPromotion(ctx, orderID)
}

func (w *ServerInterfaceWrapper) PayOrder(ctx echo.Context) error {
	orderID, err := pathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.PayOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := pathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.ChangeOrderStatus(ctx, orderID)
}

func (w *ServerInterfaceWrapper) AddFeedback(ctx echo.Context) error {
	orderID, err := pathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.AddFeedback(ctx, orderID)
}

func (w *ServerInterfaceWrapper) ListFeedback(ctx echo.Context) error {
	return w.Handler.ListFeedback(ctx)
}

func pathParam(ctx echo.Context, name string) (string, error) {
	var value string
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &value,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return value, nil
}

// EchoRouter is the subset of echo.Echo and echo.Group used for registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the routes under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/api/v1/menu", wrapper.GetMenu)
	router.POST(baseURL+"/api/v1/customers", wrapper.CreateCustomer)
	router.GET(baseURL+"/api/v1/customers/:customerId/loyalty", wrapper.GetLoyaltyStatus)
	router.POST(baseURL+"/api/v1/customers/:customerId/loyalty/redeem", wrapper.RedeemPoints)
	router.GET(baseURL+"/api/v1/orders", wrapper.GetOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/api/v1/orders/:orderId", wrapper.GetOrder)
	router.GET(baseURL+"/api/v1/orders/:orderId/tracking", wrapper.GetOrderTracking)
	router.POST(baseURL+"/api/v1/orders/:orderId/pizzas", wrapper.AddPizza)
	router.PUT(baseURL+"/api/v1/orders/:orderId/delivery", wrapper.SetDelivery)
	router.POST(baseURL+"/api/v1/orders/:orderId/promotion", wrapper.ApplyPromotion)
	router.POST(baseURL+"/api/v1/orders/:orderId/payment", wrapper.PayOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/status", wrapper.ChangeOrderStatus)
	router.POST(baseURL+"/api/v1/orders/:orderId/feedback", wrapper.AddFeedback)
	router.GET(baseURL+"/api/v1/feedback", wrapper.ListFeedback)
}
