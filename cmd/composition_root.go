package cmd

import (
	"context"
	"fmt"
	"time"

	httpin "pizzeria/internal/adapters/in/http"
	"pizzeria/internal/adapters/out/menu"
	"pizzeria/internal/adapters/out/notify"
	"pizzeria/internal/adapters/out/postgres"
	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/jobs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	menu       *menu.Menu
	numbers    *kernel.OrderNumberSequence
	logger     *zap.Logger
}

// NewCompositionRoot wires the adapters around gormDB and the loaded menu.
// Every order restored from storage reports its status labels to the log.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, m *menu.Menu, logger *zap.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, m.Catalog(), logger, notify.NewStatusLogger(logger)),
		menu:       m,
		numbers:    kernel.NewOrderNumberSequence(cfg.OrderIDPrefix, cfg.OrderIDOffset),
		logger:     logger,
	}
}

// SeedOrderNumbers moves the order number sequence past every stored order.
func (c *CompositionRoot) SeedOrderNumbers(ctx context.Context) error {
	last, err := c.uowFactory.Create().OrderRepository().LastOrderNumber(ctx)
	if err != nil {
		return fmt.Errorf("failed to read last order number: %w", err)
	}
	c.numbers.AdvancePast(last)
	return nil
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	return commands.NewCreateCustomerCommandHandler(c.customerUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateRedeemPointsCommandHandler() commands.RedeemPointsCommandHandler {
	return commands.NewRedeemPointsCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.fullUoWFactory(), c.numbers, c.menu, c.logger)
}

func (c *CompositionRoot) CreateAddPizzaCommandHandler() commands.AddPizzaCommandHandler {
	return commands.NewAddPizzaCommandHandler(c.fullUoWFactory(), c.menu)
}

func (c *CompositionRoot) CreateSetDeliveryCommandHandler() commands.SetDeliveryCommandHandler {
	return commands.NewSetDeliveryCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateApplyPromotionCommandHandler() commands.ApplyPromotionCommandHandler {
	return commands.NewApplyPromotionCommandHandler(c.orderUoWFactory(), c.menu)
}

func (c *CompositionRoot) CreatePayOrderCommandHandler() commands.PayOrderCommandHandler {
	return commands.NewPayOrderCommandHandler(c.fullUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddFeedbackCommandHandler() commands.AddFeedbackCommandHandler {
	return commands.NewAddFeedbackCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAdvanceKitchenOrdersCommandHandler() commands.AdvanceKitchenOrdersCommandHandler {
	return commands.NewAdvanceKitchenOrdersCommandHandler(c.orderUoWFactory(), nil, c.logger)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.menu, c.menu, time.Now)
}

func (c *CompositionRoot) CreateGetLoyaltyStatusQueryHandler() queries.GetLoyaltyStatusQueryHandler {
	return queries.NewGetLoyaltyStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderSummaryQueryHandler() queries.GetOrderSummaryQueryHandler {
	return queries.NewGetOrderSummaryQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetOrderTrackingQueryHandler() queries.GetOrderTrackingQueryHandler {
	return queries.NewGetOrderTrackingQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateListFeedbackQueryHandler() queries.ListFeedbackQueryHandler {
	return queries.NewListFeedbackQueryHandler(c.gormDB)
}

// HTTPHandlers collects the use cases served by the REST interface.
func (c *CompositionRoot) HTTPHandlers() httpin.Handlers {
	createCustomer := c.CreateCreateCustomerCommandHandler()
	redeemPoints := c.CreateRedeemPointsCommandHandler()
	createOrder := c.CreateCreateOrderCommandHandler()
	addPizza := c.CreateAddPizzaCommandHandler()
	setDelivery := c.CreateSetDeliveryCommandHandler()
	applyPromotion := c.CreateApplyPromotionCommandHandler()
	payOrder := c.CreatePayOrderCommandHandler()
	changeOrderStatus := c.CreateChangeOrderStatusCommandHandler()
	addFeedback := c.CreateAddFeedbackCommandHandler()

	return httpin.Handlers{
		CreateCustomer:    &createCustomer,
		RedeemPoints:      &redeemPoints,
		CreateOrder:       &createOrder,
		AddPizza:          &addPizza,
		SetDelivery:       &setDelivery,
		ApplyPromotion:    &applyPromotion,
		PayOrder:          &payOrder,
		ChangeOrderStatus: &changeOrderStatus,
		AddFeedback:       &addFeedback,

		GetMenu:          c.CreateGetMenuQueryHandler(),
		GetLoyaltyStatus: c.CreateGetLoyaltyStatusQueryHandler(),
		GetOrders:        c.CreateGetOrdersQueryHandler(),
		GetOrderSummary:  c.CreateGetOrderSummaryQueryHandler(),
		GetOrderTracking: c.CreateGetOrderTrackingQueryHandler(),
		ListFeedback:     c.CreateListFeedbackQueryHandler(),
	}
}

// JobManager builds the scheduled jobs.
func (c *CompositionRoot) JobManager(schedule string) *jobs.JobManager {
	kitchen := c.CreateAdvanceKitchenOrdersCommandHandler()
	return jobs.NewJobManager(&kitchen, schedule, c.logger)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
