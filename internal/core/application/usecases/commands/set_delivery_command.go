package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/guard"
)

var ErrSetDeliveryCommandIsNotConstructed = errors.New(
	"SetDeliveryCommand must be created via NewSetDeliveryCommand constructor",
)

// SetDeliveryCommand chooses pickup or delivery for an unpaid order. For
// delivery the zone (1: within 5km, 2: 5-10km, 3: beyond 10km) selects the
// charge; unknown zones are charged as the nearest one.
type SetDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.OrderNumber
	deliveryType order.DeliveryType
	zone         int

	guard guard.ConstructorGuard
}

// NewSetDeliveryCommand creates the command. deliveryType is PICKUP or
// DELIVERY in any case; zone is ignored for pickup.
func NewSetDeliveryCommand(orderID kernel.OrderNumber, deliveryType string, zone int) (SetDeliveryCommand, error) {
	cmd := SetDeliveryCommand{zone: zone, guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		orderID.Validate(),
		cmd.setDeliveryType(deliveryType),
	); err != nil {
		return SetDeliveryCommand{}, err
	}
	cmd.orderID = orderID

	return cmd, nil
}

func (c SetDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrSetDeliveryCommandIsNotConstructed)
}

func (c SetDeliveryCommand) OrderID() kernel.OrderNumber {
	return c.orderID
}

func (c SetDeliveryCommand) DeliveryType() order.DeliveryType {
	return c.deliveryType
}

// Charge returns the surcharge for the chosen type and zone.
func (c SetDeliveryCommand) Charge() float64 {
	if c.deliveryType != order.Delivery {
		return 0
	}
	return order.ZoneCharge(c.zone)
}

func (c *SetDeliveryCommand) setDeliveryType(s string) error {
	t, err := order.ParseDeliveryType(s)
	if err != nil {
		return err
	}

	c.deliveryType = t
	return nil
}
