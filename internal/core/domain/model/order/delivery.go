package order

import (
	"fmt"
	"strings"

	"pizzeria/internal/pkg/errs"
)

// DeliveryType tells how the customer receives the order.
type DeliveryType string

const (
	Pickup   DeliveryType = "PICKUP"
	Delivery DeliveryType = "DELIVERY"
)

// ParseDeliveryType accepts PICKUP or DELIVERY in any case.
func ParseDeliveryType(s string) (DeliveryType, error) {
	switch t := DeliveryType(strings.ToUpper(strings.TrimSpace(s))); t {
	case Pickup, Delivery:
		return t, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("deliveryType", fmt.Errorf("%q is not a delivery type", s))
	}
}

// Zone is a delivery distance band with its surcharge.
type Zone struct {
	Name   string
	Charge float64
}

var zones = []Zone{
	{Name: "Within 5km", Charge: 200},
	{Name: "5-10km", Charge: 500},
	{Name: "Beyond 10km", Charge: 800},
}

// Zones returns the delivery bands, nearest first.
func Zones() []Zone {
	out := make([]Zone, len(zones))
	copy(out, zones)
	return out
}

// ZoneCharge returns the surcharge of the 1-based zone number; unknown zones
// fall back to the nearest band.
func ZoneCharge(zone int) float64 {
	if zone < 1 || zone > len(zones) {
		return zones[0].Charge
	}
	return zones[zone-1].Charge
}
