package payment

import (
	"context"
	"fmt"
	"strings"

	"pizzeria/internal/pkg/errs"

	"go.uber.org/zap"
)

// CollectionPoint tells where cash is collected.
type CollectionPoint string

const (
	OnDelivery CollectionPoint = "ON_DELIVERY"
	OnPickup   CollectionPoint = "ON_PICKUP"
)

// ParseCollectionPoint accepts ON_DELIVERY or ON_PICKUP in any case.
func ParseCollectionPoint(s string) (CollectionPoint, error) {
	switch p := CollectionPoint(strings.ToUpper(strings.TrimSpace(s))); p {
	case OnDelivery, OnPickup:
		return p, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("collectionPoint", fmt.Errorf("%q is not a collection point", s))
	}
}

// Cash is paid to the driver or at the counter.
type Cash struct {
	point  CollectionPoint
	logger *zap.Logger
}

// NewCash creates a cash payment collected at point. logger may be nil.
func NewCash(point CollectionPoint, logger *zap.Logger) (*Cash, error) {
	if _, err := ParseCollectionPoint(string(point)); err != nil {
		return nil, err
	}
	return &Cash{point: point, logger: loggerOrNop(logger)}, nil
}

func (c *Cash) Kind() Kind {
	return KindCash
}

// Point returns the collection point.
func (c *Cash) Point() CollectionPoint {
	return c.point
}

func (c *Cash) Description() string {
	return "Cash " + string(c.point)
}

// Pay records that cash will be collected; nothing is charged up front.
func (c *Cash) Pay(ctx context.Context, amount float64) (Receipt, error) {
	if err := checkAmount(ctx, amount); err != nil {
		return Receipt{}, err
	}

	where := "at pickup"
	if c.point == OnDelivery {
		where = "upon delivery"
	}
	r := receipt(KindCash, amount, fmt.Sprintf("Cash payment of %.2f to be collected %s", amount, where))

	c.logger.Info("cash payment registered",
		zap.String("reference", r.Reference.String()),
		zap.Float64("amount", amount),
		zap.String("collection_point", string(c.point)))
	return r, nil
}
