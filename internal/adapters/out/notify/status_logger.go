// Package notify holds order observers that forward status labels outside
// the domain.
package notify

import (
	"pizzeria/internal/core/domain/model/order"

	"go.uber.org/zap"
)

// StatusLogger writes every published status label to the log.
type StatusLogger struct {
	logger *zap.Logger
}

var _ order.Observer = (*StatusLogger)(nil)

func NewStatusLogger(logger *zap.Logger) *StatusLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatusLogger{logger: logger.Named("order_status")}
}

func (l *StatusLogger) Update(status, orderID string) {
	l.logger.Info("order status changed",
		zap.String("order_id", orderID),
		zap.String("status", status),
	)
}
