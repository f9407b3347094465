package order

import (
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"
)

// Observer is notified of every status label published for an order.
// Update is called synchronously while the order is locked, so an observer
// must not call back into the order.
type Observer interface {
	Update(status, orderID string)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(status, orderID string)

func (f ObserverFunc) Update(status, orderID string) {
	f(status, orderID)
}

// HistoryEntry is one published status label.
type HistoryEntry struct {
	At    time.Time
	Label string
}

// String renders the entry as "HH:MM:SS - label".
func (e HistoryEntry) String() string {
	return e.At.Format(time.TimeOnly) + " - " + e.Label
}

// Tracker owns an order's status history and its observers.
// It is not locked on its own: the owning Order serializes every call.
type Tracker struct {
	observers         []Observer
	history           []HistoryEntry
	estimatedDelivery *time.Time
	logger            *zap.Logger
}

func newTracker(logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{
		observers: []Observer{},
		history:   []HistoryEntry{},
		logger:    logger,
	}
}

func (t *Tracker) subscribe(o Observer) {
	t.observers = append(t.observers, o)
}

// publish appends the entry and then calls every observer in registration
// order. A panicking observer is logged and skipped.
func (t *Tracker) publish(orderID, label string, at time.Time) HistoryEntry {
	entry := HistoryEntry{At: at, Label: label}
	t.history = append(t.history, entry)

	for i, o := range t.observers {
		t.notify(i, o, orderID, label)
	}
	return entry
}

func (t *Tracker) notify(index int, o Observer, orderID, label string) {
	defer func() {
		if r := recover(); r != nil {
			t.logger.Error("order observer failed",
				zap.String("order_id", orderID),
				zap.String("status", label),
				zap.Int("observer", index),
				zap.Error(fmt.Errorf("panic: %v", r)))
		}
	}()
	o.Update(label, orderID)
}

func (t *Tracker) entries() []HistoryEntry {
	return slices.Clone(t.history)
}

func (t *Tracker) observerCount() int {
	return len(t.observers)
}
