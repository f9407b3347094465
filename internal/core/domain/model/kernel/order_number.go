package kernel

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

const (
	// DefaultOrderNumberPrefix is prepended to every generated order number.
	DefaultOrderNumberPrefix = "ORD"
	// DefaultOrderNumberOffset seeds the counter; the first number is offset+1.
	DefaultOrderNumberOffset int64 = 1000
)

// ErrOrderNumberIsNotConstructed is returned when validating a zero-value OrderNumber.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"order number must be created via OrderNumberSequence.Next or ParseOrderNumber")

// OrderNumber is the immutable, human readable identifier of an order, e.g. "ORD1001".
type OrderNumber struct {
	value string
	guard guard.ConstructorGuard
}

// ParseOrderNumber restores an OrderNumber from its string form.
// The string must be a non-empty prefix of letters followed by a positive counter.
func ParseOrderNumber(s string) (OrderNumber, error) {
	digits := strings.TrimLeftFunc(s, func(r rune) bool {
		return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
	})
	if digits == s || digits == "" {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"order number", fmt.Errorf("%q is not <prefix><counter>", s))
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || n <= 0 {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"order number", fmt.Errorf("%q has no positive counter", s))
	}

	return OrderNumber{value: s, guard: guard.NewConstructorGuard()}, nil
}

// String returns the textual order number.
func (n OrderNumber) String() string {
	return n.value
}

// IsEqual reports whether both numbers are the same.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

// Validate reports whether the number was produced by a constructor.
func (n OrderNumber) Validate() error {
	return n.guard.Validate(ErrOrderNumberIsNotConstructed)
}

// OrderNumberSequence hands out monotonically increasing order numbers.
// It is created once at startup by the composition root and is safe for concurrent use.
type OrderNumberSequence struct {
	prefix  string
	counter atomic.Int64
}

// NewOrderNumberSequence creates a sequence whose first number is prefix+(offset+1).
// An empty prefix falls back to DefaultOrderNumberPrefix.
func NewOrderNumberSequence(prefix string, offset int64) *OrderNumberSequence {
	if prefix == "" {
		prefix = DefaultOrderNumberPrefix
	}
	if offset < 0 {
		offset = 0
	}

	seq := &OrderNumberSequence{prefix: prefix}
	seq.counter.Store(offset)
	return seq
}

// Next atomically increments the counter and returns the new order number.
func (s *OrderNumberSequence) Next() OrderNumber {
	n := s.counter.Add(1)
	return OrderNumber{
		value: s.prefix + strconv.FormatInt(n, 10),
		guard: guard.NewConstructorGuard(),
	}
}

// AdvancePast moves the counter so the next number is greater than last.
// Used after restoring persisted orders so numbers stay unique across restarts.
func (s *OrderNumberSequence) AdvancePast(last int64) {
	for {
		current := s.counter.Load()
		if current >= last {
			return
		}
		if s.counter.CompareAndSwap(current, last) {
			return
		}
	}
}

// Counter extracts the numeric part of an order number, or 0 if it has none.
func (n OrderNumber) Counter() int64 {
	digits := strings.TrimLeftFunc(n.value, func(r rune) bool {
		return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
	})
	c, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return c
}
