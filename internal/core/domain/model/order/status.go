package order

import (
	"fmt"
	"strings"

	"pizzeria/internal/pkg/errs"
)

// Status is the formal lifecycle state of an order.
//
// State transitions:
//
//	Placed ⇄ Preparing ⇄ OutForDelivery ⇄ Delivered
//	   └──────────┴──────────┴──> Cancelled (via Cancel only)
//
// Delivered and Cancelled are terminal for Next; Cancelled is also terminal
// for Prev. Free-form labels such as IN_OVEN are not states: they only change
// the order's status label and history.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial state of every order.
	Placed

	// Preparing means the kitchen is working on the order.
	Preparing

	// OutForDelivery means the order has left the kitchen.
	OutForDelivery

	// Delivered is the final state of a completed order.
	Delivered

	// Cancelled is the final state of an abandoned order.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Placed:         "PLACED",
		Preparing:      "PREPARING",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
	}
}

// String returns the upper-case state name used as status label,
// e.g. "OUT_FOR_DELIVERY". Invalid values yield "UNKNOWN".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks that s is one of the five formal states.
func (s Status) Validate() error {
	if s < Placed || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// ParseStatus converts a state name back to a Status.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for status, name := range getStatusStrings() {
		if status != Unknown && name == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// IsTerminal reports whether no further forward transition exists.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Next returns the following state. The boolean is false, and s is returned
// unchanged, when s has no successor.
//
//	PLACED -> PREPARING -> OUT_FOR_DELIVERY -> DELIVERED
func (s Status) Next() (Status, bool) {
	switch s {
	case Placed:
		return Preparing, true
	case Preparing:
		return OutForDelivery, true
	case OutForDelivery:
		return Delivered, true
	default:
		return s, false
	}
}

// Prev returns the preceding state. Placed cannot step back and Cancelled
// never leaves its state.
func (s Status) Prev() (Status, bool) {
	switch s {
	case Preparing:
		return Placed, true
	case OutForDelivery:
		return Preparing, true
	case Delivered:
		return OutForDelivery, true
	default:
		return s, false
	}
}

// Cancel moves any non-terminal state to Cancelled.
func (s Status) Cancel() (Status, bool) {
	if s.Validate() != nil || s.IsTerminal() {
		return s, false
	}
	return Cancelled, true
}
