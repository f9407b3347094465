// Package guard holds ConstructorGuard, a marker that lets value objects and
// commands tell a constructor-built instance apart from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded into structs that must only be created through
// their constructor. The zero value reports itself as not constructed.
//
// Example usage:
//
//	var ErrFeedbackNotConstructed = errors.New("Feedback must be created via NewFeedback")
//
//	type Feedback struct {
//	    rating int
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewFeedback(rating int) (Feedback, error) {
//	    return Feedback{rating: rating, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (f Feedback) Validate() error {
//	    return f.guard.Validate(ErrFeedbackNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
