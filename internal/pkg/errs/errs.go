package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrObjectNotFound is the sentinel for lookups that found nothing.
	ErrObjectNotFound = errors.New("object not found")
	// ErrValueIsInvalid is the sentinel for values that break a domain rule.
	ErrValueIsInvalid = errors.New("value is invalid")
	// ErrValueIsOutOfRange is the sentinel for values outside of their bounds.
	ErrValueIsOutOfRange = errors.New("value is out of range")
	// ErrValueIsRequired is the sentinel for missing required values.
	ErrValueIsRequired = errors.New("value is required")
)

// ObjectNotFoundError reports that an object identified by ID does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
	}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s %s", ErrObjectNotFound, e.ParamName, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a value that violates a domain rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
	}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside of [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
	}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
		Cause:     cause,
	}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsOutOfRange, e.ParamName, sanitize(e.Value), sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing required value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
	}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// sanitize renders v on a single line.
func sanitize(v any) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(fmt.Sprintf("%v", v))
}
