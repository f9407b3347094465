// Package errs holds the typed errors shared by the domain and adapters.
//
// Each kind pairs a sentinel (ErrValueIsRequired, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrObjectNotFound) with a struct carrying the
// offending parameter or object, constructors with and without a cause, and
// Unwrap so that errors.Is matches the sentinel through wrapping.
//
// The HTTP adapter answers ErrObjectNotFound with 404 and the value errors
// with 400.
package errs
