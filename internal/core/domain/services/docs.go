// Package services provides domain services that work across aggregates of
// the pizzeria.
//
// The package includes:
//   - OrderValidator: a chain of responsibility of order preconditions
//   - CustomerValidator, PaymentValidator, PizzaValidator: the standard checks
//   - NewValidationChain and NewFulfillmentChain: chain assembly helpers
//
// Chains stop at the first failing check and report it as an error; the
// order in which checks run is chosen by the caller.
package services
