// Package kernel provides the shared domain primitives of the pizzeria.
//
// The package includes:
//   - UUID: a value object for generated identifiers (feedback entries, payment references)
//   - OrderNumber: the human readable order identifier ("ORD1001")
//   - OrderNumberSequence: the process-wide generator of order numbers
//
// Order numbers are unique for the lifetime of the process only. A restarted
// process must be seeded past the highest persisted number to keep them unique.
package kernel
