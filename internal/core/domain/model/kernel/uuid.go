package kernel

import (
	"fmt"

	"pizzeria/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID or UUIDFromString")

// UUID wraps github.com/google/uuid so identifiers cannot be left as the nil UUID.
//
// Example usage:
//
//	ref := kernel.NewUUID()
//	parsed, err := kernel.UUIDFromString(ref.String())
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random (version 4) UUID.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses a UUID in any format accepted by uuid.Parse.
// The nil UUID is rejected.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}

	parsed := UUID{id: id}
	if err = parsed.Validate(); err != nil {
		return UUID{}, err
	}
	return parsed, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying google UUID, used by persistence adapters.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether both UUIDs hold the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the nil UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

// UUIDFromBytes converts a raw 16-byte value read from storage.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID bytes: %w", err)
	}

	parsed := UUID{id: id}
	if err = parsed.Validate(); err != nil {
		return UUID{}, err
	}
	return parsed, nil
}
