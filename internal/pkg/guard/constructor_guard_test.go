package guard_test

import (
	"errors"
	"testing"

	"pizzeria/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	errTicketNotConstructed := errors.New("ticket must be created via newTicket")

	type ticket struct {
		number int
		guard  guard.ConstructorGuard
	}
	newTicket := func(number int) ticket {
		return ticket{number: number, guard: guard.NewConstructorGuard()}
	}

	t.Run("constructed value passes", func(t *testing.T) {
		tk := newTicket(7)
		require.NoError(t, tk.guard.Validate(errTicketNotConstructed))
	})

	t.Run("struct literal fails", func(t *testing.T) {
		tk := ticket{number: 7}
		require.ErrorIs(t, tk.guard.Validate(errTicketNotConstructed), errTicketNotConstructed)
	})

	t.Run("copy keeps the guard", func(t *testing.T) {
		original := newTicket(1)
		cp := original
		require.NoError(t, cp.guard.Validate(errTicketNotConstructed))
	})
}
