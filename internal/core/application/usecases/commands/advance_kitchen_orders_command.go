package commands

import (
	"errors"

	"pizzeria/internal/pkg/guard"
)

var ErrAdvanceKitchenOrdersCommandIsNotConstructed = errors.New(
	"AdvanceKitchenOrdersCommand must be created via NewAdvanceKitchenOrdersCommand constructor",
)

// AdvanceKitchenOrdersCommand moves every paid, unfinished order one state
// forward. It is issued periodically by the kitchen job.
type AdvanceKitchenOrdersCommand struct {
	guard guard.ConstructorGuard
}

func NewAdvanceKitchenOrdersCommand() AdvanceKitchenOrdersCommand {
	return AdvanceKitchenOrdersCommand{guard: guard.NewConstructorGuard()}
}

func (c AdvanceKitchenOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceKitchenOrdersCommandIsNotConstructed)
}
