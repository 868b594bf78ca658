package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrSetMenuItemAvailabilityCommandIsNotConstructed = errors.New(
	"SetMenuItemAvailabilityCommand must be created via NewSetMenuItemAvailabilityCommand constructor",
)

// SetMenuItemAvailabilityCommand represents a request to put a catalog item on
// or off sale. Unavailable items stay visible in the catalog but reject new
// orders.
type SetMenuItemAvailabilityCommand struct { //nolint:recvcheck //using for validation
	itemID    kernel.UUID
	available bool

	guard guard.ConstructorGuard
}

// NewSetMenuItemAvailabilityCommand creates a command to toggle item availability.
func NewSetMenuItemAvailabilityCommand(itemID kernel.UUID, available bool) (SetMenuItemAvailabilityCommand, error) {
	cmd := SetMenuItemAvailabilityCommand{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setItemID(itemID); err != nil {
		return SetMenuItemAvailabilityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetMenuItemAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetMenuItemAvailabilityCommandIsNotConstructed)
}

// ItemID returns the identifier of the item to toggle.
func (c SetMenuItemAvailabilityCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Available returns the requested availability state.
func (c SetMenuItemAvailabilityCommand) Available() bool {
	return c.available
}

func (c *SetMenuItemAvailabilityCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}
