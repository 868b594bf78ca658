package commands

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new restaurant order
// from a cart of menu item references. Prices are deliberately absent:
// the handler resolves them from the catalog, never from the client.
//
// Example:
//
//	customer, _ := order.NewCustomer("Alice", "", "", nil)
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customer, items, "no rush")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	customer order.Customer
	items    []services.LineRequest
	notes    string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the order ID is valid, the customer is constructed, the
// item list is non-empty, and every item reference carries a valid menu
// item id with a positive quantity. All failures are reported before any
// storage is touched.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customer order.Customer,
	items []services.LineRequest,
	notes string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomer(customer),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Customer returns the customer details captured with the order.
func (c CreateOrderCommand) Customer() order.Customer {
	return c.customer
}

// Items returns the unpriced cart entries.
func (c CreateOrderCommand) Items() []services.LineRequest {
	return c.items
}

// Notes returns the optional free-form note for the kitchen.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer order.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setItems(items []services.LineRequest) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, item := range items {
		if err := item.MenuItemID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("items[%d].menuItemId", i), err,
			)
		}
		if item.Quantity < 1 {
			return errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("items[%d].quantity", i),
				fmt.Errorf("%d is not greater than 0", item.Quantity),
			)
		}
	}
	c.items = items
	return nil
}
