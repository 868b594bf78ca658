package order

import (
	"errors"
	"fmt"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through the NewCustomer factory function.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer")

// Customer is a value object carrying the contact details captured with an
// order. Only the name is mandatory; phone, email, and table number are
// optional conveniences for the staff.
type Customer struct {
	name        string
	phone       string
	email       string
	tableNumber *int

	guard guard.ConstructorGuard
}

// NewCustomer creates customer details for an order.
// The name must be non-empty; the table number, when present, must be positive.
func NewCustomer(name, phone, email string, tableNumber *int) (Customer, error) {
	customer := Customer{
		phone: phone,
		email: email,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setName(name),
		customer.setTableNumber(tableNumber),
	); err != nil {
		return Customer{}, err
	}

	return customer, nil
}

// Validate ensures the Customer instance was properly constructed.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// Name returns the customer's name.
func (c Customer) Name() string {
	return c.name
}

// Phone returns the optional contact phone number.
func (c Customer) Phone() string {
	return c.phone
}

// Email returns the optional contact email address.
func (c Customer) Email() string {
	return c.email
}

// TableNumber returns the optional table number, or nil for takeaway orders.
func (c Customer) TableNumber() *int {
	return c.tableNumber
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	c.name = name
	return nil
}

func (c *Customer) setTableNumber(tableNumber *int) error {
	if tableNumber != nil && *tableNumber < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"tableNumber",
			fmt.Errorf("%d is not greater than 0", *tableNumber),
		)
	}
	c.tableNumber = tableNumber
	return nil
}
