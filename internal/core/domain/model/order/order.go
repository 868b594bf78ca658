package order

import (
	"errors"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderHasNoLines is returned when an order is constructed with an empty
	// line set. An order cannot exist without at least one line.
	ErrOrderHasNoLines = errors.New("order must contain at least one line")
)

// Order represents a placed restaurant order. It is the aggregate root that
// owns its lines and manages the fulfillment lifecycle from creation through
// delivery or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a constructed Customer
//   - Must own at least one line; lines are immutable and cannot outlive the order
//   - TotalAmount always equals the sum of line subtotals, never edited independently
//   - Status transitions follow the fulfillment state machine in Status
//   - CreatedAt is set once; UpdatedAt advances on every status change
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	id          kernel.UUID
	customer    Customer
	lines       []*Line
	totalAmount decimal.Decimal
	status      Status
	notes       string
	createdAt   time.Time
	updatedAt   time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Pending status from already-priced lines.
// The total amount is computed from the lines; callers never supply it.
//
// Parameters:
//   - id: Unique identifier for the order
//   - customer: Constructed customer details
//   - lines: At least one priced line
//   - notes: Optional free-form note for the kitchen
//   - now: Creation timestamp, recorded as both createdAt and updatedAt
//
// Returns the created order, or a validation error if any input is invalid.
func NewOrder(
	id kernel.UUID,
	customer Customer,
	lines []*Line,
	notes string,
	now time.Time,
) (*Order, error) {
	order := &Order{
		status:    Pending,
		notes:     notes,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomer(customer),
		order.setLines(lines),
	); err != nil {
		return nil, err
	}

	order.totalAmount = sumLines(order.lines)
	return order, nil
}

// RestoreOrder reconstructs an order from persistence, including its stored
// status, total, and timestamps. The stored total must equal the sum of line
// subtotals; a mismatch indicates corrupted data and fails restoration.
func RestoreOrder(
	id kernel.UUID,
	customer Customer,
	lines []*Line,
	totalAmount decimal.Decimal,
	status Status,
	notes string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		notes:     notes,
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomer(customer),
		order.setLines(lines),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	if !sumLines(order.lines).Equal(totalAmount) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"totalAmount",
			fmt.Errorf("stored total %s does not match line sum %s", totalAmount, sumLines(order.lines)),
		)
	}

	order.totalAmount = totalAmount
	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Customer returns the customer details captured with the order.
func (o *Order) Customer() Customer {
	return o.customer
}

// Lines returns the order's lines. The returned slice must not be mutated.
func (o *Order) Lines() []*Line {
	return o.lines
}

// TotalAmount returns the sum of line subtotals computed at creation time.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// Status returns the current fulfillment status.
func (o *Order) Status() Status {
	return o.status
}

// Notes returns the optional free-form note for the kitchen.
func (o *Order) Notes() string {
	return o.notes
}

// CreatedAt returns the immutable creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last status change.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus advances the order to target and stamps updatedAt.
//
// The transition is validated against the fulfillment state machine: only the
// immediate forward step or cancellation from a non-terminal state succeeds.
// On failure the order is left untouched and an InvalidTransitionError is
// returned.
func (o *Order) ChangeStatus(target Status, now time.Time) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setLines(lines []*Line) error {
	if len(lines) == 0 {
		return ErrOrderHasNoLines
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	o.lines = lines
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func sumLines(lines []*Line) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Subtotal())
	}
	return total
}
