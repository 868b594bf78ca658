package order

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through the NewLine or RestoreLine factory functions.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine or RestoreLine")

// Line is one (menu item, quantity) entry within an order. Its unit price is
// snapshotted from the catalog at order-creation time and never re-read
// afterwards, so historical orders are immune to later price changes.
// Lines are immutable after creation and cannot outlive their order.
type Line struct {
	id                  kernel.UUID
	menuItemID          kernel.UUID
	quantity            int
	unitPrice           decimal.Decimal
	specialInstructions string

	guard guard.ConstructorGuard
}

// NewLine creates an order line with a catalog price snapshot.
// Quantity must be at least 1 and the unit price must not be negative.
func NewLine(
	id kernel.UUID,
	menuItemID kernel.UUID,
	quantity int,
	unitPrice decimal.Decimal,
	specialInstructions string,
) (*Line, error) {
	line := &Line{
		specialInstructions: specialInstructions,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setID(id),
		line.setMenuItemID(menuItemID),
		line.setQuantity(quantity),
		line.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return line, nil
}

// RestoreLine reconstructs a line from persistence. The same validation rules
// apply as in NewLine.
func RestoreLine(
	id kernel.UUID,
	menuItemID kernel.UUID,
	quantity int,
	unitPrice decimal.Decimal,
	specialInstructions string,
) (*Line, error) {
	return NewLine(id, menuItemID, quantity, unitPrice, specialInstructions)
}

// Validate ensures the Line instance was properly constructed.
func (l *Line) Validate() error {
	if l == nil {
		return ErrLineIsNotConstructed
	}
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// ID returns the line's unique identifier.
func (l *Line) ID() kernel.UUID {
	return l.id
}

// MenuItemID returns the catalog item this line references.
func (l *Line) MenuItemID() kernel.UUID {
	return l.menuItemID
}

// Quantity returns how many units of the item were ordered.
func (l *Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price snapshot taken at order-creation time.
func (l *Line) UnitPrice() decimal.Decimal {
	return l.unitPrice
}

// SpecialInstructions returns the optional preparation note for this line.
func (l *Line) SpecialInstructions() string {
	return l.specialInstructions
}

// Subtotal returns unit price multiplied by quantity.
func (l *Line) Subtotal() decimal.Decimal {
	return l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity)))
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	l.menuItemID = menuItemID
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"unitPrice",
			fmt.Errorf("%s is negative", unitPrice),
		)
	}
	l.unitPrice = unitPrice
	return nil
}
