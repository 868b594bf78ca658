// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The lines are owned rows in a child table; deleting an order cascades to
// them. Status and creation time are indexed for the listing and stats
// queries.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	TableNumber   *int
	TotalAmount   decimal.Decimal `gorm:"type:numeric(10,2)"`
	Status        int             `gorm:"index"`
	Notes         string
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time
	Lines         []LineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO represents one order line row. The unit price is the catalog price
// snapshotted when the order was placed.
type LineDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID             uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID          uuid.UUID `gorm:"type:uuid;index"`
	Quantity            int
	UnitPrice           decimal.Decimal `gorm:"type:numeric(10,2)"`
	SpecialInstructions string
}

// TableName specifies the database table name for order line entities.
func (LineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	customer := aggregate.Customer()

	lines := make([]LineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, LineDTO{
			ID:                  line.ID().Bytes(),
			OrderID:             aggregate.ID().Bytes(),
			MenuItemID:          line.MenuItemID().Bytes(),
			Quantity:            line.Quantity(),
			UnitPrice:           line.UnitPrice(),
			SpecialInstructions: line.SpecialInstructions(),
		})
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		CustomerName:  customer.Name(),
		CustomerPhone: customer.Phone(),
		CustomerEmail: customer.Email(),
		TableNumber:   customer.TableNumber(),
		TotalAmount:   aggregate.TotalAmount(),
		Status:        int(aggregate.Status()),
		Notes:         aggregate.Notes(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
		Lines:         lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including lines and status using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(dto.CustomerName, dto.CustomerPhone, dto.CustomerEmail, dto.TableNumber)
	if err != nil {
		return nil, err
	}

	lines := make([]*order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		lineID, lineErr := kernel.UUIDFromBytes(lineDTO.ID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		menuItemID, lineErr := kernel.UUIDFromBytes(lineDTO.MenuItemID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := order.RestoreLine(
			lineID, menuItemID, lineDTO.Quantity, lineDTO.UnitPrice, lineDTO.SpecialInstructions,
		)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		customer,
		lines,
		dto.TotalAmount,
		order.Status(dto.Status),
		dto.Notes,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
