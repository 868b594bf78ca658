package queries

import (
	"context"
	"database/sql"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order and its lines straight from the
// database, bypassing the domain aggregate. Line rows are joined with the
// catalog so the response carries current item names next to snapshotted
// prices.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when no order
// with the given identifier exists.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var resp GetOrderQueryResponse
	var id uuid.UUID
	var tableNumber sql.NullInt64
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			customer_phone,
			customer_email,
			table_number,
			status,
			total_amount,
			notes,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&id,
		&resp.CustomerName,
		&resp.CustomerPhone,
		&resp.CustomerEmail,
		&tableNumber,
		&status,
		&resp.TotalAmount,
		&resp.Notes,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.ID = orderID
	resp.Status = order.Status(status).String()
	if tableNumber.Valid {
		n := int(tableNumber.Int64)
		resp.TableNumber = &n
	}

	lines, err := h.loadLines(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Lines = lines

	return resp, nil
}

func (h GetOrderQueryHandler) loadLines(
	ctx context.Context,
	orderID kernel.UUID,
) ([]GetOrderQueryLineResponse, error) {
	lines := make([]GetOrderQueryLineResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.id,
			l.menu_item_id,
			COALESCE(m.name, ''),
			l.quantity,
			l.unit_price,
			l.special_instructions,
			COALESCE(m.preparation_time, 0)
		FROM order_lines l
		LEFT JOIN menu_items m ON m.id = l.menu_item_id
		WHERE l.order_id = ?
		ORDER BY l.id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line GetOrderQueryLineResponse
		var lineID, menuItemID uuid.UUID

		err = rows.Scan(
			&lineID,
			&menuItemID,
			&line.Name,
			&line.Quantity,
			&line.UnitPrice,
			&line.SpecialInstructions,
			&line.PreparationTime,
		)
		if err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(lineID[:])
		if idErr != nil {
			return nil, idErr
		}
		line.ID = id

		itemID, idErr := kernel.UUIDFromBytes(menuItemID[:])
		if idErr != nil {
			return nil, idErr
		}
		line.MenuItemID = itemID

		line.Subtotal = line.UnitPrice.Mul(decimalFromInt(line.Quantity))
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
