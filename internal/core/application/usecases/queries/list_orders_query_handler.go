package queries

import (
	"context"
	"database/sql"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves the order listing from the database.
// Ordering is newest first; orders sharing a creation timestamp fall back to
// descending id so the listing is stable across requests.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing query. Returns an empty slice when no order
// matches the filter.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]ListOrdersQueryResponse, 0)

	sqlText := `
		SELECT
			o.id,
			o.customer_name,
			o.table_number,
			o.status,
			o.total_amount,
			COUNT(l.id),
			o.created_at
		FROM orders o
		LEFT JOIN order_lines l ON l.order_id = o.id
	`
	args := make([]any, 0, 2)
	if query.StatusFilter() != nil {
		sqlText += ` WHERE o.status = ?`
		args = append(args, int(*query.StatusFilter()))
	}
	sqlText += `
		GROUP BY o.id, o.customer_name, o.table_number, o.status, o.total_amount, o.created_at
		ORDER BY o.created_at DESC, o.id DESC
		LIMIT ?
	`
	args = append(args, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ListOrdersQueryResponse
		var id uuid.UUID
		var tableNumber sql.NullInt64
		var status int

		err = rows.Scan(
			&id,
			&resp.CustomerName,
			&tableNumber,
			&status,
			&resp.TotalAmount,
			&resp.ItemCount,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.Status = order.Status(status).String()
		if tableNumber.Valid {
			n := int(tableNumber.Int64)
			resp.TableNumber = &n
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
