package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListMenuItemsQueryHandler retrieves the catalog listing, joining each item
// with its category name. Results are sorted by name for stable display.
type ListMenuItemsQueryHandler struct {
	db *gorm.DB
}

// NewListMenuItemsQueryHandler creates a handler for catalog listing queries.
// Requires a GORM database connection for query execution.
func NewListMenuItemsQueryHandler(db *gorm.DB) ListMenuItemsQueryHandler {
	return ListMenuItemsQueryHandler{db: db}
}

// Handle executes the listing query. Returns an empty slice when no item
// matches the filter.
func (h ListMenuItemsQueryHandler) Handle(
	ctx context.Context,
	query ListMenuItemsQuery,
) ([]ListMenuItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]ListMenuItemsQueryResponse, 0)

	sqlText := `
		SELECT
			i.id,
			i.name,
			i.description,
			i.price,
			i.category_id,
			COALESCE(c.name, ''),
			i.image_url,
			i.is_available,
			i.preparation_time,
			i.ingredients,
			i.allergens,
			i.created_at
		FROM menu_items i
		LEFT JOIN categories c ON c.id = i.category_id
	`
	conditions := make([]string, 0, 2)
	args := make([]any, 0, 1)
	if query.CategoryID() != nil {
		conditions = append(conditions, `i.category_id = ?`)
		args = append(args, query.CategoryID().Bytes())
	}
	if query.AvailableOnly() {
		conditions = append(conditions, `i.is_available`)
	}
	for i, condition := range conditions {
		if i == 0 {
			sqlText += ` WHERE ` + condition
		} else {
			sqlText += ` AND ` + condition
		}
	}
	sqlText += ` ORDER BY i.name, i.id`

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ListMenuItemsQueryResponse
		var id uuid.UUID
		var categoryID uuid.NullUUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Description,
			&resp.Price,
			&categoryID,
			&resp.CategoryName,
			&resp.ImageURL,
			&resp.IsAvailable,
			&resp.PreparationTime,
			&resp.Ingredients,
			&resp.Allergens,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = itemID

		if categoryID.Valid {
			cID, idErr := kernel.UUIDFromBytes(categoryID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.CategoryID = &cID
		}

		items = append(items, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
