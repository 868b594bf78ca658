package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListCategoriesQueryHandler retrieves the category listing with per-category
// item counts, sorted by name.
type ListCategoriesQueryHandler struct {
	db *gorm.DB
}

// NewListCategoriesQueryHandler creates a handler for category listing queries.
// Requires a GORM database connection for query execution.
func NewListCategoriesQueryHandler(db *gorm.DB) ListCategoriesQueryHandler {
	return ListCategoriesQueryHandler{db: db}
}

// Handle executes the listing query. Returns an empty slice when no category
// exists.
func (h ListCategoriesQueryHandler) Handle(
	ctx context.Context,
	query ListCategoriesQuery,
) ([]ListCategoriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	categories := make([]ListCategoriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.name,
			c.description,
			COUNT(i.id),
			c.created_at
		FROM categories c
		LEFT JOIN menu_items i ON i.category_id = c.id
		GROUP BY c.id, c.name, c.description, c.created_at
		ORDER BY c.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ListCategoriesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Description,
			&resp.ItemCount,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		categoryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = categoryID

		categories = append(categories, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}
