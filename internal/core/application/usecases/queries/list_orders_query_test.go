package queries_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListOrdersQuery(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		statusFilter := order.Pending
		query, err := queries.NewListOrdersQuery(&statusFilter, 20)

		require.NoError(t, err)
		require.NotNil(t, query.StatusFilter())
		assert.Equal(t, order.Pending, *query.StatusFilter())
		assert.Equal(t, 20, query.Limit())
	})

	t.Run("nil filter selects all statuses", func(t *testing.T) {
		query, err := queries.NewListOrdersQuery(nil, 20)

		require.NoError(t, err)
		assert.Nil(t, query.StatusFilter())
	})

	t.Run("zero limit falls back to default", func(t *testing.T) {
		query, err := queries.NewListOrdersQuery(nil, 0)

		require.NoError(t, err)
		assert.Equal(t, queries.DefaultListOrdersLimit, query.Limit())
	})

	t.Run("negative limit falls back to default", func(t *testing.T) {
		query, err := queries.NewListOrdersQuery(nil, -3)

		require.NoError(t, err)
		assert.Equal(t, queries.DefaultListOrdersLimit, query.Limit())
	})

	t.Run("oversized limit is clamped", func(t *testing.T) {
		query, err := queries.NewListOrdersQuery(nil, 5000)

		require.NoError(t, err)
		assert.Equal(t, queries.MaxListOrdersLimit, query.Limit())
	})

	t.Run("invalid status filter", func(t *testing.T) {
		statusFilter := order.Status(99)
		_, err := queries.NewListOrdersQuery(&statusFilter, 20)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
