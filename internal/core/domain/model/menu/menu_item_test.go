package menu_test

import (
	"testing"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func newTestItem(t *testing.T) *menu.MenuItem {
	t.Helper()
	item, err := menu.NewMenuItem(
		kernel.NewUUID(),
		"Margherita Pizza",
		"Classic pizza with tomato sauce, mozzarella, and fresh basil",
		decimal.RequireFromString("16.99"),
		nil,
		"",
		20,
		"Pizza dough, Tomato sauce, Mozzarella, Basil",
		"Contains gluten, dairy",
		testNow,
	)
	require.NoError(t, err)
	return item
}

func TestNewMenuItem(t *testing.T) {
	t.Run("should create available item", func(t *testing.T) {
		item := newTestItem(t)

		assert.Equal(t, "Margherita Pizza", item.Name())
		assert.True(t, item.IsAvailable())
		assert.Equal(t, 20, item.PreparationTime())
		assert.True(t, item.Price().Equal(decimal.RequireFromString("16.99")))
		assert.Equal(t, testNow, item.CreatedAt())
		assert.Equal(t, testNow, item.UpdatedAt())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := menu.NewMenuItem(
			kernel.NewUUID(), "", "", decimal.NewFromInt(5), nil, "",
			menu.DefaultPreparationTime, "", "", testNow,
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject negative price", func(t *testing.T) {
		_, err := menu.NewMenuItem(
			kernel.NewUUID(), "Soup", "", decimal.RequireFromString("-1.00"), nil, "",
			menu.DefaultPreparationTime, "", "", testNow,
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject non-positive preparation time", func(t *testing.T) {
		_, err := menu.NewMenuItem(
			kernel.NewUUID(), "Soup", "", decimal.NewFromInt(5), nil, "", 0, "", "", testNow,
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var item menu.MenuItem
		require.ErrorIs(t, item.Validate(), menu.ErrMenuItemIsNotConstructed)
	})
}

func TestMenuItem_SetAvailability(t *testing.T) {
	item := newTestItem(t)
	later := testNow.Add(time.Hour)

	item.SetAvailability(false, later)

	assert.False(t, item.IsAvailable())
	assert.Equal(t, later, item.UpdatedAt())
	assert.Equal(t, testNow, item.CreatedAt())
}

func TestMenuItem_ChangeDetails(t *testing.T) {
	t.Run("should replace editable attributes", func(t *testing.T) {
		item := newTestItem(t)
		later := testNow.Add(time.Hour)
		categoryID := kernel.NewUUID()

		err := item.ChangeDetails(
			"Margherita Pizza XL",
			"Bigger version",
			decimal.RequireFromString("21.99"),
			&categoryID,
			"https://example.com/pizza.jpg",
			25,
			"Pizza dough, Tomato sauce, Mozzarella, Basil",
			"Contains gluten, dairy",
			later,
		)
		require.NoError(t, err)

		assert.Equal(t, "Margherita Pizza XL", item.Name())
		assert.True(t, item.Price().Equal(decimal.RequireFromString("21.99")))
		require.NotNil(t, item.CategoryID())
		assert.True(t, item.CategoryID().IsEqual(categoryID))
		assert.Equal(t, later, item.UpdatedAt())
	})

	t.Run("should reject invalid replacement values", func(t *testing.T) {
		item := newTestItem(t)

		err := item.ChangeDetails(
			"", "", decimal.NewFromInt(-1), nil, "", 0, "", "", testNow,
		)
		require.Error(t, err)
	})
}

func TestRestoreMenuItem(t *testing.T) {
	t.Run("should keep stored availability and updatedAt", func(t *testing.T) {
		later := testNow.Add(2 * time.Hour)
		item, err := menu.RestoreMenuItem(
			kernel.NewUUID(), "Garlic Bread", "", decimal.RequireFromString("6.99"),
			nil, "", false, 8, "Bread, Garlic, Butter", "Contains gluten, dairy",
			testNow, later,
		)
		require.NoError(t, err)

		assert.False(t, item.IsAvailable())
		assert.Equal(t, testNow, item.CreatedAt())
		assert.Equal(t, later, item.UpdatedAt())
	})
}

func TestNewCategory(t *testing.T) {
	t.Run("should create category", func(t *testing.T) {
		category, err := menu.NewCategory(kernel.NewUUID(), "Desserts", "Sweet treats", testNow)
		require.NoError(t, err)

		assert.Equal(t, "Desserts", category.Name())
		assert.Equal(t, "Sweet treats", category.Description())
		assert.Equal(t, testNow, category.CreatedAt())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := menu.NewCategory(kernel.NewUUID(), "", "", testNow)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject name longer than 100 characters", func(t *testing.T) {
		long := make([]byte, 101)
		for i := range long {
			long[i] = 'a'
		}

		_, err := menu.NewCategory(kernel.NewUUID(), string(long), "", testNow)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var category menu.Category
		require.ErrorIs(t, category.Validate(), menu.ErrCategoryIsNotConstructed)
	})
}
