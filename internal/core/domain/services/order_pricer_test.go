package services_test

import (
	"testing"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogItem(t *testing.T, price string, available bool) *menu.MenuItem {
	t.Helper()
	item, err := menu.RestoreMenuItem(
		kernel.NewUUID(), "Caesar Salad", "", decimal.RequireFromString(price),
		nil, "", available, 10, "", "",
		time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return item
}

func TestOrderPricer_Price(t *testing.T) {
	pricer := services.NewOrderPricer()

	t.Run("should price lines from catalog snapshot", func(t *testing.T) {
		salad := newCatalogItem(t, "12.99", true)
		juice := newCatalogItem(t, "4.99", true)
		catalog := map[kernel.UUID]*menu.MenuItem{
			salad.ID(): salad,
			juice.ID(): juice,
		}

		lines, err := pricer.Price([]services.LineRequest{
			{MenuItemID: salad.ID(), Quantity: 2, SpecialInstructions: "dressing on the side"},
			{MenuItemID: juice.ID(), Quantity: 1},
		}, catalog)

		require.NoError(t, err)
		require.Len(t, lines, 2)
		assert.True(t, lines[0].UnitPrice().Equal(decimal.RequireFromString("12.99")))
		assert.Equal(t, 2, lines[0].Quantity())
		assert.Equal(t, "dressing on the side", lines[0].SpecialInstructions())
		assert.True(t, lines[1].UnitPrice().Equal(decimal.RequireFromString("4.99")))
	})

	t.Run("should reject whole cart when one item is missing", func(t *testing.T) {
		salad := newCatalogItem(t, "12.99", true)
		catalog := map[kernel.UUID]*menu.MenuItem{salad.ID(): salad}

		lines, err := pricer.Price([]services.LineRequest{
			{MenuItemID: salad.ID(), Quantity: 1},
			{MenuItemID: kernel.NewUUID(), Quantity: 1},
		}, catalog)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Nil(t, lines)
	})

	t.Run("should reject whole cart when one item is unavailable", func(t *testing.T) {
		salad := newCatalogItem(t, "12.99", true)
		soup := newCatalogItem(t, "8.99", false)
		catalog := map[kernel.UUID]*menu.MenuItem{
			salad.ID(): salad,
			soup.ID():  soup,
		}

		lines, err := pricer.Price([]services.LineRequest{
			{MenuItemID: salad.ID(), Quantity: 1},
			{MenuItemID: soup.ID(), Quantity: 1},
		}, catalog)

		require.ErrorIs(t, err, errs.ErrObjectUnavailable)
		assert.Nil(t, lines)
	})

	t.Run("should keep duplicate item entries as independent lines", func(t *testing.T) {
		pizza := newCatalogItem(t, "16.99", true)
		catalog := map[kernel.UUID]*menu.MenuItem{pizza.ID(): pizza}

		lines, err := pricer.Price([]services.LineRequest{
			{MenuItemID: pizza.ID(), Quantity: 1},
			{MenuItemID: pizza.ID(), Quantity: 2, SpecialInstructions: "well done"},
		}, catalog)

		require.NoError(t, err)
		require.Len(t, lines, 2)
		assert.Equal(t, 1, lines[0].Quantity())
		assert.Equal(t, 2, lines[1].Quantity())
		assert.False(t, lines[0].ID().IsEqual(lines[1].ID()))
	})

	t.Run("should reject empty cart", func(t *testing.T) {
		_, err := pricer.Price(nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		salad := newCatalogItem(t, "12.99", true)
		catalog := map[kernel.UUID]*menu.MenuItem{salad.ID(): salad}

		_, err := pricer.Price([]services.LineRequest{
			{MenuItemID: salad.ID(), Quantity: 0},
		}, catalog)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
