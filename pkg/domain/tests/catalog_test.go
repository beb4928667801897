package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coffeeshop/pkg/domain/model"
	"coffeeshop/pkg/domain/service"
)

func setupCatalog(t *testing.T) (service.CatalogService, *mockCatalogRepository, *mockEventDispatcher) {
	repo := &mockCatalogRepository{}
	dispatcher := &mockEventDispatcher{}
	return service.NewCatalogService(repo, dispatcher), repo, dispatcher
}

func TestAddItem(t *testing.T) {
	catalog, repo, dispatcher := setupCatalog(t)

	t.Run("Success", func(t *testing.T) {
		item, err := catalog.AddItem("Espresso", price("2.50"))

		require.NoError(t, err)
		assert.Equal(t, "Espresso", item.Name)
		require.Len(t, repo.items, 1)
		assert.Equal(t, item.ID, repo.items[0].ID)

		require.Len(t, dispatcher.events, 1)
		_, ok := dispatcher.events[0].(model.ItemAddedToCatalog)
		assert.True(t, ok)
	})

	t.Run("Duplicate names stay distinct", func(t *testing.T) {
		dispatcher.Reset()
		first, err := catalog.AddItem("Latte", price("3.00"))
		require.NoError(t, err)
		second, err := catalog.AddItem("Latte", price("3.50"))
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
		assert.Len(t, repo.items, 3)
	})

	t.Run("Fail on negative price", func(t *testing.T) {
		dispatcher.Reset()
		_, err := catalog.AddItem("Refund", price("-1"))
		assert.ErrorIs(t, err, model.ErrNegativePrice)
		assert.Empty(t, dispatcher.events)
		assert.Len(t, repo.items, 3)
	})
}

func TestListItemsKeepsInsertionOrder(t *testing.T) {
	catalog, _, _ := setupCatalog(t)
	for _, name := range []string{"Espresso", "Latte", "Cappuccino"} {
		_, err := catalog.AddItem(name, price("1.00"))
		require.NoError(t, err)
	}

	items, err := catalog.ListItems()
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Espresso", items[0].Name)
	assert.Equal(t, "Latte", items[1].Name)
	assert.Equal(t, "Cappuccino", items[2].Name)
}

func TestSelectItem(t *testing.T) {
	catalog, _, _ := setupCatalog(t)
	_, _ = catalog.AddItem("Espresso", price("2.50"))
	_, _ = catalog.AddItem("Latte", price("3.00"))

	item, err := catalog.SelectItem(2)
	require.NoError(t, err)
	assert.Equal(t, "Latte", item.Name)

	for _, position := range []int{0, -1, 3} {
		_, err := catalog.SelectItem(position)
		assert.ErrorIs(t, err, model.ErrItemNotFound, "position %d", position)
	}
}
