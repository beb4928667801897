package inmemory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coffeeshop/pkg/domain/model"
)

func TestCatalogRepositoryKeepsOrder(t *testing.T) {
	repo := NewCatalogRepository()
	for _, name := range []string{"Espresso", "Latte", "Espresso"} {
		id, err := repo.NextID()
		require.NoError(t, err)
		require.NoError(t, repo.Add(model.Item{ID: id, Name: name, Price: decimal.NewFromInt(1)}))
	}

	items, err := repo.List()
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Espresso", items[0].Name)
	assert.Equal(t, "Latte", items[1].Name)
	assert.Equal(t, "Espresso", items[2].Name)
	assert.NotEqual(t, items[0].ID, items[2].ID)

	items[0].Name = "changed"
	again, _ := repo.List()
	assert.Equal(t, "Espresso", again[0].Name)
}

func TestAccountRepositoryKeepsDuplicates(t *testing.T) {
	repo := NewAccountRepository()
	require.NoError(t, repo.Add(model.Account{Username: "a", Role: model.Customer}))
	require.NoError(t, repo.Add(model.Account{Username: "a", Role: model.Employee}))

	accounts, err := repo.List()
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, model.Customer, accounts[0].Role)
	assert.Equal(t, model.Employee, accounts[1].Role)
}
