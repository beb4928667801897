package app

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coffeeshop/pkg/domain/model"
	"coffeeshop/pkg/domain/service"
	"coffeeshop/pkg/infrastructure/dispatcher"
)

func newTestShop(t *testing.T) *Shop {
	logger, _ := test.NewNullLogger()
	shop, err := NewDefaultShop(dispatcher.NewLoggingDispatcher(logger))
	require.NoError(t, err)
	return shop
}

func TestDefaultShopSeeds(t *testing.T) {
	shop := newTestShop(t)

	items, err := shop.Catalog.ListItems()
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Espresso", items[0].Name)
	assert.Equal(t, "2.50", items[0].Price.StringFixed(2))
	assert.Equal(t, "Latte", items[1].Name)
	assert.Equal(t, "3.00", items[1].Price.StringFixed(2))
	assert.Equal(t, "Cappuccino", items[2].Name)
	assert.Equal(t, "3.00", items[2].Price.StringFixed(2))

	customer, err := shop.Accounts.Authenticate("customer1", "024222")
	require.NoError(t, err)
	assert.Equal(t, model.Customer, customer.Role)

	employee, err := shop.Accounts.Authenticate("employee1", "password2")
	require.NoError(t, err)
	assert.Equal(t, model.Employee, employee.Role)
}

func TestSessionsAreIndependent(t *testing.T) {
	shop := newTestShop(t)
	first, err := shop.NewSession()
	require.NoError(t, err)
	second, err := shop.NewSession()
	require.NoError(t, err)

	_, err = first.Authenticate("customer1", "024222")
	require.NoError(t, err)
	_, err = first.AddToCart(1, 1)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID(), second.ID())
	assert.True(t, second.Cart().IsEmpty())
	assert.Equal(t, service.Unauthenticated, second.State())
}

func TestNewShopRejectsBadSeed(t *testing.T) {
	logger, _ := test.NewNullLogger()
	_, err := NewShop(
		[]SeedItem{{Name: "Refund", Price: decimal.NewFromInt(-1)}},
		nil,
		dispatcher.NewLoggingDispatcher(logger),
	)
	assert.ErrorIs(t, err, model.ErrNegativePrice)
	assert.Contains(t, err.Error(), `seed menu item "Refund"`)
}
