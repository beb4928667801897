package tests

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"coffeeshop/pkg/domain/model"
	"coffeeshop/pkg/domain/service"
)

var _ model.CatalogRepository = &mockCatalogRepository{}

type mockCatalogRepository struct {
	items []model.Item
}

func (m *mockCatalogRepository) NextID() (uuid.UUID, error) { return uuid.New(), nil }
func (m *mockCatalogRepository) Add(item model.Item) error {
	m.items = append(m.items, item)
	return nil
}
func (m *mockCatalogRepository) List() ([]model.Item, error) {
	return append([]model.Item(nil), m.items...), nil
}

var _ model.AccountRepository = &mockAccountRepository{}

type mockAccountRepository struct {
	accounts []model.Account
}

func (m *mockAccountRepository) NextID() (uuid.UUID, error) { return uuid.New(), nil }
func (m *mockAccountRepository) Add(account model.Account) error {
	m.accounts = append(m.accounts, account)
	return nil
}
func (m *mockAccountRepository) List() ([]model.Account, error) {
	return append([]model.Account(nil), m.accounts...), nil
}

type mockPasswordManager struct {
	err error
}

func (m *mockPasswordManager) Check(stored, pwd string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return stored == pwd, nil
}

var _ service.EventDispatcher = &mockEventDispatcher{}

type mockEventDispatcher struct {
	events []service.Event
}

func (m *mockEventDispatcher) Dispatch(event service.Event) error {
	m.events = append(m.events, event)
	return nil
}

func (m *mockEventDispatcher) Reset() {
	m.events = nil
}

func (m *mockEventDispatcher) types() []string {
	types := make([]string, 0, len(m.events))
	for _, e := range m.events {
		types = append(types, e.Type())
	}
	return types
}

var errBrokenHasher = errors.New("hasher unavailable")

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
