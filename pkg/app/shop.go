package app

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"coffeeshop/pkg/domain/model"
	"coffeeshop/pkg/domain/service"
	"coffeeshop/pkg/infrastructure/inmemory"
	"coffeeshop/pkg/infrastructure/password"
)

type SeedItem struct {
	Name  string
	Price decimal.Decimal
}

type SeedAccount struct {
	Username string
	Password string
	Role     model.Role
}

var DefaultMenu = []SeedItem{
	{Name: "Espresso", Price: decimal.RequireFromString("2.50")},
	{Name: "Latte", Price: decimal.RequireFromString("3.00")},
	{Name: "Cappuccino", Price: decimal.RequireFromString("3.00")},
}

var DefaultAccounts = []SeedAccount{
	{Username: "customer1", Password: "024222", Role: model.Customer},
	{Username: "employee1", Password: "password2", Role: model.Employee},
}

// Shop holds the catalog and account store shared by sessions.
type Shop struct {
	Catalog    service.CatalogService
	Accounts   service.AccountService
	dispatcher service.EventDispatcher
}

func NewShop(menu []SeedItem, accounts []SeedAccount, dispatcher service.EventDispatcher) (*Shop, error) {
	shop := &Shop{
		Catalog:    service.NewCatalogService(inmemory.NewCatalogRepository(), dispatcher),
		Accounts:   service.NewAccountService(inmemory.NewAccountRepository(), password.PlainText{}, dispatcher),
		dispatcher: dispatcher,
	}

	for _, item := range menu {
		if _, err := shop.Catalog.AddItem(item.Name, item.Price); err != nil {
			return nil, errors.Wrapf(err, "seed menu item %q", item.Name)
		}
	}
	for _, account := range accounts {
		if _, err := shop.Accounts.AddAccount(account.Username, account.Password, account.Role); err != nil {
			return nil, errors.Wrapf(err, "seed account %q", account.Username)
		}
	}
	return shop, nil
}

func NewDefaultShop(dispatcher service.EventDispatcher) (*Shop, error) {
	return NewShop(DefaultMenu, DefaultAccounts, dispatcher)
}

func (s *Shop) NewSession() (*service.Session, error) {
	session, err := service.NewSession(s.Catalog, s.Accounts, s.dispatcher)
	if err != nil {
		return nil, errors.Wrap(err, "create session")
	}
	return session, nil
}
