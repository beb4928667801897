package service

import (
	"github.com/shopspring/decimal"

	"coffeeshop/pkg/domain/model"
)

type CatalogService interface {
	AddItem(name string, price decimal.Decimal) (model.Item, error)
	ListItems() ([]model.Item, error)
	// SelectItem resolves a 1-based menu position.
	SelectItem(position int) (model.Item, error)
}

func NewCatalogService(repo model.CatalogRepository, dispatcher EventDispatcher) CatalogService {
	return &catalogService{repo: repo, dispatcher: dispatcher}
}

type catalogService struct {
	repo       model.CatalogRepository
	dispatcher EventDispatcher
}

func (s *catalogService) AddItem(name string, price decimal.Decimal) (model.Item, error) {
	itemID, err := s.repo.NextID()
	if err != nil {
		return model.Item{}, err
	}

	item, err := model.NewItem(itemID, name, price)
	if err != nil {
		return model.Item{}, err
	}

	if err := s.repo.Add(item); err != nil {
		return model.Item{}, err
	}

	_ = s.dispatcher.Dispatch(model.ItemAddedToCatalog{ItemID: item.ID, Name: item.Name, Price: item.Price})
	return item, nil
}

func (s *catalogService) ListItems() ([]model.Item, error) {
	return s.repo.List()
}

func (s *catalogService) SelectItem(position int) (model.Item, error) {
	items, err := s.repo.List()
	if err != nil {
		return model.Item{}, err
	}
	if position < 1 || position > len(items) {
		return model.Item{}, model.ErrItemNotFound
	}
	return items[position-1], nil
}
