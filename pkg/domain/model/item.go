package model

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrItemNotFound  = errors.New("item not found")
	ErrNegativePrice = errors.New("item price cannot be negative")
	ErrEmptyItemName = errors.New("item name is required")
)

type Item struct {
	ID    uuid.UUID
	Name  string
	Price decimal.Decimal
}

func NewItem(id uuid.UUID, name string, price decimal.Decimal) (Item, error) {
	if name == "" {
		return Item{}, ErrEmptyItemName
	}
	if price.IsNegative() {
		return Item{}, ErrNegativePrice
	}
	return Item{ID: id, Name: name, Price: price}, nil
}

// CatalogRepository keeps items in insertion order. Names are not unique.
type CatalogRepository interface {
	NextID() (uuid.UUID, error)
	Add(item Item) error
	List() ([]Item, error)
}
