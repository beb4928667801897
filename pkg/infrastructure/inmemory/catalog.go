package inmemory

import (
	"github.com/google/uuid"

	"coffeeshop/pkg/domain/model"
)

var _ model.CatalogRepository = &CatalogRepository{}

type CatalogRepository struct {
	items []model.Item
}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{}
}

func (r *CatalogRepository) NextID() (uuid.UUID, error) {
	return uuid.NewRandom()
}

func (r *CatalogRepository) Add(item model.Item) error {
	r.items = append(r.items, item)
	return nil
}

func (r *CatalogRepository) List() ([]model.Item, error) {
	items := make([]model.Item, len(r.items))
	copy(items, r.items)
	return items, nil
}
