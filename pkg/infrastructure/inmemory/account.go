package inmemory

import (
	"github.com/google/uuid"

	"coffeeshop/pkg/domain/model"
)

var _ model.AccountRepository = &AccountRepository{}

type AccountRepository struct {
	accounts []model.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{}
}

func (r *AccountRepository) NextID() (uuid.UUID, error) {
	return uuid.NewRandom()
}

func (r *AccountRepository) Add(account model.Account) error {
	r.accounts = append(r.accounts, account)
	return nil
}

func (r *AccountRepository) List() ([]model.Account, error) {
	accounts := make([]model.Account, len(r.accounts))
	copy(accounts, r.accounts)
	return accounts, nil
}
