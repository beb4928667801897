package service

import (
	"errors"

	"coffeeshop/pkg/domain/model"
)

var (
	ErrEmptyUsername = errors.New("username is required")
)

type AccountService interface {
	AddAccount(username, password string, role model.Role) (model.Account, error)
	// Authenticate returns the first account, in registration order, whose
	// username matches exactly and whose password passes the PasswordManager.
	Authenticate(username, password string) (model.Account, error)
}

func NewAccountService(repo model.AccountRepository, passManager model.PasswordManager, dispatcher EventDispatcher) AccountService {
	return &accountService{
		repo:        repo,
		passManager: passManager,
		dispatcher:  dispatcher,
	}
}

type accountService struct {
	repo        model.AccountRepository
	passManager model.PasswordManager
	dispatcher  EventDispatcher
}

func (s *accountService) AddAccount(username, password string, role model.Role) (model.Account, error) {
	if username == "" {
		return model.Account{}, ErrEmptyUsername
	}

	accountID, err := s.repo.NextID()
	if err != nil {
		return model.Account{}, err
	}

	account := model.Account{
		ID:       accountID,
		Username: username,
		Password: password,
		Role:     role,
	}
	if err := s.repo.Add(account); err != nil {
		return model.Account{}, err
	}

	_ = s.dispatcher.Dispatch(model.AccountAdded{AccountID: accountID, Username: username, Role: role})
	return account, nil
}

func (s *accountService) Authenticate(username, password string) (model.Account, error) {
	accounts, err := s.repo.List()
	if err != nil {
		return model.Account{}, err
	}

	for _, account := range accounts {
		if account.Username != username {
			continue
		}
		ok, err := s.passManager.Check(account.Password, password)
		if err != nil {
			return model.Account{}, err
		}
		if ok {
			return account, nil
		}
	}
	return model.Account{}, model.ErrAccountNotFound
}
