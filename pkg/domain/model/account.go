package model

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrAccountNotFound = errors.New("account not found")
)

type Role int

const (
	Customer Role = iota
	Employee
)

func (r Role) String() string {
	switch r {
	case Customer:
		return "CUSTOMER"
	case Employee:
		return "EMPLOYEE"
	default:
		return "UNKNOWN"
	}
}

type Account struct {
	ID       uuid.UUID
	Username string
	Password string
	Role     Role
}

// AccountRepository does not detect duplicate usernames; lookups see accounts
// in the order they were added.
type AccountRepository interface {
	NextID() (uuid.UUID, error)
	Add(account Account) error
	List() ([]Account, error)
}

type PasswordManager interface {
	Check(storedPassword, plainTextPassword string) (bool, error)
}
