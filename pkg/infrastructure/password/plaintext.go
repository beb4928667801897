// Package password holds PasswordManager implementations.
package password

import (
	"crypto/subtle"

	"coffeeshop/pkg/domain/model"
)

var _ model.PasswordManager = PlainText{}

// PlainText compares stored and supplied passwords byte for byte. It is a
// placeholder and offers no protection for stored credentials.
type PlainText struct{}

func (PlainText) Check(storedPassword, plainTextPassword string) (bool, error) {
	return subtle.ConstantTimeCompare([]byte(storedPassword), []byte(plainTextPassword)) == 1, nil
}
