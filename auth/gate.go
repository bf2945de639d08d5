//go:generate go run go.uber.org/mock/mockgen -source=gate.go -destination=../mocks/mock_auth_gate.go -package=mocks
package auth

import (
	"fmt"

	"feedhub/errors"
	"feedhub/repositories"
)

type IGate interface {
	Verify(name, password string) error
}

// Gate checks a (user, password) pair against the account directory.
// An unknown user and a wrong password are distinct outcomes; the wire
// contract maps them to 404 and 403 respectively.
type Gate struct {
	users repositories.IUserRepository
}

func NewGate(users repositories.IUserRepository) *Gate {
	return &Gate{users: users}
}

func (g *Gate) Verify(name, password string) error {
	user, err := g.users.GetUserByName(name)
	if err != nil {
		return err
	}

	match, err := ComparePassword(password, user.PasswordHash)
	if err != nil {
		return err
	}
	if !match {
		return fmt.Errorf("%w: wrong password for %s", errors.ErrForbidden, name)
	}
	return nil
}
