//go:generate go run go.uber.org/mock/mockgen -source=user_service.go -destination=../mocks/mock_user_service.go -package=mocks
package services

import (
	"fmt"
	"log/slog"

	"feedhub/auth"
	"feedhub/repositories"
)

type IUserService interface {
	Create(name, displayName, password string) (string, error)
	Get(name, pwd string) (repositories.User, error)
	Update(name, pwd string, displayName, password *string) (repositories.User, error)
	Delete(name, pwd string) (repositories.User, error)
	Search(pattern string) ([]repositories.User, error)
}

// UserService manages the account directory of this domain. Deleting
// an account also destroys the user's feed and outgoing subscriptions;
// the two lifecycles are bound.
type UserService struct {
	domain string
	users  repositories.IUserRepository
	feeds  repositories.IFeedRepository
	subs   repositories.ISubscriptionRepository
	gate   auth.IGate
	log    *slog.Logger
}

func NewUserService(
	domainName string,
	users repositories.IUserRepository,
	feeds repositories.IFeedRepository,
	subs repositories.ISubscriptionRepository,
	gate auth.IGate,
	log *slog.Logger,
) *UserService {
	return &UserService{
		domain: domainName,
		users:  users,
		feeds:  feeds,
		subs:   subs,
		gate:   gate,
		log:    log,
	}
}

// Create validates, hashes the password, and persists the account.
// Hashing happens here so the repository never sees a plain password.
// Returns the fully-qualified identity string.
func (s *UserService) Create(name, displayName, password string) (string, error) {
	req := auth.CreateAccountRequest{
		Name:        name,
		DisplayName: displayName,
		Password:    password,
	}
	if err := auth.ValidateCreateAccount(req); err != nil {
		return "", err
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hashing failed: %w", err)
	}

	if _, err := s.users.CreateUser(name, displayName, hashed); err != nil {
		return "", err
	}

	s.log.Info("Account created", "name", name)
	return name + "@" + s.domain, nil
}

func (s *UserService) Get(name, pwd string) (repositories.User, error) {
	if err := s.gate.Verify(name, pwd); err != nil {
		return repositories.User{}, err
	}
	return s.users.GetUserByName(name)
}

// Update applies a partial update; nil fields keep their value. A new
// password is re-hashed before storage.
func (s *UserService) Update(name, pwd string, displayName, password *string) (repositories.User, error) {
	if err := s.gate.Verify(name, pwd); err != nil {
		return repositories.User{}, err
	}

	user, err := s.users.GetUserByName(name)
	if err != nil {
		return repositories.User{}, err
	}

	if displayName != nil {
		user.DisplayName = *displayName
	}
	if password != nil {
		hashed, err := auth.HashPassword(*password)
		if err != nil {
			return repositories.User{}, fmt.Errorf("hashing failed: %w", err)
		}
		user.PasswordHash = hashed
	}

	if err := s.users.UpdateUser(user); err != nil {
		return repositories.User{}, err
	}
	return user, nil
}

// Delete removes the account and everything it owns: the feed log and
// the outgoing subscription set go with it.
func (s *UserService) Delete(name, pwd string) (repositories.User, error) {
	if err := s.gate.Verify(name, pwd); err != nil {
		return repositories.User{}, err
	}

	user, err := s.users.GetUserByName(name)
	if err != nil {
		return repositories.User{}, err
	}

	if err := s.users.DeleteUser(name); err != nil {
		return repositories.User{}, err
	}
	if err := s.feeds.Destroy(name); err != nil {
		s.log.Error("Feed destruction failed after account delete", "name", name, "error", err)
	}
	if err := s.subs.Destroy(name); err != nil {
		s.log.Error("Subscription destruction failed after account delete", "name", name, "error", err)
	}

	s.log.Info("Account deleted", "name", name)
	return user, nil
}

func (s *UserService) Search(pattern string) ([]repositories.User, error) {
	return s.users.SearchUsers(pattern)
}
