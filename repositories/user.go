//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"feedhub/errors"
)

type IUserRepository interface {
	CreateUser(name, displayName, hashedPassword string) (string, error)
	GetUserByName(name string) (User, error)
	UpdateUser(user User) error
	DeleteUser(name string) error
	SearchUsers(pattern string) ([]User, error)
	Exists(name string) (bool, error)
}

// User is the account directory record. PasswordHash holds an argon2id
// encoded hash, never a plain password.
type User struct {
	ID           string
	Name         string
	DisplayName  string
	PasswordHash string
	CreatedAt    time.Time
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) *UserRepository {
	return &UserRepository{db: db}
}

func userKey(name string) []byte {
	return []byte("user:" + name)
}

// CreateUser persists the account and returns the newly generated ID.
// Name collisions are rejected inside the write transaction so two
// concurrent creations cannot both win.
func (u *UserRepository) CreateUser(name, displayName, hashedPassword string) (string, error) {
	user := User{
		ID:           uuid.New().String(),
		Name:         name,
		DisplayName:  displayName,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().UTC(),
	}

	data, err := json.Marshal(user)
	if err != nil {
		return "", fmt.Errorf("marshal failed: %w", err)
	}

	err = u.db.Update(func(txn *badger.Txn) error {
		key := userKey(name)
		if _, err := txn.Get(key); err == nil {
			return fmt.Errorf("%w: user %s", errors.ErrConflict, name)
		}
		return txn.Set(key, data)
	})
	if err != nil {
		return "", err
	}
	return user.ID, nil
}

func (u *UserRepository) GetUserByName(name string) (User, error) {
	var user User
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userKey(name))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return fmt.Errorf("%w: user %s", errors.ErrNotFound, name)
			}
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &user)
		})
	})
	if err != nil {
		return User{}, err
	}
	return user, nil
}

func (u *UserRepository) UpdateUser(user User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return u.db.Update(func(txn *badger.Txn) error {
		key := userKey(user.Name)
		if _, err := txn.Get(key); err != nil {
			if err == badger.ErrKeyNotFound {
				return fmt.Errorf("%w: user %s", errors.ErrNotFound, user.Name)
			}
			return err
		}
		return txn.Set(key, data)
	})
}

func (u *UserRepository) DeleteUser(name string) error {
	return u.db.Update(func(txn *badger.Txn) error {
		key := userKey(name)
		if _, err := txn.Get(key); err != nil {
			if err == badger.ErrKeyNotFound {
				return fmt.Errorf("%w: user %s", errors.ErrNotFound, name)
			}
			return err
		}
		return txn.Delete(key)
	})
}

// SearchUsers matches names by case-insensitive substring; an empty
// pattern returns everyone. Password hashes are blanked before the
// records leave the repository.
func (u *UserRepository) SearchUsers(pattern string) ([]User, error) {
	patt := strings.ToLower(pattern)
	var result []User
	err := u.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte("user:")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var user User
				if err := json.Unmarshal(val, &user); err != nil {
					return err
				}
				if patt == "" || strings.Contains(strings.ToLower(user.Name), patt) {
					user.PasswordHash = ""
					result = append(result, user)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (u *UserRepository) Exists(name string) (bool, error) {
	err := u.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(userKey(name))
		return err
	})
	switch err {
	case nil:
		return true, nil
	case badger.ErrKeyNotFound:
		return false, nil
	default:
		return false, err
	}
}
