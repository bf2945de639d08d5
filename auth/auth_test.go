package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"feedhub/errors"
	"feedhub/mocks"
	"feedhub/repositories"
)

func TestHashPassword(t *testing.T) {
	req := require.New(t)

	t.Run("should verify the original password", func(t *testing.T) {
		hash, err := HashPassword("correct horse battery staple")
		req.NoError(err)
		req.NotEqual("correct horse battery staple", hash)

		ok, err := ComparePassword("correct horse battery staple", hash)
		req.NoError(err)
		req.True(ok)
	})

	t.Run("should reject a different password", func(t *testing.T) {
		hash, err := HashPassword("correct horse battery staple")
		req.NoError(err)

		ok, err := ComparePassword("Tr0ub4dor&3", hash)
		req.NoError(err)
		req.False(ok)
	})

	t.Run("should salt each hash", func(t *testing.T) {
		first, err := HashPassword("same password")
		req.NoError(err)
		second, err := HashPassword("same password")
		req.NoError(err)
		req.NotEqual(first, second)
	})

	t.Run("should reject a malformed hash", func(t *testing.T) {
		_, err := ComparePassword("anything", "not-an-argon2id-hash")
		req.Error(err)
	})
}

func TestGate_Verify(t *testing.T) {
	hash, err := HashPassword("letmein12")
	require.NoError(t, err)

	t.Run("should accept the right password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockIUserRepository(ctrl)
		users.EXPECT().GetUserByName("alice").Return(repositories.User{Name: "alice", PasswordHash: hash}, nil)

		gate := NewGate(users)
		require.NoError(t, gate.Verify("alice", "letmein12"))
	})

	t.Run("should refuse the wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockIUserRepository(ctrl)
		users.EXPECT().GetUserByName("alice").Return(repositories.User{Name: "alice", PasswordHash: hash}, nil)

		gate := NewGate(users)
		require.ErrorIs(t, gate.Verify("alice", "wrong12345"), errors.ErrForbidden)
	})

	t.Run("should surface an unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockIUserRepository(ctrl)
		users.EXPECT().GetUserByName("ghost").Return(repositories.User{}, errors.ErrNotFound)

		gate := NewGate(users)
		require.ErrorIs(t, gate.Verify("ghost", "whatever12"), errors.ErrNotFound)
	})
}

func TestValidateCreateAccount(t *testing.T) {
	req := require.New(t)

	t.Run("should accept a well formed request", func(t *testing.T) {
		req.NoError(ValidateCreateAccount(CreateAccountRequest{
			Name:        "alice",
			DisplayName: "Alice",
			Password:    "letmein12",
		}))
	})

	t.Run("should reject a name containing the identity separator", func(t *testing.T) {
		err := ValidateCreateAccount(CreateAccountRequest{
			Name:     "alice@d1",
			Password: "letmein12",
		})
		req.ErrorIs(err, errors.ErrBadRequest)
	})

	t.Run("should reject a name containing the key delimiter", func(t *testing.T) {
		err := ValidateCreateAccount(CreateAccountRequest{
			Name:        "ali:ce",
			DisplayName: "Alice",
			Password:    "letmein12",
		})
		req.ErrorIs(err, errors.ErrBadRequest)
	})

	t.Run("should reject a short password", func(t *testing.T) {
		err := ValidateCreateAccount(CreateAccountRequest{
			Name:     "alice",
			Password: "short",
		})
		req.ErrorIs(err, errors.ErrBadRequest)
	})

	t.Run("should reject an empty name", func(t *testing.T) {
		err := ValidateCreateAccount(CreateAccountRequest{
			Name:     "",
			Password: "letmein12",
		})
		req.ErrorIs(err, errors.ErrBadRequest)
	})
}
