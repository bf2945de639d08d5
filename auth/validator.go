package auth

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"feedhub/errors"
)

var validate = validator.New()

// CreateAccountRequest carries the fields required to register a user.
// The name doubles as the feed owner key, so the charset excludes the
// identity separator, the path separator, and the storage key
// delimiter.
type CreateAccountRequest struct {
	Name        string `validate:"required,min=1,max=64,excludesall=@/: "`
	DisplayName string `validate:"required,min=1,max=128"`
	Password    string `validate:"required,min=8,max=72"`
}

func ValidateCreateAccount(req CreateAccountRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrBadRequest, err)
	}
	return nil
}
