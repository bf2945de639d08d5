// Package errors defines the outcome sentinels shared by every public
// operation boundary. Callers match with errors.Is; handlers map them
// to wire status codes.
package errors

import "fmt"

var (
	ErrNotFound          = fmt.Errorf("not found")
	ErrForbidden         = fmt.Errorf("forbidden")
	ErrBadRequest        = fmt.Errorf("bad request")
	ErrConflict          = fmt.Errorf("already exists")
	ErrUnavailable       = fmt.Errorf("remote domain unavailable")
	ErrInvalidPassword   = fmt.Errorf("password does not meet complexity rules")
	ErrMalformedIdentity = fmt.Errorf("malformed identity")
)
