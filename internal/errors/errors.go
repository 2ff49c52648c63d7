package errors

import (
	"errors"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyInUse  = errors.New("email already in use")

	ErrTokenMalformed    = errors.New("token malformed")
	ErrTokenBadSignature = errors.New("token signature invalid")
	ErrTokenExpired      = errors.New("token expired")
	ErrTokenWrongType    = errors.New("token type mismatch")
	ErrTokenRevoked      = errors.New("token revoked")
)

// IsTokenError reports whether err belongs to the token failure taxonomy.
// The HTTP layer uses it to decide between 401 and 500.
func IsTokenError(err error) bool {
	return errors.Is(err, ErrTokenMalformed) ||
		errors.Is(err, ErrTokenBadSignature) ||
		errors.Is(err, ErrTokenExpired) ||
		errors.Is(err, ErrTokenWrongType) ||
		errors.Is(err, ErrTokenRevoked)
}
