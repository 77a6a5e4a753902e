package errors

import (
	"errors"
)

var (
	ErrValidation           = errors.New("validation failed")
	ErrEmailAlreadyInUse    = errors.New("email already in use")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrTooManyLoginAttempts = errors.New("too many failed login attempts")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrCSRFMismatch         = errors.New("csrf token mismatch")
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrRefreshTokenRevoked  = errors.New("refresh token revoked")
	ErrRefreshTokenExpired  = errors.New("refresh token expired")
)
