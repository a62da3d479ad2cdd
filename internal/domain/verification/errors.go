package verification

import "errors"

var (
	ErrCodeNotFound = errors.New("verification code not found")
	ErrCodeInvalid  = errors.New("verification code does not match")
	ErrCodeExpired  = errors.New("verification code has expired")
)
