package account

import "errors"

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrEmailExists     = errors.New("an account with this email already exists")
	ErrAlreadyActive   = errors.New("account has already been activated")
)
