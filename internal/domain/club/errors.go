package club

import "errors"

var (
	ErrClubNotFound   = errors.New("club not found")
	ErrClubEmailUsed  = errors.New("a club with this email already exists")
	ErrRefCodeTaken   = errors.New("reference code already in use")
	ErrRefCodeRetries = errors.New("could not generate a unique reference code")
)
