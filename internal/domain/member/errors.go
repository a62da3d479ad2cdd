package member

import "errors"

var (
	ErrMemberNotFound = errors.New("member not found")
	ErrAlreadyInvited = errors.New("an invitation has already been sent to this email")
	ErrUnknownKind    = errors.New("unknown member kind")
)

// ParseKind validates and converts a member kind string
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindPlayer, KindSupporter, KindCompany:
		return Kind(s), nil
	}
	return "", ErrUnknownKind
}
