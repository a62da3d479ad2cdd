package invite

import "errors"

// Skip reasons returned to the caller inside the batch outcome. These are
// user-presentable and fixed; frontends match on them.
const (
	ReasonUserExists        = "A user with this email already exists."
	ReasonClubExists        = "A club with this email already exists."
	ReasonAccountExists     = "An account with this email already exists."
	ReasonAlreadyInvited    = "An invitation has already been sent to this email."
	ReasonClubSystemError   = "System error while creating club invite"
	ReasonMemberSystemError = "System error while creating member invite"
)

var (
	ErrInviteNotFound  = errors.New("no pending invite found for this email")
	ErrInviteNotActive = errors.New("invite is no longer pending")
)
