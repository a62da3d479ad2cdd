package verification

import "time"

// Purpose distinguishes which invite flow a code belongs to, so a code
// issued for one flow cannot be replayed in the other.
type Purpose string

const (
	PurposeClubInvite   Purpose = "club_invite"
	PurposeMemberInvite Purpose = "member_invite"
)

// Code is a one-time verification code bound to (email, purpose). Only the
// bcrypt hash is stored; the plaintext exists solely in the outbound email.
type Code struct {
	ID        string
	Email     string
	Purpose   Purpose
	CodeHash  string
	AccountID string
	ClubID    *string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired checks if the code has expired (query-time check)
func (c *Code) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}
