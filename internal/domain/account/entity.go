package account

import "time"

// Kind represents what a login identity belongs to
type Kind string

const (
	KindClub      Kind = "club"
	KindPlayer    Kind = "player"
	KindSupporter Kind = "supporter"
	KindCompany   Kind = "company"
)

// Status represents the lifecycle status of an account
type Status string

const (
	// StatusPending - created through an invitation, email not yet verified
	StatusPending Status = "pending"
	StatusActive  Status = "active"
)

// Account represents a login identity on the platform. Accounts are created
// in pending status by the invitation pipeline and become active once the
// invite is accepted with a valid verification code.
type Account struct {
	ID           string
	Email        string
	Kind         Kind
	Status       Status
	PasswordHash *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsPending checks whether the account still awaits invite acceptance
func (a *Account) IsPending() bool {
	return a.Status == StatusPending
}
