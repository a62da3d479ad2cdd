package member

import "time"

// Kind represents the affiliation type of a club member
type Kind string

const (
	KindPlayer    Kind = "player"
	KindSupporter Kind = "supporter"
	KindCompany   Kind = "company"
)

// Member links an account to the club that invited it. Created unapproved
// in the same transaction as its account; Approved flips when the invite
// is accepted. RefCode is inherited from the inviting club.
type Member struct {
	ID        string
	ClubID    string
	AccountID string
	Email     string
	Kind      Kind
	Approved  bool
	RefCode   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
