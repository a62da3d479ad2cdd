package club

import "time"

// Club represents a club (organization) profile. A club is always paired
// with an account of kind "club"; the invitation pipeline creates both in
// one transaction. RefCode is the short code members inherit when they are
// invited under this club.
type Club struct {
	ID             string
	AccountID      string
	Email          string
	Name           string
	RefCode        string
	RemainingSteps []int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsOnboarded checks whether the club finished all setup steps
func (c *Club) IsOnboarded() bool {
	return len(c.RemainingSteps) == 0
}
