package member

import "context"

// MemberRepository defines the interface for club member data access
type MemberRepository interface {
	// Create creates a new member record
	Create(ctx context.Context, m Member) (Member, error)

	// GetByAccountID retrieves a member by its account id
	GetByAccountID(ctx context.Context, accountID string) (Member, error)

	// EmailsInvited returns the subset of emails that already have a member
	// record under the club, as a set. One round trip per batch.
	EmailsInvited(ctx context.Context, clubID string, emails []string) (map[string]struct{}, error)

	// Approve marks the member record for an account as approved
	Approve(ctx context.Context, accountID string) error
}
