package club

import "context"

// ClubRepository defines the interface for club data access
type ClubRepository interface {
	// Create creates a new club profile record
	Create(ctx context.Context, c Club) (Club, error)

	// GetByID retrieves a club by its id
	GetByID(ctx context.Context, id string) (Club, error)

	// EmailsWithClub returns the subset of emails that already belong to a
	// club profile, as a set. One round trip regardless of batch size.
	EmailsWithClub(ctx context.Context, emails []string) (map[string]struct{}, error)

	// RefCodeExists checks whether a reference code is already taken
	RefCodeExists(ctx context.Context, refCode string) (bool, error)

	// RemainingSteps returns the club's pending onboarding step numbers
	RemainingSteps(ctx context.Context, clubID string) ([]int, error)

	// UpdateRemainingSteps persists the new remaining-step set
	UpdateRemainingSteps(ctx context.Context, clubID string, steps []int) error
}
