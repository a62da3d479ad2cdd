package account

import "context"

// AccountRepository defines the interface for account data access
type AccountRepository interface {
	// Create creates a new account record
	Create(ctx context.Context, acc Account) (Account, error)

	// GetByEmail retrieves an account by its email
	GetByEmail(ctx context.Context, email string) (Account, error)

	// EmailsWithAccount returns the subset of emails that already have an
	// account, as a set. One round trip regardless of batch size.
	EmailsWithAccount(ctx context.Context, emails []string) (map[string]struct{}, error)

	// Activate sets the password hash and flips the account to active
	Activate(ctx context.Context, id, passwordHash string) error
}
