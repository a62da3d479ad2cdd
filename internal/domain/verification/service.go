package verification

import "context"

// VerificationService defines the interface for one-time code issuance
type VerificationService interface {
	// Issue generates a fresh code for (email, purpose), stores its hash and
	// returns the plaintext for the notification email. Called after the
	// creation transaction commits, never inside it.
	Issue(ctx context.Context, email string, purpose Purpose, clubID *string, accountID string) (string, error)

	// Verify checks a submitted code against the stored hash without
	// consuming it
	Verify(ctx context.Context, email string, purpose Purpose, code string) (Code, error)

	// Consume removes the code after successful acceptance
	Consume(ctx context.Context, email string, purpose Purpose) error
}
