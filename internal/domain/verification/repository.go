package verification

import "context"

// VerificationRepository defines the interface for verification code storage
type VerificationRepository interface {
	// Upsert stores a code, replacing any previous one for (email, purpose)
	Upsert(ctx context.Context, code Code) (Code, error)

	// GetByEmailAndPurpose retrieves the current code for (email, purpose)
	GetByEmailAndPurpose(ctx context.Context, email string, purpose Purpose) (Code, error)

	// Delete removes the code for (email, purpose)
	Delete(ctx context.Context, email string, purpose Purpose) error
}
