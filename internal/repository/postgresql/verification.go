package postgresql

import (
	"context"
	"fmt"

	"github.com/clubvine/clubvine-backend-go/internal/domain/verification"
	"github.com/clubvine/clubvine-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type verificationRepositoryImpl struct {
	db *database.DB
}

// NewVerificationRepository creates a new verification code repository instance
func NewVerificationRepository(db *database.DB) verification.VerificationRepository {
	return &verificationRepositoryImpl{db: db}
}

// Upsert implements verification.VerificationRepository.
func (r *verificationRepositoryImpl) Upsert(ctx context.Context, code verification.Code) (verification.Code, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO verification_codes (email, purpose, code_hash, account_id, club_id, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (email, purpose) DO UPDATE
		SET code_hash = EXCLUDED.code_hash,
			account_id = EXCLUDED.account_id,
			club_id = EXCLUDED.club_id,
			expires_at = EXCLUDED.expires_at
		RETURNING id, email, purpose, code_hash, account_id, club_id, expires_at, created_at
	`

	var created verification.Code
	err := q.QueryRow(ctx, query,
		code.Email, code.Purpose, code.CodeHash, code.AccountID, code.ClubID, code.ExpiresAt,
	).Scan(
		&created.ID, &created.Email, &created.Purpose, &created.CodeHash,
		&created.AccountID, &created.ClubID, &created.ExpiresAt, &created.CreatedAt,
	)
	if err != nil {
		return verification.Code{}, fmt.Errorf("failed to upsert verification code: %w", err)
	}

	return created, nil
}

// GetByEmailAndPurpose implements verification.VerificationRepository.
func (r *verificationRepositoryImpl) GetByEmailAndPurpose(ctx context.Context, email string, purpose verification.Purpose) (verification.Code, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, purpose, code_hash, account_id, club_id, expires_at, created_at
		FROM verification_codes
		WHERE email = $1 AND purpose = $2
	`

	var code verification.Code
	err := q.QueryRow(ctx, query, email, purpose).Scan(
		&code.ID, &code.Email, &code.Purpose, &code.CodeHash,
		&code.AccountID, &code.ClubID, &code.ExpiresAt, &code.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return verification.Code{}, verification.ErrCodeNotFound
		}
		return verification.Code{}, fmt.Errorf("failed to get verification code: %w", err)
	}

	return code, nil
}

// Delete implements verification.VerificationRepository.
func (r *verificationRepositoryImpl) Delete(ctx context.Context, email string, purpose verification.Purpose) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM verification_codes WHERE email = $1 AND purpose = $2`

	if _, err := q.Exec(ctx, query, email, purpose); err != nil {
		return fmt.Errorf("failed to delete verification code: %w", err)
	}

	return nil
}
