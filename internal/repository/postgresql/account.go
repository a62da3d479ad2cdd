package postgresql

import (
	"context"
	"fmt"

	"github.com/clubvine/clubvine-backend-go/internal/domain/account"
	"github.com/clubvine/clubvine-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type accountRepositoryImpl struct {
	db *database.DB
}

// NewAccountRepository creates a new account repository instance
func NewAccountRepository(db *database.DB) account.AccountRepository {
	return &accountRepositoryImpl{db: db}
}

// Create implements account.AccountRepository.
func (r *accountRepositoryImpl) Create(ctx context.Context, acc account.Account) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO accounts (email, kind, status)
		VALUES ($1, $2, $3)
		RETURNING id, email, kind, status, password_hash, created_at, updated_at
	`

	var created account.Account
	err := q.QueryRow(ctx, query, acc.Email, acc.Kind, acc.Status).Scan(
		&created.ID, &created.Email, &created.Kind, &created.Status,
		&created.PasswordHash, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return account.Account{}, fmt.Errorf("failed to create account: %w", err)
	}

	return created, nil
}

// GetByEmail implements account.AccountRepository.
func (r *accountRepositoryImpl) GetByEmail(ctx context.Context, email string) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, kind, status, password_hash, created_at, updated_at
		FROM accounts
		WHERE email = $1
	`

	var acc account.Account
	err := q.QueryRow(ctx, query, email).Scan(
		&acc.ID, &acc.Email, &acc.Kind, &acc.Status,
		&acc.PasswordHash, &acc.CreatedAt, &acc.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return account.Account{}, account.ErrAccountNotFound
		}
		return account.Account{}, fmt.Errorf("failed to get account by email: %w", err)
	}

	return acc, nil
}

// EmailsWithAccount implements account.AccountRepository.
func (r *accountRepositoryImpl) EmailsWithAccount(ctx context.Context, emails []string) (map[string]struct{}, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT email
		FROM accounts
		WHERE email = ANY($1)
	`

	rows, err := q.Query(ctx, query, emails)
	if err != nil {
		return nil, fmt.Errorf("failed to look up existing accounts: %w", err)
	}
	defer rows.Close()

	matches := make(map[string]struct{})
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("failed to scan account email: %w", err)
		}
		matches[email] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read account emails: %w", err)
	}

	return matches, nil
}

// Activate implements account.AccountRepository.
func (r *accountRepositoryImpl) Activate(ctx context.Context, id, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE accounts
		SET status = 'active', password_hash = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to activate account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return account.ErrAlreadyActive
	}

	return nil
}
