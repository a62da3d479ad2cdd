package postgresql

import (
	"context"
	"fmt"

	"github.com/clubvine/clubvine-backend-go/internal/domain/member"
	"github.com/clubvine/clubvine-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type memberRepositoryImpl struct {
	db *database.DB
}

// NewMemberRepository creates a new member repository instance
func NewMemberRepository(db *database.DB) member.MemberRepository {
	return &memberRepositoryImpl{db: db}
}

// Create implements member.MemberRepository.
func (r *memberRepositoryImpl) Create(ctx context.Context, m member.Member) (member.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO club_members (club_id, account_id, email, kind, approved, ref_code)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, club_id, account_id, email, kind, approved, ref_code, created_at, updated_at
	`

	var created member.Member
	err := q.QueryRow(ctx, query,
		m.ClubID, m.AccountID, m.Email, m.Kind, m.Approved, m.RefCode,
	).Scan(
		&created.ID, &created.ClubID, &created.AccountID, &created.Email,
		&created.Kind, &created.Approved, &created.RefCode,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return member.Member{}, fmt.Errorf("failed to create member: %w", err)
	}

	return created, nil
}

// GetByAccountID implements member.MemberRepository.
func (r *memberRepositoryImpl) GetByAccountID(ctx context.Context, accountID string) (member.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, club_id, account_id, email, kind, approved, ref_code, created_at, updated_at
		FROM club_members
		WHERE account_id = $1
	`

	var m member.Member
	err := q.QueryRow(ctx, query, accountID).Scan(
		&m.ID, &m.ClubID, &m.AccountID, &m.Email,
		&m.Kind, &m.Approved, &m.RefCode, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return member.Member{}, member.ErrMemberNotFound
		}
		return member.Member{}, fmt.Errorf("failed to get member by account id: %w", err)
	}

	return m, nil
}

// EmailsInvited implements member.MemberRepository.
func (r *memberRepositoryImpl) EmailsInvited(ctx context.Context, clubID string, emails []string) (map[string]struct{}, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT email
		FROM club_members
		WHERE club_id = $1 AND email = ANY($2)
	`

	rows, err := q.Query(ctx, query, clubID, emails)
	if err != nil {
		return nil, fmt.Errorf("failed to look up invited members: %w", err)
	}
	defer rows.Close()

	matches := make(map[string]struct{})
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("failed to scan member email: %w", err)
		}
		matches[email] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read member emails: %w", err)
	}

	return matches, nil
}

// Approve implements member.MemberRepository.
func (r *memberRepositoryImpl) Approve(ctx context.Context, accountID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE club_members
		SET approved = true, updated_at = NOW()
		WHERE account_id = $1
	`

	tag, err := q.Exec(ctx, query, accountID)
	if err != nil {
		return fmt.Errorf("failed to approve member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return member.ErrMemberNotFound
	}

	return nil
}
