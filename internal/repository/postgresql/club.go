package postgresql

import (
	"context"
	"fmt"

	"github.com/clubvine/clubvine-backend-go/internal/domain/club"
	"github.com/clubvine/clubvine-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type clubRepositoryImpl struct {
	db *database.DB
}

// NewClubRepository creates a new club repository instance
func NewClubRepository(db *database.DB) club.ClubRepository {
	return &clubRepositoryImpl{db: db}
}

// Create implements club.ClubRepository.
func (r *clubRepositoryImpl) Create(ctx context.Context, c club.Club) (club.Club, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO clubs (account_id, email, name, ref_code, remaining_steps)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, account_id, email, name, ref_code, remaining_steps, created_at, updated_at
	`

	var created club.Club
	var steps []int32
	err := q.QueryRow(ctx, query,
		c.AccountID, c.Email, c.Name, c.RefCode, toInt32Slice(c.RemainingSteps),
	).Scan(
		&created.ID, &created.AccountID, &created.Email, &created.Name,
		&created.RefCode, &steps, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return club.Club{}, fmt.Errorf("failed to create club: %w", err)
	}
	created.RemainingSteps = toIntSlice(steps)

	return created, nil
}

// GetByID implements club.ClubRepository.
func (r *clubRepositoryImpl) GetByID(ctx context.Context, id string) (club.Club, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, account_id, email, name, ref_code, remaining_steps, created_at, updated_at
		FROM clubs
		WHERE id = $1
	`

	var c club.Club
	var steps []int32
	err := q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.AccountID, &c.Email, &c.Name,
		&c.RefCode, &steps, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return club.Club{}, club.ErrClubNotFound
		}
		return club.Club{}, fmt.Errorf("failed to get club by id: %w", err)
	}
	c.RemainingSteps = toIntSlice(steps)

	return c, nil
}

// EmailsWithClub implements club.ClubRepository.
func (r *clubRepositoryImpl) EmailsWithClub(ctx context.Context, emails []string) (map[string]struct{}, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT email
		FROM clubs
		WHERE email = ANY($1)
	`

	rows, err := q.Query(ctx, query, emails)
	if err != nil {
		return nil, fmt.Errorf("failed to look up existing clubs: %w", err)
	}
	defer rows.Close()

	matches := make(map[string]struct{})
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("failed to scan club email: %w", err)
		}
		matches[email] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read club emails: %w", err)
	}

	return matches, nil
}

// RefCodeExists implements club.ClubRepository.
func (r *clubRepositoryImpl) RefCodeExists(ctx context.Context, refCode string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS (SELECT 1 FROM clubs WHERE ref_code = $1)`

	var exists bool
	if err := q.QueryRow(ctx, query, refCode).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check ref code: %w", err)
	}

	return exists, nil
}

// RemainingSteps implements club.ClubRepository.
func (r *clubRepositoryImpl) RemainingSteps(ctx context.Context, clubID string) ([]int, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT remaining_steps FROM clubs WHERE id = $1`

	var steps []int32
	err := q.QueryRow(ctx, query, clubID).Scan(&steps)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, club.ErrClubNotFound
		}
		return nil, fmt.Errorf("failed to get remaining steps: %w", err)
	}

	return toIntSlice(steps), nil
}

// UpdateRemainingSteps implements club.ClubRepository.
func (r *clubRepositoryImpl) UpdateRemainingSteps(ctx context.Context, clubID string, steps []int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE clubs
		SET remaining_steps = $2, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, clubID, toInt32Slice(steps))
	if err != nil {
		return fmt.Errorf("failed to update remaining steps: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return club.ErrClubNotFound
	}

	return nil
}

func toInt32Slice(in []int) []int32 {
	out := make([]int32, len(in))
	for i, v := range in {
		out[i] = int32(v)
	}
	return out
}

func toIntSlice(in []int32) []int {
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = int(v)
	}
	return out
}
