package verification

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/clubvine/clubvine-backend-go/internal/domain/verification"
	"golang.org/x/crypto/bcrypt"
)

const codeDigits = 6

type VerificationServiceImpl struct {
	repo    verification.VerificationRepository
	codeTTL time.Duration
}

func NewVerificationService(repo verification.VerificationRepository, codeTTL time.Duration) verification.VerificationService {
	return &VerificationServiceImpl{
		repo:    repo,
		codeTTL: codeTTL,
	}
}

// Issue implements verification.VerificationService.
func (s *VerificationServiceImpl) Issue(ctx context.Context, email string, purpose verification.Purpose, clubID *string, accountID string) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash verification code: %w", err)
	}

	_, err = s.repo.Upsert(ctx, verification.Code{
		Email:     email,
		Purpose:   purpose,
		CodeHash:  string(hash),
		AccountID: accountID,
		ClubID:    clubID,
		ExpiresAt: time.Now().Add(s.codeTTL),
	})
	if err != nil {
		return "", fmt.Errorf("failed to store verification code: %w", err)
	}

	return code, nil
}

// Verify implements verification.VerificationService.
func (s *VerificationServiceImpl) Verify(ctx context.Context, email string, purpose verification.Purpose, code string) (verification.Code, error) {
	stored, err := s.repo.GetByEmailAndPurpose(ctx, email, purpose)
	if err != nil {
		if errors.Is(err, verification.ErrCodeNotFound) {
			return verification.Code{}, verification.ErrCodeNotFound
		}
		return verification.Code{}, fmt.Errorf("failed to load verification code: %w", err)
	}

	if stored.IsExpired() {
		return verification.Code{}, verification.ErrCodeExpired
	}

	if err := bcrypt.CompareHashAndPassword([]byte(stored.CodeHash), []byte(code)); err != nil {
		return verification.Code{}, verification.ErrCodeInvalid
	}

	return stored, nil
}

// Consume implements verification.VerificationService.
func (s *VerificationServiceImpl) Consume(ctx context.Context, email string, purpose verification.Purpose) error {
	return s.repo.Delete(ctx, email, purpose)
}

func generateCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < codeDigits; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", codeDigits, n), nil
}
