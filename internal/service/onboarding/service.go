package onboarding

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/clubvine/clubvine-backend-go/internal/domain/club"
	"github.com/clubvine/clubvine-backend-go/internal/domain/onboarding"
)

type OnboardingServiceImpl struct {
	clubRepo club.ClubRepository
}

func NewOnboardingService(clubRepo club.ClubRepository) onboarding.OnboardingService {
	return &OnboardingServiceImpl{clubRepo: clubRepo}
}

// CompleteStep implements onboarding.OnboardingService.
func (s *OnboardingServiceImpl) CompleteStep(ctx context.Context, clubID string, step int) (onboarding.StepResponse, error) {
	remaining, err := s.clubRepo.RemainingSteps(ctx, clubID)
	if err != nil {
		return onboarding.StepResponse{}, err
	}

	res, err := onboarding.Complete(remaining, step)
	if err != nil {
		return onboarding.StepResponse{}, err
	}

	// Only the remaining set is persisted; the rest is derived
	if err := s.clubRepo.UpdateRemainingSteps(ctx, clubID, res.Remaining); err != nil {
		return onboarding.StepResponse{}, fmt.Errorf("failed to save remaining steps: %w", err)
	}

	if res.IsComplete {
		slog.Info("Club finished onboarding", "club_id", clubID)
	}

	return onboarding.ToResponse(res), nil
}

// Status implements onboarding.OnboardingService.
func (s *OnboardingServiceImpl) Status(ctx context.Context, clubID string) (onboarding.StepResponse, error) {
	remaining, err := s.clubRepo.RemainingSteps(ctx, clubID)
	if err != nil {
		return onboarding.StepResponse{}, err
	}

	sorted := slices.Clone(remaining)
	slices.Sort(sorted)

	res := onboarding.Result{
		Remaining:  sorted,
		IsComplete: len(sorted) == 0,
	}
	if !res.IsComplete {
		res.NextStep = sorted[0]
	}

	return onboarding.ToResponse(res), nil
}
