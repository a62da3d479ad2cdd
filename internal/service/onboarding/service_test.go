package onboarding

import (
	"context"
	"testing"

	"github.com/clubvine/clubvine-backend-go/internal/domain/club"
	"github.com/clubvine/clubvine-backend-go/internal/domain/onboarding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClubRepo keeps remaining steps per club in memory
type fakeClubRepo struct {
	club.ClubRepository
	steps map[string][]int
}

func newFakeClubRepo() *fakeClubRepo {
	return &fakeClubRepo{steps: make(map[string][]int)}
}

func (f *fakeClubRepo) RemainingSteps(ctx context.Context, clubID string) ([]int, error) {
	steps, ok := f.steps[clubID]
	if !ok {
		return nil, club.ErrClubNotFound
	}
	return steps, nil
}

func (f *fakeClubRepo) UpdateRemainingSteps(ctx context.Context, clubID string, steps []int) error {
	if _, ok := f.steps[clubID]; !ok {
		return club.ErrClubNotFound
	}
	f.steps[clubID] = steps
	return nil
}

func TestOnboardingService_CompleteStep_Success(t *testing.T) {
	ctx := context.Background()

	// Setup
	repo := newFakeClubRepo()
	repo.steps["club-1"] = []int{1, 2, 3}
	service := NewOnboardingService(repo)

	// Act
	result, err := service.CompleteStep(ctx, "club-1", 2)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, result.RemainingSteps)
	assert.False(t, result.IsComplete)
	require.NotNil(t, result.NextStep)
	assert.Equal(t, 1, *result.NextStep)
	assert.Equal(t, []int{1, 3}, repo.steps["club-1"])
}

func TestOnboardingService_CompleteStep_LastStep(t *testing.T) {
	ctx := context.Background()

	repo := newFakeClubRepo()
	repo.steps["club-1"] = []int{2}
	service := NewOnboardingService(repo)

	result, err := service.CompleteStep(ctx, "club-1", 2)

	require.NoError(t, err)
	assert.Empty(t, result.RemainingSteps)
	assert.True(t, result.IsComplete)
	assert.Nil(t, result.NextStep)
}

func TestOnboardingService_CompleteStep_RejectsSecondCompletion(t *testing.T) {
	ctx := context.Background()

	repo := newFakeClubRepo()
	repo.steps["club-1"] = []int{1, 2, 3}
	service := NewOnboardingService(repo)

	_, err := service.CompleteStep(ctx, "club-1", 2)
	require.NoError(t, err)

	// Completing the same step again must be rejected, not ignored
	_, err = service.CompleteStep(ctx, "club-1", 2)
	assert.ErrorIs(t, err, onboarding.ErrStepNotPending)
	assert.Equal(t, []int{1, 3}, repo.steps["club-1"])
}

func TestOnboardingService_CompleteStep_NotPendingLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()

	repo := newFakeClubRepo()
	repo.steps["club-1"] = []int{1, 3}
	service := NewOnboardingService(repo)

	_, err := service.CompleteStep(ctx, "club-1", 2)

	assert.ErrorIs(t, err, onboarding.ErrStepNotPending)
	assert.Equal(t, []int{1, 3}, repo.steps["club-1"])
}

func TestOnboardingService_CompleteStep_ClubNotFound(t *testing.T) {
	ctx := context.Background()

	repo := newFakeClubRepo()
	service := NewOnboardingService(repo)

	_, err := service.CompleteStep(ctx, "missing", 1)

	assert.ErrorIs(t, err, club.ErrClubNotFound)
}

func TestOnboardingService_Status(t *testing.T) {
	ctx := context.Background()

	repo := newFakeClubRepo()
	repo.steps["club-1"] = []int{4, 2}
	service := NewOnboardingService(repo)

	result, err := service.Status(ctx, "club-1")

	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, result.RemainingSteps)
	assert.False(t, result.IsComplete)
	require.NotNil(t, result.NextStep)
	assert.Equal(t, 2, *result.NextStep)
}

func TestOnboardingService_Status_Complete(t *testing.T) {
	ctx := context.Background()

	repo := newFakeClubRepo()
	repo.steps["club-1"] = []int{}
	service := NewOnboardingService(repo)

	result, err := service.Status(ctx, "club-1")

	require.NoError(t, err)
	assert.True(t, result.IsComplete)
	assert.Nil(t, result.NextStep)
}
