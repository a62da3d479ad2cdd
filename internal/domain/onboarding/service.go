package onboarding

import "context"

// OnboardingService defines the interface for club onboarding progress
type OnboardingService interface {
	// CompleteStep marks a setup step as done and returns the derived state
	CompleteStep(ctx context.Context, clubID string, step int) (StepResponse, error)

	// Status returns the current onboarding state without mutating it
	Status(ctx context.Context, clubID string) (StepResponse, error)
}
