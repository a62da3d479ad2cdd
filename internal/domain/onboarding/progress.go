package onboarding

import (
	"errors"
	"slices"
)

// Setup step numbers for a new club profile.
const (
	StepClubDetails = 1
	StepBranding    = 2
	StepLocations   = 3
	StepTeams       = 4
	StepInvites     = 5
)

var (
	ErrStepNotPending = errors.New("onboarding step is not pending")
	ErrInvalidStep    = errors.New("invalid onboarding step number")
)

// DefaultSteps returns the remaining-step set stamped on a freshly created
// club profile.
func DefaultSteps() []int {
	return []int{StepClubDetails, StepBranding, StepLocations, StepTeams, StepInvites}
}

// Result is the derived state after completing a step. Only Remaining is
// persisted; IsComplete and NextStep are computed on every transition.
type Result struct {
	Remaining  []int
	IsComplete bool
	// NextStep is the smallest remaining step number, 0 when complete.
	NextStep int
}

// Complete removes step from remaining. Completing a step that is not
// pending is rejected, never silently ignored; steps are never re-added.
func Complete(remaining []int, step int) (Result, error) {
	if step < 1 {
		return Result{}, ErrInvalidStep
	}
	if !slices.Contains(remaining, step) {
		return Result{}, ErrStepNotPending
	}

	next := make([]int, 0, len(remaining)-1)
	for _, s := range remaining {
		if s != step {
			next = append(next, s)
		}
	}
	slices.Sort(next)

	res := Result{
		Remaining:  next,
		IsComplete: len(next) == 0,
	}
	if !res.IsComplete {
		res.NextStep = next[0]
	}
	return res, nil
}
