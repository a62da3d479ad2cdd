package onboarding

import (
	"errors"
	"slices"
	"testing"
)

func TestComplete(t *testing.T) {
	cases := []struct {
		name          string
		remaining     []int
		step          int
		wantRemaining []int
		wantComplete  bool
		wantNext      int
		wantErr       error
	}{
		{
			name:          "middle step",
			remaining:     []int{1, 2, 3},
			step:          2,
			wantRemaining: []int{1, 3},
			wantComplete:  false,
			wantNext:      1,
		},
		{
			name:          "last step",
			remaining:     []int{2},
			step:          2,
			wantRemaining: []int{},
			wantComplete:  true,
			wantNext:      0,
		},
		{
			name:      "step not pending",
			remaining: []int{1, 3},
			step:      2,
			wantErr:   ErrStepNotPending,
		},
		{
			name:      "already completed step",
			remaining: []int{3, 4, 5},
			step:      1,
			wantErr:   ErrStepNotPending,
		},
		{
			name:      "empty set",
			remaining: []int{},
			step:      1,
			wantErr:   ErrStepNotPending,
		},
		{
			name:      "invalid step number",
			remaining: []int{1, 2},
			step:      0,
			wantErr:   ErrInvalidStep,
		},
		{
			name:          "next step is smallest remaining, not insertion order",
			remaining:     []int{5, 3, 4},
			step:          4,
			wantRemaining: []int{3, 5},
			wantComplete:  false,
			wantNext:      3,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res, err := Complete(c.remaining, c.step)
			if c.wantErr != nil {
				if !errors.Is(err, c.wantErr) {
					t.Fatalf("Complete(%v, %d) error = %v, want %v", c.remaining, c.step, err, c.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Complete(%v, %d) returned error: %v", c.remaining, c.step, err)
			}
			if !slices.Equal(res.Remaining, c.wantRemaining) {
				t.Errorf("Remaining = %v, want %v", res.Remaining, c.wantRemaining)
			}
			if res.IsComplete != c.wantComplete {
				t.Errorf("IsComplete = %v, want %v", res.IsComplete, c.wantComplete)
			}
			if res.NextStep != c.wantNext {
				t.Errorf("NextStep = %d, want %d", res.NextStep, c.wantNext)
			}
		})
	}
}

func TestCompleteDoesNotMutateInput(t *testing.T) {
	remaining := []int{3, 1, 2}
	if _, err := Complete(remaining, 2); err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if !slices.Equal(remaining, []int{3, 1, 2}) {
		t.Errorf("input slice mutated: %v", remaining)
	}
}

func TestDefaultSteps(t *testing.T) {
	steps := DefaultSteps()
	if !slices.Equal(steps, []int{1, 2, 3, 4, 5}) {
		t.Errorf("DefaultSteps() = %v", steps)
	}

	// Each call must return a fresh slice; clubs must not share backing arrays
	steps[0] = 99
	if DefaultSteps()[0] != 1 {
		t.Error("DefaultSteps() shares state between calls")
	}
}
