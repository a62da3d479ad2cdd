package onboarding

// StepResponse - returned after completing a step and from the status endpoint
type StepResponse struct {
	RemainingSteps []int `json:"remaining_steps"`
	IsComplete     bool  `json:"is_complete"`
	NextStep       *int  `json:"next_step"`
}

// ToResponse maps a transition result to the API shape
func ToResponse(res Result) StepResponse {
	resp := StepResponse{
		RemainingSteps: res.Remaining,
		IsComplete:     res.IsComplete,
	}
	if !res.IsComplete {
		next := res.NextStep
		resp.NextStep = &next
	}
	return resp
}
