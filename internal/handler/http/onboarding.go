package http

import (
	"net/http"
	"strconv"

	"github.com/clubvine/clubvine-backend-go/internal/domain/onboarding"
	"github.com/clubvine/clubvine-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type OnboardingHandler interface {
	CompleteStep(w http.ResponseWriter, r *http.Request)
	GetStatus(w http.ResponseWriter, r *http.Request)
}

type onboardingHandlerImpl struct {
	onboardingService onboarding.OnboardingService
}

func NewOnboardingHandler(onboardingService onboarding.OnboardingService) OnboardingHandler {
	return &onboardingHandlerImpl{
		onboardingService: onboardingService,
	}
}

// CompleteStep implements OnboardingHandler
func (h *onboardingHandlerImpl) CompleteStep(w http.ResponseWriter, r *http.Request) {
	clubID := chi.URLParam(r, "clubID")
	if clubID == "" {
		response.BadRequest(w, "Club ID is required", nil)
		return
	}

	step, err := strconv.Atoi(chi.URLParam(r, "step"))
	if err != nil {
		response.BadRequest(w, "Step must be a number", nil)
		return
	}

	result, err := h.onboardingService.CompleteStep(r.Context(), clubID, step)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetStatus implements OnboardingHandler
func (h *onboardingHandlerImpl) GetStatus(w http.ResponseWriter, r *http.Request) {
	clubID := chi.URLParam(r, "clubID")
	if clubID == "" {
		response.BadRequest(w, "Club ID is required", nil)
		return
	}

	result, err := h.onboardingService.Status(r.Context(), clubID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
