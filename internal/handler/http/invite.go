package http

import (
	"encoding/json"
	"net/http"

	"github.com/clubvine/clubvine-backend-go/internal/domain/invite"
	"github.com/clubvine/clubvine-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
)

type InviteHandler interface {
	// Admin endpoint - invite clubs onto the platform
	InviteClubs(w http.ResponseWriter, r *http.Request)
	// Club endpoint - invite players/supporters/companies under a club
	InviteMembers(w http.ResponseWriter, r *http.Request)
	// Public endpoint - accept an invite with a verification code
	AcceptInvite(w http.ResponseWriter, r *http.Request)
}

type inviteHandlerImpl struct {
	inviteService invite.InviteService
}

func NewInviteHandler(inviteService invite.InviteService) InviteHandler {
	return &inviteHandlerImpl{
		inviteService: inviteService,
	}
}

// InviteClubs implements InviteHandler
func (h *inviteHandlerImpl) InviteClubs(w http.ResponseWriter, r *http.Request) {
	var req invite.InviteClubsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.InviterName = inviterNameFromClaims(r)

	outcome, err := h.inviteService.InviteClubs(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, outcome)
}

// InviteMembers implements InviteHandler
func (h *inviteHandlerImpl) InviteMembers(w http.ResponseWriter, r *http.Request) {
	var req invite.InviteMembersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ClubID = chi.URLParam(r, "clubID")
	req.InviterName = inviterNameFromClaims(r)

	outcome, err := h.inviteService.InviteMembers(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, outcome)
}

// AcceptInvite implements InviteHandler - public endpoint
func (h *inviteHandlerImpl) AcceptInvite(w http.ResponseWriter, r *http.Request) {
	var req invite.AcceptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.inviteService.Accept(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invitation accepted successfully", result)
}

func inviterNameFromClaims(r *http.Request) string {
	_, claims, _ := jwtauth.FromContext(r.Context())

	name, ok := claims["display_name"].(string)
	if !ok || name == "" {
		return "Clubvine"
	}
	return name
}
