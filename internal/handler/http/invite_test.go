package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clubvine/clubvine-backend-go/internal/domain/club"
	"github.com/clubvine/clubvine-backend-go/internal/domain/invite"
	"github.com/clubvine/clubvine-backend-go/internal/domain/onboarding"
	"github.com/clubvine/clubvine-backend-go/internal/domain/verification"
	"github.com/clubvine/clubvine-backend-go/internal/pkg/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	handlerTestAccessExp  = "1h"
	handlerTestRefreshExp = "24h"
	handlerTestSecret     = "test-secret-key-for-jwt"
)

// stubInviteService returns canned results and records the requests it saw
type stubInviteService struct {
	clubsReq   *invite.InviteClubsRequest
	membersReq *invite.InviteMembersRequest
	acceptReq  *invite.AcceptRequest
	outcome    invite.BatchOutcome
	acceptRes  invite.AcceptResponse
	err        error
}

func (s *stubInviteService) InviteClubs(ctx context.Context, req invite.InviteClubsRequest) (invite.BatchOutcome, error) {
	s.clubsReq = &req
	return s.outcome, s.err
}

func (s *stubInviteService) InviteMembers(ctx context.Context, req invite.InviteMembersRequest) (invite.BatchOutcome, error) {
	s.membersReq = &req
	return s.outcome, s.err
}

func (s *stubInviteService) Accept(ctx context.Context, req invite.AcceptRequest) (invite.AcceptResponse, error) {
	s.acceptReq = &req
	return s.acceptRes, s.err
}

type stubOnboardingService struct {
	clubID string
	step   int
	res    onboarding.StepResponse
	err    error
}

func (s *stubOnboardingService) CompleteStep(ctx context.Context, clubID string, step int) (onboarding.StepResponse, error) {
	s.clubID = clubID
	s.step = step
	return s.res, s.err
}

func (s *stubOnboardingService) Status(ctx context.Context, clubID string) (onboarding.StepResponse, error) {
	s.clubID = clubID
	return s.res, s.err
}

type routerFixture struct {
	router  http.Handler
	jwtSvc  jwt.Service
	invites *stubInviteService
	steps   *stubOnboardingService
}

func newRouterFixture() *routerFixture {
	f := &routerFixture{
		jwtSvc:  jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp, handlerTestRefreshExp),
		invites: &stubInviteService{},
		steps:   &stubOnboardingService{},
	}
	f.router = NewRouter(
		f.jwtSvc,
		NewInviteHandler(f.invites),
		NewOnboardingHandler(f.steps),
		"http://localhost:3000",
	)
	return f
}

func (f *routerFixture) accessToken(t *testing.T, displayName string) string {
	token, _, err := f.jwtSvc.GenerateAccessToken(uuid.NewString(), "admin@clubvine.io", displayName, nil, "admin")
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestInviteHandler_InviteClubs_Success(t *testing.T) {
	f := newRouterFixture()
	f.invites.outcome = invite.BatchOutcome{
		Processed: []string{"b@x.com"},
		Skipped: []invite.SkippedInvite{
			{Email: "a@x.com", Reason: invite.ReasonAccountExists},
		},
	}

	rec := doJSON(t, f.router, http.MethodPost, "/api/v1/invites/clubs", f.accessToken(t, "Platform Admin"), map[string]interface{}{
		"emails": []string{"a@x.com", "b@x.com"},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool                `json:"success"`
		Data    invite.BatchOutcome `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, []string{"b@x.com"}, resp.Data.Processed)
	require.Len(t, resp.Data.Skipped, 1)
	assert.Equal(t, invite.ReasonAccountExists, resp.Data.Skipped[0].Reason)

	// Inviter name comes from the JWT claims, never from the body
	require.NotNil(t, f.invites.clubsReq)
	assert.Equal(t, "Platform Admin", f.invites.clubsReq.InviterName)
}

func TestInviteHandler_InviteClubs_Unauthorized(t *testing.T) {
	f := newRouterFixture()

	rec := doJSON(t, f.router, http.MethodPost, "/api/v1/invites/clubs", "", map[string]interface{}{
		"emails": []string{"a@x.com"},
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, f.invites.clubsReq)
}

func TestInviteHandler_InviteClubs_RejectsRefreshToken(t *testing.T) {
	f := newRouterFixture()
	token, _, err := f.jwtSvc.GenerateRefreshToken(uuid.NewString())
	require.NoError(t, err)

	rec := doJSON(t, f.router, http.MethodPost, "/api/v1/invites/clubs", token, map[string]interface{}{
		"emails": []string{"a@x.com"},
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, f.invites.clubsReq)
}

func TestInviteHandler_InviteMembers_PathScopesClub(t *testing.T) {
	f := newRouterFixture()
	f.invites.outcome = invite.BatchOutcome{Processed: []string{"striker@x.com"}}
	clubID := uuid.NewString()

	rec := doJSON(t, f.router, http.MethodPost, "/api/v1/clubs/"+clubID+"/invites", f.accessToken(t, "Coach Dana"), map[string]interface{}{
		"kind":   "player",
		"emails": []string{"striker@x.com"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, f.invites.membersReq)
	assert.Equal(t, clubID, f.invites.membersReq.ClubID)
	assert.Equal(t, "player", f.invites.membersReq.Kind)
	assert.Equal(t, "Coach Dana", f.invites.membersReq.InviterName)
}

func TestInviteHandler_InviteMembers_ClubNotFound(t *testing.T) {
	f := newRouterFixture()
	f.invites.err = club.ErrClubNotFound

	rec := doJSON(t, f.router, http.MethodPost, "/api/v1/clubs/"+uuid.NewString()+"/invites", f.accessToken(t, "Coach Dana"), map[string]interface{}{
		"kind":   "player",
		"emails": []string{"striker@x.com"},
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInviteHandler_AcceptInvite_Public(t *testing.T) {
	f := newRouterFixture()
	accountID := uuid.NewString()
	f.invites.acceptRes = invite.AcceptResponse{
		Message:   "Invitation accepted successfully",
		AccountID: accountID,
		Kind:      "player",
	}

	// No Authorization header: acceptance happens before first login
	rec := doJSON(t, f.router, http.MethodPost, "/api/v1/invites/accept", "", map[string]interface{}{
		"email":    "striker@x.com",
		"code":     "123456",
		"password": "s3cure-pass",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, f.invites.acceptReq)
	assert.Equal(t, "striker@x.com", f.invites.acceptReq.Email)

	var resp struct {
		Success bool                  `json:"success"`
		Data    invite.AcceptResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, accountID, resp.Data.AccountID)
}

func TestInviteHandler_AcceptInvite_InvalidCode(t *testing.T) {
	f := newRouterFixture()
	f.invites.err = verification.ErrCodeInvalid

	rec := doJSON(t, f.router, http.MethodPost, "/api/v1/invites/accept", "", map[string]interface{}{
		"email":    "striker@x.com",
		"code":     "000000",
		"password": "s3cure-pass",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestInviteHandler_AcceptInvite_MalformedBody(t *testing.T) {
	f := newRouterFixture()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invites/accept", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, f.invites.acceptReq)
}

func TestOnboardingHandler_CompleteStep(t *testing.T) {
	f := newRouterFixture()
	next := 1
	f.steps.res = onboarding.StepResponse{
		RemainingSteps: []int{1, 3},
		IsComplete:     false,
		NextStep:       &next,
	}
	clubID := uuid.NewString()

	rec := doJSON(t, f.router, http.MethodPost, "/api/v1/clubs/"+clubID+"/onboarding/steps/2/complete", f.accessToken(t, "Coach Dana"), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, clubID, f.steps.clubID)
	assert.Equal(t, 2, f.steps.step)

	var resp struct {
		Data onboarding.StepResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []int{1, 3}, resp.Data.RemainingSteps)
	assert.False(t, resp.Data.IsComplete)
}

func TestOnboardingHandler_CompleteStep_NotPending(t *testing.T) {
	f := newRouterFixture()
	f.steps.err = onboarding.ErrStepNotPending

	rec := doJSON(t, f.router, http.MethodPost, "/api/v1/clubs/"+uuid.NewString()+"/onboarding/steps/2/complete", f.accessToken(t, "Coach Dana"), nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestOnboardingHandler_CompleteStep_NonNumericStep(t *testing.T) {
	f := newRouterFixture()

	rec := doJSON(t, f.router, http.MethodPost, "/api/v1/clubs/"+uuid.NewString()+"/onboarding/steps/two/complete", f.accessToken(t, "Coach Dana"), nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOnboardingHandler_GetStatus(t *testing.T) {
	f := newRouterFixture()
	f.steps.res = onboarding.StepResponse{
		RemainingSteps: []int{},
		IsComplete:     true,
	}
	clubID := uuid.NewString()

	rec := doJSON(t, f.router, http.MethodGet, "/api/v1/clubs/"+clubID+"/onboarding/", f.accessToken(t, "Coach Dana"), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, clubID, f.steps.clubID)

	var resp struct {
		Data onboarding.StepResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Data.IsComplete)
}
