package response

import (
	"errors"
	"net/http"

	"github.com/clubvine/clubvine-backend-go/internal/domain/account"
	"github.com/clubvine/clubvine-backend-go/internal/domain/club"
	"github.com/clubvine/clubvine-backend-go/internal/domain/invite"
	"github.com/clubvine/clubvine-backend-go/internal/domain/member"
	"github.com/clubvine/clubvine-backend-go/internal/domain/onboarding"
	"github.com/clubvine/clubvine-backend-go/internal/domain/verification"
	"github.com/clubvine/clubvine-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Club domain errors
	case errors.Is(err, club.ErrClubNotFound):
		NotFound(w, "Club not found")

	// Account domain errors
	case errors.Is(err, account.ErrAccountNotFound):
		NotFound(w, "Account not found")
	case errors.Is(err, account.ErrAlreadyActive):
		Conflict(w, "Account has already been activated")

	// Member domain errors
	case errors.Is(err, member.ErrUnknownKind):
		BadRequest(w, "Unknown member kind", nil)
	case errors.Is(err, member.ErrMemberNotFound):
		NotFound(w, "Member not found")

	// Invite domain errors
	case errors.Is(err, invite.ErrInviteNotFound):
		NotFound(w, "No pending invite found for this email")
	case errors.Is(err, invite.ErrInviteNotActive):
		Conflict(w, "Invite is no longer pending")

	// Verification errors
	case errors.Is(err, verification.ErrCodeNotFound),
		errors.Is(err, verification.ErrCodeInvalid):
		Unauthorized(w, "Verification code is invalid")
	case errors.Is(err, verification.ErrCodeExpired):
		Unauthorized(w, "Verification code has expired")

	// Onboarding errors
	case errors.Is(err, onboarding.ErrStepNotPending):
		Conflict(w, "Onboarding step is not pending")
	case errors.Is(err, onboarding.ErrInvalidStep):
		BadRequest(w, "Invalid onboarding step number", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
