package invite

import (
	"strings"

	"github.com/clubvine/clubvine-backend-go/internal/pkg/validator"
)

const maxBatchSize = 100

// InviteClubsRequest - POST /invites/clubs
type InviteClubsRequest struct {
	Emails []string `json:"emails"`
	// InviterName comes from the caller's JWT claims, not the body
	InviterName string `json:"-"`
}

func (r *InviteClubsRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validateEmails(r.Emails)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// InviteMembersRequest - POST /clubs/{clubID}/invites
type InviteMembersRequest struct {
	ClubID string   `json:"-"` // From Chi URL param
	Kind   string   `json:"kind"`
	Emails []string `json:"emails"`
	// InviterName comes from the caller's JWT claims, not the body
	InviterName string `json:"-"`
}

func (r *InviteMembersRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ClubID) {
		errs = append(errs, validator.ValidationError{
			Field:   "club_id",
			Message: "club_id is required",
		})
	}

	if !validator.IsInSlice(r.Kind, []string{"player", "supporter", "company"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of player, supporter, company",
		})
	}

	errs = append(errs, validateEmails(r.Emails)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validateEmails(emails []string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if len(emails) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "emails",
			Message: "emails is required",
		})
		return errs
	}

	if len(emails) > maxBatchSize {
		errs = append(errs, validator.ValidationError{
			Field:   "emails",
			Message: "emails exceeds the maximum batch size of 100",
		})
	}

	for _, email := range emails {
		// Padding and casing are normalized later; validate the trimmed form
		if !validator.IsValidEmail(strings.TrimSpace(email)) {
			errs = append(errs, validator.ValidationError{
				Field:   "emails",
				Message: "invalid email: " + email,
			})
			break
		}
	}

	return errs
}

// AcceptRequest - POST /invites/accept
type AcceptRequest struct {
	Email    string `json:"email"`
	Code     string `json:"code"`
	Password string `json:"password"`
}

func (r *AcceptRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if len(r.Code) != 6 || !validator.IsNumeric(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code must be 6 digits",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AcceptResponse for invite acceptance result
type AcceptResponse struct {
	Message   string  `json:"message"`
	AccountID string  `json:"account_id"`
	Kind      string  `json:"kind"`
	ClubID    *string `json:"club_id,omitempty"`
}
