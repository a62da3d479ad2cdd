package invite

import "context"

// InviteService defines the interface for the bulk invitation pipeline
type InviteService interface {
	// InviteClubs invites a batch of club emails onto the platform. Per-item
	// failures become skip entries; only a failed existence lookup aborts
	// the whole call.
	InviteClubs(ctx context.Context, req InviteClubsRequest) (BatchOutcome, error)

	// InviteMembers invites a batch of affiliate emails under a club. The
	// club must exist before any lookup or transaction work begins.
	InviteMembers(ctx context.Context, req InviteMembersRequest) (BatchOutcome, error)

	// Accept activates a pending account with its one-time code
	Accept(ctx context.Context, req AcceptRequest) (AcceptResponse, error)
}
