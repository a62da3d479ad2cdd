package invite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/clubvine/clubvine-backend-go/internal/domain/account"
	"github.com/clubvine/clubvine-backend-go/internal/domain/club"
	"github.com/clubvine/clubvine-backend-go/internal/domain/invite"
	"github.com/clubvine/clubvine-backend-go/internal/domain/member"
	"github.com/clubvine/clubvine-backend-go/internal/domain/onboarding"
	"github.com/clubvine/clubvine-backend-go/internal/domain/verification"
	"github.com/clubvine/clubvine-backend-go/internal/pkg/database"
	"github.com/clubvine/clubvine-backend-go/internal/pkg/email"
	"github.com/clubvine/clubvine-backend-go/internal/pkg/refcode"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

const refCodeMaxAttempts = 5

type InviteServiceImpl struct {
	tx           database.Transactor
	accountRepo  account.AccountRepository
	clubRepo     club.ClubRepository
	memberRepo   member.MemberRepository
	codeService  verification.VerificationService
	emailService email.EmailService
	concurrency  int
	codeTTL      time.Duration
}

func NewInviteService(
	tx database.Transactor,
	accountRepo account.AccountRepository,
	clubRepo club.ClubRepository,
	memberRepo member.MemberRepository,
	codeService verification.VerificationService,
	emailService email.EmailService,
	concurrency int,
	codeTTL time.Duration,
) invite.InviteService {
	return &InviteServiceImpl{
		tx:           tx,
		accountRepo:  accountRepo,
		clubRepo:     clubRepo,
		memberRepo:   memberRepo,
		codeService:  codeService,
		emailService: emailService,
		concurrency:  concurrency,
		codeTTL:      codeTTL,
	}
}

// InviteClubs implements invite.InviteService.
func (s *InviteServiceImpl) InviteClubs(ctx context.Context, req invite.InviteClubsRequest) (invite.BatchOutcome, error) {
	if err := req.Validate(); err != nil {
		return invite.BatchOutcome{}, err
	}

	emails := normalizeBatch(req.Emails)

	// Both existence lookups run once per batch, not per identity
	accountMatches, err := s.accountRepo.EmailsWithAccount(ctx, emails)
	if err != nil {
		return invite.BatchOutcome{}, fmt.Errorf("failed to look up existing accounts: %w", err)
	}
	clubMatches, err := s.clubRepo.EmailsWithClub(ctx, emails)
	if err != nil {
		return invite.BatchOutcome{}, fmt.Errorf("failed to look up existing clubs: %w", err)
	}

	outcome := newOutcome()
	var eligible []string
	for _, e := range emails {
		switch {
		case contains(accountMatches, e):
			outcome.Add(invite.Skipped(e, invite.ReasonAccountExists))
		case contains(clubMatches, e):
			outcome.Add(invite.Skipped(e, invite.ReasonClubExists))
		default:
			eligible = append(eligible, e)
		}
	}

	s.runBatch(ctx, eligible, invite.ReasonClubSystemError, &outcome, func(ctx context.Context, e string) error {
		return s.createClubInvite(ctx, e, req.InviterName)
	})

	return outcome, nil
}

// InviteMembers implements invite.InviteService.
func (s *InviteServiceImpl) InviteMembers(ctx context.Context, req invite.InviteMembersRequest) (invite.BatchOutcome, error) {
	if err := req.Validate(); err != nil {
		return invite.BatchOutcome{}, err
	}

	kind, err := member.ParseKind(req.Kind)
	if err != nil {
		return invite.BatchOutcome{}, err
	}

	// The scoping club must exist before any lookup or transaction work
	inviterClub, err := s.clubRepo.GetByID(ctx, req.ClubID)
	if err != nil {
		if errors.Is(err, club.ErrClubNotFound) {
			return invite.BatchOutcome{}, club.ErrClubNotFound
		}
		return invite.BatchOutcome{}, fmt.Errorf("failed to get club: %w", err)
	}

	emails := normalizeBatch(req.Emails)

	accountMatches, err := s.accountRepo.EmailsWithAccount(ctx, emails)
	if err != nil {
		return invite.BatchOutcome{}, fmt.Errorf("failed to look up existing accounts: %w", err)
	}
	memberMatches, err := s.memberRepo.EmailsInvited(ctx, inviterClub.ID, emails)
	if err != nil {
		return invite.BatchOutcome{}, fmt.Errorf("failed to look up invited members: %w", err)
	}

	outcome := newOutcome()
	var eligible []string
	for _, e := range emails {
		switch {
		case contains(accountMatches, e):
			outcome.Add(invite.Skipped(e, invite.ReasonUserExists))
		case contains(memberMatches, e):
			outcome.Add(invite.Skipped(e, invite.ReasonAlreadyInvited))
		default:
			eligible = append(eligible, e)
		}
	}

	s.runBatch(ctx, eligible, invite.ReasonMemberSystemError, &outcome, func(ctx context.Context, e string) error {
		return s.createMemberInvite(ctx, e, kind, inviterClub, req.InviterName)
	})

	return outcome, nil
}

// runBatch fans the eligible identities out onto a bounded worker group and
// waits for every item to settle. Workers never return an error: a failed
// or panicked item becomes a skip entry and must not disturb its siblings.
func (s *InviteServiceImpl) runBatch(ctx context.Context, emails []string, failReason string, outcome *invite.BatchOutcome, run func(context.Context, string) error) {
	var mu sync.Mutex
	g := new(errgroup.Group)
	g.SetLimit(s.concurrency)

	for _, e := range emails {
		e := e // per-iteration copy: required under go 1.21 loop semantics
		g.Go(func() error {
			res := s.runItem(ctx, e, failReason, run)
			mu.Lock()
			outcome.Add(res)
			mu.Unlock()
			return nil
		})
	}

	_ = g.Wait()
}

func (s *InviteServiceImpl) runItem(ctx context.Context, e, failReason string, run func(context.Context, string) error) (res invite.ItemResult) {
	defer func() {
		if p := recover(); p != nil {
			slog.Error("Panic while processing invite", "email", e, "panic", p)
			res = invite.Skipped(e, failReason)
		}
	}()

	// A caller timeout reports unsettled items as system-error skips
	if ctx.Err() != nil {
		slog.Warn("Batch deadline reached before invite started", "email", e)
		return invite.Skipped(e, failReason)
	}

	if err := run(ctx, e); err != nil {
		slog.Error("Failed to process invite", "email", e, "error", err)
		return invite.Skipped(e, failReason)
	}

	return invite.Processed(e)
}

// createClubInvite creates the pending account and the club profile in one
// transaction, then issues the verification code and sends the email. A
// send failure after commit leaves the created records in place; the item
// is still reported as skipped.
func (s *InviteServiceImpl) createClubInvite(ctx context.Context, e, inviterName string) error {
	refCode, err := s.uniqueRefCode(ctx)
	if err != nil {
		return err
	}

	var acc account.Account
	err = s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		acc, err = s.accountRepo.Create(txCtx, account.Account{
			Email:  e,
			Kind:   account.KindClub,
			Status: account.StatusPending,
		})
		if err != nil {
			return fmt.Errorf("failed to create account: %w", err)
		}

		_, err = s.clubRepo.Create(txCtx, club.Club{
			AccountID:      acc.ID,
			Email:          e,
			RefCode:        refCode,
			RemainingSteps: onboarding.DefaultSteps(),
		})
		if err != nil {
			return fmt.Errorf("failed to create club profile: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	// Issued outside the transaction: hashing and storage of the code must
	// not hold the creation transaction open
	code, err := s.codeService.Issue(ctx, e, verification.PurposeClubInvite, nil, acc.ID)
	if err != nil {
		return fmt.Errorf("failed to issue verification code: %w", err)
	}

	return s.emailService.SendClubInvite(e, inviterName, refCode, code, s.codeExpiry())
}

// createMemberInvite is the affiliate counterpart: pending account plus an
// unapproved member record stamped with the club's reference code.
func (s *InviteServiceImpl) createMemberInvite(ctx context.Context, e string, kind member.Kind, inviterClub club.Club, inviterName string) error {
	var acc account.Account
	err := s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		var err error
		acc, err = s.accountRepo.Create(txCtx, account.Account{
			Email:  e,
			Kind:   account.Kind(kind),
			Status: account.StatusPending,
		})
		if err != nil {
			return fmt.Errorf("failed to create account: %w", err)
		}

		_, err = s.memberRepo.Create(txCtx, member.Member{
			ClubID:    inviterClub.ID,
			AccountID: acc.ID,
			Email:     e,
			Kind:      kind,
			Approved:  false,
			RefCode:   inviterClub.RefCode,
		})
		if err != nil {
			return fmt.Errorf("failed to create member record: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	code, err := s.codeService.Issue(ctx, e, verification.PurposeMemberInvite, &inviterClub.ID, acc.ID)
	if err != nil {
		return fmt.Errorf("failed to issue verification code: %w", err)
	}

	return s.emailService.SendMemberInvite(string(kind), e, inviterClub.Name, inviterName, inviterClub.RefCode, code, s.codeExpiry())
}

// Accept implements invite.InviteService.
func (s *InviteServiceImpl) Accept(ctx context.Context, req invite.AcceptRequest) (invite.AcceptResponse, error) {
	if err := req.Validate(); err != nil {
		return invite.AcceptResponse{}, err
	}

	e := normalizeEmail(req.Email)

	acc, err := s.accountRepo.GetByEmail(ctx, e)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return invite.AcceptResponse{}, invite.ErrInviteNotFound
		}
		return invite.AcceptResponse{}, fmt.Errorf("failed to get account: %w", err)
	}
	if !acc.IsPending() {
		return invite.AcceptResponse{}, invite.ErrInviteNotActive
	}

	purpose := verification.PurposeMemberInvite
	if acc.Kind == account.KindClub {
		purpose = verification.PurposeClubInvite
	}

	codeRec, err := s.codeService.Verify(ctx, e, purpose, req.Code)
	if err != nil {
		return invite.AcceptResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return invite.AcceptResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	err = s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		if err := s.accountRepo.Activate(txCtx, acc.ID, string(hash)); err != nil {
			return fmt.Errorf("failed to activate account: %w", err)
		}
		if acc.Kind != account.KindClub {
			if err := s.memberRepo.Approve(txCtx, acc.ID); err != nil {
				return fmt.Errorf("failed to approve member: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return invite.AcceptResponse{}, err
	}

	if err := s.codeService.Consume(ctx, e, purpose); err != nil {
		slog.Warn("Failed to delete consumed verification code", "email", e, "error", err)
	}

	return invite.AcceptResponse{
		Message:   "Invitation accepted successfully",
		AccountID: acc.ID,
		Kind:      string(acc.Kind),
		ClubID:    codeRec.ClubID,
	}, nil
}

// uniqueRefCode draws codes until one is free. The store check is the
// collision guard; the random space makes retries rare.
func (s *InviteServiceImpl) uniqueRefCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < refCodeMaxAttempts; attempt++ {
		code, err := refcode.New()
		if err != nil {
			return "", err
		}
		exists, err := s.clubRepo.RefCodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check ref code: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", club.ErrRefCodeRetries
}

func (s *InviteServiceImpl) codeExpiry() string {
	return time.Now().Add(s.codeTTL).Format("Jan 2, 2006 15:04 MST")
}

func newOutcome() invite.BatchOutcome {
	return invite.BatchOutcome{
		Processed: []string{},
		Skipped:   []invite.SkippedInvite{},
	}
}

// normalizeBatch lowercases, trims and dedupes the submitted emails while
// keeping first-occurrence order. Deduping up front keeps one call from
// racing itself on the same identity.
func normalizeBatch(emails []string) []string {
	seen := make(map[string]struct{}, len(emails))
	out := make([]string, 0, len(emails))
	for _, e := range emails {
		n := normalizeEmail(e)
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

func normalizeEmail(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}

func contains(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}
