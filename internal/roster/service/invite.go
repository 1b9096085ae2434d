package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/rosterhq/roster/internal/roster/domain"
	"github.com/rosterhq/roster/internal/roster/store"
	"github.com/rosterhq/roster/pkg/cryptox"
	"github.com/rosterhq/roster/pkg/idx"
	"github.com/rosterhq/roster/pkg/slogx"
)

var (
	ErrInviteNotFound      = errors.New("invite not found")
	ErrInviteExpired       = errors.New("invite has expired")
	ErrInviteAlreadyUsed   = errors.New("invite has already been used")
	ErrDuplicateInvite     = errors.New("an active invite already exists for this email")
	ErrEmailMismatch       = errors.New("invite was issued for a different email")
	ErrAlreadyMember       = errors.New("user is already a member of the company")
	ErrAccountExists       = errors.New("an account with this email already exists, log in to accept")
	ErrInvalidInviteAccept = errors.New("name and password are required for a new account")
)

type InviteService struct {
	Store store.Store
}

// CreateInvite issues a time-limited invite token for an email address.
// Only ADMINs and OWNERs may invite, and inviting at OWNER level is
// reserved to OWNERs. At most one active (unused, unexpired) invite may
// exist per email per company; the duplicate check runs in the same
// transaction as the insert so concurrent calls serialize.
func (s *InviteService) CreateInvite(
	ctx context.Context,
	companyID string,
	email string,
	role domain.Role,
	requesterID string,
) (domain.Invite, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate inputs.
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return domain.Invite{}, ErrInvalidEmail
	}
	if !role.Valid() {
		return domain.Invite{}, ErrInvalidRole
	}

	// 2. Company must exist.
	if _, err := s.Store.Companies().GetCompanyByID(ctx, companyID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invite{}, ErrCompanyNotFound
		}
		log.Error("failed to fetch company", slog.Any("error", err))
		return domain.Invite{}, err
	}

	// 3. Requester must be a member with sufficient authority.
	requester, err := s.Store.Memberships().GetMembershipByUserAndCompany(ctx, requesterID, companyID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invite{}, ErrNotCompanyMember
		}
		log.Error("failed to fetch requester membership", slog.Any("error", err))
		return domain.Invite{}, err
	}
	if !domain.CanCreateInvite(requester.Role, role) {
		return domain.Invite{}, ErrInsufficientRole
	}

	// 4. Mint the token and write the invite, rejecting a second
	// active invite for the same slot inside the transaction.
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate invite token", slog.Any("error", err))
		return domain.Invite{}, err
	}

	now := time.Now().UTC()
	invite := domain.Invite{
		Token:     token,
		Email:     email,
		CompanyID: companyID,
		Role:      role,
		ExpiresAt: now.Add(domain.InviteTTL),
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		active, err := tx.Invites().HasActiveInvite(ctx, email, companyID, now)
		if err != nil {
			return err
		}
		if active {
			return ErrDuplicateInvite
		}
		if err := tx.Invites().CreateInvite(ctx, invite); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrDuplicateInvite
			}
			return err
		}
		return nil
	})
	if err != nil {
		return domain.Invite{}, err
	}

	log.Info("invite created",
		slog.String("company_id", companyID),
		slog.String("role", string(role)),
		slog.String("requester_id", requesterID),
	)

	return invite, nil
}

// GetInviteByToken resolves an invite for display before acceptance.
// Used invites are reported as expired here; the read path does not
// reveal whether a dead token was consumed or simply timed out.
func (s *InviteService) GetInviteByToken(ctx context.Context, token string) (domain.InviteWithCompany, error) {
	invite, err := s.Store.Invites().GetInviteByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.InviteWithCompany{}, ErrInviteNotFound
		}
		return domain.InviteWithCompany{}, err
	}

	if invite.Used || invite.Expired(time.Now().UTC()) {
		return domain.InviteWithCompany{}, ErrInviteExpired
	}

	return invite, nil
}

// ListCompanyInvites returns a page of a company's invites, newest
// first. Listing is restricted to ADMINs and OWNERs.
func (s *InviteService) ListCompanyInvites(
	ctx context.Context,
	companyID string,
	requesterID string,
	page, pageSize int,
) ([]domain.InviteWithCompany, domain.PageInfo, error) {
	log := slogx.FromContext(ctx)

	// 1. Company must exist.
	if _, err := s.Store.Companies().GetCompanyByID(ctx, companyID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.PageInfo{}, ErrCompanyNotFound
		}
		log.Error("failed to fetch company", slog.Any("error", err))
		return nil, domain.PageInfo{}, err
	}

	// 2. Requester must be an ADMIN or OWNER.
	requester, err := s.Store.Memberships().GetMembershipByUserAndCompany(ctx, requesterID, companyID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.PageInfo{}, ErrNotCompanyMember
		}
		log.Error("failed to fetch requester membership", slog.Any("error", err))
		return nil, domain.PageInfo{}, err
	}
	if !domain.CanViewInvites(requester.Role) {
		return nil, domain.PageInfo{}, ErrInsufficientRole
	}

	// 3. Count and fetch the page.
	pg := domain.NewPageInfo(page, pageSize, 0)

	total, err := s.Store.Invites().CountInvitesByCompany(ctx, companyID)
	if err != nil {
		return nil, domain.PageInfo{}, err
	}
	pg = domain.NewPageInfo(pg.Page, pg.PageSize, total)

	invites, err := s.Store.Invites().ListInvitesByCompany(ctx, companyID, pg.PageSize, pg.Offset())
	if err != nil {
		return nil, domain.PageInfo{}, err
	}

	return invites, pg, nil
}

// CancelInvite revokes a pending invite. Cancellation frees the
// email's invite slot immediately; a fresh invite may follow at once.
func (s *InviteService) CancelInvite(
	ctx context.Context,
	companyID string,
	token string,
	requesterID string,
) error {
	log := slogx.FromContext(ctx)

	// 1. The invite must exist and belong to the named company.
	invite, err := s.Store.Invites().GetInviteByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInviteNotFound
		}
		log.Error("failed to fetch invite", slog.Any("error", err))
		return err
	}
	if invite.CompanyID != companyID {
		return ErrInviteNotFound
	}

	// 2. Requester must be an ADMIN or OWNER of that company.
	requester, err := s.Store.Memberships().GetMembershipByUserAndCompany(ctx, requesterID, companyID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotCompanyMember
		}
		log.Error("failed to fetch requester membership", slog.Any("error", err))
		return err
	}
	if !domain.CanCancelInvite(requester.Role) {
		return ErrInsufficientRole
	}

	// 3. Delete the invite row.
	if err := s.Store.Invites().DeleteInvite(ctx, token); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInviteNotFound
		}
		log.Error("failed to delete invite", slog.Any("error", err))
		return err
	}

	log.Info("invite cancelled",
		slog.String("company_id", companyID),
		slog.String("requester_id", requesterID),
	)

	return nil
}

// AcceptInviteRequest carries the two acceptance shapes. UserID set
// means an authenticated user is claiming the invite; otherwise Name
// and Password establish a new account.
type AcceptInviteRequest struct {
	Token    string
	UserID   string
	Name     string
	Password string
}

// AcceptInvite consumes an invite token and grants membership. The
// invite is single-use: marking it used, creating the membership (and
// account, for the signup path) and setting the initial active company
// all commit atomically, so a token can never be redeemed twice or
// leave a half-joined user behind.
func (s *InviteService) AcceptInvite(ctx context.Context, req AcceptInviteRequest) (domain.User, domain.CompanySummary, error) {
	log := slogx.FromContext(ctx)

	// 1. Load and vet the invite.
	invite, err := s.Store.Invites().GetInviteByToken(ctx, req.Token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, domain.CompanySummary{}, ErrInviteNotFound
		}
		log.Error("failed to fetch invite", slog.Any("error", err))
		return domain.User{}, domain.CompanySummary{}, err
	}

	// Expiry wins over reuse when both apply.
	now := time.Now().UTC()
	if invite.Expired(now) {
		return domain.User{}, domain.CompanySummary{}, ErrInviteExpired
	}
	if invite.Used {
		return domain.User{}, domain.CompanySummary{}, ErrInviteAlreadyUsed
	}

	// 2. Resolve or stage the accepting user.
	var user domain.User

	if req.UserID != "" {
		user, err = s.Store.Users().GetUserByID(ctx, req.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.User{}, domain.CompanySummary{}, ErrUserNotFound
			}
			log.Error("failed to fetch user", slog.Any("error", err))
			return domain.User{}, domain.CompanySummary{}, err
		}

		// The token is bound to the email it was issued for.
		if !strings.EqualFold(user.Email, invite.Email) {
			return domain.User{}, domain.CompanySummary{}, ErrEmailMismatch
		}

		_, err = s.Store.Memberships().GetMembershipByUserAndCompany(ctx, user.ID, invite.CompanyID)
		if err == nil {
			return domain.User{}, domain.CompanySummary{}, ErrAlreadyMember
		}
		if !errors.Is(err, store.ErrNotFound) {
			log.Error("failed to check existing membership", slog.Any("error", err))
			return domain.User{}, domain.CompanySummary{}, err
		}
	} else {
		if strings.TrimSpace(req.Name) == "" || req.Password == "" {
			return domain.User{}, domain.CompanySummary{}, ErrInvalidInviteAccept
		}
		if len(req.Password) < MinPasswordLength {
			return domain.User{}, domain.CompanySummary{}, ErrWeakPassword
		}

		// An existing account must claim the invite while logged in;
		// accepting anonymously must not clobber or shadow it.
		_, err = s.Store.Users().GetUserByEmail(ctx, invite.Email)
		if err == nil {
			return domain.User{}, domain.CompanySummary{}, ErrAccountExists
		}
		if !errors.Is(err, store.ErrNotFound) {
			log.Error("failed to check existing account", slog.Any("error", err))
			return domain.User{}, domain.CompanySummary{}, err
		}

		hash, err := cryptox.HashPassword(req.Password)
		if err != nil {
			log.Error("failed to hash password", slog.Any("error", err))
			return domain.User{}, domain.CompanySummary{}, err
		}

		user = domain.User{
			ID:           idx.New().String(),
			Email:        invite.Email,
			Name:         strings.TrimSpace(req.Name),
			PasswordHash: hash,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	}

	membership := domain.Membership{
		ID:        idx.New().String(),
		UserID:    user.ID,
		CompanyID: invite.CompanyID,
		Role:      invite.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// 3. Commit account, membership and token consumption together.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if req.UserID == "" {
			if err := tx.Users().CreateUser(ctx, user); err != nil {
				if errors.Is(err, store.ErrAlreadyExists) {
					return ErrAccountExists
				}
				return err
			}
		}
		if err := tx.Memberships().CreateMembership(ctx, membership); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrAlreadyMember
			}
			return err
		}
		if err := tx.Invites().MarkInviteUsed(ctx, invite.Token); err != nil {
			return err
		}
		if user.ActiveCompanyID == "" {
			if err := tx.Users().UpdateActiveCompany(ctx, user.ID, invite.CompanyID); err != nil {
				return err
			}
			user.ActiveCompanyID = invite.CompanyID
		}
		return nil
	})
	if err != nil {
		return domain.User{}, domain.CompanySummary{}, err
	}

	log.Info("invite accepted",
		slog.String("company_id", invite.CompanyID),
		slog.String("user_id", user.ID),
		slog.String("role", string(invite.Role)),
		slog.Bool("new_account", req.UserID == ""),
	)

	return user, invite.Company, nil
}
