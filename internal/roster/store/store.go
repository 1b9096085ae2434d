package store

import (
	"context"
	"errors"
	"time"

	"github.com/rosterhq/roster/internal/roster/domain"
)

var (
	ErrNotFound = errors.New("store: not found")
	// ErrAlreadyExists is returned when a write trips a UNIQUE
	// constraint (user email, membership (user, company) pair, invite
	// token). The uniqueness guard lives in the database rather than a
	// check-then-write in the services, so concurrent writers cannot
	// both pass the check; services translate this into the matching
	// domain error.
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for
// now) implement this. It exposes sub-repositories to keep concerns
// tidy and testable.
type Store interface {
	Users() Users
	Companies() Companies
	Memberships() Memberships
	Invites() Invites

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. fn returning an error
	// rolls the transaction back; nil commits it. Multi-step sequences
	// that must be atomic (invite acceptance, owner-count-then-delete)
	// go through here.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It exposes the same repos plus
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail returns a user by their unique email.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserProfile returns a user with all their memberships, each
	// joined with a company summary.
	GetUserProfile(ctx context.Context, id string) (domain.Profile, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateActiveCompany sets the user's active-company pointer and
	// bumps updated_at. An empty companyID clears the pointer.
	UpdateActiveCompany(ctx context.Context, userID, companyID string) error
}

type Companies interface {
	// GetCompanyByID returns a company by id.
	GetCompanyByID(ctx context.Context, id string) (domain.Company, error)

	// CreateCompany inserts a new company (id is ULID).
	CreateCompany(ctx context.Context, c domain.Company) error

	// ListCompaniesByUser returns a page of companies the user belongs
	// to, newest membership first, each annotated with the user's role.
	ListCompaniesByUser(ctx context.Context, userID string, limit, offset int) ([]domain.CompanyWithRole, error)

	// CountCompaniesByUser returns how many companies the user belongs to.
	CountCompaniesByUser(ctx context.Context, userID string) (int, error)
}

type Memberships interface {
	// GetMembershipByID returns a membership by its own id.
	GetMembershipByID(ctx context.Context, id string) (domain.Membership, error)

	// GetMembershipByUserAndCompany returns the membership for a
	// (user, company) pair.
	GetMembershipByUserAndCompany(ctx context.Context, userID, companyID string) (domain.Membership, error)

	// CreateMembership inserts a new membership. Returns
	// ErrAlreadyExists when the user already belongs to the company.
	CreateMembership(ctx context.Context, m domain.Membership) error

	// UpdateMembershipRole sets the role and bumps updated_at.
	UpdateMembershipRole(ctx context.Context, id string, role domain.Role) error

	// DeleteMembership removes a membership by id.
	DeleteMembership(ctx context.Context, id string) error

	// CountOwners returns the number of OWNER memberships a company
	// currently has. Run inside the same transaction as the delete or
	// demotion it guards.
	CountOwners(ctx context.Context, companyID string) (int, error)

	// ListMembersByCompany returns a page of members ordered by
	// authority (OWNER, ADMIN, MEMBER) then by join time ascending,
	// each joined with their user summary.
	ListMembersByCompany(ctx context.Context, companyID string, limit, offset int) ([]domain.Member, error)

	// CountMembersByCompany returns a company's total member count.
	CountMembersByCompany(ctx context.Context, companyID string) (int, error)
}

type Invites interface {
	// CreateInvite writes a new invite. Returns ErrAlreadyExists on a
	// token collision.
	CreateInvite(ctx context.Context, inv domain.Invite) error

	// GetInviteByToken returns an invite with its company summary,
	// regardless of used/expired state.
	GetInviteByToken(ctx context.Context, token string) (domain.InviteWithCompany, error)

	// HasActiveInvite reports whether an unused, unexpired invite
	// exists for the (email, company) pair at the given instant.
	HasActiveInvite(ctx context.Context, email, companyID string, now time.Time) (bool, error)

	// MarkInviteUsed sets used=1 and used_at (transaction-friendly).
	MarkInviteUsed(ctx context.Context, token string) error

	// DeleteInvite removes an invite by token (cancellation).
	DeleteInvite(ctx context.Context, token string) error

	// ListInvitesByCompany returns a page of a company's invites,
	// newest first, joined with the company summary.
	ListInvitesByCompany(ctx context.Context, companyID string, limit, offset int) ([]domain.InviteWithCompany, error)

	// CountInvitesByCompany returns a company's total invite count.
	CountInvitesByCompany(ctx context.Context, companyID string) (int, error)

	// DeleteExpiredInvites removes invites past their expiry
	// (housekeeping).
	DeleteExpiredInvites(ctx context.Context) error
}
