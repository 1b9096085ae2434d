package domain

import "time"

// InviteTTL is the fixed lifetime of an invite from creation.
const InviteTTL = 7 * 24 * time.Hour

// Invite is a token-addressed, time-limited offer to join a company at
// a given role. The token is the primary key: opaque, unguessable and
// unique. Acceptance and cancellation are terminal; expiry is a derived
// read-time predicate, never a stored transition.
type Invite struct {
	Token     string
	Email     string
	CompanyID string
	Role      Role
	Used      bool
	UsedAt    *time.Time
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Expired reports whether the invite's lifetime has passed at now.
func (i Invite) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

// Active reports whether the invite can still be accepted at now.
func (i Invite) Active(now time.Time) bool {
	return !i.Used && !i.Expired(now)
}

// InviteWithCompany is an invite joined with a summary of its company,
// as returned by token lookups and invite listings.
type InviteWithCompany struct {
	Invite
	Company CompanySummary
}
