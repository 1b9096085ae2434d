package domain

import "time"

// Role is the authority level a membership grants within a company.
// OWNER > ADMIN > MEMBER, a strict total order.
type Role string

const (
	RoleOwner  Role = "OWNER"
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
)

// rank maps roles onto their authority order. Higher wins.
var rank = map[Role]int{
	RoleOwner:  3,
	RoleAdmin:  2,
	RoleMember: 1,
}

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	_, ok := rank[r]
	return ok
}

// AtLeast reports whether r carries at least the authority of other.
func (r Role) AtLeast(other Role) bool {
	return rank[r] >= rank[other]
}

type Membership struct {
	ID        string
	UserID    string
	CompanyID string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Member is a membership joined with the user it belongs to, as shown
// in company member listings.
type Member struct {
	Membership
	User UserSummary
}
