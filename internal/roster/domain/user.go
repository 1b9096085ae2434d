package domain

import "time"

type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string // argon2id encoded, never serialized outward
	// ActiveCompanyID is the user's currently selected tenant context.
	// Empty when the user has not joined or selected a company yet.
	ActiveCompanyID string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// UserSummary is the public slice of a user embedded in listings.
type UserSummary struct {
	ID    string
	Email string
	Name  string
}

func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Email: u.Email, Name: u.Name}
}

// Profile is a user together with every membership they hold.
type Profile struct {
	User
	Memberships []MembershipWithCompany
}

// MembershipWithCompany is a membership joined with a summary of the
// company it belongs to, as returned by profile lookups.
type MembershipWithCompany struct {
	Membership
	Company CompanySummary
}
