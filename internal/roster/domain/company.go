package domain

import "time"

type Company struct {
	ID        string
	Name      string
	LogoURL   string // optional, empty when the company has no logo
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CompanySummary is the minimal company shape embedded in invites,
// profiles and invite acceptance responses.
type CompanySummary struct {
	ID      string
	Name    string
	LogoURL string
}

func (c Company) Summary() CompanySummary {
	return CompanySummary{ID: c.ID, Name: c.Name, LogoURL: c.LogoURL}
}

// CompanyWithRole is a company annotated with the role the requesting
// user holds in it, as returned by "my companies" listings.
type CompanyWithRole struct {
	Company
	UserRole Role
}
