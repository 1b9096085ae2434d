package rosterapi

// ErrorResponse is the error body returned by every endpoint.
type ErrorResponse struct {
	// Error is a stable machine-readable code (e.g. "not_found",
	// "last_owner_protected")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// User is the public representation of an account.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`

	// ActiveCompanyID is the currently selected tenant context, empty
	// when none is selected
	ActiveCompanyID string `json:"active_company_id,omitempty"`
}

// Company is the public representation of a company.
type Company struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	LogoURL   string `json:"logo_url,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

// CompanyWithRole annotates a company with the requesting user's role.
type CompanyWithRole struct {
	Company
	Role string `json:"role"`
}

// Membership ties a user to a company at a role.
type Membership struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	CompanyID string `json:"company_id"`
	Role      string `json:"role"`
	CreatedAt int64  `json:"created_at"`
}

// Member is a membership joined with the member's public user record,
// as returned by member listings.
type Member struct {
	Membership
	User User `json:"user"`
}

// ProfileMembership is one entry of a user's own membership list.
type ProfileMembership struct {
	Membership
	Company Company `json:"company"`
}

// Profile is the authenticated user together with their memberships.
type Profile struct {
	User
	Memberships []ProfileMembership `json:"memberships"`
}

// Invite is a pending invitation as seen by company staff.
type Invite struct {
	Token     string `json:"token"`
	Email     string `json:"email"`
	CompanyID string `json:"company_id"`
	Role      string `json:"role"`
	Used      bool   `json:"used"`
	ExpiresAt int64  `json:"expires_at"`
	CreatedAt int64  `json:"created_at"`
}

// InvitePreview is the public view of an invite shown before
// acceptance. It never includes other members' data.
type InvitePreview struct {
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	Company   Company `json:"company"`
	ExpiresAt int64   `json:"expires_at"`
}

// PageInfo describes the pagination state of a list response.
type PageInfo struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// SignupRequest creates a standalone account.
type SignupRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginRequest exchanges credentials for a session token.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries a session token and the authenticated user.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	User        User   `json:"user"`
}

// CreateCompanyRequest creates a company owned by the caller.
type CreateCompanyRequest struct {
	Name    string `json:"name"`
	LogoURL string `json:"logo_url,omitempty"`
}

// SelectActiveCompanyRequest switches the caller's tenant context.
type SelectActiveCompanyRequest struct {
	CompanyID string `json:"company_id"`
}

// UpdateMemberRoleRequest changes another member's role.
type UpdateMemberRoleRequest struct {
	Role string `json:"role"`
}

// CreateInviteRequest invites an email address into a company.
type CreateInviteRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AcceptInviteRequest redeems an invite token. Name and Password are
// required when accepting anonymously to create the account; an
// authenticated call leaves them empty.
type AcceptInviteRequest struct {
	Name     string `json:"name,omitempty"`
	Password string `json:"password,omitempty"`
}

// AcceptInviteResponse is returned when an invite is redeemed. The
// token fields are set only for anonymous acceptance, where a new
// account (and session) was created.
type AcceptInviteResponse struct {
	AccessToken string  `json:"access_token,omitempty"`
	TokenType   string  `json:"token_type,omitempty"`
	ExpiresIn   int     `json:"expires_in,omitempty"`
	User        User    `json:"user"`
	Company     Company `json:"company"`
}

// HealthResponse is returned by the liveness and readiness probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks carries per-dependency readiness results.
type HealthChecks struct {
	Database string `json:"database"`
}

// CompanyList is a page of the caller's companies.
type CompanyList struct {
	Companies []CompanyWithRole `json:"companies"`
	Page      PageInfo          `json:"page"`
}

// MemberList is a page of a company's members.
type MemberList struct {
	Members []Member `json:"members"`
	Page    PageInfo `json:"page"`
}

// InviteList is a page of a company's invites.
type InviteList struct {
	Invites []Invite `json:"invites"`
	Page    PageInfo `json:"page"`
}
