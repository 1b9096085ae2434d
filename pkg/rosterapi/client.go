package rosterapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client talks to the roster service. Unauthenticated calls work
// immediately; calls that need a session require SetToken (or a token
// obtained via Signup/Login, which set it automatically).
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	token string
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SetToken installs a bearer token for subsequent authenticated calls.
func (c *Client) SetToken(token string) { c.token = token }

// Token returns the current bearer token, empty when logged out.
func (c *Client) Token() string { return c.token }

// do performs a JSON round trip. A nil body sends no payload; a nil
// out discards the response body. Non-2xx responses decode into an
// *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		payload = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, payload)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
			apiErr.Code = ErrorCodeServerError
			apiErr.Description = resp.Status
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func pageQuery(page, pageSize int) string {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		q.Set("page_size", strconv.Itoa(pageSize))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// Signup creates an account and starts a session.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/v1/auth/signup", req, &resp); err != nil {
		return nil, err
	}
	c.token = resp.AccessToken
	return &resp, nil
}

// Login exchanges credentials for a session.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/v1/auth/login", req, &resp); err != nil {
		return nil, err
	}
	c.token = resp.AccessToken
	return &resp, nil
}

// Me returns the authenticated user's profile with memberships.
func (c *Client) Me(ctx context.Context) (*Profile, error) {
	var resp Profile
	if err := c.do(ctx, http.MethodGet, "/v1/users/me", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SelectActiveCompany switches the caller's tenant context.
func (c *Client) SelectActiveCompany(ctx context.Context, companyID string) (*User, error) {
	var resp User
	req := SelectActiveCompanyRequest{CompanyID: companyID}
	if err := c.do(ctx, http.MethodPut, "/v1/users/me/active-company", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateCompany creates a company with the caller as its first owner.
func (c *Client) CreateCompany(ctx context.Context, req CreateCompanyRequest) (*Company, error) {
	var resp Company
	if err := c.do(ctx, http.MethodPost, "/v1/companies", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListCompanies returns a page of the caller's companies.
func (c *Client) ListCompanies(ctx context.Context, page, pageSize int) (*CompanyList, error) {
	var resp CompanyList
	if err := c.do(ctx, http.MethodGet, "/v1/companies"+pageQuery(page, pageSize), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetCompany returns a company the caller belongs to.
func (c *Client) GetCompany(ctx context.Context, companyID string) (*Company, error) {
	var resp Company
	if err := c.do(ctx, http.MethodGet, "/v1/companies/"+companyID, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListMembers returns a page of a company's members.
func (c *Client) ListMembers(ctx context.Context, companyID string, page, pageSize int) (*MemberList, error) {
	var resp MemberList
	path := "/v1/companies/" + companyID + "/members" + pageQuery(page, pageSize)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateMemberRole changes another member's role.
func (c *Client) UpdateMemberRole(ctx context.Context, membershipID, role string) (*Membership, error) {
	var resp Membership
	req := UpdateMemberRoleRequest{Role: role}
	if err := c.do(ctx, http.MethodPatch, "/v1/memberships/"+membershipID, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RemoveMember deletes another member's membership.
func (c *Client) RemoveMember(ctx context.Context, membershipID string) error {
	return c.do(ctx, http.MethodDelete, "/v1/memberships/"+membershipID, nil, nil)
}

// CreateInvite invites an email address into a company.
func (c *Client) CreateInvite(ctx context.Context, companyID string, req CreateInviteRequest) (*Invite, error) {
	var resp Invite
	path := "/v1/companies/" + companyID + "/invites"
	if err := c.do(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListInvites returns a page of a company's invites.
func (c *Client) ListInvites(ctx context.Context, companyID string, page, pageSize int) (*InviteList, error) {
	var resp InviteList
	path := "/v1/companies/" + companyID + "/invites" + pageQuery(page, pageSize)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CancelInvite revokes a pending invite.
func (c *Client) CancelInvite(ctx context.Context, companyID, token string) error {
	return c.do(ctx, http.MethodDelete, "/v1/companies/"+companyID+"/invites/"+token, nil, nil)
}

// GetInvite previews an invite before acceptance. Unauthenticated.
func (c *Client) GetInvite(ctx context.Context, token string) (*InvitePreview, error) {
	var resp InvitePreview
	if err := c.do(ctx, http.MethodGet, "/v1/invites/"+token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AcceptInvite redeems an invite token. When the client holds a
// session token the membership is granted to that account; otherwise
// Name and Password create a new account and the returned session
// token is installed on the client.
func (c *Client) AcceptInvite(ctx context.Context, token string, req AcceptInviteRequest) (*AcceptInviteResponse, error) {
	var resp AcceptInviteResponse
	if err := c.do(ctx, http.MethodPost, "/v1/invites/"+token+"/accept", req, &resp); err != nil {
		return nil, err
	}
	if c.token == "" && resp.AccessToken != "" {
		c.token = resp.AccessToken
	}
	return &resp, nil
}

// Livez reports process liveness.
func (c *Client) Livez(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/livez", nil, nil)
}

// Readyz reports whether the service can reach its database.
func (c *Client) Readyz(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/readyz", nil, nil)
}
