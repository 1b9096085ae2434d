package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rosterhq/roster/internal/roster/domain"
	"github.com/rosterhq/roster/internal/roster/service"
	"github.com/rosterhq/roster/pkg/httpx"
	"github.com/rosterhq/roster/pkg/jwtx"
	"github.com/rosterhq/roster/pkg/rosterapi"
	"github.com/rosterhq/roster/pkg/slogx"
)

type InvitesHandler struct {
	InviteService *service.InviteService

	// Verifier resolves an optional bearer token on the public accept
	// endpoint; Signer mints a session when acceptance creates an
	// account.
	Verifier  jwtx.Verifier
	Signer    jwtx.Signer
	Issuer    string
	AccessTTL time.Duration
}

// HandleCreate godoc
//
//	@Summary		Invite Creation Endpoint
//	@Description	Invite an email address into a company at a role. ADMINs and OWNERs may invite;
//	@Description	inviting at OWNER level is reserved to OWNERs. One active invite per email per company.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			companyID	path		string						true	"Company ID"
//	@Param			request		body		rosterapi.CreateInviteRequest	true	"Invite request"
//	@Success		201			{object}	rosterapi.Invite			"token, email, company_id, role, expires_at"
//	@Failure		400			{object}	rosterapi.ErrorResponse		"error, error_description"
//	@Failure		403			{object}	rosterapi.ErrorResponse		"error, error_description"
//	@Failure		409			{object}	rosterapi.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/companies/{companyID}/invites [post].
func (h *InvitesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req rosterapi.CreateInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	invite, err := h.InviteService.CreateInvite(ctx, r.PathValue("companyID"), req.Email, domain.Role(req.Role), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, toInvite(invite))
}

// HandleList godoc
//
//	@Summary		Invite Listing Endpoint
//	@Description	List a company's invites, newest first. Restricted to ADMINs and OWNERs.
//	@Tags			Invites
//	@Produce		json
//	@Param			companyID	path		string					true	"Company ID"
//	@Param			page		query		int						false	"Page number (1-based)"
//	@Param			page_size	query		int						false	"Page size (default 10)"
//	@Success		200			{object}	rosterapi.InviteList	"invites, page"
//	@Failure		401			{object}	rosterapi.ErrorResponse	"error, error_description"
//	@Failure		403			{object}	rosterapi.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/companies/{companyID}/invites [get].
func (h *InvitesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	page, pageSize := pageParams(r)
	invites, pageInfo, err := h.InviteService.ListCompanyInvites(ctx, r.PathValue("companyID"), userID, page, pageSize)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := rosterapi.InviteList{
		Invites: make([]rosterapi.Invite, 0, len(invites)),
		Page:    toPageInfo(pageInfo),
	}
	for _, inv := range invites {
		out.Invites = append(out.Invites, toInvite(inv.Invite))
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCancel godoc
//
//	@Summary		Invite Cancellation Endpoint
//	@Description	Revoke a pending invite. The email becomes immediately re-invitable.
//	@Tags			Invites
//	@Param			companyID	path	string	true	"Company ID"
//	@Param			token		path	string	true	"Invite token"
//	@Success		204			"invite cancelled"
//	@Failure		401			{object}	rosterapi.ErrorResponse	"error, error_description"
//	@Failure		403			{object}	rosterapi.ErrorResponse	"error, error_description"
//	@Failure		404			{object}	rosterapi.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/companies/{companyID}/invites/{token} [delete].
func (h *InvitesHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	err := h.InviteService.CancelInvite(ctx, r.PathValue("companyID"), r.PathValue("token"), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandlePreview godoc
//
//	@Summary		Invite Preview Endpoint
//	@Description	Resolve an invite token for display before acceptance. Public endpoint;
//	@Description	exposes only the invited email, role, company summary and expiry.
//	@Tags			Invites
//	@Produce		json
//	@Param			token	path		string					true	"Invite token"
//	@Success		200		{object}	rosterapi.InvitePreview	"email, role, company, expires_at"
//	@Failure		404		{object}	rosterapi.ErrorResponse	"error, error_description"
//	@Failure		410		{object}	rosterapi.ErrorResponse	"error, error_description"
//	@Router			/v1/invites/{token} [get].
func (h *InvitesHandler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	invite, err := h.InviteService.GetInviteByToken(r.Context(), r.PathValue("token"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, rosterapi.InvitePreview{
		Email:     invite.Email,
		Role:      string(invite.Role),
		Company:   toCompanySummary(invite.Company),
		ExpiresAt: invite.ExpiresAt.Unix(),
	})
}

// HandleAccept godoc
//
//	@Summary		Invite Acceptance Endpoint
//	@Description	Redeem an invite token. With a bearer token the membership is granted to that account,
//	@Description	whose email must match the invite. Without one, name and password create a new account
//	@Description	and a session token is returned. Tokens are single use.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			token	path		string							true	"Invite token"
//	@Param			request	body		rosterapi.AcceptInviteRequest	true	"Acceptance request"
//	@Success		200		{object}	rosterapi.AcceptInviteResponse	"user, company, access_token for new accounts"
//	@Failure		400		{object}	rosterapi.ErrorResponse			"error, error_description"
//	@Failure		403		{object}	rosterapi.ErrorResponse			"error, error_description"
//	@Failure		404		{object}	rosterapi.ErrorResponse			"error, error_description"
//	@Failure		409		{object}	rosterapi.ErrorResponse			"error, error_description"
//	@Failure		410		{object}	rosterapi.ErrorResponse			"error, error_description"
//	@Router			/v1/invites/{token}/accept [post].
func (h *InvitesHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req rosterapi.AcceptInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	// A bearer token is optional here: present means an existing
	// account is claiming the invite, absent means signup. An invalid
	// token is still an error rather than a silent fallback to the
	// signup path.
	userID, ok, err := h.optionalBearer(r)
	if err != nil {
		httpx.WriteJSON(w, http.StatusUnauthorized, rosterapi.ErrorResponse{
			Error:            rosterapi.ErrorCodeUnauthorized,
			ErrorDescription: "Invalid bearer token",
		})
		return
	}

	accept := service.AcceptInviteRequest{
		Token:    r.PathValue("token"),
		Name:     req.Name,
		Password: req.Password,
	}
	if ok {
		accept.UserID = userID
	}

	user, company, err := h.InviteService.AcceptInvite(ctx, accept)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := rosterapi.AcceptInviteResponse{
		User:    toUser(user),
		Company: toCompanySummary(company),
	}

	// Anonymous acceptance created the account, so hand back a
	// session for it.
	if !ok {
		ttl := h.AccessTTL
		if ttl <= 0 {
			ttl = jwtx.DefaultAccessTokenTTL
		}
		claims := jwtx.NewAccessClaims(user.ID, user.Email, user.Name, h.Issuer, ttl, time.Now())
		token, err := h.Signer.Sign(claims)
		if err != nil {
			slogx.FromContext(ctx).Error("failed to sign access token", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, rosterapi.ErrorResponse{
				Error:            rosterapi.ErrorCodeServerError,
				ErrorDescription: "Failed to create session",
			})
			return
		}
		resp.AccessToken = token
		resp.TokenType = "Bearer"
		resp.ExpiresIn = int(ttl.Seconds())
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// optionalBearer verifies the Authorization header when present.
// Returns ok=false with no error when the header is absent.
func (h *InvitesHandler) optionalBearer(r *http.Request) (userID string, ok bool, err error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false, nil
	}

	raw := strings.TrimPrefix(header, "Bearer ")
	if raw == header {
		return "", false, jwtx.ErrInvalidToken
	}

	claims, err := h.Verifier.Verify(raw)
	if err != nil {
		return "", false, err
	}
	return claims.Subject, true, nil
}
