package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rosterhq/roster/internal/roster/domain"
	"github.com/rosterhq/roster/internal/roster/service"
	"github.com/rosterhq/roster/pkg/httpx"
	"github.com/rosterhq/roster/pkg/jwtx"
	"github.com/rosterhq/roster/pkg/rosterapi"
	"github.com/rosterhq/roster/pkg/slogx"
)

type AuthHandler struct {
	UserService *service.UserService
	Signer      jwtx.Signer
	Issuer      string
	AccessTTL   time.Duration
}

// HandleSignup godoc
//
//	@Summary		Account Signup Endpoint
//	@Description	Create a standalone account with no company memberships and start a session.
//	@Description	Users arriving through an invite link should use the invite acceptance endpoint instead.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rosterapi.SignupRequest	true	"Signup request"
//	@Success		201		{object}	rosterapi.AuthResponse	"access_token, token_type, expires_in, user"
//	@Failure		400		{object}	rosterapi.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	rosterapi.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/signup [post].
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req rosterapi.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	user, err := h.UserService.Register(ctx, req.Email, req.Name, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.writeSession(w, r, http.StatusCreated, user)
}

// HandleLogin godoc
//
//	@Summary		Login Endpoint
//	@Description	Exchange email and password for a session token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rosterapi.LoginRequest	true	"Login request"
//	@Success		200		{object}	rosterapi.AuthResponse	"access_token, token_type, expires_in, user"
//	@Failure		400		{object}	rosterapi.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	rosterapi.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req rosterapi.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	user, err := h.UserService.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.writeSession(w, r, http.StatusOK, user)
}

// writeSession mints an access token for user and writes the auth
// response.
func (h *AuthHandler) writeSession(w http.ResponseWriter, r *http.Request, status int, user domain.User) {
	ttl := h.AccessTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	claims := jwtx.NewAccessClaims(user.ID, user.Email, user.Name, h.Issuer, ttl, time.Now())
	token, err := h.Signer.Sign(claims)
	if err != nil {
		slogx.FromContext(r.Context()).Error("failed to sign access token", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, rosterapi.ErrorResponse{
			Error:            rosterapi.ErrorCodeServerError,
			ErrorDescription: "Failed to create session",
		})
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, status, rosterapi.AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(ttl.Seconds()),
		User:        toUser(user),
	})
}
