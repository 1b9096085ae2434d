package http

import (
	"encoding/json"
	"net/http"

	"github.com/rosterhq/roster/internal/roster/service"
	"github.com/rosterhq/roster/pkg/httpx"
	"github.com/rosterhq/roster/pkg/rosterapi"
)

type UsersHandler struct {
	UserService    *service.UserService
	CompanyService *service.CompanyService
}

// HandleMe godoc
//
//	@Summary		Current User Endpoint
//	@Description	Return the authenticated user's profile, including every company membership with its company summary.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	rosterapi.Profile		"id, email, name, active_company_id, memberships"
//	@Failure		401	{object}	rosterapi.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/users/me [get].
func (h *UsersHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	profile, err := h.UserService.GetProfile(ctx, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProfile(profile))
}

// HandleSelectActiveCompany godoc
//
//	@Summary		Active Company Selection Endpoint
//	@Description	Switch the authenticated user's active company. The user must be a member of the target company.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rosterapi.SelectActiveCompanyRequest	true	"Active company selection"
//	@Success		200		{object}	rosterapi.User							"id, email, name, active_company_id"
//	@Failure		400		{object}	rosterapi.ErrorResponse					"error, error_description"
//	@Failure		403		{object}	rosterapi.ErrorResponse					"error, error_description"
//	@Failure		404		{object}	rosterapi.ErrorResponse					"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/users/me/active-company [put].
func (h *UsersHandler) HandleSelectActiveCompany(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req rosterapi.SelectActiveCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}
	if req.CompanyID == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, rosterapi.ErrorResponse{
			Error:            rosterapi.ErrorCodeInvalidRequest,
			ErrorDescription: "company_id is required",
		})
		return
	}

	user, err := h.CompanyService.SelectActiveCompany(ctx, userID, req.CompanyID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUser(user))
}
