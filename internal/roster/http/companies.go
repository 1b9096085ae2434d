package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rosterhq/roster/internal/roster/service"
	"github.com/rosterhq/roster/pkg/httpx"
	"github.com/rosterhq/roster/pkg/rosterapi"
)

type CompaniesHandler struct {
	CompanyService *service.CompanyService
}

// pageParams reads ?page= and ?page_size=, leaving zero for absent or
// malformed values so the service applies its defaults.
func pageParams(r *http.Request) (page, pageSize int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ = strconv.Atoi(r.URL.Query().Get("page_size"))
	return page, pageSize
}

// HandleCreate godoc
//
//	@Summary		Company Creation Endpoint
//	@Description	Create a company with the authenticated user as its first OWNER.
//	@Description	If the user has no active company yet, the new company becomes active.
//	@Tags			Companies
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rosterapi.CreateCompanyRequest	true	"Company creation request"
//	@Success		201		{object}	rosterapi.Company				"id, name, logo_url, created_at"
//	@Failure		400		{object}	rosterapi.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	rosterapi.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/companies [post].
func (h *CompaniesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req rosterapi.CreateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	company, err := h.CompanyService.CreateCompany(ctx, req.Name, req.LogoURL, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toCompany(company))
}

// HandleList godoc
//
//	@Summary		Company Listing Endpoint
//	@Description	List the companies the authenticated user belongs to, newest membership first, annotated with the user's role.
//	@Tags			Companies
//	@Produce		json
//	@Param			page		query		int						false	"Page number (1-based)"
//	@Param			page_size	query		int						false	"Page size (default 10)"
//	@Success		200			{object}	rosterapi.CompanyList	"companies, page"
//	@Failure		401			{object}	rosterapi.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/companies [get].
func (h *CompaniesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	page, pageSize := pageParams(r)
	companies, pageInfo, err := h.CompanyService.ListUserCompanies(ctx, userID, page, pageSize)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := rosterapi.CompanyList{
		Companies: make([]rosterapi.CompanyWithRole, 0, len(companies)),
		Page:      toPageInfo(pageInfo),
	}
	for _, c := range companies {
		out.Companies = append(out.Companies, rosterapi.CompanyWithRole{
			Company: toCompany(c.Company),
			Role:    string(c.UserRole),
		})
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet godoc
//
//	@Summary		Company Detail Endpoint
//	@Description	Return a company the authenticated user is a member of.
//	@Tags			Companies
//	@Produce		json
//	@Param			companyID	path		string					true	"Company ID"
//	@Success		200			{object}	rosterapi.Company		"id, name, logo_url, created_at"
//	@Failure		401			{object}	rosterapi.ErrorResponse	"error, error_description"
//	@Failure		403			{object}	rosterapi.ErrorResponse	"error, error_description"
//	@Failure		404			{object}	rosterapi.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/companies/{companyID} [get].
func (h *CompaniesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	company, err := h.CompanyService.GetCompany(ctx, r.PathValue("companyID"), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toCompany(company))
}
