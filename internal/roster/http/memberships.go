package http

import (
	"encoding/json"
	"net/http"

	"github.com/rosterhq/roster/internal/roster/domain"
	"github.com/rosterhq/roster/internal/roster/service"
	"github.com/rosterhq/roster/pkg/httpx"
	"github.com/rosterhq/roster/pkg/rosterapi"
)

type MembershipsHandler struct {
	MembershipService *service.MembershipService
}

// HandleListMembers godoc
//
//	@Summary		Member Listing Endpoint
//	@Description	List a company's members ordered by authority (OWNER, ADMIN, MEMBER) then join time.
//	@Description	Any member of the company may list; outsiders are refused.
//	@Tags			Members
//	@Produce		json
//	@Param			companyID	path		string					true	"Company ID"
//	@Param			page		query		int						false	"Page number (1-based)"
//	@Param			page_size	query		int						false	"Page size (default 10)"
//	@Success		200			{object}	rosterapi.MemberList	"members, page"
//	@Failure		401			{object}	rosterapi.ErrorResponse	"error, error_description"
//	@Failure		403			{object}	rosterapi.ErrorResponse	"error, error_description"
//	@Failure		404			{object}	rosterapi.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/companies/{companyID}/members [get].
func (h *MembershipsHandler) HandleListMembers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	page, pageSize := pageParams(r)
	members, pageInfo, err := h.MembershipService.ListCompanyMembers(ctx, r.PathValue("companyID"), userID, page, pageSize)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := rosterapi.MemberList{
		Members: make([]rosterapi.Member, 0, len(members)),
		Page:    toPageInfo(pageInfo),
	}
	for _, m := range members {
		out.Members = append(out.Members, toMember(m))
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleUpdateRole godoc
//
//	@Summary		Member Role Update Endpoint
//	@Description	Change another member's role. ADMINs manage MEMBERs and ADMINs; any transition involving OWNER is reserved to OWNERs.
//	@Description	A member cannot change their own role, and the last OWNER cannot be demoted.
//	@Tags			Members
//	@Accept			json
//	@Produce		json
//	@Param			membershipID	path		string							true	"Membership ID"
//	@Param			request			body		rosterapi.UpdateMemberRoleRequest	true	"Role update request"
//	@Success		200				{object}	rosterapi.Membership			"id, user_id, company_id, role"
//	@Failure		400				{object}	rosterapi.ErrorResponse			"error, error_description"
//	@Failure		403				{object}	rosterapi.ErrorResponse			"error, error_description"
//	@Failure		404				{object}	rosterapi.ErrorResponse			"error, error_description"
//	@Failure		409				{object}	rosterapi.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/memberships/{membershipID} [patch].
func (h *MembershipsHandler) HandleUpdateRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req rosterapi.UpdateMemberRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	membership, err := h.MembershipService.UpdateMemberRole(ctx, r.PathValue("membershipID"), domain.Role(req.Role), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toMembership(membership))
}

// HandleRemove godoc
//
//	@Summary		Member Removal Endpoint
//	@Description	Remove another member from their company. The same hierarchy rules as role changes apply,
//	@Description	self-removal is denied, and the last OWNER cannot be removed.
//	@Tags			Members
//	@Param			membershipID	path	string	true	"Membership ID"
//	@Success		204				"membership removed"
//	@Failure		401				{object}	rosterapi.ErrorResponse	"error, error_description"
//	@Failure		403				{object}	rosterapi.ErrorResponse	"error, error_description"
//	@Failure		404				{object}	rosterapi.ErrorResponse	"error, error_description"
//	@Failure		409				{object}	rosterapi.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/memberships/{membershipID} [delete].
func (h *MembershipsHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	if err := h.MembershipService.RemoveMember(ctx, r.PathValue("membershipID"), userID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
