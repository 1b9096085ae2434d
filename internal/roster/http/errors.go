package http

import (
	"errors"
	"net/http"

	"github.com/rosterhq/roster/internal/roster/service"
	"github.com/rosterhq/roster/pkg/httpx"
	"github.com/rosterhq/roster/pkg/rosterapi"
	"github.com/rosterhq/roster/pkg/slogx"
)

// apiError pairs a service sentinel with its wire representation.
type apiError struct {
	status int
	code   string
}

// errorTable maps every service sentinel onto a status and a stable
// error code. Anything not listed is a 500.
var errorTable = []struct {
	err error
	out apiError
}{
	{service.ErrInvalidEmail, apiError{http.StatusBadRequest, rosterapi.ErrorCodeInvalidRequest}},
	{service.ErrInvalidName, apiError{http.StatusBadRequest, rosterapi.ErrorCodeInvalidRequest}},
	{service.ErrWeakPassword, apiError{http.StatusBadRequest, rosterapi.ErrorCodeInvalidRequest}},
	{service.ErrInvalidRole, apiError{http.StatusBadRequest, rosterapi.ErrorCodeInvalidRequest}},
	{service.ErrInvalidInviteAccept, apiError{http.StatusBadRequest, rosterapi.ErrorCodeInvalidRequest}},
	{service.ErrCompanyNameRequired, apiError{http.StatusBadRequest, rosterapi.ErrorCodeInvalidRequest}},

	{service.ErrInvalidCredentials, apiError{http.StatusUnauthorized, rosterapi.ErrorCodeInvalidCredentials}},

	{service.ErrNotCompanyMember, apiError{http.StatusForbidden, rosterapi.ErrorCodeNotMember}},
	{service.ErrInsufficientRole, apiError{http.StatusForbidden, rosterapi.ErrorCodeForbidden}},
	{service.ErrSelfAction, apiError{http.StatusForbidden, rosterapi.ErrorCodeSelfAction}},
	{service.ErrEmailMismatch, apiError{http.StatusForbidden, rosterapi.ErrorCodeEmailMismatch}},

	{service.ErrUserNotFound, apiError{http.StatusNotFound, rosterapi.ErrorCodeNotFound}},
	{service.ErrCompanyNotFound, apiError{http.StatusNotFound, rosterapi.ErrorCodeNotFound}},
	{service.ErrMembershipNotFound, apiError{http.StatusNotFound, rosterapi.ErrorCodeNotFound}},
	{service.ErrInviteNotFound, apiError{http.StatusNotFound, rosterapi.ErrorCodeNotFound}},

	{service.ErrLastOwner, apiError{http.StatusConflict, rosterapi.ErrorCodeLastOwner}},
	{service.ErrDuplicateInvite, apiError{http.StatusConflict, rosterapi.ErrorCodeDuplicateInvite}},
	{service.ErrAlreadyMember, apiError{http.StatusConflict, rosterapi.ErrorCodeAlreadyMember}},
	{service.ErrAccountExists, apiError{http.StatusConflict, rosterapi.ErrorCodeAccountExists}},
	{service.ErrUserAlreadyExists, apiError{http.StatusConflict, rosterapi.ErrorCodeAccountExists}},

	{service.ErrInviteExpired, apiError{http.StatusGone, rosterapi.ErrorCodeInviteExpired}},
	{service.ErrInviteAlreadyUsed, apiError{http.StatusGone, rosterapi.ErrorCodeInviteUsed}},
}

// writeServiceError translates a service error into a JSON error
// response. Unmapped errors are logged and reported as server_error
// without leaking detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	for _, entry := range errorTable {
		if errors.Is(err, entry.err) {
			httpx.WriteJSON(w, entry.out.status, rosterapi.ErrorResponse{
				Error:            entry.out.code,
				ErrorDescription: entry.err.Error(),
			})
			return
		}
	}

	slogx.FromContext(r.Context()).Error("unhandled service error", "err", err)
	httpx.WriteJSON(w, http.StatusInternalServerError, rosterapi.ErrorResponse{
		Error:            rosterapi.ErrorCodeServerError,
		ErrorDescription: "An internal error occurred",
	})
}

// writeInvalidBody is the shared response for unparseable JSON.
func writeInvalidBody(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusBadRequest, rosterapi.ErrorResponse{
		Error:            rosterapi.ErrorCodeInvalidRequest,
		ErrorDescription: "Invalid JSON body",
	})
}

// writeUnauthorized is the shared response for requests whose context
// is missing an authenticated user.
func writeUnauthorized(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusUnauthorized, rosterapi.ErrorResponse{
		Error:            rosterapi.ErrorCodeUnauthorized,
		ErrorDescription: "Authentication required",
	})
}
