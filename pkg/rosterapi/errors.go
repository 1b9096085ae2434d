package rosterapi

import "fmt"

// Stable error codes returned in ErrorResponse.Error.
const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeUnauthorized       = "unauthorized"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeForbidden          = "forbidden"
	ErrorCodeNotMember          = "not_member"
	ErrorCodeSelfAction         = "self_action_denied"
	ErrorCodeLastOwner          = "last_owner_protected"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeConflict           = "conflict"
	ErrorCodeDuplicateInvite    = "duplicate_invite"
	ErrorCodeInviteExpired      = "invite_expired"
	ErrorCodeInviteUsed         = "invite_used"
	ErrorCodeEmailMismatch      = "email_mismatch"
	ErrorCodeAlreadyMember      = "already_member"
	ErrorCodeAccountExists      = "account_exists"
	ErrorCodeServerError        = "server_error"
)

// APIError is an error response decoded from the service. It carries
// the HTTP status and the stable code so callers can branch on either.
type APIError struct {
	StatusCode  int    `json:"-"`
	Code        string `json:"error"`
	Description string `json:"error_description"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}
