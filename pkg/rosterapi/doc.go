/*
Package rosterapi provides a client SDK for the roster membership
service.

# Overview

The package is organized around a single Client type. Unauthenticated
operations (signup, login, invite preview, anonymous invite
acceptance, health checks) work immediately; everything else needs a
session token, which Signup, Login and anonymous AcceptInvite install
on the client automatically:

	client := rosterapi.NewClient("https://roster.example.com")

	// Create an account and a session in one call
	auth, err := client.Signup(ctx, rosterapi.SignupRequest{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "correct-horse-battery",
	})

	// Create a company; the caller becomes its first OWNER
	company, err := client.CreateCompany(ctx, rosterapi.CreateCompanyRequest{
		Name: "Acme",
	})

	// Invite a colleague
	invite, err := client.CreateInvite(ctx, company.ID, rosterapi.CreateInviteRequest{
		Email: "bob@example.com",
		Role:  "MEMBER",
	})

# Errors

Non-2xx responses decode into *APIError, which exposes the HTTP status
and a stable machine-readable code:

	var apiErr *rosterapi.APIError
	if errors.As(err, &apiErr) && apiErr.Code == rosterapi.ErrorCodeLastOwner {
		// the last OWNER cannot be demoted or removed
	}
*/
package rosterapi
