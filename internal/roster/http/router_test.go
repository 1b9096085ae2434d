package http_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	rosterhttp "github.com/rosterhq/roster/internal/roster/http"
	"github.com/rosterhq/roster/internal/roster/service"
	"github.com/rosterhq/roster/internal/roster/store/drivers/sqlite"
	"github.com/rosterhq/roster/pkg/cryptox"
	"github.com/rosterhq/roster/pkg/httpx"
	"github.com/rosterhq/roster/pkg/jwtx"
	"github.com/rosterhq/roster/pkg/rosterapi"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "roster-http-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	// The whole suite runs from one address, so the per-IP budgets
	// need headroom or later tests would start seeing 429s.
	generous := httpx.RateLimitConfig{
		RequestsPerWindow: 10000,
		Window:            time.Minute,
		Burst:             10000,
	}
	httpx.StrictLimit = generous
	httpx.ModerateLimit = generous
	httpx.LenientLimit = generous

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	tokens := jwtx.NewHS256([]byte("test-secret-0123456789abcdef0123"), "roster-test")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := rosterhttp.NewRouter(tokens, tokens, "roster-test", time.Hour, "test", st, logger)
	router.UserService = &service.UserService{Store: st}
	router.CompanyService = &service.CompanyService{Store: st}
	router.MembershipService = &service.MembershipService{Store: st}
	router.InviteService = &service.InviteService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

// signup registers an account through the API and returns a client
// already holding its session token.
func signup(t *testing.T, srv *httptest.Server, email, name string) *rosterapi.Client {
	t.Helper()

	c := rosterapi.NewClient(srv.URL)
	resp, err := c.Signup(context.Background(), rosterapi.SignupRequest{
		Email:    email,
		Name:     name,
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	require.Equal(t, "Bearer", resp.TokenType)
	return c
}

func requireAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()

	var apiErr *rosterapi.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t)
	c := rosterapi.NewClient(srv.URL)
	ctx := context.Background()

	require.NoError(t, c.Livez(ctx))
	require.NoError(t, c.Readyz(ctx))
}

func TestSignupAndLogin(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	t.Run("signup starts a session", func(t *testing.T) {
		c := signup(t, srv, "ada@roster.test", "Ada Lovelace")

		profile, err := c.Me(ctx)
		require.NoError(t, err)
		require.Equal(t, "ada@roster.test", profile.Email)
		require.Equal(t, "Ada Lovelace", profile.Name)
		require.Empty(t, profile.Memberships)
	})

	t.Run("duplicate email is refused", func(t *testing.T) {
		c := rosterapi.NewClient(srv.URL)
		_, err := c.Signup(ctx, rosterapi.SignupRequest{
			Email:    "ada@roster.test",
			Name:     "Imposter",
			Password: "another password",
		})
		requireAPIError(t, err, http.StatusConflict, rosterapi.ErrorCodeAccountExists)
	})

	t.Run("login with correct credentials", func(t *testing.T) {
		c := rosterapi.NewClient(srv.URL)
		resp, err := c.Login(ctx, rosterapi.LoginRequest{
			Email:    "ada@roster.test",
			Password: "correct horse battery",
		})
		require.NoError(t, err)
		require.NotEmpty(t, resp.AccessToken)
		require.Equal(t, "ada@roster.test", resp.User.Email)
	})

	t.Run("login with wrong password", func(t *testing.T) {
		c := rosterapi.NewClient(srv.URL)
		_, err := c.Login(ctx, rosterapi.LoginRequest{
			Email:    "ada@roster.test",
			Password: "nope",
		})
		requireAPIError(t, err, http.StatusUnauthorized, rosterapi.ErrorCodeInvalidCredentials)
	})

	t.Run("short password is refused at signup", func(t *testing.T) {
		c := rosterapi.NewClient(srv.URL)
		_, err := c.Signup(ctx, rosterapi.SignupRequest{
			Email:    "short@roster.test",
			Name:     "Short",
			Password: "tiny",
		})
		requireAPIError(t, err, http.StatusBadRequest, rosterapi.ErrorCodeInvalidRequest)
	})

	t.Run("me requires a session", func(t *testing.T) {
		c := rosterapi.NewClient(srv.URL)
		_, err := c.Me(ctx)
		requireAPIError(t, err, http.StatusUnauthorized, rosterapi.ErrorCodeUnauthorized)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		c := rosterapi.NewClient(srv.URL)
		c.SetToken("not-a-jwt")
		_, err := c.Me(ctx)
		requireAPIError(t, err, http.StatusUnauthorized, rosterapi.ErrorCodeUnauthorized)
	})
}

func TestCompanyLifecycle(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	owner := signup(t, srv, "owner@roster.test", "Owner")

	company, err := owner.CreateCompany(ctx, rosterapi.CreateCompanyRequest{
		Name:    "Acme",
		LogoURL: "https://acme.test/logo.png",
	})
	require.NoError(t, err)
	require.Equal(t, "Acme", company.Name)

	t.Run("first company becomes the active one", func(t *testing.T) {
		profile, err := owner.Me(ctx)
		require.NoError(t, err)
		require.Equal(t, company.ID, profile.ActiveCompanyID)
		require.Len(t, profile.Memberships, 1)
		require.Equal(t, "OWNER", profile.Memberships[0].Role)
		require.Equal(t, "Acme", profile.Memberships[0].Company.Name)
	})

	t.Run("listing shows the caller's role", func(t *testing.T) {
		list, err := owner.ListCompanies(ctx, 0, 0)
		require.NoError(t, err)
		require.Len(t, list.Companies, 1)
		require.Equal(t, "Acme", list.Companies[0].Name)
		require.Equal(t, "OWNER", list.Companies[0].Role)
		require.Equal(t, 1, list.Page.Total)
	})

	t.Run("outsiders cannot read a company", func(t *testing.T) {
		stranger := signup(t, srv, "stranger@roster.test", "Stranger")
		_, err := stranger.GetCompany(ctx, company.ID)
		requireAPIError(t, err, http.StatusForbidden, rosterapi.ErrorCodeNotMember)
	})

	t.Run("blank name is refused", func(t *testing.T) {
		_, err := owner.CreateCompany(ctx, rosterapi.CreateCompanyRequest{Name: "   "})
		requireAPIError(t, err, http.StatusBadRequest, rosterapi.ErrorCodeInvalidRequest)
	})

	t.Run("switching the active company", func(t *testing.T) {
		second, err := owner.CreateCompany(ctx, rosterapi.CreateCompanyRequest{Name: "Globex"})
		require.NoError(t, err)

		user, err := owner.SelectActiveCompany(ctx, second.ID)
		require.NoError(t, err)
		require.Equal(t, second.ID, user.ActiveCompanyID)

		user, err = owner.SelectActiveCompany(ctx, company.ID)
		require.NoError(t, err)
		require.Equal(t, company.ID, user.ActiveCompanyID)
	})

	t.Run("cannot select a company one does not belong to", func(t *testing.T) {
		stranger := signup(t, srv, "outcast@roster.test", "Outcast")
		_, err := stranger.SelectActiveCompany(ctx, company.ID)
		requireAPIError(t, err, http.StatusForbidden, rosterapi.ErrorCodeNotMember)
	})
}

func TestInviteFlow(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	owner := signup(t, srv, "boss@roster.test", "Boss")
	company, err := owner.CreateCompany(ctx, rosterapi.CreateCompanyRequest{Name: "Acme"})
	require.NoError(t, err)

	invite, err := owner.CreateInvite(ctx, company.ID, rosterapi.CreateInviteRequest{
		Email: "new@roster.test",
		Role:  "MEMBER",
	})
	require.NoError(t, err)
	require.NotEmpty(t, invite.Token)
	require.Equal(t, "new@roster.test", invite.Email)
	require.False(t, invite.Used)

	t.Run("preview is public and scoped", func(t *testing.T) {
		anon := rosterapi.NewClient(srv.URL)
		preview, err := anon.GetInvite(ctx, invite.Token)
		require.NoError(t, err)
		require.Equal(t, "new@roster.test", preview.Email)
		require.Equal(t, "MEMBER", preview.Role)
		require.Equal(t, "Acme", preview.Company.Name)
		require.Greater(t, preview.ExpiresAt, time.Now().Unix())
	})

	t.Run("unknown token previews as not found", func(t *testing.T) {
		anon := rosterapi.NewClient(srv.URL)
		_, err := anon.GetInvite(ctx, "does-not-exist")
		requireAPIError(t, err, http.StatusNotFound, rosterapi.ErrorCodeNotFound)
	})

	t.Run("anonymous acceptance creates an account and session", func(t *testing.T) {
		anon := rosterapi.NewClient(srv.URL)
		resp, err := anon.AcceptInvite(ctx, invite.Token, rosterapi.AcceptInviteRequest{
			Name:     "New Hire",
			Password: "a fine password",
		})
		require.NoError(t, err)
		require.NotEmpty(t, resp.AccessToken)
		require.Equal(t, "new@roster.test", resp.User.Email)
		require.Equal(t, "Acme", resp.Company.Name)

		// The response token is a working session
		profile, err := anon.Me(ctx)
		require.NoError(t, err)
		require.Equal(t, "new@roster.test", profile.Email)
		require.Equal(t, company.ID, profile.ActiveCompanyID)
		require.Len(t, profile.Memberships, 1)
		require.Equal(t, "MEMBER", profile.Memberships[0].Role)
	})

	t.Run("a used token cannot be redeemed again", func(t *testing.T) {
		anon := rosterapi.NewClient(srv.URL)
		_, err := anon.AcceptInvite(ctx, invite.Token, rosterapi.AcceptInviteRequest{
			Name:     "Someone Else",
			Password: "a fine password",
		})
		requireAPIError(t, err, http.StatusGone, rosterapi.ErrorCodeInviteUsed)
	})

	t.Run("used token previews as expired", func(t *testing.T) {
		anon := rosterapi.NewClient(srv.URL)
		_, err := anon.GetInvite(ctx, invite.Token)
		requireAPIError(t, err, http.StatusGone, rosterapi.ErrorCodeInviteExpired)
	})

	t.Run("members see each other ranked by authority", func(t *testing.T) {
		members, err := owner.ListMembers(ctx, company.ID, 0, 0)
		require.NoError(t, err)
		require.Len(t, members.Members, 2)
		require.Equal(t, "OWNER", members.Members[0].Role)
		require.Equal(t, "boss@roster.test", members.Members[0].User.Email)
		require.Equal(t, "MEMBER", members.Members[1].Role)
		require.Equal(t, "new@roster.test", members.Members[1].User.Email)
	})

	t.Run("plain members cannot invite", func(t *testing.T) {
		member := rosterapi.NewClient(srv.URL)
		_, err := member.Login(ctx, rosterapi.LoginRequest{
			Email:    "new@roster.test",
			Password: "a fine password",
		})
		require.NoError(t, err)

		_, err = member.CreateInvite(ctx, company.ID, rosterapi.CreateInviteRequest{
			Email: "friend@roster.test",
			Role:  "MEMBER",
		})
		requireAPIError(t, err, http.StatusForbidden, rosterapi.ErrorCodeForbidden)
	})

	t.Run("one active invite per email per company", func(t *testing.T) {
		_, err := owner.CreateInvite(ctx, company.ID, rosterapi.CreateInviteRequest{
			Email: "pending@roster.test",
			Role:  "MEMBER",
		})
		require.NoError(t, err)

		_, err = owner.CreateInvite(ctx, company.ID, rosterapi.CreateInviteRequest{
			Email: "pending@roster.test",
			Role:  "ADMIN",
		})
		requireAPIError(t, err, http.StatusConflict, rosterapi.ErrorCodeDuplicateInvite)
	})

	t.Run("cancelling frees the slot", func(t *testing.T) {
		inv, err := owner.CreateInvite(ctx, company.ID, rosterapi.CreateInviteRequest{
			Email: "revoked@roster.test",
			Role:  "MEMBER",
		})
		require.NoError(t, err)

		require.NoError(t, owner.CancelInvite(ctx, company.ID, inv.Token))

		anon := rosterapi.NewClient(srv.URL)
		_, err = anon.GetInvite(ctx, inv.Token)
		requireAPIError(t, err, http.StatusNotFound, rosterapi.ErrorCodeNotFound)

		_, err = owner.CreateInvite(ctx, company.ID, rosterapi.CreateInviteRequest{
			Email: "revoked@roster.test",
			Role:  "MEMBER",
		})
		require.NoError(t, err)
	})

	t.Run("staff can list pending invites", func(t *testing.T) {
		list, err := owner.ListInvites(ctx, company.ID, 0, 0)
		require.NoError(t, err)
		require.NotEmpty(t, list.Invites)
		require.Equal(t, list.Page.Total, len(list.Invites))
	})

	t.Run("invite endpoints require a session", func(t *testing.T) {
		anon := rosterapi.NewClient(srv.URL)
		_, err := anon.CreateInvite(ctx, company.ID, rosterapi.CreateInviteRequest{
			Email: "x@roster.test",
			Role:  "MEMBER",
		})
		requireAPIError(t, err, http.StatusUnauthorized, rosterapi.ErrorCodeUnauthorized)
	})
}

func TestExistingUserAcceptsInvite(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	owner := signup(t, srv, "owner@roster.test", "Owner")
	company, err := owner.CreateCompany(ctx, rosterapi.CreateCompanyRequest{Name: "Acme"})
	require.NoError(t, err)

	existing := signup(t, srv, "joiner@roster.test", "Joiner")

	invite, err := owner.CreateInvite(ctx, company.ID, rosterapi.CreateInviteRequest{
		Email: "Joiner@Roster.TEST", // differs only by case from the account
		Role:  "ADMIN",
	})
	require.NoError(t, err)

	t.Run("token is bound to the invited email", func(t *testing.T) {
		imposter := signup(t, srv, "imposter@roster.test", "Imposter")
		_, err := imposter.AcceptInvite(ctx, invite.Token, rosterapi.AcceptInviteRequest{})
		requireAPIError(t, err, http.StatusForbidden, rosterapi.ErrorCodeEmailMismatch)
	})

	t.Run("invited account joins without a new signup", func(t *testing.T) {
		resp, err := existing.AcceptInvite(ctx, invite.Token, rosterapi.AcceptInviteRequest{})
		require.NoError(t, err)
		require.Empty(t, resp.AccessToken, "existing sessions get no new token")
		require.Equal(t, "joiner@roster.test", resp.User.Email)
		require.Equal(t, company.ID, resp.Company.ID)

		profile, err := existing.Me(ctx)
		require.NoError(t, err)
		require.Len(t, profile.Memberships, 1)
		require.Equal(t, "ADMIN", profile.Memberships[0].Role)
		require.Equal(t, company.ID, profile.ActiveCompanyID)
	})

	t.Run("a member cannot be invited twice", func(t *testing.T) {
		invite2, err := owner.CreateInvite(ctx, company.ID, rosterapi.CreateInviteRequest{
			Email: "joiner@roster.test",
			Role:  "MEMBER",
		})
		require.NoError(t, err)

		_, err = existing.AcceptInvite(ctx, invite2.Token, rosterapi.AcceptInviteRequest{})
		requireAPIError(t, err, http.StatusConflict, rosterapi.ErrorCodeAlreadyMember)
	})

	t.Run("an existing email cannot accept anonymously", func(t *testing.T) {
		// Courtesy 409 so the UI can redirect to login instead of
		// minting a duplicate account.
		inv, err := owner.CreateInvite(ctx, company.ID, rosterapi.CreateInviteRequest{
			Email: "imposter@roster.test",
			Role:  "MEMBER",
		})
		require.NoError(t, err)

		anon := rosterapi.NewClient(srv.URL)
		_, err = anon.AcceptInvite(ctx, inv.Token, rosterapi.AcceptInviteRequest{
			Name:     "Imposter Again",
			Password: "some password",
		})
		requireAPIError(t, err, http.StatusConflict, rosterapi.ErrorCodeAccountExists)
	})

	t.Run("anonymous acceptance needs name and password", func(t *testing.T) {
		inv, err := owner.CreateInvite(ctx, company.ID, rosterapi.CreateInviteRequest{
			Email: "blank@roster.test",
			Role:  "MEMBER",
		})
		require.NoError(t, err)

		anon := rosterapi.NewClient(srv.URL)
		_, err = anon.AcceptInvite(ctx, inv.Token, rosterapi.AcceptInviteRequest{})
		requireAPIError(t, err, http.StatusBadRequest, rosterapi.ErrorCodeInvalidRequest)
	})

	t.Run("a bad bearer token is not treated as anonymous", func(t *testing.T) {
		inv, err := owner.CreateInvite(ctx, company.ID, rosterapi.CreateInviteRequest{
			Email: "ghost@roster.test",
			Role:  "MEMBER",
		})
		require.NoError(t, err)

		bad := rosterapi.NewClient(srv.URL)
		bad.SetToken("expired-or-garbage")
		_, err = bad.AcceptInvite(ctx, inv.Token, rosterapi.AcceptInviteRequest{
			Name:     "Ghost",
			Password: "some password",
		})
		requireAPIError(t, err, http.StatusUnauthorized, rosterapi.ErrorCodeUnauthorized)
	})
}

func TestRoleManagement(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	owner := signup(t, srv, "owner@roster.test", "Owner")
	company, err := owner.CreateCompany(ctx, rosterapi.CreateCompanyRequest{Name: "Acme"})
	require.NoError(t, err)

	// Bring in a member through the invite flow
	invite, err := owner.CreateInvite(ctx, company.ID, rosterapi.CreateInviteRequest{
		Email: "worker@roster.test",
		Role:  "MEMBER",
	})
	require.NoError(t, err)

	worker := rosterapi.NewClient(srv.URL)
	_, err = worker.AcceptInvite(ctx, invite.Token, rosterapi.AcceptInviteRequest{
		Name:     "Worker",
		Password: "a fine password",
	})
	require.NoError(t, err)

	findMembership := func(t *testing.T, email string) rosterapi.Member {
		t.Helper()
		members, err := owner.ListMembers(ctx, company.ID, 0, 0)
		require.NoError(t, err)
		for _, m := range members.Members {
			if m.User.Email == email {
				return m
			}
		}
		t.Fatalf("no membership for %s", email)
		return rosterapi.Member{}
	}

	workerMembership := findMembership(t, "worker@roster.test")
	ownerMembership := findMembership(t, "owner@roster.test")

	t.Run("owner promotes a member", func(t *testing.T) {
		updated, err := owner.UpdateMemberRole(ctx, workerMembership.ID, "ADMIN")
		require.NoError(t, err)
		require.Equal(t, "ADMIN", updated.Role)

		require.Equal(t, "ADMIN", findMembership(t, "worker@roster.test").Role)
	})

	t.Run("own role is off limits", func(t *testing.T) {
		_, err := owner.UpdateMemberRole(ctx, ownerMembership.ID, "MEMBER")
		requireAPIError(t, err, http.StatusForbidden, rosterapi.ErrorCodeSelfAction)
	})

	t.Run("admins cannot touch the owner", func(t *testing.T) {
		_, err := worker.UpdateMemberRole(ctx, ownerMembership.ID, "MEMBER")
		requireAPIError(t, err, http.StatusForbidden, rosterapi.ErrorCodeForbidden)

		err = worker.RemoveMember(ctx, ownerMembership.ID)
		requireAPIError(t, err, http.StatusForbidden, rosterapi.ErrorCodeForbidden)
	})

	t.Run("unknown role is refused", func(t *testing.T) {
		_, err := owner.UpdateMemberRole(ctx, workerMembership.ID, "SUPERUSER")
		requireAPIError(t, err, http.StatusBadRequest, rosterapi.ErrorCodeInvalidRequest)
	})

	t.Run("unknown membership is not found", func(t *testing.T) {
		_, err := owner.UpdateMemberRole(ctx, "01XXXXXXXXXXXXXXXXXXXXXXXX", "ADMIN")
		requireAPIError(t, err, http.StatusNotFound, rosterapi.ErrorCodeNotFound)
	})

	t.Run("owner removes a member", func(t *testing.T) {
		require.NoError(t, owner.RemoveMember(ctx, workerMembership.ID))

		members, err := owner.ListMembers(ctx, company.ID, 0, 0)
		require.NoError(t, err)
		require.Len(t, members.Members, 1)
		require.Equal(t, "owner@roster.test", members.Members[0].User.Email)

		// The removed member is now an outsider
		_, err = worker.ListMembers(ctx, company.ID, 0, 0)
		requireAPIError(t, err, http.StatusForbidden, rosterapi.ErrorCodeNotMember)
	})

	t.Run("membership endpoints require a session", func(t *testing.T) {
		anon := rosterapi.NewClient(srv.URL)
		_, err := anon.ListMembers(ctx, company.ID, 0, 0)
		requireAPIError(t, err, http.StatusUnauthorized, rosterapi.ErrorCodeUnauthorized)

		err = anon.RemoveMember(ctx, ownerMembership.ID)
		requireAPIError(t, err, http.StatusUnauthorized, rosterapi.ErrorCodeUnauthorized)
	})
}

func TestMemberListPagination(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	owner := signup(t, srv, "owner@roster.test", "Owner")
	company, err := owner.CreateCompany(ctx, rosterapi.CreateCompanyRequest{Name: "Acme"})
	require.NoError(t, err)

	emails := []string{"a@roster.test", "b@roster.test", "c@roster.test"}
	for _, email := range emails {
		inv, err := owner.CreateInvite(ctx, company.ID, rosterapi.CreateInviteRequest{
			Email: email,
			Role:  "MEMBER",
		})
		require.NoError(t, err)

		anon := rosterapi.NewClient(srv.URL)
		_, err = anon.AcceptInvite(ctx, inv.Token, rosterapi.AcceptInviteRequest{
			Name:     "Member " + email,
			Password: "a fine password",
		})
		require.NoError(t, err)
	}

	page1, err := owner.ListMembers(ctx, company.ID, 1, 2)
	require.NoError(t, err)
	require.Len(t, page1.Members, 2)
	require.Equal(t, 4, page1.Page.Total)
	require.Equal(t, 2, page1.Page.TotalPages)
	require.Equal(t, "owner@roster.test", page1.Members[0].User.Email)

	page2, err := owner.ListMembers(ctx, company.ID, 2, 2)
	require.NoError(t, err)
	require.Len(t, page2.Members, 2)
	require.Equal(t, 2, page2.Page.Page)
}
