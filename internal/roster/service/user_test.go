package service

import (
	"context"
	"testing"
	"time"

	"github.com/rosterhq/roster/internal/roster/domain"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an account with no memberships", func(t *testing.T) {
		st := newTestStore(t)
		svc := &UserService{Store: st}

		user, err := svc.Register(ctx, "alice@acme.test", "Alice", "a-long-password")
		require.NoError(t, err)
		require.NotEmpty(t, user.ID)
		require.Empty(t, user.ActiveCompanyID)

		profile, err := svc.GetProfile(ctx, user.ID)
		require.NoError(t, err)
		require.Empty(t, profile.Memberships)
	})

	t.Run("email is normalized", func(t *testing.T) {
		st := newTestStore(t)
		svc := &UserService{Store: st}

		user, err := svc.Register(ctx, "  Alice@Acme.TEST ", "Alice", "a-long-password")
		require.NoError(t, err)
		require.Equal(t, "alice@acme.test", user.Email)
	})

	t.Run("duplicate email", func(t *testing.T) {
		st := newTestStore(t)
		svc := &UserService{Store: st}

		_, err := svc.Register(ctx, "alice@acme.test", "Alice", "a-long-password")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "Alice@acme.test", "Other Alice", "a-long-password")
		require.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		st := newTestStore(t)
		svc := &UserService{Store: st}

		_, err := svc.Register(ctx, "not-an-email", "Alice", "a-long-password")
		require.ErrorIs(t, err, ErrInvalidEmail)

		_, err = svc.Register(ctx, "alice@acme.test", "  ", "a-long-password")
		require.ErrorIs(t, err, ErrInvalidName)

		_, err = svc.Register(ctx, "alice@acme.test", "Alice", "short")
		require.ErrorIs(t, err, ErrWeakPassword)
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()

	st := newTestStore(t)
	svc := &UserService{Store: st}

	registered, err := svc.Register(ctx, "alice@acme.test", "Alice", "a-long-password")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Authenticate(ctx, "Alice@Acme.test", "a-long-password")
		require.NoError(t, err)
		require.Equal(t, registered.ID, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "alice@acme.test", "wrong-password")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email looks identical to wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "nobody@acme.test", "a-long-password")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("malformed stored hash looks identical to wrong password", func(t *testing.T) {
		broken := seedUser(t, st, "broken@acme.test", "Broken")

		_, err := svc.Authenticate(ctx, broken.Email, "a-long-password")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()

	st := newTestStore(t)
	svc := &UserService{Store: st}

	user := seedUser(t, st, "alice@acme.test", "Alice")
	first := seedCompany(t, st, "Acme")
	second := seedCompany(t, st, "Globex")
	seedMembership(t, st, user.ID, first.ID, domain.RoleOwner)
	seedMembership(t, st, user.ID, second.ID, domain.RoleMember)

	t.Run("returns memberships with companies", func(t *testing.T) {
		profile, err := svc.GetProfile(ctx, user.ID)
		require.NoError(t, err)
		require.Equal(t, user.Email, profile.Email)
		require.Len(t, profile.Memberships, 2)
		require.Equal(t, "Globex", profile.Memberships[0].Company.Name)
		require.Equal(t, domain.RoleMember, profile.Memberships[0].Role)
		require.Equal(t, "Acme", profile.Memberships[1].Company.Name)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.GetProfile(ctx, "nope")
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestHousekeepingCleanup(t *testing.T) {
	ctx := context.Background()

	st := newTestStore(t)
	company := seedCompany(t, st, "Acme")

	stale := seedInvite(t, st, company.ID, "stale@acme.test", domain.RoleMember, time.Now().Add(-time.Hour))
	pending := seedInvite(t, st, company.ID, "pending@acme.test", domain.RoleMember, time.Now().Add(time.Hour))
	used := seedInvite(t, st, company.ID, "used@acme.test", domain.RoleMember, time.Now().Add(-time.Hour))
	require.NoError(t, st.Invites().MarkInviteUsed(ctx, used.Token))

	svc := NewHousekeepingService(st, testLogger(), time.Hour)
	svc.cleanup()

	// Expired and unaccepted: gone.
	_, err := st.Invites().GetInviteByToken(ctx, stale.Token)
	require.Error(t, err)

	// Pending: kept.
	_, err = st.Invites().GetInviteByToken(ctx, pending.Token)
	require.NoError(t, err)

	// Used: kept as an acceptance record even though past expiry.
	got, err := st.Invites().GetInviteByToken(ctx, used.Token)
	require.NoError(t, err)
	require.True(t, got.Used)
}
