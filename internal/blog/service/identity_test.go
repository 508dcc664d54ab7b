package service_test

import (
	"testing"

	"github.com/aussiebroadwan/inkwell/internal/blog/domain"
	"github.com/aussiebroadwan/inkwell/internal/blog/service"
	"github.com/aussiebroadwan/inkwell/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestIdentityResolver_Resolve(t *testing.T) {
	f := newFixture(t)
	alice := f.seed(t, "alice", staffRoles)

	tok, err := f.tokens.Issue("alice", alice.Roles, 0)
	require.NoError(t, err)

	got, err := f.resolver.Resolve(f.ctx, tok)
	require.NoError(t, err)
	require.Equal(t, alice.ID, got.ID)
}

func TestIdentityResolver_UsesStoredFlags(t *testing.T) {
	f := newFixture(t)
	alice := f.seed(t, "alice", normalRoles)

	// Claims say owner; the stored account is normal.
	tok, err := f.tokens.Issue("alice", domain.Roles{IsOwner: true}, 0)
	require.NoError(t, err)

	got, err := f.resolver.Resolve(f.ctx, tok)
	require.NoError(t, err)
	require.Equal(t, alice.Roles, got.Roles)
	require.Equal(t, domain.TierNormal, got.Tier())
}

func TestIdentityResolver_FailsClosed(t *testing.T) {
	f := newFixture(t)
	gone := f.seed(t, "gone", normalRoles)
	f.seed(t, "sleepy", normalRoles, func(a *domain.Account) { a.IsActive = false })

	goneTok, err := f.tokens.Issue("gone", gone.Roles, 0)
	require.NoError(t, err)
	require.NoError(t, f.store.Accounts().DeleteAccount(f.ctx, gone.ID))

	sleepyTok, err := f.tokens.Issue("sleepy", normalRoles, 0)
	require.NoError(t, err)

	for name, tok := range map[string]string{
		"deleted subject":  goneTok,
		"inactive account": sleepyTok,
		"malformed":        "abc",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := f.resolver.Resolve(f.ctx, tok)
			require.ErrorIs(t, err, service.ErrUnauthenticated)
		})
	}
}

func TestIdentityResolver_Authenticate(t *testing.T) {
	f := newFixture(t)
	alice := f.seed(t, "alice", staffRoles)
	tok, err := f.tokens.Issue("alice", alice.Roles, 0)
	require.NoError(t, err)

	ctx, err := f.resolver.Authenticate(f.ctx, tok)
	require.NoError(t, err)

	caller, ok := service.CallerFromContext(ctx)
	require.True(t, ok)
	require.Equal(t, alice.ID, caller.ID)

	uid, ok := httpx.UserIDFromContext(ctx)
	require.True(t, ok)
	require.Equal(t, "1", uid)
}
