package service_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/inkwell/internal/blog/domain"
	"github.com/aussiebroadwan/inkwell/internal/blog/service"
	"github.com/aussiebroadwan/inkwell/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestTokenService_RoundTripAndExpiry(t *testing.T) {
	f := newFixture(t)
	roles := domain.Roles{IsStaff: true, IsSuperuser: true}

	tok, err := f.tokens.Issue("alice", roles, 10*time.Minute)
	require.NoError(t, err)

	f.clk.Advance(10*time.Minute - time.Second)
	sub, got, err := f.tokens.Validate(tok)
	require.NoError(t, err)
	require.Equal(t, "alice", sub)
	require.Equal(t, roles, got)

	f.clk.Advance(time.Second)
	_, _, err = f.tokens.Validate(tok)
	require.ErrorIs(t, err, service.ErrInvalidToken)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestTokenService_FractionalIssueTime(t *testing.T) {
	f := newFixture(t)
	f.clk.now = f.clk.now.Add(900 * time.Millisecond)

	tok, err := f.tokens.Issue("alice", domain.Roles{}, 10*time.Minute)
	require.NoError(t, err)

	f.clk.Advance(10*time.Minute - 500*time.Millisecond)
	_, _, err = f.tokens.Validate(tok)
	require.NoError(t, err, "valid until issue time + ttl")

	f.clk.Advance(600 * time.Millisecond)
	_, _, err = f.tokens.Validate(tok)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestTokenService_DefaultTTL(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, 30*time.Minute, f.tokens.TTL())

	tok, err := f.tokens.Issue("alice", domain.Roles{}, 0)
	require.NoError(t, err)

	f.clk.Advance(30 * time.Minute)
	_, _, err = f.tokens.Validate(tok)
	require.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestTokenService_RejectsForeignTokens(t *testing.T) {
	f := newFixture(t)

	other, err := service.NewTokenService([]byte("another-secret-another-secret-32b"), "inkwell-test", 0, f.clk.Now)
	require.NoError(t, err)
	foreign, err := other.Issue("alice", domain.Roles{IsOwner: true}, 0)
	require.NoError(t, err)

	wrongIssuer, err := service.NewTokenService(testSecret, "someone-else", 0, f.clk.Now)
	require.NoError(t, err)
	misissued, err := wrongIssuer.Issue("alice", domain.Roles{}, 0)
	require.NoError(t, err)

	for name, tok := range map[string]string{
		"foreign secret": foreign,
		"wrong issuer":   misissued,
		"garbage":        "not.a.token",
		"empty":          "",
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := f.tokens.Validate(tok)
			require.ErrorIs(t, err, service.ErrInvalidToken)
		})
	}
}

func TestNewTokenService_WeakSecret(t *testing.T) {
	_, err := service.NewTokenService([]byte("short"), "", 0, nil)
	require.ErrorIs(t, err, jwtx.ErrWeakSecret)
}
