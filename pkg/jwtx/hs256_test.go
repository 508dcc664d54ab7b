package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/inkwell/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func newPair(t *testing.T, secret []byte, issuer string, clk *clock) (*jwtx.HS256Signer, *jwtx.HS256Verifier) {
	t.Helper()
	s, err := jwtx.NewSignerHS256(secret)
	require.NoError(t, err)
	v, err := jwtx.NewVerifierHS256(secret, jwtx.VerifyOptions{Issuer: issuer, Now: clk.Now})
	require.NoError(t, err)
	return s, v
}

func TestHS256_RoundTrip(t *testing.T) {
	clk := &clock{now: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)}
	signer, verifier := newPair(t, testSecret, "inkwell", clk)
	require.Equal(t, "HS256", signer.Alg())

	roles := jwtx.RoleClaims{IsStaff: true, IsOwner: true}
	token, err := signer.Sign(jwtx.NewAccessClaims("alice", roles, 30*time.Minute, "inkwell", clk.now))
	require.NoError(t, err)
	require.Len(t, strings.Split(token, "."), 3)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "alice", got.Subject)
	require.Equal(t, roles, got.RoleClaims)
	require.Equal(t, clk.now.Add(30*time.Minute), got.ExpiresAt.Time)
}

func TestHS256_ExpiryBoundary(t *testing.T) {
	issued := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	clk := &clock{now: issued}
	signer, verifier := newPair(t, testSecret, "", clk)

	token, err := signer.Sign(jwtx.NewAccessClaims("alice", jwtx.RoleClaims{}, time.Minute, "", issued))
	require.NoError(t, err)

	clk.now = issued.Add(time.Minute - time.Second)
	_, err = verifier.Verify(token)
	require.NoError(t, err, "token is valid just before exp")

	clk.now = issued.Add(time.Minute)
	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrInvalidToken)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestHS256_Rejects(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	clk := &clock{now: now}
	signer, verifier := newPair(t, testSecret, "inkwell", clk)
	claims := jwtx.NewAccessClaims("alice", jwtx.RoleClaims{IsOwner: true}, time.Hour, "inkwell", now)

	good, err := signer.Sign(claims)
	require.NoError(t, err)

	otherSigner, err := jwtx.NewSignerHS256([]byte("ffffffffffffffffffffffffffffffff"))
	require.NoError(t, err)
	forged, err := otherSigner.Sign(claims)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	hs384, err := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString(testSecret)
	require.NoError(t, err)

	wrongIssuer, err := signer.Sign(jwtx.NewAccessClaims("alice", jwtx.RoleClaims{}, time.Hour, "elsewhere", now))
	require.NoError(t, err)

	noSubject, err := signer.Sign(jwtx.NewAccessClaims("", jwtx.RoleClaims{}, time.Hour, "inkwell", now))
	require.NoError(t, err)

	parts := strings.Split(good, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	tests := []struct {
		name  string
		token string
		cause error
	}{
		{"empty", "", jwtx.ErrMalformed},
		{"garbage", "not-a-jwt", jwtx.ErrMalformed},
		{"tampered payload", tampered, nil},
		{"foreign secret", forged, jwtx.ErrInvalidSig},
		{"alg none", none, nil},
		{"alg HS384", hs384, nil},
		{"wrong issuer", wrongIssuer, jwtx.ErrIssuer},
		{"missing subject", noSubject, jwtx.ErrInvalidClaim},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := verifier.Verify(tt.token)
			require.ErrorIs(t, err, jwtx.ErrInvalidToken)
			if tt.cause != nil {
				require.ErrorIs(t, err, tt.cause)
			}
		})
	}
}

func TestHS256_WeakSecret(t *testing.T) {
	_, err := jwtx.NewSignerHS256([]byte("short"))
	require.ErrorIs(t, err, jwtx.ErrWeakSecret)

	_, err = jwtx.NewVerifierHS256(nil, jwtx.VerifyOptions{})
	require.ErrorIs(t, err, jwtx.ErrWeakSecret)
}

func TestHS256_RefusesTokenWithoutExpiry(t *testing.T) {
	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)

	_, err = signer.Sign(jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "alice"}})
	require.Error(t, err)
}
