package jwtx

import (
	"time"

	"github.com/aussiebroadwan/inkwell/pkg/idx"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is the default lifetime for access tokens.
const DefaultAccessTokenTTL = 30 * time.Minute

// RoleClaims carries the role flags of the subject at issue time. They are
// informational only: authorization always re-reads the account.
type RoleClaims struct {
	IsStaff     bool `json:"is_staff"`
	IsSuperuser bool `json:"is_superuser"`
	IsOwner     bool `json:"is_owner"`
}

// Claims are access-token claims. The subject is the account username.
type Claims struct {
	jwt.RegisteredClaims
	RoleClaims
}

// NewAccessClaims builds claims valid from now until now+ttl. NumericDates
// carry whole seconds, so exp is rounded up to keep the token valid for
// the full ttl.
func NewAccessClaims(subject string, roles RoleClaims, ttl time.Duration, issuer string, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(ceilSecond(now.Add(ttl))),
			ID:        NewJTI(now),
		},
		RoleClaims: roles,
	}
}

func ceilSecond(t time.Time) time.Time {
	if f := t.Truncate(time.Second); f.Before(t) {
		return f.Add(time.Second)
	}
	return t
}

// NewJTI returns a sortable unique identifier for the "jti" claim.
func NewJTI(now time.Time) string {
	return idx.NewAt(now).String()
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateExpiry checks exp and nbf against now. A token is expired from the
// instant now reaches exp.
func (c *Claims) ValidateExpiry(now time.Time) error {
	if c.ExpiresAt == nil {
		return ErrInvalidClaim
	}
	if !now.Before(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}
	return nil
}
