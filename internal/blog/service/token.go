package service

import (
	"fmt"
	"time"

	"github.com/aussiebroadwan/inkwell/internal/blog/domain"
	"github.com/aussiebroadwan/inkwell/pkg/jwtx"
)

// TokenService issues and validates access tokens signed with a single
// process-wide secret. Replacing the secret invalidates every token issued
// before.
type TokenService struct {
	signer   jwtx.Signer
	verifier jwtx.Verifier
	issuer   string
	ttl      time.Duration
	now      func() time.Time
}

// NewTokenService creates a TokenService. A zero ttl uses
// jwtx.DefaultAccessTokenTTL and a nil now uses time.Now.
func NewTokenService(secret []byte, issuer string, ttl time.Duration, now func() time.Time) (*TokenService, error) {
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}
	if now == nil {
		now = time.Now
	}

	signer, err := jwtx.NewSignerHS256(secret)
	if err != nil {
		return nil, err
	}
	verifier, err := jwtx.NewVerifierHS256(secret, jwtx.VerifyOptions{Issuer: issuer, Now: now})
	if err != nil {
		return nil, err
	}

	return &TokenService{signer: signer, verifier: verifier, issuer: issuer, ttl: ttl, now: now}, nil
}

// TTL is the lifetime of tokens issued with a zero ttl.
func (s *TokenService) TTL() time.Duration { return s.ttl }

// Issue signs a token for subject carrying roles, valid for ttl from now.
func (s *TokenService) Issue(subject string, roles domain.Roles, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.ttl
	}
	claims := jwtx.NewAccessClaims(subject, toRoleClaims(roles), ttl, s.issuer, s.now())
	tok, err := s.signer.Sign(claims)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return tok, nil
}

// Validate returns the subject and role claims of a token. Every failure
// matches ErrInvalidToken and wraps the jwtx cause.
func (s *TokenService) Validate(token string) (string, domain.Roles, error) {
	claims, err := s.verifier.Verify(token)
	if err != nil {
		return "", domain.Roles{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return claims.Subject, fromRoleClaims(claims.RoleClaims), nil
}

func toRoleClaims(r domain.Roles) jwtx.RoleClaims {
	return jwtx.RoleClaims{IsStaff: r.IsStaff, IsSuperuser: r.IsSuperuser, IsOwner: r.IsOwner}
}

func fromRoleClaims(c jwtx.RoleClaims) domain.Roles {
	return domain.Roles{IsStaff: c.IsStaff, IsSuperuser: c.IsSuperuser, IsOwner: c.IsOwner}
}
