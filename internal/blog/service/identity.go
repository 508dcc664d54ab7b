package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/aussiebroadwan/inkwell/internal/blog/domain"
	"github.com/aussiebroadwan/inkwell/internal/blog/store"
	"github.com/aussiebroadwan/inkwell/pkg/httpx"
	"github.com/aussiebroadwan/inkwell/pkg/slogx"
)

// IdentityResolver turns a bearer token into the caller's current account.
// It fails closed: any doubt is ErrUnauthenticated.
type IdentityResolver struct {
	Tokens *TokenService
	Store  store.Store
}

// Resolve validates token and loads the account it names. The role claims in
// the token are ignored; the stored flags are authoritative.
func (r *IdentityResolver) Resolve(ctx context.Context, token string) (domain.Account, error) {
	subject, _, err := r.Tokens.Validate(token)
	if err != nil {
		return domain.Account{}, err
	}

	acct, err := r.Store.Accounts().GetAccountByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			slogx.FromContext(ctx).Info("token subject no longer exists", slog.String("username", subject))
			return domain.Account{}, ErrUnauthenticated
		}
		return domain.Account{}, err
	}
	if !acct.IsActive {
		slogx.FromContext(ctx).Info("token subject is inactive", slog.Int64("account_id", acct.ID))
		return domain.Account{}, ErrUnauthenticated
	}
	return acct, nil
}

// Authenticate adapts Resolve to httpx.Authenticator. The resolved account
// is stored on the context along with logging and rate limit keys.
func (r *IdentityResolver) Authenticate(ctx context.Context, token string) (context.Context, error) {
	acct, err := r.Resolve(ctx, token)
	if err != nil {
		return ctx, err
	}

	ctx = WithCaller(ctx, acct)
	ctx = httpx.WithUserID(ctx, strconv.FormatInt(acct.ID, 10))
	ctx = slogx.WithAttrs(ctx, slog.Int64("account_id", acct.ID), slog.String("username", acct.Username))
	return ctx, nil
}

type callerKey struct{}

// WithCaller records the authenticated account on ctx.
func WithCaller(ctx context.Context, a domain.Account) context.Context {
	return context.WithValue(ctx, callerKey{}, a)
}

// CallerFromContext returns the account set by WithCaller.
func CallerFromContext(ctx context.Context) (domain.Account, bool) {
	a, ok := ctx.Value(callerKey{}).(domain.Account)
	return a, ok
}
