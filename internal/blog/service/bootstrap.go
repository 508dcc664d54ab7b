package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/inkwell/internal/blog/domain"
	"github.com/aussiebroadwan/inkwell/internal/blog/store"
	"github.com/aussiebroadwan/inkwell/pkg/blogsdk"
	"github.com/aussiebroadwan/inkwell/pkg/cryptox"
	"github.com/aussiebroadwan/inkwell/pkg/slogx"
)

var (
	ErrBootstrapDisabled     = &Error{Kind: KindNotFound, Code: "bootstrap_disabled", Message: "bootstrap endpoint is not enabled"}
	ErrBootstrapUnauthorized = &Error{Kind: KindUnauthenticated, Code: "bootstrap_unauthorized", Message: "invalid bootstrap token"}
	ErrBootstrapAlready      = &Error{Kind: KindConflict, Code: "already_bootstrapped", Message: "system has already been bootstrapped"}
)

// BootstrapService mints the first owner. It is the only way an owner comes
// into existence without an existing owner promoting someone.
type BootstrapService struct {
	Store store.Store
	Token string // empty disables bootstrap
}

func (s *BootstrapService) Enabled() bool { return s.Token != "" }

func (s *BootstrapService) IsBootstrapped(ctx context.Context) (bool, error) {
	empty, err := s.Store.Accounts().IsEmpty(ctx)
	if err != nil {
		return false, err
	}
	return !empty, nil
}

// Bootstrap creates an owner with every role flag set, provided token
// matches and no account exists yet.
func (s *BootstrapService) Bootstrap(ctx context.Context, token string, req blogsdk.BootstrapRequest) (domain.Account, error) {
	l := slogx.FromContext(ctx)

	if !s.Enabled() {
		return domain.Account{}, ErrBootstrapDisabled
	}
	if !cryptox.TokensEqual(token, s.Token) {
		l.Warn("unauthorized bootstrap attempt")
		return domain.Account{}, ErrBootstrapUnauthorized
	}
	if errs := req.Validate(); errs != nil {
		return domain.Account{}, Invalid("validation failed", errs)
	}

	hash, err := cryptox.HashPassword(req.Password)
	if err != nil {
		l.Error("failed to hash owner password", slog.Any("error", err))
		return domain.Account{}, err
	}

	var owner domain.Account
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		empty, err := tx.Accounts().IsEmpty(ctx)
		if err != nil {
			return err
		}
		if !empty {
			return ErrBootstrapAlready
		}

		owner, err = tx.Accounts().CreateAccount(ctx, domain.Account{
			Username:     req.Username,
			Email:        optional(req.Email),
			PasswordHash: hash,
			IsActive:     true,
			Roles:        domain.Roles{IsStaff: true, IsSuperuser: true, IsOwner: true},
		})
		return err
	})
	if err != nil {
		if errors.Is(err, ErrBootstrapAlready) {
			l.Warn("attempted bootstrap on already-bootstrapped system")
		}
		return domain.Account{}, translate(err)
	}

	l.Info("successfully bootstrapped system", slog.Int64("owner_id", owner.ID))
	return owner, nil
}
