package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/inkwell/internal/blog/authz"
	"github.com/aussiebroadwan/inkwell/internal/blog/domain"
	"github.com/aussiebroadwan/inkwell/internal/blog/metrics"
	"github.com/aussiebroadwan/inkwell/internal/blog/store"
	"github.com/aussiebroadwan/inkwell/pkg/blogsdk"
	"github.com/aussiebroadwan/inkwell/pkg/cryptox"
	"github.com/aussiebroadwan/inkwell/pkg/slogx"
)

type AccountService struct {
	Store        store.Store
	Tokens       *TokenService
	AuthorPolicy domain.AuthorPolicy
	Metrics      metrics.Recorder
}

func (s *AccountService) recorder() metrics.Recorder {
	if s.Metrics == nil {
		return metrics.Noop{}
	}
	return s.Metrics
}

// decide records an access decision and converts a denial to ErrForbidden.
func (s *AccountService) decide(ctx context.Context, action string, allowed bool, caller domain.Account) error {
	s.recorder().RecordDecision(action, allowed)
	if allowed {
		return nil
	}
	slogx.FromContext(ctx).Info("access denied",
		slog.String("action", action),
		slog.Int64("caller_id", caller.ID),
		slog.String("caller_tier", caller.Tier().String()),
	)
	return ErrForbidden
}

// Signup creates a normal, active account. No caller is required.
func (s *AccountService) Signup(ctx context.Context, req blogsdk.CreateAccountRequest) (domain.Account, error) {
	return s.create(ctx, req, domain.Roles{})
}

// CreateStaff creates a staff account. Only superusers may do this.
func (s *AccountService) CreateStaff(ctx context.Context, caller domain.Account, req blogsdk.CreateAccountRequest) (domain.Account, error) {
	if err := s.decide(ctx, "account.create_staff", authz.CanCreateStaff(caller.Roles), caller); err != nil {
		return domain.Account{}, err
	}
	return s.create(ctx, req, domain.Roles{IsStaff: true})
}

// CreateSuperuser creates a superuser account. Only owners may do this.
func (s *AccountService) CreateSuperuser(ctx context.Context, caller domain.Account, req blogsdk.CreateAccountRequest) (domain.Account, error) {
	if err := s.decide(ctx, "account.create_superuser", authz.CanCreateSuperuser(caller.Roles), caller); err != nil {
		return domain.Account{}, err
	}
	return s.create(ctx, req, domain.Roles{IsStaff: true, IsSuperuser: true})
}

func (s *AccountService) create(ctx context.Context, req blogsdk.CreateAccountRequest, roles domain.Roles) (domain.Account, error) {
	l := slogx.FromContext(ctx)

	if errs := req.Validate(); errs != nil {
		return domain.Account{}, Invalid("validation failed", errs)
	}

	a := domain.Account{
		Username:    strings.TrimSpace(req.Username),
		Email:       optional(req.Email),
		PhoneNumber: optional(req.PhoneNumber),
		FirstName:   optional(req.FirstName),
		LastName:    optional(req.LastName),
		Gender:      req.Gender,
		Bio:         optional(req.Bio),
		IsActive:    true,
		Roles:       roles,
	}

	if err := s.checkUnique(ctx, store.AccountMatch{
		Username:    a.Username,
		Email:       a.Email,
		PhoneNumber: a.PhoneNumber,
	}); err != nil {
		return domain.Account{}, err
	}

	hash, err := cryptox.HashPassword(req.Password)
	if err != nil {
		l.Error("failed to hash password", slog.Any("error", err))
		return domain.Account{}, err
	}
	a.PasswordHash = hash

	created, err := s.Store.Accounts().CreateAccount(ctx, a)
	if err != nil {
		return domain.Account{}, translate(err)
	}

	s.recorder().RecordAccountCreated(created.Tier().String())
	l.Info("account created",
		slog.Int64("account_id", created.ID),
		slog.String("tier", created.Tier().String()),
	)
	return created, nil
}

// checkUnique reports the first conflicting field in priority order:
// username, then email, then phone number.
func (s *AccountService) checkUnique(ctx context.Context, m store.AccountMatch) error {
	if m.Username == "" && m.Email == nil && m.PhoneNumber == nil {
		return nil
	}

	found, err := s.Store.Accounts().FindFirstMatching(ctx, m)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	switch {
	case m.Username != "" && found.Username == m.Username:
		return ErrUsernameTaken
	case m.Email != nil && found.Email != nil && *found.Email == *m.Email:
		return ErrEmailTaken
	default:
		return ErrPhoneTaken
	}
}

// Get returns an account if the caller's clearance covers its tier.
func (s *AccountService) Get(ctx context.Context, caller domain.Account, id int64) (domain.Account, error) {
	target, err := s.Store.Accounts().GetAccountByID(ctx, id)
	if err != nil {
		return domain.Account{}, translate(err)
	}
	if err := s.decide(ctx, "account.view", authz.CanView(caller.Roles, target.Tier()), caller); err != nil {
		return domain.Account{}, err
	}
	return target, nil
}

// List returns the accounts of exactly one tier.
func (s *AccountService) List(ctx context.Context, caller domain.Account, tier domain.Tier, page domain.Page) ([]domain.Account, error) {
	if err := s.decide(ctx, "account.list_"+tier.String(), authz.CanView(caller.Roles, tier), caller); err != nil {
		return nil, err
	}
	page, err := NormalizePage(page)
	if err != nil {
		return nil, err
	}
	out, err := s.Store.Accounts().ListAccounts(ctx, tier, page)
	return out, translate(err)
}

// Update applies a partial update. Fields the caller is not cleared for are
// rejected as a whole; nothing is written in that case.
func (s *AccountService) Update(ctx context.Context, caller domain.Account, id int64, req blogsdk.UpdateAccountRequest) (domain.Account, error) {
	l := slogx.FromContext(ctx)

	if errs := req.Validate(); errs != nil {
		return domain.Account{}, Invalid("validation failed", errs)
	}

	target, err := s.Store.Accounts().GetAccountByID(ctx, id)
	if err != nil {
		return domain.Account{}, translate(err)
	}

	patch := domain.AccountPatch{
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Gender:      req.Gender,
		Bio:         req.Bio,
		IsActive:    req.IsActive,
		IsStaff:     req.IsStaff,
		IsSuperuser: req.IsSuperuser,
		IsOwner:     req.IsOwner,
	}
	if req.Password != nil {
		// Marks the password as supplied for the field check; hashed below.
		patch.PasswordHash = new(string)
	}

	err = authz.CheckUpdate(caller.Roles, target.Roles, patch)
	s.recorder().RecordDecision("account.update", err == nil)
	if err != nil {
		l.Info("account update denied",
			slog.Int64("caller_id", caller.ID),
			slog.Int64("target_id", target.ID),
			slog.Any("error", err),
		)
		return domain.Account{}, forbidden(err)
	}

	match := store.AccountMatch{ExcludeID: target.ID}
	if v := optional(req.Email); v != nil && !sameString(v, target.Email) {
		match.Email = v
	}
	if v := optional(req.PhoneNumber); v != nil && !sameString(v, target.PhoneNumber) {
		match.PhoneNumber = v
	}
	if err := s.checkUnique(ctx, match); err != nil {
		return domain.Account{}, err
	}

	if req.Password != nil {
		hash, err := cryptox.HashPassword(*req.Password)
		if err != nil {
			l.Error("failed to hash password", slog.Any("error", err))
			return domain.Account{}, err
		}
		patch.PasswordHash = &hash
	}

	updated, err := s.Store.Accounts().UpdateAccount(ctx, target.ID, patch)
	if err != nil {
		return domain.Account{}, translate(err)
	}
	l.Info("account updated", slog.Int64("account_id", updated.ID))
	return updated, nil
}

// Delete removes an account and applies the author policy to its posts in
// the same transaction.
func (s *AccountService) Delete(ctx context.Context, caller domain.Account, id int64) error {
	l := slogx.FromContext(ctx)

	target, err := s.Store.Accounts().GetAccountByID(ctx, id)
	if err != nil {
		return translate(err)
	}
	if err := s.decide(ctx, "account.delete", authz.CanDelete(caller.Roles, target.Roles), caller); err != nil {
		return err
	}

	var affected int64
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		switch s.AuthorPolicy {
		case domain.AuthorNullify:
			affected, err = tx.Posts().NullifyAuthor(ctx, target.ID)
		case domain.AuthorCascade:
			affected, err = tx.Posts().DeleteByAuthor(ctx, target.ID)
		}
		if err != nil {
			return err
		}
		return tx.Accounts().DeleteAccount(ctx, target.ID)
	})
	if err != nil {
		return translate(err)
	}

	l.Info("account deleted",
		slog.Int64("account_id", target.ID),
		slog.String("author_policy", string(s.policy())),
		slog.Int64("posts_affected", affected),
	)
	return nil
}

func (s *AccountService) policy() domain.AuthorPolicy {
	if s.AuthorPolicy == "" {
		return domain.AuthorOrphan
	}
	return s.AuthorPolicy
}

// LoginResult is a freshly issued access token.
type LoginResult struct {
	AccessToken string
	ExpiresIn   time.Duration
	Account     domain.Account
}

var dummyHash = sync.OnceValue(func() string {
	h, _ := cryptox.HashPassword("inkwell-timing-equaliser")
	return h
})

// Login verifies a username and password and issues an access token.
// Unknown users, wrong passwords and inactive accounts are indistinguishable
// to the caller.
func (s *AccountService) Login(ctx context.Context, username, password string) (LoginResult, error) {
	l := slogx.FromContext(ctx)

	acct, err := s.Store.Accounts().GetAccountByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return LoginResult{}, err
		}
		cryptox.PasswordMatches(password, dummyHash())
		s.recorder().RecordLogin(false)
		return LoginResult{}, ErrInvalidCredentials
	}

	if !cryptox.PasswordMatches(password, acct.PasswordHash) || !acct.IsActive {
		s.recorder().RecordLogin(false)
		l.Info("login rejected", slog.Int64("account_id", acct.ID), slog.Bool("active", acct.IsActive))
		return LoginResult{}, ErrInvalidCredentials
	}

	if cryptox.NeedsRehash(acct.PasswordHash) {
		if hash, err := cryptox.HashPassword(password); err == nil {
			if _, err := s.Store.Accounts().UpdateAccount(ctx, acct.ID, domain.AccountPatch{PasswordHash: &hash}); err != nil {
				l.Warn("failed to upgrade password hash", slog.Int64("account_id", acct.ID), slog.Any("error", err))
			}
		}
	}

	if err := s.Store.Accounts().TouchLastLogin(ctx, acct.ID); err != nil {
		return LoginResult{}, translate(err)
	}

	tok, err := s.Tokens.Issue(acct.Username, acct.Roles, 0)
	if err != nil {
		return LoginResult{}, err
	}

	s.recorder().RecordLogin(true)
	l.Info("login succeeded", slog.Int64("account_id", acct.ID))
	return LoginResult{AccessToken: tok, ExpiresIn: s.Tokens.TTL(), Account: acct}, nil
}

// forbidden converts an authz denial, naming the offending field if any.
func forbidden(cause error) error {
	var fe *authz.FieldError
	if errors.As(cause, &fe) {
		return &Error{Kind: KindForbidden, Code: "field_forbidden", Message: "not allowed to set " + string(fe.Field)}
	}
	return ErrForbidden
}

// NormalizePage applies defaults and bounds to a page request.
func NormalizePage(p domain.Page) (domain.Page, error) {
	if p.Offset < 0 {
		return p, Invalid("offset must not be negative", map[string]string{"offset": "must be >= 0"})
	}
	if p.Limit == 0 {
		p.Limit = domain.DefaultPageLimit
	}
	if p.Limit < 1 || p.Limit > domain.MaxPageLimit {
		return p, Invalid("limit out of range", map[string]string{"limit": "must be between 1 and 100"})
	}
	return p, nil
}

// optional trims s and maps empty values to nil.
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func sameString(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
