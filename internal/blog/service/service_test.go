package service_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/inkwell/internal/blog/domain"
	"github.com/aussiebroadwan/inkwell/internal/blog/service"
	"github.com/aussiebroadwan/inkwell/internal/blog/store/drivers/sqlite"
	"github.com/aussiebroadwan/inkwell/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

const testPassword = "correct-horse-battery"

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestMain(m *testing.M) {
	cryptox.SetPepper("service-test-pepper")
	os.Exit(m.Run())
}

type clock struct{ now time.Time }

func (c *clock) Now() time.Time          { return c.now }
func (c *clock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fixture struct {
	ctx      context.Context
	clk      *clock
	store    *sqlite.Store
	tokens   *service.TokenService
	resolver *service.IdentityResolver
	accounts *service.AccountService
	posts    *service.PostService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	clk := &clock{now: time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)}

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "inkwell.db"), sqlite.WithClock(clk.Now))
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	tokens, err := service.NewTokenService(testSecret, "inkwell-test", 30*time.Minute, clk.Now)
	require.NoError(t, err)

	return &fixture{
		ctx:      context.Background(),
		clk:      clk,
		store:    st,
		tokens:   tokens,
		resolver: &service.IdentityResolver{Tokens: tokens, Store: st},
		accounts: &service.AccountService{Store: st, Tokens: tokens},
		posts:    &service.PostService{Store: st},
	}
}

// seed inserts an active account with testPassword and the given roles.
func (f *fixture) seed(t *testing.T, username string, roles domain.Roles, mods ...func(*domain.Account)) domain.Account {
	t.Helper()
	hash, err := cryptox.HashPassword(testPassword)
	require.NoError(t, err)

	a := domain.Account{Username: username, PasswordHash: hash, IsActive: true, Roles: roles}
	for _, mod := range mods {
		mod(&a)
	}
	created, err := f.store.Accounts().CreateAccount(f.ctx, a)
	require.NoError(t, err)
	return created
}

var (
	normalRoles = domain.Roles{}
	staffRoles  = domain.Roles{IsStaff: true}
	superRoles  = domain.Roles{IsStaff: true, IsSuperuser: true}
	ownerRoles  = domain.Roles{IsStaff: true, IsSuperuser: true, IsOwner: true}
)

func strp(s string) *string { return &s }
func boolp(b bool) *bool    { return &b }
