package service_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/inkwell/internal/blog/domain"
	"github.com/aussiebroadwan/inkwell/internal/blog/service"
	"github.com/aussiebroadwan/inkwell/internal/blog/store"
	"github.com/aussiebroadwan/inkwell/pkg/blogsdk"
	"github.com/aussiebroadwan/inkwell/pkg/cryptox"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func signupReq(username string) blogsdk.CreateAccountRequest {
	return blogsdk.CreateAccountRequest{Username: username, Password: testPassword}
}

func TestSignup_CreatesNormalActiveAccount(t *testing.T) {
	f := newFixture(t)

	a, err := f.accounts.Signup(f.ctx, blogsdk.CreateAccountRequest{
		Username: "alice",
		Password: testPassword,
		Email:    strp("  alice@example.com "),
		Bio:      strp(""),
	})
	require.NoError(t, err)
	require.True(t, a.IsActive)
	require.Equal(t, domain.TierNormal, a.Tier())
	require.Equal(t, "alice@example.com", *a.Email)
	require.Nil(t, a.Bio)
	require.Equal(t, domain.DefaultGender, a.Gender)
	require.True(t, cryptox.PasswordMatches(testPassword, a.PasswordHash))
	require.NotContains(t, a.PasswordHash, testPassword)
}

func TestSignup_Validation(t *testing.T) {
	f := newFixture(t)

	_, err := f.accounts.Signup(f.ctx, blogsdk.CreateAccountRequest{Username: "a b", Password: "short"})
	require.ErrorIs(t, err, service.ErrInvalid)

	var se *service.Error
	require.ErrorAs(t, err, &se)
	require.Contains(t, se.Fields, "username")
	require.Contains(t, se.Fields, "password")
}

func TestSignup_UsernameTakenPerformsNoInsert(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "alice", normalRoles)

	_, err := f.accounts.Signup(f.ctx, signupReq("alice"))
	require.ErrorIs(t, err, service.ErrUsernameTaken)

	list, err := f.store.Accounts().ListAccounts(f.ctx, domain.TierNormal, domain.Page{Limit: 100})
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestSignup_ConflictPriority(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "alice", normalRoles, func(a *domain.Account) {
		a.Email = strp("alice@example.com")
		a.PhoneNumber = strp("+61400000000")
	})

	tests := []struct {
		name string
		req  blogsdk.CreateAccountRequest
		want error
	}{
		{
			name: "username beats email and phone",
			req: blogsdk.CreateAccountRequest{Username: "alice", Password: testPassword,
				Email: strp("alice@example.com"), PhoneNumber: strp("+61400000000")},
			want: service.ErrUsernameTaken,
		},
		{
			name: "email beats phone",
			req: blogsdk.CreateAccountRequest{Username: "bob", Password: testPassword,
				Email: strp("alice@example.com"), PhoneNumber: strp("+61400000000")},
			want: service.ErrEmailTaken,
		},
		{
			name: "phone",
			req: blogsdk.CreateAccountRequest{Username: "bob", Password: testPassword,
				PhoneNumber: strp("+61400000000")},
			want: service.ErrPhoneTaken,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.accounts.Signup(f.ctx, tt.req)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCreateSuperuser_ByOwner(t *testing.T) {
	f := newFixture(t)
	owner := f.seed(t, "root", ownerRoles)
	require.Equal(t, int64(1), owner.ID)

	bob, err := f.accounts.CreateSuperuser(f.ctx, owner, signupReq("bob"))
	require.NoError(t, err)
	require.True(t, bob.IsStaff)
	require.True(t, bob.IsSuperuser)
	require.False(t, bob.IsOwner)
	require.True(t, bob.IsActive)
}

func TestCreationGates(t *testing.T) {
	f := newFixture(t)
	staff := f.seed(t, "staff", staffRoles)
	super := f.seed(t, "super", superRoles)

	_, err := f.accounts.CreateStaff(f.ctx, staff, signupReq("s1"))
	require.ErrorIs(t, err, service.ErrForbidden)

	_, err = f.accounts.CreateSuperuser(f.ctx, super, signupReq("s2"))
	require.ErrorIs(t, err, service.ErrForbidden)

	created, err := f.accounts.CreateStaff(f.ctx, super, signupReq("s3"))
	require.NoError(t, err)
	require.Equal(t, domain.TierStaff, created.Tier())
}

func TestDelete_StaffCannotDeleteOwner(t *testing.T) {
	f := newFixture(t)
	owner := f.seed(t, "root", ownerRoles)
	staff := f.seed(t, "staff", staffRoles)

	err := f.accounts.Delete(f.ctx, staff, owner.ID)
	require.ErrorIs(t, err, service.ErrForbidden)

	_, err = f.store.Accounts().GetAccountByID(f.ctx, owner.ID)
	require.NoError(t, err)
}

func TestDelete_AuthorPolicies(t *testing.T) {
	tests := []struct {
		policy    domain.AuthorPolicy
		wantPosts int
		wantNil   bool
	}{
		{domain.AuthorOrphan, 1, false},
		{domain.AuthorNullify, 1, true},
		{domain.AuthorCascade, 0, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.policy), func(t *testing.T) {
			f := newFixture(t)
			f.accounts.AuthorPolicy = tt.policy
			super := f.seed(t, "super", superRoles)
			writer := f.seed(t, "writer", staffRoles)

			_, err := f.store.Posts().CreatePost(f.ctx, domain.Post{Title: "t", Slug: "t", Text: "x", Author: &writer.ID})
			require.NoError(t, err)

			require.NoError(t, f.accounts.Delete(f.ctx, super, writer.ID))

			_, err = f.store.Accounts().GetAccountByID(f.ctx, writer.ID)
			require.ErrorIs(t, err, store.ErrNotFound)

			posts, err := f.store.Posts().ListPosts(f.ctx, domain.Page{Limit: 10}, true)
			require.NoError(t, err)
			require.Len(t, posts, tt.wantPosts)
			if tt.wantPosts == 1 {
				require.Equal(t, tt.wantNil, posts[0].Author == nil)
			}
		})
	}
}

func TestDelete_NotFound(t *testing.T) {
	f := newFixture(t)
	owner := f.seed(t, "root", ownerRoles)
	require.ErrorIs(t, f.accounts.Delete(f.ctx, owner, 99), service.ErrNotFound)
}

func TestLogin_IssuesMatchingClaimsAndTouchesLastLogin(t *testing.T) {
	f := newFixture(t)
	alice := f.seed(t, "alice", staffRoles)
	require.Nil(t, alice.LastLogin)

	f.clk.Advance(time.Hour)
	res, err := f.accounts.Login(f.ctx, "alice", testPassword)
	require.NoError(t, err)
	require.Equal(t, 30*time.Minute, res.ExpiresIn)

	sub, roles, err := f.tokens.Validate(res.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "alice", sub)
	require.Equal(t, alice.Roles, roles)

	after, err := f.store.Accounts().GetAccountByID(f.ctx, alice.ID)
	require.NoError(t, err)
	require.NotNil(t, after.LastLogin)
	require.Equal(t, f.clk.now, *after.LastLogin)
	require.True(t, after.LastLogin.After(alice.DateJoined))
}

func TestLogin_Failures(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "alice", normalRoles)
	f.seed(t, "sleepy", normalRoles, func(a *domain.Account) { a.IsActive = false })

	tests := map[string][2]string{
		"unknown user":   {"nobody", testPassword},
		"wrong password": {"alice", "wrong-password"},
		"inactive":       {"sleepy", testPassword},
	}
	for name, creds := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := f.accounts.Login(f.ctx, creds[0], creds[1])
			require.ErrorIs(t, err, service.ErrInvalidCredentials)
		})
	}
}

func TestLogin_UpgradesLegacyBcryptHash(t *testing.T) {
	f := newFixture(t)
	legacy, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	old := f.seed(t, "legacy", normalRoles, func(a *domain.Account) { a.PasswordHash = string(legacy) })

	_, err = f.accounts.Login(f.ctx, "legacy", testPassword)
	require.NoError(t, err)

	after, err := f.store.Accounts().GetAccountByID(f.ctx, old.ID)
	require.NoError(t, err)
	require.NotEqual(t, old.PasswordHash, after.PasswordHash)
	require.False(t, cryptox.NeedsRehash(after.PasswordHash))
	require.True(t, cryptox.PasswordMatches(testPassword, after.PasswordHash))
}

func TestUpdate_PartialMergeKeepsEmail(t *testing.T) {
	f := newFixture(t)
	staff := f.seed(t, "staff", staffRoles)
	alice := f.seed(t, "alice", normalRoles, func(a *domain.Account) { a.Email = strp("alice@example.com") })

	got, err := f.accounts.Update(f.ctx, staff, alice.ID, blogsdk.UpdateAccountRequest{Bio: strp("hello")})
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", *got.Email)
	require.Equal(t, "hello", *got.Bio)
}

func TestUpdate_PasswordIsRehashed(t *testing.T) {
	f := newFixture(t)
	super := f.seed(t, "super", superRoles)
	alice := f.seed(t, "alice", normalRoles)

	got, err := f.accounts.Update(f.ctx, super, alice.ID, blogsdk.UpdateAccountRequest{Password: strp("a-brand-new-password")})
	require.NoError(t, err)
	require.NotEqual(t, alice.PasswordHash, got.PasswordHash)
	require.True(t, cryptox.PasswordMatches("a-brand-new-password", got.PasswordHash))
	require.False(t, cryptox.PasswordMatches(testPassword, got.PasswordHash))
}

func TestUpdate_FieldGating(t *testing.T) {
	f := newFixture(t)
	staff := f.seed(t, "staff", staffRoles)
	super := f.seed(t, "super", superRoles)
	owner := f.seed(t, "root", ownerRoles)
	alice := f.seed(t, "alice", normalRoles)

	tests := []struct {
		name   string
		caller domain.Account
		target domain.Account
		req    blogsdk.UpdateAccountRequest
		ok     bool
	}{
		{"staff deactivates normal", staff, alice, blogsdk.UpdateAccountRequest{IsActive: boolp(true)}, true},
		{"staff promotes to staff", staff, alice, blogsdk.UpdateAccountRequest{IsStaff: boolp(true)}, false},
		{"staff edits superuser", staff, super, blogsdk.UpdateAccountRequest{Bio: strp("x")}, false},
		{"normal edits self", alice, alice, blogsdk.UpdateAccountRequest{Bio: strp("x")}, false},
		{"superuser promotes to superuser", super, alice, blogsdk.UpdateAccountRequest{IsSuperuser: boolp(true)}, true},
		{"superuser mints owner", super, alice, blogsdk.UpdateAccountRequest{IsOwner: boolp(true)}, false},
		{"owner promotes owner", owner, super, blogsdk.UpdateAccountRequest{IsOwner: boolp(true)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.accounts.Update(f.ctx, tt.caller, tt.target.ID, tt.req)
			if tt.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, service.ErrForbidden)
			}
		})
	}

	// Denied updates write nothing.
	got, err := f.store.Accounts().GetAccountByID(f.ctx, alice.ID)
	require.NoError(t, err)
	require.False(t, got.IsOwner)
}

func TestUpdate_UniquenessExcludesSelf(t *testing.T) {
	f := newFixture(t)
	super := f.seed(t, "super", superRoles)
	alice := f.seed(t, "alice", normalRoles, func(a *domain.Account) { a.Email = strp("alice@example.com") })
	f.seed(t, "bob", normalRoles, func(a *domain.Account) { a.PhoneNumber = strp("+61400000002") })

	_, err := f.accounts.Update(f.ctx, super, alice.ID, blogsdk.UpdateAccountRequest{Email: strp("alice@example.com")})
	require.NoError(t, err)

	_, err = f.accounts.Update(f.ctx, super, alice.ID, blogsdk.UpdateAccountRequest{PhoneNumber: strp("+61400000002")})
	require.ErrorIs(t, err, service.ErrPhoneTaken)
}

func TestGetAndList_Visibility(t *testing.T) {
	f := newFixture(t)
	alice := f.seed(t, "alice", normalRoles)
	staff := f.seed(t, "staff", staffRoles)
	super := f.seed(t, "super", superRoles)

	_, err := f.accounts.Get(f.ctx, alice, staff.ID)
	require.ErrorIs(t, err, service.ErrForbidden)

	got, err := f.accounts.Get(f.ctx, staff, alice.ID)
	require.NoError(t, err)
	require.Equal(t, alice.ID, got.ID)

	_, err = f.accounts.Get(f.ctx, super, 404)
	require.ErrorIs(t, err, service.ErrNotFound)

	_, err = f.accounts.List(f.ctx, staff, domain.TierSuperuser, domain.Page{})
	require.ErrorIs(t, err, service.ErrForbidden)

	list, err := f.accounts.List(f.ctx, super, domain.TierSuperuser, domain.Page{})
	require.NoError(t, err)
	require.Len(t, list, 1)

	_, err = f.accounts.List(f.ctx, super, domain.TierNormal, domain.Page{Limit: 101})
	require.ErrorIs(t, err, service.ErrInvalid)
}
