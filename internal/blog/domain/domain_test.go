package domain_test

import (
	"testing"

	"github.com/aussiebroadwan/inkwell/internal/blog/domain"
	"github.com/stretchr/testify/require"
)

func TestRolesTier(t *testing.T) {
	tests := []struct {
		roles domain.Roles
		want  domain.Tier
	}{
		{domain.Roles{}, domain.TierNormal},
		{domain.Roles{IsStaff: true}, domain.TierStaff},
		{domain.Roles{IsSuperuser: true}, domain.TierSuperuser},
		{domain.Roles{IsStaff: true, IsSuperuser: true}, domain.TierSuperuser},
		{domain.Roles{IsOwner: true}, domain.TierOwner},
		{domain.Roles{IsStaff: true, IsOwner: true}, domain.TierOwner},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			require.Equal(t, tt.want, tt.roles.Tier())
		})
	}

	require.True(t, domain.TierOwner.AtLeast(domain.TierStaff))
	require.False(t, domain.TierStaff.AtLeast(domain.TierSuperuser))
	require.Equal(t, "Tier(9)", domain.Tier(9).String())
}

func TestParseRoster(t *testing.T) {
	for name, want := range map[string]domain.Tier{
		"users": domain.TierNormal, "staff": domain.TierStaff,
		"superusers": domain.TierSuperuser, "owners": domain.TierOwner,
	} {
		got, ok := domain.ParseRoster(name)
		require.True(t, ok, name)
		require.Equal(t, want, got)
	}

	_, ok := domain.ParseRoster("admins")
	require.False(t, ok)
}

func TestAccountPatchApply(t *testing.T) {
	email := "alice@example.com"
	a := domain.Account{Username: "alice", Email: &email, Gender: "f", IsActive: true}

	bio := "writes things"
	active := false
	got := domain.AccountPatch{Bio: &bio, IsActive: &active}.Apply(a)

	require.Equal(t, &email, got.Email, "omitted fields are kept")
	require.Equal(t, "writes things", *got.Bio)
	require.False(t, got.IsActive)
	require.Equal(t, "f", got.Gender)

	bio = "changed later"
	require.Equal(t, "writes things", *got.Bio, "patch values are copied")

	require.True(t, domain.AccountPatch{}.IsEmpty())
	require.False(t, domain.AccountPatch{Bio: &bio}.IsEmpty())
}

func TestParseAuthorPolicy(t *testing.T) {
	for _, s := range []string{"orphan", "nullify", "cascade"} {
		p, err := domain.ParseAuthorPolicy(s)
		require.NoError(t, err)
		require.Equal(t, domain.AuthorPolicy(s), p)
	}

	_, err := domain.ParseAuthorPolicy("restrict")
	require.Error(t, err)
}
