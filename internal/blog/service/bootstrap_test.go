package service_test

import (
	"testing"

	"github.com/aussiebroadwan/inkwell/internal/blog/domain"
	"github.com/aussiebroadwan/inkwell/internal/blog/service"
	"github.com/aussiebroadwan/inkwell/pkg/blogsdk"
	"github.com/stretchr/testify/require"
)

func TestBootstrap(t *testing.T) {
	f := newFixture(t)
	svc := &service.BootstrapService{Store: f.store, Token: "bootstrap-secret"}
	req := blogsdk.BootstrapRequest{Username: "root", Password: testPassword}

	_, err := svc.Bootstrap(f.ctx, "wrong", req)
	require.ErrorIs(t, err, service.ErrBootstrapUnauthorized)

	owner, err := svc.Bootstrap(f.ctx, "bootstrap-secret", req)
	require.NoError(t, err)
	require.Equal(t, domain.TierOwner, owner.Tier())
	require.True(t, owner.IsStaff)
	require.True(t, owner.IsSuperuser)
	require.True(t, owner.IsActive)

	done, err := svc.IsBootstrapped(f.ctx)
	require.NoError(t, err)
	require.True(t, done)

	req.Username = "root2"
	_, err = svc.Bootstrap(f.ctx, "bootstrap-secret", req)
	require.ErrorIs(t, err, service.ErrBootstrapAlready)

	res, err := f.accounts.Login(f.ctx, "root", testPassword)
	require.NoError(t, err)
	_, roles, err := f.tokens.Validate(res.AccessToken)
	require.NoError(t, err)
	require.True(t, roles.IsOwner)
}

func TestBootstrap_Disabled(t *testing.T) {
	f := newFixture(t)
	svc := &service.BootstrapService{Store: f.store}

	_, err := svc.Bootstrap(f.ctx, "", blogsdk.BootstrapRequest{Username: "root", Password: testPassword})
	require.ErrorIs(t, err, service.ErrBootstrapDisabled)
	require.ErrorIs(t, err, service.ErrNotFound)
}
