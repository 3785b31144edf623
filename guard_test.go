package authclient_test

import (
	"context"
	"testing"

	authclient "github.com/goliatone/go-authclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteGuardAllow(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		populate func(store authclient.CredentialStore)
		required authclient.Role
		want     bool
	}{
		{
			name:     "no credential",
			populate: func(authclient.CredentialStore) {},
			required: authclient.RoleAdmin,
			want:     false,
		},
		{
			name: "matching admin",
			populate: func(store authclient.CredentialStore) {
				store.Set(ctx, "token", authclient.RoleAdmin)
			},
			required: authclient.RoleAdmin,
			want:     true,
		},
		{
			name: "matching user",
			populate: func(store authclient.CredentialStore) {
				store.Set(ctx, "token", authclient.RoleUser)
			},
			required: authclient.RoleUser,
			want:     true,
		},
		{
			name: "role mismatch",
			populate: func(store authclient.CredentialStore) {
				store.Set(ctx, "token", authclient.RoleUser)
			},
			required: authclient.RoleAdmin,
			want:     false,
		},
		{
			name: "cleared store",
			populate: func(store authclient.CredentialStore) {
				store.Set(ctx, "token", authclient.RoleAdmin)
				store.Clear(ctx)
			},
			required: authclient.RoleAdmin,
			want:     false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := authclient.NewMemoryCredentialStore()
			tc.populate(store)

			guard := authclient.NewRouteGuard(store)
			assert.Equal(t, tc.want, guard.Allow(ctx, tc.required))
		})
	}
}

func TestRouteGuardRequire(t *testing.T) {
	ctx := context.Background()
	store := authclient.NewMemoryCredentialStore()
	guard := authclient.NewRouteGuard(store)

	// anonymous navigation redirects to entry, silently
	assert.Equal(t, authclient.DestinationEntry, guard.Require(ctx, authclient.RoleAdmin))

	require.NoError(t, store.Set(ctx, "token", authclient.RoleAdmin))
	assert.Equal(t, authclient.DestinationAdmin, guard.Require(ctx, authclient.RoleAdmin))
	assert.Equal(t, authclient.DestinationEntry, guard.Require(ctx, authclient.RoleUser))
}
