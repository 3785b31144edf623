package authclient_test

import (
	"testing"

	authclient "github.com/goliatone/go-authclient"
	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input string
		want  authclient.Role
		valid bool
	}{
		{"ADMIN", authclient.RoleAdmin, true},
		{"USER", authclient.RoleUser, true},
		{"admin", "admin", false},
		{"", "", false},
		{"ROOT", "ROOT", false},
	}

	for _, tc := range tests {
		role, ok := authclient.ParseRole(tc.input)
		assert.Equal(t, tc.valid, ok, tc.input)
		assert.Equal(t, tc.want, role)
	}
}

func TestRoleDestination(t *testing.T) {
	assert.Equal(t, authclient.DestinationAdmin, authclient.RoleAdmin.Destination())
	assert.Equal(t, authclient.DestinationUser, authclient.RoleUser.Destination())
	assert.Equal(t, authclient.DestinationEntry, authclient.Role("ROOT").Destination())
}

func TestGetAllRoles(t *testing.T) {
	roles := authclient.GetAllRoles()
	assert.Len(t, roles, 2)
	for _, role := range roles {
		assert.True(t, role.IsValid())
	}
}
