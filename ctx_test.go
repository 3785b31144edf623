package authclient_test

import (
	"context"
	"testing"

	authclient "github.com/goliatone/go-authclient"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimsContext(t *testing.T) {
	subject := uuid.New().String()
	claims, err := authclient.DecodeCredential(makeToken(t, subject, "USER"))
	require.NoError(t, err)

	ctx := authclient.WithClaimsContext(context.Background(), claims)

	got, ok := authclient.ClaimsFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, subject, got.SubjectID())
	assert.Equal(t, authclient.RoleUser, got.Role())
}

func TestClaimsFromContextMissing(t *testing.T) {
	got, ok := authclient.ClaimsFromContext(context.Background())
	assert.False(t, ok)
	assert.Nil(t, got)
}
