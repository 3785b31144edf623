package authclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	authclient "github.com/goliatone/go-authclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransportAttachesHeaderWhenCredentialPresent(t *testing.T) {
	ctx := context.Background()

	var seen []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
	}))
	defer server.Close()

	store := authclient.NewMemoryCredentialStore()
	client := authclient.NewTransport(store).Client()

	// empty store: unauthenticated dispatch
	res, err := client.Get(server.URL)
	require.NoError(t, err)
	res.Body.Close()

	require.NoError(t, store.Set(ctx, "T", authclient.RoleUser))

	res, err = client.Get(server.URL)
	require.NoError(t, err)
	res.Body.Close()

	require.Len(t, seen, 2)
	assert.Empty(t, seen[0])
	assert.Equal(t, "Bearer T", seen[1])
}

func TestTransportObservesLogoutBetweenCalls(t *testing.T) {
	ctx := context.Background()

	var seen []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
	}))
	defer server.Close()

	store := authclient.NewMemoryCredentialStore()
	require.NoError(t, store.Set(ctx, "T", authclient.RoleAdmin))

	client := authclient.NewTransport(store).Client()

	res, err := client.Get(server.URL)
	require.NoError(t, err)
	res.Body.Close()

	require.NoError(t, store.Clear(ctx))

	res, err = client.Get(server.URL)
	require.NoError(t, err)
	res.Body.Close()

	require.Len(t, seen, 2)
	assert.Equal(t, "Bearer T", seen[0])
	assert.Empty(t, seen[1])
}

func TestTransportDoesNotMutateRequest(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	store := authclient.NewMemoryCredentialStore()
	require.NoError(t, store.Set(ctx, "T", authclient.RoleUser))

	client := authclient.NewTransport(store).Client()

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	res, err := client.Do(req)
	require.NoError(t, err)
	res.Body.Close()

	assert.Empty(t, req.Header.Get("Authorization"))
}

func TestTransportCustomScheme(t *testing.T) {
	ctx := context.Background()

	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
	}))
	defer server.Close()

	store := authclient.NewMemoryCredentialStore()
	require.NoError(t, store.Set(ctx, "T", authclient.RoleUser))

	client := authclient.NewTransport(store).WithScheme("Token").Client()

	res, err := client.Get(server.URL)
	require.NoError(t, err)
	res.Body.Close()

	assert.Equal(t, "Token T", got)
}
