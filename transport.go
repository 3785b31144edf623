package authclient

import "net/http"

// DefaultAuthScheme matches the header the remote API expects.
const DefaultAuthScheme = "Bearer"

// Transport is an http.RoundTripper fronting every outbound API call. It
// re-reads the credential store per request: a credential present at dispatch
// time is attached as an authorization header, an absent credential means the
// call goes out unauthenticated. Responses are passed through untouched;
// interpreting 401/403 is the caller's concern.
type Transport struct {
	store  CredentialStore
	base   http.RoundTripper
	scheme string
}

var _ http.RoundTripper = (*Transport)(nil)

// NewTransport returns a Transport backed by http.DefaultTransport.
func NewTransport(store CredentialStore) *Transport {
	return &Transport{
		store:  store,
		scheme: DefaultAuthScheme,
	}
}

// WithBase sets the RoundTripper the request is handed to after the header
// decision is made.
func (t *Transport) WithBase(base http.RoundTripper) *Transport {
	t.base = base
	return t
}

// WithScheme overrides the authorization scheme.
func (t *Transport) WithScheme(scheme string) *Transport {
	if scheme != "" {
		t.scheme = scheme
	}
	return t
}

// Client returns an http.Client dispatching through this transport.
func (t *Transport) Client() *http.Client {
	return &http.Client{Transport: t}
}

// RoundTrip implements http.RoundTripper. The incoming request is never
// mutated; when a credential exists the request is cloned before the header
// is set.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if credential, ok := t.store.Get(req.Context()); ok {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", t.scheme+" "+credential)
	}

	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}

	return base.RoundTrip(req)
}
