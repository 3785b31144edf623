package authclient

import "context"

// RouteGuard is the single place role/redirect decisions are made. Views only
// express "this destination requires role X"; the guard never re-decodes the
// credential, it trusts the role SessionController recorded after the last
// successful decode.
type RouteGuard struct {
	store  CredentialStore
	logger Logger
}

// NewRouteGuard returns a guard reading the given store.
func NewRouteGuard(store CredentialStore) *RouteGuard {
	return &RouteGuard{
		store:  store,
		logger: defLogger{},
	}
}

func (g *RouteGuard) WithLogger(logger Logger) *RouteGuard {
	if logger != nil {
		g.logger = logger
	}
	return g
}

// Allow reports whether the current session satisfies the required role: a
// credential must be present and the recorded role must match exactly.
func (g *RouteGuard) Allow(ctx context.Context, required Role) bool {
	if _, ok := g.store.Get(ctx); !ok {
		return false
	}

	role, ok := g.store.GetRole(ctx)
	return ok && role == required
}

// Require resolves a navigation attempt. A session that satisfies the role
// reaches the role's dashboard; anything else lands back on the entry point.
// A failed check is normal control flow, not an error.
func (g *RouteGuard) Require(ctx context.Context, required Role) Destination {
	if g.Allow(ctx, required) {
		return required.Destination()
	}

	g.logger.Debug("navigation redirected to entry", "required_role", required)
	return DestinationEntry
}
