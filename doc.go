// Package authclient implements the session and role-authorization subsystem
// of a browser-style API client: obtaining a bearer credential from a remote
// authentication service, decoding its claims, persisting it across restarts,
// attaching it to every outbound request, and gating navigation by role.
//
// Credential lifecycle:
//   - CredentialStore owns the raw credential and the last decoded role as a
//     pair. SessionController is the only writer of that pair, and writes it
//     only after DecodeCredential succeeds, so the stored role can never
//     diverge from the token it was derived from.
//   - Transport re-reads the store on every round-trip. A logout between two
//     calls is observed by the second call; an in-flight request keeps the
//     header it was dispatched with.
//
// Authorization boundary:
//   - Transport never interprets 401/403 responses. Callers of Client detect
//     a rejected credential with IsSessionInvalid and trigger
//     SessionController.Logout so stale sessions do not linger.
//
// Activity sinks:
//   - ActivitySink is a light-weight audit emitter used by SessionController
//     to describe login, registration, and logout events. Sinks run
//     best-effort (errors are logged) so you can forward to a file or queue
//     without blocking the flow.
package authclient
