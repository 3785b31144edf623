package authclient

import (
	"context"
	"sync"
)

// Persisted entry names. The raw credential and the last decoded role are
// always written and cleared as a pair.
const (
	CredentialKey = "token"
	RoleKey       = "role"
)

// CredentialStore holds the current bearer credential and its recorded role.
// SessionController is the sole writer; Transport and RouteGuard are readers.
type CredentialStore interface {
	Set(ctx context.Context, credential string, role Role) error
	Get(ctx context.Context) (string, bool)
	GetRole(ctx context.Context) (Role, bool)
	Clear(ctx context.Context) error
}

// MemoryCredentialStore is the in-process implementation, useful in tests and
// for sessions that should not outlive the process.
type MemoryCredentialStore struct {
	mu     sync.RWMutex
	values map[string]string
}

var _ CredentialStore = (*MemoryCredentialStore)(nil)

// NewMemoryCredentialStore returns an empty in-memory store.
func NewMemoryCredentialStore() *MemoryCredentialStore {
	return &MemoryCredentialStore{
		values: map[string]string{},
	}
}

// Set records the credential and role pair, replacing any previous pair.
func (s *MemoryCredentialStore) Set(_ context.Context, credential string, role Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[CredentialKey] = credential
	s.values[RoleKey] = string(role)
	return nil
}

// Get returns the stored credential, if any.
func (s *MemoryCredentialStore) Get(_ context.Context) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	credential, ok := s.values[CredentialKey]
	return credential, ok && credential != ""
}

// GetRole returns the recorded role, if any.
func (s *MemoryCredentialStore) GetRole(_ context.Context) (Role, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, ok := s.values[RoleKey]
	if !ok {
		return "", false
	}
	return ParseRole(raw)
}

// Clear removes both entries. Safe to call on an empty store.
func (s *MemoryCredentialStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, CredentialKey)
	delete(s.values, RoleKey)
	return nil
}
