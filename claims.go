package authclient

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims is the validated claim shape every consumer observes. It is
// produced only by DecodeCredential, never assembled ad hoc.
type TokenClaims struct {
	jwt.RegisteredClaims
	UID      string `json:"uid,omitempty"`
	ID       string `json:"id,omitempty"`
	UserRole string `json:"role,omitempty"`
}

// Role returns the role claim. DecodeCredential guarantees it is valid.
func (c *TokenClaims) Role() Role {
	return Role(c.UserRole)
}

// SubjectID returns the account identifier, preferring the uid claim, then
// id, then the registered subject.
func (c *TokenClaims) SubjectID() string {
	if c.UID != "" {
		return c.UID
	}
	if c.ID != "" {
		return c.ID
	}
	return c.RegisteredClaims.Subject
}

// SubjectUUID parses the subject identifier as a UUID.
func (c *TokenClaims) SubjectUUID() (uuid.UUID, error) {
	return uuid.Parse(c.SubjectID())
}

// Expires returns the expiration time
func (c *TokenClaims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}

// IssuedAt returns the issued at time
func (c *TokenClaims) IssuedAt() time.Time {
	if c.RegisteredClaims.IssuedAt != nil {
		return c.RegisteredClaims.IssuedAt.Time
	}
	return time.Time{}
}
