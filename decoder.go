package authclient

import (
	"github.com/golang-jwt/jwt/v5"
	goerrors "github.com/goliatone/go-errors"
)

// TokenDecoder extracts claims from a raw credential without tying callers to
// a specific decoding implementation.
type TokenDecoder interface {
	Decode(raw string) (*TokenClaims, error)
}

// TokenDecoderFunc adapts a function into a TokenDecoder.
type TokenDecoderFunc func(raw string) (*TokenClaims, error)

// Decode satisfies the TokenDecoder interface.
func (f TokenDecoderFunc) Decode(raw string) (*TokenClaims, error) {
	if f == nil {
		return nil, ErrCredentialMalformed
	}
	return f(raw)
}

// DecodeCredential extracts structured claims from a bearer credential. The
// signature is not verified; the remote service is the authority on validity
// and the client only needs the role and subject to route. A credential whose
// claims fail here must be treated as absent, never partially valid.
func DecodeCredential(raw string) (*TokenClaims, error) {
	claims := &TokenClaims{}

	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return nil, goerrors.Wrap(err, ErrCredentialMalformed.Category, ErrCredentialMalformed.Message).
			WithTextCode(textCodeCredentialMalformed).
			WithCode(goerrors.CodeUnauthorized)
	}

	if claims.SubjectID() == "" {
		return nil, decodeFailure(ErrMissingClaims, map[string]any{"claim": "sub"})
	}

	if claims.UserRole == "" {
		return nil, decodeFailure(ErrMissingClaims, map[string]any{"claim": "role"})
	}

	if _, ok := ParseRole(claims.UserRole); !ok {
		return nil, decodeFailure(ErrUnknownRole, map[string]any{"role": claims.UserRole})
	}

	return claims, nil
}

// decodeFailure attaches metadata to a copy of the sentinel; WithMetadata
// writes into the receiver, so attaching to the shared sentinel would let a
// later failure rewrite errors already handed to earlier callers.
func decodeFailure(sentinel *goerrors.Error, metadata map[string]any) error {
	clone := sentinel.Clone()
	if clone == nil {
		return sentinel
	}
	return clone.WithMetadata(metadata)
}
