package authclient

import (
	"errors"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

// ErrMissingToken is returned when a 2xx login response carries no token
var ErrMissingToken = errors.New("login response is missing token")

const (
	textCodeCredentialMalformed = "CREDENTIAL_MALFORMED"
	textCodeMissingClaims       = "CREDENTIAL_MISSING_CLAIMS"
	textCodeUnknownRole         = "CREDENTIAL_UNKNOWN_ROLE"
	textCodeSubmissionInFlight  = "SUBMISSION_IN_FLIGHT"
	textCodeRemoteRejected      = "REMOTE_REJECTED"
)

// ErrCredentialMalformed is returned when a credential cannot be decoded at all.
var ErrCredentialMalformed = goerrors.New("credential is malformed", goerrors.CategoryAuth).
	WithTextCode(textCodeCredentialMalformed).
	WithCode(goerrors.CodeUnauthorized)

// ErrMissingClaims is returned when a credential decodes but lacks a required claim.
var ErrMissingClaims = goerrors.New("credential is missing required claims", goerrors.CategoryAuth).
	WithTextCode(textCodeMissingClaims).
	WithCode(goerrors.CodeUnauthorized)

// ErrUnknownRole is returned when the role claim is not one of the known roles.
var ErrUnknownRole = goerrors.New("credential carries an unknown role", goerrors.CategoryAuth).
	WithTextCode(textCodeUnknownRole).
	WithCode(goerrors.CodeUnauthorized)

// ErrSubmissionInFlight is returned when a sign-in or sign-up is attempted
// while a previous submission has not settled yet.
var ErrSubmissionInFlight = goerrors.New("submission already in flight", goerrors.CategoryConflict).
	WithTextCode(textCodeSubmissionInFlight).
	WithCode(goerrors.CodeConflict)

// IsDecodeError reports whether err came from DecodeCredential.
func IsDecodeError(err error) bool {
	if err == nil {
		return false
	}
	var richErr *goerrors.Error
	if !goerrors.As(err, &richErr) {
		return false
	}
	switch richErr.TextCode {
	case textCodeCredentialMalformed, textCodeMissingClaims, textCodeUnknownRole:
		return true
	}
	return false
}

// IsRemoteRejection reports whether err is a non-2xx answer from the remote
// authentication service or the protected API surface.
func IsRemoteRejection(err error) bool {
	if err == nil {
		return false
	}
	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) {
		return richErr.TextCode == textCodeRemoteRejected
	}
	return false
}

// IsSessionInvalid reports whether err is an authorization failure (401/403)
// on a protected call. Callers observing it should trigger session teardown.
func IsSessionInvalid(err error) bool {
	var richErr *goerrors.Error
	if !goerrors.As(err, &richErr) {
		return false
	}
	return richErr.Code == 401 || richErr.Code == 403
}

// IsMalformedError will check for error message
func IsMalformedError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "malformed")
}
