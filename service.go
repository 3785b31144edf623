package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	goerrors "github.com/goliatone/go-errors"
)

// AuthService is the remote authentication collaborator. Any non-2xx answer
// is surfaced as a remote rejection carrying the response payload verbatim.
type AuthService interface {
	Register(ctx context.Context, data RegistrationData) error
	Login(ctx context.Context, email, password string) (string, error)
}

// RegistrationData carries the fields the sign-up form forwards. The remote
// service owns the schema; the client only checks presence.
type RegistrationData struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	NickName  string `json:"nickName"`
	Age       int    `json:"age"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

// Validate performs the presence checks the sign-up form enforces.
func (r RegistrationData) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Required),
		validation.Field(&r.LastName, validation.Required),
		validation.Field(&r.NickName, validation.Required),
		validation.Field(&r.Age, validation.Required, validation.Min(1)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// HTTPAuthService talks to the remote authentication endpoints. Calls are
// dispatched unauthenticated; registration and login never carry a bearer
// header.
type HTTPAuthService struct {
	baseURL string
	http    *http.Client
	logger  Logger
}

var _ AuthService = (*HTTPAuthService)(nil)

// NewHTTPAuthService returns a service client for the configured base URL.
func NewHTTPAuthService(cfg Config) *HTTPAuthService {
	return &HTTPAuthService{
		baseURL: strings.TrimRight(cfg.GetBaseURL(), "/"),
		http:    http.DefaultClient,
		logger:  defLogger{},
	}
}

func (s *HTTPAuthService) WithLogger(logger Logger) *HTTPAuthService {
	if logger != nil {
		s.logger = logger
	}
	return s
}

func (s *HTTPAuthService) WithHTTPClient(client *http.Client) *HTTPAuthService {
	if client != nil {
		s.http = client
	}
	return s
}

// Register forwards the registration data. Success means the account exists;
// it does not authenticate, the caller still has to sign in.
func (s *HTTPAuthService) Register(ctx context.Context, data RegistrationData) error {
	_, err := s.post(ctx, "/auth/register", data)
	return err
}

// Login exchanges email and password for a bearer credential.
func (s *HTTPAuthService) Login(ctx context.Context, email, password string) (string, error) {
	body, err := s.post(ctx, "/auth/login", loginRequest{Email: email, Password: password})
	if err != nil {
		return "", err
	}

	var parsed loginResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", goerrors.Wrap(err, goerrors.CategoryAuth, "failed to parse login response").
			WithCode(goerrors.CodeUnauthorized)
	}

	if parsed.Token == "" {
		return "", ErrMissingToken
	}

	return parsed.Token, nil
}

func (s *HTTPAuthService) post(ctx context.Context, path string, payload any) ([]byte, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to encode request payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := s.http.Do(req)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryOperation, "authentication service unreachable")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryOperation, "failed to read response body")
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		s.logger.Error("remote rejection", "path", path, "status", res.StatusCode)
		return nil, remoteRejection(path, res.StatusCode, body)
	}

	return body, nil
}

// remoteRejection surfaces the remote error payload verbatim in metadata so
// callers can show it to the user unchanged.
func remoteRejection(path string, status int, body []byte) error {
	return goerrors.New(fmt.Sprintf("remote service rejected %s", path), goerrors.CategoryAuth).
		WithTextCode(textCodeRemoteRejected).
		WithCode(status).
		WithMetadata(map[string]any{
			"path":   path,
			"status": status,
			"body":   strings.TrimSpace(string(body)),
		})
}
