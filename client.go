package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

// Pet is a pet record embedded in the admin account listing.
type Pet struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Species string `json:"species"`
	Gender  string `json:"gender"`
	Color   string `json:"color"`
}

// User is an account row from the admin surface.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Pets      []Pet  `json:"pets"`
}

// AppUser is the profile record behind the user dashboard.
type AppUser struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	NickName  string `json:"nick_name"`
	Age       int    `json:"age"`
	Email     string `json:"email"`
	Status    string `json:"status"`
}

// Client fronts the protected API surface through an authorized Transport.
// It never interprets authorization failures itself; callers check
// IsSessionInvalid on returned errors and trigger Logout when it reports
// true.
type Client struct {
	baseURL string
	http    *http.Client
	logger  Logger
}

// NewClient returns a client whose calls carry the store's credential
// whenever one is present.
func NewClient(cfg Config, store CredentialStore) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.GetBaseURL(), "/"),
		http:    NewTransport(store).WithScheme(cfg.GetAuthScheme()).Client(),
		logger:  defLogger{},
	}
}

func (c *Client) WithLogger(logger Logger) *Client {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// WithHTTPClient replaces the underlying client. The caller is responsible
// for keeping a Transport in the chain if requests should stay authorized.
func (c *Client) WithHTTPClient(client *http.Client) *Client {
	if client != nil {
		c.http = client
	}
	return c
}

// ListUsers returns every account. Admin surface.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.do(ctx, http.MethodGet, "/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUserRole changes an account's role. Admin surface.
func (c *Client) UpdateUserRole(ctx context.Context, userID string, role Role) error {
	payload := map[string]string{"role": string(role)}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/users/%s/role", userID), payload, nil)
}

// DeleteUser removes an account. Admin surface.
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/users/%s", userID), nil, nil)
}

// GetAppUser fetches the profile behind the user dashboard.
func (c *Client) GetAppUser(ctx context.Context, userID string) (*AppUser, error) {
	user := new(AppUser)
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/pet_system/app_user/%s", userID), nil, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateAppUser saves profile edits.
func (c *Client) UpdateAppUser(ctx context.Context, userID string, user AppUser) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/pet_system/app_user/%s", userID), user, nil)
}

// DeleteAppUser removes the profile.
func (c *Client) DeleteAppUser(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/pet_system/app_user/%s", userID), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to encode request payload")
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to build request")
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryOperation, "api unreachable")
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryOperation, "failed to read response body")
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		c.logger.Error("api rejection", "method", method, "path", path, "status", res.StatusCode)
		return remoteRejection(path, res.StatusCode, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return goerrors.Wrap(err, goerrors.CategoryOperation, "failed to parse response body")
		}
	}

	return nil
}
