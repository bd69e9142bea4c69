// Package session talks to the auth boundary gating all /staff routes:
// cookie-based login, logout and session validation. Token issuance itself
// belongs to the backend; this side only carries the cookie.
package session

import (
	"context"
	"encoding/json"

	"github.com/friendsofgo/errors"

	"printduka-admin/internal/client"
	"printduka-admin/internal/model"
	"printduka-admin/pkg/log"
)

const (
	checkPath  = "/api/auth/session/check/"
	loginPath  = "/api/auth/session/login/"
	logoutPath = "/api/auth/session/logout/"
)

// ErrNotAuthenticated means the backend reports no valid session.
var ErrNotAuthenticated = errors.New("session: not authenticated")

// LoginInput is the credentials payload.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

// Client validates and manages the staff session on a shared cookie jar.
type Client struct {
	l   log.Logger
	api *client.Client
}

// New creates a session client over the given API client; both share one
// cookie jar, so a login here authenticates every subsequent API call.
func New(l log.Logger, api *client.Client) *Client {
	return &Client{l: l, api: api}
}

type checkResponse struct {
	Authenticated bool            `json:"authenticated"`
	User          model.StaffUser `json:"user"`
}

// Check validates the current session and returns the logged-in user.
func (s *Client) Check(ctx context.Context) (model.StaffUser, error) {
	body, err := s.api.Get(ctx, checkPath)
	if err != nil {
		return model.StaffUser{}, err
	}

	var resp checkResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return model.StaffUser{}, errors.Wrap(err, "session: decode check response")
	}
	if !resp.Authenticated {
		return model.StaffUser{}, errors.WithStack(ErrNotAuthenticated)
	}
	return resp.User, nil
}

// Login authenticates and stores the session cookie in the shared jar.
func (s *Client) Login(ctx context.Context, input LoginInput) (model.StaffUser, error) {
	body, err := s.api.Post(ctx, loginPath, input)
	if err != nil {
		return model.StaffUser{}, err
	}

	var resp checkResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return model.StaffUser{}, errors.Wrap(err, "session: decode login response")
	}
	s.l.Infof(ctx, "session: logged in as %s", resp.User.Username)
	return resp.User, nil
}

// Logout invalidates the session server-side.
func (s *Client) Logout(ctx context.Context) error {
	if _, err := s.api.Post(ctx, logoutPath, nil); err != nil {
		return err
	}
	s.l.Info(ctx, "session: logged out")
	return nil
}
