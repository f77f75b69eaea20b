package crmsdk

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"
)

// Session is an authenticated connection to the API. It is safe for
// concurrent use.
type Session struct {
	client *SDKClient

	mu        sync.RWMutex
	token     string
	expiresAt time.Time
	user      User
}

func newSession(client *SDKClient, auth AuthResponse) *Session {
	return &Session{
		client:    client,
		token:     auth.Token,
		expiresAt: auth.ExpiresAt,
		user:      auth.User,
	}
}

// Token returns the bearer token.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// ExpiresAt is when the token stops working. Zero for sessions built from a
// bare token.
func (s *Session) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}

// User is the account the session was created for, as last seen.
func (s *Session) User() User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Session) doJSON(ctx context.Context, method, path string, in, out any, expectedStatus int) error {
	return s.client.doJSONWithToken(ctx, method, path, s.Token(), in, out, expectedStatus)
}

func (s *Session) doRequest(ctx context.Context, method, path string, body io.Reader, headers map[string]string) (*http.Response, error) {
	return s.client.doRequest(ctx, method, path, s.Token(), body, headers)
}

// Me reloads the current account.
func (s *Session) Me(ctx context.Context) (*User, error) {
	var u User
	if err := s.doJSON(ctx, http.MethodGet, "/auth/me", nil, &u, http.StatusOK); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
	return &u, nil
}

// ChangePassword changes the session user's password.
func (s *Session) ChangePassword(ctx context.Context, current, next string) error {
	req := ChangePasswordRequest{CurrentPassword: current, NewPassword: next}
	return s.doJSON(ctx, http.MethodPut, "/users/me/password", req, nil, http.StatusOK)
}
