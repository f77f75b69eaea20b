package crmsdk

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SDKClient is a client for the public endpoints of the CRM API. It creates
// authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a client with a 30 second timeout.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Login exchanges e-mail and password for a session.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*Session, error) {
	var auth AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", LoginRequest{Email: email, Password: password}, &auth, http.StatusOK); err != nil {
		return nil, err
	}
	return newSession(c, auth), nil
}

// Register redeems an invite token and returns a session for the new account.
func (c *SDKClient) Register(ctx context.Context, token, name, password string) (*Session, error) {
	req := RegisterRequest{Token: token, Name: name, Password: password}

	var auth AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", req, &auth, http.StatusOK); err != nil {
		return nil, err
	}
	return newSession(c, auth), nil
}

// ValidateInvite reports the e-mail and role an invite token was issued for.
func (c *SDKClient) ValidateInvite(ctx context.Context, token string) (*InviteValidation, error) {
	var v InviteValidation
	path := "/invites/validate?token=" + url.QueryEscape(token)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &v, http.StatusOK); err != nil {
		return nil, err
	}
	return &v, nil
}

// NewSessionFromToken wraps a token obtained elsewhere. User is left empty
// until Me is called.
func (c *SDKClient) NewSessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}
