package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hardwarehub/storefront/internal/core/domain"
)

// AuthClient talks to the /users identity endpoints.
type AuthClient struct {
	c *Client
}

func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{c: c}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a token and user record.
func (a *AuthClient) Login(ctx context.Context, email, password string) (*domain.Credentials, error) {
	env, err := do[*domain.User](ctx, a.c, http.MethodPost, "/users/login", loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	return credsFromEnvelope(env, "/users/login")
}

// Register creates an account; the backend logs it in and returns the same
// shape as Login.
func (a *AuthClient) Register(ctx context.Context, in domain.RegisterInput) (*domain.Credentials, error) {
	env, err := do[*domain.User](ctx, a.c, http.MethodPost, "/users/register", in)
	if err != nil {
		return nil, err
	}
	return credsFromEnvelope(env, "/users/register")
}

// Logout requests server-side invalidation.
func (a *AuthClient) Logout(ctx context.Context) error {
	_, err := do[struct{}](ctx, a.c, http.MethodGet, "/users/logout", nil)
	return err
}

// Me fetches the authenticated user's own record.
func (a *AuthClient) Me(ctx context.Context) (*domain.User, error) {
	env, err := do[*domain.User](ctx, a.c, http.MethodGet, "/users/me", nil)
	if err != nil {
		return nil, err
	}
	return requireUser(env, "/users/me")
}

// UpdateProfile changes the authenticated user's own record.
func (a *AuthClient) UpdateProfile(ctx context.Context, in domain.ProfileUpdate) (*domain.User, error) {
	env, err := do[*domain.User](ctx, a.c, http.MethodPut, "/users/me", in)
	if err != nil {
		return nil, err
	}
	return requireUser(env, "/users/me")
}

// DeleteAccount removes the authenticated user's own account.
func (a *AuthClient) DeleteAccount(ctx context.Context) error {
	_, err := do[struct{}](ctx, a.c, http.MethodDelete, "/users/me", nil)
	return err
}

func credsFromEnvelope(env *envelope[*domain.User], path string) (*domain.Credentials, error) {
	if env.Token == "" || env.Data == nil || env.Data.ID == "" {
		return nil, fmt.Errorf("%w: %s: missing token or user", domain.ErrBadResponse, path)
	}
	return &domain.Credentials{Token: env.Token, User: env.Data}, nil
}

func requireUser(env *envelope[*domain.User], path string) (*domain.User, error) {
	if env.Data == nil || env.Data.ID == "" {
		return nil, fmt.Errorf("%w: %s: missing user", domain.ErrBadResponse, path)
	}
	return env.Data, nil
}
