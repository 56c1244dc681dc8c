package api

import (
	"context"
	"net/http"

	"github.com/hardwarehub/storefront/internal/core/domain"
)

// UserClient talks to the admin user-management endpoints.
type UserClient struct {
	c *Client
}

func NewUserClient(c *Client) *UserClient {
	return &UserClient{c: c}
}

// List fetches every account (admin).
func (u *UserClient) List(ctx context.Context) ([]domain.User, error) {
	env, err := do[[]domain.User](ctx, u.c, http.MethodGet, "/users", nil)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// Update edits another user's record (admin).
func (u *UserClient) Update(ctx context.Context, id string, in domain.ProfileUpdate) (*domain.User, error) {
	env, err := do[*domain.User](ctx, u.c, http.MethodPut, "/users/"+id, in)
	if err != nil {
		return nil, err
	}
	return requireUser(env, "/users/"+id)
}

// Delete removes an account (admin).
func (u *UserClient) Delete(ctx context.Context, id string) error {
	_, err := do[struct{}](ctx, u.c, http.MethodDelete, "/users/"+id, nil)
	return err
}
