package upstream

import (
	"context"
	"net/http"

	"raynott-storefront/internal/domain"
)

// Credentials is the upstream login/register response: a bearer token
// plus the user's profile fields alongside it.
type Credentials struct {
	Token string `json:"token"`
	domain.User
}

// Login exchanges email and password for credentials.
func (c *Client) Login(ctx context.Context, email, password string) (*Credentials, error) {
	body := map[string]string{"email": email, "password": password}
	var creds Credentials
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", nil, body, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

// Register creates an account and returns credentials for it.
func (c *Client) Register(ctx context.Context, username, email, password string) (*Credentials, error) {
	body := map[string]string{"username": username, "email": email, "password": password}
	var creds Credentials
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", nil, body, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

// Profile fetches the current user for the token.
func (c *Client) Profile(ctx context.Context, token string) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodGet, "/auth/profile", token, nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers fetches all accounts. Admin token required.
func (c *Client) ListUsers(ctx context.Context, token string) ([]domain.User, error) {
	var users []domain.User
	if err := c.do(ctx, http.MethodGet, "/users", token, nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser removes an account. Admin token required.
func (c *Client) DeleteUser(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+id, token, nil, nil, nil)
}

// Stats fetches the admin dashboard aggregates.
func (c *Client) Stats(ctx context.Context, token string) (map[string]interface{}, error) {
	var stats map[string]interface{}
	if err := c.do(ctx, http.MethodGet, "/admin/stats", token, nil, nil, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
