package apiclient

import (
	"context"
	"net/http"
)

// Login authenticates with email and password
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}

	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new account and returns its session
func (c *Client) Register(ctx context.Context, name, email, password string) (*AuthResponse, error) {
	body := map[string]string{"name": name, "email": email, "password": password}

	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
