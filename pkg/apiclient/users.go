package apiclient

import (
	"context"
	"net/http"
)

// UpdateUserRequest patches a subset of profile fields
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// CurrentUser fetches the authenticated user's profile
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateCurrentUser applies a partial update to the authenticated user's profile
func (c *Client) UpdateCurrentUser(ctx context.Context, req UpdateUserRequest) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPut, "/api/users/me", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
