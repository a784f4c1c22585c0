package apiclient

import (
	"context"
	"net/http"
	"net/url"
)

// CreateGoalRequest is the payload for creating a goal
type CreateGoalRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// UpdateGoalRequest patches a subset of goal fields. A completion toggle
// sends only Completed and leaves the rest untouched.
type UpdateGoalRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// ListGoals fetches the authenticated user's full goal collection
func (c *Client) ListGoals(ctx context.Context) ([]Goal, error) {
	var goals []Goal
	if err := c.do(ctx, http.MethodGet, "/api/goals", nil, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

// CreateGoal creates a new goal
func (c *Client) CreateGoal(ctx context.Context, req CreateGoalRequest) (*Goal, error) {
	var goal Goal
	if err := c.do(ctx, http.MethodPost, "/api/goals", req, &goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

// UpdateGoal applies a partial update to a goal
func (c *Client) UpdateGoal(ctx context.Context, id string, req UpdateGoalRequest) (*Goal, error) {
	var goal Goal
	if err := c.do(ctx, http.MethodPut, "/api/goals/"+url.PathEscape(id), req, &goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

// DeleteGoal deletes a goal
func (c *Client) DeleteGoal(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/goals/"+url.PathEscape(id), nil, nil)
}
