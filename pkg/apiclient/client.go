// Package apiclient is the HTTP client for the goal-tracking REST API.
// It attaches the bearer token from a credential source on every request
// and converts an authorization failure on any protected endpoint into a
// session invalidation.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

// CredentialSource supplies the bearer token attached to outgoing requests.
// The token is read fresh on every request, never cached in the client.
// Invalidate discards the stored session after the server rejects its token.
type CredentialSource interface {
	Token() string
	Invalidate()
}

// Client talks to the goal-tracking REST API
type Client struct {
	baseURL string
	http    *http.Client
	creds   CredentialSource
}

// New creates a new API client for the given base URL
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// WithCredentials returns a copy of the client bound to a credential source,
// typically one per incoming request.
func (c *Client) WithCredentials(creds CredentialSource) *Client {
	bound := *c
	bound.creds = creds
	return &bound
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.creds != nil {
		if token := c.creds.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized && !strings.HasPrefix(path, "/api/auth/") {
		// The stored token is no longer valid, so the session is over. A 401
		// from an auth endpoint is rejected credentials, not expiry, and is
		// passed through to the caller instead.
		if c.creds != nil {
			c.creds.Invalidate()
		}
		return ErrSessionExpired
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
