// Package session holds the client-side session state: the bearer token and
// a cached copy of the user profile, persisted in an authenticated cookie.
package session

import (
	"encoding/json"
	"net/http"

	"lifegoals/pkg/apiclient"

	"github.com/gorilla/sessions"
)

const (
	sessionName = "lifegoals"
	tokenKey    = "token"
	userKey     = "user"
)

// Store issues per-request Sessions backed by a cookie store
type Store struct {
	cookies *sessions.CookieStore
}

// NewStore creates a new cookie-backed session store
func NewStore(secret string) *Store {
	cookies := sessions.NewCookieStore([]byte(secret))
	cookies.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{cookies: cookies}
}

// Bind returns the session for an incoming request. A missing or
// undecodable cookie yields a fresh, empty session.
func (s *Store) Bind(w http.ResponseWriter, r *http.Request) *Session {
	values, _ := s.cookies.Get(r, sessionName)

	sess := &Session{w: w, r: r, values: values}
	if sess.Token() == "" {
		// No token means no session; drop any stale cached profile.
		delete(values.Values, userKey)
	}
	return sess
}

// Session is the durable client-side session state for one request.
// The token alone decides authentication; the cached user profile is
// display-only and may be absent or stale while a token exists.
type Session struct {
	w      http.ResponseWriter
	r      *http.Request
	values *sessions.Session
}

// Token returns the stored bearer token, or "" when logged out
func (s *Session) Token() string {
	token, _ := s.values.Values[tokenKey].(string)
	return token
}

// IsAuthenticated reports whether a token is present, regardless of the
// cached user profile
func (s *Session) IsAuthenticated() bool {
	return s.Token() != ""
}

// User returns the cached profile, or nil when absent or unreadable
func (s *Session) User() *apiclient.User {
	raw, _ := s.values.Values[userKey].(string)
	if raw == "" {
		return nil
	}

	var user apiclient.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil
	}
	return &user
}

// SetSession stores the token and cached profile
func (s *Session) SetSession(token string, user *apiclient.User) error {
	s.values.Values[tokenKey] = token
	if user != nil {
		raw, err := json.Marshal(user)
		if err != nil {
			return err
		}
		s.values.Values[userKey] = string(raw)
	} else {
		delete(s.values.Values, userKey)
	}
	return s.values.Save(s.r, s.w)
}

// Clear removes the token and cached profile unconditionally
func (s *Session) Clear() error {
	delete(s.values.Values, tokenKey)
	delete(s.values.Values, userKey)
	s.values.Options.MaxAge = -1
	return s.values.Save(s.r, s.w)
}

// Invalidate implements apiclient.CredentialSource
func (s *Session) Invalidate() {
	_ = s.Clear()
}
