// Package session holds the per-run authentication state of the
// client. Nothing is persisted: every run starts unauthenticated.
package session

import "simplesocial/internal/shared/models"

// Session carries the bearer token and the authenticated user's
// profile. A token may exist briefly without a user while the profile
// fetch is in flight; the reverse never happens.
type Session struct {
	token string
	user  *models.User
}

func New() *Session {
	return &Session{}
}

func (s *Session) Token() string { return s.token }

func (s *Session) SetToken(token string) { s.token = token }

func (s *Session) User() *models.User { return s.user }

func (s *Session) SetUser(u *models.User) { s.user = u }

// Authenticated reports whether the session may enter protected
// views. It checks the user, not the token: a token alone means the
// profile fetch has not completed (or failed).
func (s *Session) Authenticated() bool { return s.user != nil }

// Clear resets both fields; callers observe no half-cleared state.
func (s *Session) Clear() {
	s.token = ""
	s.user = nil
}
