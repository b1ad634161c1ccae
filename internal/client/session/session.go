// Package session owns the client's identity state: the logged-in user
// and the bearer token issued at login or registration. A fresh Session
// starts unauthenticated; logout returns it to that state.
package session

import (
	"sync"

	"skillswap/internal/domain/user"
)

type Session struct {
	mu            sync.Mutex
	user          user.User
	token         string
	authenticated bool
}

func New() *Session {
	return &Session{}
}

// Establish records a successful login or registration.
func (s *Session) Establish(u user.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
	s.token = token
	s.authenticated = true
}

// Clear drops the token and identity. Used on logout.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user.User{}
	s.token = ""
	s.authenticated = false
}

func (s *Session) Current() (user.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user, s.authenticated
}

func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Session) UserID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authenticated {
		return 0
	}
	return s.user.ID
}

func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// Update replaces the stored user while keeping the token, e.g. after
// an availability toggle reflects back on the profile.
func (s *Session) Update(u user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.authenticated && s.user.ID == u.ID {
		s.user = u
	}
}
