// Package session tracks per-browser-session state: identity reflected
// from the upstream API plus the session's cart and checkout
// orchestrator. Nothing here survives the session.
package session

import (
	"sync"
	"time"

	"raynott-storefront/internal/cart"
	"raynott-storefront/internal/checkout"
	"raynott-storefront/internal/domain"
)

// Session owns one visitor's state. The zero identity (no user) is a
// guest; checkout gates on that.
type Session struct {
	ID       string
	Cart     *cart.Store
	Checkout *checkout.Orchestrator

	mu       sync.RWMutex
	token    string
	user     *domain.User
	lastSeen time.Time
}

// Login stores the upstream credentials. The cart is kept: items added
// while browsing as a guest survive signing in.
func (s *Session) Login(token string, user domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	u := user
	s.user = &u
}

// Logout drops the identity but keeps the cart.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
}

// SetUser refreshes the stored profile (e.g. after GET /auth/profile).
func (s *Session) SetUser(user domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := user
	s.user = &u
}

// Token returns the bearer token, empty for guests.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the authenticated user, nil for guests.
func (s *Session) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsGuest reports whether the session has no authenticated identity.
func (s *Session) IsGuest() bool {
	return s.User() == nil
}

// IsAdmin reports whether the session user has admin rights.
func (s *Session) IsAdmin() bool {
	u := s.User()
	return u != nil && u.IsAdmin
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) seen() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSeen
}
