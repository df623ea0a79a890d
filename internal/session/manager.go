package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"raynott-storefront/internal/cart"
	"raynott-storefront/internal/checkout"
)

// CheckoutFactory builds the checkout orchestrator for a new session's
// cart. Injected so the manager stays free of upstream wiring.
type CheckoutFactory func(*cart.Store) *checkout.Orchestrator

// Manager is the in-memory session registry. Sessions expire after ttl
// of inactivity; expiry is checked on access and swept in the
// background.
type Manager struct {
	mu          sync.RWMutex
	sessions    map[string]*Session
	ttl         time.Duration
	newCheckout CheckoutFactory
	logger      *zap.Logger
}

func NewManager(ttl time.Duration, newCheckout CheckoutFactory, logger *zap.Logger) *Manager {
	return &Manager{
		sessions:    make(map[string]*Session),
		ttl:         ttl,
		newCheckout: newCheckout,
		logger:      logger,
	}
}

// Create registers a fresh guest session with an empty cart.
func (m *Manager) Create() *Session {
	store := cart.New()
	s := &Session{
		ID:       uuid.NewString(),
		Cart:     store,
		Checkout: m.newCheckout(store),
		lastSeen: time.Now(),
	}
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get looks up a live session and refreshes its activity timestamp. An
// expired session is removed and reported as absent.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	now := time.Now()
	if now.Sub(s.seen()) > m.ttl {
		m.mu.Lock()
		delete(m.sessions, id)
		m.mu.Unlock()
		return nil, false
	}
	s.touch(now)
	return s, true
}

// GetOrCreate resumes the session when it is still live, otherwise
// starts a new one.
func (m *Manager) GetOrCreate(id string) *Session {
	if id != "" {
		if s, ok := m.Get(id); ok {
			return s
		}
	}
	return m.Create()
}

// Len returns the number of registered sessions, expired or not.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// sweep drops every session idle past the ttl and returns how many.
func (m *Manager) sweep(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, s := range m.sessions {
		if now.Sub(s.seen()) > m.ttl {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps expired sessions until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if removed := m.sweep(now); removed > 0 {
				m.logger.Debug("swept expired sessions", zap.Int("removed", removed))
			}
		}
	}
}
