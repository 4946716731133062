package cart

import (
	"context"
	"sync"
	"time"
)

// Manager owns one Session per authenticated uid. Sessions are created on
// first touch and swept after an idle period, the same shape as the rate
// limiter's visitor map.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	maxIdle  time.Duration
}

func NewManager(maxIdle time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		maxIdle:  maxIdle,
	}
}

// Session returns the uid's session, creating it if needed.
func (m *Manager) Session(uid string) *Session {
	m.mu.RLock()
	s, ok := m.sessions[uid]
	m.mu.RUnlock()
	if ok {
		return s
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok = m.sessions[uid]; ok {
		return s
	}
	s = newSession()
	m.sessions[uid] = s
	return s
}

// Drop discards a uid's session.
func (m *Manager) Drop(uid string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, uid)
}

func (m *Manager) sweep() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for uid, s := range m.sessions {
		s.mu.Lock()
		idle := now.Sub(s.lastActive)
		s.mu.Unlock()
		if idle > m.maxIdle {
			delete(m.sessions, uid)
		}
	}
}

// StartSweeper evicts idle sessions in the background until ctx is done.
func (m *Manager) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.sweep()
			}
		}
	}()
}
