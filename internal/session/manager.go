package session

import (
	"sync"
	"time"
)

// Manager owns the live sessions of the process. Lifecycle: created at
// authentication time by the front, removed at logout or by the idle sweep.
type Manager struct {
	mu         sync.RWMutex
	sessions   map[string]*Session
	lastActive map[string]time.Time
	now        func() time.Time
}

func NewManager() *Manager {
	return &Manager{
		sessions:   make(map[string]*Session),
		lastActive: make(map[string]time.Time),
		now:        time.Now,
	}
}

func (m *Manager) Create() *Session {
	s := New()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	m.lastActive[s.ID] = m.now()
	return s
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Touch marks a session as recently active so the idle sweep spares it.
func (m *Manager) Touch(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; ok {
		m.lastActive[id] = m.now()
	}
}

func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	delete(m.lastActive, id)
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// SweepIdle drops sessions inactive for longer than maxIdle and reports how
// many were removed.
func (m *Manager) SweepIdle(maxIdle time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	cutoff := m.now().Add(-maxIdle)
	removed := 0
	for id, last := range m.lastActive {
		if last.Before(cutoff) {
			delete(m.sessions, id)
			delete(m.lastActive, id)
			removed++
		}
	}
	return removed
}
