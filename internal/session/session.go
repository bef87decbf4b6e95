package session

import (
	"sync"

	"mazaj-be/internal/cart"

	"github.com/google/uuid"
)

// Session is one shopper's working state. The cart lives and dies with
// the session; orders, once placed, do not.
type Session struct {
	ID   string
	Cart *cart.Cart
}

// Manager hands out sessions keyed by the client-supplied id, creating
// them on first use.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Get returns the session for id, creating it if needed. An empty id gets
// a freshly generated one.
func (m *Manager) Get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id == "" {
		id = uuid.NewString()
	}

	s, ok := m.sessions[id]
	if !ok {
		s = &Session{ID: id, Cart: cart.New()}
		m.sessions[id] = s
	}
	return s
}

// Drop forgets a session. Unknown ids are ignored.
func (m *Manager) Drop(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
