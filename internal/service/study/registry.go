package study

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Registry holds live sessions in memory. Sessions are visible only to the
// user that started them.
type Registry struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration
}

// NewRegistry creates a registry. Sessions older than ttl are swept on
// insert; ttl <= 0 disables sweeping.
func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
	}
}

// Put stores a session, sweeping expired ones first.
func (r *Registry) Put(s *Session, now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ttl > 0 {
		for id, existing := range r.sessions {
			if now.Sub(existing.startedAt) > r.ttl {
				delete(r.sessions, id)
			}
		}
	}
	r.sessions[s.id] = s
}

// Get returns the session with id owned by userID.
func (r *Registry) Get(userID, id uuid.UUID) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok || s.userID != userID {
		return nil, false
	}
	return s, true
}

// Remove deletes the session with id owned by userID.
func (r *Registry) Remove(userID, id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok || s.userID != userID {
		return false
	}
	delete(r.sessions, id)
	return true
}

// Len returns the number of tracked sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
