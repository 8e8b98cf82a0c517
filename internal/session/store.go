package session

import (
	"context"
	"sync"
	"time"
)

// Store keeps sessions between requests.
type Store interface {
	Start(ctx context.Context) *Session
	Load(ctx context.Context, id string) (*Session, bool)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
	Sweep(ctx context.Context) int
}

// MemoryStore holds sessions in process memory with sliding expiry.
type MemoryStore struct {
	mu  sync.RWMutex
	m   map[string]*Session
	ttl time.Duration
	now func() time.Time
}

// NewMemoryStore creates store whose sessions live for ttl after last save.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &MemoryStore{m: make(map[string]*Session), ttl: ttl, now: time.Now}
}

// Start creates a fresh session; it is persisted on first Save.
func (s *MemoryStore) Start(context.Context) *Session {
	return New(s.now(), s.ttl)
}

// Load returns a copy of a live session.
func (s *MemoryStore) Load(_ context.Context, id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.m[id]
	if !ok || sess.Expired(s.now()) {
		return nil, false
	}
	return sess.clone(), true
}

// Save stores a copy of the session and extends its expiry.
func (s *MemoryStore) Save(_ context.Context, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess.ExpiresAt = s.now().Add(s.ttl)
	s.m[sess.ID] = sess.clone()
	return nil
}

// Delete removes session.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, id)
	return nil
}

// Sweep purges expired sessions and returns how many were removed.
func (s *MemoryStore) Sweep(context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	removed := 0
	for id, sess := range s.m {
		if sess.Expired(now) {
			delete(s.m, id)
			removed++
		}
	}
	return removed
}

// Len returns number of stored sessions.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}
