package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const sessionTTL = 6 * time.Hour

// Session is the in-memory record of a logged-in user. Credits is a cached
// copy of the stored balance; every mutation goes through SetCredits so the
// cache and the users row never drift apart while the process is up.
// Sessions do not survive a restart.
type Session struct {
	SessionID string
	Username  string
	Credits   int
	ExpiresAt time.Time
}

type SessionStore struct {
	mu   sync.RWMutex
	byID map[string]*Session
}

// Sessions is the process-wide session store.
var Sessions = NewSessionStore()

func NewSessionStore() *SessionStore {
	return &SessionStore{byID: make(map[string]*Session)}
}

// Create registers a new session seeded with the stored credit balance and
// returns a copy of it.
func (s *SessionStore) Create(username string, credits int) Session {
	sess := &Session{
		SessionID: uuid.NewString(),
		Username:  username,
		Credits:   credits,
		ExpiresAt: time.Now().Add(sessionTTL),
	}

	s.mu.Lock()
	s.byID[sess.SessionID] = sess
	s.mu.Unlock()

	return *sess
}

// Get returns a copy of the session, or false if it is unknown or expired.
// Expired sessions are dropped on read.
func (s *SessionStore) Get(id string) (Session, bool) {
	s.mu.RLock()
	sess, ok := s.byID[id]
	s.mu.RUnlock()
	if !ok {
		return Session{}, false
	}

	if sess.ExpiresAt.Before(time.Now()) {
		s.Delete(id)
		return Session{}, false
	}

	s.mu.RLock()
	snapshot := *sess
	s.mu.RUnlock()
	return snapshot, true
}

// SetCredits updates the cached balance after the stored balance changed.
func (s *SessionStore) SetCredits(id string, credits int) {
	s.mu.Lock()
	if sess, ok := s.byID[id]; ok {
		sess.Credits = credits
	}
	s.mu.Unlock()
}

func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	delete(s.byID, id)
	s.mu.Unlock()
}
